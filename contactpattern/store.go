// Package contactpattern builds and caches the email and phone grammars used
// as the primary classification path.
//
// Patterns are compiled with github.com/dlclark/regexp2: the phone grammar
// needs a lookbehind and every pattern carries a match timeout, neither of
// which the standard regexp package offers.
package contactpattern

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"
)

// DefaultMatchTimeout bounds a single match against a pathological input.
const DefaultMatchTimeout = 2 * time.Second

const options = regexp2.IgnoreCase | regexp2.ExplicitCapture

// noTimeout is the value regexp2.DefaultMatchTimeout has until a process sets
// its own global default.
const noTimeout = time.Duration(math.MaxInt64)

// ErrMatch is returned by Match when the engine gave up, usually because the
// match timeout elapsed.
var ErrMatch = errors.New("contactpattern: match aborted")

var (
	errGlobalTimeout  = errors.New("global regexp2 match timeout is set")
	errInvalidTimeout = errors.New("match timeout must be positive")
)

// Config controls which grammars a Store builds.
type Config struct {
	// DisableEmailRegex skips the email grammar; emails are then accepted
	// by the fallback check only. The phone grammar is always built.
	DisableEmailRegex bool
}

// Store compiles each grammar on first use and keeps it for its lifetime.
// A nil pattern means the grammar is disabled or could not be built.
type Store struct {
	cfg     Config
	log     *zap.Logger
	timeout time.Duration

	emailOnce sync.Once
	email     *regexp2.Regexp

	phoneOnce sync.Once
	phone     *regexp2.Regexp
}

// NewStore returns a store that compiles nothing until a pattern is asked for.
// A nil log discards construction diagnostics.
func NewStore(cfg Config, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{cfg: cfg, log: log, timeout: DefaultMatchTimeout}
}

// Email returns the email grammar, or nil when it is disabled by Config or
// failed to compile.
func (s *Store) Email() *regexp2.Regexp {
	s.emailOnce.Do(func() {
		if s.cfg.DisableEmailRegex {
			s.log.Debug("email grammar disabled")
			return
		}
		s.email = s.build("email", EmailGrammar)
	})
	return s.email
}

// Phone returns the phone grammar, or nil when it failed to compile.
func (s *Store) Phone() *regexp2.Regexp {
	s.phoneOnce.Do(func() {
		s.phone = s.build("phone", PhoneGrammar)
	})
	return s.phone
}

// build never fails: a grammar that does not compile yields nil, a timeout
// that cannot be applied leaves the pattern as compiled.
func (s *Store) build(name, grammar string) *regexp2.Regexp {
	re, err := compile(grammar)
	if err != nil {
		s.log.Error("contact grammar not compiled, fallback check only",
			zap.String("grammar", name), zap.Error(err))
		return nil
	}

	switch err := applyTimeout(re, s.timeout); {
	case errors.Is(err, errGlobalTimeout):
		s.log.Debug("keeping global match timeout",
			zap.String("grammar", name), zap.Duration("timeout", re.MatchTimeout))
	case err != nil:
		s.log.Warn("contact grammar built without match timeout",
			zap.String("grammar", name), zap.Error(err))
	}
	return re
}

func compile(grammar string) (re *regexp2.Regexp, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, err = nil, fmt.Errorf("compile panic: %v", r)
		}
	}()
	return regexp2.Compile(grammar, options)
}

func applyTimeout(re *regexp2.Regexp, timeout time.Duration) error {
	if regexp2.DefaultMatchTimeout != noTimeout {
		return errGlobalTimeout
	}
	if timeout <= 0 {
		return errInvalidTimeout
	}
	re.MatchTimeout = timeout
	return nil
}

// Match reports whether re finds a non-empty match in value. A nil pattern
// never matches. Engine failures wrap ErrMatch and count as no match; the
// engine's own message quotes the input, so it is not carried over.
func Match(re *regexp2.Regexp, value string) (bool, error) {
	if re == nil {
		return false, nil
	}
	m, err := re.FindStringMatch(value)
	if err != nil {
		return false, fmt.Errorf("%w (timeout %s)", ErrMatch, re.MatchTimeout)
	}
	return m != nil && m.Length > 0, nil
}
