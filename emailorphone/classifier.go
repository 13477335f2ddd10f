// Package emailorphone validates that a field holds either an email address
// or a phone number.
//
// A value passes when any of these checks succeeds, in order:
//
//  1. the email grammar (unless disabled by configuration);
//  2. the phone grammar;
//  3. the fallback email scan (exactly one '@', not at either end);
//  4. the fallback phone scan (digits, whitespace and "-.()", extension stripped).
//
// The fallback scans are looser than the grammars. "a@b" is rejected by the
// email grammar and accepted by the fallback scan, so it is valid. A nil
// value is always valid: presence is the job of a separate "required" rule.
package emailorphone

import (
	"sync"

	"github.com/dlclark/regexp2"
	"go.uber.org/zap"

	"github.com/vortex-fintech/go-contact/contactpattern"
	"github.com/vortex-fintech/go-contact/contactutil"
)

// patternSource is satisfied by *contactpattern.Store.
type patternSource interface {
	Email() *regexp2.Regexp
	Phone() *regexp2.Regexp
}

// Classifier decides whether a value is an email address or a phone number.
// It is safe for concurrent use.
type Classifier struct {
	patterns patternSource
	log      *zap.Logger
	metrics  Metrics
}

// New builds a classifier. Config (WithConfig, WithEmailRegexDisabled) only
// shapes the patterns the classifier builds itself: with WithPatterns the
// given store is used as is and Config is ignored.
func New(opts ...Option) *Classifier {
	var o options
	for _, f := range opts {
		f(&o)
	}
	if o.log == nil {
		o.log = zap.NewNop()
	}
	if o.patterns == nil {
		o.patterns = contactpattern.NewStore(o.cfg.patterns(), o.log)
	} else if o.cfgSet {
		o.log.Debug("config ignored, classifier uses the given pattern store")
	}
	return &Classifier{patterns: o.patterns, log: o.log, metrics: o.metrics}
}

var defaultClassifier = sync.OnceValue(func() *Classifier {
	// An unparsable environment keeps the grammars enabled.
	cfg, _ := LoadConfig()
	return New(WithConfig(cfg))
})

// Default returns the process-wide classifier configured from the environment.
func Default() *Classifier {
	return defaultClassifier()
}

// IsValid classifies value with the process-wide classifier.
func IsValid(value *string) bool {
	return Default().IsValid(value)
}

// IsValid reports whether value is absent, an email address or a phone number.
func (c *Classifier) IsValid(value *string) bool {
	if value == nil {
		return true
	}
	return c.ValidString(*value)
}

// ValidString is IsValid for a present value.
func (c *Classifier) ValidString(value string) bool {
	return c.Path(value).Valid()
}

// Path returns the first check that accepts value, or PathRejected.
func (c *Classifier) Path(value string) Path {
	p := c.classify(value)
	if c.metrics != nil {
		c.metrics.ObserveVerdict(string(p))
	}
	return p
}

func (c *Classifier) classify(value string) Path {
	switch {
	case c.match("email", c.patterns.Email(), value):
		return PathEmailRegex
	case c.match("phone", c.patterns.Phone(), value):
		return PathPhoneRegex
	case contactutil.LooksLikeEmail(value):
		return PathEmailFallback
	case contactutil.LooksLikePhone(value):
		return PathPhoneFallback
	default:
		return PathRejected
	}
}

func (c *Classifier) match(grammar string, re *regexp2.Regexp, value string) bool {
	ok, err := contactpattern.Match(re, value)
	if err != nil {
		c.log.Debug("contact grammar match aborted",
			zap.String("grammar", grammar), zap.Int("len", len(value)), zap.Error(err))
		if c.metrics != nil {
			c.metrics.IncMatchError(grammar)
		}
		return false
	}
	return ok
}
