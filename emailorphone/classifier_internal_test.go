//go:build unit
// +build unit

package emailorphone

import (
	"strings"
	"testing"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/vortex-fintech/go-contact/contactpattern"
)

type recordingMetrics struct {
	verdicts []string
	errs     []string
}

func (m *recordingMetrics) ObserveVerdict(path string)   { m.verdicts = append(m.verdicts, path) }
func (m *recordingMetrics) IncMatchError(grammar string) { m.errs = append(m.errs, grammar) }

type fixedPatterns struct {
	email, phone *regexp2.Regexp
}

func (p fixedPatterns) Email() *regexp2.Regexp { return p.email }
func (p fixedPatterns) Phone() *regexp2.Regexp { return p.phone }

func TestClassifier_AbortedMatchFallsThrough(t *testing.T) {
	// Exponential backtracking on a run of 'a' that is not followed by end of input.
	slow := regexp2.MustCompile(`^(a|aa)+$`, regexp2.None)
	slow.MatchTimeout = time.Millisecond

	core, logs := observer.New(zapcore.DebugLevel)
	m := &recordingMetrics{}
	c := New(WithLogger(zap.New(core)), WithMetrics(m))
	c.patterns = fixedPatterns{
		email: slow,
		phone: contactpattern.NewStore(contactpattern.Config{}, nil).Phone(),
	}

	value := strings.Repeat("a", 40) + "@b!"

	assert.Equal(t, PathEmailFallback, c.Path(value))
	assert.Equal(t, []string{"email"}, m.errs)
	assert.Equal(t, []string{"email_fallback"}, m.verdicts)

	entries := logs.FilterMessage("contact grammar match aborted").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "email", entries[0].ContextMap()["grammar"])
}

func TestClassifier_AbortedMatchRejectsWhenNothingElseAccepts(t *testing.T) {
	slow := regexp2.MustCompile(`^(a|aa)+$`, regexp2.None)
	slow.MatchTimeout = time.Millisecond

	m := &recordingMetrics{}
	c := New(WithMetrics(m))
	c.patterns = fixedPatterns{email: slow}

	assert.False(t, c.ValidString(strings.Repeat("a", 40)+"!"))
	assert.Equal(t, []string{"email"}, m.errs)
	assert.Equal(t, []string{"rejected"}, m.verdicts)
}

func TestNew_PatternsOverrideConfig(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	store := contactpattern.NewStore(contactpattern.Config{}, nil)

	c := New(WithPatterns(store), WithEmailRegexDisabled(), WithLogger(zap.New(core)))

	assert.Equal(t, PathEmailRegex, c.Path("a@b.com"))
	assert.Equal(t, 1, logs.FilterMessage("config ignored, classifier uses the given pattern store").Len())
}

func TestNew_PatternsWithoutConfigLogsNothing(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	store := contactpattern.NewStore(contactpattern.Config{}, nil)

	New(WithPatterns(store), WithLogger(zap.New(core)))

	assert.Equal(t, 0, logs.Len())
}
