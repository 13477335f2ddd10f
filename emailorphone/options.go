package emailorphone

import (
	"go.uber.org/zap"

	"github.com/vortex-fintech/go-contact/contactpattern"
)

type options struct {
	cfg      Config
	cfgSet   bool
	log      *zap.Logger
	metrics  Metrics
	patterns *contactpattern.Store
}

type Option func(*options)

func WithConfig(cfg Config) Option {
	return func(o *options) { o.cfg, o.cfgSet = cfg, true }
}

// WithEmailRegexDisabled is WithConfig(Config{DisableEmailRegex: true}).
func WithEmailRegexDisabled() Option {
	return func(o *options) { o.cfg.DisableEmailRegex, o.cfgSet = true, true }
}

func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.log = l }
}

func WithMetrics(m Metrics) Option {
	return func(o *options) { o.metrics = m }
}

// WithPatterns shares an already built pattern store. It takes precedence
// over WithConfig and WithEmailRegexDisabled.
func WithPatterns(s *contactpattern.Store) Option {
	return func(o *options) { o.patterns = s }
}
