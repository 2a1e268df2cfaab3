package jsonpath

import (
	"log/slog"

	"github.com/mikeschinkel/jsonpath/provider"
)

// Config binds a Provider and a set of behavioral options to an evaluation,
// per spec.md §2's "Read context / configuration" component.
type Config struct {
	provider provider.Provider

	throwOnMissingProperty bool
	truthinessPredicates   bool
	maxScanDepth           int
	logger                 *slog.Logger
}

// ReadOption configures a Config. The functional-option shape mirrors the
// teacher's ServerOpts/Config construction pattern (mikeschinkel-scout-mcp's
// config.go), generalized from server bring-up to path evaluation.
type ReadOption func(*Config)

// WithProvider selects the Provider implementation an evaluation uses.
// Defaults to provider.New() (the ordered-map-backed DefaultProvider).
func WithProvider(p provider.Provider) ReadOption {
	return func(c *Config) { c.provider = p }
}

// WithThrowOnMissingProperty makes a Field token raise PathNotFound instead
// of silently yielding null when the key is absent, per spec.md §6's
// THROW_ON_MISSING_PROPERTY option.
func WithThrowOnMissingProperty() ReadOption {
	return func(c *Config) { c.throwOnMissingProperty = true }
}

// WithTruthinessPredicates makes a bare "@.sub" predicate atom (no
// comparator) test the resolved value's truthiness instead of merely its
// presence, per spec.md §4.2's HasPath note ("existence, not truthiness,
// unless the option dictates otherwise").
func WithTruthinessPredicates() ReadOption {
	return func(c *Config) { c.truthinessPredicates = true }
}

// WithMaxScanDepth bounds how deep a ".." recursive-descent token will
// traverse before raising an error, guarding against pathological or
// cyclic provider values. 0 means unlimited.
func WithMaxScanDepth(depth int) ReadOption {
	return func(c *Config) { c.maxScanDepth = depth }
}

// WithLogger installs a logger used for Debug-level token-by-token tracing
// during evaluation. The package-level logger (see logger.go) is used when
// no logger is configured.
func WithLogger(l *slog.Logger) ReadOption {
	return func(c *Config) { c.logger = l }
}

// NewConfig builds a Config from the given options, applying defaults
// first: the DefaultProvider, no strict-property mode, existence (not
// truthiness) predicates, and defaultMaxScanDepth.
func NewConfig(opts ...ReadOption) *Config {
	cfg := &Config{
		provider:     provider.New(),
		maxScanDepth: defaultMaxScanDepth,
		logger:       GetLogger(),
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
