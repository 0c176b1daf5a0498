package reconciler

import (
	"github.com/agentstation/utc"
	"github.com/rs/zerolog"

	"github.com/agentstation/carmap/pkg/authority"
	"github.com/agentstation/carmap/pkg/errors"
	"github.com/agentstation/carmap/pkg/normalize"
	"github.com/agentstation/carmap/pkg/sources"
)

// Options configures a merger.
type options struct {
	strategy    Strategy
	authorities authority.Authority
	normalizers map[sources.ID]normalize.Normalizer
	clock       func() utc.Time
	logger      *zerolog.Logger
	tracking    bool
}

func defaultOptions() *options {
	authorities := authority.New()
	nop := zerolog.Nop()
	return &options{
		strategy:    NewAuthorityStrategy(authorities),
		authorities: authorities,
		normalizers: normalize.Defaults(),
		clock:       utc.Now,
		logger:      &nop,
		tracking:    true,
	}
}

// Option is a function that configures a Merger.
type Option func(*options) error

func (options *options) apply(opts ...Option) (*options, error) {
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, err
		}
	}
	return options, nil
}

// newOptions returns merger options with default values.
func newOptions(opts ...Option) (*options, error) {
	return defaultOptions().apply(opts...)
}

// WithStrategy sets the source ordering strategy.
func WithStrategy(strategy Strategy) Option {
	return func(r *options) error {
		if strategy == nil {
			return &errors.ValidationError{
				Field:   "strategy",
				Message: "cannot be nil",
			}
		}
		r.strategy = strategy
		return nil
	}
}

// WithAuthorities sets the field authorities. The authority strategy is
// rebuilt on the new table unless another strategy was chosen.
func WithAuthorities(authorities authority.Authority) Option {
	return func(r *options) error {
		if authorities == nil {
			return &errors.ValidationError{
				Field:   "authorities",
				Message: "cannot be nil",
			}
		}
		r.authorities = authorities
		if r.strategy == nil || r.strategy.Type() == StrategyTypeFieldAuthority {
			r.strategy = NewAuthorityStrategy(authorities)
		}
		return nil
	}
}

// WithNormalizer registers the normalizer for its source, replacing any
// existing one. Custom sources take part in resolution after the built-in
// providers.
func WithNormalizer(n normalize.Normalizer) Option {
	return func(r *options) error {
		if n == nil {
			return &errors.ValidationError{
				Field:   "normalizer",
				Message: "cannot be nil",
			}
		}
		if n.Source() == "" || n.Source() == sources.Synthesized {
			return &errors.ValidationError{
				Field:   "normalizer.source",
				Value:   n.Source(),
				Message: "must name an input provider",
			}
		}
		r.normalizers[n.Source()] = n
		return nil
	}
}

// WithClock sets the clock used for the merge timestamp.
func WithClock(clock func() utc.Time) Option {
	return func(r *options) error {
		if clock == nil {
			return &errors.ValidationError{
				Field:   "clock",
				Message: "cannot be nil",
			}
		}
		r.clock = clock
		return nil
	}
}

// WithLogger sets the logger. The merger only logs at debug level.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *options) error {
		if logger == nil {
			return &errors.ValidationError{
				Field:   "logger",
				Message: "cannot be nil",
			}
		}
		r.logger = logger
		return nil
	}
}

// WithProvenance enables field-level tracking.
func WithProvenance(enabled bool) Option {
	return func(r *options) error {
		r.tracking = enabled
		return nil
	}
}
