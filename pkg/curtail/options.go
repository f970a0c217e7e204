package curtail

import "github.com/bft-labs/curtail/pkg/log"

// Option configures a Writer.
type Option func(*options)

type options struct {
	logger   log.Logger
	strategy Strategy
	truncate bool
}

func defaultOptions() options {
	return options{
		logger:   log.NewNoopLogger(),
		strategy: StrategyAuto,
	}
}

// WithLogger sets the logger used for collapse and reset events.
// Without it nothing is logged.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithStrategy selects the collapse implementation used by Open.
// NewWriter ignores it.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithTruncate makes Open discard existing file contents.
// By default Open keeps them and appends.
func WithTruncate(truncate bool) Option {
	return func(o *options) {
		o.truncate = truncate
	}
}
