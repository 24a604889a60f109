package internal

import "github.com/sirupsen/logrus"

type options struct {
	log *logrus.Logger
}

// Option configures an evaluator or a machine
type Option func(*options)

// WithLogger sends traces to log. Traces are emitted at debug level. A nil
// log keeps the standard logger.
func WithLogger(log *logrus.Logger) Option {
	return func(o *options) {
		if log != nil {
			o.log = log
		}
	}
}

func newOptions(opts []Option) options {
	o := options{log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) tracing() bool {
	return o.log.IsLevelEnabled(logrus.DebugLevel)
}
