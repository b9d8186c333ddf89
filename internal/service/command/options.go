package command

import (
	"os"
	"time"
)

// identityVars is the lookup order for the current user name.
var identityVars = []string{"USER", "USERNAME", "LOGNAME"}

type options struct {
	now       func() time.Time
	lookupEnv func(string) (string, bool)
}

type Option func(*options)

// WithClock replaces the wall clock used by date and time.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// WithLookupEnv replaces the environment lookup used by whoami.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(o *options) {
		o.lookupEnv = fn
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		now:       time.Now,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// LookupUser returns the first non-empty identity variable.
func LookupUser(lookupEnv func(string) (string, bool)) (string, bool) {
	for _, name := range identityVars {
		if v, ok := lookupEnv(name); ok && v != "" {
			return v, true
		}
	}
	return "", false
}
