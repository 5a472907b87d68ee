package calendar

import (
	"github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/pkg/core/cache"
)

// Options configure calendars created by a Registry.
type Options struct {
	// Logger receives debug output about memo table fills
	Logger *log.Logger
	// Observer is notified about memo table hits and misses
	Observer cache.Observer
	// SearchLimit bounds the reference year search for month-day values
	SearchLimit int
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.Discard()
	}
	if o.SearchLimit <= 0 {
		o.SearchLimit = DefaultSearchLimit
	}
	return o
}
