package calendar

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/language"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/pkg/temporal/calendar/source"
)

// Factory creates the rules of a calendar system.
type Factory func(opts Options) (Rules, error)

// aliases maps CLDR alias ids to canonical ids
var aliases = map[string]string{
	"islamicc":            "islamic-civil",
	"ethiopic-amete-alem": "ethioaa",
	"gregorian":           "gregory",
}

// Registry resolves calendar ids to memoized Calendar instances.
type Registry struct {
	opts Options

	mu        sync.RWMutex
	factories map[string]Factory
	calendars map[string]*Calendar
}

// NewRegistry creates a registry holding all bundled calendars.
func NewRegistry(opts Options) *Registry {
	r := &Registry{
		opts:      opts.withDefaults(),
		factories: make(map[string]Factory),
		calendars: make(map[string]*Calendar),
	}
	r.factories["iso8601"] = rulesFactory(isoRules{})
	r.factories["gregory"] = rulesFactory(newGregory())
	r.factories["japanese"] = rulesFactory(newJapanese())
	r.factories["buddhist"] = rulesFactory(newBuddhist())
	r.factories["roc"] = rulesFactory(newROC())
	for _, spec := range source.Builtins() {
		r.factories[spec.Source.ID()] = DerivedFactory(spec)
	}
	return r
}

func rulesFactory(rules Rules) Factory {
	return func(Options) (Rules, error) { return rules, nil }
}

// DerivedFactory returns a factory for a data-derived calendar.
func DerivedFactory(spec source.Spec) Factory {
	return func(opts Options) (Rules, error) {
		return newDerivedRules(spec, opts), nil
	}
}

// CanonicalID lowercases an id, resolves aliases and checks that the id is
// a well-formed Unicode calendar type.
func CanonicalID(id string) (string, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	if alias, ok := aliases[id]; ok {
		id = alias
	}
	if id == "" {
		return "", errors.NotFound(errors.ModuleCalendar, mdwerror.CodeUnknownCalendar, id)
	}
	// the tag only checks syntax; TypeForKey drops all but the first subtag
	if _, err := language.Parse("und-u-ca-" + id); err != nil {
		return "", errors.NotFound(errors.ModuleCalendar, mdwerror.CodeUnknownCalendar, id).
			WithDetail("reason", err.Error())
	}
	return id, nil
}

// Register adds or replaces a calendar factory.
func (r *Registry) Register(id string, f Factory) error {
	id, err := CanonicalID(id)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = f
	delete(r.calendars, id)
	r.opts.Logger.Debug("calendar registered", log.Field("calendar", id))
	return nil
}

// Get returns the calendar for an id, creating it on first use.
func (r *Registry) Get(id string) (*Calendar, error) {
	canonical, err := CanonicalID(id)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	cal, ok := r.calendars[canonical]
	f, known := r.factories[canonical]
	r.mu.RUnlock()
	if ok {
		return cal, nil
	}
	if !known {
		return nil, errors.NotFound(errors.ModuleCalendar, mdwerror.CodeUnknownCalendar, canonical)
	}

	rules, err := f(r.opts)
	if err != nil {
		return nil, err
	}
	cal = New(rules)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.calendars[canonical]; ok {
		return existing, nil
	}
	r.calendars[canonical] = cal
	return cal, nil
}

// IDs returns the registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the process-wide registry.
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry(Options{})
	})
	return defaultRegistry
}

// Get resolves an id against the default registry.
func Get(id string) (*Calendar, error) {
	return Default().Get(id)
}
