package timezone

import (
	"strings"
	"time"

	"github.com/spf13/afero"

	mdwerror "github.com/msto63/chronos/foundation/core/error"
	"github.com/msto63/chronos/foundation/core/errors"
	"github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/pkg/core/cache"
)

// Loader resolves time zone ids. IANA ids match regardless of case and
// each location is loaded once.
type Loader struct {
	zones  *cache.Table[string, *Zone]
	index  *zoneIndex
	logger *log.Logger
}

// NewLoader creates a loader. Both arguments may be nil.
func NewLoader(logger *log.Logger, observer cache.Observer) *Loader {
	if logger == nil {
		logger = log.Discard()
	}
	return &Loader{
		zones:  cache.NewTable[string, *Zone]("timezone", observer),
		index:  newZoneIndex(afero.NewReadOnlyFs(afero.NewOsFs()), zoneInfoDirs),
		logger: logger,
	}
}

// Load resolves an offset string such as "+05:30" or an IANA id.
func (l *Loader) Load(id string) (TimeZone, error) {
	id = strings.TrimSpace(id)
	if id == "" || strings.EqualFold(id, "Local") {
		return nil, errors.NotFound(errors.ModuleTimeZone, mdwerror.CodeUnknownTimeZone, id)
	}
	if c := id[0]; c == '+' || c == '-' || strings.HasPrefix(id, "−") {
		nanos, _, err := ParseOffset(id)
		if err != nil {
			return nil, errors.NotFound(errors.ModuleTimeZone, mdwerror.CodeUnknownTimeZone, id)
		}
		return NewFixedOffset(nanos)
	}
	if strings.EqualFold(id, "UTC") || id == "Z" {
		return UTC, nil
	}

	zone, err := l.zones.GetOrCompute(strings.ToLower(id), func() (*Zone, error) {
		name, loc, err := l.loadLocation(id)
		if err != nil {
			return nil, errors.NotFound(errors.ModuleTimeZone, mdwerror.CodeUnknownTimeZone, id).
				WithDetail("reason", err.Error())
		}
		l.logger.Debug("time zone loaded", log.Field("timeZone", name), log.Field("requested", id))
		return NewZone(name, loc), nil
	})
	if err != nil {
		return nil, err
	}
	return zone, nil
}

// loadLocation tries the installed spelling of id, then id itself, then
// the IANA capitalization of it.
func (l *Loader) loadLocation(id string) (string, *time.Location, error) {
	candidates := []string{id}
	if canon, ok := l.index.lookup(id); ok && canon != id {
		candidates = []string{canon, id}
	}
	if title := titleZoneID(id); title != id {
		candidates = append(candidates, title)
	}
	var firstErr error
	for _, name := range candidates {
		loc, err := time.LoadLocation(name)
		if err == nil {
			return name, loc, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", nil, firstErr
}

var defaultLoader = NewLoader(nil, nil)

// Load resolves an id with the shared loader.
func Load(id string) (TimeZone, error) {
	return defaultLoader.Load(id)
}
