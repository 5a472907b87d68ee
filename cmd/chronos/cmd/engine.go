package cmd

import (
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	mdwlog "github.com/msto63/chronos/foundation/core/log"
	"github.com/msto63/chronos/pkg/core/cache"
	"github.com/msto63/chronos/pkg/core/config"
	"github.com/msto63/chronos/pkg/core/logging"
	"github.com/msto63/chronos/pkg/core/metrics"
	"github.com/msto63/chronos/pkg/temporal/calendar"
	"github.com/msto63/chronos/pkg/temporal/iso"
	"github.com/msto63/chronos/pkg/temporal/marker"
	"github.com/msto63/chronos/pkg/temporal/rounding"
	"github.com/msto63/chronos/pkg/temporal/timezone"
)

// engine wires the configured defaults, logger and memo tables for one
// invocation
type engine struct {
	cfg       *config.Config
	logger    *mdwlog.Logger
	calendars *calendar.Registry
	zones     *timezone.Loader

	gatherer prometheus.Gatherer
}

func newEngine(cfg *config.Config, stderr io.Writer) *engine {
	logger := logging.NewLogger(logging.LoggerConfig{
		Name:          "chronos",
		Level:         cfg.Log.Level,
		Format:        cfg.Log.Format,
		CorrelationID: uuid.New().String(),
		Output:        stderr,
	})

	e := &engine{cfg: cfg, logger: logger}
	var observer cache.Observer
	if cfg.Engine.Metrics {
		reg := prometheus.NewRegistry()
		observer = metrics.New(reg)
		e.gatherer = reg
	}
	e.calendars = calendar.NewRegistry(calendar.Options{
		Logger:      logger,
		Observer:    observer,
		SearchLimit: cfg.Engine.SearchLimit,
	})
	e.zones = timezone.NewLoader(logger, observer)
	return e
}

// calendar returns the configured calendar
func (e *engine) calendar() (*calendar.Calendar, error) {
	return e.calendars.Get(e.cfg.Engine.Calendar)
}

func (e *engine) overflow() (iso.Overflow, error) {
	return iso.ParseOverflow(e.cfg.Engine.Overflow)
}

func (e *engine) disambiguation() (timezone.Disambiguation, error) {
	return timezone.ParseDisambiguation(e.cfg.Engine.Disambiguation)
}

func (e *engine) offsetPolicy() (timezone.OffsetPolicy, error) {
	return timezone.ParseOffsetPolicy(e.cfg.Engine.Offset)
}

func (e *engine) roundingMode() rounding.Mode {
	m, err := rounding.ParseMode(e.cfg.Engine.RoundingMode)
	if err != nil {
		return rounding.HalfExpand
	}
	return m
}

// zone resolves an explicit id, falling back to the --tz flag and then to
// the configured default
func (e *engine) zone(id string) (timezone.TimeZone, error) {
	if id == "" {
		id = zoneID
	}
	if id == "" {
		id = e.cfg.Engine.TimeZone
	}
	return e.zones.Load(id)
}

// parseMarker reads a date-time. It is zoned when it carries a bracketed
// zone or when --tz is set, plain otherwise.
func (e *engine) parseMarker(s string) (marker.Marker, error) {
	in, err := timezone.ParseZoned(s)
	if err != nil {
		return nil, err
	}
	cal, err := e.calendar()
	if err != nil {
		return nil, err
	}
	if in.Zone == "" && zoneID == "" {
		if in.HasOffset || in.UTCDesignator {
			tz, err := e.offsetZone(in)
			if err != nil {
				return nil, err
			}
			return e.zonedFrom(cal, tz, in)
		}
		return marker.NewPlain(cal, in.DateTime)
	}
	tz, err := e.zone(in.Zone)
	if err != nil {
		return nil, err
	}
	return e.zonedFrom(cal, tz, in)
}

func (e *engine) offsetZone(in timezone.ZonedInput) (timezone.TimeZone, error) {
	if in.UTCDesignator {
		return timezone.UTC, nil
	}
	return timezone.NewFixedOffset(in.Offset)
}

func (e *engine) zonedFrom(cal *calendar.Calendar, tz timezone.TimeZone, in timezone.ZonedInput) (marker.Zoned, error) {
	dis, err := e.disambiguation()
	if err != nil {
		return marker.Zoned{}, err
	}
	var instant = iso.ToInstant(in.DateTime)
	switch {
	case in.UTCDesignator:
		if err := instant.CheckInstant(); err != nil {
			return marker.Zoned{}, err
		}
	case in.HasOffset:
		policy, err := e.offsetPolicy()
		if err != nil {
			return marker.Zoned{}, err
		}
		instant, err = timezone.ResolveWithExplicitOffset(tz, in.DateTime, in.Offset, policy, dis, in.MinutePrecision)
		if err != nil {
			return marker.Zoned{}, err
		}
	default:
		instant, err = timezone.ResolveSingleInstant(tz, in.DateTime, dis)
		if err != nil {
			return marker.Zoned{}, err
		}
	}
	e.logger.Debug("date-time resolved",
		mdwlog.Field("input", in.DateTime.String()),
		mdwlog.Field("timeZone", tz.ID()),
		mdwlog.Field("disambiguation", dis.String()))
	return marker.NewZoned(cal, tz, instant)
}

// reportMetrics logs the memo table counters gathered during the run
func (e *engine) reportMetrics() {
	if e.gatherer == nil {
		return
	}
	families, err := e.gatherer.Gather()
	if err != nil {
		e.logger.Warn("metrics unavailable", mdwlog.Err(err))
		return
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var labels []string
			for _, lp := range m.GetLabel() {
				labels = append(labels, lp.GetName()+"="+lp.GetValue())
			}
			value := m.GetCounter().GetValue() + m.GetGauge().GetValue()
			e.logger.Info("memo table",
				mdwlog.Field("metric", mf.GetName()),
				mdwlog.Field("labels", strings.Join(labels, ",")),
				mdwlog.Field("value", value))
		}
	}
}
