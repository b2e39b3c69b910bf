package diagnostic

import (
	"context"
	"log/slog"
)

// Observer receives diagnostic events.
type Observer interface {
	Observe(Diagnostic)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(Diagnostic)

// Observe calls f(d).
func (f ObserverFunc) Observe(d Diagnostic) {
	f(d)
}

// Discard is an Observer that drops every event.
var Discard Observer = ObserverFunc(func(Diagnostic) {})

// OrDiscard returns o, or Discard when o is nil.
func OrDiscard(o Observer) Observer {
	if o == nil {
		return Discard
	}

	return o
}

type multi []Observer

func (m multi) Observe(d Diagnostic) {
	for _, o := range m {
		o.Observe(d)
	}
}

// Multi returns an Observer that forwards each event to every non-nil
// observer in order.
func Multi(observers ...Observer) Observer {
	var m multi
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}

	return m
}

// LevelTrace is the slog level used for trace events.
const LevelTrace = slog.LevelDebug - 4

// Level maps a severity to a slog level.
func (s Severity) Level() slog.Level {
	switch s {
	case SeverityTrace:
		return LevelTrace
	case SeverityDebug:
		return slog.LevelDebug
	case SeverityInfo:
		return slog.LevelInfo
	case SeverityWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// SlogObserver writes events to a slog.Logger.
type SlogObserver struct {
	logger *slog.Logger
}

// NewSlogObserver creates a SlogObserver. A nil logger uses slog.Default().
func NewSlogObserver(logger *slog.Logger) *SlogObserver {
	if logger == nil {
		logger = slog.Default()
	}

	return &SlogObserver{logger: logger}
}

// Observe logs d at the level matching its severity.
func (o *SlogObserver) Observe(d Diagnostic) {
	attrs := []slog.Attr{slog.String("code", d.Code)}
	if d.Mapping != "" {
		attrs = append(attrs, slog.String("mapping", d.Mapping))
	}

	if d.Package != "" {
		attrs = append(attrs, slog.String("package", d.Package))
	}

	if d.Subject != "" {
		attrs = append(attrs, slog.String("subject", d.Subject))
	}

	o.logger.LogAttrs(context.Background(), d.Severity.Level(), d.Message, attrs...)
}
