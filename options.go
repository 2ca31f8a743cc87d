package jobpulse

import (
	"log/slog"
	"maps"
)

// Option configures a Listener.
type Option func(*Listener) error

// WithLogger sets the structured logger for the listener.
func WithLogger(l *slog.Logger) Option {
	return func(ls *Listener) error {
		ls.logger = l
		return nil
	}
}

// WithDefaultLabels sets labels merged into the latency series for
// keys the event does not already provide. Event-derived keys win over
// defaults.
func WithDefaultLabels(labels Labels) Option {
	return func(ls *Listener) error {
		ls.defaults = maps.Clone(labels)
		return nil
	}
}
