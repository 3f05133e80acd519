package core

import "time"

// SessionOption customises a session at construction time.
type SessionOption func(*Session)

// WithLogger attaches a structured logger to the session.
func WithLogger(logger Logger) SessionOption {
	return func(s *Session) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics attaches a metrics recorder to the session.
func WithMetrics(metrics MetricsRecorder) SessionOption {
	return func(s *Session) {
		if metrics != nil {
			s.metrics = metrics
		}
	}
}

// WithClock overrides the session time source. Intended for tests.
func WithClock(now func() time.Time) SessionOption {
	return func(s *Session) {
		if now != nil {
			s.nowFn = now
		}
	}
}
