package services

import "time"

// ServiceOption is a functional option for configuring services
type ServiceOption func(*BaseService)

// WithClock replaces the clock used for timestamps.
func WithClock(now func() time.Time) ServiceOption {
	return func(s *BaseService) {
		s.now = now
	}
}

func applyOptions(base *BaseService, options []ServiceOption) {
	for _, opt := range options {
		opt(base)
	}
}
