package service

import "time"

// MetricsRecorder captures instrumentation events. Implementations can expose them to
// Prometheus or discard them.
type MetricsRecorder interface {
	// ObserveGeneration records one generation request by task, source and outcome
	// ("success", "validation", "upstream", "malformed", "internal").
	ObserveGeneration(task, source, outcome string)

	// ObserveUpstreamLatency records the duration of one call to the generation API.
	ObserveUpstreamLatency(task string, duration time.Duration)

	// IncGateRejection counts requests refused by the route gate ("missing_token", "invalid_token").
	IncGateRejection(reason string)

	// IncAccountEvent counts account operations ("register", "login", "login_failed", ...).
	IncAccountEvent(event string)
}
