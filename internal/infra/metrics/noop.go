package metrics

import (
	"time"

	"tutoria/internal/domain/service"
)

type noopRecorder struct{}

// NewNoop returns a recorder that discards every event.
func NewNoop() service.MetricsRecorder {
	return noopRecorder{}
}

func (noopRecorder) ObserveGeneration(string, string, string)     {}
func (noopRecorder) ObserveUpstreamLatency(string, time.Duration) {}
func (noopRecorder) IncGateRejection(string)                      {}
func (noopRecorder) IncAccountEvent(string)                       {}
