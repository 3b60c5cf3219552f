package services

import "time"

// Recorder receives outcome counts. internal/metrics provides the
// Prometheus implementation.
type Recorder interface {
	ObserveUpload(contract, outcome string, elapsed time.Duration)
	ObserveChat(outcome string)
	SetActiveSessions(n int)
	SetQueueDepth(n int)
}

const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
)

type noopRecorder struct{}

func (noopRecorder) ObserveUpload(string, string, time.Duration) {}
func (noopRecorder) ObserveChat(string)                          {}
func (noopRecorder) SetActiveSessions(int)                       {}
func (noopRecorder) SetQueueDepth(int)                           {}

func recorderOrNoop(r Recorder) Recorder {
	if r == nil {
		return noopRecorder{}
	}
	return r
}
