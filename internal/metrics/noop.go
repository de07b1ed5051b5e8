package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncUserCreated is a no-op.
func (n *NoopRecorder) IncUserCreated() {}

// IncUserConflict is a no-op.
func (n *NoopRecorder) IncUserConflict() {}

// IncValidationFailure is a no-op.
func (n *NoopRecorder) IncValidationFailure() {}

// ObserveCreateUserDuration is a no-op.
func (n *NoopRecorder) ObserveCreateUserDuration(duration time.Duration) {}
