package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	UsersCreated              uint64
	UserConflicts             uint64
	ValidationFailures        uint64
	CreateUserDurationCount   uint64
	CreateUserDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	usersCreated              uint64
	userConflicts             uint64
	validationFailures        uint64
	createUserDurationCount   uint64
	createUserDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		UsersCreated:              atomic.LoadUint64(&m.usersCreated),
		UserConflicts:             atomic.LoadUint64(&m.userConflicts),
		ValidationFailures:        atomic.LoadUint64(&m.validationFailures),
		CreateUserDurationCount:   atomic.LoadUint64(&m.createUserDurationCount),
		CreateUserDurationTotalNs: atomic.LoadInt64(&m.createUserDurationTotalNs),
	}
}

// IncUserCreated increments the created-user counter.
func (m *InMemoryRecorder) IncUserCreated() {
	atomic.AddUint64(&m.usersCreated, 1)
}

// IncUserConflict increments the duplicate-email counter.
func (m *InMemoryRecorder) IncUserConflict() {
	atomic.AddUint64(&m.userConflicts, 1)
}

// IncValidationFailure increments the rejected-input counter.
func (m *InMemoryRecorder) IncValidationFailure() {
	atomic.AddUint64(&m.validationFailures, 1)
}

// ObserveCreateUserDuration records a create-user duration.
func (m *InMemoryRecorder) ObserveCreateUserDuration(duration time.Duration) {
	atomic.AddUint64(&m.createUserDurationCount, 1)
	atomic.AddInt64(&m.createUserDurationTotalNs, duration.Nanoseconds())
}
