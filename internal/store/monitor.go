package store

import (
	"context"
	"time"
)

// DefaultMonitorInterval is the time between connectivity probes.
const DefaultMonitorInterval = 10 * time.Second

// pingTimeout bounds a single connectivity probe.
const pingTimeout = 3 * time.Second

// StartMonitor runs a background loop that pings the store on an interval and
// flips the connection state between connected and disconnected accordingly,
// so health checks reflect a store outage without a process restart.
// It returns immediately; the loop stops when ctx is cancelled.
// The monitor never touches the state while a Disconnect is in progress.
func (s *Store) StartMonitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultMonitorInterval
	}

	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.probe(ctx)
			}
		}
	}()
}

func (s *Store) probe(ctx context.Context) {
	state := s.State()
	if state == StateDisconnecting || state == StateConnecting {
		return
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := s.Ping(pingCtx); err != nil {
		if state == StateConnected {
			s.logger.Warn("store unreachable", "error", err)
			s.state.CompareAndSwap(int32(StateConnected), int32(StateDisconnected))
		}
		return
	}

	if state == StateDisconnected {
		s.logger.Info("store reachable again")
		s.state.CompareAndSwap(int32(StateDisconnected), int32(StateConnected))
	}
}
