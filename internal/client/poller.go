package client

import (
	"context"
	"sync"
	"time"
)

// DefaultPollInterval is the time between health checks.
const DefaultPollInterval = 5 * time.Second

// Status is the three-valued display state of the health indicator.
type Status string

const (
	StatusChecking     Status = "checking"
	StatusConnected    Status = "connected"
	StatusDisconnected Status = "disconnected"
)

// HealthPoller periodically checks service health and tracks a display
// status. Any transport failure reads as disconnected; the poller never
// surfaces a distinct error state.
type HealthPoller struct {
	client   *Client
	interval time.Duration
	onChange func(Status)

	mu      sync.Mutex
	current Status
}

// NewHealthPoller creates a poller in the checking state.
// onChange, if non-nil, fires on every status transition; it is called from
// the poller goroutine.
func NewHealthPoller(c *Client, interval time.Duration, onChange func(Status)) *HealthPoller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &HealthPoller{
		client:   c,
		interval: interval,
		onChange: onChange,
		current:  StatusChecking,
	}
}

// Status returns the latest observed status.
func (p *HealthPoller) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.current
}

// Run checks immediately, then on every interval tick until ctx is
// cancelled. It blocks; run it in a goroutine.
func (p *HealthPoller) Run(ctx context.Context) {
	p.check(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.check(ctx)
		}
	}
}

func (p *HealthPoller) check(ctx context.Context) {
	status := StatusDisconnected

	health, err := p.client.Healthcheck(ctx)
	if err == nil && health.Connected() {
		status = StatusConnected
	}

	p.set(status)
}

func (p *HealthPoller) set(status Status) {
	p.mu.Lock()
	changed := p.current != status
	p.current = status
	p.mu.Unlock()

	if changed && p.onChange != nil {
		p.onChange(status)
	}
}
