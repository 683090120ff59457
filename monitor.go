package theralink

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Monitor defaults.
const (
	defaultMonitorInterval = 30 * time.Second
	monitorJitterFactor    = 0.2
)

// ProgramCallback is called when an assigned program is created or updated.
type ProgramCallback func(program *Program)

// MonitorOption configures a ProgramMonitor.
type MonitorOption func(*ProgramMonitor)

// WithMonitorInterval sets the polling interval. Default: 30 seconds.
func WithMonitorInterval(interval time.Duration) MonitorOption {
	return func(m *ProgramMonitor) {
		if interval > 0 {
			m.interval = interval
		}
	}
}

// WithMonitorErrorHandler registers a handler for poll failures.
// Without one, poll errors are dropped and the next tick proceeds.
func WithMonitorErrorHandler(fn func(error)) MonitorOption {
	return func(m *ProgramMonitor) {
		m.onError = fn
	}
}

// ProgramMonitor polls one client's assigned programs on a fixed tick and
// notifies callbacks when a program appears or changes. It runs in its own
// cancellation scope: stopping the monitor never affects in-flight calls
// made elsewhere, and vice versa.
type ProgramMonitor struct {
	client   *Client
	clientID string
	interval time.Duration
	onError  func(error)

	mu        sync.Mutex
	callbacks []ProgramCallback
	lastSeen  map[string]time.Time // program ID -> UpdatedAt
	cancel    context.CancelFunc
	started   bool
}

// MonitorClientPrograms creates a monitor for the given client's programs.
// Call OnChange to register callbacks, then Start to begin polling.
func (c *Client) MonitorClientPrograms(clientID string, opts ...MonitorOption) *ProgramMonitor {
	m := &ProgramMonitor{
		client:   c,
		clientID: clientID,
		interval: defaultMonitorInterval,
		lastSeen: make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// OnChange registers a callback for new or updated programs.
func (m *ProgramMonitor) OnChange(callback ProgramCallback) {
	m.mu.Lock()
	m.callbacks = append(m.callbacks, callback)
	m.mu.Unlock()
}

// Start begins polling. Starting an already started monitor is a no-op.
func (m *ProgramMonitor) Start() {
	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return
	}
	m.started = true
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.mu.Unlock()

	go m.pollLoop(ctx)
}

// Stop cancels the polling loop. The monitor can be restarted.
func (m *ProgramMonitor) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.started {
		return
	}
	m.started = false
	m.cancel()
	m.cancel = nil
}

func (m *ProgramMonitor) pollLoop(ctx context.Context) {
	// Poll once immediately so callers see the initial state without
	// waiting a full interval.
	m.poll(ctx)

	for {
		timer := time.NewTimer(m.nextInterval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			m.poll(ctx)
		}
	}
}

// nextInterval adds jitter to the tick so many monitors started together
// do not poll in lockstep.
func (m *ProgramMonitor) nextInterval() time.Duration {
	jitter := float64(m.interval) * monitorJitterFactor * rand.Float64()
	return m.interval + time.Duration(jitter)
}

func (m *ProgramMonitor) poll(ctx context.Context) {
	programs, err := m.client.Clients().Programs(ctx, m.clientID)
	if err != nil {
		if m.onError != nil && ctx.Err() == nil {
			m.onError(err)
		}
		return
	}

	var changed []*Program
	m.mu.Lock()
	for i := range programs {
		p := &programs[i]
		if seen, ok := m.lastSeen[p.ID]; !ok || p.UpdatedAt.After(seen) {
			m.lastSeen[p.ID] = p.UpdatedAt
			changed = append(changed, p)
		}
	}
	callbacks := make([]ProgramCallback, len(m.callbacks))
	copy(callbacks, m.callbacks)
	m.mu.Unlock()

	// Low volume expected; synchronous dispatch keeps ordering simple.
	for _, p := range changed {
		for _, callback := range callbacks {
			callback(p)
		}
	}
}
