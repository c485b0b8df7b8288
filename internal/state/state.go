// Package state provides thread-safe state management for the application.
package state

import (
	"sort"
	"sync"
	"time"

	"github.com/litescript/ls-launchview/internal/visibility"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventNewLaunch      EventType = "NEW_LAUNCH"
	EventVerdictChanged EventType = "VERDICT_CHANGED"
	EventRescheduled    EventType = "RESCHEDULED"
	EventLaunchRemoved  EventType = "LAUNCH_REMOVED"
)

// Event represents a change between two evaluations of the listing.
type Event struct {
	Type          EventType             `json:"type"`
	Timestamp     time.Time             `json:"timestamp"`
	LaunchID      string                `json:"launch_id"`
	Name          string                `json:"name"`
	OldLikelihood visibility.Likelihood `json:"old_likelihood"`
	NewLikelihood visibility.Likelihood `json:"new_likelihood"`
	OldTime       time.Time             `json:"old_time,omitempty"`
	NewTime       time.Time             `json:"new_time,omitempty"`
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	launches     []visibility.Assessment
	failures     []error
	lastEval     time.Time
	lastError    error
	evalDuration time.Duration
	evaluated    bool

	// Previous verdicts for event detection
	prev map[string]visibility.Assessment

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:       50,
		RefreshInterval: 5 * time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		prev:            make(map[string]visibility.Assessment),
	}
}

// Update replaces the current batch with freshly evaluated outcomes. A
// non-nil err records a failed load and keeps the previous batch.
func (m *Manager) Update(outcomes []visibility.Outcome, evalDuration time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastEval = time.Now()
	m.lastError = err
	m.evalDuration = evalDuration

	if err != nil {
		return
	}

	launches := make([]visibility.Assessment, 0, len(outcomes))
	var failures []error
	for _, o := range outcomes {
		if o.Err != nil {
			failures = append(failures, o.Err)
			continue
		}
		launches = append(launches, o.Assessment)
	}

	sort.SliceStable(launches, func(i, j int) bool {
		return launches[i].Record.Time.Before(launches[j].Record.Time)
	})

	if m.evaluated {
		m.detectEvents(launches)
	}

	m.launches = launches
	m.failures = failures
	m.evaluated = true

	m.prev = make(map[string]visibility.Assessment, len(launches))
	for _, a := range launches {
		m.prev[a.Record.ID] = a
	}
}

// detectEvents compares a new batch with the previous one.
func (m *Manager) detectEvents(launches []visibility.Assessment) {
	now := time.Now()
	seen := make(map[string]bool, len(launches))

	for _, a := range launches {
		id := a.Record.ID
		seen[id] = true

		old, ok := m.prev[id]
		if !ok {
			m.addEvent(Event{
				Type:          EventNewLaunch,
				Timestamp:     now,
				LaunchID:      id,
				Name:          a.Record.Name,
				NewLikelihood: a.Result.Likelihood,
				NewTime:       a.Record.Time,
			})
			continue
		}

		if !old.Record.Time.Equal(a.Record.Time) {
			m.addEvent(Event{
				Type:      EventRescheduled,
				Timestamp: now,
				LaunchID:  id,
				Name:      a.Record.Name,
				OldTime:   old.Record.Time,
				NewTime:   a.Record.Time,
			})
		}

		if old.Result.Likelihood != a.Result.Likelihood {
			m.addEvent(Event{
				Type:          EventVerdictChanged,
				Timestamp:     now,
				LaunchID:      id,
				Name:          a.Record.Name,
				OldLikelihood: old.Result.Likelihood,
				NewLikelihood: a.Result.Likelihood,
			})
		}
	}

	// Stable order for removals
	var removed []string
	for id := range m.prev {
		if !seen[id] {
			removed = append(removed, id)
		}
	}
	sort.Strings(removed)
	for _, id := range removed {
		m.addEvent(Event{
			Type:          EventLaunchRemoved,
			Timestamp:     now,
			LaunchID:      id,
			Name:          m.prev[id].Record.Name,
			OldLikelihood: m.prev[id].Result.Likelihood,
		})
	}
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Launches     []visibility.Assessment
	Failures     []error
	LastEval     time.Time
	LastError    error
	EvalDuration time.Duration
	Events       []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	launches := make([]visibility.Assessment, len(m.launches))
	copy(launches, m.launches)

	failures := make([]error, len(m.failures))
	copy(failures, m.failures)

	return Snapshot{
		Launches:     launches,
		Failures:     failures,
		LastEval:     m.lastEval,
		LastError:    m.lastError,
		EvalDuration: m.evalDuration,
		Events:       m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// Launch returns the current assessment for a launch ID.
func (m *Manager) Launch(id string) (visibility.Assessment, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.prev[id]
	return a, ok
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true once a batch has been evaluated.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.evaluated
}
