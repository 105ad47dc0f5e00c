// Package loads runs bookmark trees through the pipeline in the background
// and publishes the results to the view store.
package loads

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/vrsandeep/mango-marks/internal/bookmarks"
	"github.com/vrsandeep/mango-marks/internal/models"
	"github.com/vrsandeep/mango-marks/internal/tracker"
	"github.com/vrsandeep/mango-marks/internal/view"
	"github.com/vrsandeep/mango-marks/internal/websocket"
)

// historySize bounds the number of load statuses kept for reporting.
const historySize = 20

const (
	StatusRunning = "running"
	StatusApplied = "applied"
	StatusStale   = "stale"
	StatusFailed  = "failed"
)

const (
	EventViewUpdated = "view_updated"
	EventViewStale   = "view_stale"
)

// LoadContext provides the dependencies a load needs.
// The core.App struct implements this interface.
type LoadContext interface {
	Pipeline() *tracker.Pipeline
	View() *view.Store
	WsHub() *websocket.Hub
}

type LoadStatus struct {
	Token     uint64    `json:"token"`
	Source    string    `json:"source"`
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Bookmarks int       `json:"bookmarks"` // usable leaves in the submitted tree
	Total     int       `json:"total"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time,omitempty"`
}

// Event is broadcast to websocket clients when a load finishes.
type Event struct {
	Type   string `json:"type"`
	Token  uint64 `json:"token"`
	Source string `json:"source"`
	Total  int    `json:"total"`
}

type Manager struct {
	mu      sync.Mutex
	appCtx  LoadContext
	history []*LoadStatus // oldest first
	wg      sync.WaitGroup
}

func NewManager(appCtx LoadContext) *Manager {
	return &Manager{appCtx: appCtx}
}

// Start takes a token and processes nodes in a new goroutine. The load
// outlives ctx's cancellation: a client hanging up does not stop it.
func (m *Manager) Start(ctx context.Context, source string, nodes []models.RawNode) uint64 {
	token := m.appCtx.View().Begin()
	status := m.track(token, source, bookmarks.Count(nodes))

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.run(context.WithoutCancel(ctx), status, nodes)
	}()
	return token
}

// Run is the blocking form of Start. It reports whether the result was
// applied and returns the view state afterwards.
func (m *Manager) Run(ctx context.Context, source string, nodes []models.RawNode) (view.State, bool) {
	token := m.appCtx.View().Begin()
	status := m.track(token, source, bookmarks.Count(nodes))
	m.run(context.WithoutCancel(ctx), status, nodes)

	m.mu.Lock()
	applied := status.Status == StatusApplied
	m.mu.Unlock()
	return m.appCtx.View().Current(), applied
}

// Wait blocks until every load started with Start has finished.
func (m *Manager) Wait() {
	m.wg.Wait()
}

func (m *Manager) run(ctx context.Context, status *LoadStatus, nodes []models.RawNode) {
	store := m.appCtx.View()
	token := status.Token

	log.Printf("Starting load %d from %s (%d bookmarks)", token, status.Source, status.Bookmarks)
	defer func() {
		// Ensure we always release the token and close out the status.
		if r := recover(); r != nil {
			log.Printf("Load %d panicked: %v", token, r)
			store.Discard(token)
			m.finish(status, StatusFailed, fmt.Sprintf("Load panicked: %v", r), 0)
		}
	}()

	items := m.appCtx.Pipeline().Run(ctx, nodes)
	if store.Apply(token, status.Source, items) {
		m.finish(status, StatusApplied, fmt.Sprintf("Loaded %d items.", len(items)), len(items))
		m.broadcast(Event{Type: EventViewUpdated, Token: token, Source: status.Source, Total: len(items)})
		return
	}
	m.finish(status, StatusStale, "Superseded by a newer load.", len(items))
	m.broadcast(Event{Type: EventViewStale, Token: token, Source: status.Source, Total: len(items)})
}

func (m *Manager) track(token uint64, source string, leaves int) *LoadStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	status := &LoadStatus{
		Token:     token,
		Source:    source,
		Status:    StatusRunning,
		Message:   "Load started...",
		Bookmarks: leaves,
		StartTime: time.Now(),
	}
	m.history = append(m.history, status)
	if len(m.history) > historySize {
		m.history = m.history[len(m.history)-historySize:]
	}
	return status
}

func (m *Manager) finish(status *LoadStatus, state, message string, total int) {
	m.mu.Lock()
	status.Status = state
	status.Message = message
	status.Total = total
	status.EndTime = time.Now()
	m.mu.Unlock()
	log.Printf("Finished load %d: %s", status.Token, state)
}

func (m *Manager) broadcast(e Event) {
	if hub := m.appCtx.WsHub(); hub != nil {
		hub.BroadcastJSON(e)
	}
}

// Status returns copies of the most recent loads, newest first.
func (m *Manager) Status() []LoadStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	statuses := make([]LoadStatus, 0, len(m.history))
	for i := len(m.history) - 1; i >= 0; i-- {
		statuses = append(statuses, *m.history[i])
	}
	return statuses
}
