package analytics

import (
	"context"
	"sync"

	"github.com/Modeva-Ecommerce/modeva-analytics/models"
	"github.com/Modeva-Ecommerce/modeva-analytics/utils/timerange"
	"github.com/sirupsen/logrus"
)

// Snapshotter produces a snapshot for a selection.
type Snapshotter interface {
	Aggregate(ctx context.Context, sel models.TimeFilterValue) (*models.AnalyticsSnapshot, error)
}

// dashboardSession keeps the committed selection and snapshot as a pair.
// pending holds a selection still being aggregated.
type dashboardSession struct {
	generation uint64
	pending    *models.TimeFilterValue
	cancel     context.CancelFunc

	committed    models.DashboardState
	hasCommitted bool
}

// Dashboard tracks the active selection of each admin. A newer selection
// cancels the one still in flight, and a result that arrives for an older
// generation is dropped instead of replacing the newer snapshot.
type Dashboard struct {
	source Snapshotter

	mu       sync.Mutex
	sessions map[string]*dashboardSession
}

func NewDashboard(source Snapshotter) *Dashboard {
	return &Dashboard{source: source, sessions: make(map[string]*dashboardSession)}
}

// Select makes sel the active selection of owner and aggregates it.
// It returns ErrSuperseded when owner selected something else meanwhile.
func (d *Dashboard) Select(ctx context.Context, owner string, sel models.TimeFilterValue) (*models.DashboardState, error) {
	if err := timerange.Validate(sel); err != nil {
		return nil, err
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	d.mu.Lock()
	s, ok := d.sessions[owner]
	if !ok {
		s = &dashboardSession{}
		d.sessions[owner] = s
	}
	if s.cancel != nil {
		s.cancel()
	}
	s.generation++
	gen := s.generation
	pending := sel
	s.pending = &pending
	s.cancel = cancel
	d.mu.Unlock()

	snap, err := d.source.Aggregate(runCtx, sel)

	d.mu.Lock()
	defer d.mu.Unlock()
	if s.generation != gen {
		logrus.Infof("[analytics.dashboard] discard owner=%s key=%s generation=%d current=%d", owner, sel.Key(), gen, s.generation)
		return nil, ErrSuperseded
	}
	s.cancel = nil
	s.pending = nil
	if err != nil {
		logrus.Warnf("[analytics.dashboard] select failed owner=%s key=%s generation=%d: %v", owner, sel.Key(), gen, err)
		return nil, err
	}
	s.committed = models.DashboardState{Selection: sel, Generation: gen, Snapshot: snap}
	s.hasCommitted = true
	state := s.committed
	return &state, nil
}

// State returns the last committed selection and snapshot of owner, plus
// the selection still in flight if there is one. A failed selection never
// replaces the committed pair.
func (d *Dashboard) State(owner string) (models.DashboardState, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	s, ok := d.sessions[owner]
	if !ok || (!s.hasCommitted && s.pending == nil) {
		return models.DashboardState{}, false
	}
	state := s.committed
	if s.pending != nil {
		p := *s.pending
		state.Pending = &p
	}
	return state, true
}
