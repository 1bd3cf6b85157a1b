package schedule

import (
	"context"
	"sync"
	"time"

	scheduleRepo "vaktplan/database/repository/schedule"
	"vaktplan/models"
	"vaktplan/services/grid"
	"vaktplan/services/report"
	"vaktplan/solver"
	"vaktplan/utils"

	"go.uber.org/zap"
)

// EditResult is the outcome of one edit round. Stale means a later edit's
// response was applied before this one came back; the caller keeps whatever
// report it already shows.
type EditResult struct {
	Report *models.ReportView `json:"report,omitempty"`
	Stale  bool               `json:"stale,omitempty"`
}

// EditCoordinator runs one re-validation round per completed cell edit.
type EditCoordinator interface {
	ApplyEdit(ctx context.Context, sessionID string, view models.GridView) (*EditResult, error)
	Report(ctx context.Context, sessionID string) (*models.ReportView, error)
}

// DefaultEditCoordinator re-derives the whole document from the posted
// presentation, validates it against the solver, and applies responses in
// issue order: each request carries a per-session monotonically increasing
// sequence number and a response loses if a higher number already landed.
type DefaultEditCoordinator struct {
	Solver   solver.Client
	Sessions SessionStore
	History  scheduleRepo.HistoryRepository

	// StateTTL bounds how long a session's sequence state is kept after
	// its last edit; zero means the session-TTL default.
	StateTTL time.Duration

	mu     sync.Mutex
	states map[string]*sessionState
}

type sessionState struct {
	issued  uint64
	touched time.Time

	// commit guards applied together with the session write, so a slow
	// write for an earlier response cannot land after a later one's.
	commit  sync.Mutex
	applied uint64
}

const defaultStateTTL = 2 * time.Hour

func (c *DefaultEditCoordinator) state(sessionID string) *sessionState {
	if c.states == nil {
		c.states = make(map[string]*sessionState)
	}
	st, ok := c.states[sessionID]
	if !ok {
		c.evictExpired()
		st = &sessionState{}
		c.states[sessionID] = st
	}
	st.touched = time.Now()
	return st
}

// evictExpired drops sequence state that has outlived the session TTL; the
// session itself is long gone from redis by then.
func (c *DefaultEditCoordinator) evictExpired() {
	ttl := c.StateTTL
	if ttl <= 0 {
		ttl = defaultStateTTL
	}
	cutoff := time.Now().Add(-ttl)
	for id, st := range c.states {
		if st.touched.Before(cutoff) {
			delete(c.states, id)
		}
	}
}

func (c *DefaultEditCoordinator) stateFor(sessionID string) *sessionState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state(sessionID)
}

// nextSeq hands out the sequence number for a new validate request.
func (c *DefaultEditCoordinator) nextSeq(sessionID string) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	st := c.state(sessionID)
	st.issued++
	return st.issued
}

func (c *DefaultEditCoordinator) ApplyEdit(ctx context.Context, sessionID string, view models.GridView) (*EditResult, error) {
	logger := utils.GetLogger()

	session, err := c.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	// Always a full re-derivation of the presentation, never a patch of
	// the edited cell alone.
	doc := grid.Parse(view)
	targetHours := models.TargetHoursFromRooms(session.Config.Rooms)

	seq := c.nextSeq(sessionID)
	resp, err := c.Solver.Validate(ctx, solver.ValidateRequest{
		UpdatedSchedule: *doc,
		TargetHours:     targetHours,
	})
	if err != nil {
		// The previously applied report stays as is.
		return nil, err
	}

	reportView, err := report.Present(resp.Violations, resp.Discrepancies)
	if err != nil {
		return nil, err
	}

	// The stale check and the session write are one critical section per
	// session: otherwise two responses arriving in issue order can both
	// pass the check and race their writes.
	st := c.stateFor(sessionID)
	st.commit.Lock()
	defer st.commit.Unlock()
	if seq < st.applied {
		logger.Info("Discarding stale validation response",
			zap.String("session_id", sessionID), zap.Uint64("seq", seq))
		return &EditResult{Stale: true}, nil
	}

	session.Document = *doc
	session.Report = reportView
	session.UpdatedAt = time.Now()
	if err := c.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}
	st.applied = seq

	appendHistory(ctx, c.History, sessionID, models.HistoryValidated, reportView)
	return &EditResult{Report: reportView}, nil
}

// Report returns the currently applied panels for a session.
func (c *DefaultEditCoordinator) Report(ctx context.Context, sessionID string) (*models.ReportView, error) {
	session, err := c.Sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Report, nil
}
