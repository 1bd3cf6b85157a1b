package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"vaktplan/models"
	"vaktplan/services/grid"
	"vaktplan/services/report"
	"vaktplan/solver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSolver struct {
	mu        sync.Mutex
	generate  func(models.ScheduleConfig) (*solver.GenerateResponse, error)
	validate  func(solver.ValidateRequest) (*solver.ValidateResponse, error)
	validates []solver.ValidateRequest
}

func (f *fakeSolver) Generate(ctx context.Context, config models.ScheduleConfig) (*solver.GenerateResponse, error) {
	return f.generate(config)
}

func (f *fakeSolver) Validate(ctx context.Context, req solver.ValidateRequest) (*solver.ValidateResponse, error) {
	f.mu.Lock()
	f.validates = append(f.validates, req)
	f.mu.Unlock()
	return f.validate(req)
}

type memoryStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ScheduleSession
}

func newMemoryStore() *memoryStore {
	return &memoryStore{sessions: make(map[string]*models.ScheduleSession)}
}

func (s *memoryStore) Save(ctx context.Context, session *models.ScheduleSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *memoryStore) Get(ctx context.Context, id string) (*models.ScheduleSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func testSession(id string) *models.ScheduleSession {
	return &models.ScheduleSession{
		ID: id,
		Config: models.ScheduleConfig{
			Rooms: []models.Room{
				{Name: "Tjørnin", Staff: []models.StaffMember{
					{Initial: "J", TargetWeeklyHours: 37},
					{Initial: "H", TargetWeeklyHours: 32},
				}},
			},
		},
	}
}

func testView() models.GridView {
	doc := &models.ScheduleDocument{}
	ds := doc.EnsureRoom("Tjørnin").EnsureWeek("week1")
	ds.Assign("monday", "07:30-08:00", []string{"J"})
	return grid.Render(doc)
}

func validateResponse(total int) *solver.ValidateResponse {
	return &solver.ValidateResponse{
		Violations: &models.ViolationsPayload{
			Summary: &models.ViolationSummary{TotalViolations: total},
		},
	}
}

func validateReport(total int) (*models.ReportView, error) {
	return report.Present(validateResponse(total).Violations, nil)
}

func TestApplyEditValidatesReDerivedDocument(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = testSession("s1")
	fake := &fakeSolver{validate: func(solver.ValidateRequest) (*solver.ValidateResponse, error) {
		return validateResponse(2), nil
	}}
	coord := &DefaultEditCoordinator{Solver: fake, Sessions: store}

	view := testView()
	// One cell emptied, one retyped: the posted grid is re-derived whole.
	view.Tables[0].Rows[0].Cells[0].Text = ""
	view.Tables[0].Rows[3].Cells[2].Text = "H, J"

	result, err := coord.ApplyEdit(context.Background(), "s1", view)
	require.NoError(t, err)
	assert.False(t, result.Stale)
	require.NotNil(t, result.Report)
	assert.Equal(t, 2, result.Report.Summary.TotalViolations)

	// Exactly one validate round per edit.
	require.Len(t, fake.validates, 1)
	req := fake.validates[0]

	ds := req.UpdatedSchedule.FindRoom("Tjørnin").Weeks["week1"]
	assert.Equal(t, []string{models.StaffNeededPlaceholder}, ds.StaffFor("monday", "07:30-08:00"))
	assert.Equal(t, []string{"H", "J"}, ds.StaffFor("wednesday", "09:00-11:30"))
	assert.Equal(t, models.TargetHours{"J": 37, "H": 32}, req.TargetHours)

	// The applied document and report land on the session.
	session := store.sessions["s1"]
	assert.Equal(t, result.Report, session.Report)
	assert.Equal(t, []string{"H", "J"}, session.Document.FindRoom("Tjørnin").Weeks["week1"].StaffFor("wednesday", "09:00-11:30"))
}

// Two edits issued in order but answered out of order: the later edit's
// report must win and the earlier response must be discarded as stale.
func TestApplyEditDiscardsStaleResponse(t *testing.T) {
	store := newMemoryStore()
	store.sessions["s1"] = testSession("s1")

	entered := make(chan struct{})
	release := make(chan struct{})
	var mu sync.Mutex
	calls := 0
	fake := &fakeSolver{validate: func(solver.ValidateRequest) (*solver.ValidateResponse, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			close(entered)
			<-release
		}
		return validateResponse(n), nil
	}}
	coord := &DefaultEditCoordinator{Solver: fake, Sessions: store}

	var firstResult *EditResult
	var firstErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		firstResult, firstErr = coord.ApplyEdit(context.Background(), "s1", testView())
	}()

	// The first edit has taken its sequence number and is stuck in flight;
	// the second edit completes before it.
	<-entered
	second, err := coord.ApplyEdit(context.Background(), "s1", testView())
	require.NoError(t, err)
	assert.False(t, second.Stale)
	assert.Equal(t, 2, second.Report.Summary.TotalViolations)

	close(release)
	<-done
	require.NoError(t, firstErr)
	assert.True(t, firstResult.Stale)
	assert.Nil(t, firstResult.Report)

	// The applied state is still the second edit's.
	applied, err := coord.Report(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, applied.Summary.TotalViolations)
}

// snapshotStore mimics the redis store's copy semantics: Get decodes a
// fresh session, Save stores a marshaled snapshot. The first write is held
// back on a gate to model a slow SET.
type snapshotStore struct {
	mu      sync.Mutex
	blobs   map[string][]byte
	saved   []int // TotalViolations of each saved report, in write order
	entered chan struct{}
	gate    chan struct{}
	writes  int
}

func newSnapshotStore() *snapshotStore {
	return &snapshotStore{
		blobs:   make(map[string][]byte),
		entered: make(chan struct{}),
		gate:    make(chan struct{}),
	}
}

func (s *snapshotStore) Save(ctx context.Context, session *models.ScheduleSession) error {
	data, err := json.Marshal(session)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.writes++
	first := s.writes == 1
	s.mu.Unlock()
	if first {
		close(s.entered)
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[session.ID] = data
	if session.Report != nil {
		s.saved = append(s.saved, session.Report.Summary.TotalViolations)
	}
	return nil
}

func (s *snapshotStore) Get(ctx context.Context, id string) (*models.ScheduleSession, error) {
	s.mu.Lock()
	data, ok := s.blobs[id]
	s.mu.Unlock()
	if !ok {
		return nil, ErrSessionNotFound
	}
	var session models.ScheduleSession
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// Responses arriving in issue order must also commit in issue order: a slow
// session write for the first edit cannot land on top of the second's.
func TestApplyEditSerializesSessionWrites(t *testing.T) {
	store := newSnapshotStore()
	seed, err := json.Marshal(testSession("s1"))
	require.NoError(t, err)
	store.blobs["s1"] = seed

	var mu sync.Mutex
	calls := 0
	validated2 := make(chan struct{})
	fake := &fakeSolver{validate: func(solver.ValidateRequest) (*solver.ValidateResponse, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 2 {
			close(validated2)
		}
		return validateResponse(n), nil
	}}
	coord := &DefaultEditCoordinator{Solver: fake, Sessions: store}

	var firstResult *EditResult
	var firstErr error
	firstDone := make(chan struct{})
	go func() {
		defer close(firstDone)
		firstResult, firstErr = coord.ApplyEdit(context.Background(), "s1", testView())
	}()

	// The first edit is stuck inside its session write; issue the second
	// and release the write only once the second's response is in hand.
	<-store.entered
	var secondResult *EditResult
	var secondErr error
	secondDone := make(chan struct{})
	go func() {
		defer close(secondDone)
		secondResult, secondErr = coord.ApplyEdit(context.Background(), "s1", testView())
	}()
	<-validated2
	close(store.gate)
	<-firstDone
	<-secondDone

	require.NoError(t, firstErr)
	require.NoError(t, secondErr)
	assert.False(t, firstResult.Stale)
	assert.False(t, secondResult.Stale)

	// The later response's report must survive.
	applied, err := coord.Report(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, 2, applied.Summary.TotalViolations)
	assert.Equal(t, []int{1, 2}, store.saved)
}

// Sequence state for sessions idle past the TTL is pruned as new sessions
// arrive; redis has long dropped the sessions themselves.
func TestSequenceStateEviction(t *testing.T) {
	coord := &DefaultEditCoordinator{Solver: &fakeSolver{}, Sessions: newMemoryStore(), StateTTL: time.Minute}

	coord.mu.Lock()
	coord.state("idle").touched = time.Now().Add(-2 * time.Minute)
	coord.mu.Unlock()

	coord.mu.Lock()
	coord.state("fresh")
	_, idleKept := coord.states["idle"]
	_, freshKept := coord.states["fresh"]
	coord.mu.Unlock()

	assert.False(t, idleKept)
	assert.True(t, freshKept)
}

func TestApplyEditUnknownSession(t *testing.T) {
	coord := &DefaultEditCoordinator{Solver: &fakeSolver{}, Sessions: newMemoryStore()}
	_, err := coord.ApplyEdit(context.Background(), "missing", testView())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestApplyEditKeepsPriorReportOnFailure(t *testing.T) {
	prior, err := validateReport(5)
	require.NoError(t, err)

	store := newMemoryStore()
	session := testSession("s1")
	session.Report = prior
	store.sessions["s1"] = session

	fake := &fakeSolver{validate: func(solver.ValidateRequest) (*solver.ValidateResponse, error) {
		return nil, errors.New("Failed to update schedule and re-evaluate violations.")
	}}
	coord := &DefaultEditCoordinator{Solver: fake, Sessions: store}

	_, err = coord.ApplyEdit(context.Background(), "s1", testView())
	require.Error(t, err)

	applied, err := coord.Report(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, prior, applied)
}

// A validate response without its summary block is malformed; the edit fails
// and the prior report stays applied.
func TestApplyEditRejectsMalformedViolations(t *testing.T) {
	prior, err := validateReport(5)
	require.NoError(t, err)

	store := newMemoryStore()
	session := testSession("s1")
	session.Report = prior
	store.sessions["s1"] = session

	fake := &fakeSolver{validate: func(solver.ValidateRequest) (*solver.ValidateResponse, error) {
		return &solver.ValidateResponse{}, nil
	}}
	coord := &DefaultEditCoordinator{Solver: fake, Sessions: store}

	_, err = coord.ApplyEdit(context.Background(), "s1", testView())
	require.Error(t, err)
	assert.Equal(t, prior, store.sessions["s1"].Report)
}
