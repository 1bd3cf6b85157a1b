package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	scheduleRepo "vaktplan/database/repository/schedule"
	"vaktplan/models"
	"vaktplan/services/grid"
	"vaktplan/services/report"
	"vaktplan/solver"
	"vaktplan/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// GenerateResult is a rendered schedule plus the session created for it.
type GenerateResult struct {
	SessionID string             `json:"session_id"`
	Grid      models.GridView    `json:"grid"`
	Report    *models.ReportView `json:"report,omitempty"`
}

// ScheduleService drives the generate round trip.
type ScheduleService interface {
	Generate(ctx context.Context, config models.ScheduleConfig) (*GenerateResult, error)
}

// DefaultScheduleService calls the solver, renders the grid, opens the
// session and appends the document to the history log.
type DefaultScheduleService struct {
	Solver   solver.Client
	Sessions SessionStore
	History  scheduleRepo.HistoryRepository
}

const dateLayout = "2006-01-02"

func (s *DefaultScheduleService) Generate(ctx context.Context, config models.ScheduleConfig) (*GenerateResult, error) {
	logger := utils.GetLogger()

	// The form prefills today / one week out; requests without a range get
	// the same defaults.
	if config.StartDate == "" {
		config.StartDate = time.Now().Format(dateLayout)
	}
	if config.EndDate == "" {
		config.EndDate = time.Now().AddDate(0, 0, 7).Format(dateLayout)
	}

	resp, err := s.Solver.Generate(ctx, config)
	if err != nil {
		return nil, err
	}
	if resp.UpdatedSchedule == nil || len(resp.UpdatedSchedule.Schedules) == 0 {
		return nil, errors.New("no schedule data returned")
	}

	result := &GenerateResult{
		SessionID: uuid.New().String(),
		Grid:      grid.Render(resp.UpdatedSchedule),
	}

	// A generate response may already carry violations, discrepancies or
	// both; the discrepancy cards render even when the violations block is
	// absent. A malformed block must not sink the schedule itself, so it
	// is logged and dropped.
	if resp.NewViolations != nil || len(resp.NewDiscrepancies) > 0 {
		violations := resp.NewViolations
		if violations == nil {
			violations = &models.ViolationsPayload{Summary: &models.ViolationSummary{}}
		}
		view, presentErr := report.Present(violations, resp.NewDiscrepancies)
		if presentErr != nil {
			logger.Warn("Ignoring malformed violations block in generate response", zap.Error(presentErr))
		} else {
			result.Report = view
		}
	}

	now := time.Now()
	session := &models.ScheduleSession{
		ID:        result.SessionID,
		Config:    config,
		Document:  *resp.UpdatedSchedule,
		Report:    result.Report,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	appendHistory(ctx, s.History, result.SessionID, models.HistoryGenerated, resp.UpdatedSchedule)
	return result, nil
}

// appendHistory is best-effort: a full history log is worth having, a
// failed insert is not worth failing the request over.
func appendHistory(ctx context.Context, repo scheduleRepo.HistoryRepository, sessionID, kind string, payload any) {
	if repo == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		utils.GetLogger().Warn("Failed to encode history payload", zap.Error(err))
		return
	}
	rec := models.HistoryRecord{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Kind:      kind,
		Payload:   string(data),
		CreatedAt: time.Now(),
	}
	if err := repo.Append(ctx, rec); err != nil {
		utils.GetLogger().Warn("Failed to append schedule history",
			zap.String("session_id", sessionID), zap.String("kind", kind), zap.Error(err))
	}
}
