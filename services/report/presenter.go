package report

import (
	"errors"
	"strconv"
	"strings"

	"vaktplan/models"
)

// ErrMissingSummary marks a violations payload without its summary block.
// Such a payload is malformed and must not be partially rendered.
var ErrMissingSummary = errors.New("violations payload has no summary")

// Category keys and display labels, in the fixed presentation order.
var categories = []struct {
	key   string
	label string
}{
	{"constraint_3_weekly_hours", "Weekly Hours"},
	{"constraint_4_friday_early_leave", "Friday Early Leave"},
	{"constraint_5_fixed_schedules", "Fixed Schedules"},
	{"constraint_6_staffing_levels", "Staffing Levels"},
}

// Present renders a validator response into the report view: the summary
// panel, the four category panels in fixed order, and the discrepancy
// cards. It fails on a payload without a summary and renders nothing in
// that case.
func Present(violations *models.ViolationsPayload, discrepancies []models.Discrepancy) (*models.ReportView, error) {
	if violations == nil || violations.Summary == nil {
		return nil, ErrMissingSummary
	}

	counts := violations.Summary.ViolationsByConstraint
	view := &models.ReportView{
		Summary: models.SummaryPanel{
			TotalViolations: violations.Summary.TotalViolations,
			Breakdown: []models.CategoryCount{
				{Key: categories[0].key, Label: categories[0].label, Count: counts.WeeklyHours},
				{Key: categories[1].key, Label: categories[1].label, Count: counts.FridayEarlyLeave},
				{Key: categories[2].key, Label: categories[2].label, Count: counts.FixedSchedules},
				{Key: categories[3].key, Label: categories[3].label, Count: counts.StaffingLevels},
			},
		},
		Panels: []models.CategoryPanel{
			{Key: categories[0].key, Label: categories[0].label, Cards: weeklyHoursCards(violations.Violations.WeeklyHours)},
			{Key: categories[1].key, Label: categories[1].label, Cards: fridayEarlyLeaveCards(violations.Violations.FridayEarlyLeave)},
			{Key: categories[2].key, Label: categories[2].label, Cards: fixedScheduleCards(violations.Violations.FixedSchedules)},
			{Key: categories[3].key, Label: categories[3].label, Cards: staffingLevelCards(violations.Violations.StaffingLevels)},
		},
		Discrepancies: discrepancyCards(discrepancies),
	}
	return view, nil
}

func weeklyHoursCards(items []models.WeeklyHoursViolation) []models.ViolationCard {
	cards := make([]models.ViolationCard, 0, len(items))
	for _, item := range items {
		// For weekly hours a negative difference means under target, the
		// benign case.
		diffColor := "red"
		if item.Difference < 0 {
			diffColor = "green"
		}
		cards = append(cards, models.ViolationCard{Fields: []models.CardField{
			{Label: "Staff ID", Value: item.StaffID},
			{Label: "Week", Value: item.Week},
			{Label: "Calculated Hours", Value: formatHours(item.CalculatedHours)},
			{Label: "Target Hours", Value: formatHours(item.TargetHours)},
			{Label: "Difference", Value: formatHours(item.Difference), Color: diffColor},
		}})
	}
	return cards
}

// fridayEarlyLeaveCards renders only the detail fields an item actually
// carries; the validator varies the shape per violation kind.
func fridayEarlyLeaveCards(items []models.FridayEarlyLeaveViolation) []models.ViolationCard {
	cards := make([]models.ViolationCard, 0, len(items))
	for _, item := range items {
		fields := []models.CardField{
			{Label: "Staff ID", Value: item.StaffID},
			{Label: "Violation", Value: item.Violation},
		}
		if len(item.EarlyLeaveWeeks) > 0 {
			fields = append(fields, models.CardField{Label: "Early Leave Weeks", Value: strings.Join(item.EarlyLeaveWeeks, ", ")})
		}
		if item.Expected != "" {
			fields = append(fields, models.CardField{Label: "Expected", Value: item.Expected})
		}
		if item.FridayEndTime != "" {
			fields = append(fields, models.CardField{Label: "Friday End Time", Value: item.FridayEndTime})
		}
		if len(item.FridayEndTimes) > 0 {
			fields = append(fields, models.CardField{Label: "Friday End Times", Value: strings.Join(item.FridayEndTimes, ", ")})
		}
		if item.Week != "" {
			fields = append(fields, models.CardField{Label: "Week", Value: item.Week})
		}
		cards = append(cards, models.ViolationCard{Fields: fields})
	}
	return cards
}

func fixedScheduleCards(items []models.FixedScheduleViolation) []models.ViolationCard {
	cards := make([]models.ViolationCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, models.ViolationCard{Fields: []models.CardField{
			{Label: "Staff ID", Value: item.StaffID},
			{Label: "Week", Value: item.Week},
			{Label: "Day", Value: item.Day},
			{Label: "Violation", Value: item.Violation},
		}})
	}
	return cards
}

func staffingLevelCards(items []models.StaffingLevelViolation) []models.ViolationCard {
	cards := make([]models.ViolationCard, 0, len(items))
	for _, item := range items {
		cards = append(cards, models.ViolationCard{Fields: []models.CardField{
			{Label: "Room", Value: item.Room},
			{Label: "Week", Value: item.Week},
			{Label: "Day", Value: item.Day},
			{Label: "Time Slot", Value: item.TimeSlot},
			{Label: "Violation", Value: item.Violation},
		}})
	}
	return cards
}

func discrepancyCards(items []models.Discrepancy) []models.DiscrepancyCard {
	cards := make([]models.DiscrepancyCard, 0, len(items))
	for _, item := range items {
		color := "green"
		if item.Difference < 0 {
			color = "red"
		}
		cards = append(cards, models.DiscrepancyCard{
			StaffID:         item.StaffID,
			Week:            item.Week,
			CalculatedHours: item.CalculatedHours,
			ExpectedHours:   item.ExpectedHours,
			Difference:      item.Difference,
			Color:           color,
		})
	}
	return cards
}

func formatHours(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
