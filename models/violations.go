package models

// ConstraintCounts is the fixed-order per-category breakdown in the
// validator's summary. The four keys are contractual.
type ConstraintCounts struct {
	WeeklyHours      int `json:"constraint_3_weekly_hours"`
	FridayEarlyLeave int `json:"constraint_4_friday_early_leave"`
	FixedSchedules   int `json:"constraint_5_fixed_schedules"`
	StaffingLevels   int `json:"constraint_6_staffing_levels"`
}

// ViolationSummary is the headline block of a violations payload.
type ViolationSummary struct {
	TotalViolations        int              `json:"total_violations"`
	ViolationsByConstraint ConstraintCounts `json:"violations_by_constraint"`
}

// WeeklyHoursViolation reports a staff member over or under target for one week.
type WeeklyHoursViolation struct {
	StaffID         string  `json:"staff_id"`
	Week            string  `json:"week"`
	CalculatedHours float64 `json:"calculated_hours"`
	TargetHours     float64 `json:"target_hours"`
	Difference      float64 `json:"difference"`
}

// FridayEarlyLeaveViolation reports a breach of the Friday early-leave
// rotation. Which detail fields are present varies per item; all are
// optional and rendered only when set.
type FridayEarlyLeaveViolation struct {
	StaffID         string   `json:"staff_id"`
	Violation       string   `json:"violation"`
	EarlyLeaveWeeks []string `json:"early_leave_weeks,omitempty"`
	Expected        string   `json:"expected,omitempty"`
	FridayEndTime   string   `json:"friday_end_time,omitempty"`
	FridayEndTimes  []string `json:"friday_end_times,omitempty"`
	Week            string   `json:"week,omitempty"`
}

// FixedScheduleViolation reports an assignment conflicting with a staff
// member's fixed shift.
type FixedScheduleViolation struct {
	StaffID   string `json:"staff_id"`
	Week      string `json:"week"`
	Day       string `json:"day"`
	Violation string `json:"violation"`
}

// StaffingLevelViolation reports a cell staffed below the required level.
type StaffingLevelViolation struct {
	Room      string `json:"room"`
	Week      string `json:"week"`
	Day       string `json:"day"`
	TimeSlot  string `json:"time_slot"`
	Violation string `json:"violation"`
}

// ViolationCategories holds the per-category item lists.
type ViolationCategories struct {
	WeeklyHours      []WeeklyHoursViolation      `json:"constraint_3_weekly_hours"`
	FridayEarlyLeave []FridayEarlyLeaveViolation `json:"constraint_4_friday_early_leave"`
	FixedSchedules   []FixedScheduleViolation    `json:"constraint_5_fixed_schedules"`
	StaffingLevels   []StaffingLevelViolation    `json:"constraint_6_staffing_levels"`
}

// ViolationsPayload is the violations half of a validate response. A payload
// without a summary is malformed and must not be rendered.
type ViolationsPayload struct {
	Summary    *ViolationSummary   `json:"summary"`
	Violations ViolationCategories `json:"violations"`
}

// Discrepancy is a computed-vs-expected weekly-hours mismatch for one staff
// member in one week.
type Discrepancy struct {
	StaffID         string  `json:"staff_id"`
	Week            string  `json:"week"`
	CalculatedHours float64 `json:"calculated_hours"`
	ExpectedHours   float64 `json:"expected_hours"`
	Difference      float64 `json:"difference"`
}
