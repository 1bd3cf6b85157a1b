package models

// CategoryCount is one line of the summary breakdown.
type CategoryCount struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

// SummaryPanel is the rendered headline of a validation report.
type SummaryPanel struct {
	TotalViolations int             `json:"total_violations"`
	Breakdown       []CategoryCount `json:"breakdown"`
}

// CardField is one label/value line on a violation card. Color is set only
// for sign-coded values.
type CardField struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Color string `json:"color,omitempty"`
}

// ViolationCard is one rendered violation item.
type ViolationCard struct {
	Fields []CardField `json:"fields"`
}

// CategoryPanel groups the cards of one constraint category.
type CategoryPanel struct {
	Key   string          `json:"key"`
	Label string          `json:"label"`
	Cards []ViolationCard `json:"cards"`
}

// DiscrepancyCard renders one calculated-vs-expected hours mismatch. Color
// is "red" for a negative difference, "green" otherwise.
type DiscrepancyCard struct {
	StaffID         string  `json:"staff_id"`
	Week            string  `json:"week"`
	CalculatedHours float64 `json:"calculated_hours"`
	ExpectedHours   float64 `json:"expected_hours"`
	Difference      float64 `json:"difference"`
	Color           string  `json:"color"`
}

// ReportView is the fully presented validation result: summary, the four
// category panels in fixed order, and the discrepancy cards.
type ReportView struct {
	Summary       SummaryPanel      `json:"summary"`
	Panels        []CategoryPanel   `json:"panels"`
	Discrepancies []DiscrepancyCard `json:"discrepancies"`
}
