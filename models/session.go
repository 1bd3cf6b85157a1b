package models

import "time"

// ScheduleSession is the state carried between a generate round trip and
// the edits that follow it: the roster the grid was generated from, the
// last authoritative document, and the currently applied report. Stored as
// a JSON blob in redis keyed by session ID.
type ScheduleSession struct {
	ID        string           `json:"id"`
	Config    ScheduleConfig   `json:"config"`
	Document  ScheduleDocument `json:"document"`
	Report    *ReportView      `json:"report,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
