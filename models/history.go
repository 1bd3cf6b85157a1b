package models

import "time"

// History record kinds.
const (
	HistoryGenerated = "generated"
	HistoryValidated = "validated"
)

// HistoryRecord is one append-only entry of the schedule log: either a
// freshly generated document or an applied validation outcome. The payload
// is the raw JSON of the document or report at that point.
type HistoryRecord struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"session_id" json:"session_id"`
	Kind      string    `bson:"kind" json:"kind"`
	Payload   string    `bson:"payload" json:"payload"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
