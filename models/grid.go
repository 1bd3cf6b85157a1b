package models

// GridCell is one editable cell of the rendered grid. Every body cell is
// tagged with its full coordinates (room, week, day, time block) so edits
// can be attributed without relying on where the cell sits; the time-block
// tag may be absent on surfaces produced by older renderers, in which case
// the parser falls back to row position.
type GridCell struct {
	Text      string `json:"text"`
	Room      string `json:"room"`
	Week      string `json:"week"`
	Day       string `json:"day,omitempty"`
	TimeBlock string `json:"time_block,omitempty"`
	Editable  bool   `json:"editable"`
	Colspan   int    `json:"colspan,omitempty"`
}

// GridRow is one body row: the time-block label plus one cell per weekday.
type GridRow struct {
	Label string     `json:"label"`
	Cells []GridCell `json:"cells"`
}

// LeaveRow is the trailing Friday-early-leave row. Its single cell spans
// all weekday columns and is addressed by the room/week tags, never by
// position.
type LeaveRow struct {
	Label string   `json:"label"`
	Cell  GridCell `json:"cell"`
}

// RoomWeekTable is the rendered presentation of one (room, week) pair.
type RoomWeekTable struct {
	Heading  string    `json:"heading"`
	Columns  []string  `json:"columns"`
	Rows     []GridRow `json:"rows"`
	LeaveRow LeaveRow  `json:"leave_row"`
}

// GridView is the whole rendered presentation: one table per (room, week).
// It is the mutable surface the frontend edits and posts back.
type GridView struct {
	Tables []RoomWeekTable `json:"tables"`
}
