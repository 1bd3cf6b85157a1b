package models

import (
	"encoding/json"
	"fmt"
)

// TimeBlocks is the fixed, order-sensitive row dimension of the grid. Row
// position in the rendered table is the fallback way a block is recovered,
// so this order is contractual.
var TimeBlocks = []string{
	"07:30-08:00",
	"08:00-08:30",
	"08:30-09:00",
	"09:00-11:30",
	"11:30-13:00",
	"13:00-14:00",
	"14:00-16:00",
	"16:00-16:30",
	"16:30-17:00",
}

// Weekdays is the fixed, order-sensitive column dimension of the grid.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday"}

// StaffNeededPlaceholder fills a cell that was edited to empty. The
// validator rejects empty assignment sets, so an empty cell must round-trip
// as a single-element set.
const StaffNeededPlaceholder = "STAFF_NEEDED"

// BlockAssignments maps a time block to the ordered staff initials covering it.
type BlockAssignments map[string][]string

// DaySchedule holds one week of assignments for one room: weekday ->
// time block -> staff, plus the free-text Friday early-leave note.
//
// On the wire the day keys and "fridayEarlyLeave" live in the same JSON
// object, so marshaling is custom.
type DaySchedule struct {
	Days             map[string]BlockAssignments
	FridayEarlyLeave string
}

const fridayEarlyLeaveKey = "fridayEarlyLeave"

func (d DaySchedule) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(d.Days)+1)
	for day, blocks := range d.Days {
		out[day] = blocks
	}
	if d.FridayEarlyLeave != "" {
		out[fridayEarlyLeaveKey] = d.FridayEarlyLeave
	}
	return json.Marshal(out)
}

func (d *DaySchedule) UnmarshalJSON(data []byte) error {
	raw := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	d.Days = make(map[string]BlockAssignments)
	for key, value := range raw {
		if key == fridayEarlyLeaveKey {
			if err := json.Unmarshal(value, &d.FridayEarlyLeave); err != nil {
				return fmt.Errorf("invalid %s value: %w", fridayEarlyLeaveKey, err)
			}
			continue
		}
		var blocks BlockAssignments
		if err := json.Unmarshal(value, &blocks); err != nil {
			return fmt.Errorf("invalid day %q: %w", key, err)
		}
		d.Days[key] = blocks
	}
	return nil
}

// RoomSchedule is one room's assignments keyed by normalized week token
// (e.g. "week1").
type RoomSchedule struct {
	Room  string                  `json:"room"`
	Weeks map[string]*DaySchedule `json:"weeks"`
}

// ScheduleDocument is the canonical unit exchanged with the solver and
// reconstructed from the presentation.
type ScheduleDocument struct {
	Schedules []*RoomSchedule `json:"schedules"`
}

// FindRoom returns the schedule for the named room, or nil.
func (doc *ScheduleDocument) FindRoom(name string) *RoomSchedule {
	for _, rs := range doc.Schedules {
		if rs.Room == name {
			return rs
		}
	}
	return nil
}

// EnsureRoom returns the schedule for the named room, appending an empty
// one if it does not exist yet.
func (doc *ScheduleDocument) EnsureRoom(name string) *RoomSchedule {
	if rs := doc.FindRoom(name); rs != nil {
		return rs
	}
	rs := &RoomSchedule{Room: name, Weeks: make(map[string]*DaySchedule)}
	doc.Schedules = append(doc.Schedules, rs)
	return rs
}

// EnsureWeek returns the week's day schedule, creating it if missing.
func (rs *RoomSchedule) EnsureWeek(week string) *DaySchedule {
	if rs.Weeks == nil {
		rs.Weeks = make(map[string]*DaySchedule)
	}
	if ds, ok := rs.Weeks[week]; ok {
		return ds
	}
	ds := &DaySchedule{Days: make(map[string]BlockAssignments)}
	rs.Weeks[week] = ds
	return ds
}

// Assign sets the staff for one (day, block) cell.
func (d *DaySchedule) Assign(day, block string, staff []string) {
	if d.Days == nil {
		d.Days = make(map[string]BlockAssignments)
	}
	if d.Days[day] == nil {
		d.Days[day] = make(BlockAssignments)
	}
	d.Days[day][block] = staff
}

// StaffFor returns the staff set for one (day, block) cell, or nil when the
// cell was never populated.
func (d *DaySchedule) StaffFor(day, block string) []string {
	if d == nil || d.Days == nil {
		return nil
	}
	return d.Days[day][block]
}
