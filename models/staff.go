package models

// StaffMember is one roster entry for a room. Initials are only unique
// within their room.
type StaffMember struct {
	Initial             string  `bson:"initial" json:"initial"`
	ContractedHoursWeek float64 `bson:"contracted_hours_week" json:"contracted_hours_week"`
	TargetWeeklyHours   float64 `bson:"target_weekly_hours" json:"target_weekly_hours"`
	Constraints         string  `bson:"constraints" json:"constraints"`
	OpenRoom            bool    `bson:"open_room" json:"open_room"`
	Closer              bool    `bson:"closer" json:"closer"`
}

// Room groups an ordered staff roster under a room name.
type Room struct {
	Name  string        `bson:"name" json:"name"`
	Staff []StaffMember `bson:"staff" json:"staff"`
}

// ScheduleConfig is the full generate request input: date range, the
// certified staff list and the per-room rosters.
type ScheduleConfig struct {
	StartDate      string   `bson:"start_date" json:"start_date"`
	EndDate        string   `bson:"end_date" json:"end_date"`
	CertifiedStaff []string `bson:"certified_staff" json:"certified_staff"`
	Rooms          []Room   `bson:"rooms" json:"rooms"`
}

// TargetHours maps a staff initial to its target weekly hours. Sent with
// every validate request.
type TargetHours map[string]float64

// TargetHoursFromRooms flattens the rosters into the target-hours map the
// validator expects. Later rooms win on duplicate initials, matching the
// order the form inputs were read in.
func TargetHoursFromRooms(rooms []Room) TargetHours {
	target := make(TargetHours)
	for _, room := range rooms {
		for _, member := range room.Staff {
			if member.Initial == "" {
				continue
			}
			target[member.Initial] = member.TargetWeeklyHours
		}
	}
	return target
}
