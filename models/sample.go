package models

// SampleConfig returns the five-room demo roster used to prefill the
// configuration form.
func SampleConfig() ScheduleConfig {
	return ScheduleConfig{
		CertifiedStaff: []string{"J", "H", "B", "M.B", "K.Ø"},
		Rooms: []Room{
			{
				Name: "Tjørnin",
				Staff: []StaffMember{
					{Initial: "H", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None", OpenRoom: true},
					{Initial: "J", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None"},
				},
			},
			{
				Name: "Mýran",
				Staff: []StaffMember{
					{Initial: "M.B", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None", OpenRoom: true},
					{Initial: "M", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None", Closer: true},
					{Initial: "K.Ø", ContractedHoursWeek: 30, TargetWeeklyHours: 29.5, Constraints: "None"},
					{Initial: "J", ContractedHoursWeek: 30, TargetWeeklyHours: 29.5, Constraints: "Hard Constraint: Works a fixed shift of 09:00 - 15:00 every day.", Closer: true},
				},
			},
			{
				Name: "Túgvan",
				Staff: []StaffMember{
					{Initial: "M", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None", OpenRoom: true},
					{Initial: "B", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None", Closer: true},
					{Initial: "A", ContractedHoursWeek: 33, TargetWeeklyHours: 32.5, Constraints: "None"},
				},
			},
			{
				Name: "Løkurin",
				Staff: []StaffMember{
					{Initial: "S", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None"},
					{Initial: "M", ContractedHoursWeek: 30, TargetWeeklyHours: 29.5, Constraints: "None"},
					{Initial: "N", ContractedHoursWeek: 32, TargetWeeklyHours: 31.5, Constraints: "Hard Constraint: Works only Monday to Thursday, from 08:00 to 16:00."},
				},
			},
			{
				Name: "Spírar",
				Staff: []StaffMember{
					{Initial: "H", ContractedHoursWeek: 30, TargetWeeklyHours: 29.5, Constraints: "None"},
					{Initial: "J", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None"},
					{Initial: "B", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "None"},
					{Initial: "Starv", ContractedHoursWeek: 35, TargetWeeklyHours: 34.5, Constraints: "Note: This is a vacant position. Treat as a regular staff member for now."},
				},
			},
		},
	}
}
