package grid

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"vaktplan/models"
)

var weekNumberPattern = regexp.MustCompile(`^week(\d+)$`)

// Render projects a schedule document into its grid view: one table per
// (room, week) pair, one body row per time block in enumeration order, one
// column per weekday in enumeration order, and a trailing early-leave row.
// It is a pure function of the document.
func Render(doc *models.ScheduleDocument) models.GridView {
	view := models.GridView{Tables: []models.RoomWeekTable{}}
	if doc == nil {
		return view
	}
	for _, rs := range doc.Schedules {
		for _, week := range sortedWeeks(rs.Weeks) {
			view.Tables = append(view.Tables, renderTable(rs.Room, week, rs.Weeks[week]))
		}
	}
	return view
}

func renderTable(room, week string, ds *models.DaySchedule) models.RoomWeekTable {
	table := models.RoomWeekTable{
		Heading: fmt.Sprintf("Room: %s (%s)", room, capitalize(week)),
		Columns: columnHeaders(),
	}

	// Every block gets a row even when all its cells are empty: the row
	// count and order are what the positional fallback relies on.
	for _, block := range models.TimeBlocks {
		row := models.GridRow{Label: block}
		for _, day := range models.Weekdays {
			row.Cells = append(row.Cells, models.GridCell{
				Text:      strings.Join(ds.StaffFor(day, block), ", "),
				Room:      room,
				Week:      week,
				Day:       day,
				TimeBlock: block,
				Editable:  true,
			})
		}
		table.Rows = append(table.Rows, row)
	}

	leave := ""
	if ds != nil {
		leave = ds.FridayEarlyLeave
	}
	table.LeaveRow = models.LeaveRow{
		Label: "Friday Early Leave",
		Cell: models.GridCell{
			Text:     leave,
			Room:     room,
			Week:     week,
			Editable: true,
			Colspan:  len(models.Weekdays),
		},
	}
	return table
}

// sortedWeeks orders week tokens by their numeric suffix, so week10 comes
// after week2. Tokens without one sort lexically after the numbered weeks.
func sortedWeeks(weeks map[string]*models.DaySchedule) []string {
	keys := make([]string, 0, len(weeks))
	for week := range weeks {
		keys = append(keys, week)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, iok := weekNumber(keys[i])
		nj, jok := weekNumber(keys[j])
		if iok && jok && ni != nj {
			return ni < nj
		}
		if iok != jok {
			return iok
		}
		return keys[i] < keys[j]
	})
	return keys
}

func weekNumber(week string) (int, bool) {
	m := weekNumberPattern.FindStringSubmatch(week)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func columnHeaders() []string {
	headers := make([]string, 0, len(models.Weekdays))
	for _, day := range models.Weekdays {
		headers = append(headers, capitalize(day))
	}
	return headers
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
