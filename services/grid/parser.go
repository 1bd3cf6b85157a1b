package grid

import (
	"regexp"
	"strings"

	"vaktplan/models"
	"vaktplan/utils"

	"go.uber.org/zap"
)

var (
	headingRoomPattern = regexp.MustCompile(`Room:\s*([^(]+)\s*\(`)
	headingWeekPattern = regexp.MustCompile(`\(([^)]+)\)`)
	whitespacePattern  = regexp.MustCompile(`\s+`)
)

// Parse reconstructs a schedule document from the current grid view. It is
// best-effort: a table whose heading cannot be matched, or which has no
// body rows, is logged and skipped, never fatal. Cell coordinates come
// from the cell tags when present and from row/column position otherwise,
// so a surface rendered without time-block tags still parses (with the
// order-dependence that implies).
func Parse(view models.GridView) *models.ScheduleDocument {
	logger := utils.GetLogger()
	doc := &models.ScheduleDocument{}

	for i, table := range view.Tables {
		room, week, ok := parseHeading(table.Heading)
		if !ok {
			logger.Warn("Skipping grid table with unparseable heading",
				zap.Int("table", i), zap.String("heading", table.Heading))
			continue
		}
		if len(table.Rows) == 0 {
			logger.Warn("Skipping grid table without body rows",
				zap.Int("table", i), zap.String("room", room), zap.String("week", week))
			continue
		}

		ds := doc.EnsureRoom(room).EnsureWeek(week)

		for rowIdx, row := range table.Rows {
			for cellIdx, cell := range row.Cells {
				if !cell.Editable {
					continue
				}
				block := cell.TimeBlock
				if block == "" {
					if rowIdx >= len(models.TimeBlocks) {
						logger.Warn("Row has no time block", zap.String("room", room), zap.Int("row", rowIdx))
						continue
					}
					block = models.TimeBlocks[rowIdx]
				}
				day := cell.Day
				if day == "" {
					if cellIdx >= len(models.Weekdays) {
						logger.Warn("Cell has no weekday", zap.String("room", room), zap.Int("cell", cellIdx))
						continue
					}
					day = models.Weekdays[cellIdx]
				}
				ds.Assign(day, block, parseStaff(cell.Text))
			}
		}

		// The leave cell is attribute-addressed: its own room/week tags
		// decide where the text lands, independent of which table carried it.
		applyLeave(doc, table.LeaveRow.Cell, room, week)
	}

	return doc
}

func applyLeave(doc *models.ScheduleDocument, cell models.GridCell, fallbackRoom, fallbackWeek string) {
	room, week := cell.Room, cell.Week
	if room == "" {
		room = fallbackRoom
	}
	if week == "" {
		week = fallbackWeek
	}
	if room == "" || week == "" {
		return
	}
	doc.EnsureRoom(room).EnsureWeek(week).FridayEarlyLeave = strings.TrimSpace(cell.Text)
}

// parseHeading extracts the room name and normalized week token from a
// "Room: <name> (<Week>)" heading.
func parseHeading(heading string) (room, week string, ok bool) {
	roomMatch := headingRoomPattern.FindStringSubmatch(heading)
	weekMatch := headingWeekPattern.FindStringSubmatch(heading)
	if roomMatch == nil || weekMatch == nil {
		return "", "", false
	}
	room = strings.TrimSpace(roomMatch[1])
	week = normalizeWeek(weekMatch[1])
	return room, week, true
}

// normalizeWeek lowercases and strips whitespace, so "Week 1", "Week1" and
// "week1" all collapse to "week1". Labels without the week prefix fall back
// to week1.
func normalizeWeek(label string) string {
	week := whitespacePattern.ReplaceAllString(strings.ToLower(label), "")
	if !strings.HasPrefix(week, "week") {
		return "week1"
	}
	return week
}

// parseStaff splits cell text into the staff set. An empty or
// whitespace-only cell becomes the placeholder sentinel: the validator
// rejects empty assignment sets.
func parseStaff(text string) []string {
	var staff []string
	for _, token := range strings.Split(text, ",") {
		token = strings.TrimSpace(token)
		if token != "" {
			staff = append(staff, token)
		}
	}
	if len(staff) == 0 {
		return []string{models.StaffNeededPlaceholder}
	}
	return staff
}
