package calendar

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var (
	ErrNoValidRows = errors.New("no valid rows found in file")
)

// Entry is one imported availability row: rooms on sale for a room and date.
type Entry struct {
	RoomID   int64  `json:"room_id"`
	Date     string `json:"date"`
	NoOfRoom int    `json:"no_of_room"`
}

// ParseCSV reads availability rows from a plain comma-separated file. With
// roomID == 0 the file must carry three columns (room_id,date,no_of_room);
// a non-zero roomID switches to the two-column per-room format
// (date,no_of_room). Parsing is lenient: rows with a non-numeric id or
// count, a missing date, or too few columns are dropped without aborting
// the import. Values containing commas are not supported.
func ParseCSV(r io.Reader, roomID int64) ([]Entry, error) {
	scanner := bufio.NewScanner(r)

	var entries []Entry
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			if isHeader(line) {
				continue
			}
		}
		if line == "" {
			continue
		}
		if e, ok := parseRow(line, roomID); ok {
			entries = append(entries, e)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(entries) == 0 {
		return nil, ErrNoValidRows
	}
	return entries, nil
}

// isHeader sniffs the first line for the expected column names.
func isHeader(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "date") && strings.Contains(l, "no_of_room")
}

func parseRow(line string, roomID int64) (Entry, bool) {
	fields := strings.Split(line, ",")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}

	var dateField, countField string
	if roomID == 0 {
		if len(fields) < 3 {
			return Entry{}, false
		}
		id, err := strconv.ParseInt(fields[0], 10, 64)
		if err != nil {
			return Entry{}, false
		}
		roomID, dateField, countField = id, fields[1], fields[2]
	} else {
		if len(fields) < 2 {
			return Entry{}, false
		}
		dateField, countField = fields[0], fields[1]
	}

	if dateField == "" {
		return Entry{}, false
	}
	count, err := strconv.Atoi(countField)
	if err != nil || count < 0 {
		return Entry{}, false
	}
	return Entry{RoomID: roomID, Date: dateField, NoOfRoom: count}, true
}

// Merge overlays imported entries onto an existing date->count calendar.
// Dates present in the import are overwritten; all others stay untouched.
func Merge(existing map[string]int, entries []Entry) map[string]int {
	out := make(map[string]int, len(existing)+len(entries))
	for d, c := range existing {
		out[d] = c
	}
	for _, e := range entries {
		out[e.Date] = e.NoOfRoom
	}
	return out
}

// SampleCSV produces the minimal example file offered for download next to
// the import control.
func SampleCSV(roomID int64) []byte {
	var b strings.Builder
	if roomID == 0 {
		b.WriteString("room_id,date,no_of_room\n")
		b.WriteString("101,2025-01-01,10\n")
		b.WriteString("101,2025-01-02,8\n")
	} else {
		b.WriteString("date,no_of_room\n")
		fmt.Fprintf(&b, "2025-01-01,10\n")
		fmt.Fprintf(&b, "2025-01-02,8\n")
	}
	return []byte(b.String())
}
