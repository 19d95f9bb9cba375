package calendar

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCSVGlobalFormat(t *testing.T) {
	in := "room_id,date,no_of_room\n101,2025-01-01,10\n101,2025-01-02,8"
	entries, err := ParseCSV(strings.NewReader(in), 0)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].RoomID != 101 || entries[0].Date != "2025-01-01" || entries[0].NoOfRoom != 10 {
		t.Fatalf("unexpected first entry: %+v", entries[0])
	}
	if entries[1].NoOfRoom != 8 {
		t.Fatalf("unexpected second entry: %+v", entries[1])
	}
}

func TestParseCSVDropsMalformedRows(t *testing.T) {
	in := strings.Join([]string{
		"room_id,date,no_of_room",
		"abc,2025-01-03,5",  // non-numeric room id
		"101,,5",            // missing date
		"101,2025-01-04,x",  // non-numeric count
		"101,2025-01-05",    // too few columns
		"101,2025-01-06,12", // the only good row
	}, "\n")

	entries, err := ParseCSV(strings.NewReader(in), 0)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 surviving entry, got %d: %+v", len(entries), entries)
	}
	if entries[0].Date != "2025-01-06" || entries[0].NoOfRoom != 12 {
		t.Fatalf("unexpected entry: %+v", entries[0])
	}
}

func TestParseCSVSingleRoomFormat(t *testing.T) {
	in := "date,no_of_room\n2025-02-01,3\n2025-02-02,4"
	entries, err := ParseCSV(strings.NewReader(in), 55)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	for _, e := range entries {
		if e.RoomID != 55 {
			t.Fatalf("expected room 55 bound to every row, got %+v", e)
		}
	}
}

func TestParseCSVWithoutHeader(t *testing.T) {
	in := "101,2025-01-01,10\n101,2025-01-02,8"
	entries, err := ParseCSV(strings.NewReader(in), 0)
	if err != nil {
		t.Fatalf("ParseCSV returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected header-less file to parse fully, got %d entries", len(entries))
	}
}

func TestParseCSVNoValidRows(t *testing.T) {
	in := "room_id,date,no_of_room\nabc,,\n"
	_, err := ParseCSV(strings.NewReader(in), 0)
	if !errors.Is(err, ErrNoValidRows) {
		t.Fatalf("expected ErrNoValidRows, got %v", err)
	}
}

func TestMergeOverwritesOnlyImportedDates(t *testing.T) {
	existing := map[string]int{"2025-01-01": 5, "2025-01-02": 6, "2025-01-03": 7}
	merged := Merge(existing, []Entry{
		{RoomID: 1, Date: "2025-01-02", NoOfRoom: 9},
		{RoomID: 1, Date: "2025-01-04", NoOfRoom: 2},
	})

	want := map[string]int{"2025-01-01": 5, "2025-01-02": 9, "2025-01-03": 7, "2025-01-04": 2}
	if len(merged) != len(want) {
		t.Fatalf("expected %d dates, got %d", len(want), len(merged))
	}
	for d, c := range want {
		if merged[d] != c {
			t.Fatalf("date %s: expected %d, got %d", d, c, merged[d])
		}
	}
	if existing["2025-01-02"] != 6 {
		t.Fatal("Merge must not mutate the existing calendar")
	}
}

func TestSampleCSVRoundTripsThroughParser(t *testing.T) {
	entries, err := ParseCSV(strings.NewReader(string(SampleCSV(0))), 0)
	if err != nil || len(entries) != 2 {
		t.Fatalf("global sample should parse to 2 entries, got %d err=%v", len(entries), err)
	}
	entries, err = ParseCSV(strings.NewReader(string(SampleCSV(42))), 42)
	if err != nil || len(entries) != 2 {
		t.Fatalf("per-room sample should parse to 2 entries, got %d err=%v", len(entries), err)
	}
}
