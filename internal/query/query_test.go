package query

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/starford/dagaz/internal/testutil"
)

// fixtureJournal seeds a tree with entries on Feb 17 (x2), Feb 18 and
// Mar 1 of 2026, plus Jan 15 of 2025, and returns the engine with the
// seeded paths keyed by file name.
func fixtureJournal(t *testing.T) (*Engine, map[string]string) {
	t.Helper()
	root, store := testutil.TestJournal(t)

	paths := map[string]string{}
	seed := func(year, month, name, content string) {
		paths[name] = testutil.SeedEntry(t, root, year, month, name, content)
	}
	seed("2026", "02", "17-081503-note1.md", "# Note 1\n\nDate: 17-02-2026\n\nContent 1\n")
	seed("2026", "02", "17-101200-note2.md", "# Note 2\n\nDate: 17-02-2026\n\nContent 2\n")
	seed("2026", "02", "18-090000-note3.md", "# Note 3\n\nDate: 18-02-2026\n\nContent 3\n")
	seed("2026", "03", "01-120000-march-note.md", "# March Note\n\nDate: 01-03-2026\n\nMarch content\n")
	seed("2025", "01", "15-080000-2025-note.md", "# 2025 Note\n\nDate: 15-01-2025\n\n2025 content\n")

	return NewEngine(store), paths
}

func find(t *testing.T, e *Engine, q Query) []string {
	t.Helper()
	got, err := e.Find(context.Background(), q)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	return got
}

func TestFindByDay(t *testing.T) {
	e, paths := fixtureJournal(t)
	got := find(t, e, Day{Day: 17, Month: 2, Year: 2026})
	want := []string{paths["17-081503-note1.md"], paths["17-101200-note2.md"]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindByMonth(t *testing.T) {
	e, paths := fixtureJournal(t)
	got := find(t, e, Month{Month: 2, Year: 2026})
	want := []string{
		paths["17-081503-note1.md"],
		paths["17-101200-note2.md"],
		paths["18-090000-note3.md"],
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindByYear(t *testing.T) {
	e, paths := fixtureJournal(t)
	got := find(t, e, Year{Year: 2026})
	want := []string{
		paths["17-081503-note1.md"],
		paths["17-101200-note2.md"],
		paths["18-090000-note3.md"],
		paths["01-120000-march-note.md"],
	}
	// Sorted by full path: 2026/02/* before 2026/03/*.
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindByYearOther(t *testing.T) {
	e, paths := fixtureJournal(t)
	got := find(t, e, Year{Year: 2025})
	want := []string{paths["15-080000-2025-note.md"]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindByDayEmpty(t *testing.T) {
	e, _ := fixtureJournal(t)
	got := find(t, e, Day{Day: 25, Month: 2, Year: 2026})
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestFindMissingYearDir(t *testing.T) {
	e, _ := fixtureJournal(t)
	got := find(t, e, Year{Year: 1999})
	if len(got) != 0 {
		t.Errorf("got %v, want empty", got)
	}
}

func TestFindIgnoresNonMarkdown(t *testing.T) {
	root, store := testutil.TestJournal(t)
	testutil.SeedEntry(t, root, "2026", "02", "17-081503-note.md", "x")
	testutil.SeedEntry(t, root, "2026", "02", "17-081503-note.txt", "x")

	e := NewEngine(store)
	got := find(t, e, Day{Day: 17, Month: 2, Year: 2026})
	if len(got) != 1 {
		t.Errorf("got %v, want 1 entry", got)
	}
}

func TestFindWeekSameMonth(t *testing.T) {
	e, paths := fixtureJournal(t)
	// Thu 2026-02-19 lies in the week Mon 16 .. Sun 22.
	anchor := time.Date(2026, time.February, 19, 12, 0, 0, 0, time.Local)
	got := find(t, e, Week{Anchor: anchor})
	want := []string{
		paths["17-081503-note1.md"],
		paths["17-101200-note2.md"],
		paths["18-090000-note3.md"],
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindWeekAcrossMonths(t *testing.T) {
	e, paths := fixtureJournal(t)
	// Wed 2026-02-25 lies in the week Mon Feb 23 .. Sun Mar 1.
	anchor := time.Date(2026, time.February, 25, 9, 30, 0, 0, time.Local)
	got := find(t, e, Week{Anchor: anchor})
	want := []string{paths["01-120000-march-note.md"]}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFindWeekAnchorOnMonday(t *testing.T) {
	e, paths := fixtureJournal(t)
	// Mon 2026-02-16 anchors its own week.
	anchor := time.Date(2026, time.February, 16, 0, 0, 0, 0, time.Local)
	got := find(t, e, Week{Anchor: anchor})
	if len(got) != 3 {
		t.Fatalf("got %d entries, want 3", len(got))
	}
	if got[0] != paths["17-081503-note1.md"] {
		t.Errorf("got[0] = %q", got[0])
	}
}

func TestCriteriaQuery(t *testing.T) {
	now := time.Date(2026, time.February, 17, 8, 15, 3, 0, time.Local)
	day, month, year := 5, 7, 2024

	cases := []struct {
		name string
		c    Criteria
		want Query
	}{
		{"none means today", Criteria{}, Day{Day: 17, Month: 2, Year: 2026}},
		{"day only", Criteria{Day: &day}, Day{Day: 5, Month: 2, Year: 2026}},
		{"day and month", Criteria{Day: &day, Month: &month}, Day{Day: 5, Month: 7, Year: 2026}},
		{"day month year", Criteria{Day: &day, Month: &month, Year: &year}, Day{Day: 5, Month: 7, Year: 2024}},
		{"month only", Criteria{Month: &month}, Month{Month: 7, Year: 2026}},
		{"month and year", Criteria{Month: &month, Year: &year}, Month{Month: 7, Year: 2024}},
		{"year only", Criteria{Year: &year}, Year{Year: 2024}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.c.Query(now); got != c.want {
				t.Errorf("Query = %#v, want %#v", got, c.want)
			}
		})
	}
}

func TestWeekAnchor(t *testing.T) {
	cases := []struct {
		in   time.Time
		want int // day of month of the Monday
	}{
		{time.Date(2026, time.February, 16, 10, 0, 0, 0, time.UTC), 16}, // Monday
		{time.Date(2026, time.February, 17, 10, 0, 0, 0, time.UTC), 16}, // Tuesday
		{time.Date(2026, time.February, 22, 10, 0, 0, 0, time.UTC), 16}, // Sunday
		{time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC), 23},     // Sunday, prior month
	}
	for _, c := range cases {
		got := weekAnchor(c.in)
		if got.Day() != c.want || got.Weekday() != time.Monday {
			t.Errorf("weekAnchor(%v) = %v, want Monday the %d", c.in, got, c.want)
		}
	}
}

func TestDaysInMonth(t *testing.T) {
	cases := []struct {
		year, month, want int
	}{
		{2026, 1, 31},
		{2026, 2, 28},
		{2024, 2, 29}, // divisible by 4
		{2100, 2, 28}, // century, not leap
		{2000, 2, 29}, // divisible by 400
		{2026, 4, 30},
		{2026, 12, 31},
	}
	for _, c := range cases {
		if got := daysInMonth(c.year, c.month); got != c.want {
			t.Errorf("daysInMonth(%d, %d) = %d, want %d", c.year, c.month, got, c.want)
		}
	}
}

// Round trip against the writer: an entry created for a date is found by
// the matching day query.
func TestRoundTripWithStorage(t *testing.T) {
	_, store := testutil.TestJournal(t)
	at := time.Date(2026, time.February, 17, 8, 15, 3, 0, time.Local)
	dir, err := store.ResolveMonthDir(at)
	if err != nil {
		t.Fatal(err)
	}
	path, err := store.CreateEntry(dir, "17-081503-round-trip.md", []byte("x"))
	if err != nil {
		t.Fatal(err)
	}

	e := NewEngine(store)
	got := find(t, e, Day{Day: 17, Month: 2, Year: 2026})
	if len(got) != 1 || got[0] != path {
		t.Errorf("got %v, want [%s]", got, path)
	}
}
