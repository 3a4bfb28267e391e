// Package query resolves date queries against a journal tree.
package query

import (
	"context"
	"path/filepath"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/layout"
	"github.com/starford/dagaz/internal/storage"
)

// Query is one of four shapes a lookup can take: a single day, a whole
// month, a whole year, or the Monday-start week around an anchor date.
// The type is sealed; construct values directly or via Criteria.Query.
type Query interface {
	run(e *Engine) ([]string, error)
}

// Day selects entries of one calendar day.
type Day struct {
	Day   int
	Month int
	Year  int
}

// Month selects all entries of one calendar month.
type Month struct {
	Month int
	Year  int
}

// Year selects all entries of one calendar year.
type Year struct {
	Year int
}

// Week selects entries of the Monday..Sunday week containing Anchor.
type Week struct {
	Anchor time.Time
}

// Criteria carries the optional day/month/year filters of a lookup, nil
// meaning unset.
type Criteria struct {
	Day   *int
	Month *int
	Year  *int
}

// Query folds the criteria into a concrete query. Unset year and month
// default to now's; the shapes are mutually exclusive with day taking
// priority over month over year, and no filter at all means today.
func (c Criteria) Query(now time.Time) Query {
	year := now.Year()
	if c.Year != nil {
		year = *c.Year
	}
	month := int(now.Month())
	if c.Month != nil {
		month = *c.Month
	}

	switch {
	case c.Day != nil:
		return Day{Day: *c.Day, Month: month, Year: year}
	case c.Month != nil:
		return Month{Month: month, Year: year}
	case c.Year != nil:
		return Year{Year: year}
	default:
		return Day{Day: now.Day(), Month: month, Year: year}
	}
}

// Engine resolves queries against a journal tree. It is state-free: every
// call re-reads the tree, which is correct because entries are immutable
// and the process is short-lived.
type Engine struct {
	store storage.Provider
}

// NewEngine creates a query engine over the given journal store.
func NewEngine(store storage.Provider) *Engine {
	return &Engine{store: store}
}

// Find resolves q to the matching entry paths, sorted lexicographically by
// full path and deduplicated. Directory iteration order never leaks into
// the result.
func (e *Engine) Find(_ context.Context, q Query) ([]string, error) {
	paths, err := q.run(e)
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)
	return slices.Compact(paths), nil
}

func (q Day) run(e *Engine) ([]string, error) {
	return e.day(q.Year, q.Month, q.Day)
}

func (q Month) run(e *Engine) ([]string, error) {
	names, err := e.store.ListMonth(q.Year, q.Month)
	if err != nil {
		return nil, err
	}
	dir := e.store.MonthDir(q.Year, q.Month)
	var out []string
	for _, name := range names {
		if strings.HasSuffix(name, layout.Ext) {
			out = append(out, filepath.Join(dir, name))
		}
	}
	return out, nil
}

func (q Year) run(e *Engine) ([]string, error) {
	var out []string
	for m := 1; m <= 12; m++ {
		paths, err := Month{Month: m, Year: q.Year}.run(e)
		if err != nil {
			return nil, err
		}
		out = append(out, paths...)
	}
	return out, nil
}

func (q Week) run(e *Engine) ([]string, error) {
	anchor := weekAnchor(q.Anchor)
	end := anchor.AddDate(0, 0, 6)

	var out []string
	collect := func(year, month, day int) error {
		paths, err := e.day(year, month, day)
		if err != nil {
			return err
		}
		out = append(out, paths...)
		return nil
	}

	if anchor.Year() == end.Year() && anchor.Month() == end.Month() {
		for d := anchor.Day(); d <= end.Day(); d++ {
			if err := collect(anchor.Year(), int(anchor.Month()), d); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	// The week spans a month boundary; a 7-day window never spans more
	// than two months.
	last := daysInMonth(anchor.Year(), int(anchor.Month()))
	for d := anchor.Day(); d <= last; d++ {
		if err := collect(anchor.Year(), int(anchor.Month()), d); err != nil {
			return nil, err
		}
	}
	for d := 1; d <= end.Day(); d++ {
		if err := collect(end.Year(), int(end.Month()), d); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// day lists the month directory and keeps entries whose name carries the
// zero-padded day prefix.
func (e *Engine) day(year, month, day int) ([]string, error) {
	names, err := e.store.ListMonth(year, month)
	if err != nil {
		return nil, err
	}
	dir := e.store.MonthDir(year, month)
	prefix := layout.DayPrefix(day)
	var out []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, layout.Ext) {
			out = append(out, filepath.Join(dir, name))
		}
	}
	return out, nil
}

// weekAnchor returns the Monday of the week containing t.
func weekAnchor(t time.Time) time.Time {
	fromMonday := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -fromMonday)
}

func daysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 2:
		if (year%4 == 0 && year%100 != 0) || year%400 == 0 {
			return 29
		}
		return 28
	default:
		return 30
	}
}
