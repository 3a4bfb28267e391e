// Package layout defines the on-disk shape of a journal tree: the
// root/YYYY/MM directory scheme, entry filenames, and the entry template.
// Everything here is pure string formatting.
package layout

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"
)

// Ext is the file extension of every journal entry.
const Ext = ".md"

// YearFolder returns the folder name for a year, zero-padded to 4 digits.
func YearFolder(year int) string {
	return fmt.Sprintf("%04d", year)
}

// MonthFolder returns the folder name for a month, zero-padded to 2 digits.
func MonthFolder(month int) string {
	return fmt.Sprintf("%02d", month)
}

// DayPrefix returns the filename prefix shared by all entries of a day.
func DayPrefix(day int) string {
	return fmt.Sprintf("%02d", day)
}

// MonthDir returns the directory holding entries for year/month.
func MonthDir(root string, year, month int) string {
	return filepath.Join(root, YearFolder(year), MonthFolder(month))
}

// TargetDir returns the directory an entry created at t belongs in.
func TargetDir(root string, t time.Time) string {
	return MonthDir(root, t.Year(), int(t.Month()))
}

// ValidYearFolder reports whether name is a well-formed year folder:
// exactly 4 characters, parseable as an unsigned integer.
func ValidYearFolder(name string) bool {
	if len(name) != 4 {
		return false
	}
	_, err := strconv.ParseUint(name, 10, 32)
	return err == nil
}

// ValidMonthFolder reports whether name is a well-formed month folder:
// exactly 2 characters, integer value in [1,12].
func ValidMonthFolder(name string) bool {
	if len(name) != 2 {
		return false
	}
	n, err := strconv.Atoi(name)
	if err != nil {
		return false
	}
	return n >= 1 && n <= 12
}

// EntryFilename returns the filename for an entry created at t:
// DD-HHMMSS-<slug>.md. The day-first ordering keeps a month directory
// sorted chronologically under a plain lexical sort.
func EntryFilename(t time.Time, slug string) string {
	return fmt.Sprintf("%02d-%02d%02d%02d-%s%s",
		t.Day(), t.Hour(), t.Minute(), t.Second(), slug, Ext)
}

// EntryContent renders the body of a new entry: a title header, a
// DD-MM-YYYY date line, and the note text.
func EntryContent(title string, t time.Time, note string) []byte {
	return fmt.Appendf(nil, "# %s\n\nDate: %02d-%02d-%d\n\n%s\n",
		title, t.Day(), int(t.Month()), t.Year(), note)
}
