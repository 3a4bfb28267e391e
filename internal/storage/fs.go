package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/layout"
)

// FS implements Provider backed by the local file system.
type FS struct {
	root string // absolute path to the journal root
}

// NewFS creates a new FS provider rooted at the given directory. The
// directory does not have to exist yet; it is created together with the
// first entry's year/month folders.
func NewFS(root string) (*FS, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("storage: resolve root: %w", err)
	}
	return &FS{root: abs}, nil
}

// Root returns the absolute journal root.
func (f *FS) Root() string {
	return f.root
}

// MonthDir returns the directory holding entries for year/month.
func (f *FS) MonthDir(year, month int) string {
	return layout.MonthDir(f.root, year, month)
}

// ResolveMonthDir ensures the year/month directory for t exists, then
// validates the month and year folder names derived from the resolved
// path. The validation runs on every call, not only when the directory
// was just created, so a tampered tree fails here rather than producing
// entries in a misshapen location.
func (f *FS) ResolveMonthDir(t time.Time) (string, error) {
	dir := layout.TargetDir(f.root, t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("storage: create month dir %s: %w", dir, err)
	}

	monthName := filepath.Base(dir)
	if !layout.ValidMonthFolder(monthName) {
		return "", fmt.Errorf("storage: month folder %q: %w", monthName, apperr.ErrInvalidStructure)
	}
	yearName := filepath.Base(filepath.Dir(dir))
	if !layout.ValidYearFolder(yearName) {
		return "", fmt.Errorf("storage: year folder %q: %w", yearName, apperr.ErrInvalidStructure)
	}
	return dir, nil
}

// ListMonth returns the file names inside the year/month directory.
// A directory that does not exist is an empty month, not an error; a
// directory that exists but cannot be read is an error, so permission
// problems never masquerade as an empty journal.
func (f *FS) ListMonth(year, month int) ([]string, error) {
	dir := f.MonthDir(year, month)
	entries, err := os.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: read month dir %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// CreateEntry writes content to dir/filename with an exclusive create, so
// two invocations racing on the same second lose deterministically instead
// of overwriting each other.
func (f *FS) CreateEntry(dir, filename string, content []byte) (string, error) {
	path := filepath.Join(dir, filename)
	fh, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return "", fmt.Errorf("storage: %s: %w", path, apperr.ErrDuplicateEntry)
	}
	if err != nil {
		return "", fmt.Errorf("storage: create entry %s: %w", path, err)
	}
	if _, err := fh.Write(content); err != nil {
		_ = fh.Close()
		return "", fmt.Errorf("storage: write entry %s: %w", path, err)
	}
	if err := fh.Close(); err != nil {
		return "", fmt.Errorf("storage: close entry %s: %w", path, err)
	}
	return path, nil
}
