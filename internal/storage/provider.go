// Package storage defines the journal tree file-system abstraction.
package storage

import "time"

// Provider is the interface for journal tree operations.
type Provider interface {
	// Root returns the absolute journal root.
	Root() string
	// MonthDir returns the directory for year/month without touching disk.
	MonthDir(year, month int) string
	// ResolveMonthDir ensures the year/month directory for t exists and
	// validates the resulting structure.
	ResolveMonthDir(t time.Time) (string, error)
	// ListMonth returns the file names inside the year/month directory.
	// A missing directory yields an empty list; any other failure is an error.
	ListMonth(year, month int) ([]string, error)
	// CreateEntry writes content to a new file dir/filename, failing if the
	// file already exists. Returns the created path.
	CreateEntry(dir, filename string, content []byte) (string, error)
}
