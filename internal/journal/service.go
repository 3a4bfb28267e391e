// Package journal creates entries in a date-partitioned journal tree.
package journal

import (
	"context"
	"strings"
	"time"

	"github.com/starford/dagaz/internal/apperr"
	"github.com/starford/dagaz/internal/layout"
	"github.com/starford/dagaz/internal/slug"
	"github.com/starford/dagaz/internal/storage"
)

// Service writes new journal entries.
type Service struct {
	store storage.Provider
	now   func() time.Time
}

// NewService creates a new entry service.
func NewService(store storage.Provider) *Service {
	return &Service{store: store, now: time.Now}
}

// Create places a new entry for the current time. The title must carry the
// .md suffix; the suffix is stripped before slugging so it appears exactly
// once in the final filename. An entry that already exists for the same
// second and slug is a hard error, never an overwrite.
func (s *Service) Create(_ context.Context, title, note string) (string, error) {
	if !strings.HasSuffix(title, layout.Ext) {
		return "", apperr.ErrInvalidTitle
	}

	now := s.now()
	dir, err := s.store.ResolveMonthDir(now)
	if err != nil {
		return "", err
	}

	name := strings.TrimSuffix(title, layout.Ext)
	filename := layout.EntryFilename(now, slug.Make(name))
	content := layout.EntryContent(name, now, note)

	return s.store.CreateEntry(dir, filename, content)
}
