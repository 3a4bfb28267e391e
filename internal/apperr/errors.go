package apperr

import "errors"

var (
	ErrInvalidTitle     = errors.New("title must end with .md")
	ErrDuplicateEntry   = errors.New("entry already exists")
	ErrNoJournalRoot    = errors.New("no journal path configured")
	ErrInvalidStructure = errors.New("invalid journal structure")
)
