package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Output formats for query results.
const (
	FormatPaths   = "paths"
	FormatContent = "content"
	FormatJSON    = "json"
)

// ValidateFormat checks that format names a known output format.
func ValidateFormat(format string) error {
	return validation.Validate(format,
		validation.Required,
		validation.In(FormatPaths, FormatContent, FormatJSON),
	)
}

// Render writes entries to w in the given format. The content format dumps
// each file's raw bytes; a file that fails to read is logged and skipped so
// one bad entry does not abort the dump.
func Render(w io.Writer, format string, entries []string) error {
	switch format {
	case FormatJSON:
		if entries == nil {
			entries = []string{}
		}
		enc := json.NewEncoder(w)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encode entry list: %w", err)
		}
		return nil
	case FormatContent:
		for _, entry := range entries {
			fmt.Fprintln(w, entry)
			fmt.Fprintln(w, strings.Repeat("-", 40))
			data, err := os.ReadFile(entry)
			if err != nil {
				slog.Warn("skipping unreadable entry", slog.String("path", entry), slog.String("error", err.Error()))
				continue
			}
			fmt.Fprintln(w, string(data))
			fmt.Fprintln(w)
		}
		return nil
	default:
		for _, entry := range entries {
			fmt.Fprintln(w, entry)
		}
		return nil
	}
}
