// Package slug turns free-text entry titles into filesystem-safe names.
package slug

import "strings"

// replacer maps every character that is unsafe in a filename (or awkward
// in a shell) to a hyphen.
var replacer = strings.NewReplacer(
	" ", "-",
	"/", "-",
	`\`, "-",
	":", "-",
	"?", "-",
	"*", "-",
	`"`, "-",
	"'", "-",
	"<", "-",
	">", "-",
	"|", "-",
)

// Make sanitizes title for use inside an entry filename: reserved
// characters become hyphens, runs of hyphens collapse to one, and
// trailing hyphens are stripped. A leading hyphen is kept, so a title
// starting with a reserved character stays visibly marked.
func Make(title string) string {
	s := replacer.Replace(title)
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}
	return strings.TrimRight(s, "-")
}
