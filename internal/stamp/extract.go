package stamp

import (
	"path/filepath"
	"regexp"
	"time"
)

// stampPattern matches the exact shape ComposeStampedName produces, including
// the underscore that joined it to the base name. Go's regexp values keep no
// match position between calls.
var stampPattern = regexp.MustCompile(`_?\d{4}-\d{2}-\d{2}(?:_\d{2}\.\d{2}\.\d{2})?_?`)

// Match is the span of a stamp found in a name
type Match struct {
	Start int
	End   int
	Text  string
}

// FindStamp returns the first stamp-shaped span in name. Values are matched
// lexically; 2024-13-45 counts as a stamp.
func FindStamp(name string) (Match, bool) {
	loc := stampPattern.FindStringIndex(name)
	if loc == nil {
		return Match{}, false
	}
	return Match{Start: loc[0], End: loc[1], Text: name[loc[0]:loc[1]]}, true
}

// ExtractStamp removes the first stamp from name. When no stamp is present
// the name is returned unchanged and found is false.
func ExtractStamp(name string) (stripped string, found bool) {
	m, ok := FindStamp(name)
	if !ok {
		return name, false
	}
	return name[:m.Start] + name[m.End:], true
}

// Restamp replaces an existing stamp in name with one for t, or stamps the
// name as is when it carries none. Only the last path segment is considered.
func Restamp(t time.Time, name string, opts Options) (string, bool) {
	stripped, found := ExtractStamp(filepath.Base(name))
	return Compose(t, SplitFilename(stripped), opts), found
}
