package recovery

import (
	"regexp"
	"strings"
)

var (
	leadingNoise  = regexp.MustCompile(`^[^{]*`)
	trailingNoise = regexp.MustCompile(`[^}]*$`)
	looseKey      = regexp.MustCompile(`(['"])?([a-zA-Z0-9_]+)(['"])?:`)
)

// Sanitize applies the last-resort textual repairs to near-JSON text: trims
// everything outside the outermost braces, rewrites bare or single-quoted
// object keys into double-quoted form and swaps remaining single quotes for
// double quotes.
//
// The key rewrite is heuristic. A legitimate string value containing a word
// run directly followed by a colon (for example "open: 9am") gets corrupted.
// That is an accepted limitation of the salvage path, which only runs after
// every non-destructive strategy has failed.
func Sanitize(text string) string {
	text = leadingNoise.ReplaceAllString(text, "")
	text = trailingNoise.ReplaceAllString(text, "")
	text = looseKey.ReplaceAllString(text, `"${2}":`)
	return strings.ReplaceAll(text, "'", `"`)
}
