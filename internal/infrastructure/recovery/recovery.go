package recovery

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"mockapi/internal/domain/entity"
	"mockapi/internal/infrastructure/metrics"
)

// fencedJSON matches a markdown code fence explicitly labeled json:
// three backticks, the literal token "json", a newline, the content,
// a newline, three backticks.
var fencedJSON = regexp.MustCompile("(?s)```json\\n(.*?)\\n```")

// FormatError reports that every recovery strategy failed. OriginalText is
// the untransformed completion text so callers can surface it for manual
// salvage.
type FormatError struct {
	OriginalText string
	Err          error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("no recovery strategy produced valid JSON: %v", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Recover converts raw completion text into a MockSpec, tolerating the common
// ways a model strays from pure JSON: surrounding prose, markdown fences and
// sloppy quoting. Extraction strategies run in order and the first parseable
// result wins. A strategy whose pattern matched but whose content did not
// parse falls straight to the sanitized salvage parse, not to the next
// extraction. Nothing is ever fabricated: either some strategy yields valid
// JSON or the original text comes back inside a FormatError.
func Recover(text string) (entity.MockSpec, error) {
	if m := fencedJSON.FindStringSubmatch(text); m != nil {
		if spec, err := parseObject(m[1]); err == nil {
			metrics.IncRecovery("fenced_block")
			return spec, nil
		}
	} else if span, ok := braceSpan(text); ok {
		if spec, err := parseObject(span); err == nil {
			metrics.IncRecovery("brace_span")
			return spec, nil
		}
	} else if spec, err := parseObject(text); err == nil {
		metrics.IncRecovery("direct")
		return spec, nil
	}

	spec, err := parseObject(Sanitize(text))
	if err != nil {
		metrics.IncRecovery("failed")
		return nil, &FormatError{OriginalText: text, Err: err}
	}
	metrics.IncRecovery("salvage")
	return spec, nil
}

// braceSpan slices from the first '{' to the last '}' inclusive. Both braces
// present in the wrong order still counts as a match; the empty span then
// fails to parse and the chain moves on to the salvage parse.
func braceSpan(text string) (string, bool) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 {
		return "", false
	}
	if end < start {
		return "", true
	}
	return text[start : end+1], true
}

func parseObject(text string) (entity.MockSpec, error) {
	var spec entity.MockSpec
	if err := json.Unmarshal([]byte(text), &spec); err != nil {
		return nil, err
	}
	return spec, nil
}
