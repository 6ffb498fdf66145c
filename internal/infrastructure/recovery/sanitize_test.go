package recovery

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeQuotesBareKeys(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, Sanitize(`{a: 1}`))
}

func TestSanitizeRewritesSingleQuotedKeysAndValues(t *testing.T) {
	assert.Equal(t, `{"a": 1, "b": "x"}`, Sanitize(`{'a': 1, 'b': 'x'}`))
}

func TestSanitizeTrimsSurroundingNoise(t *testing.T) {
	assert.Equal(t, `{"a": 1}`, Sanitize(`Sure thing! {"a": 1} hope that helps`))
}

func TestSanitizeLeavesValidJSONAlone(t *testing.T) {
	assert.Equal(t, `{"a": 1, "b": [2, 3]}`, Sanitize(`{"a": 1, "b": [2, 3]}`))
}

func TestSanitizeEmptiesTextWithoutBraces(t *testing.T) {
	assert.Empty(t, Sanitize("no JSON here at all"))
}

func TestSanitizeCorruptsColonInsideStringValues(t *testing.T) {
	// Known limitation of the key-quoting heuristic: a word run followed by a
	// colon inside a legitimate string value is rewritten as if it were a key.
	assert.Equal(t, `{"note": "open": 9am"}`, Sanitize(`{"note": "open: 9am"}`))
}
