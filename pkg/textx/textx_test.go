package textx_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fairyhunter13/resume-analyzer/pkg/textx"
)

func TestSanitizeText(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello", "hello"},
		{"keeps line structure", "a\nb\r\nc\td", "a\nb\r\nc\td"},
		{"strips control chars", "a\x00b\x07c\x7fd", "abcd"},
		{"trims surrounding space", "  padded  ", "padded"},
		{"unicode preserved", "रésumé", "रésumé"},
		{"empty", "", ""},
		{"only controls", "\x00\x01\x02", ""},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, textx.SanitizeText(tt.in))
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a\nb\nc\n", textx.NormalizeNewlines("a\r\nb\rc\n"))
	assert.Equal(t, "", textx.NormalizeNewlines(""))
}

func TestPreview(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "abc", textx.Preview("abc", 10))
	assert.Equal(t, "ab", textx.Preview("abcd", 2))
	assert.Equal(t, "", textx.Preview("abc", 0))
	// Rune-safe: multi-byte characters are never split.
	assert.Equal(t, "रे", textx.Preview("रेज्यूमे", 2))
	assert.Equal(t, strings.Repeat("x", 5), textx.Preview(strings.Repeat("x", 5), 5))
}
