package telegram

import (
	"net/http"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestSplitByBytesShort(t *testing.T) {
	assert.Equal(t, []string{"hello"}, SplitByBytes("hello", 4096))
}

func TestSplitByBytesKeepsRunesWhole(t *testing.T) {
	text := strings.Repeat("演示", 10)
	parts := SplitByBytes(text, 7)

	assert.Equal(t, text, strings.Join(parts, ""))
	for _, p := range parts {
		assert.LessOrEqual(t, len(p), 7)
		assert.True(t, utf8.ValidString(p))
	}
}

func TestNewValidatesOptions(t *testing.T) {
	_, err := New(Options{HTTPClient: http.DefaultClient})
	assert.Error(t, err)

	_, err = New(Options{Token: "123:abc"})
	assert.Error(t, err)
}
