package synth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextFrom(t *testing.T) {
	tests := []struct {
		raw     string
		present bool
	}{
		{"", false},
		{"   ", false},
		{"\n\t", false},
		{"a", true},
		{"  a  ", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.present, TextFrom(tt.raw).IsPresent(), "raw %q", tt.raw)
	}
}

func TestPresentBlankIsAbsent(t *testing.T) {
	assert.False(t, Present("  ").IsPresent())
	assert.Equal(t, "", Present("  ").Value())
	assert.False(t, Absent().IsPresent())
}

func TestExcerpt(t *testing.T) {
	assert.Equal(t, "héll", Present("héllo").Excerpt(4))
	assert.Equal(t, "hi", Present("hi").Excerpt(50))
	assert.Equal(t, "", Present("hi").Excerpt(0))
	assert.Equal(t, "", Absent().Excerpt(10))
}
