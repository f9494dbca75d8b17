package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Defaults(t *testing.T) {
	cfg := New()
	assert.True(t, cfg.CheckLineLength)
	assert.Equal(t, 8, cfg.MaximumNumberOfLines)
}

func TestNew_Overrides(t *testing.T) {
	cfg := New(
		WithCheckLineLength(false),
		WithMaximumNumberOfLines(3),
		WithAllowedLineLengthInField(Range{Min: 0.2, Max: 1.0}),
	)
	assert.False(t, cfg.CheckLineLength)
	assert.Equal(t, 3, cfg.MaximumNumberOfLines)
	assert.Equal(t, Range{Min: 0.2, Max: 1.0}, cfg.AllowedLineLengthInField)

	// defaults not touched by these options remain at their defaults
	assert.True(t, cfg.CheckLineDistance)
}
