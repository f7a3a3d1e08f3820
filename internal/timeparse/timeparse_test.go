package timeparse

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedParser() *Parser {
	base := time.Date(2016, 1, 1, 10, 0, 0, 0, time.UTC)
	return New(WithClock(func() time.Time { return base }), WithLocation(time.UTC))
}

func TestParse_Layouts(t *testing.T) {
	p := fixedParser()

	tests := []struct {
		input    string
		expected time.Time
	}{
		{"2016-01-01 5.00PM", time.Date(2016, 1, 1, 17, 0, 0, 0, time.UTC)},
		{"2016-01-01 7.30pm", time.Date(2016, 1, 1, 19, 30, 0, 0, time.UTC)},
		{"2016-01-01 23:59", time.Date(2016, 1, 1, 23, 59, 0, 0, time.UTC)},
		{"2016-01-02", time.Date(2016, 1, 2, 0, 0, 0, 0, time.UTC)},
		{"25/12/2016", time.Date(2016, 12, 25, 0, 0, 0, 0, time.UTC)},
		{"25/12/2016 9AM", time.Date(2016, 12, 25, 9, 0, 0, 0, time.UTC)},
		{"  15:00 ", time.Date(2016, 1, 1, 15, 0, 0, 0, time.UTC)},
		{"5pm", time.Date(2016, 1, 1, 17, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			require.True(t, p.CanParse(tt.input))
			got, err := p.Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(got), "expected %v, got %v", tt.expected, got)
		})
	}
}

func TestParse_NaturalLanguage(t *testing.T) {
	p := fixedParser()

	got, err := p.Parse("tomorrow")
	require.NoError(t, err)
	assert.Equal(t, 2016, got.Year())
	assert.Equal(t, time.January, got.Month())
	assert.Equal(t, 2, got.Day())
}

func TestParse_Rejects(t *testing.T) {
	p := fixedParser()

	for _, input := range []string{"", "   ", "blursday", "xyz"} {
		t.Run(input, func(t *testing.T) {
			assert.False(t, p.CanParse(input))
			_, err := p.Parse(input)
			assert.Error(t, err)
		})
	}
}
