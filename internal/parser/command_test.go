package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		expectedKeywords string
		expectedFlags    map[string][]string
	}{
		{
			name:             "keywords and two flags",
			input:            "hello world st/2016-01-01 et/2016-01-02",
			expectedKeywords: "hello world",
			expectedFlags: map[string][]string{
				"st": {"2016-01-01"},
				"et": {"2016-01-02"},
			},
		},
		{
			name:             "repeated flag keeps input order",
			input:            "hello st/1 et/2 st/3",
			expectedKeywords: "hello",
			expectedFlags: map[string][]string{
				"st": {"1", "3"},
				"et": {"2"},
			},
		},
		{
			name:             "keywords only",
			input:            "  just some words  ",
			expectedKeywords: "just some words",
			expectedFlags:    map[string][]string{},
		},
		{
			name:             "flag at string start has empty keywords",
			input:            "st/today 5pm",
			expectedKeywords: "",
			expectedFlags:    map[string][]string{"st": {"today 5pm"}},
		},
		{
			name:             "empty value is kept",
			input:            "task st/ et/2016-01-02",
			expectedKeywords: "task",
			expectedFlags: map[string][]string{
				"st": {""},
				"et": {"2016-01-02"},
			},
		},
		{
			name:             "trailing empty value",
			input:            "task #/",
			expectedKeywords: "task",
			expectedFlags:    map[string][]string{"#": {""}},
		},
		{
			name:             "slashes inside a value do not start a flag",
			input:            "pay rent et/01/02/2016 #/bills #/home",
			expectedKeywords: "pay rent",
			expectedFlags: map[string][]string{
				"et": {"01/02/2016"},
				"#":  {"bills", "home"},
			},
		},
		{
			name:             "multi-word values run to the next flag",
			input:            "CS2103T Tutorial st/2016-01-01 5.00PM et/2016-01-01 7.00PM #/school",
			expectedKeywords: "CS2103T Tutorial",
			expectedFlags: map[string][]string{
				"st": {"2016-01-01 5.00PM"},
				"et": {"2016-01-01 7.00PM"},
				"#":  {"school"},
			},
		},
		{
			name:             "clear sentinel",
			input:            "n/New name st/-",
			expectedKeywords: "",
			expectedFlags: map[string][]string{
				"n":  {"New name"},
				"st": {"-"},
			},
		},
		{
			name:             "empty input",
			input:            "",
			expectedKeywords: "",
			expectedFlags:    map[string][]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := Parse(tt.input)
			assert.Equal(t, tt.expectedKeywords, args.Keywords)
			assert.Equal(t, tt.expectedFlags, args.Flags)
		})
	}
}

func TestArgs_Accessors(t *testing.T) {
	args := Parse("meeting st/1 st/2 n/x")

	assert.True(t, args.Has("st"))
	assert.False(t, args.Has("et"))
	assert.Equal(t, []string{"1", "2"}, args.Values("st"))

	first, ok := args.First("st")
	assert.True(t, ok)
	assert.Equal(t, "1", first)

	last, ok := args.Last("st")
	assert.True(t, ok)
	assert.Equal(t, "2", last)

	_, ok = args.Last("et")
	assert.False(t, ok)

	assert.Equal(t, []string{"n", "st"}, args.FlagNames())
	assert.Equal(t, `keywords="meeting" n=["x"] st=["1" "2"]`, args.String())
}
