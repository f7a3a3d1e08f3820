// Package parser tokenizes command argument strings into free-text keywords and
// flag values. A flag is a run of non-space characters immediately followed by
// '/', at the start of the string or after whitespace: "st/2016-01-01 #/school".
package parser

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

// flagToken matches the start of a flag token, including the whitespace before it.
var flagToken = regexp.MustCompile(`(?:^|\s)[^\s/]+/`)

// Args is the result of tokenizing an argument string.
type Args struct {
	// Keywords is the trimmed free text before the first flag.
	Keywords string
	// Flags maps a flag name to its values in input order.
	Flags map[string][]string
}

// Parse splits input into keywords and flag values. It never fails: missing or
// malformed flags are for the caller to validate.
func Parse(input string) *Args {
	args := &Args{Flags: make(map[string][]string)}

	starts := tokenStarts(input)
	if len(starts) == 0 {
		args.Keywords = strings.TrimSpace(input)
		return args
	}

	args.Keywords = strings.TrimSpace(input[:starts[0]])
	for i, start := range starts {
		end := len(input)
		if i+1 < len(starts) {
			end = starts[i+1]
		}
		name, value, _ := strings.Cut(input[start:end], "/")
		args.Flags[name] = append(args.Flags[name], strings.TrimSpace(value))
	}
	return args
}

// tokenStarts returns the byte offsets where flag tokens begin.
func tokenStarts(input string) []int {
	matches := flagToken.FindAllStringIndex(input, -1)
	starts := make([]int, 0, len(matches))
	for _, m := range matches {
		start := m[0]
		for start < m[1] && isSpace(input[start]) {
			start++
		}
		starts = append(starts, start)
	}
	return starts
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\f' || b == '\v'
}

// Has reports whether flag appeared at least once.
func (a *Args) Has(flag string) bool {
	_, ok := a.Flags[flag]
	return ok
}

// Values returns every value given for flag, in input order.
func (a *Args) Values(flag string) []string {
	return a.Flags[flag]
}

// First returns the first value for flag and whether the flag was present.
func (a *Args) First(flag string) (string, bool) {
	values := a.Flags[flag]
	if len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// Last returns the last value for flag and whether the flag was present.
// Single-valued fields use the last occurrence when a flag repeats.
func (a *Args) Last(flag string) (string, bool) {
	values := a.Flags[flag]
	if len(values) == 0 {
		return "", false
	}
	return values[len(values)-1], true
}

// FlagNames returns the names of all flags present, sorted.
func (a *Args) FlagNames() []string {
	names := make([]string, 0, len(a.Flags))
	for name := range a.Flags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// String renders the parsed arguments for logging.
func (a *Args) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "keywords=%q", a.Keywords)
	for _, name := range a.FlagNames() {
		fmt.Fprintf(&b, " %s=%q", name, a.Flags[name])
	}
	return b.String()
}
