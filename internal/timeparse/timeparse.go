// Package timeparse turns user-typed date/time strings into timestamps.
// Fixed numeric layouts are tried first; anything else falls back to the
// natural-language rules of github.com/olebedev/when ("tomorrow 5pm").
package timeparse

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"02/01/2006",
	"2/1/2006",
}

var clockLayouts = []string{
	"3.04PM",
	"3:04PM",
	"3PM",
	"15:04",
	"15.04",
}

// Parser parses date/time strings relative to a clock.
type Parser struct {
	now      func() time.Time
	location *time.Location
	natural  *when.Parser
}

// Option configures a Parser.
type Option func(*Parser)

// WithClock makes relative expressions resolve against now instead of time.Now.
func WithClock(now func() time.Time) Option {
	return func(p *Parser) {
		if now != nil {
			p.now = now
		}
	}
}

// WithLocation sets the location used for layouts without a zone.
func WithLocation(loc *time.Location) Option {
	return func(p *Parser) {
		if loc != nil {
			p.location = loc
		}
	}
}

// New creates a Parser with English and common natural-language rules.
func New(options ...Option) *Parser {
	natural := when.New(nil)
	natural.Add(en.All...)
	natural.Add(common.All...)

	p := &Parser{
		now:      time.Now,
		location: time.Local,
		natural:  natural,
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// Now returns the current time of the parser's clock.
func (p *Parser) Now() time.Time {
	return p.now().In(p.location)
}

// Location returns the location used for layouts without a zone.
func (p *Parser) Location() *time.Location {
	return p.location
}

// CanParse reports whether s is understood.
func (p *Parser) CanParse(s string) bool {
	_, err := p.Parse(s)
	return err == nil
}

// Parse converts s to a timestamp. Date-only values resolve to midnight and
// time-only values to today's date.
func (p *Parser) Parse(s string) (time.Time, error) {
	text := strings.TrimSpace(s)
	if text == "" {
		return time.Time{}, fmt.Errorf("empty date/time")
	}

	if t, ok := p.parseLayouts(strings.ToUpper(text)); ok {
		return t, nil
	}

	if t, ok := p.parseNatural(text); ok {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unrecognized date/time %q", s)
}

func (p *Parser) parseLayouts(text string) (time.Time, bool) {
	for _, date := range dateLayouts {
		for _, clock := range clockLayouts {
			if t, err := time.ParseInLocation(date+" "+clock, text, p.location); err == nil {
				return t, true
			}
		}
		if t, err := time.ParseInLocation(date, text, p.location); err == nil {
			return t, true
		}
	}

	for _, clock := range clockLayouts {
		if t, err := time.ParseInLocation(clock, text, p.location); err == nil {
			today := p.now().In(p.location)
			return time.Date(today.Year(), today.Month(), today.Day(),
				t.Hour(), t.Minute(), 0, 0, p.location), true
		}
	}
	return time.Time{}, false
}

// parseNatural accepts a match only when it covers every meaningful character
// of the input, so "blursday tomorrow" is rejected instead of read as "tomorrow".
func (p *Parser) parseNatural(text string) (time.Time, bool) {
	r, err := p.natural.Parse(text, p.now().In(p.location))
	if err != nil || r == nil || r.Index < 0 || r.Index+len(r.Text) > len(text) {
		return time.Time{}, false
	}
	rest := text[:r.Index] + text[r.Index+len(r.Text):]
	for _, c := range rest {
		if unicode.IsLetter(c) || unicode.IsDigit(c) {
			return time.Time{}, false
		}
	}
	return r.Time, true
}
