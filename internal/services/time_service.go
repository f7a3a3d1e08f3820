package services

import (
	"time"

	"taskshell/internal/timeparse"
	"taskshell/pkg/tasktypes"
)

// TimeService provides date/time parsing and the current time.
type TimeService struct {
	options []timeparse.Option
	parser  *timeparse.Parser
}

// NewTimeService creates a time service. Options are passed to the parser.
func NewTimeService(options ...timeparse.Option) *TimeService {
	return &TimeService{options: options}
}

// Name returns the service name "time" for registration.
func (t *TimeService) Name() string {
	return TimeServiceName
}

// Initialize builds the parser.
func (t *TimeService) Initialize() error {
	if t.parser == nil {
		t.parser = timeparse.New(t.options...)
	}
	return nil
}

// Parser returns the time-parsing collaborator.
func (t *TimeService) Parser() tasktypes.TimeParser {
	return t.ensure()
}

// Now returns the current time of the parser's clock.
func (t *TimeService) Now() time.Time {
	return t.ensure().Now()
}

func (t *TimeService) ensure() *timeparse.Parser {
	if t.parser == nil {
		t.parser = timeparse.New(t.options...)
	}
	return t.parser
}
