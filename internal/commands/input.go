package commands

import (
	"fmt"
	"strings"

	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// TriggerOf returns the first whitespace-separated word of input.
func TriggerOf(input string) string {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Arguments returns input without its trigger word, trimmed.
func Arguments(input string) string {
	input = strings.TrimSpace(input)
	trigger := TriggerOf(input)
	return strings.TrimSpace(input[len(trigger):])
}

// MatchesTrigger reports whether the first word of input is name or one of
// aliases, compared case-insensitively.
func MatchesTrigger(input, name string, aliases []string) bool {
	trigger := TriggerOf(input)
	if trigger == "" {
		return false
	}
	if strings.EqualFold(trigger, name) {
		return true
	}
	for _, alias := range aliases {
		if strings.EqualFold(trigger, alias) {
			return true
		}
	}
	return false
}

// ReplaceTrigger swaps the first word of input for trigger.
func ReplaceTrigger(input, trigger string) string {
	args := Arguments(input)
	if args == "" {
		return trigger
	}
	return trigger + " " + args
}

// Feedback builds a plain result.
func Feedback(format string, args ...interface{}) *tasktypes.Result {
	return &tasktypes.Result{Message: fmt.Sprintf(format, args...)}
}

// Text builds a result showing msg verbatim.
func Text(msg string) *tasktypes.Result {
	return &tasktypes.Result{Message: msg}
}

// Failure builds a result reporting err.
func Failure(err error) *tasktypes.Result {
	return &tasktypes.Result{Message: taskerr.Message(err)}
}

// Ask builds a result that leaves prompt open.
func Ask(prompt tasktypes.Prompt) *tasktypes.Result {
	return &tasktypes.Result{Message: prompt.Text(), Pending: prompt}
}
