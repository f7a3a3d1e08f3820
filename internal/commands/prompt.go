package commands

import (
	"fmt"
	"strconv"
	"strings"

	"taskshell/internal/taskerr"
	"taskshell/pkg/tasktypes"
)

// CancelWord closes any open prompt without acting. It is matched
// case-insensitively.
const CancelWord = "cancel"

// IsCancel reports whether input is the cancel word.
func IsCancel(input string) bool {
	return strings.EqualFold(strings.TrimSpace(input), CancelWord)
}

// Selection asks the user to pick one of several candidates by number.
type Selection[T any] struct {
	// Header introduces the listing, e.g. `2 tasks match "hello".`
	Header string
	Items  []T
	// Render formats one item for the listing. Defaults to fmt's %v.
	Render func(T) string
	// OnSelect performs the action for the chosen item.
	OnSelect func(T) *tasktypes.Result
	// Cancelled is shown when the user cancels.
	Cancelled string
}

// NewSelection creates a selection prompt over items.
func NewSelection[T any](header string, items []T, render func(T) string, onSelect func(T) *tasktypes.Result) *Selection[T] {
	return &Selection[T]{
		Header:    header,
		Items:     items,
		Render:    render,
		OnSelect:  onSelect,
		Cancelled: "Cancelled. Nothing was changed.",
	}
}

// Text returns the header, the numbered listing and the question.
func (s *Selection[T]) Text() string {
	var b strings.Builder
	if s.Header != "" {
		b.WriteString(s.Header)
		b.WriteString("\n")
	}
	for i, item := range s.Items {
		fmt.Fprintf(&b, "%d. %s\n", i+1, s.render(item))
	}
	fmt.Fprintf(&b, "Which one? (1-%d, %q to cancel)", len(s.Items), CancelWord)
	return b.String()
}

// Resume accepts a number in [1, N] or the cancel word. Anything else keeps
// the prompt open and shows the listing again.
func (s *Selection[T]) Resume(input string) (*tasktypes.Result, bool) {
	reply := strings.TrimSpace(input)
	if IsCancel(reply) {
		return Text(s.Cancelled), false
	}

	n, err := strconv.Atoi(reply)
	if err != nil || n < 1 || n > len(s.Items) {
		return s.reject(reply), true
	}
	return s.OnSelect(s.Items[n-1]), false
}

func (s *Selection[T]) reject(reply string) *tasktypes.Result {
	return &tasktypes.Result{
		Message: taskerr.Message(taskerr.BadResponse(reply)) + "\n" + s.Text(),
		Pending: s,
	}
}

func (s *Selection[T]) render(item T) string {
	if s.Render != nil {
		return s.Render(item)
	}
	return fmt.Sprintf("%v", item)
}

// Confirmation asks a yes/no question.
type Confirmation struct {
	Question string
	OnYes    func() *tasktypes.Result
	// Declined is shown for "no" and for the cancel word.
	Declined string
}

// NewConfirmation creates a yes/no prompt.
func NewConfirmation(question string, onYes func() *tasktypes.Result) *Confirmation {
	return &Confirmation{
		Question: question,
		OnYes:    onYes,
		Declined: "Cancelled. Nothing was changed.",
	}
}

// Text returns the question.
func (c *Confirmation) Text() string {
	return fmt.Sprintf("%s (yes/no, %q to cancel)", c.Question, CancelWord)
}

// Resume accepts yes/y, no/n or the cancel word, ignoring case.
func (c *Confirmation) Resume(input string) (*tasktypes.Result, bool) {
	reply := strings.TrimSpace(input)
	switch strings.ToLower(reply) {
	case "yes", "y":
		return c.OnYes(), false
	case "no", "n", CancelWord:
		return Text(c.Declined), false
	default:
		return &tasktypes.Result{
			Message: taskerr.Message(taskerr.BadResponse(reply)) + "\n" + c.Text(),
			Pending: c,
		}, true
	}
}
