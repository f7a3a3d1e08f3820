package commands

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/log"

	"taskshell/internal/logger"
	"taskshell/pkg/tasktypes"
)

// DefaultMaxDistance is the largest edit distance offered as a suggestion.
const DefaultMaxDistance = 2

const (
	stateReady    = "ready"
	stateAwaiting = "awaiting"
)

// pending is the prompt a command left open together with its owner.
type pending struct {
	command string
	prompt  tasktypes.Prompt
}

// suggestion is a one-shot "did you mean" offer made for unknown input.
type suggestion struct {
	input   string
	trigger string
}

// Dispatcher routes input lines to commands. It is either Ready or awaiting a
// reply to exactly one open prompt: while a prompt is open every line goes to
// that prompt, whatever it looks like.
type Dispatcher struct {
	registry    *Registry
	maxDistance int
	pending     *pending
	suggestion  *suggestion
	log         *log.Logger
}

// NewDispatcher creates a dispatcher over registry. A negative maxDistance
// disables suggestions.
func NewDispatcher(registry *Registry, maxDistance int) *Dispatcher {
	return &Dispatcher{
		registry:    registry,
		maxDistance: maxDistance,
		log:         logger.NewStyledLogger("Dispatcher"),
	}
}

// AwaitingResponse reports whether a command prompt is open.
func (d *Dispatcher) AwaitingResponse() bool {
	return d.pending != nil
}

// PendingCommand returns the name of the command whose prompt is open.
func (d *Dispatcher) PendingCommand() (string, bool) {
	if d.pending == nil {
		return "", false
	}
	return d.pending.command, true
}

// Suggestion returns the trigger offered for the previous unknown input.
func (d *Dispatcher) Suggestion() (string, bool) {
	if d.suggestion == nil {
		return "", false
	}
	return d.suggestion.trigger, true
}

// Execute handles one input line and always returns a result. A panicking
// command is reported as an internal error and leaves the dispatcher Ready.
func (d *Dispatcher) Execute(input string) (result *tasktypes.Result) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Command panicked", "input", input, "panic", r, "stack", string(debug.Stack()))
			d.pending = nil
			d.suggestion = nil
			result = Feedback("Internal error: %v", r)
		}
	}()

	input = strings.TrimSpace(input)

	if d.pending != nil {
		return d.resume(input)
	}

	if offer := d.suggestion; offer != nil {
		d.suggestion = nil
		if strings.EqualFold(input, "yes") {
			d.log.Debug("Suggestion accepted", "trigger", offer.trigger)
			return d.dispatch(ReplaceTrigger(offer.input, offer.trigger))
		}
		d.log.Debug("Suggestion discarded", "trigger", offer.trigger)
	}

	if input == "" {
		return &tasktypes.Result{}
	}
	return d.dispatch(input)
}

func (d *Dispatcher) dispatch(input string) *tasktypes.Result {
	for _, cmd := range d.registry.GetAll() {
		if !cmd.RespondTo(input) {
			continue
		}
		logger.CommandExecution(cmd.Name(), input)
		return d.settle(cmd.Name(), cmd.Execute(input))
	}
	return d.unknown(input)
}

func (d *Dispatcher) resume(input string) *tasktypes.Result {
	current := d.pending
	result, open := current.prompt.Resume(input)
	if result == nil {
		result = &tasktypes.Result{}
	}

	if open {
		if result.Pending != nil && result.Pending != current.prompt {
			d.log.Error("Refusing a second pending prompt", "command", current.command)
		}
		result.Pending = current.prompt
		return result
	}

	d.pending = nil
	logger.StateTransition(current.command, stateAwaiting, stateReady)
	return d.settle(current.command, result)
}

// settle records the prompt carried by result, if any.
func (d *Dispatcher) settle(command string, result *tasktypes.Result) *tasktypes.Result {
	if result == nil {
		return &tasktypes.Result{}
	}
	if result.Pending == nil {
		return result
	}
	if d.pending != nil {
		d.log.Error("Refusing a second pending prompt", "command", command, "pending", d.pending.command)
		result.Pending = nil
		return result
	}
	d.pending = &pending{command: command, prompt: result.Pending}
	logger.StateTransition(command, stateReady, stateAwaiting)
	return result
}

func (d *Dispatcher) unknown(input string) *tasktypes.Result {
	word := TriggerOf(input)
	if target, ok := d.closest(word); ok {
		d.suggestion = &suggestion{input: input, trigger: target}
		return Feedback("Unknown command %q. Did you mean %q? (yes to run it)", word, target)
	}
	return Feedback("Unknown command %q. Type \"help\" to see the available commands.", word)
}

// closest finds the trigger nearest to word within maxDistance. A candidate
// must be longer than its distance, so one-letter aliases are not offered for
// arbitrary short words. Ties go to the earlier registered trigger.
func (d *Dispatcher) closest(word string) (string, bool) {
	if d.maxDistance < 0 || word == "" {
		return "", false
	}
	word = strings.ToLower(word)

	best, bestDistance := "", d.maxDistance+1
	for _, trigger := range d.registry.Triggers() {
		distance := levenshtein.ComputeDistance(word, strings.ToLower(trigger))
		if distance >= len(trigger) {
			continue
		}
		if distance < bestDistance {
			best, bestDistance = trigger, distance
		}
	}
	return best, best != ""
}

// String describes the dispatcher state for logs.
func (d *Dispatcher) String() string {
	if d.pending != nil {
		return fmt.Sprintf("%s(%s)", stateAwaiting, d.pending.command)
	}
	return stateReady
}
