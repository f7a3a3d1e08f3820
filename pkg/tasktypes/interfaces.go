// Package tasktypes defines the contracts shared by taskshell's layers.
//
// taskshell follows a three-layer architecture:
//
//   - Model Layer: immutable tasks and reminders held by a versioned schedule
//   - Service Layer: the schedule, storage and time parsing, behind a registry
//   - Command Layer: commands that parse user input and orchestrate services
//
// The dispatcher talks to commands only through the Command interface and
// to the presentation layer only through CommandResult.
package tasktypes
