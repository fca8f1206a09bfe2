package nodes

import (
	"errors"
	"fmt"
)

// Contract violations panic with an error wrapping one of these values, so
// tests and hosts can recover and match them with errors.Is.
var (
	// ErrScope is raised when a call is made in the wrong declaration scope,
	// for example BeginNode outside BeginEditor/EndEditor.
	ErrScope = errors.New("nodes: wrong scope")

	// ErrUnknownID is raised when an ID has no slot in its pool.
	ErrUnknownID = errors.New("nodes: unknown id")

	// ErrDuplicateID is raised when a node ID is declared twice in one frame.
	ErrDuplicateID = errors.New("nodes: duplicate id")

	// ErrSelection is raised when selecting an already selected object or
	// deselecting one that is not selected.
	ErrSelection = errors.New("nodes: invalid selection change")

	// ErrStack is raised when popping an empty style, colour or attribute
	// flag stack.
	ErrStack = errors.New("nodes: stack underflow")

	// ErrStyleVar is raised when a style variable is pushed with a value of
	// the wrong arity.
	ErrStyleVar = errors.New("nodes: style variable arity mismatch")
)

// fail panics with err annotated by a formatted message.
func fail(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...)))
}
