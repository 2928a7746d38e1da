// Package interp is the SOL25 interpreter core: the Evaluator that walks
// the AST (spec §4.2) and the Dispatcher that implements the message-send
// precedence ladder (spec §4.5). Every exported entry point returns an
// *errors.Error tagged with one of the §7 kinds; nothing in this package
// panics on a SOL25-level problem.
package interp

import (
	"bufio"
	"io"

	"github.com/mjezek/sol25interp/internal/astxml"
	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// Evaluator owns every long-lived structure shared across a single run
// (spec §5: "class registry... singletons... call stack" — "not shared
// across threads; no locking is required"). It is the entry point
// cmd/sol25 drives: build a registry from a parsed program, then Run it.
type Evaluator struct {
	Registry *runtime.Registry
	Stack    *runtime.CallStack
	Stdout   io.Writer
	Stdin    *bufio.Reader
	// Trace, when set, makes every Send append its selector to Trace log
	// via TraceFunc (spec SPEC_FULL §A.3 --trace).
	Trace     bool
	TraceFunc func(selector string, depth int)
}

// New builds an Evaluator with the seven built-in classes pre-registered
// and an empty call stack, ready to have user classes added via Load.
func New(stdout io.Writer, stdin io.Reader) *Evaluator {
	return &Evaluator{
		Registry: runtime.NewRegistry(),
		Stack:    runtime.NewCallStack(),
		Stdout:   stdout,
		Stdin:    bufio.NewReader(stdin),
	}
}

// Load populates ev's registry with the classes of an already-parsed
// program (spec §4.1), failing on an invalid or duplicate class name, a
// duplicate method selector, or a missing parent. Structural checks of
// the document happen earlier, in astxml.Parse.
func (ev *Evaluator) Load(program *astxml.Program) error {
	return buildRegistry(ev.Registry, program)
}

// Run validates that Main#run exists (spec §4.1) and executes it,
// returning whatever error, if any, unwound the call stack (spec §5:
// "all SOL25-level errors unwind the call stack unconditionally up to
// the top-level driver").
func (ev *Evaluator) Run() error {
	if ev.Registry == nil || ev.Stack == nil {
		return errors.NewInternal(errors.ErrMsgUninitialized)
	}
	_, err := ev.runMain()
	return err
}

// runMain fetches Main, allocates a Main instance, and executes
// Main#run with that instance as self (spec §4.2 runMain).
func (ev *Evaluator) runMain() (runtime.Value, error) {
	mainClass, owner, run, err := ev.Registry.RequireMain()
	if err != nil {
		return nil, err
	}
	self := runtime.NewObject(mainClass)
	return ev.invokeMethod(self, owner, run, nil)
}
