package runtime

import "github.com/mjezek/sol25interp/internal/interp/errors"

// DefaultMaxDepth bounds call-stack depth (SPEC_FULL §C): the original
// spec has no recursion-depth rule, but an interpreter with no bound at
// all turns unbounded SOL25 recursion into a Go stack overflow (a
// process crash outside the error taxonomy), so a generous ceiling turns
// that crash into a normal INTERNAL error. Modeled on the teacher's
// CallStack.maxDepth guard.
const DefaultMaxDepth = 100000

// CallStack tracks nested block/method activations, records the
// selector each was entered under, and enforces DefaultMaxDepth. Its
// Depth sets the indentation of `--trace` output (spec §A.3).
type CallStack struct {
	frames   []*Frame
	selector []string
	maxDepth int
}

// NewCallStack returns an empty call stack with the default depth bound.
func NewCallStack() *CallStack {
	return &CallStack{maxDepth: DefaultMaxDepth}
}

// Push activates frame under the given selector (readable through
// CurrentSelector and Trace), rejecting the push once maxDepth is
// reached.
func (c *CallStack) Push(selector string, frame *Frame) error {
	if len(c.frames) >= c.maxDepth {
		return errors.NewInternal(errors.ErrMsgStackOverflow, c.maxDepth)
	}
	c.frames = append(c.frames, frame)
	c.selector = append(c.selector, selector)
	return nil
}

// Pop deactivates the most recently pushed frame.
func (c *CallStack) Pop() {
	if len(c.frames) == 0 {
		return
	}
	c.frames = c.frames[:len(c.frames)-1]
	c.selector = c.selector[:len(c.selector)-1]
}

// Current returns the active frame, or nil at top level (the implicit
// Main new run activation is itself pushed by the evaluator, so Current
// is only nil before that push).
func (c *CallStack) Current() *Frame {
	if len(c.frames) == 0 {
		return nil
	}
	return c.frames[len(c.frames)-1]
}

// CurrentSelector returns the selector active at the top of the stack,
// or "" at top level.
func (c *CallStack) CurrentSelector() string {
	if len(c.selector) == 0 {
		return ""
	}
	return c.selector[len(c.selector)-1]
}

// Depth reports the number of active frames.
func (c *CallStack) Depth() int {
	return len(c.frames)
}

// Trace returns a snapshot of the active selector chain, outermost
// first.
func (c *CallStack) Trace() []string {
	out := make([]string, len(c.selector))
	copy(out, c.selector)
	return out
}
