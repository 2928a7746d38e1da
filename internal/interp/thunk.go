package interp

import (
	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// invokeThunk is the §4.6 "value-like invocation" helper: every place
// the dispatcher needs to run a value as if it were a zero- or one-
// argument block goes through here. When target is a Block whose arity
// already matches, the body runs directly; otherwise the generic
// `value`/`value:` message is sent, so an Object delegating to a Block
// (or any value defining its own `value`/`value:`-shaped behavior)
// still works. Any error surfacing from the generic-send path is
// rewritten into a type error naming callSite (spec §7: "errors from
// the helper path in §4.6 are rewritten to type errors that describe
// the call site").
func (ev *Evaluator) invokeThunk0(target runtime.Value, callSite string) (runtime.Value, error) {
	if bv, ok := runtime.AsBlock(target); ok && bv.Lit.Arity() == 0 {
		return ev.executeBlock(bv.Lit, nil, bv.CapturedSelf, bv.CapturedMethodClass, "value")
	}
	res, err := ev.send(recv{kind: recvValue, value: target}, "value", nil)
	if err != nil {
		return nil, errors.Rewrite(err, callSite)
	}
	return res, nil
}

// invokeThunk1 is invokeThunk0's one-argument counterpart, used by
// timesRepeat:, which pipes the iteration counter into its body
// argument.
func (ev *Evaluator) invokeThunk1(target runtime.Value, arg runtime.Value, callSite string) (runtime.Value, error) {
	if bv, ok := runtime.AsBlock(target); ok && bv.Lit.Arity() == 1 {
		return ev.executeBlock(bv.Lit, []runtime.Value{arg}, bv.CapturedSelf, bv.CapturedMethodClass, "value:")
	}
	res, err := ev.send(recv{kind: recvValue, value: target}, "value:", []runtime.Value{arg})
	if err != nil {
		return nil, errors.Rewrite(err, callSite)
	}
	return res, nil
}
