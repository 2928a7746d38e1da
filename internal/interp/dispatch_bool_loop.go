package interp

import (
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// boolControl implements phase 3: ifTrue:ifFalse:, and:, or: on a
// True/False receiver (spec §4.5 phase 3).
func (ev *Evaluator) boolControl(value runtime.Value, selector string, args []runtime.Value) (runtime.Value, bool, error) {
	isTrue := value.Kind() == runtime.KindTrue
	switch selector {
	case "ifTrue:ifFalse:":
		if len(args) != 2 {
			return nil, false, nil
		}
		chosen := args[1]
		if isTrue {
			chosen = args[0]
		}
		result, err := ev.invokeThunk0(chosen, selector)
		return result, true, err
	case "and:":
		if len(args) != 1 {
			return nil, false, nil
		}
		if !isTrue {
			return runtime.False, true, nil
		}
		result, err := ev.invokeThunk0(args[0], selector)
		return result, true, err
	case "or:":
		if len(args) != 1 {
			return nil, false, nil
		}
		if isTrue {
			return runtime.True, true, nil
		}
		result, err := ev.invokeThunk0(args[0], selector)
		return result, true, err
	}
	return nil, false, nil
}

// loopControl implements phase 4: whileTrue: on a Block (or a Block-
// subclass Object) receiver, and timesRepeat: on an Integer receiver
// (spec §4.5 phase 4).
func (ev *Evaluator) loopControl(value runtime.Value, selector string, args []runtime.Value) (runtime.Value, bool, error) {
	switch selector {
	case "whileTrue:":
		if len(args) != 1 || !isBlockLike(value) {
			return nil, false, nil
		}
		for {
			cond, err := ev.invokeThunk0(value, selector)
			if err != nil {
				return nil, true, err
			}
			if cond.Kind() != runtime.KindTrue {
				break
			}
			if _, err := ev.invokeThunk0(args[0], selector); err != nil {
				return nil, true, err
			}
		}
		return runtime.Nil, true, nil
	case "timesRepeat:":
		if len(args) != 1 {
			return nil, false, nil
		}
		iv, ok := runtime.AsInteger(value)
		if !ok {
			return nil, false, nil
		}
		for i := int64(1); i <= iv.N; i++ {
			if _, err := ev.invokeThunk1(args[0], runtime.NewInteger(i), selector); err != nil {
				return nil, true, err
			}
		}
		return runtime.Nil, true, nil
	}
	return nil, false, nil
}

// isBlockLike reports whether value is a Block, or an Object whose
// class descends from Block (spec §4.5 phase 4). Block itself refuses
// `new`/`from:` (phase 1), but a user subclass of Block does not, so the
// latter case is an instance of such a subclass.
func isBlockLike(value runtime.Value) bool {
	if value.Kind() == runtime.KindBlock {
		return true
	}
	if obj, ok := runtime.AsObject(value); ok {
		return obj.Class.IsOrDescendsFrom("Block")
	}
	return false
}
