package interp

import (
	"regexp"

	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// send is the dispatcher's single entry point: it implements the
// precedence ladder of spec §4.5. The first matching phase wins; later
// phases are never consulted once one has handled the send.
func (ev *Evaluator) send(r recv, selector string, args []runtime.Value) (runtime.Value, error) {
	if selectorArity(selector) != len(args) {
		return nil, errors.NewDNU(receiverDescription(r), selector)
	}
	switch r.kind {
	case recvClass:
		return ev.sendClassMessage(r.class, selector, args)
	case recvSuper:
		return ev.sendSuper(selector, args)
	default:
		return ev.sendValue(r.value, selector, args)
	}
}

// sendValue implements phases 2 through 10 of the ladder for an
// ordinary Value receiver.
func (ev *Evaluator) sendValue(value runtime.Value, selector string, args []runtime.Value) (runtime.Value, error) {
	// Phase 2: Block value… shortcut.
	if bv, ok := runtime.AsBlock(value); ok && isValueSelector(selector) && selectorArity(selector) == bv.Lit.Arity() {
		return ev.executeBlock(bv.Lit, args, bv.CapturedSelf, bv.CapturedMethodClass, selector)
	}

	// Phase 3: boolean control messages.
	if value.Kind() == runtime.KindTrue || value.Kind() == runtime.KindFalse {
		if result, handled, err := ev.boolControl(value, selector, args); handled {
			return result, err
		}
	}

	// Phase 4: loops.
	if result, handled, err := ev.loopControl(value, selector, args); handled {
		return result, err
	}

	// Phase 5: direct print intrinsic. The Object-carries-a-String-
	// internal-value variant of this phase is handled by phase 7's
	// delegation instead, once phase 6 has had first refusal — see the
	// dispatch precedence note in DESIGN.md.
	if sv, ok := runtime.AsString(value); ok && selector == "print" && len(args) == 0 {
		ev.writeOut(sv.S)
		return value, nil
	}

	// Phase 6: user-defined method lookup.
	class, err := ev.classOf(value)
	if err != nil {
		return nil, err
	}
	if body, owner, found := class.FindMethod(selector); found {
		if body.Arity() != len(args) {
			return nil, errors.NewParseArity(selector, body.Arity(), len(args))
		}
		return ev.invokeMethod(value, owner, body, args)
	}

	// Phase 6a (SPEC_FULL addition): built-in methods for a raw
	// Integer/String receiver — spec §4.7's operations, reached here
	// because built-in classes never carry a BlockLit method of their
	// own, so phase 6 always misses for them. Block, Nil, True and False
	// receivers have no entries here and go on to phases 8-10.
	if result, handled, err := ev.primitiveBuiltin(value, selector, args); handled {
		return result, err
	}

	// Phase 7: internal-value delegation (Object receiver only).
	if obj, ok := runtime.AsObject(value); ok {
		return ev.sendObjectTail(obj, selector, args)
	}

	// Phases 8-10 for a non-Object receiver that phase 6a didn't handle.
	return ev.baseTail(value, selector, args)
}

// sendSuper implements the `super` variant of phase 6, falling through
// to phases 7-10 against the enclosing self when the parent chain does
// not define selector (spec §4.5 phase 6, §9 "super sentinel").
func (ev *Evaluator) sendSuper(selector string, args []runtime.Value) (runtime.Value, error) {
	frame := ev.Stack.Current()
	if frame == nil || frame.MethodClass == nil {
		return nil, errors.NewType(selector, errors.ErrMsgSuperContext)
	}
	if body, owner, found := frame.MethodClass.FindMethodInParent(selector); found {
		if body.Arity() != len(args) {
			return nil, errors.NewParseArity(selector, body.Arity(), len(args))
		}
		return ev.invokeMethod(frame.Self, owner, body, args)
	}
	obj, ok := runtime.AsObject(frame.Self)
	if !ok {
		return nil, errors.NewInternal("super's enclosing self is not an Object")
	}
	return ev.sendObjectTail(obj, selector, args)
}

// sendObjectTail runs phases 7-10 for a concrete Object receiver.
func (ev *Evaluator) sendObjectTail(obj *runtime.ObjectInstance, selector string, args []runtime.Value) (runtime.Value, error) {
	if iv, ok := obj.InternalValue(); ok && isDelegatable(selector) {
		unwrapped := make([]runtime.Value, len(args))
		for i, a := range args {
			unwrapped[i] = unwrapCompatibleInternal(a, iv.Kind())
		}
		result, err := ev.send(recv{kind: recvValue, value: iv}, selector, unwrapped)
		if err == nil {
			return result, nil
		}
		if ie, ok := errors.As(err); !ok || ie.Kind != errors.DNU {
			return nil, err
		}
		// Delegation missed too (e.g. print delegating into a non-String
		// internal value): fall through to base/attrs/DNU below.
	}
	return ev.baseTail(obj, selector, args)
}

// baseTail runs phases 8-10 (base methods, dynamic attributes,
// fall-through DNU) for any receiver.
func (ev *Evaluator) baseTail(value runtime.Value, selector string, args []runtime.Value) (runtime.Value, error) {
	if result, handled, err := ev.baseMethod(value, selector, args); handled {
		return result, err
	}
	if result, handled, err := ev.dynamicAttribute(value, selector, args); handled {
		return result, err
	}
	return nil, errors.NewDNU(value.Kind().String(), selector)
}

// classOf returns the class descriptor governing value's built-in
// behavior: the Object's own class, or the registry's built-in
// descriptor named after value's Kind.
func (ev *Evaluator) classOf(value runtime.Value) (*runtime.ClassDescriptor, error) {
	if obj, ok := runtime.AsObject(value); ok {
		return obj.Class, nil
	}
	class, ok := ev.Registry.Get(value.Kind().String())
	if !ok {
		return nil, errors.NewInternal("no built-in class registered for kind %s", value.Kind())
	}
	return class, nil
}

var valueSelectorPattern = regexp.MustCompile(`^(value|(value:)+)$`)

// isValueSelector reports whether selector is `value` or one or more
// repetitions of `value:` (spec §4.5 phase 2).
func isValueSelector(selector string) bool {
	return valueSelectorPattern.MatchString(selector)
}

func (ev *Evaluator) writeOut(s string) {
	_, _ = ev.Stdout.Write([]byte(s))
}

// receiverDescription names the receiver for a top-level arity-mismatch
// DNU, before any phase has had a chance to classify it further.
func receiverDescription(r recv) string {
	switch r.kind {
	case recvClass:
		return r.class.Name + " class"
	case recvSuper:
		return "super"
	default:
		if r.value == nil {
			return "?"
		}
		return r.value.Kind().String()
	}
}
