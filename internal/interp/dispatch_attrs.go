package interp

import (
	"strings"

	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// dynamicAttribute implements phase 9: a setter (`name:`, arity 1)
// assigns the attribute and returns the receiver; a getter (`name`,
// arity 0) returns its value or reports handled=false so the ladder
// falls through to DNU when unset (spec §4.5 phase 9). Because every
// selector that exactly matches a built-in or user method was already
// claimed by an earlier phase, the only way an attribute access can
// "collide" here is by base name across a different arity — e.g. a
// getter named `plus` when Integer defines the setter `plus:` — so
// that is what checkAttributeCollision checks.
func (ev *Evaluator) dynamicAttribute(value runtime.Value, selector string, args []runtime.Value) (runtime.Value, bool, error) {
	name, isSetter, ok := attributeNameOf(selector, len(args))
	if !ok {
		return nil, false, nil
	}
	if err := ev.checkAttributeCollision(value, name); err != nil {
		return nil, true, err
	}
	if isSetter {
		value.Attrs().Set(name, args[0])
		return value, true, nil
	}
	v, ok := value.Attrs().Get(name)
	if !ok {
		return nil, false, nil
	}
	return v, true, nil
}

// attributeNameOf recognizes selector as an attribute getter or setter
// shape: a getter is a colon-free selector with zero arguments; a
// setter is a colon-free name followed by a single trailing `:` with
// one argument (spec §3: "Attribute names are arbitrary identifiers not
// containing `:`").
func attributeNameOf(selector string, argc int) (name string, isSetter bool, ok bool) {
	if argc == 0 && !strings.Contains(selector, ":") {
		return selector, false, true
	}
	if argc == 1 && strings.Count(selector, ":") == 1 && strings.HasSuffix(selector, ":") {
		return selector[:len(selector)-1], true, true
	}
	return "", false, false
}

// checkAttributeCollision reports a type error when name matches the
// base name of a built-in method on value's kind, or of a method
// declared anywhere on the receiver's class chain (spec §3, §4.5 phase
// 9).
func (ev *Evaluator) checkAttributeCollision(value runtime.Value, name string) error {
	if builtinBaseNames(value)[name] {
		return errors.NewType(name, errors.ErrMsgAttrShadowsBuiltin, name, value.Kind())
	}
	class, err := ev.classOf(value)
	if err != nil {
		return err
	}
	for cur := class; cur != nil; cur = cur.Parent {
		for selector := range cur.Methods {
			if baseName(selector) == name {
				return errors.NewType(name, errors.ErrMsgAttrShadowsMethod, name, class.Name)
			}
		}
	}
	return nil
}

// baseName strips every `:` from a selector, collapsing a keyword
// selector down to the identifier a colliding attribute name would
// share with it.
func baseName(selector string) string {
	return strings.ReplaceAll(selector, ":", "")
}

// builtinBaseNames is the set of base names phases 2-8 already claim
// for value's kind, derived from the selectors implemented in
// builtins_base.go, builtins_primitive.go, and dispatch_bool_loop.go.
func builtinBaseNames(value runtime.Value) map[string]bool {
	names := map[string]bool{
		"identicalTo": true, "equalTo": true, "asString": true,
		"isNil": true, "isNumber": true, "isString": true, "isBlock": true,
		"not": true,
	}
	switch value.Kind() {
	case runtime.KindInteger:
		for _, n := range []string{"greaterThan", "plus", "minus", "multiplyBy", "divBy", "asInteger", "timesRepeat"} {
			names[n] = true
		}
	case runtime.KindString:
		for _, n := range []string{"asInteger", "concatenateWith", "startsWithendsBefore", "print"} {
			names[n] = true
		}
	case runtime.KindTrue, runtime.KindFalse:
		for _, n := range []string{"ifTrueifFalse", "and", "or"} {
			names[n] = true
		}
	case runtime.KindBlock:
		names["value"] = true
		names["whileTrue"] = true
	}
	return names
}
