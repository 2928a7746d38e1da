package interp

import (
	"strconv"

	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// baseMethod implements phase 8: the methods every Value answers to,
// with kind-specific overrides layered in per spec §4.5 phase 8 and
// §4.7's closing paragraph (asString/isNil overrides, True/False
// `not`). Integer and String's equalTo: overrides are handled earlier,
// in primitiveBuiltin, since they need access to operand-specific
// comparison logic rather than plain identity.
func (ev *Evaluator) baseMethod(value runtime.Value, selector string, args []runtime.Value) (runtime.Value, bool, error) {
	switch selector {
	case "identicalTo:":
		return runtime.Bool(identical(value, args[0])), true, nil
	case "equalTo:":
		return runtime.Bool(identical(value, args[0])), true, nil
	case "asString":
		return asStringValue(value), true, nil
	case "isNil":
		return runtime.Bool(value.Kind() == runtime.KindNil), true, nil
	case "isNumber":
		return runtime.Bool(value.Kind() == runtime.KindInteger), true, nil
	case "isString":
		return runtime.Bool(value.Kind() == runtime.KindString), true, nil
	case "isBlock":
		return runtime.Bool(value.Kind() == runtime.KindBlock), true, nil
	case "not":
		switch value.Kind() {
		case runtime.KindTrue:
			return runtime.False, true, nil
		case runtime.KindFalse:
			return runtime.True, true, nil
		}
	}
	return nil, false, nil
}

// identical implements identicalTo: (spec §3 Identity column): kind
// match for the three singletons, value match for Integer/String, and
// pointer identity for Block/Object.
func identical(a, b runtime.Value) bool {
	switch a.Kind() {
	case runtime.KindNil, runtime.KindTrue, runtime.KindFalse:
		return a.Kind() == b.Kind()
	case runtime.KindInteger:
		ai, aok := runtime.AsInteger(a)
		bi, bok := runtime.AsInteger(b)
		return aok && bok && ai.N == bi.N
	case runtime.KindString:
		as, aok := runtime.AsString(a)
		bs, bok := runtime.AsString(b)
		return aok && bok && as.S == bs.S
	case runtime.KindBlock:
		ab, aok := runtime.AsBlock(a)
		bb, bok := runtime.AsBlock(b)
		return aok && bok && ab == bb
	case runtime.KindObject:
		ao, aok := runtime.AsObject(a)
		bo, bok := runtime.AsObject(b)
		return aok && bok && ao == bo
	}
	return false
}

// asStringValue implements the base asString default per kind (spec
// §4.5 phase 8): "nil"/"true"/"false", decimal for Integer, String
// yields itself, everything else (Block, a bare Object) is empty.
func asStringValue(value runtime.Value) runtime.Value {
	switch value.Kind() {
	case runtime.KindNil:
		return runtime.NewString("nil")
	case runtime.KindTrue:
		return runtime.NewString("true")
	case runtime.KindFalse:
		return runtime.NewString("false")
	case runtime.KindInteger:
		iv, _ := runtime.AsInteger(value)
		return runtime.NewString(strconv.FormatInt(iv.N, 10))
	case runtime.KindString:
		return value
	default:
		return runtime.NewString("")
	}
}
