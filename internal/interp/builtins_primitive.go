package interp

import (
	"math"
	"strconv"

	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// delegatableSelectors is the fixed set forwarded from an Object to its
// carried `__internal_value` (spec §4.5 phase 7).
var delegatableSelectors = map[string]bool{
	"equalTo:": true, "greaterThan:": true, "plus:": true, "minus:": true,
	"multiplyBy:": true, "divBy:": true, "asString": true, "asInteger": true,
	"timesRepeat:": true, "concatenateWith:": true, "startsWith:endsBefore:": true,
	"isNumber": true, "isString": true, "isBlock": true, "isNil": true, "print": true,
}

func isDelegatable(selector string) bool {
	return delegatableSelectors[selector]
}

// unwrapCompatibleInternal unwraps arg to its carried internal value
// when arg is an Object whose own internal value matches wantKind (spec
// §4.5 phase 7: "Arguments that are Objects whose own __internal_value
// is compatible with the receiver's internal kind are unwrapped to that
// primitive before forwarding").
func unwrapCompatibleInternal(arg runtime.Value, wantKind runtime.Kind) runtime.Value {
	obj, ok := runtime.AsObject(arg)
	if !ok {
		return arg
	}
	iv, ok := obj.InternalValue()
	if !ok || iv.Kind() != wantKind {
		return arg
	}
	return iv
}

// primitiveBuiltin implements the Integer/String arithmetic and string
// operations of spec §4.7 that are not already covered by the universal
// base methods of phase 8. Selectors it does not recognize for value's
// kind return handled=false so the ladder continues.
func (ev *Evaluator) primitiveBuiltin(value runtime.Value, selector string, args []runtime.Value) (runtime.Value, bool, error) {
	if iv, ok := runtime.AsInteger(value); ok {
		return integerBuiltin(iv, selector, args)
	}
	if sv, ok := runtime.AsString(value); ok {
		return stringBuiltin(sv, selector, args)
	}
	return nil, false, nil
}

func integerBuiltin(recv *runtime.IntegerValue, selector string, args []runtime.Value) (runtime.Value, bool, error) {
	switch selector {
	case "equalTo:":
		other, ok := runtime.AsInteger(args[0])
		return runtime.Bool(ok && other.N == recv.N), true, nil
	case "asInteger":
		return recv, true, nil
	case "greaterThan:":
		other, ok := runtime.AsInteger(args[0])
		if !ok {
			return nil, true, errors.NewValue(selector, errors.ErrMsgOperandNotInt, selector)
		}
		return runtime.Bool(recv.N > other.N), true, nil
	case "plus:":
		other, ok := runtime.AsInteger(args[0])
		if !ok {
			return nil, true, errors.NewValue(selector, errors.ErrMsgOperandNotInt, selector)
		}
		return runtime.NewInteger(recv.N + other.N), true, nil
	case "minus:":
		other, ok := runtime.AsInteger(args[0])
		if !ok {
			return nil, true, errors.NewValue(selector, errors.ErrMsgOperandNotInt, selector)
		}
		return runtime.NewInteger(recv.N - other.N), true, nil
	case "multiplyBy:":
		other, ok := runtime.AsInteger(args[0])
		if !ok {
			return nil, true, errors.NewValue(selector, errors.ErrMsgOperandNotInt, selector)
		}
		return runtime.NewInteger(recv.N * other.N), true, nil
	case "divBy:":
		other, ok := runtime.AsInteger(args[0])
		if !ok {
			return nil, true, errors.NewValue(selector, errors.ErrMsgOperandNotInt, selector)
		}
		if other.N == 0 {
			return nil, true, errors.NewValue(selector, errors.ErrMsgDivisionByZero)
		}
		if recv.N == math.MinInt64 && other.N == -1 {
			return nil, true, errors.NewValue(selector, errors.ErrMsgDivOverflow)
		}
		return runtime.NewInteger(recv.N / other.N), true, nil
	}
	return nil, false, nil
}

func stringBuiltin(recv *runtime.StringValue, selector string, args []runtime.Value) (runtime.Value, bool, error) {
	switch selector {
	case "equalTo:":
		other, ok := asStringLike(args[0])
		return runtime.Bool(ok && other.S == recv.S), true, nil
	case "asInteger":
		n, err := strconv.ParseInt(recv.S, 10, 64)
		if err != nil {
			return runtime.Nil, true, nil
		}
		return runtime.NewInteger(n), true, nil
	case "concatenateWith:":
		other, ok := runtime.AsString(args[0])
		if !ok {
			return runtime.Nil, true, nil
		}
		return runtime.NewString(recv.S + other.S), true, nil
	case "startsWith:endsBefore:":
		return startsWithEndsBefore(recv, args[0], args[1])
	}
	return nil, false, nil
}

// asStringLike views v as a String directly, or as an Object whose
// internal value is a String (spec §4.7 String equalTo:).
func asStringLike(v runtime.Value) (*runtime.StringValue, bool) {
	if sv, ok := runtime.AsString(v); ok {
		return sv, true
	}
	if obj, ok := runtime.AsObject(v); ok {
		if iv, ok := obj.InternalValue(); ok {
			return runtime.AsString(iv)
		}
	}
	return nil, false
}

// startsWithEndsBefore implements String>>startsWith:endsBefore: (spec
// §4.7): 1-based, code-point-aware substring [s-1, e-1).
func startsWithEndsBefore(recv *runtime.StringValue, sArg, eArg runtime.Value) (runtime.Value, bool, error) {
	s, sOk := runtime.AsInteger(sArg)
	e, eOk := runtime.AsInteger(eArg)
	if !sOk || !eOk || s.N <= 0 || e.N <= 0 {
		return runtime.Nil, true, nil
	}
	if e.N <= s.N {
		return runtime.NewString(""), true, nil
	}
	runes := []rune(recv.S)
	start := s.N - 1
	end := e.N - 1
	if start > int64(len(runes)) || end > int64(len(runes)) {
		return runtime.Nil, true, nil
	}
	return runtime.NewString(string(runes[start:end])), true, nil
}
