package interp

import (
	"sort"
	"strconv"
	"strings"

	"github.com/mjezek/sol25interp/internal/astxml"
	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// evalExpr evaluates an <expr> that is being used in value position
// (spec §4.2 evaluateExpression). Receiver-position class literals and
// the `super` identifier are handled separately by evalReceiver — if one
// reaches here it is being misused as an ordinary value.
func (ev *Evaluator) evalExpr(e *astxml.Expr) (runtime.Value, error) {
	switch {
	case e.Literal != nil:
		return ev.evalLiteral(e.Literal)
	case e.Var != nil:
		return ev.evalVar(e.Var.Name)
	case e.Send != nil:
		return ev.evalSend(e.Send)
	case e.Block != nil:
		return ev.evalBlockLiteral(e.Block)
	default:
		return nil, errors.NewType("expr", errors.ErrMsgMalformedExpr)
	}
}

// evalReceiver evaluates a send's receiver position, where a class-name
// literal resolves to a ClassRef and the identifier `super` resolves to
// the super sentinel instead of being evaluated as a value (spec §4.5
// "Receiver evaluation").
func (ev *Evaluator) evalReceiver(e *astxml.Expr) (recv, error) {
	if e.Var != nil && e.Var.Name == "super" {
		return recv{kind: recvSuper}, nil
	}
	if e.Literal != nil && e.Literal.Class == "class" {
		cd, ok := ev.Registry.Get(e.Literal.Value)
		if !ok {
			return recv{}, errors.NewType(e.Literal.Value, "unknown class literal: %s", e.Literal.Value)
		}
		return recv{kind: recvClass, class: cd}, nil
	}
	v, err := ev.evalExpr(e)
	if err != nil {
		return recv{}, err
	}
	return recv{kind: recvValue, value: v}, nil
}

func (ev *Evaluator) evalLiteral(lit *astxml.Literal) (runtime.Value, error) {
	switch lit.Class {
	case "Nil":
		return runtime.Nil, nil
	case "True":
		return runtime.True, nil
	case "False":
		return runtime.False, nil
	case "Integer":
		n, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			return nil, errors.NewType(lit.Value, errors.ErrMsgBadIntegerLiteral, lit.Value)
		}
		return runtime.NewInteger(n), nil
	case "String":
		return runtime.NewString(unescapeString(lit.Value)), nil
	case "class":
		return nil, errors.NewType(lit.Value, errors.ErrMsgClassLiteralContext, lit.Value)
	default:
		return nil, errors.NewType(lit.Class, errors.ErrMsgMalformedLiteral, lit.Class)
	}
}

// unescapeString applies the three recognized escapes (spec §4.2) in a
// single left-to-right pass: \n → newline, \' → apostrophe, \\ →
// backslash. Any other backslash sequence is passed through unchanged.
func unescapeString(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\\' && i+1 < len(raw) {
			switch raw[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\'':
				b.WriteByte('\'')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(raw[i])
	}
	return b.String()
}

// evalVar resolves a variable read (spec §4.2 Var) against the active
// frame. Reserved keywords and self/super are resolved by Frame.Get
// itself (spec §4.3).
func (ev *Evaluator) evalVar(name string) (runtime.Value, error) {
	frame := ev.Stack.Current()
	if frame == nil {
		return nil, errors.NewInternal(errors.ErrMsgEmptyCallStack)
	}
	return frame.Get(name)
}

// evalBlockLiteral captures the active frame's self and enclosing method
// class into a fresh BlockValue (spec §4.2 Block, §9 "Captured self").
func (ev *Evaluator) evalBlockLiteral(b *astxml.Block) (runtime.Value, error) {
	lit := buildBlockLit(b)
	frame := ev.Stack.Current()
	var self runtime.Value
	var methodClass *runtime.ClassDescriptor
	if frame != nil {
		self = frame.Self
		methodClass = frame.MethodClass
	}
	return runtime.NewBlock(lit, self, methodClass), nil
}

// evalSend evaluates a <send>: its receiver, its arguments in declared
// order, then hands the whole thing to the dispatcher (spec §4.5).
func (ev *Evaluator) evalSend(s *astxml.Send) (runtime.Value, error) {
	r, err := ev.evalReceiver(s.Receiver)
	if err != nil {
		return nil, err
	}
	sortedArgs := make([]*astxml.Arg, len(s.Args))
	copy(sortedArgs, s.Args)
	sort.Slice(sortedArgs, func(i, j int) bool { return sortedArgs[i].Order < sortedArgs[j].Order })
	args := make([]runtime.Value, len(sortedArgs))
	for i, a := range sortedArgs {
		v, err := ev.evalExpr(a.Expr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}
	if ev.Trace && ev.TraceFunc != nil {
		ev.TraceFunc(s.Selector, ev.Stack.Depth())
	}
	return ev.send(r, s.Selector, args)
}

// executeBlock runs lit's statements in a fresh frame (spec §4.2
// executeBlock): validates arity, creates the frame with self bound to
// self and methodClass recording the enclosing method for `super`,
// pushes it onto the call stack, evaluates each assignment in order,
// and pops the frame on every exit path, including errors. An empty
// block returns Nil.
func (ev *Evaluator) executeBlock(lit *runtime.BlockLit, args []runtime.Value, self runtime.Value, methodClass *runtime.ClassDescriptor, selector string) (runtime.Value, error) {
	if len(args) != lit.Arity() {
		return nil, errors.NewParseArity(selector, lit.Arity(), len(args))
	}
	frame, err := runtime.NewFrame(self, lit.Params, args, methodClass)
	if err != nil {
		return nil, err
	}
	if err := ev.Stack.Push(selector, frame); err != nil {
		return nil, err
	}
	defer ev.Stack.Pop()

	result := runtime.Value(runtime.Nil)
	for _, stmt := range lit.SortedStatements() {
		expr, ok := stmt.Expr.(*astxml.Expr)
		if !ok {
			return nil, errors.NewInternal("block statement carries a non-expr payload")
		}
		val, err := ev.evalExpr(expr)
		if err != nil {
			return nil, err
		}
		if err := frame.DefineOrUpdateVariable(stmt.Var, val); err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

// invokeMethod executes body as a method activation: self is the
// receiver, methodClass is the class body was found on (the frame's
// `super` context), and args are the message's arguments.
func (ev *Evaluator) invokeMethod(self runtime.Value, methodClass *runtime.ClassDescriptor, body *runtime.BlockLit, args []runtime.Value) (runtime.Value, error) {
	return ev.executeBlock(body, args, self, methodClass, methodSelectorFor(methodClass, body))
}

// methodSelectorFor recovers the selector a method body was registered
// under, for call-stack/trace labeling; falls back to the class name
// when the reverse lookup somehow misses (defensive only — every body
// handed to invokeMethod came from this same class's Methods map).
func methodSelectorFor(class *runtime.ClassDescriptor, body *runtime.BlockLit) string {
	for sel, m := range class.Methods {
		if m == body {
			return sel
		}
	}
	return class.Name
}
