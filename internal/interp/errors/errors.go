package errors

import "fmt"

// Error is the interpreter's single error type: a Kind (spec §7), a
// human-readable message, and the selector/site that was active when the
// error was raised, for context in diagnostics. Modeled on the teacher's
// InterpreterError (Category/Message/Expression fields, per-category
// constructor families).
type Error struct {
	Kind       Kind
	Message    string
	Site       string // selector or variable name active at the error site, may be empty
	Wrapped    error  // original error, if this Error rewrites another (see §4.6)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Site != "" {
		return fmt.Sprintf("%s: %s (at %s)", e.Kind, e.Message, e.Site)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *Error) Unwrap() error {
	return e.Wrapped
}

// Code returns the stable process exit code for this error (spec §7).
func (e *Error) Code() int {
	return e.Kind.Code()
}

func new_(kind Kind, site, format string, args ...any) *Error {
	return &Error{Kind: kind, Site: site, Message: fmt.Sprintf(format, args...)}
}

// NewParseMain reports a missing Main class or Main#run method.
func NewParseMain(format string, args ...any) *Error {
	return new_(ParseMain, "", format, args...)
}

// NewParseUndef reports a read of an undefined variable, parameter, or
// keyword.
func NewParseUndef(name string) *Error {
	return new_(ParseUndef, name, ErrMsgUndefinedVariable, name)
}

// NewParseArity reports a method whose block arity disagrees with its
// selector's colon-count, discovered at call time.
func NewParseArity(selector string, wantArity, gotArity int) *Error {
	return new_(ParseArity, selector, ErrMsgArityMismatch, selector, wantArity, gotArity)
}

// NewParseCollision reports an assignment to a parameter or a reserved
// name.
func NewParseCollision(name string) *Error {
	return new_(ParseCollision, name, ErrMsgCollision, name)
}

// NewDNU reports a selector the receiver does not understand after the
// full dispatch ladder (§4.5) has been exhausted.
func NewDNU(receiverKind, selector string) *Error {
	return new_(DNU, selector, ErrMsgDNU, receiverKind, selector)
}

// NewType reports malformed AST shape, self/super misuse, an
// attribute/method collision, or a value:/value required-but-missing
// situation.
func NewType(site, format string, args ...any) *Error {
	return new_(Type, site, format, args...)
}

// NewValue reports a bad arithmetic operand, from: incompatibility,
// division by zero, or divBy: overflow.
func NewValue(site, format string, args ...any) *Error {
	return new_(Value, site, format, args...)
}

// NewInternal reports an interpreter invariant violation.
func NewInternal(format string, args ...any) *Error {
	return new_(Internal, "", format, args...)
}

// Rewrite wraps err as a Type error describing callSite, per the §4.6
// helper: "Errors from the helper path in §4.6 are rewritten to type
// errors that describe the call site."
func Rewrite(err error, callSite string) *Error {
	msg := err.Error()
	if ie, ok := err.(*Error); ok {
		msg = ie.Message
	}
	return &Error{Kind: Type, Site: callSite, Message: fmt.Sprintf("%s: %s", callSite, msg), Wrapped: err}
}

// As reports whether err is itself an *Error and returns it. An *Error
// wrapped inside some other error type is not found.
func As(err error) (*Error, bool) {
	ie, ok := err.(*Error)
	return ie, ok
}
