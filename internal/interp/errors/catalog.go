package errors

// Error Message Catalog
//
// Centralizes the format strings used to build *Error messages, the way
// the teacher's internal/interp/errors/catalog.go centralizes its
// ErrMsg* constants. Messages are lowercase, present tense, and include
// the relevant names/values.

const (
	// Variable / parameter resolution
	ErrMsgUndefinedVariable = "undefined variable or parameter: %s"
	ErrMsgCollision         = "cannot assign to parameter or reserved name: %s"

	// Arity
	ErrMsgArityMismatch = "method %q block arity does not match selector: wants %d parameter(s), selector declares %d"

	// Dispatch
	ErrMsgDNU = "%s does not understand %q"

	// Class registry
	ErrMsgClassExists       = "class already defined: %s"
	ErrMsgClassNameInvalid  = "class name does not match [A-Z][A-Za-z0-9]*: %s"
	ErrMsgParentNotFound    = "parent class not found: %s"
	ErrMsgMethodDuplicate   = "duplicate method selector %q in class %s"
	ErrMsgMainMissing       = "class Main is not defined"
	ErrMsgMainRunMissing    = "Main does not define a parameterless method run"

	// Structural / AST shape
	ErrMsgMalformedExpr      = "malformed <expr>: expected exactly one of literal, var, send, block"
	ErrMsgMalformedLiteral   = "malformed literal class: %s"
	ErrMsgBadIntegerLiteral  = "malformed integer literal: %s"
	ErrMsgClassLiteralContext = "class literal %q is only valid in receiver position"

	// self/super
	ErrMsgNoSelf       = "self has no binding in this context"
	ErrMsgSuperAsValue = "super is not a value"
	ErrMsgSuperContext = "super used outside of a method context"

	// Attribute / method collisions (phase 9)
	ErrMsgAttrShadowsBuiltin = "attribute %q collides with a built-in method on %s"
	ErrMsgAttrShadowsMethod  = "attribute %q collides with a declared method on class %s"

	// value/value: helper (§4.6)
	ErrMsgNotAThunk = "value required but %s does not respond to %s"

	// Arithmetic / value errors
	ErrMsgDivisionByZero  = "division by zero"
	ErrMsgDivOverflow     = "integer overflow: MinInt64 divBy: -1"
	ErrMsgOperandNotInt   = "%s requires an Integer operand"
	ErrMsgFromIncompatible = "from: incompatible classes: %s and %s"
	ErrMsgBlockNotInstantiable = "Block cannot be instantiated with %s"

	// Internal
	ErrMsgEmptyCallStack    = "call stack is empty"
	ErrMsgStackOverflow     = "call stack exceeded maximum depth (%d)"
	ErrMsgUninitialized     = "interpreter used before initialization"
)
