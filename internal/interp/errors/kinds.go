// Package errors defines the SOL25 interpreter's error taxonomy (spec §7):
// a closed set of error kinds, each with a stable numeric exit code, plus
// the message catalog used across the evaluator and dispatcher.
//
// Modeled on the teacher's internal/interp/errors package: a small
// category enum, one Error type, and constructor families per category.
package errors

// Kind is the closed set of SOL25 error categories. Every SOL25-level
// failure unwinds to the top-level driver tagged with exactly one of
// these.
type Kind int

const (
	// ParseMain: Main is missing, or Main#run is missing, after the XML
	// pass finishes building the class registry.
	ParseMain Kind = iota
	// ParseUndef: read of an undefined variable, parameter, or keyword.
	ParseUndef
	// ParseArity: a method selector's colon-arity disagrees with its
	// block's parameter count, discovered at call time.
	ParseArity
	// ParseCollision: assignment to a parameter or a reserved name.
	ParseCollision
	// DNU: the receiver does not understand the selector after the full
	// dispatch ladder of §4.5 has been exhausted.
	DNU
	// Type: malformed AST shape, misuse of self/super, an
	// attribute/method collision, or a value that does not respond to
	// value/value: where the §4.6 helper required it.
	Type
	// Value: bad arithmetic operand, from: incompatibility, division by
	// zero, or divBy: overflow.
	Value
	// Internal: an invariant violation — a bug in the interpreter
	// itself, never a SOL25 program's fault.
	Internal
)

// Code returns the stable numeric exit code for the kind (spec §7).
func (k Kind) Code() int {
	switch k {
	case ParseMain:
		return 31
	case ParseUndef:
		return 32
	case ParseArity:
		return 33
	case ParseCollision:
		return 34
	case DNU:
		return 51
	case Type:
		return 52
	case Value:
		return 53
	case Internal:
		return 99
	default:
		return 99
	}
}

// String returns a short human-readable tag for the kind, used in error
// messages.
func (k Kind) String() string {
	switch k {
	case ParseMain:
		return "PARSE_MAIN"
	case ParseUndef:
		return "PARSE_UNDEF"
	case ParseArity:
		return "PARSE_ARITY"
	case ParseCollision:
		return "PARSE_COLLISION"
	case DNU:
		return "INTERPRET_DNU"
	case Type:
		return "INTERPRET_TYPE"
	case Value:
		return "INTERPRET_VALUE"
	case Internal:
		return "INTERNAL"
	default:
		return "UNKNOWN"
	}
}
