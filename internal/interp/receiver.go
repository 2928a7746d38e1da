package interp

import "github.com/mjezek/sol25interp/internal/interp/runtime"

// recvKind distinguishes the three shapes a send's receiver can take
// once evaluated (spec §4.5 "Receiver evaluation"): a class-name
// literal, the `super` sentinel, or an ordinary Value. Modeling this as
// its own type — rather than smuggling ClassRef/super into the Value
// union — keeps them from ever leaking into a general-purpose
// expression result, per the design note in spec §9.
type recvKind int

const (
	recvValue recvKind = iota
	recvClass
	recvSuper
)

// recv is the result of evaluating a send's receiver expression.
type recv struct {
	kind  recvKind
	class *runtime.ClassDescriptor // set when kind == recvClass
	value runtime.Value            // set when kind == recvValue
}
