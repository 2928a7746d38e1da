// Package runtime provides the core runtime value system for the SOL25
// interpreter: the closed Value variant set (spec §3), the class
// registry and method resolution (spec §4.1), and the frame/call-stack
// machinery that backs block execution (spec §4.3, §4.4).
//
// Adapted from the teacher's internal/interp/runtime package: the same
// "Value interface + concrete variant structs" shape, the same
// IClassInfo-free layout (SOL25 has no evaluator/runtime import-cycle
// problem since class metadata and values live in one package here), and
// the same IsX/AsX helper-function convention.
package runtime

// Kind identifies which of the seven closed SOL25 value variants a Value
// is (spec §3).
type Kind int

const (
	KindNil Kind = iota
	KindTrue
	KindFalse
	KindInteger
	KindString
	KindBlock
	KindObject
)

// String returns the SOL25 class name associated with the kind.
func (k Kind) String() string {
	switch k {
	case KindNil:
		return "Nil"
	case KindTrue:
		return "True"
	case KindFalse:
		return "False"
	case KindInteger:
		return "Integer"
	case KindString:
		return "String"
	case KindBlock:
		return "Block"
	case KindObject:
		return "Object"
	default:
		return "?"
	}
}

// Value is the interface every SOL25 runtime value implements: the
// closed union of Nil, True, False, Integer, String, Block, and Object
// described by spec §3.
type Value interface {
	// Kind reports which variant this value is.
	Kind() Kind
	// Attrs returns the value's dynamic attribute map (spec §3: "every
	// value must support" the attribute facility, including the
	// singletons).
	Attrs() *AttributeMap
}

// IsObject reports whether v is an *ObjectInstance.
func IsObject(v Value) bool {
	_, ok := v.(*ObjectInstance)
	return ok
}

// AsObject attempts to view v as an *ObjectInstance.
func AsObject(v Value) (*ObjectInstance, bool) {
	o, ok := v.(*ObjectInstance)
	return o, ok
}

// AsInteger attempts to view v as an *IntegerValue.
func AsInteger(v Value) (*IntegerValue, bool) {
	i, ok := v.(*IntegerValue)
	return i, ok
}

// AsString attempts to view v as a *StringValue.
func AsString(v Value) (*StringValue, bool) {
	s, ok := v.(*StringValue)
	return s, ok
}

// AsBlock attempts to view v as a *BlockValue.
func AsBlock(v Value) (*BlockValue, bool) {
	b, ok := v.(*BlockValue)
	return b, ok
}
