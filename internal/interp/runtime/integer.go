package runtime

// IntegerValue is a 64-bit signed SOL25 Integer (spec §3). Identity is
// "by value literal" rather than by reference (spec §8): two
// IntegerValues are `identicalTo:` each other whenever their N fields
// match, regardless of which evaluation produced them. Each construction
// site still allocates its own AttributeMap, so dynamic attributes set
// on one boxed instance do not leak into an unrelated Integer that
// happens to carry the same number — only an explicit variable alias
// (`y := x`) shares the underlying instance and its attributes, which is
// the one place SOL25's "value semantics (copy)" note (spec §3) and its
// attribute facility (spec §9, preserved for Nil/True/False and, by the
// same mechanism, for Integer/String) are in tension; see DESIGN.md.
type IntegerValue struct {
	N     int64
	attrs *AttributeMap
}

// NewInteger constructs a fresh Integer value.
func NewInteger(n int64) *IntegerValue {
	return &IntegerValue{N: n, attrs: NewAttributeMap()}
}

func (v *IntegerValue) Kind() Kind           { return KindInteger }
func (v *IntegerValue) Attrs() *AttributeMap { return v.attrs }
