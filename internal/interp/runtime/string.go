package runtime

// StringValue is a UTF-8 SOL25 String (spec §3). Like IntegerValue,
// identity is by value rather than by reference (spec §8).
type StringValue struct {
	S     string
	attrs *AttributeMap
}

// NewString constructs a fresh String value.
func NewString(s string) *StringValue {
	return &StringValue{S: s, attrs: NewAttributeMap()}
}

func (v *StringValue) Kind() Kind           { return KindString }
func (v *StringValue) Attrs() *AttributeMap { return v.attrs }
