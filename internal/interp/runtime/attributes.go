package runtime

// AttributeMap is the dynamic attribute facility every SOL25 value
// supports (spec §3): an open map of attribute name to Value, settable
// and gettable through the dynamic-attribute dispatch phase (§4.5 phase
// 9). The three singletons share one map each across the whole run, by
// construction (they are built once, in singletons.go, and never
// rebuilt) — not because AttributeMap itself is special-cased.
type AttributeMap struct {
	values map[string]Value
}

// NewAttributeMap returns an empty attribute map.
func NewAttributeMap() *AttributeMap {
	return &AttributeMap{values: make(map[string]Value)}
}

// Get returns the attribute's value and true, or nil and false if unset.
func (m *AttributeMap) Get(name string) (Value, bool) {
	v, ok := m.values[name]
	return v, ok
}

// Set assigns (or overwrites) the attribute.
func (m *AttributeMap) Set(name string, v Value) {
	m.values[name] = v
}

// Has reports whether the attribute is set.
func (m *AttributeMap) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Range iterates every attribute currently set. Used by from: to copy an
// object's attributes (spec §4.5 phase 1).
func (m *AttributeMap) Range(f func(name string, v Value) bool) {
	for name, v := range m.values {
		if !f(name, v) {
			return
		}
	}
}

// InternalValueAttr is the reserved attribute name through which a user
// Object delegates to a boxed Integer, String, or Block (spec §3, §4.5
// phase 7).
const InternalValueAttr = "__internal_value"
