package runtime

// ObjectInstance is a runtime instance of a user-defined (or Object
// itself) class (spec §3): a class pointer plus a dynamic attribute
// map. Modeled on the teacher's ObjectInstance (Class + field map), with
// the internal-value delegation slot (spec §4.5 phase 7) implemented as
// a reserved attribute rather than a separate field, so Attrs().Range
// naturally includes it when from: copies attributes.
type ObjectInstance struct {
	Class *ClassDescriptor
	attrs *AttributeMap
}

// NewObject constructs an instance of class with an empty attribute map.
func NewObject(class *ClassDescriptor) *ObjectInstance {
	return &ObjectInstance{Class: class, attrs: NewAttributeMap()}
}

func (o *ObjectInstance) Kind() Kind           { return KindObject }
func (o *ObjectInstance) Attrs() *AttributeMap { return o.attrs }

// InternalValue returns the boxed Integer, String, or Block this object
// delegates unhandled sends to (spec §4.5 phase 7), if one is set: `new`
// on a subclass of Integer or String seeds it, and `from:` copies it in.
func (o *ObjectInstance) InternalValue() (Value, bool) {
	v, ok := o.attrs.Get(InternalValueAttr)
	return v, ok
}

// SetInternalValue installs v as the object's delegation target.
func (o *ObjectInstance) SetInternalValue(v Value) {
	o.attrs.Set(InternalValueAttr, v)
}

// CopyAttributesFrom copies every attribute (including a set internal
// value) from src into o, overwriting any attribute already set on o
// with the same name. The from: class message does not use it: it
// copies attributes through setter sends instead (dispatch_class.go).
func (o *ObjectInstance) CopyAttributesFrom(src Value) {
	src.Attrs().Range(func(name string, v Value) bool {
		o.attrs.Set(name, v)
		return true
	})
}
