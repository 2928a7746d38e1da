package runtime

import (
	"regexp"

	"github.com/mjezek/sol25interp/internal/interp/errors"
)

// ClassDescriptor is a class's runtime metadata (spec §3): its name, its
// parent (nil only for Object), and its own selector→method table.
// Modeled on the teacher's IClassInfo/ClassInfo split, simplified here
// because SOL25's value types and class metadata live in the same
// package — there is no cross-package import cycle to route around with
// an interface.
type ClassDescriptor struct {
	Name      string
	Parent    *ClassDescriptor
	Methods   map[string]*BlockLit
	IsBuiltin bool
}

// OwnMethod looks up selector directly on c, without walking ancestors.
func (c *ClassDescriptor) OwnMethod(selector string) (*BlockLit, bool) {
	m, ok := c.Methods[selector]
	return m, ok
}

// FindMethod searches c, then its ancestors, for selector (spec §4.1
// find_method: "own-then-ancestors").
func (c *ClassDescriptor) FindMethod(selector string) (*BlockLit, *ClassDescriptor, bool) {
	for cur := c; cur != nil; cur = cur.Parent {
		if m, ok := cur.Methods[selector]; ok {
			return m, cur, true
		}
	}
	return nil, nil, false
}

// FindMethodInParent searches c's ancestors only, skipping c itself
// (spec §4.1 find_method_in_parent, used by `super` sends).
func (c *ClassDescriptor) FindMethodInParent(selector string) (*BlockLit, *ClassDescriptor, bool) {
	if c.Parent == nil {
		return nil, nil, false
	}
	return c.Parent.FindMethod(selector)
}

// IsOrDescendsFrom reports whether c is name or a (possibly indirect)
// subclass of name.
func (c *ClassDescriptor) IsOrDescendsFrom(name string) bool {
	for cur := c; cur != nil; cur = cur.Parent {
		if cur.Name == name {
			return true
		}
	}
	return false
}

// IsAncestorOf reports whether c is an ancestor of (or identical to)
// other.
func (c *ClassDescriptor) IsAncestorOf(other *ClassDescriptor) bool {
	return other.IsOrDescendsFrom(c.Name)
}

// Compatible reports whether a and b are the same class or one is an
// ancestor of the other (spec §4.5 phase 1, `from:`).
func Compatible(a, b *ClassDescriptor) bool {
	return a.IsOrDescendsFrom(b.Name) || b.IsOrDescendsFrom(a.Name)
}

var classNamePattern = regexp.MustCompile(`^[A-Z][A-Za-z0-9]*$`)

// ValidClassName reports whether name matches [A-Z][A-Za-z0-9]* (spec
// §4.1, §6).
func ValidClassName(name string) bool {
	return classNamePattern.MatchString(name)
}

// builtinClassNames lists the seven pre-registered classes, in
// bootstrap order (spec §4.1: "Seven built-ins pre-registered with
// Object as root").
var builtinClassNames = []string{"Object", "Nil", "True", "False", "Integer", "String", "Block"}

// Registry is the class registry (spec §4.1): a name→descriptor map
// plus the operations the dispatcher and evaluator need for method
// resolution and class-message handling.
type Registry struct {
	classes map[string]*ClassDescriptor
}

// NewRegistry builds a registry with the seven built-ins pre-registered,
// Object as root and every other built-in parented to Object.
func NewRegistry() *Registry {
	r := &Registry{classes: make(map[string]*ClassDescriptor)}
	var object *ClassDescriptor
	for _, name := range builtinClassNames {
		cd := &ClassDescriptor{Name: name, Methods: map[string]*BlockLit{}, IsBuiltin: true}
		if name != "Object" {
			cd.Parent = object
		} else {
			object = cd
		}
		r.classes[name] = cd
	}
	return r
}

// Get returns the class descriptor for name, if registered.
func (r *Registry) Get(name string) (*ClassDescriptor, bool) {
	cd, ok := r.classes[name]
	return cd, ok
}

// Exists reports whether name is a registered class.
func (r *Registry) Exists(name string) bool {
	_, ok := r.classes[name]
	return ok
}

// AddClass registers a new user class (spec §4.1 add_class). It fails
// if name is already taken (including by a built-in), if parentName is
// not a registered class, or if name does not match
// [A-Z][A-Za-z0-9]*. Method insertion fails on a duplicate selector
// within the same class; overriding an ancestor's method is allowed.
func (r *Registry) AddClass(name, parentName string, methods map[string]*BlockLit) (*ClassDescriptor, error) {
	if !ValidClassName(name) {
		return nil, errors.NewType(name, errors.ErrMsgClassNameInvalid, name)
	}
	if r.Exists(name) {
		return nil, errors.NewType(name, errors.ErrMsgClassExists, name)
	}
	parent, ok := r.Get(parentName)
	if !ok {
		return nil, errors.NewType(name, errors.ErrMsgParentNotFound, parentName)
	}
	cd := &ClassDescriptor{Name: name, Parent: parent, Methods: map[string]*BlockLit{}}
	for selector, body := range methods {
		if _, dup := cd.Methods[selector]; dup {
			return nil, errors.NewType(name, errors.ErrMsgMethodDuplicate, selector, name)
		}
		cd.Methods[selector] = body
	}
	r.classes[name] = cd
	return cd, nil
}

// FindMethod looks up selector starting at class, then its ancestors.
func (r *Registry) FindMethod(class *ClassDescriptor, selector string) (*BlockLit, *ClassDescriptor, bool) {
	return class.FindMethod(selector)
}

// FindMethodInParent looks up selector starting at class's parent,
// skipping class itself (the `super` variant).
func (r *Registry) FindMethodInParent(class *ClassDescriptor, selector string) (*BlockLit, *ClassDescriptor, bool) {
	return class.FindMethodInParent(selector)
}

// RequireMain validates that Main exists and defines a parameterless
// run method (spec §4.1), returning a PARSE_MAIN error otherwise. The
// returned owner is the class that actually declares run — Main itself,
// or an ancestor if Main inherits it — so a `super` send inside that
// body resolves against its true owner rather than against Main.
func (r *Registry) RequireMain() (main, owner *ClassDescriptor, run *BlockLit, err error) {
	main, ok := r.Get("Main")
	if !ok {
		return nil, nil, nil, errors.NewParseMain(errors.ErrMsgMainMissing)
	}
	run, owner, ok = main.FindMethod("run")
	if !ok || run.Arity() != 0 {
		return nil, nil, nil, errors.NewParseMain(errors.ErrMsgMainRunMissing)
	}
	return main, owner, run, nil
}
