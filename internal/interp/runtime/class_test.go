package runtime

import "testing"

func TestNewRegistryBootstrapsBuiltins(t *testing.T) {
	r := NewRegistry()
	for _, name := range []string{"Object", "Nil", "True", "False", "Integer", "String", "Block"} {
		cd, ok := r.Get(name)
		if !ok {
			t.Fatalf("expected built-in class %s to be registered", name)
		}
		if !cd.IsBuiltin {
			t.Errorf("%s: expected IsBuiltin", name)
		}
	}
	obj, _ := r.Get("Object")
	if obj.Parent != nil {
		t.Errorf("Object should have no parent, got %v", obj.Parent)
	}
	str, _ := r.Get("String")
	if str.Parent != obj {
		t.Errorf("String's parent should be Object")
	}
}

func TestAddClassValidatesNameAndParent(t *testing.T) {
	r := NewRegistry()
	if _, err := r.AddClass("lowercase", "Object", nil); err == nil {
		t.Error("expected error for invalid class name")
	}
	if _, err := r.AddClass("Foo", "Nowhere", nil); err == nil {
		t.Error("expected error for missing parent")
	}
	if _, err := r.AddClass("Object", "Object", nil); err == nil {
		t.Error("expected error for duplicate class name")
	}
	if _, err := r.AddClass("Foo", "Object", nil); err != nil {
		t.Fatalf("unexpected error registering Foo: %v", err)
	}
	if _, err := r.AddClass("Bar", "Foo", nil); err != nil {
		t.Fatalf("unexpected error registering Bar parented to Foo: %v", err)
	}
}

func TestFindMethodOwnThenAncestors(t *testing.T) {
	r := NewRegistry()
	parentBody := &BlockLit{}
	childBody := &BlockLit{}
	parent, err := r.AddClass("Parent", "Object", map[string]*BlockLit{"greet": parentBody})
	if err != nil {
		t.Fatal(err)
	}
	child, err := r.AddClass("Child", "Parent", map[string]*BlockLit{"shout": childBody})
	if err != nil {
		t.Fatal(err)
	}

	if body, owner, ok := child.FindMethod("shout"); !ok || body != childBody || owner != child {
		t.Errorf("expected shout to resolve on Child itself")
	}
	if body, owner, ok := child.FindMethod("greet"); !ok || body != parentBody || owner != parent {
		t.Errorf("expected greet to resolve on Parent via ancestor search")
	}
	if _, _, ok := child.FindMethod("missing"); ok {
		t.Errorf("did not expect missing to resolve")
	}

	if _, _, ok := child.FindMethodInParent("shout"); ok {
		t.Errorf("FindMethodInParent must skip the receiver's own class")
	}
	if body, owner, ok := child.FindMethodInParent("greet"); !ok || body != parentBody || owner != parent {
		t.Errorf("FindMethodInParent should still find an ancestor's method")
	}
}

func TestCompatibleAndIsOrDescendsFrom(t *testing.T) {
	r := NewRegistry()
	integer, _ := r.Get("Integer")
	object, _ := r.Get("Object")
	child, err := r.AddClass("MyInt", "Integer", nil)
	if err != nil {
		t.Fatal(err)
	}

	if !child.IsOrDescendsFrom("Integer") {
		t.Error("MyInt should descend from Integer")
	}
	if !Compatible(child, integer) || !Compatible(integer, child) {
		t.Error("MyInt and Integer should be from: compatible in either direction")
	}
	if Compatible(child, object) == false {
		t.Error("every class is compatible with Object (its ancestor)")
	}
	other, _ := r.AddClass("Other", "Object", nil)
	if Compatible(child, other) {
		t.Error("unrelated classes should not be compatible")
	}
}

func TestRequireMain(t *testing.T) {
	r := NewRegistry()
	if _, _, _, err := r.RequireMain(); err == nil {
		t.Fatal("expected error when Main is missing")
	}
	if _, err := r.AddClass("Main", "Object", map[string]*BlockLit{
		"run:": {Params: []string{"x"}},
	}); err != nil {
		t.Fatal(err)
	}
	if _, _, _, err := r.RequireMain(); err == nil {
		t.Fatal("expected error when Main#run takes arguments")
	}

	r2 := NewRegistry()
	runBody := &BlockLit{}
	if _, err := r2.AddClass("Main", "Object", map[string]*BlockLit{"run": runBody}); err != nil {
		t.Fatal(err)
	}
	main, owner, run, err := r2.RequireMain()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if main.Name != "Main" || owner.Name != "Main" || run != runBody {
		t.Error("RequireMain should return Main's class, run's owner, and its run body")
	}
}
