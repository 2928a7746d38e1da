package interp

import (
	"github.com/mjezek/sol25interp/internal/astxml"
	"github.com/mjezek/sol25interp/internal/interp/errors"
	"github.com/mjezek/sol25interp/internal/interp/runtime"
)

// buildRegistry adds every <class> in program to reg (spec §4.1
// add_class). Classes are not required to appear in parent-before-child
// order in the document: this makes repeated passes over the remaining
// classes, adding whichever ones have a now-registered parent, until a
// pass makes no progress — at which point any leftover class either names
// a missing parent (or points at a cycle) or was rejected by AddClass,
// and the first such failure is reported.
func buildRegistry(reg *runtime.Registry, program *astxml.Program) error {
	remaining := make([]*astxml.Class, len(program.Classes))
	copy(remaining, program.Classes)

	for len(remaining) > 0 {
		next := remaining[:0:0]
		progressed := false
		var firstErr error
		for _, c := range remaining {
			if !reg.Exists(c.Parent) {
				next = append(next, c)
				continue
			}
			methods, err := buildMethods(c)
			if err != nil {
				return err
			}
			if _, err := reg.AddClass(c.Name, c.Parent, methods); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				next = append(next, c)
				continue
			}
			progressed = true
		}
		if !progressed {
			if firstErr != nil {
				return firstErr
			}
			return errors.NewType(remaining[0].Name, errors.ErrMsgParentNotFound, remaining[0].Parent)
		}
		remaining = next
	}
	return nil
}

// buildMethods converts c's <method> elements into selector→BlockLit
// entries, rejecting a duplicate selector (spec §4.1). A method whose
// block arity disagrees with its selector's own colon count is still
// registered here: spec §4.5/§7/§8 requires that mismatch be raised as
// ParseArity at call time, not at load time, so that a program defining
// such a method without ever calling it still runs (the call-time check
// lives in phase 6 of the dispatcher, dispatch.go).
func buildMethods(c *astxml.Class) (map[string]*runtime.BlockLit, error) {
	methods := make(map[string]*runtime.BlockLit, len(c.Methods))
	for _, m := range c.Methods {
		if _, dup := methods[m.Selector]; dup {
			return nil, errors.NewType(c.Name, errors.ErrMsgMethodDuplicate, m.Selector, c.Name)
		}
		methods[m.Selector] = buildBlockLit(m.Block)
	}
	return methods, nil
}

// buildBlockLit converts an *astxml.Block into a *runtime.BlockLit,
// ordering parameters by their declared `order` attribute (spec §6: "K
// sequential from 1").
func buildBlockLit(b *astxml.Block) *runtime.BlockLit {
	params := make([]*astxml.Parameter, len(b.Parameters))
	copy(params, b.Parameters)
	for i := 1; i < len(params); i++ {
		for j := i; j > 0 && params[j-1].Order > params[j].Order; j-- {
			params[j-1], params[j] = params[j], params[j-1]
		}
	}
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	stmts := make([]runtime.Statement, len(b.Assigns))
	for i, a := range b.Assigns {
		varName := ""
		if a.Var != nil {
			varName = a.Var.Name
		}
		stmts[i] = runtime.Statement{Order: a.Order, Var: varName, Expr: a.Expr}
	}
	return &runtime.BlockLit{Params: names, Statements: stmts}
}

// selectorArity is the number of `:` in selector (spec glossary:
// Arity).
func selectorArity(selector string) int {
	n := 0
	for _, r := range selector {
		if r == ':' {
			n++
		}
	}
	return n
}
