// Package astxml decodes the pre-parsed SOL25 XML AST (spec §6) into a Go
// DOM. Lexing and parsing of SOL25 source is explicitly out of scope
// (spec §1); this package only has to make sense of the wire format the
// external parser already produced, and catch the structural violations
// the spec requires to surface as type errors.
package astxml

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/mjezek/sol25interp/internal/interp/errors"
)

// Parse decodes r as a SOL25 AST document and validates its structural
// shape (spec §6): root language attribute, class/method/block nesting,
// and each <expr>'s exactly-one-child rule. It does not validate class
// names, selectors, or literal values beyond the shape of the document —
// those checks happen while the registry and method bodies are built, so
// that the right error Kind (PARSE_* vs INTERPRET_TYPE) is attached.
func Parse(r io.Reader) (*Program, error) {
	var p Program
	dec := xml.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, errors.NewType("program", errors.ErrMsgMalformedExpr+": %s", err.Error())
	}
	if !strings.EqualFold(p.Language, "SOL25") {
		return nil, errors.NewType("program", "root <program> language attribute must be SOL25 (case-insensitive), got %q", p.Language)
	}
	for _, c := range p.Classes {
		if err := validateClass(c); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func validateClass(c *Class) error {
	for _, m := range c.Methods {
		if m.Block == nil {
			return errors.NewType(c.Name, "method %q must contain exactly one <block>", m.Selector)
		}
		if err := validateBlock(m.Block); err != nil {
			return err
		}
	}
	return nil
}

func validateBlock(b *Block) error {
	seen := make(map[int]bool, len(b.Assigns))
	for _, a := range b.Assigns {
		if seen[a.Order] {
			return errors.NewType("block", "duplicate <assign order=%d>", a.Order)
		}
		seen[a.Order] = true
		if a.Var == nil || a.Expr == nil {
			return errors.NewType("block", errors.ErrMsgMalformedExpr)
		}
		if err := validateExpr(a.Expr); err != nil {
			return err
		}
	}
	return nil
}

// validateExpr enforces the "exactly one of literal, var, send, block"
// rule (spec §4.2, §6) recursively through sends, arguments, and nested
// blocks.
func validateExpr(e *Expr) error {
	n := 0
	if e.Literal != nil {
		n++
	}
	if e.Var != nil {
		n++
	}
	if e.Send != nil {
		n++
	}
	if e.Block != nil {
		n++
	}
	if n != 1 {
		return errors.NewType("expr", errors.ErrMsgMalformedExpr)
	}
	if e.Send != nil {
		if e.Send.Receiver == nil {
			return errors.NewType(e.Send.Selector, errors.ErrMsgMalformedExpr)
		}
		if err := validateExpr(e.Send.Receiver); err != nil {
			return err
		}
		seen := make(map[int]bool, len(e.Send.Args))
		for _, a := range e.Send.Args {
			if seen[a.Order] {
				return errors.NewType(e.Send.Selector, "duplicate <arg order=%d>", a.Order)
			}
			seen[a.Order] = true
			if a.Expr == nil {
				return errors.NewType(e.Send.Selector, errors.ErrMsgMalformedExpr)
			}
			if err := validateExpr(a.Expr); err != nil {
				return err
			}
		}
	}
	if e.Block != nil {
		return validateBlock(e.Block)
	}
	return nil
}
