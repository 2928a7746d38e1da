package runtime

import "sort"

// Statement is one `var := expr` assignment inside a block body (spec
// §3), keyed by its 1-based declaration order. Expr is an *astxml.Expr
// but is kept as `any` here to avoid runtime importing astxml solely for
// a field type used only by the evaluator; the evaluator package asserts
// it back to *astxml.Expr each time it executes the statement, in
// evaluator.go's executeBlock.
type Statement struct {
	Order int
	Var   string
	Expr  any
}

// BlockLit is a block literal's shared, immutable shape (spec §3): an
// ordered parameter list and an ordered statement list. A method body's
// *BlockLit is built once at load time and shared by every call; a block
// literal inside a body gets a fresh *BlockLit each time the literal is
// evaluated.
type BlockLit struct {
	Params     []string
	Statements []Statement
}

// Arity is the number of declared parameters.
func (b *BlockLit) Arity() int { return len(b.Params) }

// SortedStatements returns the block's statements in execution order
// (spec §4.2: "sorts assignments by order"). BlockLit construction
// does not require the XML's <assign order> values to already be
// sorted; this is computed once and cached would be an optimization,
// but blocks are cheap enough here that computing per-call keeps the
// type simple and immutable.
func (b *BlockLit) SortedStatements() []Statement {
	out := make([]Statement, len(b.Statements))
	copy(out, b.Statements)
	sort.Slice(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// BlockValue is a runtime Block value: a reference to the shared
// BlockLit plus the `self` captured at the moment the block literal was
// evaluated (spec §3, §4.2, §9 "Captured self"). Every evaluation of a
// block-literal expression allocates a new BlockValue, even when it
// wraps the same BlockLit — "distinct per eval" identity (spec §8).
type BlockValue struct {
	Lit          *BlockLit
	CapturedSelf Value // nil if the block was built outside any self context
	// CapturedMethodClass is the class whose method body lexically
	// encloses this block literal, or nil if the block was built outside
	// any method body. It is what a `super` send inside the block, once
	// invoked, resolves against — not the class of whatever object the
	// block eventually captures as self.
	CapturedMethodClass *ClassDescriptor
	attrs               *AttributeMap
}

// NewBlock wraps lit with the self and enclosing method class captured at
// literal-evaluation time.
func NewBlock(lit *BlockLit, capturedSelf Value, capturedMethodClass *ClassDescriptor) *BlockValue {
	return &BlockValue{Lit: lit, CapturedSelf: capturedSelf, CapturedMethodClass: capturedMethodClass, attrs: NewAttributeMap()}
}

func (v *BlockValue) Kind() Kind           { return KindBlock }
func (v *BlockValue) Attrs() *AttributeMap { return v.attrs }
