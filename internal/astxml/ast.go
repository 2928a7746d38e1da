// Package astxml decodes the SOL25 abstract syntax tree from its XML wire
// format (spec §6) into a plain Go DOM. It performs no semantic analysis:
// its only job is turning angle brackets into structs so the interpreter
// never has to look at an XML token.
package astxml

import "encoding/xml"

// Program is the root <program> element.
type Program struct {
	XMLName  xml.Name `xml:"program"`
	Language string   `xml:"language,attr"`
	Classes  []*Class `xml:"class"`
}

// Class is a <class name=... parent=...> element.
type Class struct {
	Name    string    `xml:"name,attr"`
	Parent  string    `xml:"parent,attr"`
	Methods []*Method `xml:"method"`
}

// Method is a <method selector=...> element wrapping exactly one block.
type Method struct {
	Selector string `xml:"selector,attr"`
	Block    *Block `xml:"block"`
}

// Block is a <block arity=N> element: ordered parameters plus an ordered,
// sparsely-numbered list of assignment statements.
type Block struct {
	Arity      int          `xml:"arity,attr"`
	Parameters []*Parameter `xml:"parameter"`
	Assigns    []*Assign    `xml:"assign"`
}

// Parameter is a <parameter name=... order=K> element.
type Parameter struct {
	Name  string `xml:"name,attr"`
	Order int    `xml:"order,attr"`
}

// Assign is an <assign order=K> element: a variable and the expression
// whose value it receives.
type Assign struct {
	Order int   `xml:"order,attr"`
	Var   *Var  `xml:"var"`
	Expr  *Expr `xml:"expr"`
}

// Expr is an <expr> element. Exactly one of its fields is populated,
// mirroring the four alternatives the grammar allows in expression
// position: a literal, a variable read, a message send, or a block
// literal.
type Expr struct {
	Literal *Literal `xml:"literal"`
	Var     *Var     `xml:"var"`
	Send    *Send    `xml:"send"`
	Block   *Block   `xml:"block"`
}

// Literal is a <literal class=CLS value=V> element.
type Literal struct {
	Class string `xml:"class,attr"`
	Value string `xml:"value,attr"`
}

// Var is a <var name=...> element.
type Var struct {
	Name string `xml:"name,attr"`
}

// Send is a <send selector=...> element: a receiver expression followed
// by zero or more ordered arguments.
type Send struct {
	Selector string  `xml:"selector,attr"`
	Receiver *Expr   `xml:"expr"`
	Args     []*Arg  `xml:"arg"`
}

// Arg is an <arg order=K> element wrapping one argument expression.
type Arg struct {
	Order int   `xml:"order,attr"`
	Expr  *Expr `xml:"expr"`
}
