// Package ast defines the position-annotated, immutable syntax tree for
// Ara source units. Node variants are plain structs implementing a small
// capability interface (position + children) rather than a class
// hierarchy — see spec.md §9 "variant trees instead of inheritance" — so
// downstream visitors can traverse any node uniformly via Children().
package ast

import "github.com/ara-lang/ara-parser/pkg/token"

// Node is implemented by every AST variant. InitialPosition/FinalPosition
// expose the node's byte-offset span (used for diagnostic underlining and
// downstream traversal, spec.md §3); Children lists the node's immediate
// descendants in a fixed per-variant order, skipping nils. That order is
// not always source order: attribute groups, for instance, come last.
type Node interface {
	InitialPosition() token.Span
	FinalPosition() token.Span
	Children() []Node
}

// Pos is the embeddable position pair every node carries.
type Pos struct {
	Initial token.Span
	Final   token.Span
}

func (p Pos) InitialPosition() token.Span { return p.Initial }
func (p Pos) FinalPosition() token.Span   { return p.Final }

// Expr is implemented by every expression variant.
type Expr interface {
	Node
	exprNode()
}

// Stmt is implemented by every statement variant.
type Stmt interface {
	Node
	stmtNode()
}

// Definition is implemented by every top-level/namespaced item.
type Definition interface {
	Node
	definitionNode()
}

// Member is implemented by every class/interface/enum body item.
type Member interface {
	Node
	memberNode()
}

// TypeDefinition is implemented by every type-expression variant. The two
// extra predicates encode the DNF/standalone/scalar rules of spec.md §4.6
// directly on the node so the type parser does not need a parallel
// classification switch.
type TypeDefinition interface {
	Node
	typeNode()
	// IsStandalone reports whether this type cannot participate in a union,
	// intersection, or be wrapped as nullable.
	IsStandalone() bool
	// IsScalar reports whether this type is one of int|string|float|bool,
	// forbidden inside intersections.
	IsScalar() bool
}

// nodes filters out nil entries, letting callers build a Children() slice
// with unconditional append-style calls. Callers pass typed nils (e.g. a nil
// *Identifier stored in an Expr) through the optionalIdentifier/optionalExpr/…
// helpers below first so they are recognized here too.
func nodes(ns ...Node) []Node {
	out := make([]Node, 0, len(ns))
	for _, n := range ns {
		if n == nil {
			continue
		}
		out = append(out, n)
	}
	return out
}

// optionalIdentifier returns id as a Node, or nil if id is nil. Use this
// (and its siblings below) before passing an optional, possibly-nil pointer
// field into nodes(), since a nil *Identifier boxed directly into the Node
// interface is not == nil.
func optionalIdentifier(id *Identifier) Node {
	if id == nil {
		return nil
	}
	return id
}

func optionalExpr(e Expr) Node {
	if e == nil {
		return nil
	}
	return e
}

func optionalStmt(s Stmt) Node {
	if s == nil {
		return nil
	}
	return s
}

func optionalType(t TypeDefinition) Node {
	if t == nil {
		return nil
	}
	return t
}

func optionalArgumentList(l *ArgumentList) Node {
	if l == nil {
		return nil
	}
	return l
}

// CommentGroup is a run of consecutive comment/doc-comment tokens. No node
// type in this package holds one; comments are not attached to the tree.
type CommentGroup struct {
	Texts []string
	Spans []token.Span
}
