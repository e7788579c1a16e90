package ast

import "github.com/ara-lang/ara-parser/pkg/token"

// --- Literals & simple leaves ---

type IntegerLiteral struct {
	Pos
	Value string
}

func (n *IntegerLiteral) Children() []Node { return nil }
func (n *IntegerLiteral) exprNode()        {}

type FloatLiteral struct {
	Pos
	Value string
}

func (n *FloatLiteral) Children() []Node { return nil }
func (n *FloatLiteral) exprNode()        {}

type StringLiteral struct {
	Pos
	Value string
}

func (n *StringLiteral) Children() []Node { return nil }
func (n *StringLiteral) exprNode()        {}

type BoolLiteral struct {
	Pos
	Value bool
}

func (n *BoolLiteral) Children() []Node { return nil }
func (n *BoolLiteral) exprNode()        {}

type NullLiteral struct{ Pos }

func (n *NullLiteral) Children() []Node { return nil }
func (n *NullLiteral) exprNode()        {}

type Variable struct {
	Pos
	Name string // includes leading '$'
}

func (n *Variable) Children() []Node { return nil }
func (n *Variable) exprNode()        {}

// MagicConstantKind enumerates the `__X__` magic constants.
type MagicConstantKind int

const (
	MagicDir MagicConstantKind = iota
	MagicFile
	MagicLine
	MagicFunction
	MagicClass
	MagicMethod
	MagicNamespace
)

type MagicConstant struct {
	Pos
	Kind MagicConstantKind
}

func (n *MagicConstant) Children() []Node { return nil }
func (n *MagicConstant) exprNode()        {}

// --- Grouping / collection literals ---

type ParenthesizedExpression struct {
	Pos
	Inner Expr
}

func (n *ParenthesizedExpression) Children() []Node { return nodes(n.Inner) }
func (n *ParenthesizedExpression) exprNode()        {}

type TupleExpression struct {
	Pos
	Elements []Expr
}

func (n *TupleExpression) Children() []Node {
	out := make([]Node, 0, len(n.Elements))
	for _, e := range n.Elements {
		out = append(out, e)
	}
	return out
}
func (n *TupleExpression) exprNode() {}

// DictEntry is one `key => value` (or bare `value` for vec-style) element.
type DictEntry struct {
	Pos
	Key   Expr // nil for a vec-style element
	Value Expr
}

func (e *DictEntry) Children() []Node { return nodes(optionalExpr(e.Key), e.Value) }

type VecExpression struct {
	Pos
	Elements []*DictEntry
}

func (n *VecExpression) Children() []Node {
	out := make([]Node, 0, len(n.Elements))
	for _, e := range n.Elements {
		out = append(out, e)
	}
	return out
}
func (n *VecExpression) exprNode() {}

type DictExpression struct {
	Pos
	Elements []*DictEntry
}

func (n *DictExpression) Children() []Node {
	out := make([]Node, 0, len(n.Elements))
	for _, e := range n.Elements {
		out = append(out, e)
	}
	return out
}
func (n *DictExpression) exprNode() {}

// ListPatternExpression is the `list(...)` destructuring pattern
// (SPEC_FULL.md supplemented feature 2, grounded in original_source's
// soft-reserved `List` keyword). The parser accepts it wherever an
// expression may start and as a foreach target; it does not check that it
// stands on the left-hand side of an assignment.
type ListPatternExpression struct {
	Pos
	Elements []*DictEntry
}

func (n *ListPatternExpression) Children() []Node {
	out := make([]Node, 0, len(n.Elements))
	for _, e := range n.Elements {
		out = append(out, e)
	}
	return out
}
func (n *ListPatternExpression) exprNode() {}

// --- Operators ---

type PrefixExpression struct {
	Pos
	Operator token.Kind
	Operand  Expr
}

func (n *PrefixExpression) Children() []Node { return nodes(n.Operand) }
func (n *PrefixExpression) exprNode()        {}

type PostfixExpression struct {
	Pos
	Operator token.Kind
	Operand  Expr
}

func (n *PostfixExpression) Children() []Node { return nodes(n.Operand) }
func (n *PostfixExpression) exprNode()        {}

// BinaryExpression covers arithmetic, bitwise, comparison, logical,
// string-concat, and null-coalesce infix operators: one node shape per
// spec.md §9's "precedence tables over class hierarchies" design note.
type BinaryExpression struct {
	Pos
	Operator token.Kind
	Left     Expr
	Right    Expr
}

func (n *BinaryExpression) Children() []Node { return nodes(n.Left, n.Right) }
func (n *BinaryExpression) exprNode()        {}

type AssignmentExpression struct {
	Pos
	Operator token.Kind
	Left     Expr
	Right    Expr
}

func (n *AssignmentExpression) Children() []Node { return nodes(n.Left, n.Right) }
func (n *AssignmentExpression) exprNode()        {}

type TernaryExpression struct {
	Pos
	Condition   Expr
	Consequence Expr // nil for the Elvis `?:` shorthand
	Alternative Expr
}

func (n *TernaryExpression) Children() []Node {
	return nodes(n.Condition, optionalExpr(n.Consequence), n.Alternative)
}
func (n *TernaryExpression) exprNode() {}

// TypeCheckExpression covers `instanceof`, `is`, `as`, `into`.
type TypeCheckExpression struct {
	Pos
	Operator token.Kind
	Operand  Expr
	Type     TypeDefinition
}

func (n *TypeCheckExpression) Children() []Node { return nodes(n.Operand, n.Type) }
func (n *TypeCheckExpression) exprNode()        {}

// InExpression is the `in` array-membership operator.
type InExpression struct {
	Pos
	Left  Expr
	Right Expr
}

func (n *InExpression) Children() []Node { return nodes(n.Left, n.Right) }
func (n *InExpression) exprNode()        {}

// --- Postfix access chains ---

// IndexExpression is `e[idx]` (idx non-nil) or `e[]` array-push (idx nil).
type IndexExpression struct {
	Pos
	Target Expr
	Index  Expr
}

func (n *IndexExpression) Children() []Node { return nodes(n.Target, optionalExpr(n.Index)) }
func (n *IndexExpression) exprNode()        {}

// Argument is one call/attribute argument: positional, named (`name:
// value`), spread (`...value`), or a reverse-spread closure-creation
// placeholder element (`value...`).
type Argument struct {
	Pos
	Name          *Identifier // non-nil for named arguments
	Value         Expr
	Spread        bool
	ReverseSpread bool
}

func (a *Argument) Children() []Node { return nodes(optionalIdentifier(a.Name), a.Value) }

// ArgumentList is a parsed `(…)` call argument list. IsClosureCreation is
// true exactly when the whole list was the single placeholder `(...)`.
type ArgumentList struct {
	Pos
	Arguments         []*Argument
	IsClosureCreation bool
}

func (l *ArgumentList) Children() []Node {
	out := make([]Node, 0, len(l.Arguments))
	for _, a := range l.Arguments {
		out = append(out, a)
	}
	return out
}

type CallExpression struct {
	Pos
	Callee    Expr
	Generics  *TypeTemplateGroup
	Arguments *ArgumentList
}

func (n *CallExpression) Children() []Node {
	return nodes(n.Callee, optionalTemplateGroup(n.Generics), n.Arguments)
}
func (n *CallExpression) exprNode() {}

// PropertyAccessExpression is `->name`/`?->name` without a trailing call.
type PropertyAccessExpression struct {
	Pos
	Object    Expr
	Property  Expr // always an *Identifier holding the literal name; `->{expr}` is not parsed
	Nullsafe  bool
}

func (n *PropertyAccessExpression) Children() []Node { return nodes(n.Object, n.Property) }
func (n *PropertyAccessExpression) exprNode()        {}

// MethodCallExpression is `->name(…)`/`?->name(…)`, optionally with a
// use-site generic argument list before the call parens.
type MethodCallExpression struct {
	Pos
	Object    Expr
	Method    Expr
	Generics  *TypeTemplateGroup
	Arguments *ArgumentList
	Nullsafe  bool
}

func (n *MethodCallExpression) Children() []Node {
	return nodes(n.Object, n.Method, optionalTemplateGroup(n.Generics), n.Arguments)
}
func (n *MethodCallExpression) exprNode() {}

// StaticPropertyAccessExpression is `Class::$prop`.
type StaticPropertyAccessExpression struct {
	Pos
	Class    Expr
	Property *Variable
}

func (n *StaticPropertyAccessExpression) Children() []Node { return nodes(n.Class, n.Property) }
func (n *StaticPropertyAccessExpression) exprNode()        {}

// ClassConstantAccessExpression is `Class::NAME` or `Class::class`.
type ClassConstantAccessExpression struct {
	Pos
	Class Expr
	Name  *Identifier // value "class" for the magic ::class constant
}

func (n *ClassConstantAccessExpression) Children() []Node { return nodes(n.Class, n.Name) }
func (n *ClassConstantAccessExpression) exprNode()        {}

// StaticMethodCallExpression is `Class::method(…)` / `Class::method::<T>(…)`.
type StaticMethodCallExpression struct {
	Pos
	Class     Expr
	Method    *Identifier
	Generics  *TypeTemplateGroup
	Arguments *ArgumentList
}

func (n *StaticMethodCallExpression) Children() []Node {
	return nodes(n.Class, n.Method, optionalTemplateGroup(n.Generics), n.Arguments)
}
func (n *StaticMethodCallExpression) exprNode() {}

// --- Class/object operators ---

type NewExpression struct {
	Pos
	Class     Expr // nil when AnonymousClass is set
	Generics  *TypeTemplateGroup
	Arguments *ArgumentList
	Anonymous *AnonymousClassExpression
}

func (n *NewExpression) Children() []Node {
	var anon Node
	if n.Anonymous != nil {
		anon = n.Anonymous
	}
	return nodes(optionalExpr(n.Class), optionalTemplateGroup(n.Generics), optionalArgumentList(n.Arguments), anon)
}
func (n *NewExpression) exprNode() {}

type CloneExpression struct {
	Pos
	Operand Expr
}

func (n *CloneExpression) Children() []Node { return nodes(n.Operand) }
func (n *CloneExpression) exprNode()        {}

// AnonymousClassExpression is the `class(…) extends … implements … { … }`
// body following `new`.
type AnonymousClassExpression struct {
	Pos
	Arguments  *ArgumentList
	Extends    *Identifier
	Implements []*Identifier
	Members    []Member
	Attributes []*AttributeGroup
}

func (n *AnonymousClassExpression) Children() []Node {
	out := nodes(optionalArgumentList(n.Arguments), optionalIdentifier(n.Extends))
	for _, i := range n.Implements {
		out = append(out, i)
	}
	for _, m := range n.Members {
		out = append(out, m)
	}
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *AnonymousClassExpression) exprNode() {}

// --- Functions ---

type ArrowFunctionExpression struct {
	Pos
	Static     bool
	Parameters []*Parameter
	ReturnType TypeDefinition
	Body       Expr
	Attributes []*AttributeGroup
}

func (n *ArrowFunctionExpression) Children() []Node {
	out := make([]Node, 0, len(n.Parameters)+len(n.Attributes)+2)
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	out = append(out, n.Body)
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *ArrowFunctionExpression) exprNode() {}

// UseCapture is one `use(&$x, $y)` entry of an anonymous function.
type UseCapture struct {
	Pos
	Variable *Variable
	ByRef    bool
}

func (u *UseCapture) Children() []Node { return nodes(u.Variable) }

type AnonymousFunctionExpression struct {
	Pos
	Static     bool
	ByRef      bool
	Parameters []*Parameter
	Uses       []*UseCapture
	ReturnType TypeDefinition
	Body       *BlockStatement
	Attributes []*AttributeGroup
}

func (n *AnonymousFunctionExpression) Children() []Node {
	out := make([]Node, 0)
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	for _, u := range n.Uses {
		out = append(out, u)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	out = append(out, n.Body)
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *AnonymousFunctionExpression) exprNode() {}

// --- match ---

type MatchArm struct {
	Pos
	Conditions []Expr // empty for the `default` arm
	IsDefault  bool
	Body       Expr
}

func (a *MatchArm) Children() []Node {
	out := make([]Node, 0, len(a.Conditions)+1)
	for _, c := range a.Conditions {
		out = append(out, c)
	}
	out = append(out, a.Body)
	return out
}

type MatchExpression struct {
	Pos
	Subject Expr // nil for the no-argument `match { … }` form
	Arms    []*MatchArm
}

func (n *MatchExpression) Children() []Node {
	out := nodes(optionalExpr(n.Subject))
	for _, a := range n.Arms {
		out = append(out, a)
	}
	return out
}
func (n *MatchExpression) exprNode() {}

// --- async / generator / exception operator family ---

type ExitExpression struct {
	Pos
	Value Expr // nil for bare `exit`/`exit()`
}

func (n *ExitExpression) Children() []Node { return nodes(optionalExpr(n.Value)) }
func (n *ExitExpression) exprNode()        {}

type ThrowExpression struct {
	Pos
	Value Expr
}

func (n *ThrowExpression) Children() []Node { return nodes(n.Value) }
func (n *ThrowExpression) exprNode()        {}

type AsyncExpression struct {
	Pos
	Operand Expr
}

func (n *AsyncExpression) Children() []Node { return nodes(n.Operand) }
func (n *AsyncExpression) exprNode()        {}

type AwaitExpression struct {
	Pos
	Operand Expr
}

func (n *AwaitExpression) Children() []Node { return nodes(n.Operand) }
func (n *AwaitExpression) exprNode()        {}

// ConcurrentlyExpression is `concurrently { e, e, … }`.
type ConcurrentlyExpression struct {
	Pos
	Operands []Expr
}

func (n *ConcurrentlyExpression) Children() []Node {
	out := make([]Node, 0, len(n.Operands))
	for _, e := range n.Operands {
		out = append(out, e)
	}
	return out
}
func (n *ConcurrentlyExpression) exprNode() {}

type YieldExpression struct {
	Pos
	From  bool
	Key   Expr // nil unless `yield k => v`
	Value Expr // nil for bare `yield`
}

func (n *YieldExpression) Children() []Node {
	return nodes(optionalExpr(n.Key), optionalExpr(n.Value))
}
func (n *YieldExpression) exprNode() {}

type IssetExpression struct {
	Pos
	Arguments []Expr
}

func (n *IssetExpression) Children() []Node {
	out := make([]Node, 0, len(n.Arguments))
	for _, e := range n.Arguments {
		out = append(out, e)
	}
	return out
}
func (n *IssetExpression) exprNode() {}

type UnsetExpression struct {
	Pos
	Arguments []Expr
}

func (n *UnsetExpression) Children() []Node {
	out := make([]Node, 0, len(n.Arguments))
	for _, e := range n.Arguments {
		out = append(out, e)
	}
	return out
}
func (n *UnsetExpression) exprNode() {}
