package ast

// Tree is the parsed result of one source unit: an ordered sequence of
// top-level definitions plus any accumulated non-fatal diagnostics
// (attached by the caller, not stored here).
type Tree struct {
	Pos
	Source      string
	Definitions []Definition
}

func (t *Tree) Children() []Node {
	out := make([]Node, 0, len(t.Definitions))
	for _, d := range t.Definitions {
		out = append(out, d)
	}
	return out
}

// Parameter is one entry of a function/method/closure parameter list.
type Parameter struct {
	Pos
	Name       *Variable
	Type       TypeDefinition
	Default    Expr
	ByRef      bool
	Variadic   bool
	Promote    []*Modifier // non-empty for constructor property promotion
	Attributes []*AttributeGroup
}

func (p *Parameter) Children() []Node {
	out := nodes(p.Name, optionalType(p.Type), optionalExpr(p.Default))
	for _, m := range p.Promote {
		out = append(out, m)
	}
	for _, a := range p.Attributes {
		out = append(out, a)
	}
	return out
}

// NamespaceDefinition is `namespace Name;` together with the definitions
// that follow it up to the next namespace or EOF. The braced
// `namespace Name { … }` form is not parsed.
type NamespaceDefinition struct {
	Pos
	Name        *Identifier // always set
	Definitions []Definition
}

func (n *NamespaceDefinition) Children() []Node {
	out := nodes(optionalIdentifier(n.Name))
	for _, d := range n.Definitions {
		out = append(out, d)
	}
	return out
}
func (n *NamespaceDefinition) definitionNode() {}

// UseKind distinguishes the three `use` import forms (spec.md §4.9).
type UseKind int

const (
	UseDefault UseKind = iota
	UseFunction
	UseConstant
)

// UseDefinition is a `use [function|const] Name [as Alias];` import.
type UseDefinition struct {
	Pos
	Kind  UseKind
	Name  *Identifier
	Alias *Identifier // nil when unaliased
}

func (n *UseDefinition) Children() []Node {
	return nodes(n.Name, optionalIdentifier(n.Alias))
}
func (n *UseDefinition) definitionNode() {}

// TypeAliasDefinition is `type Name[<Templates>] = T;`.
type TypeAliasDefinition struct {
	Pos
	Name      *Identifier
	Templates *TemplateGroup
	Type      TypeDefinition
}

func (n *TypeAliasDefinition) Children() []Node {
	out := []Node{n.Name}
	if n.Templates != nil {
		out = append(out, n.Templates)
	}
	return append(out, n.Type)
}
func (n *TypeAliasDefinition) definitionNode() {}

// ConstantDefinition is a top-level `const Name: T = value;`.
type ConstantDefinition struct {
	Pos
	Name  *Identifier
	Type  TypeDefinition
	Value Expr
}

func (n *ConstantDefinition) Children() []Node {
	return nodes(n.Name, optionalType(n.Type), n.Value)
}
func (n *ConstantDefinition) definitionNode() {}

// FunctionDefinition is a top-level `function name<…>(…): T { … }`.
type FunctionDefinition struct {
	Pos
	Name       *Identifier
	Templates  *TemplateGroup
	Parameters []*Parameter
	ReturnType TypeDefinition
	Where      []*WhereConstraint
	Body       *BlockStatement // nil for a signature-only declaration
	Attributes []*AttributeGroup
}

func (n *FunctionDefinition) Children() []Node {
	out := []Node{n.Name}
	if n.Templates != nil {
		out = append(out, n.Templates)
	}
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	for _, w := range n.Where {
		out = append(out, w)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *FunctionDefinition) definitionNode() {}

// InterfaceDefinition is `interface Name<…> extends A, B { … }`.
type InterfaceDefinition struct {
	Pos
	Name      *Identifier
	Templates *TemplateGroup
	Extends   []*IdentifierType
	Members   []Member
	Attributes []*AttributeGroup
}

func (n *InterfaceDefinition) Children() []Node {
	out := []Node{n.Name}
	if n.Templates != nil {
		out = append(out, n.Templates)
	}
	for _, e := range n.Extends {
		out = append(out, e)
	}
	for _, m := range n.Members {
		out = append(out, m)
	}
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *InterfaceDefinition) definitionNode() {}

// EnumCase is one `case Name;` (unit enum) or `case Name = value;` (backed
// enum) member. Cases that violate the unit/backed shape are diagnosed and
// dropped by the parser rather than reaching the tree (spec.md S4).
type EnumCase struct {
	Pos
	Name  *Identifier
	Value Expr // non-nil for a backed enum case
}

func (c *EnumCase) Children() []Node {
	out := []Node{c.Name}
	if c.Value != nil {
		out = append(out, c.Value)
	}
	return out
}
func (c *EnumCase) memberNode() {}

// EnumDefinition is `enum Name[: BackingType] implements … { … }`.
type EnumDefinition struct {
	Pos
	Name        *Identifier
	BackingType TypeDefinition // nil for a unit enum
	Implements  []*IdentifierType
	Members     []Member
	Attributes  []*AttributeGroup
}

func (n *EnumDefinition) Children() []Node {
	out := nodes(n.Name, optionalType(n.BackingType))
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
func (n *EnumDefinition) definitionNode() {}

// ClassDefinition is `[modifiers] class Name<…> extends X implements Y { … }`.
type ClassDefinition struct {
	Pos
	Modifiers  []*Modifier
	Name       *Identifier
	Templates  *TemplateGroup
	Extends    *IdentifierType
	Implements []*IdentifierType
	Members    []Member
	Attributes []*AttributeGroup
}

func (n *ClassDefinition) Children() []Node {
	out := make([]Node, 0)
	for _, m := range n.Modifiers {
		out = append(out, m)
	}
	out = append(out, n.Name)
	if n.Templates != nil {
		out = append(out, n.Templates)
	}
	if n.Extends != nil {
		out = append(out, n.Extends)
	}
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
func (n *ClassDefinition) definitionNode() {}

// ClassConstantMember is a `[modifiers] const Name: T = value;` class member.
type ClassConstantMember struct {
	Pos
	Modifiers  []*Modifier
	Name       *Identifier
	Type       TypeDefinition
	Value      Expr
	Attributes []*AttributeGroup
}

func (n *ClassConstantMember) Children() []Node {
	out := make([]Node, 0)
	for _, m := range n.Modifiers {
		out = append(out, m)
	}
	out = append(out, n.Name)
	if n.Type != nil {
		out = append(out, n.Type)
	}
	out = append(out, n.Value)
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *ClassConstantMember) memberNode() {}

// PropertyMember is a `[modifiers] $name: T [= default];` class property.
type PropertyMember struct {
	Pos
	Modifiers  []*Modifier
	Name       *Variable
	Type       TypeDefinition
	Default    Expr
	Attributes []*AttributeGroup
}

func (n *PropertyMember) Children() []Node {
	out := make([]Node, 0)
	for _, m := range n.Modifiers {
		out = append(out, m)
	}
	out = append(out, n.Name)
	if n.Type != nil {
		out = append(out, n.Type)
	}
	if n.Default != nil {
		out = append(out, n.Default)
	}
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *PropertyMember) memberNode() {}

// MethodMember is a `[modifiers] function name<…>(…): T { … }` class/
// interface member (Body nil for an interface signature or an abstract
// method).
type MethodMember struct {
	Pos
	Modifiers  []*Modifier
	Name       *Identifier
	Templates  *TemplateGroup
	Parameters []*Parameter
	ReturnType TypeDefinition
	Where      []*WhereConstraint
	Body       *BlockStatement
	Attributes []*AttributeGroup
}

func (n *MethodMember) Children() []Node {
	out := make([]Node, 0)
	for _, m := range n.Modifiers {
		out = append(out, m)
	}
	out = append(out, n.Name)
	if n.Templates != nil {
		out = append(out, n.Templates)
	}
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	if n.ReturnType != nil {
		out = append(out, n.ReturnType)
	}
	for _, w := range n.Where {
		out = append(out, w)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *MethodMember) memberNode() {}

// ConstructorMember is the special-cased `function __construct(…) { … }`,
// split from MethodMember because its parameters may carry promotion
// modifiers and it may never declare a return type.
type ConstructorMember struct {
	Pos
	Modifiers  []*Modifier
	Parameters []*Parameter
	Body       *BlockStatement
	Attributes []*AttributeGroup
}

func (n *ConstructorMember) Children() []Node {
	out := make([]Node, 0)
	for _, m := range n.Modifiers {
		out = append(out, m)
	}
	for _, p := range n.Parameters {
		out = append(out, p)
	}
	if n.Body != nil {
		out = append(out, n.Body)
	}
	for _, a := range n.Attributes {
		out = append(out, a)
	}
	return out
}
func (n *ConstructorMember) memberNode() {}
