package ast

import "github.com/ara-lang/ara-parser/pkg/token"

// PrimitiveKind enumerates the non-compound, keyword-shaped type atoms of
// spec.md §4.6.
type PrimitiveKind int

const (
	PrimitiveVoid PrimitiveKind = iota
	PrimitiveNever
	PrimitiveFloat
	PrimitiveBool
	PrimitiveInt
	PrimitiveString
	PrimitiveObject
	PrimitiveMixed
	PrimitiveNonNull
	PrimitiveResource
	PrimitiveNull
	PrimitiveTrue
	PrimitiveFalse
)

// PrimitiveType is one keyword-shaped atom (spec.md §4.6 `single`).
type PrimitiveType struct {
	Pos
	Kind PrimitiveKind
}

func (t *PrimitiveType) Children() []Node { return nil }
func (t *PrimitiveType) typeNode()        {}
func (t *PrimitiveType) IsStandalone() bool {
	switch t.Kind {
	case PrimitiveVoid, PrimitiveNever, PrimitiveMixed, PrimitiveNonNull, PrimitiveResource:
		return true
	}
	return false
}
func (t *PrimitiveType) IsScalar() bool {
	switch t.Kind {
	case PrimitiveInt, PrimitiveString, PrimitiveFloat, PrimitiveBool:
		return true
	}
	return false
}

// IsBottom reports whether this is one of the bottom types (void, never),
// which may not appear inside tuples or as a property type (spec.md §4.9).
func (t *PrimitiveType) IsBottom() bool {
	return t.Kind == PrimitiveVoid || t.Kind == PrimitiveNever
}

// LiteralType is a literal-shaped atom: an integer/float/string literal
// used directly as a type (spec.md §4.6).
type LiteralType struct {
	Pos
	Kind  token.Kind
	Value string
}

func (t *LiteralType) Children() []Node   { return nil }
func (t *LiteralType) typeNode()          {}
func (t *LiteralType) IsStandalone() bool { return false }
func (t *LiteralType) IsScalar() bool     { return false }

// NullableType is `?T`. T must not be standalone (spec.md §4.6).
type NullableType struct {
	Pos
	Type TypeDefinition
}

func (t *NullableType) Children() []Node   { return nodes(t.Type) }
func (t *NullableType) typeNode()          {}
func (t *NullableType) IsStandalone() bool { return true }
func (t *NullableType) IsScalar() bool     { return false }

// UnionType is `A|B|…`.
type UnionType struct {
	Pos
	Types []TypeDefinition
}

func (t *UnionType) Children() []Node {
	out := make([]Node, 0, len(t.Types))
	for _, e := range t.Types {
		out = append(out, e)
	}
	return out
}
func (t *UnionType) typeNode()          {}
func (t *UnionType) IsStandalone() bool { return false }
func (t *UnionType) IsScalar() bool     { return false }

// IntersectionType is `A&B&…`. No element may be standalone or scalar
// (spec.md §4.6).
type IntersectionType struct {
	Pos
	Types []TypeDefinition
}

func (t *IntersectionType) Children() []Node {
	out := make([]Node, 0, len(t.Types))
	for _, e := range t.Types {
		out = append(out, e)
	}
	return out
}
func (t *IntersectionType) typeNode()          {}
func (t *IntersectionType) IsStandalone() bool { return false }
func (t *IntersectionType) IsScalar() bool     { return false }

// TupleType is `(A, B, …)`, including the empty tuple `()`.
type TupleType struct {
	Pos
	Types []TypeDefinition
}

func (t *TupleType) Children() []Node {
	out := make([]Node, 0, len(t.Types))
	for _, e := range t.Types {
		out = append(out, e)
	}
	return out
}
func (t *TupleType) typeNode()          {}
func (t *TupleType) IsStandalone() bool { return false }
func (t *TupleType) IsScalar() bool     { return false }

// ParenthesizedType wraps a single union or intersection to form a DNF
// group, e.g. `(A&B)|C` (spec.md §4.6).
type ParenthesizedType struct {
	Pos
	Inner TypeDefinition
}

func (t *ParenthesizedType) Children() []Node   { return nodes(t.Inner) }
func (t *ParenthesizedType) typeNode()          {}
func (t *ParenthesizedType) IsStandalone() bool { return false }
func (t *ParenthesizedType) IsScalar() bool     { return false }

// VecType is `vec<T>`.
type VecType struct {
	Pos
	Templates *TypeTemplateGroup
}

func (t *VecType) Children() []Node   { return nodes(optionalTemplateGroup(t.Templates)) }
func (t *VecType) typeNode()          {}
func (t *VecType) IsStandalone() bool { return false }
func (t *VecType) IsScalar() bool     { return false }

// DictType is `dict<K, V>`.
type DictType struct {
	Pos
	Templates *TypeTemplateGroup
}

func (t *DictType) Children() []Node   { return nodes(optionalTemplateGroup(t.Templates)) }
func (t *DictType) typeNode()          {}
func (t *DictType) IsStandalone() bool { return false }
func (t *DictType) IsScalar() bool     { return false }

// IterableType is `iterable<…>`.
type IterableType struct {
	Pos
	Templates *TypeTemplateGroup
}

func (t *IterableType) Children() []Node   { return nodes(optionalTemplateGroup(t.Templates)) }
func (t *IterableType) typeNode()          {}
func (t *IterableType) IsStandalone() bool { return false }
func (t *IterableType) IsScalar() bool     { return false }

// IdentifierType is a class/interface/enum/template-parameter name used as
// a type, with an optional use-site generic argument list, e.g.
// `Closure<(T), bool>`, `self`, `static`, `parent`.
type IdentifierType struct {
	Pos
	Name      *Identifier
	Templates *TypeTemplateGroup
}

func (t *IdentifierType) Children() []Node {
	return nodes(t.Name, optionalTemplateGroup(t.Templates))
}
func (t *IdentifierType) typeNode()          {}
func (t *IdentifierType) IsStandalone() bool { return false }
func (t *IdentifierType) IsScalar() bool     { return false }

func optionalTemplateGroup(g *TypeTemplateGroup) Node {
	if g == nil {
		return nil
	}
	return g
}
