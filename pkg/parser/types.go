package parser

import (
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// closeGeneric consumes one closing `>` of a generic/template group,
// reconciling the lexer's greedy `>>` token against two back-to-back
// closes (spec.md §4.6 "right-shift reconciliation", §9).
func (p *Parser) closeGeneric() bool {
	if p.curTokenIs(token.Gt) {
		p.nextToken()
		return true
	}
	if p.curTokenIs(token.ShiftRight) {
		if p.ignoredShiftAt == nil {
			tok := p.curToken
			p.ignoredShiftAt = &tok
			return true
		}
		p.ignoredShiftAt = nil
		p.nextToken()
		return true
	}
	p.record(diagnostic.Issue{
		Code:       diagnostic.PExpectedClosingGeneric,
		Message:    "expected '>' to close generic argument list",
		SourceName: p.sourceName,
		Start:      p.curToken.Span,
		End:        p.curToken.Span,
		Severity:   diagnostic.SeverityError,
	})
	return false
}

// finishUnit checks for a leftover ignored-shift slot at the end of
// parsing and converts it into the final expected-`>` diagnostic
// (spec.md §4.6, §7).
func (p *Parser) finishUnit() {
	if p.ignoredShiftAt != nil {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PExpectedClosingGeneric,
			Message:    "expected '>' to close generic argument list",
			SourceName: p.sourceName,
			Start:      p.ignoredShiftAt.Span,
			End:        p.ignoredShiftAt.Span,
			Severity:   diagnostic.SeverityError,
		})
		p.ignoredShiftAt = nil
	}
}

var primitiveKeywords = map[token.Kind]ast.PrimitiveKind{
	token.Void: ast.PrimitiveVoid, token.Never: ast.PrimitiveNever,
	token.Float: ast.PrimitiveFloat, token.Bool: ast.PrimitiveBool,
	token.Int: ast.PrimitiveInt, token.String: ast.PrimitiveString,
	token.Object: ast.PrimitiveObject, token.Mixed: ast.PrimitiveMixed,
	token.NonNull: ast.PrimitiveNonNull, token.Resource: ast.PrimitiveResource,
	token.Null: ast.PrimitiveNull, token.True: ast.PrimitiveTrue, token.False: ast.PrimitiveFalse,
}

// parseType is the entry point: an atomic type optionally followed by a
// trailing union/intersection chain (spec.md §4.6).
func (p *Parser) parseType() ast.TypeDefinition {
	return p.parseTypeWithin(false)
}

func (p *Parser) parseTypeWithin(withinDNF bool) ast.TypeDefinition {
	start := p.startPos()
	atom := p.parseAtomicType(withinDNF)

	if p.curTokenIs(token.Pipe) {
		return p.parseUnion(start, atom, withinDNF)
	}
	if p.curTokenIs(token.Ampersand) && !p.peekTokenIs(token.Ampersand) {
		return p.parseIntersection(start, atom, withinDNF)
	}
	return atom
}

func (p *Parser) parseUnion(start token.Span, head ast.TypeDefinition, withinDNF bool) ast.TypeDefinition {
	types := []ast.TypeDefinition{head}
	if head.IsStandalone() {
		p.standaloneInCompound(head, diagnostic.PStandaloneTypeInUnion)
	}
	for p.curTokenIs(token.Pipe) {
		p.nextToken()
		next := p.parseAtomicType(withinDNF)
		if next.IsStandalone() {
			p.standaloneInCompound(next, diagnostic.PStandaloneTypeInUnion)
		}
		if paren, ok := next.(*ast.ParenthesizedType); ok {
			if _, isInter := paren.Inner.(*ast.IntersectionType); isInter && withinDNF {
				p.dnfNesting(paren.Pos.Initial)
			}
		}
		types = append(types, next)
	}
	return &ast.UnionType{Pos: p.pos(start), Types: types}
}

func (p *Parser) parseIntersection(start token.Span, head ast.TypeDefinition, withinDNF bool) ast.TypeDefinition {
	types := []ast.TypeDefinition{head}
	p.standaloneOrScalarInIntersection(head)
	for p.curTokenIs(token.Ampersand) && !p.peekTokenIs(token.Ampersand) {
		p.nextToken()
		next := p.parseAtomicType(withinDNF)
		p.standaloneOrScalarInIntersection(next)
		if paren, ok := next.(*ast.ParenthesizedType); ok {
			if _, isUnion := paren.Inner.(*ast.UnionType); isUnion && withinDNF {
				p.dnfNesting(paren.Pos.Initial)
			}
		}
		types = append(types, next)
	}
	return &ast.IntersectionType{Pos: p.pos(start), Types: types}
}

func (p *Parser) standaloneInCompound(t ast.TypeDefinition, code diagnostic.Code) {
	p.record(diagnostic.Issue{
		Code:       code,
		Message:    "standalone type cannot appear inside a union",
		SourceName: p.sourceName,
		Start:      t.InitialPosition(),
		End:        t.FinalPosition(),
		Severity:   diagnostic.SeverityError,
	})
}

func (p *Parser) standaloneOrScalarInIntersection(t ast.TypeDefinition) {
	if !t.IsStandalone() && !t.IsScalar() {
		return
	}
	p.record(diagnostic.Issue{
		Code:       diagnostic.PScalarOrStandaloneTypeInIntersection,
		Message:    "standalone or scalar type cannot appear inside an intersection",
		SourceName: p.sourceName,
		Start:      t.InitialPosition(),
		End:        t.FinalPosition(),
		Severity:   diagnostic.SeverityError,
	})
}

func (p *Parser) dnfNesting(at token.Span) {
	p.record(diagnostic.Issue{
		Code:       diagnostic.PDnfNesting,
		Message:    "disjunctive-normal-form type nesting is limited to one level",
		SourceName: p.sourceName,
		Start:      at,
		End:        at,
		Severity:   diagnostic.SeverityError,
	})
}

// parseAtomicType dispatches on the current token (spec.md §4.6 `atomic`).
func (p *Parser) parseAtomicType(withinDNF bool) ast.TypeDefinition {
	start := p.startPos()

	switch p.curToken.Kind {
	case token.Question:
		p.nextToken()
		inner := p.parseAtomicType(withinDNF)
		if inner.IsStandalone() {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PNullableWrapsStandalone,
				Message:    "nullable cannot wrap a standalone type",
				SourceName: p.sourceName,
				Start:      start,
				End:        p.finishPos(),
				Severity:   diagnostic.SeverityError,
			})
		}
		return &ast.NullableType{Pos: p.pos(start), Type: inner}

	case token.LParen:
		return p.parseParenthesizedType(start, withinDNF)

	default:
		return p.parseSingleType(start)
	}
}

func (p *Parser) parseParenthesizedType(start token.Span, withinDNF bool) ast.TypeDefinition {
	p.nextToken() // consume '('

	if p.curTokenIs(token.RParen) {
		p.nextToken()
		return &ast.TupleType{Pos: p.pos(start), Types: nil}
	}

	first := p.parseTypeWithin(true)

	if p.curTokenIs(token.Comma) {
		types := []ast.TypeDefinition{first}
		if isBottom(first) {
			p.bottomInTuple(first)
		}
		for p.curTokenIs(token.Comma) {
			p.nextToken()
			if p.curTokenIs(token.RParen) {
				break
			}
			next := p.parseTypeWithin(true)
			if isBottom(next) {
				p.bottomInTuple(next)
			}
			types = append(types, next)
		}
		p.expectPeekOrCurrentRParen()
		return &ast.TupleType{Pos: p.pos(start), Types: types}
	}

	p.expectPeekOrCurrentRParen()

	switch first.(type) {
	case *ast.UnionType, *ast.IntersectionType:
		return &ast.ParenthesizedType{Pos: p.pos(start), Inner: first}
	default:
		return &ast.TupleType{Pos: p.pos(start), Types: []ast.TypeDefinition{first}}
	}
}

// expectPeekOrCurrentRParen consumes a current-position ')' (the type
// sub-parser leaves curToken sitting on the token after the last parsed
// atom, which for a closing paren is the ')' itself).
func (p *Parser) expectPeekOrCurrentRParen() {
	if p.curTokenIs(token.RParen) {
		p.nextToken()
		return
	}
	p.unexpectedCurrentToken(token.RParen)
}

func isBottom(t ast.TypeDefinition) bool {
	prim, ok := t.(*ast.PrimitiveType)
	return ok && prim.IsBottom()
}

func (p *Parser) bottomInTuple(t ast.TypeDefinition) {
	p.record(diagnostic.Issue{
		Code:       diagnostic.PBottomTypeInTuple,
		Message:    "void/never cannot appear inside a tuple type",
		SourceName: p.sourceName,
		Start:      t.InitialPosition(),
		End:        t.FinalPosition(),
		Severity:   diagnostic.SeverityError,
	})
}

// parseSingleType handles every non-compound atom: primitives, vec/dict/
// iterable, literal-shaped atoms, and identifier-with-templates
// (spec.md §4.6 `single`).
func (p *Parser) parseSingleType(start token.Span) ast.TypeDefinition {
	switch p.curToken.Kind {
	case token.Vec:
		p.nextToken()
		templates := p.parseTypeTemplateGroup(true)
		return &ast.VecType{Pos: p.pos(start), Templates: templates}
	case token.Dict:
		p.nextToken()
		templates := p.parseTypeTemplateGroup(true)
		return &ast.DictType{Pos: p.pos(start), Templates: templates}
	case token.Iterable:
		p.nextToken()
		templates := p.parseTypeTemplateGroup(true)
		return &ast.IterableType{Pos: p.pos(start), Templates: templates}

	case token.LiteralInteger, token.LiteralFloat, token.LiteralString:
		kind, value := p.curToken.Kind, p.curToken.Value
		p.nextToken()
		return &ast.LiteralType{Pos: p.pos(start), Kind: kind, Value: value}

	case token.Self, token.Static, token.Parent:
		name := p.reservedAsIdentifier()
		templates := p.parseTypeTemplateGroup(false)
		return &ast.IdentifierType{Pos: p.pos(start), Name: name, Templates: templates}
	}

	if prim, ok := primitiveKeywords[p.curToken.Kind]; ok {
		p.nextToken()
		return &ast.PrimitiveType{Pos: p.pos(start), Kind: prim}
	}

	name := p.identifierAllowingReserved(classnameAllowed, diagnostic.PReservedKeywordForTypeName)
	templates := p.parseTypeTemplateGroup(false)
	return &ast.IdentifierType{Pos: p.pos(start), Name: name, Templates: templates}
}

// parseTypeTemplateGroup parses an optional (or, when mandatory is true,
// required) `<T, …>` use-site generic argument list.
func (p *Parser) parseTypeTemplateGroup(mandatory bool) *ast.TypeTemplateGroup {
	if !p.curTokenIs(token.Lt) {
		if mandatory {
			p.unexpectedCurrentToken(token.Lt)
		}
		return nil
	}
	start := p.startPos()
	p.nextToken()

	if p.curTokenIs(token.Gt) || p.curTokenIs(token.ShiftRight) {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PEmptyTemplateGroup,
			Message:    "generic argument list cannot be empty",
			SourceName: p.sourceName,
			Start:      start,
			End:        p.curToken.Span,
			Severity:   diagnostic.SeverityError,
		})
		p.closeGeneric()
		return &ast.TypeTemplateGroup{Pos: p.pos(start)}
	}

	types := []ast.TypeDefinition{p.parseType()}
	for p.curTokenIs(token.Comma) {
		p.nextToken()
		if p.curTokenIs(token.Gt) || p.curTokenIs(token.ShiftRight) {
			break
		}
		types = append(types, p.parseType())
	}
	p.closeGeneric()
	return &ast.TypeTemplateGroup{Pos: p.pos(start), Types: types}
}

// parseTemplateGroup parses a declaration-site `<[in|out] T [: C], …>`
// generic parameter list.
func (p *Parser) parseTemplateGroup() *ast.TemplateGroup {
	if !p.curTokenIs(token.Lt) {
		return nil
	}
	start := p.startPos()
	p.nextToken()

	var params []*ast.TemplateParameter
	for !p.curTokenIs(token.Gt) && !p.curTokenIs(token.ShiftRight) && !p.curTokenIs(token.Eof) {
		params = append(params, p.parseTemplateParameter())
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	p.closeGeneric()
	return &ast.TemplateGroup{Pos: p.pos(start), Parameters: params}
}

func (p *Parser) parseTemplateParameter() *ast.TemplateParameter {
	start := p.startPos()
	variance := ast.VarianceInvariant
	if p.curTokenIs(token.In) {
		variance = ast.VarianceContravariant
		p.nextToken()
	} else if p.peekIsOutVariance() {
		variance = ast.VarianceCovariant
		p.nextToken()
	}
	name := p.identifierMaybeSoftReserved()

	var constraint ast.TypeDefinition
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		constraint = p.parseType()
	}
	return &ast.TemplateParameter{Pos: p.pos(start), Name: name, Variance: variance, Constraint: constraint}
}

// peekIsOutVariance recognizes the contextual `out` variance marker,
// which the lexer tokenizes as a plain Identifier (it is not a reserved
// word), so it must be checked by lexeme value.
func (p *Parser) peekIsOutVariance() bool {
	return p.curToken.Kind == token.Identifier && p.curToken.Value == "out"
}

// parseWhereConstraints parses the trailing `where Name is T, …` clause
// attached to a method/function signature.
func (p *Parser) parseWhereConstraints() []*ast.WhereConstraint {
	if !p.curTokenIs(token.Where) {
		return nil
	}
	p.nextToken()

	var constraints []*ast.WhereConstraint
	for {
		start := p.startPos()
		name := p.identifierMaybeSoftReserved()
		if p.curTokenIs(token.Is) {
			p.nextToken()
		} else {
			p.unexpectedCurrentToken(token.Is)
		}
		types := []ast.TypeDefinition{p.parseType()}
		for p.curTokenIs(token.Pipe) {
			p.nextToken()
			types = append(types, p.parseType())
		}
		constraints = append(constraints, &ast.WhereConstraint{Pos: p.pos(start), Name: name, Types: types})
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	return constraints
}
