package parser

import (
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// classnameAllowed is the explicit allow-list of reserved words
// classnameIdentifier accepts without a diagnostic (spec.md §4.5).
var classnameAllowed = map[token.Kind]bool{
	token.Enum: true, token.From: true, token.Where: true, token.Type: true,
	token.In: true, token.Into: true, token.Using: true, token.Dict: true,
	token.Vec: true, token.Async: true, token.Await: true, token.Concurrently: true,
}

func (p *Parser) isIdentifierKind(k token.Kind) bool {
	switch k {
	case token.Identifier, token.QualifiedIdentifier, token.FullyQualifiedIdentifier:
		return true
	}
	return false
}

// identifier consumes a plain/qualified/fully-qualified identifier token
// verbatim with no reserved-word allowance.
func (p *Parser) identifier() *ast.Identifier {
	if !p.isIdentifierKind(p.curToken.Kind) {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PUnexpectedToken,
			Message:    "expected an identifier, found " + p.curToken.Kind.String(),
			SourceName: p.sourceName,
			Start:      p.curToken.Span,
			End:        p.curToken.Span,
			Severity:   diagnostic.SeverityError,
		})
		id := &ast.Identifier{Pos: p.pos(p.startPos()), Value: p.curToken.Value}
		return id
	}
	start := p.startPos()
	value := p.curToken.Value
	id := &ast.Identifier{Value: value}
	id.Pos = ast.Pos{Initial: start, Final: p.curToken.Span}
	p.nextToken()
	return id
}

// identifierAllowingReserved accepts a plain identifier, any keyword in
// allowed without diagnostic, or any other reserved keyword with a
// diagnostic of kind code (spec.md §4.5's layered policies).
func (p *Parser) identifierAllowingReserved(allowed map[token.Kind]bool, code diagnostic.Code) *ast.Identifier {
	k := p.curToken.Kind
	if p.isIdentifierKind(k) {
		return p.identifier()
	}
	if allowed[k] {
		return p.reservedAsIdentifier()
	}
	if token.IsReservedIdentifier(k) {
		p.record(diagnostic.Issue{
			Code:       code,
			Message:    "reserved keyword " + k.String() + " cannot be used here",
			SourceName: p.sourceName,
			Start:      p.curToken.Span,
			End:        p.curToken.Span,
			Severity:   diagnostic.SeverityWarning,
		})
		return p.reservedAsIdentifier()
	}
	return p.identifier()
}

func (p *Parser) reservedAsIdentifier() *ast.Identifier {
	start := p.startPos()
	value := p.curToken.Value
	id := &ast.Identifier{Value: value}
	id.Pos = ast.Pos{Initial: start, Final: p.curToken.Span}
	p.nextToken()
	return id
}

// namespaceIdentifier: plain/qualified identifier, or a reserved keyword
// with a diagnostic (spec.md §4.5).
func (p *Parser) namespaceIdentifier() *ast.Identifier {
	return p.identifierAllowingReserved(nil, diagnostic.PReservedKeywordForTypeName)
}

// classnameIdentifier: plain identifier; the allow-listed soft-reserved
// keywords silently; any other reserved keyword with a diagnostic.
func (p *Parser) classnameIdentifier() *ast.Identifier {
	return p.identifierAllowingReserved(classnameAllowed, diagnostic.PReservedKeywordForTypeName)
}

// constantIdentifier: plain identifier; `class` with a diagnostic; any
// other reserved keyword silently (spec.md §4.5).
func (p *Parser) constantIdentifier() *ast.Identifier {
	if p.curToken.Kind == token.Class {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PReservedKeywordForConstantName,
			Message:    "reserved keyword class cannot be used as a constant name",
			SourceName: p.sourceName,
			Start:      p.curToken.Span,
			End:        p.curToken.Span,
			Severity:   diagnostic.SeverityWarning,
		})
		return p.reservedAsIdentifier()
	}
	if p.isIdentifierKind(p.curToken.Kind) {
		return p.identifier()
	}
	if token.IsReservedIdentifier(p.curToken.Kind) {
		return p.reservedAsIdentifier()
	}
	return p.identifier()
}

// identifierMaybeReserved accepts any identifier or any reserved keyword
// silently, used where the grammar disambiguates by position rather than
// by spelling (e.g. a call target).
func (p *Parser) identifierMaybeReserved() *ast.Identifier {
	if p.isIdentifierKind(p.curToken.Kind) || token.IsReservedIdentifier(p.curToken.Kind) {
		return p.reservedAsIdentifier()
	}
	return p.identifier()
}

// identifierMaybeSoftReserved accepts a plain identifier or a
// soft-reserved keyword silently; any other reserved keyword falls back
// to identifier()'s diagnostic path.
func (p *Parser) identifierMaybeSoftReserved() *ast.Identifier {
	if p.isIdentifierKind(p.curToken.Kind) || token.IsSoftReservedIdentifier(p.curToken.Kind) {
		return p.reservedAsIdentifier()
	}
	return p.identifier()
}
