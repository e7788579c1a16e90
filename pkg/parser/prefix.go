package parser

import (
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

var magicConstants = map[token.Kind]ast.MagicConstantKind{
	token.DirConst: ast.MagicDir, token.FileConst: ast.MagicFile, token.LineConst: ast.MagicLine,
	token.FunctionConst: ast.MagicFunction, token.ClassConst: ast.MagicClass,
	token.MethodConst: ast.MagicMethod, token.NamespaceConst: ast.MagicNamespace,
}

// parsePrefix selects the left-hand form for the Pratt loop in
// parseExpression: a prefix dispatcher covering every leaf/unary/
// block-shaped expression form (spec.md §4.7 "Prefix forms").
func (p *Parser) parsePrefix() ast.Expr {
	start := p.startPos()

	switch p.curToken.Kind {
	case token.AttributeStart:
		var attrs []*ast.AttributeGroup
		for p.curTokenIs(token.AttributeStart) {
			attrs = append(attrs, p.parseAttributeGroup())
		}
		switch p.curToken.Kind {
		case token.Function, token.Fn:
			return p.parseFunctionLiteral(start, false, attrs)
		case token.Static:
			if p.peekTokenIs(token.Function) || p.peekTokenIs(token.Fn) {
				p.nextToken()
				return p.parseFunctionLiteral(start, true, attrs)
			}
		}
		p.record(diagnostic.Issue{
			Code:       diagnostic.PMissingExpressionAfterAttributes,
			Message:    "expected a function or fn expression after attributes",
			SourceName: p.sourceName,
			Start:      start,
			End:        p.curToken.Span,
			Severity:   diagnostic.SeverityError,
		})
		return &ast.NullLiteral{Pos: p.pos(start)}

	case token.Static:
		if p.peekTokenIs(token.Function) || p.peekTokenIs(token.Fn) {
			p.nextToken()
			return p.parseFunctionLiteral(start, true, nil)
		}
		return p.reservedAsIdentifier()

	case token.Function, token.Fn:
		return p.parseFunctionLiteral(start, false, nil)

	case token.Exit:
		p.nextToken()
		var value ast.Expr
		if p.curTokenIs(token.LParen) {
			p.nextToken()
			if !p.curTokenIs(token.RParen) {
				value = p.parseExpr()
			}
			if !p.curTokenIs(token.RParen) {
				p.unexpectedCurrentToken(token.RParen)
			} else {
				p.nextToken()
			}
		}
		return &ast.ExitExpression{Pos: p.pos(start), Value: value}

	case token.Isset:
		return p.parseIssetOrUnset(start, true)
	case token.Unset:
		return p.parseIssetOrUnset(start, false)

	case token.New:
		return p.parseNewExpression(start)

	case token.Throw:
		p.nextToken()
		value := p.parseExpr()
		return &ast.ThrowExpression{Pos: p.pos(start), Value: value}

	case token.Async:
		p.nextToken()
		operand := p.parseExpression(Prefix)
		return &ast.AsyncExpression{Pos: p.pos(start), Operand: operand}

	case token.Await:
		p.nextToken()
		operand := p.parseExpression(Prefix)
		return &ast.AwaitExpression{Pos: p.pos(start), Operand: operand}

	case token.Concurrently:
		return p.parseConcurrentlyExpression(start)

	case token.Yield:
		return p.parseYieldExpression(start)

	case token.Clone:
		p.nextToken()
		operand := p.parseExpression(Clone)
		return &ast.CloneExpression{Pos: p.pos(start), Operand: operand}

	case token.True:
		p.nextToken()
		return &ast.BoolLiteral{Pos: p.pos(start), Value: true}
	case token.False:
		p.nextToken()
		return &ast.BoolLiteral{Pos: p.pos(start), Value: false}
	case token.Null:
		p.nextToken()
		return &ast.NullLiteral{Pos: p.pos(start)}

	case token.LiteralInteger:
		value := p.curToken.Value
		p.nextToken()
		return &ast.IntegerLiteral{Pos: p.pos(start), Value: value}
	case token.LiteralFloat:
		value := p.curToken.Value
		p.nextToken()
		return &ast.FloatLiteral{Pos: p.pos(start), Value: value}
	case token.LiteralString:
		value := p.curToken.Value
		p.nextToken()
		return &ast.StringLiteral{Pos: p.pos(start), Value: value}

	case token.Dict:
		if p.peekTokenIs(token.LBracket) {
			p.nextToken()
			return p.parseDictLiteral(start)
		}
		return p.reservedAsIdentifier()
	case token.Vec:
		if p.peekTokenIs(token.LBracket) {
			p.nextToken()
			return p.parseVecLiteral(start)
		}
		return p.reservedAsIdentifier()

	case token.List:
		if p.peekTokenIs(token.LParen) {
			p.nextToken()
			return p.parseListPattern(start)
		}
		return p.reservedAsIdentifier()

	case token.Match:
		return p.parseMatchExpression(start)

	case token.Minus, token.Plus, token.Inc, token.Dec, token.Tilde:
		op := p.curToken.Kind
		p.nextToken()
		operand := p.parseExpression(Prefix)
		return &ast.PrefixExpression{Pos: p.pos(start), Operator: op, Operand: operand}

	case token.Bang:
		p.nextToken()
		operand := p.parseExpression(Bang)
		return &ast.PrefixExpression{Pos: p.pos(start), Operator: token.Bang, Operand: operand}

	case token.LParen:
		return p.parseParenthesizedOrTupleExpression(start)

	case token.Variable:
		return p.parseVariable()

	case token.Self, token.Parent:
		return p.reservedAsIdentifier()
	}

	if kind, ok := magicConstants[p.curToken.Kind]; ok {
		p.nextToken()
		return &ast.MagicConstant{Pos: p.pos(start), Kind: kind}
	}

	if p.isIdentifierKind(p.curToken.Kind) {
		return p.identifier()
	}
	if token.IsReservedIdentifier(p.curToken.Kind) {
		return p.reservedAsIdentifier()
	}

	p.unexpectedCurrentToken()
	if !p.curTokenIs(token.Eof) {
		p.nextToken()
	}
	return &ast.NullLiteral{Pos: p.pos(start)}
}

func (p *Parser) parseVariable() *ast.Variable {
	start := p.startPos()
	name := p.curToken.Value
	p.nextToken()
	return &ast.Variable{Pos: p.pos(start), Name: name}
}

// parseParenthesizedOrTupleExpression handles `(e)` (parenthesized) and
// `(e, …)` (tuple); like the type parser's equivalent, an empty `()`
// yields an empty tuple (spec.md §4.7).
func (p *Parser) parseParenthesizedOrTupleExpression(start token.Span) ast.Expr {
	p.nextToken() // consume '('

	if p.curTokenIs(token.RParen) {
		p.nextToken()
		return &ast.TupleExpression{Pos: p.pos(start)}
	}

	first := p.parseExpr()
	if p.curTokenIs(token.Comma) {
		elems := []ast.Expr{first}
		for p.curTokenIs(token.Comma) {
			p.nextToken()
			if p.curTokenIs(token.RParen) {
				break
			}
			elems = append(elems, p.parseExpr())
		}
		if !p.curTokenIs(token.RParen) {
			p.unexpectedCurrentToken(token.RParen)
		} else {
			p.nextToken()
		}
		return &ast.TupleExpression{Pos: p.pos(start), Elements: elems}
	}

	if !p.curTokenIs(token.RParen) {
		p.unexpectedCurrentToken(token.RParen)
	} else {
		p.nextToken()
	}
	return &ast.ParenthesizedExpression{Pos: p.pos(start), Inner: first}
}

// parseDictEntries parses a `[elem, elem, …]` element list shared by
// `dict[…]`/`vec[…]`/`list(…)` (SPEC_FULL.md supplemented feature 1),
// supporting an explicit empty form and a trailing comma.
func (p *Parser) parseDictEntries(closer token.Kind, vecStyleAllowed bool) []*ast.DictEntry {
	var entries []*ast.DictEntry
	for !p.curTokenIs(closer) && !p.curTokenIs(token.Eof) {
		entries = append(entries, p.parseDictEntry(vecStyleAllowed))
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	return entries
}

func (p *Parser) parseDictEntry(vecStyleAllowed bool) *ast.DictEntry {
	start := p.startPos()
	first := p.parseExpression(Assignment)
	if p.curTokenIs(token.DoubleArrow) {
		p.nextToken()
		value := p.parseExpression(Assignment)
		return &ast.DictEntry{Pos: p.pos(start), Key: first, Value: value}
	}
	_ = vecStyleAllowed
	return &ast.DictEntry{Pos: p.pos(start), Value: first}
}

func (p *Parser) parseVecLiteral(start token.Span) ast.Expr {
	p.nextToken() // consume '['
	entries := p.parseDictEntries(token.RBracket, true)
	if !p.curTokenIs(token.RBracket) {
		p.unexpectedCurrentToken(token.RBracket)
	} else {
		p.nextToken()
	}
	return &ast.VecExpression{Pos: p.pos(start), Elements: entries}
}

func (p *Parser) parseDictLiteral(start token.Span) ast.Expr {
	p.nextToken() // consume '['
	entries := p.parseDictEntries(token.RBracket, false)
	if !p.curTokenIs(token.RBracket) {
		p.unexpectedCurrentToken(token.RBracket)
	} else {
		p.nextToken()
	}
	return &ast.DictExpression{Pos: p.pos(start), Elements: entries}
}

// parseListPattern parses the `list(...)` destructuring pattern
// (SPEC_FULL.md supplemented feature 2). Its position is not checked: it
// is accepted wherever an expression may start, not only on the left side
// of an assignment.
func (p *Parser) parseListPattern(start token.Span) ast.Expr {
	p.nextToken() // consume '('
	entries := p.parseDictEntries(token.RParen, true)
	if !p.curTokenIs(token.RParen) {
		p.unexpectedCurrentToken(token.RParen)
	} else {
		p.nextToken()
	}
	return &ast.ListPatternExpression{Pos: p.pos(start), Elements: entries}
}

func (p *Parser) parseIssetOrUnset(start token.Span, isset bool) ast.Expr {
	p.nextToken()
	var args []ast.Expr
	if p.curTokenIs(token.LParen) {
		p.nextToken()
		for !p.curTokenIs(token.RParen) && !p.curTokenIs(token.Eof) {
			args = append(args, p.parseExpression(Assignment))
			if p.curTokenIs(token.Comma) {
				p.nextToken()
				continue
			}
			break
		}
		if !p.curTokenIs(token.RParen) {
			p.unexpectedCurrentToken(token.RParen)
		} else {
			p.nextToken()
		}
	} else {
		args = append(args, p.parseExpression(Prefix))
	}
	if isset {
		return &ast.IssetExpression{Pos: p.pos(start), Arguments: args}
	}
	return &ast.UnsetExpression{Pos: p.pos(start), Arguments: args}
}

func (p *Parser) parseConcurrentlyExpression(start token.Span) ast.Expr {
	p.nextToken() // consume 'concurrently'
	if !p.curTokenIs(token.LBrace) {
		p.unexpectedCurrentToken(token.LBrace)
		return &ast.ConcurrentlyExpression{Pos: p.pos(start)}
	}
	p.nextToken()
	var ops []ast.Expr
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.Eof) {
		ops = append(ops, p.parseExpression(Assignment))
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.curTokenIs(token.RBrace) {
		p.unexpectedCurrentToken(token.RBrace)
	} else {
		p.nextToken()
	}
	return &ast.ConcurrentlyExpression{Pos: p.pos(start), Operands: ops}
}

func (p *Parser) parseYieldExpression(start token.Span) ast.Expr {
	p.nextToken() // consume 'yield'

	if p.curTokenIs(token.From) {
		p.nextToken()
		value := p.parseExpression(YieldFrom)
		return &ast.YieldExpression{Pos: p.pos(start), From: true, Value: value}
	}

	if p.curTokenIs(token.Semicolon) || p.curTokenIs(token.RParen) || p.curTokenIs(token.RBracket) ||
		p.curTokenIs(token.RBrace) || p.curTokenIs(token.Comma) || p.curTokenIs(token.Eof) {
		return &ast.YieldExpression{Pos: p.pos(start)}
	}

	first := p.parseExpression(Yield)
	if p.curTokenIs(token.DoubleArrow) {
		p.nextToken()
		value := p.parseExpression(Yield)
		return &ast.YieldExpression{Pos: p.pos(start), Key: first, Value: value}
	}
	return &ast.YieldExpression{Pos: p.pos(start), Value: first}
}

func (p *Parser) parseNewExpression(start token.Span) ast.Expr {
	p.nextToken() // consume 'new'

	if p.curTokenIs(token.Class) || p.curTokenIs(token.AttributeStart) {
		anon := p.parseAnonymousClass()
		return &ast.NewExpression{Pos: p.pos(start), Anonymous: anon}
	}

	class := p.parseNewTarget()

	var generics *ast.TypeTemplateGroup
	if p.curTokenIs(token.GenericStart) {
		generics = p.parseUseSiteGenericGroup()
	}

	var args *ast.ArgumentList
	if p.curTokenIs(token.LParen) {
		if p.isClosureCreationPlaceholder() {
			args = p.parseClosureCreationPlaceholder()
		} else {
			args = p.parseArgumentList()
		}
	}
	return &ast.NewExpression{Pos: p.pos(start), Class: class, Generics: generics, Arguments: args}
}

func (p *Parser) parseNewTarget() ast.Expr {
	switch p.curToken.Kind {
	case token.Variable:
		return p.parseVariable()
	case token.Self, token.Parent, token.Static:
		return p.reservedAsIdentifier()
	default:
		return p.classnameIdentifier()
	}
}

// parseAnonymousClass parses the `class(…) extends … implements … { … }`
// body following `new`, with an optional leading attribute-group run
// (spec.md §4.7).
func (p *Parser) parseAnonymousClass() *ast.AnonymousClassExpression {
	start := p.startPos()
	var attrs []*ast.AttributeGroup
	for p.curTokenIs(token.AttributeStart) {
		attrs = append(attrs, p.parseAttributeGroup())
	}

	if !p.curTokenIs(token.Class) {
		p.unexpectedCurrentToken(token.Class)
	} else {
		p.nextToken()
	}

	var args *ast.ArgumentList
	if p.curTokenIs(token.LParen) {
		args = p.parseArgumentList()
	}

	var extends *ast.Identifier
	if p.curTokenIs(token.Extends) {
		p.nextToken()
		extends = p.classnameIdentifier()
	}

	var implements []*ast.Identifier
	if p.curTokenIs(token.Implements) {
		p.nextToken()
		implements = append(implements, p.classnameIdentifier())
		for p.curTokenIs(token.Comma) {
			p.nextToken()
			implements = append(implements, p.classnameIdentifier())
		}
	}

	members := p.parseMemberBody(roleClass, false)
	return &ast.AnonymousClassExpression{
		Pos: p.pos(start), Arguments: args, Extends: extends,
		Implements: implements, Members: members, Attributes: attrs,
	}
}

func (p *Parser) parseMatchExpression(start token.Span) ast.Expr {
	p.nextToken() // consume 'match'

	var subject ast.Expr
	if !p.curTokenIs(token.LBrace) {
		subject = p.parseExpr()
	}

	if !p.curTokenIs(token.LBrace) {
		p.unexpectedCurrentToken(token.LBrace)
		return &ast.MatchExpression{Pos: p.pos(start), Subject: subject}
	}
	p.nextToken()

	var arms []*ast.MatchArm
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.Eof) {
		arms = append(arms, p.parseMatchArm())
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.curTokenIs(token.RBrace) {
		p.unexpectedCurrentToken(token.RBrace)
	} else {
		p.nextToken()
	}
	return &ast.MatchExpression{Pos: p.pos(start), Subject: subject, Arms: arms}
}

func (p *Parser) parseMatchArm() *ast.MatchArm {
	start := p.startPos()

	if p.curTokenIs(token.Default) {
		p.nextToken()
		if !p.expectPeekLikeColonArrow() {
			p.unexpectedCurrentToken(token.DoubleArrow)
		}
		body := p.parseExpression(Assignment)
		return &ast.MatchArm{Pos: p.pos(start), IsDefault: true, Body: body}
	}

	conds := []ast.Expr{p.parseExpression(Assignment)}
	for p.curTokenIs(token.Comma) && !p.peekTokenIs(token.DoubleArrow) {
		p.nextToken()
		conds = append(conds, p.parseExpression(Assignment))
	}
	if !p.expectPeekLikeColonArrow() {
		p.unexpectedCurrentToken(token.DoubleArrow)
	}
	body := p.parseExpression(Assignment)
	return &ast.MatchArm{Pos: p.pos(start), Conditions: conds, Body: body}
}

// expectPeekLikeColonArrow consumes the `=>` that separates a match arm's
// conditions (or `default`) from its body.
func (p *Parser) expectPeekLikeColonArrow() bool {
	if p.curTokenIs(token.DoubleArrow) {
		p.nextToken()
		return true
	}
	return false
}

// parseFunctionLiteral parses `[static] function(…) [use(…)] [: T] { … }` or
// `[static] fn(…): T => expr`, dispatching on which keyword introduced it.
func (p *Parser) parseFunctionLiteral(start token.Span, static bool, attrs []*ast.AttributeGroup) ast.Expr {
	isArrow := p.curTokenIs(token.Fn)
	byRef := false
	p.nextToken() // consume 'function'/'fn'
	if p.curTokenIs(token.Ampersand) {
		byRef = true
		p.nextToken()
	}

	params := p.parseParameterList()

	var uses []*ast.UseCapture
	if !isArrow && p.curTokenIs(token.Use) {
		uses = p.parseUseCaptureList()
	}

	var retType ast.TypeDefinition
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		retType = p.parseType()
	}

	if isArrow {
		if !p.curTokenIs(token.DoubleArrow) {
			p.unexpectedCurrentToken(token.DoubleArrow)
		} else {
			p.nextToken()
		}
		body := p.parseExpression(Assignment)
		return &ast.ArrowFunctionExpression{
			Pos: p.pos(start), Static: static, Parameters: params,
			ReturnType: retType, Body: body, Attributes: attrs,
		}
	}

	body := p.parseBlockStatement()
	return &ast.AnonymousFunctionExpression{
		Pos: p.pos(start), Static: static, ByRef: byRef, Parameters: params,
		Uses: uses, ReturnType: retType, Body: body, Attributes: attrs,
	}
}

// parseUseCaptureList parses the `use (&$x, $y)` capture list of an
// anonymous function.
func (p *Parser) parseUseCaptureList() []*ast.UseCapture {
	p.nextToken() // consume 'use'
	if !p.curTokenIs(token.LParen) {
		p.unexpectedCurrentToken(token.LParen)
		return nil
	}
	p.nextToken()

	var uses []*ast.UseCapture
	for !p.curTokenIs(token.RParen) && !p.curTokenIs(token.Eof) {
		start := p.startPos()
		byRef := false
		if p.curTokenIs(token.Ampersand) {
			byRef = true
			p.nextToken()
		}
		v := p.parseVariable()
		uses = append(uses, &ast.UseCapture{Pos: p.pos(start), Variable: v, ByRef: byRef})
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.curTokenIs(token.RParen) {
		p.unexpectedCurrentToken(token.RParen)
	} else {
		p.nextToken()
	}
	return uses
}
