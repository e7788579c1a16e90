package parser

import (
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// Precedence mirrors original_source's Precedence enum exactly (low to
// high binding power); spec.md §4.7 reproduces the same ladder.
type Precedence int

const (
	Lowest Precedence = iota
	Range
	Yield
	YieldFrom
	IncDec
	Assignment
	Ternary
	NullCoalesce
	Or
	And
	BitwiseOr
	BitwiseXor
	BitwiseAnd
	Equality
	LtGt
	Concat
	BitShift
	AddSub
	MulDivMod
	Bang
	TypeCheck
	ArrayContains
	Prefix
	Pow
	Clone
	CallDim
	ObjectAccess
	New
)

// Associativity is a per-precedence property, not per-operator
// (spec.md §9).
type Associativity int

const (
	AssocNone Associativity = iota
	AssocLeft
	AssocRight
	AssocNon
)

func (pr Precedence) associativity() Associativity {
	switch pr {
	case TypeCheck, ArrayContains, MulDivMod, AddSub, BitShift, Concat,
		BitwiseAnd, BitwiseOr, BitwiseXor, And, Or:
		return AssocLeft
	case Pow, NullCoalesce, Assignment:
		return AssocRight
	case Ternary, Equality, LtGt:
		return AssocNon
	default:
		return AssocNone
	}
}

var infixPrecedences = map[token.Kind]Precedence{
	token.Pow:              Pow,
	token.Instanceof:       TypeCheck,
	token.Is:               TypeCheck,
	token.As:               TypeCheck,
	token.Into:             TypeCheck,
	token.In:               ArrayContains,
	token.Asterisk:         MulDivMod,
	token.Slash:            MulDivMod,
	token.Percent:          MulDivMod,
	token.Plus:             AddSub,
	token.Minus:            AddSub,
	token.ShiftLeft:        BitShift,
	token.ShiftRight:       BitShift,
	token.Dot:              Concat,
	token.Lt:               LtGt,
	token.Le:               LtGt,
	token.Gt:               LtGt,
	token.Ge:               LtGt,
	token.Eq:               Equality,
	token.NotEq:            Equality,
	token.Identical:        Equality,
	token.NotIdentical:     Equality,
	token.Spaceship:        Equality,
	token.Ampersand:        BitwiseAnd,
	token.Caret:            BitwiseXor,
	token.Pipe:             BitwiseOr,
	token.BooleanAnd:       And,
	token.BooleanOr:        Or,
	token.Question:         Ternary,
	token.QuestionColon:    Ternary,
	token.Assign:           Assignment,
	token.PlusAssign:       Assignment,
	token.MinusAssign:      Assignment,
	token.MulAssign:        Assignment,
	token.DivAssign:        Assignment,
	token.ModAssign:        Assignment,
	token.ConcatAssign:     Assignment,
	token.PowAssign:        Assignment,
	token.AndAssign:        Assignment,
	token.OrAssign:         Assignment,
	token.XorAssign:        Assignment,
	token.ShiftLeftAssign:  Assignment,
	token.ShiftRightAssign: Assignment,
	token.CoalesceAssign:   Assignment,
}

var postfixPrecedences = map[token.Kind]Precedence{
	token.Coalesce:     NullCoalesce,
	token.Inc:          IncDec,
	token.Dec:          IncDec,
	token.LParen:       CallDim,
	token.GenericStart: CallDim,
	token.LBracket:     CallDim,
	token.Arrow:        ObjectAccess,
	token.NullsafeArrow: ObjectAccess,
	token.DoubleColon:  ObjectAccess,
}

// parseExpression is `for_precedence`: it parses a prefix form, then
// alternately applies postfix and infix operators whose precedence is at
// least floor, stopping (or erroring, for non-associative reuse) exactly
// as spec.md §4.7/§9 describes.
func (p *Parser) parseExpression(floor Precedence) ast.Expr {
	left := p.parsePrefix()

	for {
		if p.curTokenIs(token.Semicolon) || p.curTokenIs(token.Eof) {
			break
		}

		if prec, ok := postfixPrecedences[p.curToken.Kind]; ok {
			if prec < floor {
				break
			}
			left = p.parsePostfix(left)
			continue
		}

		if prec, ok := infixPrecedences[p.curToken.Kind]; ok {
			if prec < floor {
				break
			}
			if prec == floor && prec.associativity() == AssocLeft {
				break
			}
			if prec == floor && prec.associativity() == AssocNon {
				p.record(diagnostic.Issue{
					Code:       diagnostic.PNonAssociativeOperatorReuse,
					Message:    "cannot chain non-associative operator " + p.curToken.Kind.String(),
					SourceName: p.sourceName,
					Start:      p.curToken.Span,
					End:        p.curToken.Span,
					Severity:   diagnostic.SeverityError,
				})
				break
			}
			left = p.parseInfix(left, prec)
			continue
		}

		break
	}

	return left
}

func (p *Parser) parseExpr() ast.Expr { return p.parseExpression(Lowest) }

// parseInfix consumes the operator token and dispatches, recursing at
// the operator's own precedence so the loop in parseExpression decides
// left/right associativity (spec.md §9, grounded in
// original_source's infix.rs).
func (p *Parser) parseInfix(left ast.Expr, prec Precedence) ast.Expr {
	start := left.InitialPosition()
	op := p.curToken.Kind
	p.nextToken()

	switch op {
	case token.Question:
		if p.curTokenIs(token.Colon) {
			p.nextToken()
			alt := p.parseExpression(prec)
			return &ast.TernaryExpression{Pos: p.pos(start), Condition: left, Alternative: alt}
		}
		cons := p.parseExpression(prec)
		if !p.curTokenIs(token.Colon) {
			p.unexpectedCurrentToken(token.Colon)
		} else {
			p.nextToken()
		}
		alt := p.parseExpression(prec)
		return &ast.TernaryExpression{Pos: p.pos(start), Condition: left, Consequence: cons, Alternative: alt}

	case token.QuestionColon:
		alt := p.parseExpression(prec)
		return &ast.TernaryExpression{Pos: p.pos(start), Condition: left, Alternative: alt}

	case token.Instanceof, token.Is, token.As, token.Into:
		ty := p.parseType()
		return &ast.TypeCheckExpression{Pos: p.pos(start), Operator: op, Operand: left, Type: ty}

	case token.In:
		right := p.parseExpression(prec)
		return &ast.InExpression{Pos: p.pos(start), Left: left, Right: right}

	default:
		right := p.parseExpression(prec)
		if isAssignmentOp(op) {
			return &ast.AssignmentExpression{Pos: p.pos(start), Operator: op, Left: left, Right: right}
		}
		return &ast.BinaryExpression{Pos: p.pos(start), Operator: op, Left: left, Right: right}
	}
}

func isAssignmentOp(k token.Kind) bool {
	switch k {
	case token.Assign, token.PlusAssign, token.MinusAssign, token.MulAssign, token.DivAssign,
		token.ModAssign, token.ConcatAssign, token.PowAssign, token.AndAssign, token.OrAssign,
		token.XorAssign, token.ShiftLeftAssign, token.ShiftRightAssign, token.CoalesceAssign:
		return true
	}
	return false
}

// parsePostfix dispatches the current postfix-triggering token
// (grounded in original_source's postfix.rs).
func (p *Parser) parsePostfix(left ast.Expr) ast.Expr {
	start := left.InitialPosition()

	switch p.curToken.Kind {
	case token.Coalesce:
		p.nextToken()
		right := p.parseExpression(NullCoalesce)
		return &ast.BinaryExpression{Pos: p.pos(start), Operator: token.Coalesce, Left: left, Right: right}

	case token.Inc:
		p.nextToken()
		return &ast.PostfixExpression{Pos: p.pos(start), Operator: token.Inc, Operand: left}
	case token.Dec:
		p.nextToken()
		return &ast.PostfixExpression{Pos: p.pos(start), Operator: token.Dec, Operand: left}

	case token.GenericStart, token.LParen:
		var generics *ast.TypeTemplateGroup
		if p.curTokenIs(token.GenericStart) {
			generics = p.parseUseSiteGenericGroup()
		}
		if p.isClosureCreationPlaceholder() {
			args := p.parseClosureCreationPlaceholder()
			return &ast.CallExpression{Pos: p.pos(start), Callee: left, Generics: generics, Arguments: args}
		}
		args := p.parseArgumentList()
		return &ast.CallExpression{Pos: p.pos(start), Callee: left, Generics: generics, Arguments: args}

	case token.LBracket:
		p.nextToken()
		if p.curTokenIs(token.RBracket) {
			p.nextToken()
			return &ast.IndexExpression{Pos: p.pos(start), Target: left}
		}
		idx := p.parseExpr()
		if !p.curTokenIs(token.RBracket) {
			p.unexpectedCurrentToken(token.RBracket)
		} else {
			p.nextToken()
		}
		return &ast.IndexExpression{Pos: p.pos(start), Target: left, Index: idx}

	case token.DoubleColon:
		return p.parseStaticAccess(left, start)

	case token.Arrow, token.NullsafeArrow:
		return p.parseObjectAccess(left, start)
	}

	p.unexpectedCurrentToken()
	p.nextToken()
	return left
}

func (p *Parser) parseStaticAccess(left ast.Expr, start token.Span) ast.Expr {
	p.nextToken() // consume '::'

	if p.curTokenIs(token.Variable) {
		name := p.curToken.Value
		varSpan := p.curToken.Span
		p.nextToken()
		return &ast.StaticPropertyAccessExpression{
			Pos: p.pos(start), Class: left,
			Property: &ast.Variable{Pos: ast.Pos{Initial: varSpan, Final: varSpan}, Name: name},
		}
	}

	if p.curTokenIs(token.Class) {
		classSpan := p.curToken.Span
		value := p.curToken.Value
		p.nextToken()
		id := &ast.Identifier{Pos: ast.Pos{Initial: classSpan, Final: classSpan}, Value: value}
		return &ast.ClassConstantAccessExpression{Pos: p.pos(start), Class: left, Name: id}
	}

	name := p.identifierMaybeReserved()
	if p.curTokenIs(token.LParen) || p.curTokenIs(token.GenericStart) {
		var generics *ast.TypeTemplateGroup
		if p.curTokenIs(token.GenericStart) {
			generics = p.parseUseSiteGenericGroup()
		}
		if p.isClosureCreationPlaceholder() {
			args := p.parseClosureCreationPlaceholder()
			return &ast.StaticMethodCallExpression{Pos: p.pos(start), Class: left, Method: name, Generics: generics, Arguments: args}
		}
		args := p.parseArgumentList()
		return &ast.StaticMethodCallExpression{Pos: p.pos(start), Class: left, Method: name, Generics: generics, Arguments: args}
	}

	return &ast.ClassConstantAccessExpression{Pos: p.pos(start), Class: left, Name: name}
}

func (p *Parser) parseObjectAccess(left ast.Expr, start token.Span) ast.Expr {
	nullsafe := p.curTokenIs(token.NullsafeArrow)
	p.nextToken() // consume '->' / '?->'

	name := p.identifierMaybeReserved()

	if p.curTokenIs(token.LParen) || p.curTokenIs(token.GenericStart) {
		var generics *ast.TypeTemplateGroup
		if p.curTokenIs(token.GenericStart) {
			generics = p.parseUseSiteGenericGroup()
		}
		if p.isClosureCreationPlaceholder() {
			args := p.parseClosureCreationPlaceholder()
			return &ast.MethodCallExpression{Pos: p.pos(start), Object: left, Method: name, Generics: generics, Arguments: args, Nullsafe: nullsafe}
		}
		args := p.parseArgumentList()
		return &ast.MethodCallExpression{Pos: p.pos(start), Object: left, Method: name, Generics: generics, Arguments: args, Nullsafe: nullsafe}
	}

	return &ast.PropertyAccessExpression{Pos: p.pos(start), Object: left, Property: name, Nullsafe: nullsafe}
}

// isClosureCreationPlaceholder detects the `(...)` closure-creation sugar:
// the call parens contain exactly `...` (spec.md §4.7).
func (p *Parser) isClosureCreationPlaceholder() bool {
	return p.curTokenIs(token.LParen) &&
		p.it.Lookahead(1).Kind == token.Ellipsis &&
		p.it.Lookahead(2).Kind == token.RParen
}

func (p *Parser) parseClosureCreationPlaceholder() *ast.ArgumentList {
	start := p.startPos()
	p.nextToken() // (
	p.nextToken() // ...
	p.nextToken() // )
	return &ast.ArgumentList{Pos: p.pos(start), IsClosureCreation: true}
}

// parseArgumentList parses a `(…)` call/attribute argument list with
// positional, named, and spread forms (spec.md §4.7).
func (p *Parser) parseArgumentList() *ast.ArgumentList {
	start := p.startPos()
	p.nextToken() // consume '('

	var args []*ast.Argument
	for !p.curTokenIs(token.RParen) && !p.curTokenIs(token.Eof) {
		args = append(args, p.parseArgument())
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
	return &ast.ArgumentList{Pos: p.pos(start), Arguments: args}
}

func (p *Parser) parseArgument() *ast.Argument {
	start := p.startPos()

	if p.curTokenIs(token.Ellipsis) {
		p.nextToken()
		value := p.parseExpression(Assignment)
		return &ast.Argument{Pos: p.pos(start), Value: value, Spread: true}
	}

	if p.isIdentifierKind(p.curToken.Kind) && p.peekTokenIs(token.Colon) && !p.peekTokenIs(token.DoubleColon) {
		name := p.identifier()
		p.nextToken() // consume ':'
		value := p.parseExpression(Assignment)
		return &ast.Argument{Pos: p.pos(start), Name: name, Value: value}
	}

	value := p.parseExpression(Assignment)
	if p.curTokenIs(token.Ellipsis) {
		p.nextToken()
		return &ast.Argument{Pos: p.pos(start), Value: value, ReverseSpread: true}
	}
	return &ast.Argument{Pos: p.pos(start), Value: value}
}

// parseUseSiteGenericGroup parses the `::<T, …>` use-site generic
// argument list that opens with a GenericStart token.
func (p *Parser) parseUseSiteGenericGroup() *ast.TypeTemplateGroup {
	start := p.startPos()
	p.nextToken() // consume '::<'

	if p.curTokenIs(token.Gt) || p.curTokenIs(token.ShiftRight) {
		p.record(diagnostic.Issue{
			Code: diagnostic.PEmptyTemplateGroup, Message: "generic argument list cannot be empty",
			SourceName: p.sourceName, Start: start, End: p.curToken.Span, Severity: diagnostic.SeverityError,
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
