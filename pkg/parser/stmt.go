package parser

import (
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// parseBlockStatement parses a `{ stmt* }` block (spec.md §4.8).
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	start := p.startPos()
	if !p.curTokenIs(token.LBrace) {
		p.unexpectedCurrentToken(token.LBrace)
		return &ast.BlockStatement{Pos: p.pos(start)}
	}
	p.nextToken()

	var stmts []ast.Stmt
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.Eof) {
		stmts = append(stmts, p.parseStatement())
	}
	if !p.curTokenIs(token.RBrace) {
		p.unexpectedCurrentToken(token.RBrace)
	} else {
		p.nextToken()
	}
	return &ast.BlockStatement{Pos: p.pos(start), Statements: stmts}
}

// parseStatement dispatches on the current token (spec.md §4.8).
func (p *Parser) parseStatement() ast.Stmt {
	start := p.startPos()

	switch p.curToken.Kind {
	case token.OpenTag, token.OpenTagEcho, token.OpenTagShort, token.CloseTag:
		p.record(diagnostic.Issue{
			Code:       diagnostic.POpenCloseTagPresent,
			Message:    "PHP open/close tag present at statement position",
			SourceName: p.sourceName,
			Start:      p.curToken.Span,
			End:        p.curToken.Span,
			Severity:   diagnostic.SeverityWarning,
		})
		p.nextToken()
		return &ast.EmptyStatement{Pos: p.pos(start)}

	case token.Semicolon:
		p.nextToken()
		return &ast.EmptyStatement{Pos: p.pos(start)}

	case token.LBrace:
		return p.parseBlockStatement()

	case token.If:
		return p.parseIfStatement()
	case token.While:
		return p.parseWhileStatement()
	case token.Do:
		return p.parseDoWhileStatement()
	case token.For:
		return p.parseForStatement()
	case token.Foreach:
		return p.parseForeachStatement()
	case token.Using:
		if p.peekTokenIs(token.Variable) {
			return p.parseUsingStatement()
		}
	case token.Try:
		return p.parseTryStatement()
	case token.Return:
		return p.parseReturnStatement()
	case token.Break:
		return p.parseBreakStatement()
	case token.Continue:
		return p.parseContinueStatement()
	}

	return p.parseExpressionOrImplicitReturnStatement()
}

func (p *Parser) parseIfStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'if'

	cond := p.parseParenthesizedOrBareCondition()
	body := p.parseBlockStatement()

	var elseIfs []*ast.ElseIfClause
	var elseBlock *ast.BlockStatement
	for p.curTokenIs(token.ElseIf) {
		eStart := p.startPos()
		p.nextToken()
		eCond := p.parseParenthesizedOrBareCondition()
		eBody := p.parseBlockStatement()
		elseIfs = append(elseIfs, &ast.ElseIfClause{Pos: p.pos(eStart), Condition: eCond, Body: eBody})
	}
	if p.curTokenIs(token.Else) {
		p.nextToken()
		if p.curTokenIs(token.If) {
			// `else if` nests a fresh IfStatement as the sole statement of
			// the else block (spec.md §4.8).
			nested := p.parseIfStatement()
			elseBlock = &ast.BlockStatement{
				Pos:        ast.Pos{Initial: nested.InitialPosition(), Final: nested.FinalPosition()},
				Statements: []ast.Stmt{nested},
			}
		} else {
			elseBlock = p.parseBlockStatement()
		}
	}
	return &ast.IfStatement{Pos: p.pos(start), Condition: cond, Body: body, ElseIfs: elseIfs, Else: elseBlock}
}

// parseParenthesizedOrBareCondition accepts a condition wrapped in parens
// (the common case) or bare; both yield the same inner expression since
// `(e)` parses as a ParenthesizedExpression the caller never needs to
// distinguish here.
func (p *Parser) parseParenthesizedOrBareCondition() ast.Expr {
	return p.parseExpr()
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'while'
	cond := p.parseParenthesizedOrBareCondition()
	body := p.parseBlockStatement()
	return &ast.WhileStatement{Pos: p.pos(start), Condition: cond, Body: body}
}

func (p *Parser) parseDoWhileStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'do'
	body := p.parseBlockStatement()
	if !p.curTokenIs(token.While) {
		p.unexpectedCurrentToken(token.While)
	} else {
		p.nextToken()
	}
	cond := p.parseParenthesizedOrBareCondition()
	p.consumeOptionalSemicolon()
	return &ast.DoWhileStatement{Pos: p.pos(start), Body: body, Condition: cond}
}

func (p *Parser) consumeOptionalSemicolon() {
	if p.curTokenIs(token.Semicolon) {
		p.nextToken()
	} else {
		p.unexpectedCurrentToken(token.Semicolon)
	}
}

// parseForStatement admits the parenthesized `for (init; cond; step)`,
// standalone `for init; cond; step`, and mixed `for (init); cond; step`
// iterator shapes described in spec.md §4.8.
func (p *Parser) parseForStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'for'

	parenthesized := p.curTokenIs(token.LParen)
	if parenthesized {
		p.nextToken()
	}

	init := p.parseExprListUntilSemicolon()
	if parenthesized && p.curTokenIs(token.RParen) {
		// mixed form: `for (init); cond; step { … }`
		p.nextToken()
		parenthesized = false
	}
	p.consumeOptionalSemicolon()
	cond := p.parseExprListUntilSemicolon()
	p.consumeOptionalSemicolon()

	var step []ast.Expr
	if parenthesized {
		step = p.parseExprListUntil(token.RParen)
		if !p.curTokenIs(token.RParen) {
			p.unexpectedCurrentToken(token.RParen)
		} else {
			p.nextToken()
		}
	} else {
		step = p.parseExprListUntil(token.LBrace)
	}

	body := p.parseBlockStatement()
	return &ast.ForStatement{Pos: p.pos(start), Init: init, Condition: cond, Step: step, Body: body}
}

func (p *Parser) parseExprListUntilSemicolon() []ast.Expr {
	return p.parseExprListUntil(token.Semicolon)
}

func (p *Parser) parseExprListUntil(stop token.Kind) []ast.Expr {
	if p.curTokenIs(stop) {
		return nil
	}
	exprs := []ast.Expr{p.parseExpression(Assignment)}
	for p.curTokenIs(token.Comma) {
		p.nextToken()
		exprs = append(exprs, p.parseExpression(Assignment))
	}
	return exprs
}

// parseForeachStatement accepts both parenthesized and bare forms, with an
// optional key, an optional by-ref marker on the value (and key), and an
// optional trailing `else { … }` empty-iterator branch (spec.md §4.8).
func (p *Parser) parseForeachStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'foreach'

	parenthesized := p.curTokenIs(token.LParen)
	if parenthesized {
		p.nextToken()
	}

	// Parsed at TypeCheck so the `as` keyword ends the iterated expression
	// instead of being read as a type-cast operator; operators binding
	// looser than `as` need parentheses here.
	expr := p.parseExpression(TypeCheck)
	if !p.curTokenIs(token.As) {
		p.unexpectedCurrentToken(token.As)
	} else {
		p.nextToken()
	}

	firstByRef := false
	if p.curTokenIs(token.Ampersand) {
		firstByRef = true
		p.nextToken()
	}
	first := p.parseForeachTarget()

	var key, value ast.Expr
	keyByRef, valueByRef := false, firstByRef
	value = first

	if p.curTokenIs(token.DoubleArrow) {
		p.nextToken()
		keyByRef = firstByRef
		key = first
		valueByRef = false
		if p.curTokenIs(token.Ampersand) {
			valueByRef = true
			p.nextToken()
		}
		value = p.parseForeachTarget()
	}

	if parenthesized {
		if !p.curTokenIs(token.RParen) {
			p.unexpectedCurrentToken(token.RParen)
		} else {
			p.nextToken()
		}
	}

	body := p.parseBlockStatement()

	var elseBlock *ast.BlockStatement
	if p.curTokenIs(token.Else) {
		p.nextToken()
		elseBlock = p.parseBlockStatement()
	}

	return &ast.ForeachStatement{
		Pos: p.pos(start), Expression: expr, KeyByRef: keyByRef, Key: key,
		ValueByRef: valueByRef, Value: value, Body: body, Else: elseBlock,
	}
}

// parseForeachTarget parses a foreach key/value target, which may be a
// `list(...)` destructuring pattern.
func (p *Parser) parseForeachTarget() ast.Expr {
	if p.curTokenIs(token.List) && p.peekTokenIs(token.LParen) {
		start := p.startPos()
		p.nextToken()
		return p.parseListPattern(start)
	}
	return p.parseExpression(Assignment)
}

// parseUsingStatement parses `using $v = e (, $v = e)* (if e)? { … }`.
// The optional `if` guard is parsed but not stored in the tree.
func (p *Parser) parseUsingStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'using'

	var bindings []*ast.UsingBinding
	for {
		bStart := p.startPos()
		v := p.parseVariable()
		if !p.curTokenIs(token.Assign) {
			p.unexpectedCurrentToken(token.Assign)
		} else {
			p.nextToken()
		}
		value := p.parseExpression(Assignment)
		bindings = append(bindings, &ast.UsingBinding{Pos: p.pos(bStart), Variable: v, Value: value})
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}

	if p.curTokenIs(token.If) {
		p.nextToken()
		p.parseExpr() // guard predicate; parser-level shape only, no runtime evaluation here
	}

	body := p.parseBlockStatement()
	return &ast.UsingStatement{Pos: p.pos(start), Bindings: bindings, Body: body}
}

// parseTryStatement diagnoses (non-fatally) a try with neither catch nor
// finally (spec.md §4.8, P0028).
func (p *Parser) parseTryStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'try'
	body := p.parseBlockStatement()

	var catches []*ast.CatchClause
	for p.curTokenIs(token.Catch) {
		catches = append(catches, p.parseCatchClause())
	}

	var finally *ast.BlockStatement
	if p.curTokenIs(token.Finally) {
		p.nextToken()
		finally = p.parseBlockStatement()
	}

	if len(catches) == 0 && finally == nil {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PTryWithoutCatchOrFinally,
			Message:    "try statement must have at least one catch or a finally block",
			SourceName: p.sourceName,
			Start:      start,
			End:        p.finishPos(),
			Severity:   diagnostic.SeverityError,
		})
	}

	return &ast.TryStatement{Pos: p.pos(start), Body: body, Catches: catches, Finally: finally}
}

func (p *Parser) parseCatchClause() *ast.CatchClause {
	start := p.startPos()
	p.nextToken() // consume 'catch'
	if !p.curTokenIs(token.LParen) {
		p.unexpectedCurrentToken(token.LParen)
	} else {
		p.nextToken()
	}

	types := []ast.TypeDefinition{p.parseType()}
	for p.curTokenIs(token.Pipe) {
		p.nextToken()
		types = append(types, p.parseType())
	}

	var variable *ast.Variable
	if p.curTokenIs(token.Variable) {
		variable = p.parseVariable()
	}

	if !p.curTokenIs(token.RParen) {
		p.unexpectedCurrentToken(token.RParen)
	} else {
		p.nextToken()
	}

	body := p.parseBlockStatement()
	return &ast.CatchClause{Pos: p.pos(start), Types: types, Variable: variable, Body: body}
}

// parseReturnStatement distinguishes the explicit `return e? ;` form from
// the handling of a bare tail expression, which reaches ReturnStatement
// via parseExpressionOrImplicitReturnStatement instead (spec.md §4.8).
func (p *Parser) parseReturnStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'return'

	var value ast.Expr
	if !p.curTokenIs(token.Semicolon) {
		value = p.parseExpr()
	}
	p.consumeOptionalSemicolon()
	return &ast.ReturnStatement{Pos: p.pos(start), Value: value}
}

func (p *Parser) parseBreakStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'break'
	var level ast.Expr
	if p.curTokenIs(token.LiteralInteger) {
		level = p.parseExpression(Prefix)
	}
	p.consumeOptionalSemicolon()
	return &ast.BreakStatement{Pos: p.pos(start), Level: level}
}

func (p *Parser) parseContinueStatement() ast.Stmt {
	start := p.startPos()
	p.nextToken() // consume 'continue'
	var level ast.Expr
	if p.curTokenIs(token.LiteralInteger) {
		level = p.parseExpression(Prefix)
	}
	p.consumeOptionalSemicolon()
	return &ast.ContinueStatement{Pos: p.pos(start), Level: level}
}

// parseExpressionOrImplicitReturnStatement parses an expression statement;
// when the expression is not followed by `;`, it is instead an implicit
// return of the containing block's tail value (spec.md §4.8, §9).
func (p *Parser) parseExpressionOrImplicitReturnStatement() ast.Stmt {
	start := p.startPos()
	expr := p.parseExpr()

	if p.curTokenIs(token.Semicolon) {
		p.nextToken()
		return &ast.ExpressionStatement{Pos: p.pos(start), Expression: expr}
	}

	if p.curTokenIs(token.RBrace) || p.curTokenIs(token.Eof) {
		return &ast.ReturnStatement{Pos: p.pos(start), Value: expr, Implicit: true}
	}

	p.unexpectedCurrentToken(token.Semicolon)
	return &ast.ExpressionStatement{Pos: p.pos(start), Expression: expr}
}
