package parser

import (
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// parseAttributeGroup parses one `#[Attribute(args…), …]` opener and its
// contents (spec.md §4.9).
func (p *Parser) parseAttributeGroup() *ast.AttributeGroup {
	start := p.startPos()
	p.nextToken() // consume '#['

	var attrs []*ast.Attribute
	for !p.curTokenIs(token.RBracket) && !p.curTokenIs(token.Eof) {
		attrs = append(attrs, p.parseAttribute())
		if p.curTokenIs(token.Comma) {
			p.nextToken()
			continue
		}
		break
	}
	if !p.curTokenIs(token.RBracket) {
		p.unexpectedCurrentToken(token.RBracket)
	} else {
		p.nextToken()
	}
	return &ast.AttributeGroup{Pos: p.pos(start), Attributes: attrs}
}

func (p *Parser) parseAttribute() *ast.Attribute {
	start := p.startPos()
	name := p.identifierMaybeReserved()

	var args []*ast.Argument
	if p.curTokenIs(token.LParen) {
		list := p.parseArgumentList()
		args = list.Arguments
		for _, a := range args {
			if !p.isConstantExpression(a.Value, true) {
				p.record(diagnostic.Issue{
					Code:       diagnostic.PNonConstantAttributeArgument,
					Message:    "attribute argument must be a constant expression",
					SourceName: p.sourceName,
					Start:      a.Value.InitialPosition(),
					End:        a.Value.FinalPosition(),
					Severity:   diagnostic.SeverityError,
				})
			}
		}
	}
	return &ast.Attribute{Pos: p.pos(start), Name: name, Arguments: args}
}

// gatherAttributeGroups consumes a run of consecutive `#[…]` groups,
// recursing on each, and stages them for the next definition/expression
// consumer (spec.md §4.9, testable property 4).
func (p *Parser) gatherAttributeGroups() {
	for p.curTokenIs(token.AttributeStart) {
		group := p.parseAttributeGroup()
		p.attribute(group)
	}
}

// isConstantExpression implements the `is_constant(allow_classlike)`
// predicate used to validate attribute arguments and property/constant
// initializers (spec.md §4.7, §4.9).
func (p *Parser) isConstantExpression(e ast.Expr, allowClasslike bool) bool {
	switch n := e.(type) {
	case nil:
		return true
	case *ast.IntegerLiteral, *ast.FloatLiteral, *ast.StringLiteral,
		*ast.BoolLiteral, *ast.NullLiteral, *ast.Identifier, *ast.MagicConstant:
		return true
	case *ast.ParenthesizedExpression:
		return p.isConstantExpression(n.Inner, allowClasslike)
	case *ast.TupleExpression:
		for _, el := range n.Elements {
			if !p.isConstantExpression(el, allowClasslike) {
				return false
			}
		}
		return true
	case *ast.VecExpression:
		for _, el := range n.Elements {
			if el.Key != nil && !p.isConstantExpression(el.Key, allowClasslike) {
				return false
			}
			if !p.isConstantExpression(el.Value, allowClasslike) {
				return false
			}
		}
		return true
	case *ast.DictExpression:
		for _, el := range n.Elements {
			if el.Key != nil && !p.isConstantExpression(el.Key, allowClasslike) {
				return false
			}
			if !p.isConstantExpression(el.Value, allowClasslike) {
				return false
			}
		}
		return true
	case *ast.PrefixExpression:
		return p.isConstantExpression(n.Operand, allowClasslike)
	case *ast.BinaryExpression:
		return p.isConstantExpression(n.Left, allowClasslike) && p.isConstantExpression(n.Right, allowClasslike)
	case *ast.TernaryExpression:
		if n.Consequence != nil && !p.isConstantExpression(n.Consequence, allowClasslike) {
			return false
		}
		return p.isConstantExpression(n.Condition, allowClasslike) && p.isConstantExpression(n.Alternative, allowClasslike)
	case *ast.ClassConstantAccessExpression:
		return allowClasslike && p.isConstantExpression(n.Class, allowClasslike)
	default:
		return false
	}
}
