package parser

import (
	"strings"

	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// parseTree is the top-level loop Parse calls: it consumes definitions
// until EOF, threading the current namespace through NamespaceDefinition
// boundaries (spec.md §4.9).
func (p *Parser) parseTree() (*ast.Tree, *diagnostic.Report) {
	start := p.startPos()
	var defs []ast.Definition

	for !p.curTokenIs(token.Eof) {
		def := p.parseDefinition()
		if def != nil {
			defs = append(defs, def)
		}
	}
	p.finishUnit()

	return &ast.Tree{Pos: p.pos(start), Source: p.sourceName, Definitions: defs}, nil
}

// parseDefinition dispatches on the current token (spec.md §4.9).
func (p *Parser) parseDefinition() ast.Definition {
	switch p.curToken.Kind {
	case token.OpenTag, token.OpenTagEcho, token.OpenTagShort, token.CloseTag:
		p.record(diagnostic.Issue{
			Code:       diagnostic.POpenCloseTagPresent,
			Message:    "PHP open/close tag present at definition position",
			SourceName: p.sourceName,
			Start:      p.curToken.Span,
			End:        p.curToken.Span,
			Severity:   diagnostic.SeverityWarning,
		})
		p.nextToken()
		return nil

	case token.Namespace:
		return p.parseNamespaceDefinition()

	case token.Use:
		return p.parseUseDefinition()

	case token.Const:
		return p.parseConstantDefinition()

	case token.Type:
		return p.parseTypeAliasDefinition()

	case token.AttributeStart:
		p.gatherAttributeGroups()
		if p.curTokenIs(token.Eof) {
			return nil
		}
		return p.parseDefinition()

	case token.Enum:
		return p.parseEnumDefinition()

	case token.Interface:
		return p.parseInterfaceDefinition()

	case token.Function:
		return p.parseFunctionDefinition()

	case token.Class, token.Readonly, token.Final, token.Abstract:
		return p.parseClassDefinition()
	}

	if len(p.pendingAttributes) > 0 {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PMissingDefinitionAfterAttributes,
			Message:    "expected a definition after attributes",
			SourceName: p.sourceName,
			Start:      p.curToken.Span,
			End:        p.curToken.Span,
			Severity:   diagnostic.SeverityError,
		})
		p.takeAttributes()
	} else {
		p.unexpectedCurrentToken()
	}
	if !p.curTokenIs(token.Eof) {
		p.nextToken()
	}
	return nil
}

// parseNamespaceDefinition establishes the current namespace and consumes
// every subsequent definition until the next `namespace` or EOF;
// brace-scoped namespaces are not supported (spec.md §4.9).
func (p *Parser) parseNamespaceDefinition() ast.Definition {
	start := p.startPos()
	p.nextToken() // consume 'namespace'

	name := p.namespaceIdentifier()
	p.namespace = name
	p.consumeOptionalSemicolon()

	var defs []ast.Definition
	for !p.curTokenIs(token.Eof) && !p.curTokenIs(token.Namespace) {
		def := p.parseDefinition()
		if def != nil {
			defs = append(defs, def)
		}
	}

	return &ast.NamespaceDefinition{Pos: p.pos(start), Name: name, Definitions: defs}
}

// parseUseDefinition parses the three `use` import variants (spec.md §4.9).
func (p *Parser) parseUseDefinition() ast.Definition {
	start := p.startPos()
	p.nextToken() // consume 'use'

	kind := ast.UseDefault
	if p.curTokenIs(token.Function) {
		kind = ast.UseFunction
		p.nextToken()
	} else if p.curTokenIs(token.Const) {
		kind = ast.UseConstant
		p.nextToken()
	}

	name := p.namespaceIdentifier()

	var alias *ast.Identifier
	if p.curTokenIs(token.As) {
		p.nextToken()
		alias = p.identifierMaybeReserved()
	}
	p.consumeOptionalSemicolon()

	return &ast.UseDefinition{Pos: p.pos(start), Kind: kind, Name: name, Alias: alias}
}

// parseConstantDefinition parses a top-level `const NAME = expr;`.
func (p *Parser) parseConstantDefinition() ast.Definition {
	start := p.startPos()
	p.nextToken() // consume 'const'

	name := p.constantIdentifier()

	var ty ast.TypeDefinition
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		ty = p.parseType()
	}

	if !p.curTokenIs(token.Assign) {
		p.unexpectedCurrentToken(token.Assign)
	} else {
		p.nextToken()
	}
	value := p.parseExpr()
	if !p.isConstantExpression(value, true) {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PNonConstantInitializer,
			Message:    "constant initializer must be a constant expression",
			SourceName: p.sourceName,
			Start:      value.InitialPosition(),
			End:        value.FinalPosition(),
			Severity:   diagnostic.SeverityError,
		})
	}
	p.consumeOptionalSemicolon()

	return &ast.ConstantDefinition{Pos: p.pos(start), Name: name, Type: ty, Value: value}
}

// parseTypeAliasDefinition parses `type NAME<…>? = T;`.
func (p *Parser) parseTypeAliasDefinition() ast.Definition {
	start := p.startPos()
	p.nextToken() // consume 'type'

	name := p.identifier()
	templates := p.parseTemplateGroup()

	if !p.curTokenIs(token.Assign) {
		p.unexpectedCurrentToken(token.Assign)
	} else {
		p.nextToken()
	}
	ty := p.parseType()
	p.consumeOptionalSemicolon()

	return &ast.TypeAliasDefinition{Pos: p.pos(start), Name: name, Templates: templates, Type: ty}
}

// --- Parameter lists ---

// parseParameterList parses a general `(…)` parameter list (function/
// method/closure). Promotion modifiers are only legal on constructor
// parameters, parsed separately by parseConstructorParameterList.
func (p *Parser) parseParameterList() []*ast.Parameter {
	if !p.curTokenIs(token.LParen) {
		p.unexpectedCurrentToken(token.LParen)
		return nil
	}
	p.nextToken()

	var params []*ast.Parameter
	for !p.curTokenIs(token.RParen) && !p.curTokenIs(token.Eof) {
		params = append(params, p.parseParameter(nil))
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
	return params
}

// parseConstructorParameterList is parseParameterList's counterpart for
// `__construct`, admitting promoted-property modifiers on each parameter
// (spec.md §4.9).
func (p *Parser) parseConstructorParameterList() []*ast.Parameter {
	if !p.curTokenIs(token.LParen) {
		p.unexpectedCurrentToken(token.LParen)
		return nil
	}
	p.nextToken()

	var params []*ast.Parameter
	for !p.curTokenIs(token.RParen) && !p.curTokenIs(token.Eof) {
		promote := p.parseModifiers(allowedPromotedProperty)
		params = append(params, p.parseParameter(promote))
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
	return params
}

func (p *Parser) parseParameter(promote []*ast.Modifier) *ast.Parameter {
	start := p.startPos()
	var attrs []*ast.AttributeGroup
	for p.curTokenIs(token.AttributeStart) {
		attrs = append(attrs, p.parseAttributeGroup())
	}

	var ty ast.TypeDefinition
	if !p.curTokenIs(token.Variable) && !p.curTokenIs(token.Ampersand) && !p.curTokenIs(token.Ellipsis) {
		ty = p.parseType()
	}

	byRef := false
	if p.curTokenIs(token.Ampersand) {
		byRef = true
		p.nextToken()
	}
	variadic := false
	if p.curTokenIs(token.Ellipsis) {
		variadic = true
		p.nextToken()
	}

	name := p.parseVariable()

	var def ast.Expr
	if p.curTokenIs(token.Assign) {
		p.nextToken()
		def = p.parseExpression(Assignment)
	}

	return &ast.Parameter{
		Pos: p.pos(start), Name: name, Type: ty, Default: def,
		ByRef: byRef, Variadic: variadic, Promote: promote, Attributes: attrs,
	}
}

// --- Modifiers ---

var allowedClass = map[token.Kind]bool{token.Readonly: true, token.Final: true, token.Abstract: true}
var allowedClassMethod = map[token.Kind]bool{
	token.Private: true, token.Protected: true, token.Public: true,
	token.Static: true, token.Final: true, token.Abstract: true,
}
var allowedInterfaceMethod = map[token.Kind]bool{token.Public: true, token.Static: true}
var allowedEnumMethod = map[token.Kind]bool{
	token.Private: true, token.Protected: true, token.Public: true, token.Static: true, token.Final: true,
}
var allowedProperty = map[token.Kind]bool{
	token.Private: true, token.Protected: true, token.Public: true, token.Static: true, token.Readonly: true,
}
var allowedPromotedProperty = map[token.Kind]bool{
	token.Private: true, token.Protected: true, token.Public: true, token.Readonly: true,
}
var allowedClassConstant = map[token.Kind]bool{
	token.Private: true, token.Protected: true, token.Public: true, token.Final: true,
}
var allowedInterfaceConstant = map[token.Kind]bool{token.Public: true, token.Final: true}

var visibilityModifiers = map[token.Kind]bool{token.Private: true, token.Protected: true, token.Public: true}

// modifierKinds lists every keyword parseModifiers recognizes as belonging
// to some modifier set, independent of which set is currently allowed (so
// a misplaced-but-known modifier still gets consumed and diagnosed rather
// than falling through to an unrelated parse path).
var modifierKinds = map[token.Kind]bool{
	token.Private: true, token.Protected: true, token.Public: true, token.Static: true,
	token.Final: true, token.Abstract: true, token.Readonly: true,
}

// parseModifiers consumes a run of modifier keywords, diagnosing (but not
// aborting on) any not present in allowed, any duplicate, and any second
// visibility keyword (spec.md §4.9).
func (p *Parser) parseModifiers(allowed map[token.Kind]bool) []*ast.Modifier {
	var mods []*ast.Modifier
	seen := map[token.Kind]bool{}
	sawVisibility := false

	for modifierKinds[p.curToken.Kind] {
		kind := p.curToken.Kind
		start := p.startPos()
		value := p.curToken.Value
		p.nextToken()
		mod := &ast.Modifier{Pos: p.pos(start), Name: value}

		if !allowed[kind] {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PModifierNotAllowed,
				Message:    "modifier " + value + " is not allowed in this context",
				SourceName: p.sourceName,
				Start:      mod.Initial,
				End:        mod.Final,
				Severity:   diagnostic.SeverityError,
			})
		}
		if seen[kind] {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PDuplicateModifier,
				Message:    "duplicate modifier " + value,
				SourceName: p.sourceName,
				Start:      mod.Initial,
				End:        mod.Final,
				Severity:   diagnostic.SeverityError,
			})
		}
		seen[kind] = true

		if visibilityModifiers[kind] {
			if sawVisibility {
				p.record(diagnostic.Issue{
					Code:       diagnostic.PMultipleVisibilityModifiers,
					Message:    "multiple visibility modifiers",
					SourceName: p.sourceName,
					Start:      mod.Initial,
					End:        mod.Final,
					Severity:   diagnostic.SeverityError,
				})
			}
			sawVisibility = true
		}

		if kind == token.Final && seen[token.Abstract] || kind == token.Abstract && seen[token.Final] {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PModifierNotAllowed,
				Message:    "final and abstract cannot be combined",
				SourceName: p.sourceName,
				Start:      mod.Initial,
				End:        mod.Final,
				Severity:   diagnostic.SeverityError,
			})
		}
		if kind == token.Readonly && seen[token.Static] || kind == token.Static && seen[token.Readonly] {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PReadonlyStatic,
				Message:    "readonly and static cannot be combined",
				SourceName: p.sourceName,
				Start:      mod.Initial,
				End:        mod.Final,
				Severity:   diagnostic.SeverityError,
			})
		}
		if kind == token.Private && seen[token.Final] || kind == token.Final && seen[token.Private] {
			if allowed[token.Private] && allowed[token.Final] && !allowed[token.Static] && !allowed[token.Abstract] {
				// classish-constant context: private+final is specifically forbidden there.
				p.record(diagnostic.Issue{
					Code:       diagnostic.PPrivateFinalConstant,
					Message:    "private and final cannot be combined on a constant",
					SourceName: p.sourceName,
					Start:      mod.Initial,
					End:        mod.Final,
					Severity:   diagnostic.SeverityError,
				})
			}
		}

		mods = append(mods, mod)
	}
	return mods
}

// --- enum ---

// parseEnumDefinition parses `enum NAME (: int|string)? (implements I, …)? { members }`
// (spec.md §4.9).
func (p *Parser) parseEnumDefinition() ast.Definition {
	start := p.startPos()
	attrs := p.takeAttributes()
	p.nextToken() // consume 'enum'

	name := p.identifier()

	var backing ast.TypeDefinition
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		backing = p.parseType()
		if prim, ok := backing.(*ast.PrimitiveType); !ok || (prim.Kind != ast.PrimitiveInt && prim.Kind != ast.PrimitiveString) {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PInvalidEnumBackingType,
				Message:    "enum backing type must be int or string",
				SourceName: p.sourceName,
				Start:      backing.InitialPosition(),
				End:        backing.FinalPosition(),
				Severity:   diagnostic.SeverityError,
			})
			backing = &ast.PrimitiveType{
				Pos:  ast.Pos{Initial: backing.InitialPosition(), Final: backing.FinalPosition()},
				Kind: ast.PrimitiveString,
			}
		}
	}

	var implements []*ast.IdentifierType
	if p.curTokenIs(token.Implements) {
		p.nextToken()
		implements = append(implements, p.parseIdentifierTypeRef())
		for p.curTokenIs(token.Comma) {
			p.nextToken()
			implements = append(implements, p.parseIdentifierTypeRef())
		}
	}

	members := p.parseMemberBody(roleEnum, backing != nil)

	return &ast.EnumDefinition{
		Pos: p.pos(start), Name: name, BackingType: backing,
		Implements: implements, Members: members, Attributes: attrs,
	}
}

func (p *Parser) parseIdentifierTypeRef() *ast.IdentifierType {
	start := p.startPos()
	name := p.classnameIdentifier()
	templates := p.parseTypeTemplateGroup(false)
	return &ast.IdentifierType{Pos: p.pos(start), Name: name, Templates: templates}
}

// --- interface ---

func (p *Parser) parseInterfaceDefinition() ast.Definition {
	start := p.startPos()
	attrs := p.takeAttributes()
	p.nextToken() // consume 'interface'

	name := p.identifier()
	templates := p.parseTemplateGroup()

	var extends []*ast.IdentifierType
	if p.curTokenIs(token.Extends) {
		p.nextToken()
		extends = append(extends, p.parseIdentifierTypeRef())
		for p.curTokenIs(token.Comma) {
			p.nextToken()
			extends = append(extends, p.parseIdentifierTypeRef())
		}
	}

	members := p.parseMemberBody(roleInterface, false)

	return &ast.InterfaceDefinition{
		Pos: p.pos(start), Name: name, Templates: templates,
		Extends: extends, Members: members, Attributes: attrs,
	}
}

// --- function ---

func (p *Parser) parseFunctionDefinition() ast.Definition {
	start := p.startPos()
	attrs := p.takeAttributes()
	p.nextToken() // consume 'function'
	if p.curTokenIs(token.Ampersand) {
		p.nextToken()
	}

	name := p.identifier()
	templates := p.parseTemplateGroup()
	params := p.parseParameterList()

	var ret ast.TypeDefinition
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		ret = p.parseType()
	}

	where := p.parseWhereConstraints()

	var body *ast.BlockStatement
	if p.curTokenIs(token.LBrace) {
		body = p.parseBlockStatement()
	} else {
		p.consumeOptionalSemicolon()
	}

	return &ast.FunctionDefinition{
		Pos: p.pos(start), Name: name, Templates: templates, Parameters: params,
		ReturnType: ret, Where: where, Body: body, Attributes: attrs,
	}
}

// --- class ---

func (p *Parser) parseClassDefinition() ast.Definition {
	start := p.startPos()
	attrs := p.takeAttributes()
	modifiers := p.parseModifiers(allowedClass)

	if !p.curTokenIs(token.Class) {
		p.unexpectedCurrentToken(token.Class)
	} else {
		p.nextToken()
	}

	name := p.identifier()
	templates := p.parseTemplateGroup()

	var extends *ast.IdentifierType
	if p.curTokenIs(token.Extends) {
		p.nextToken()
		extends = p.parseIdentifierTypeRef()
	}

	var implements []*ast.IdentifierType
	if p.curTokenIs(token.Implements) {
		p.nextToken()
		implements = append(implements, p.parseIdentifierTypeRef())
		for p.curTokenIs(token.Comma) {
			p.nextToken()
			implements = append(implements, p.parseIdentifierTypeRef())
		}
	}

	members := p.parseMemberBody(roleClass, false)

	return &ast.ClassDefinition{
		Pos: p.pos(start), Modifiers: modifiers, Name: name, Templates: templates,
		Extends: extends, Implements: implements, Members: members, Attributes: attrs,
	}
}

// --- members (shared by class/interface/enum/anonymous-class bodies) ---

type memberRole int

const (
	roleClass memberRole = iota
	roleInterface
	roleEnum
)

// parseMemberBody parses a `{ member* }` body, dispatching each member by
// role per spec.md §4.9's modifier validation table. backed is true when
// parsing an enum's body and the enum is backed (controls case-value
// diagnostics).
func (p *Parser) parseMemberBody(role memberRole, backed bool) []ast.Member {
	if !p.curTokenIs(token.LBrace) {
		p.unexpectedCurrentToken(token.LBrace)
		return nil
	}
	p.nextToken()

	var members []ast.Member
	for !p.curTokenIs(token.RBrace) && !p.curTokenIs(token.Eof) {
		m := p.parseMember(role, backed)
		if m != nil {
			members = append(members, m)
		}
	}
	if !p.curTokenIs(token.RBrace) {
		p.unexpectedCurrentToken(token.RBrace)
	} else {
		p.nextToken()
	}
	return members
}

func (p *Parser) parseMember(role memberRole, backed bool) ast.Member {
	var attrs []*ast.AttributeGroup
	for p.curTokenIs(token.AttributeStart) {
		attrs = append(attrs, p.parseAttributeGroup())
	}

	if role == roleEnum && p.curTokenIs(token.Case) {
		return p.parseEnumCase(backed)
	}

	constantAllowed, methodAllowed, propertyAllowed := allowedClassConstant, allowedClassMethod, allowedProperty
	switch role {
	case roleInterface:
		constantAllowed, methodAllowed = allowedInterfaceConstant, allowedInterfaceMethod
	case roleEnum:
		constantAllowed, methodAllowed = allowedClassConstant, allowedEnumMethod
	}

	// Look past the modifier run to the member keyword so the modifiers are
	// checked against that member kind's own set.
	allowed := propertyAllowed
	next := p.curToken
	for i := 1; modifierKinds[next.Kind]; i++ {
		next = p.it.Lookahead(i)
	}
	switch next.Kind {
	case token.Const:
		allowed = constantAllowed
	case token.Function:
		allowed = methodAllowed
	}
	modifiers := p.parseModifiers(allowed)

	switch p.curToken.Kind {
	case token.Const:
		return p.parseClassConstantMember(modifiers, attrs)
	case token.Function:
		return p.parseMethodOrConstructorMember(modifiers, attrs)
	case token.Variable:
		return p.parsePropertyMember(modifiers, attrs, role)
	}

	p.unexpectedCurrentToken(token.Const, token.Function, token.Variable)
	if !p.curTokenIs(token.Eof) && !p.curTokenIs(token.RBrace) {
		p.nextToken()
	}
	return nil
}

func unionModifierSet(sets ...map[token.Kind]bool) map[token.Kind]bool {
	out := map[token.Kind]bool{}
	for _, s := range sets {
		for k, v := range s {
			if v {
				out[k] = true
			}
		}
	}
	return out
}

func (p *Parser) parseEnumCase(backed bool) ast.Member {
	start := p.startPos()
	p.nextToken() // consume 'case'
	name := p.identifier()

	var value ast.Expr
	dropped := false
	if p.curTokenIs(token.Assign) {
		p.nextToken()
		value = p.parseExpr()
		if !backed {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PUnitEnumCaseHasValue,
				Message:    "unit enum case cannot have a value",
				SourceName: p.sourceName,
				Start:      value.InitialPosition(),
				End:        value.FinalPosition(),
				Severity:   diagnostic.SeverityError,
			})
			// The case carries a value that does not belong on a unit
			// enum; spec.md S4 drops the dead case from the tree rather
			// than emitting it with a value the rest of the type system
			// cannot account for.
			dropped = true
		}
	} else if backed {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PBackedEnumCaseMissingValue,
			Message:    "backed enum case must have a value",
			SourceName: p.sourceName,
			Start:      start,
			End:        p.finishPos(),
			Severity:   diagnostic.SeverityError,
		})
		dropped = true
	}
	p.consumeOptionalSemicolon()

	if dropped {
		return nil
	}
	return &ast.EnumCase{Pos: p.pos(start), Name: name, Value: value}
}

func (p *Parser) parseClassConstantMember(modifiers []*ast.Modifier, attrs []*ast.AttributeGroup) ast.Member {
	start := p.startPos()
	p.nextToken() // consume 'const'

	name := p.constantIdentifier()

	var ty ast.TypeDefinition
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		ty = p.parseType()
	}

	if !p.curTokenIs(token.Assign) {
		p.unexpectedCurrentToken(token.Assign)
	} else {
		p.nextToken()
	}
	value := p.parseExpr()
	if !p.isConstantExpression(value, true) {
		p.record(diagnostic.Issue{
			Code:       diagnostic.PNonConstantInitializer,
			Message:    "constant initializer must be a constant expression",
			SourceName: p.sourceName,
			Start:      value.InitialPosition(),
			End:        value.FinalPosition(),
			Severity:   diagnostic.SeverityError,
		})
	}
	p.consumeOptionalSemicolon()

	return &ast.ClassConstantMember{
		Pos: p.pos(start), Modifiers: modifiers, Name: name, Type: ty, Value: value, Attributes: attrs,
	}
}

func (p *Parser) parsePropertyMember(modifiers []*ast.Modifier, attrs []*ast.AttributeGroup, role memberRole) ast.Member {
	start := p.startPos()
	name := p.parseVariable()

	var ty ast.TypeDefinition
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		ty = p.parseType()
		if isBottom(ty) {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PBottomTypePropertyType,
				Message:    "property type cannot be void/never",
				SourceName: p.sourceName,
				Start:      ty.InitialPosition(),
				End:        ty.FinalPosition(),
				Severity:   diagnostic.SeverityError,
			})
		}
	}

	readonly := false
	for _, m := range modifiers {
		if strings.EqualFold(m.Name, "readonly") {
			readonly = true
		}
	}

	var def ast.Expr
	if p.curTokenIs(token.Assign) {
		p.nextToken()
		def = p.parseExpression(Assignment)
		if readonly {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PReadonlyPropertyHasDefault,
				Message:    "readonly property cannot have a default value",
				SourceName: p.sourceName,
				Start:      def.InitialPosition(),
				End:        def.FinalPosition(),
				Severity:   diagnostic.SeverityError,
			})
		}
		if !p.isConstantExpression(def, true) {
			p.record(diagnostic.Issue{
				Code:       diagnostic.PNonConstantInitializer,
				Message:    "property default must be a constant expression",
				SourceName: p.sourceName,
				Start:      def.InitialPosition(),
				End:        def.FinalPosition(),
				Severity:   diagnostic.SeverityError,
			})
		}
	}
	p.consumeOptionalSemicolon()

	return &ast.PropertyMember{Pos: p.pos(start), Modifiers: modifiers, Name: name, Type: ty, Default: def, Attributes: attrs}
}

// parseMethodOrConstructorMember routes `__construct` (case-insensitive)
// to the dedicated constructor parameter list; every other name uses the
// general parameter list (spec.md §4.9).
func (p *Parser) parseMethodOrConstructorMember(modifiers []*ast.Modifier, attrs []*ast.AttributeGroup) ast.Member {
	start := p.startPos()
	p.nextToken() // consume 'function'
	if p.curTokenIs(token.Ampersand) {
		p.nextToken()
	}

	name := p.identifier()

	if strings.EqualFold(name.Value, "__construct") {
		params := p.parseConstructorParameterList()
		var body *ast.BlockStatement
		if p.curTokenIs(token.LBrace) {
			body = p.parseBlockStatement()
		} else {
			p.consumeOptionalSemicolon()
		}
		return &ast.ConstructorMember{Pos: p.pos(start), Modifiers: modifiers, Parameters: params, Body: body, Attributes: attrs}
	}

	templates := p.parseTemplateGroup()
	params := p.parseParameterList()

	var ret ast.TypeDefinition
	if p.curTokenIs(token.Colon) {
		p.nextToken()
		ret = p.parseType()
	}

	where := p.parseWhereConstraints()

	var body *ast.BlockStatement
	if p.curTokenIs(token.LBrace) {
		body = p.parseBlockStatement()
	} else {
		p.consumeOptionalSemicolon()
	}

	return &ast.MethodMember{
		Pos: p.pos(start), Modifiers: modifiers, Name: name, Templates: templates, Parameters: params,
		ReturnType: ret, Where: where, Body: body, Attributes: attrs,
	}
}
