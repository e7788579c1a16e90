package ast

// Visitor is implemented by AST consumers that want typed callbacks per
// node kind. Each VisitXxx method returns whether Walk should recurse
// into that node's children; returning false prunes the subtree.
type Visitor interface {
	VisitIdentifier(node *Identifier) bool
	VisitTemplateGroup(node *TemplateGroup) bool
	VisitTemplateParameter(node *TemplateParameter) bool
	VisitTypeTemplateGroup(node *TypeTemplateGroup) bool
	VisitWhereConstraint(node *WhereConstraint) bool
	VisitAttribute(node *Attribute) bool
	VisitAttributeGroup(node *AttributeGroup) bool
	VisitModifier(node *Modifier) bool

	VisitPrimitiveType(node *PrimitiveType) bool
	VisitLiteralType(node *LiteralType) bool
	VisitNullableType(node *NullableType) bool
	VisitUnionType(node *UnionType) bool
	VisitIntersectionType(node *IntersectionType) bool
	VisitTupleType(node *TupleType) bool
	VisitParenthesizedType(node *ParenthesizedType) bool
	VisitVecType(node *VecType) bool
	VisitDictType(node *DictType) bool
	VisitIterableType(node *IterableType) bool
	VisitIdentifierType(node *IdentifierType) bool

	VisitIntegerLiteral(node *IntegerLiteral) bool
	VisitFloatLiteral(node *FloatLiteral) bool
	VisitStringLiteral(node *StringLiteral) bool
	VisitBoolLiteral(node *BoolLiteral) bool
	VisitNullLiteral(node *NullLiteral) bool
	VisitVariable(node *Variable) bool
	VisitMagicConstant(node *MagicConstant) bool
	VisitParenthesizedExpression(node *ParenthesizedExpression) bool
	VisitTupleExpression(node *TupleExpression) bool
	VisitDictEntry(node *DictEntry) bool
	VisitVecExpression(node *VecExpression) bool
	VisitDictExpression(node *DictExpression) bool
	VisitListPatternExpression(node *ListPatternExpression) bool
	VisitPrefixExpression(node *PrefixExpression) bool
	VisitPostfixExpression(node *PostfixExpression) bool
	VisitBinaryExpression(node *BinaryExpression) bool
	VisitAssignmentExpression(node *AssignmentExpression) bool
	VisitTernaryExpression(node *TernaryExpression) bool
	VisitTypeCheckExpression(node *TypeCheckExpression) bool
	VisitInExpression(node *InExpression) bool
	VisitIndexExpression(node *IndexExpression) bool
	VisitArgument(node *Argument) bool
	VisitArgumentList(node *ArgumentList) bool
	VisitCallExpression(node *CallExpression) bool
	VisitPropertyAccessExpression(node *PropertyAccessExpression) bool
	VisitMethodCallExpression(node *MethodCallExpression) bool
	VisitStaticPropertyAccessExpression(node *StaticPropertyAccessExpression) bool
	VisitClassConstantAccessExpression(node *ClassConstantAccessExpression) bool
	VisitStaticMethodCallExpression(node *StaticMethodCallExpression) bool
	VisitNewExpression(node *NewExpression) bool
	VisitCloneExpression(node *CloneExpression) bool
	VisitAnonymousClassExpression(node *AnonymousClassExpression) bool
	VisitArrowFunctionExpression(node *ArrowFunctionExpression) bool
	VisitUseCapture(node *UseCapture) bool
	VisitAnonymousFunctionExpression(node *AnonymousFunctionExpression) bool
	VisitMatchArm(node *MatchArm) bool
	VisitMatchExpression(node *MatchExpression) bool
	VisitExitExpression(node *ExitExpression) bool
	VisitThrowExpression(node *ThrowExpression) bool
	VisitAsyncExpression(node *AsyncExpression) bool
	VisitAwaitExpression(node *AwaitExpression) bool
	VisitConcurrentlyExpression(node *ConcurrentlyExpression) bool
	VisitYieldExpression(node *YieldExpression) bool
	VisitIssetExpression(node *IssetExpression) bool
	VisitUnsetExpression(node *UnsetExpression) bool

	VisitBlockStatement(node *BlockStatement) bool
	VisitExpressionStatement(node *ExpressionStatement) bool
	VisitEmptyStatement(node *EmptyStatement) bool
	VisitElseIfClause(node *ElseIfClause) bool
	VisitIfStatement(node *IfStatement) bool
	VisitWhileStatement(node *WhileStatement) bool
	VisitDoWhileStatement(node *DoWhileStatement) bool
	VisitForStatement(node *ForStatement) bool
	VisitForeachStatement(node *ForeachStatement) bool
	VisitUsingBinding(node *UsingBinding) bool
	VisitUsingStatement(node *UsingStatement) bool
	VisitCatchClause(node *CatchClause) bool
	VisitTryStatement(node *TryStatement) bool
	VisitReturnStatement(node *ReturnStatement) bool
	VisitBreakStatement(node *BreakStatement) bool
	VisitContinueStatement(node *ContinueStatement) bool

	VisitTree(node *Tree) bool
	VisitParameter(node *Parameter) bool
	VisitNamespaceDefinition(node *NamespaceDefinition) bool
	VisitUseDefinition(node *UseDefinition) bool
	VisitTypeAliasDefinition(node *TypeAliasDefinition) bool
	VisitConstantDefinition(node *ConstantDefinition) bool
	VisitFunctionDefinition(node *FunctionDefinition) bool
	VisitInterfaceDefinition(node *InterfaceDefinition) bool
	VisitEnumCase(node *EnumCase) bool
	VisitEnumDefinition(node *EnumDefinition) bool
	VisitClassDefinition(node *ClassDefinition) bool
	VisitClassConstantMember(node *ClassConstantMember) bool
	VisitPropertyMember(node *PropertyMember) bool
	VisitMethodMember(node *MethodMember) bool
	VisitConstructorMember(node *ConstructorMember) bool
}

// Walk dispatches node to the matching Visit method on v, then recurses
// into node.Children() if that method returned true. Unrecognized node
// types (e.g. a custom embedding) are walked by children alone.
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}

	recurse := true
	switch n := node.(type) {
	case *Identifier:
		recurse = v.VisitIdentifier(n)
	case *TemplateGroup:
		recurse = v.VisitTemplateGroup(n)
	case *TemplateParameter:
		recurse = v.VisitTemplateParameter(n)
	case *TypeTemplateGroup:
		recurse = v.VisitTypeTemplateGroup(n)
	case *WhereConstraint:
		recurse = v.VisitWhereConstraint(n)
	case *Attribute:
		recurse = v.VisitAttribute(n)
	case *AttributeGroup:
		recurse = v.VisitAttributeGroup(n)
	case *Modifier:
		recurse = v.VisitModifier(n)

	case *PrimitiveType:
		recurse = v.VisitPrimitiveType(n)
	case *LiteralType:
		recurse = v.VisitLiteralType(n)
	case *NullableType:
		recurse = v.VisitNullableType(n)
	case *UnionType:
		recurse = v.VisitUnionType(n)
	case *IntersectionType:
		recurse = v.VisitIntersectionType(n)
	case *TupleType:
		recurse = v.VisitTupleType(n)
	case *ParenthesizedType:
		recurse = v.VisitParenthesizedType(n)
	case *VecType:
		recurse = v.VisitVecType(n)
	case *DictType:
		recurse = v.VisitDictType(n)
	case *IterableType:
		recurse = v.VisitIterableType(n)
	case *IdentifierType:
		recurse = v.VisitIdentifierType(n)

	case *IntegerLiteral:
		recurse = v.VisitIntegerLiteral(n)
	case *FloatLiteral:
		recurse = v.VisitFloatLiteral(n)
	case *StringLiteral:
		recurse = v.VisitStringLiteral(n)
	case *BoolLiteral:
		recurse = v.VisitBoolLiteral(n)
	case *NullLiteral:
		recurse = v.VisitNullLiteral(n)
	case *Variable:
		recurse = v.VisitVariable(n)
	case *MagicConstant:
		recurse = v.VisitMagicConstant(n)
	case *ParenthesizedExpression:
		recurse = v.VisitParenthesizedExpression(n)
	case *TupleExpression:
		recurse = v.VisitTupleExpression(n)
	case *DictEntry:
		recurse = v.VisitDictEntry(n)
	case *VecExpression:
		recurse = v.VisitVecExpression(n)
	case *DictExpression:
		recurse = v.VisitDictExpression(n)
	case *ListPatternExpression:
		recurse = v.VisitListPatternExpression(n)
	case *PrefixExpression:
		recurse = v.VisitPrefixExpression(n)
	case *PostfixExpression:
		recurse = v.VisitPostfixExpression(n)
	case *BinaryExpression:
		recurse = v.VisitBinaryExpression(n)
	case *AssignmentExpression:
		recurse = v.VisitAssignmentExpression(n)
	case *TernaryExpression:
		recurse = v.VisitTernaryExpression(n)
	case *TypeCheckExpression:
		recurse = v.VisitTypeCheckExpression(n)
	case *InExpression:
		recurse = v.VisitInExpression(n)
	case *IndexExpression:
		recurse = v.VisitIndexExpression(n)
	case *Argument:
		recurse = v.VisitArgument(n)
	case *ArgumentList:
		recurse = v.VisitArgumentList(n)
	case *CallExpression:
		recurse = v.VisitCallExpression(n)
	case *PropertyAccessExpression:
		recurse = v.VisitPropertyAccessExpression(n)
	case *MethodCallExpression:
		recurse = v.VisitMethodCallExpression(n)
	case *StaticPropertyAccessExpression:
		recurse = v.VisitStaticPropertyAccessExpression(n)
	case *ClassConstantAccessExpression:
		recurse = v.VisitClassConstantAccessExpression(n)
	case *StaticMethodCallExpression:
		recurse = v.VisitStaticMethodCallExpression(n)
	case *NewExpression:
		recurse = v.VisitNewExpression(n)
	case *CloneExpression:
		recurse = v.VisitCloneExpression(n)
	case *AnonymousClassExpression:
		recurse = v.VisitAnonymousClassExpression(n)
	case *ArrowFunctionExpression:
		recurse = v.VisitArrowFunctionExpression(n)
	case *UseCapture:
		recurse = v.VisitUseCapture(n)
	case *AnonymousFunctionExpression:
		recurse = v.VisitAnonymousFunctionExpression(n)
	case *MatchArm:
		recurse = v.VisitMatchArm(n)
	case *MatchExpression:
		recurse = v.VisitMatchExpression(n)
	case *ExitExpression:
		recurse = v.VisitExitExpression(n)
	case *ThrowExpression:
		recurse = v.VisitThrowExpression(n)
	case *AsyncExpression:
		recurse = v.VisitAsyncExpression(n)
	case *AwaitExpression:
		recurse = v.VisitAwaitExpression(n)
	case *ConcurrentlyExpression:
		recurse = v.VisitConcurrentlyExpression(n)
	case *YieldExpression:
		recurse = v.VisitYieldExpression(n)
	case *IssetExpression:
		recurse = v.VisitIssetExpression(n)
	case *UnsetExpression:
		recurse = v.VisitUnsetExpression(n)

	case *BlockStatement:
		recurse = v.VisitBlockStatement(n)
	case *ExpressionStatement:
		recurse = v.VisitExpressionStatement(n)
	case *EmptyStatement:
		recurse = v.VisitEmptyStatement(n)
	case *ElseIfClause:
		recurse = v.VisitElseIfClause(n)
	case *IfStatement:
		recurse = v.VisitIfStatement(n)
	case *WhileStatement:
		recurse = v.VisitWhileStatement(n)
	case *DoWhileStatement:
		recurse = v.VisitDoWhileStatement(n)
	case *ForStatement:
		recurse = v.VisitForStatement(n)
	case *ForeachStatement:
		recurse = v.VisitForeachStatement(n)
	case *UsingBinding:
		recurse = v.VisitUsingBinding(n)
	case *UsingStatement:
		recurse = v.VisitUsingStatement(n)
	case *CatchClause:
		recurse = v.VisitCatchClause(n)
	case *TryStatement:
		recurse = v.VisitTryStatement(n)
	case *ReturnStatement:
		recurse = v.VisitReturnStatement(n)
	case *BreakStatement:
		recurse = v.VisitBreakStatement(n)
	case *ContinueStatement:
		recurse = v.VisitContinueStatement(n)

	case *Tree:
		recurse = v.VisitTree(n)
	case *Parameter:
		recurse = v.VisitParameter(n)
	case *NamespaceDefinition:
		recurse = v.VisitNamespaceDefinition(n)
	case *UseDefinition:
		recurse = v.VisitUseDefinition(n)
	case *TypeAliasDefinition:
		recurse = v.VisitTypeAliasDefinition(n)
	case *ConstantDefinition:
		recurse = v.VisitConstantDefinition(n)
	case *FunctionDefinition:
		recurse = v.VisitFunctionDefinition(n)
	case *InterfaceDefinition:
		recurse = v.VisitInterfaceDefinition(n)
	case *EnumCase:
		recurse = v.VisitEnumCase(n)
	case *EnumDefinition:
		recurse = v.VisitEnumDefinition(n)
	case *ClassDefinition:
		recurse = v.VisitClassDefinition(n)
	case *ClassConstantMember:
		recurse = v.VisitClassConstantMember(n)
	case *PropertyMember:
		recurse = v.VisitPropertyMember(n)
	case *MethodMember:
		recurse = v.VisitMethodMember(n)
	case *ConstructorMember:
		recurse = v.VisitConstructorMember(n)
	}

	if !recurse {
		return
	}
	for _, child := range node.Children() {
		Walk(v, child)
	}
}

// BaseVisitor implements Visitor with every method returning true,
// letting embedders override only the node kinds they care about.
type BaseVisitor struct{}

func (BaseVisitor) VisitIdentifier(*Identifier) bool                 { return true }
func (BaseVisitor) VisitTemplateGroup(*TemplateGroup) bool           { return true }
func (BaseVisitor) VisitTemplateParameter(*TemplateParameter) bool   { return true }
func (BaseVisitor) VisitTypeTemplateGroup(*TypeTemplateGroup) bool   { return true }
func (BaseVisitor) VisitWhereConstraint(*WhereConstraint) bool       { return true }
func (BaseVisitor) VisitAttribute(*Attribute) bool                   { return true }
func (BaseVisitor) VisitAttributeGroup(*AttributeGroup) bool         { return true }
func (BaseVisitor) VisitModifier(*Modifier) bool                     { return true }

func (BaseVisitor) VisitPrimitiveType(*PrimitiveType) bool             { return true }
func (BaseVisitor) VisitLiteralType(*LiteralType) bool                 { return true }
func (BaseVisitor) VisitNullableType(*NullableType) bool               { return true }
func (BaseVisitor) VisitUnionType(*UnionType) bool                     { return true }
func (BaseVisitor) VisitIntersectionType(*IntersectionType) bool       { return true }
func (BaseVisitor) VisitTupleType(*TupleType) bool                     { return true }
func (BaseVisitor) VisitParenthesizedType(*ParenthesizedType) bool     { return true }
func (BaseVisitor) VisitVecType(*VecType) bool                         { return true }
func (BaseVisitor) VisitDictType(*DictType) bool                       { return true }
func (BaseVisitor) VisitIterableType(*IterableType) bool               { return true }
func (BaseVisitor) VisitIdentifierType(*IdentifierType) bool           { return true }

func (BaseVisitor) VisitIntegerLiteral(*IntegerLiteral) bool                           { return true }
func (BaseVisitor) VisitFloatLiteral(*FloatLiteral) bool                               { return true }
func (BaseVisitor) VisitStringLiteral(*StringLiteral) bool                             { return true }
func (BaseVisitor) VisitBoolLiteral(*BoolLiteral) bool                                 { return true }
func (BaseVisitor) VisitNullLiteral(*NullLiteral) bool                                 { return true }
func (BaseVisitor) VisitVariable(*Variable) bool                                       { return true }
func (BaseVisitor) VisitMagicConstant(*MagicConstant) bool                             { return true }
func (BaseVisitor) VisitParenthesizedExpression(*ParenthesizedExpression) bool         { return true }
func (BaseVisitor) VisitTupleExpression(*TupleExpression) bool                         { return true }
func (BaseVisitor) VisitDictEntry(*DictEntry) bool                                     { return true }
func (BaseVisitor) VisitVecExpression(*VecExpression) bool                             { return true }
func (BaseVisitor) VisitDictExpression(*DictExpression) bool                           { return true }
func (BaseVisitor) VisitListPatternExpression(*ListPatternExpression) bool             { return true }
func (BaseVisitor) VisitPrefixExpression(*PrefixExpression) bool                       { return true }
func (BaseVisitor) VisitPostfixExpression(*PostfixExpression) bool                     { return true }
func (BaseVisitor) VisitBinaryExpression(*BinaryExpression) bool                       { return true }
func (BaseVisitor) VisitAssignmentExpression(*AssignmentExpression) bool               { return true }
func (BaseVisitor) VisitTernaryExpression(*TernaryExpression) bool                     { return true }
func (BaseVisitor) VisitTypeCheckExpression(*TypeCheckExpression) bool                 { return true }
func (BaseVisitor) VisitInExpression(*InExpression) bool                               { return true }
func (BaseVisitor) VisitIndexExpression(*IndexExpression) bool                         { return true }
func (BaseVisitor) VisitArgument(*Argument) bool                                       { return true }
func (BaseVisitor) VisitArgumentList(*ArgumentList) bool                               { return true }
func (BaseVisitor) VisitCallExpression(*CallExpression) bool                           { return true }
func (BaseVisitor) VisitPropertyAccessExpression(*PropertyAccessExpression) bool       { return true }
func (BaseVisitor) VisitMethodCallExpression(*MethodCallExpression) bool               { return true }
func (BaseVisitor) VisitStaticPropertyAccessExpression(*StaticPropertyAccessExpression) bool {
	return true
}
func (BaseVisitor) VisitClassConstantAccessExpression(*ClassConstantAccessExpression) bool {
	return true
}
func (BaseVisitor) VisitStaticMethodCallExpression(*StaticMethodCallExpression) bool { return true }
func (BaseVisitor) VisitNewExpression(*NewExpression) bool                           { return true }
func (BaseVisitor) VisitCloneExpression(*CloneExpression) bool                       { return true }
func (BaseVisitor) VisitAnonymousClassExpression(*AnonymousClassExpression) bool     { return true }
func (BaseVisitor) VisitArrowFunctionExpression(*ArrowFunctionExpression) bool       { return true }
func (BaseVisitor) VisitUseCapture(*UseCapture) bool                                 { return true }
func (BaseVisitor) VisitAnonymousFunctionExpression(*AnonymousFunctionExpression) bool {
	return true
}
func (BaseVisitor) VisitMatchArm(*MatchArm) bool                     { return true }
func (BaseVisitor) VisitMatchExpression(*MatchExpression) bool       { return true }
func (BaseVisitor) VisitExitExpression(*ExitExpression) bool         { return true }
func (BaseVisitor) VisitThrowExpression(*ThrowExpression) bool       { return true }
func (BaseVisitor) VisitAsyncExpression(*AsyncExpression) bool       { return true }
func (BaseVisitor) VisitAwaitExpression(*AwaitExpression) bool       { return true }
func (BaseVisitor) VisitConcurrentlyExpression(*ConcurrentlyExpression) bool { return true }
func (BaseVisitor) VisitYieldExpression(*YieldExpression) bool       { return true }
func (BaseVisitor) VisitIssetExpression(*IssetExpression) bool       { return true }
func (BaseVisitor) VisitUnsetExpression(*UnsetExpression) bool       { return true }

func (BaseVisitor) VisitBlockStatement(*BlockStatement) bool           { return true }
func (BaseVisitor) VisitExpressionStatement(*ExpressionStatement) bool { return true }
func (BaseVisitor) VisitEmptyStatement(*EmptyStatement) bool           { return true }
func (BaseVisitor) VisitElseIfClause(*ElseIfClause) bool               { return true }
func (BaseVisitor) VisitIfStatement(*IfStatement) bool                 { return true }
func (BaseVisitor) VisitWhileStatement(*WhileStatement) bool           { return true }
func (BaseVisitor) VisitDoWhileStatement(*DoWhileStatement) bool       { return true }
func (BaseVisitor) VisitForStatement(*ForStatement) bool               { return true }
func (BaseVisitor) VisitForeachStatement(*ForeachStatement) bool       { return true }
func (BaseVisitor) VisitUsingBinding(*UsingBinding) bool               { return true }
func (BaseVisitor) VisitUsingStatement(*UsingStatement) bool           { return true }
func (BaseVisitor) VisitCatchClause(*CatchClause) bool                 { return true }
func (BaseVisitor) VisitTryStatement(*TryStatement) bool               { return true }
func (BaseVisitor) VisitReturnStatement(*ReturnStatement) bool         { return true }
func (BaseVisitor) VisitBreakStatement(*BreakStatement) bool           { return true }
func (BaseVisitor) VisitContinueStatement(*ContinueStatement) bool     { return true }

func (BaseVisitor) VisitTree(*Tree) bool                                 { return true }
func (BaseVisitor) VisitParameter(*Parameter) bool                       { return true }
func (BaseVisitor) VisitNamespaceDefinition(*NamespaceDefinition) bool   { return true }
func (BaseVisitor) VisitUseDefinition(*UseDefinition) bool               { return true }
func (BaseVisitor) VisitTypeAliasDefinition(*TypeAliasDefinition) bool   { return true }
func (BaseVisitor) VisitConstantDefinition(*ConstantDefinition) bool     { return true }
func (BaseVisitor) VisitFunctionDefinition(*FunctionDefinition) bool     { return true }
func (BaseVisitor) VisitInterfaceDefinition(*InterfaceDefinition) bool   { return true }
func (BaseVisitor) VisitEnumCase(*EnumCase) bool                         { return true }
func (BaseVisitor) VisitEnumDefinition(*EnumDefinition) bool             { return true }
func (BaseVisitor) VisitClassDefinition(*ClassDefinition) bool           { return true }
func (BaseVisitor) VisitClassConstantMember(*ClassConstantMember) bool   { return true }
func (BaseVisitor) VisitPropertyMember(*PropertyMember) bool             { return true }
func (BaseVisitor) VisitMethodMember(*MethodMember) bool                 { return true }
func (BaseVisitor) VisitConstructorMember(*ConstructorMember) bool       { return true }
