package ast

import (
	"testing"

	"github.com/ara-lang/ara-parser/pkg/token"
	"github.com/stretchr/testify/require"
)

type countingVisitor struct {
	BaseVisitor
	blocks int
}

func (v *countingVisitor) VisitBlockStatement(*BlockStatement) bool {
	v.blocks++
	return true
}

func TestWalkRecursesIntoForeachElseBranch(t *testing.T) {
	body := &BlockStatement{}
	elseBranch := &BlockStatement{}
	stmt := &ForeachStatement{
		Expression: &Variable{Name: "xs"},
		Value:      &Variable{Name: "x"},
		Body:       body,
		Else:       elseBranch,
	}

	v := &countingVisitor{}
	Walk(v, stmt)

	require.Equal(t, 2, v.blocks, "Walk should visit both the main and else blocks")
}

func TestWalkSkipsNilForeachElse(t *testing.T) {
	stmt := &ForeachStatement{
		Expression: &Variable{Name: "xs"},
		Value:      &Variable{Name: "x"},
		Body:       &BlockStatement{},
	}

	v := &countingVisitor{}
	Walk(v, stmt)

	require.Equal(t, 1, v.blocks)
}

func TestReturnStatementImplicitDefaultsFalse(t *testing.T) {
	explicit := &ReturnStatement{Value: &IntegerLiteral{Value: "1"}}
	require.False(t, explicit.Implicit)

	implicit := &ReturnStatement{Value: &IntegerLiteral{Value: "1"}, Implicit: true}
	require.True(t, implicit.Implicit)
	require.Len(t, implicit.Children(), 1)
}

func TestPosInitialFinalPosition(t *testing.T) {
	start := token.Span{Line: 1, Column: 1}
	end := token.Span{Line: 1, Column: 5}
	node := &EmptyStatement{Pos: Pos{Initial: start, Final: end}}

	require.Equal(t, start, node.InitialPosition())
	require.Equal(t, end, node.FinalPosition())
}
