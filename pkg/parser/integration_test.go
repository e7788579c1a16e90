package parser_test

import (
	"testing"

	"github.com/ara-lang/ara-parser/internal/source"
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/parser"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *ast.Tree {
	t.Helper()
	tree, report := parser.Parse(source.NewFromString("test.ara", src))
	if report != nil {
		for _, issue := range report.Issues {
			t.Logf("issue: %s", issue)
		}
	}
	require.Nil(t, report, "expected no diagnostic report")
	require.NotNil(t, tree)
	return tree
}

func TestParseEmptySourceProducesEmptyTree(t *testing.T) {
	tree := mustParse(t, "")
	require.Empty(t, tree.Definitions)
}

func TestParseSimpleFunction(t *testing.T) {
	tree := mustParse(t, `
function add(int $a, int $b): int {
	return $a + $b;
}
`)
	require.Len(t, tree.Definitions, 1)
	fn, ok := tree.Definitions[0].(*ast.FunctionDefinition)
	require.True(t, ok, "expected *ast.FunctionDefinition, got %T", tree.Definitions[0])
	require.Equal(t, "add", fn.Name.Value)
	require.Len(t, fn.Parameters, 2)
	require.NotNil(t, fn.Body)
	require.Len(t, fn.Body.Statements, 1)

	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.False(t, ret.Implicit)
	require.NotNil(t, ret.Value)
}

func TestParseImplicitReturn(t *testing.T) {
	tree := mustParse(t, `
function double(int $x): int {
	$x * 2
}
`)
	fn := tree.Definitions[0].(*ast.FunctionDefinition)
	require.Len(t, fn.Body.Statements, 1)
	ret, ok := fn.Body.Statements[0].(*ast.ReturnStatement)
	require.True(t, ok)
	require.True(t, ret.Implicit)
}

func TestParseClassWithPromotedConstructor(t *testing.T) {
	tree := mustParse(t, `
class Point {
	public function __construct(
		public readonly int $x,
		public readonly int $y,
	) {}

	public function length(): float {
		return 0.0;
	}
}
`)
	require.Len(t, tree.Definitions, 1)
	class, ok := tree.Definitions[0].(*ast.ClassDefinition)
	require.True(t, ok)
	require.Equal(t, "Point", class.Name.Value)
	require.Len(t, class.Members, 2)

	ctor, ok := class.Members[0].(*ast.ConstructorMember)
	require.True(t, ok, "expected *ast.ConstructorMember, got %T", class.Members[0])
	require.Len(t, ctor.Parameters, 2)
	require.NotEmpty(t, ctor.Parameters[0].Promote)

	method, ok := class.Members[1].(*ast.MethodMember)
	require.True(t, ok)
	require.Equal(t, "length", method.Name.Value)
}

func TestParseAbstractClassWithAbstractMethod(t *testing.T) {
	tree := mustParse(t, `
abstract class Shape {
	abstract public function area(): float;
}
`)
	class := tree.Definitions[0].(*ast.ClassDefinition)
	require.Len(t, class.Modifiers, 1)
	require.Equal(t, "abstract", class.Modifiers[0].Name)

	method := class.Members[0].(*ast.MethodMember)
	require.Nil(t, method.Body)
}

func TestParseBackedEnum(t *testing.T) {
	tree := mustParse(t, `
enum Suit: string {
	case Hearts = "hearts";
	case Spades = "spades";
}
`)
	enum, ok := tree.Definitions[0].(*ast.EnumDefinition)
	require.True(t, ok)
	require.NotNil(t, enum.BackingType)
	require.Len(t, enum.Members, 2)

	first, ok := enum.Members[0].(*ast.EnumCase)
	require.True(t, ok)
	require.Equal(t, "Hearts", first.Name.Value)
	require.NotNil(t, first.Value)
}

func TestParseUnitEnum(t *testing.T) {
	tree := mustParse(t, `
enum Direction {
	case North;
	case South;
}
`)
	enum := tree.Definitions[0].(*ast.EnumDefinition)
	require.Nil(t, enum.BackingType)
	for _, m := range enum.Members {
		c := m.(*ast.EnumCase)
		require.Nil(t, c.Value)
	}
}

func TestParseBackedEnumWithInvalidBackingTypeDefaultsToStringAndDiagnoses(t *testing.T) {
	tree, report := parser.Parse(source.NewFromString("test.ara", `
enum Foo: float {
	case Bar = 1;
}
`))
	require.NotNil(t, tree, "a best-effort tree is still produced alongside the diagnostic")
	require.NotNil(t, report)
	require.Len(t, report.Issues, 1)
	require.Equal(t, diagnostic.PInvalidEnumBackingType, report.Issues[0].Code)

	enum := tree.Definitions[0].(*ast.EnumDefinition)
	backing, ok := enum.BackingType.(*ast.PrimitiveType)
	require.True(t, ok)
	require.Equal(t, ast.PrimitiveString, backing.Kind)
	require.Len(t, enum.Members, 1)
}

func TestParseUnitEnumCaseWithValueIsDroppedAndDiagnosed(t *testing.T) {
	tree, report := parser.Parse(source.NewFromString("test.ara", `
enum Color {
	case Red = 1;
}
`))
	require.NotNil(t, tree)
	require.NotNil(t, report)
	require.Len(t, report.Issues, 1)
	require.Equal(t, diagnostic.PUnitEnumCaseHasValue, report.Issues[0].Code)

	enum := tree.Definitions[0].(*ast.EnumDefinition)
	require.Empty(t, enum.Members, "the dead unit-enum case is not emitted into the tree")
}

func TestParseInterfaceWithMethodSignature(t *testing.T) {
	tree := mustParse(t, `
interface Comparable {
	public function compareTo(self $other): int;
}
`)
	iface, ok := tree.Definitions[0].(*ast.InterfaceDefinition)
	require.True(t, ok)
	require.Equal(t, "Comparable", iface.Name.Value)
	require.Len(t, iface.Members, 1)

	method := iface.Members[0].(*ast.MethodMember)
	require.Nil(t, method.Body)
}

func TestParseNamespaceUseConstAndTypeAlias(t *testing.T) {
	tree := mustParse(t, `
namespace App\Models;

use App\Support\Helper as H;
use function App\Support\helper_fn;
use const App\Support\VERSION;

const MAX: int = 100;

type IntList = vec<int>;
`)
	require.Len(t, tree.Definitions, 1)
	ns, ok := tree.Definitions[0].(*ast.NamespaceDefinition)
	require.True(t, ok)
	require.Equal(t, `App\Models`, ns.Name.Value)

	var kinds []ast.UseKind
	var sawConst, sawAlias bool
	for _, def := range ns.Definitions {
		switch d := def.(type) {
		case *ast.UseDefinition:
			kinds = append(kinds, d.Kind)
		case *ast.ConstantDefinition:
			sawConst = true
			require.Equal(t, "MAX", d.Name.Value)
		case *ast.TypeAliasDefinition:
			sawAlias = true
			require.Equal(t, "IntList", d.Name.Value)
		}
	}
	require.Equal(t, []ast.UseKind{ast.UseDefault, ast.UseFunction, ast.UseConstant}, kinds)
	require.True(t, sawConst)
	require.True(t, sawAlias)
}

func TestParseIfElseIfElse(t *testing.T) {
	tree := mustParse(t, `
function classify(int $x): string {
	if ($x > 0) {
		return "positive";
	} elseif ($x < 0) {
		return "negative";
	} else {
		return "zero";
	}
}
`)
	fn := tree.Definitions[0].(*ast.FunctionDefinition)
	ifStmt, ok := fn.Body.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	require.Len(t, ifStmt.ElseIfs, 1)
	require.NotNil(t, ifStmt.Else)
}

func TestParseForeachWithElseBranch(t *testing.T) {
	tree := mustParse(t, `
function sumOrZero(vec<int> $xs): int {
	foreach ($xs as $x) {
		return $x;
	} else {
		return 0;
	}
}
`)
	fn := tree.Definitions[0].(*ast.FunctionDefinition)
	foreach, ok := fn.Body.Statements[0].(*ast.ForeachStatement)
	require.True(t, ok)
	require.NotNil(t, foreach.Else)
	require.Len(t, foreach.Else.Statements, 1)
}

func TestParseUsingStatement(t *testing.T) {
	tree := mustParse(t, `
function run(): void {
	using $f = open("x") {
		close($f);
	}
}
`)
	fn := tree.Definitions[0].(*ast.FunctionDefinition)
	using, ok := fn.Body.Statements[0].(*ast.UsingStatement)
	require.True(t, ok)
	require.Len(t, using.Bindings, 1)
	require.Equal(t, "$f", using.Bindings[0].Variable.Name)
}

func TestParseTryWithoutCatchOrFinallyDiagnoses(t *testing.T) {
	_, report := parser.Parse(source.NewFromString("test.ara", `
function run(): void {
	try {
		doSomething();
	}
}
`))
	require.NotNil(t, report)
	require.True(t, report.HasErrors())
}

func TestParseMatchExpression(t *testing.T) {
	tree := mustParse(t, `
function describe(int $x): string {
	return match ($x) {
		0 => "zero",
		1, 2 => "small",
		default => "large",
	};
}
`)
	fn := tree.Definitions[0].(*ast.FunctionDefinition)
	ret := fn.Body.Statements[0].(*ast.ReturnStatement)
	match, ok := ret.Value.(*ast.MatchExpression)
	require.True(t, ok)
	require.Len(t, match.Arms, 3)
	require.True(t, match.Arms[2].IsDefault)
}

func TestParseAttributeOnClass(t *testing.T) {
	tree := mustParse(t, `
#[Entity]
#[Table("users")]
class User {
	#[Column]
	public $name: string;
}
`)
	class, ok := tree.Definitions[0].(*ast.ClassDefinition)
	require.True(t, ok)
	require.Len(t, class.Attributes, 2)
	require.Len(t, class.Attributes[0].Attributes, 1)
	require.Equal(t, "Entity", class.Attributes[0].Attributes[0].Name.Value)
	require.Equal(t, "Table", class.Attributes[1].Attributes[0].Name.Value)
	require.Len(t, class.Attributes[1].Attributes[0].Arguments, 1)

	prop, ok := class.Members[0].(*ast.PropertyMember)
	require.True(t, ok)
	require.Len(t, prop.Attributes, 1)
	require.Equal(t, "Column", prop.Attributes[0].Attributes[0].Name.Value)
}
