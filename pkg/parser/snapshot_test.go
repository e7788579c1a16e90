package parser_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ara-lang/ara-parser/internal/source"
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/lexer"
	"github.com/ara-lang/ara-parser/pkg/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

// dumpTree renders a tree as an indented node-kind outline, giving a
// stable, reviewable artifact for the golden tests below instead of
// comparing byte-for-byte against the tree's internal Go representation.
func dumpTree(roots []ast.Definition) string {
	var b strings.Builder
	var walk func(n ast.Node, depth int)
	walk = func(n ast.Node, depth int) {
		if n == nil {
			return
		}
		fmt.Fprintf(&b, "%s%T\n", strings.Repeat("  ", depth), n)
		for _, c := range n.Children() {
			walk(c, depth+1)
		}
	}
	for _, d := range roots {
		walk(d, 0)
	}
	return b.String()
}

func dumpTokens(src string) string {
	l := lexer.New("snapshot.ara", []byte(src))
	tokens, fatal := l.Tokenize()
	if fatal != nil {
		return "fatal: " + fatal.Message
	}
	var b strings.Builder
	for _, tok := range tokens {
		fmt.Fprintf(&b, "%s %q\n", tok.Kind, tok.Value)
	}
	return b.String()
}

func TestSnapshotClassWithPromotedConstructorTree(t *testing.T) {
	const src = `
class Point {
	public function __construct(
		public readonly int $x,
		public readonly int $y,
	) {}

	public function length(): float {
		return 0.0;
	}
}
`
	tree := mustParse(t, src)
	snaps.MatchSnapshot(t, dumpTree(tree.Definitions))
	snaps.MatchSnapshot(t, dumpTokens(src))
}

func TestSnapshotGenericFunctionWithWhereConstraintTree(t *testing.T) {
	const src = `
function first<T>(vec<T> $items): T where T is Comparable {
	return $items[0];
}
`
	tree := mustParse(t, src)
	snaps.MatchSnapshot(t, dumpTree(tree.Definitions))
	snaps.MatchSnapshot(t, dumpTokens(src))
}

func TestSnapshotBackedEnumTokens(t *testing.T) {
	const src = `
enum Suit: string {
	case Hearts = "hearts";
	case Spades = "spades";
}
`
	tree := mustParse(t, src)
	snaps.MatchSnapshot(t, dumpTree(tree.Definitions))
	snaps.MatchSnapshot(t, dumpTokens(src))
}
