package parser

import (
	"fmt"

	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/lexer"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// Source is the external collaborator the parser consumes: a name (for
// diagnostics) and a byte-indexable content view (spec.md §3, §6).
type Source interface {
	Name() string
	Content() []byte
}

// SourceMap is an ordered collection of Sources, parsed one at a time by
// ParseMap (spec.md §4.10: "any source yielding a report aborts the whole
// map parse with a concatenated Report").
type SourceMap interface {
	Sources() []Source
}

// Tree is the successful parse result of one source unit.
type Tree = ast.Tree

// Parser holds the cursor-adjacent convenience fields (curToken/peekToken,
// in the classic recursive-descent idiom the teacher's headless parser
// files assume) over the shared *state record (spec.md §4.4).
type Parser struct {
	*state
	curToken  token.Token
	peekToken token.Token
}

func newParser(sourceName string, tokens []token.Token) *Parser {
	p := &Parser{state: newState(sourceName, tokens)}
	p.refresh()
	return p
}

func (p *Parser) refresh() {
	p.curToken = p.it.Current()
	p.peekToken = p.it.Lookahead(1)
}

func (p *Parser) nextToken() {
	p.it.Next()
	p.refresh()
}

func (p *Parser) curTokenIs(kind token.Kind) bool  { return p.curToken.Kind == kind }
func (p *Parser) peekTokenIs(kind token.Kind) bool { return p.peekToken.Kind == kind }

// expectPeek advances past peekToken when it matches kind, returning true;
// otherwise it records an unexpected-token issue and returns false without
// advancing, letting the caller decide how to recover.
func (p *Parser) expectPeek(kind token.Kind) bool {
	if p.peekTokenIs(kind) {
		p.nextToken()
		return true
	}
	p.unexpectedToken(kind)
	return false
}

func (p *Parser) unexpectedToken(expected ...token.Kind) {
	msg := fmt.Sprintf("unexpected token %s", p.peekToken.Kind)
	if len(expected) > 0 {
		msg = fmt.Sprintf("%s, expected one of %v", msg, expected)
	}
	p.record(diagnostic.Issue{
		Code:       diagnostic.PUnexpectedToken,
		Message:    msg,
		SourceName: p.sourceName,
		Start:      p.peekToken.Span,
		End:        p.peekToken.Span,
		Severity:   diagnostic.SeverityError,
	})
}

// unexpectedCurrentToken is unexpectedToken's counterpart for callers that
// have not yet consumed the bad token (curToken, not peekToken, holds it) —
// the common case once a sub-parser has already advanced past the
// construct that determined what should come next.
func (p *Parser) unexpectedCurrentToken(expected ...token.Kind) {
	msg := fmt.Sprintf("unexpected token %s", p.curToken.Kind)
	if len(expected) > 0 {
		msg = fmt.Sprintf("%s, expected one of %v", msg, expected)
	}
	p.record(diagnostic.Issue{
		Code:       diagnostic.PUnexpectedToken,
		Message:    msg,
		SourceName: p.sourceName,
		Start:      p.curToken.Span,
		End:        p.curToken.Span,
		Severity:   diagnostic.SeverityError,
	})
}

// startPos captures the current token's span as a node's initial position.
func (p *Parser) startPos() token.Span { return p.curToken.Span }

// finishPos returns the previously consumed token's span as a node's final
// position: the parser always calls this immediately after the last token
// belonging to the node has been consumed via nextToken/expectPeek.
func (p *Parser) finishPos() token.Span { return p.it.Previous().Span }

func (p *Parser) pos(start token.Span) ast.Pos {
	return ast.Pos{Initial: start, Final: p.finishPos()}
}

// Parse runs the full pipeline (lex, then recursive-descent/Pratt parse)
// over one source. It returns the best-effort Tree together with a Report
// of every accumulated issue (nil when there were none); the parser keeps
// going after a non-fatal issue rather than discarding the tree it has
// built so far (spec.md §4.10, §7, and end-to-end scenarios S3/S4, which
// both expect a tree *and* issues out of the same parse). Tree is nil only
// on a fatal lexer error: no parser production calls state.bail, so once
// lexing succeeds a tree is always returned.
func Parse(src Source) (*Tree, *diagnostic.Report) {
	lx := lexer.New(src.Name(), src.Content())
	tokens, fatal := lx.Tokenize()
	if fatal != nil {
		report := &diagnostic.Report{}
		report.Add(*fatal)
		return nil, report
	}

	p := newParser(src.Name(), tokens)
	tree, report := p.parseTree()
	if report != nil {
		return nil, report
	}
	if len(p.issues) > 0 {
		return tree, &diagnostic.Report{Issues: p.issues}
	}
	return tree, nil
}

// TreeMap is the successful result of ParseMap: one Tree per Source, in
// input order.
type TreeMap struct {
	Trees []*Tree
}

// ParseMap parses every Source in m in order. If any source yields a
// report, it returns no TreeMap and the reports of all failing sources
// concatenated (spec.md §4.10).
func ParseMap(m SourceMap) (*TreeMap, *diagnostic.Report) {
	out := &TreeMap{}
	combined := &diagnostic.Report{}
	failed := false
	for _, src := range m.Sources() {
		tree, report := Parse(src)
		if report != nil {
			combined.Merge(report)
			failed = true
			continue
		}
		out.Trees = append(out.Trees, tree)
	}
	if failed {
		return nil, combined
	}
	return out, nil
}
