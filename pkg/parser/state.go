package parser

import (
	"github.com/ara-lang/ara-parser/pkg/ast"
	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/ara-lang/ara-parser/pkg/token"
)

// state is the mutable context shared by every parsing function (spec.md
// §4.4): the token iterator, accumulated non-fatal issues, pending
// attribute groups awaiting a definition/expression to attach to, the
// current namespace (if any), and the single "ignored right-shift" slot
// used to reconcile `>>` while closing nested generics (§4.6/§4.7).
type state struct {
	it         *TokenIterator
	sourceName string

	issues []diagnostic.Issue
	fatal  *diagnostic.Issue

	pendingAttributes []*ast.AttributeGroup
	namespace         *ast.Identifier

	ignoredShiftAt *token.Token
}

func newState(sourceName string, tokens []token.Token) *state {
	return &state{it: NewTokenIterator(tokens), sourceName: sourceName}
}

// record accumulates a non-fatal issue; parsing continues afterward.
func (s *state) record(issue diagnostic.Issue) {
	s.issues = append(s.issues, issue)
}

// bail records a fatal issue and folds every accumulated issue plus this
// one into a Report, which the caller returns immediately (spec.md §4.4,
// §7's "parser_bail!").
func (s *state) bail(issue diagnostic.Issue) *diagnostic.Report {
	s.fatal = &issue
	report := &diagnostic.Report{}
	report.Issues = append(report.Issues, s.issues...)
	report.Add(issue)
	return report
}

// attribute stages one freshly parsed attribute group, to be claimed by
// the next definition or function-like expression it attaches to.
func (s *state) attribute(group *ast.AttributeGroup) {
	s.pendingAttributes = append(s.pendingAttributes, group)
}

// takeAttributes atomically drains and returns the staged attribute
// groups (testable property 4: attribute attachment).
func (s *state) takeAttributes() []*ast.AttributeGroup {
	out := s.pendingAttributes
	s.pendingAttributes = nil
	return out
}

// named prefixes value with the current namespace (using `\` as
// separator) when one has been established (spec.md §4.4).
func (s *state) named(value string) string {
	if s.namespace == nil || s.namespace.Value == "" {
		return value
	}
	return s.namespace.Value + `\` + value
}
