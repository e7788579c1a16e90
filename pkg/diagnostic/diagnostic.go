// Package diagnostic implements the Issue/Report model (spec.md §4.10): a
// stable numeric code family, human-readable message, primary span and
// secondary annotations, and severity. Lexer codes use the L-prefix,
// parser codes the P-prefix, matching spec.md §6's "L0001+"/"P0000+"
// families.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/ara-lang/ara-parser/pkg/token"
)

// Severity classifies how an Issue should be treated by a renderer and by
// the parser's own accumulate-vs-abort policy.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityNote
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityNote:
		return "note"
	default:
		return "unknown"
	}
}

// Code is a stable, documented diagnostic identifier, e.g. "L0001" or "P0042".
type Code string

// Lexer codes.
const (
	LUnclosedStringLiteral       Code = "L0001"
	LInvalidUnicodeEscape        Code = "L0002"
	LInvalidOctalEscape          Code = "L0003"
	LUnrecognizableToken         Code = "L0004"
)

// Parser codes.
const (
	PUnexpectedToken                      Code = "P0000"
	PMissingDefinitionAfterAttributes      Code = "P0001"
	PMissingExpressionAfterAttributes      Code = "P0002"
	POpenCloseTagPresent                   Code = "P0003"
	PDnfNesting                            Code = "P0004"
	PEmptyTemplateGroup                    Code = "P0005"
	PNonAssociativeOperatorReuse           Code = "P0006"
	PModifierNotAllowed                    Code = "P0007"
	PDuplicateModifier                     Code = "P0008"
	PMultipleVisibilityModifiers           Code = "P0009"
	PPrivateFinalConstant                  Code = "P0010"
	PReadonlyPropertyHasDefault            Code = "P0011"
	PReadonlyStatic                        Code = "P0012"
	PBottomTypeInTuple                     Code = "P0013"
	PBottomTypePropertyType                Code = "P0014"
	PStandaloneTypeInUnion                 Code = "P0015"
	PScalarOrStandaloneTypeInIntersection  Code = "P0016"
	PNullableWrapsStandalone               Code = "P0017"
	PReservedKeywordForTypeName            Code = "P0018"
	PReservedKeywordForConstantName        Code = "P0019"
	PUnitEnumCaseHasValue                  Code = "P0020"
	PBackedEnumCaseMissingValue            Code = "P0021"
	PInvalidEnumBackingType                Code = "P0022"
	PTypeNotUsableInContext                Code = "P0023"
	PNonConstantInitializer                Code = "P0024"
	PNonConstantAttributeArgument          Code = "P0025"
	PUnreachableCode                       Code = "P0026"
	PExpectedClosingGeneric                Code = "P0027"
	PTryWithoutCatchOrFinally              Code = "P0028"
)

// Annotation is a secondary span attached to an Issue, used to point at
// related locations (e.g. the opening brace of an unterminated block).
type Annotation struct {
	Message string
	Span    token.Span
}

// Issue is one accumulated or fatal diagnostic.
type Issue struct {
	Code        Code
	Message     string
	SourceName  string
	Start       token.Span
	End         token.Span
	Annotations []Annotation
	Severity    Severity
}

func (i Issue) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s [%s] %s:%s", i.Severity, i.Code, i.SourceName, i.Start, i.Message)
	return b.String()
}

// Report bundles the issues accumulated (and, on a fatal abort, the fatal
// issue that ended the unit) for one source, or several concatenated for
// a source map (spec.md §4.10).
type Report struct {
	Issues []Issue
}

func (r *Report) Add(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// HasErrors reports whether any accumulated issue is an error.
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Merge concatenates another report's issues onto r, preserving order.
func (r *Report) Merge(other *Report) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}
