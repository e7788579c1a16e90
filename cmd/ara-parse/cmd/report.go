package cmd

import (
	"os"

	"github.com/ara-lang/ara-parser/pkg/diagnostic"
	"github.com/jedib0t/go-pretty/v6/table"
)

// renderReport prints one row per issue: code/severity/span/message
// (SPEC_FULL.md AMBIENT STACK, "Diagnostics rendering").
func renderReport(report *diagnostic.Report) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"SEVERITY", "CODE", "SOURCE", "SPAN", "MESSAGE"})
	for _, issue := range report.Issues {
		t.AppendRow(table.Row{issue.Severity, issue.Code, issue.SourceName, issue.Start, issue.Message})
	}
	t.Render()
}
