package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/sentinel/internal/model"
)

// render builds the report document: header table, then the verdict.
func render(h Header, verdict string, generated time.Time) ([]byte, error) {
	var buf bytes.Buffer
	md := markdown.NewMarkdown(&buf)

	md.H1("Security report: " + h.FileName)
	md.PlainText("")

	rows := [][]string{
		{"File", "`" + h.FileName + "`"},
		{"File type", h.FileType},
		{"Session", "`" + h.SessionID + "`"},
	}
	if h.Model != "" {
		rows = append(rows, []string{"Model", h.Model})
	}
	if h.Tokens > 0 {
		rows = append(rows, []string{"Tokens", strconv.Itoa(h.Tokens)})
	}
	rows = append(rows, []string{"Generated", generated.Format("2006-01-02 15:04:05 MST")})

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	if len(h.Findings) > 0 {
		renderFindings(md, h.Findings)
	}

	md.HorizontalRule()
	md.PlainText("")

	if err := md.Build(); err != nil {
		return nil, fmt.Errorf("failed to render report header: %w", err)
	}

	buf.WriteString(verdict)
	if len(verdict) == 0 || verdict[len(verdict)-1] != '\n' {
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// renderFindings adds the local check results.
func renderFindings(md *markdown.Markdown, findings []model.Finding) {
	md.H2("Local checks")
	md.PlainText("")

	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{
			f.Severity.String(),
			f.Title,
			strconv.Itoa(f.Line),
			"`" + f.Value + "`",
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Check", "Line", "Match"},
		Rows:   rows,
	})
	md.PlainText("")

	counts := countBySeverity(findings)
	if len(counts) > 1 {
		renderSeverityChart(md, counts)
	}

	switch {
	case counts[model.SeverityCritical] > 0:
		md.Cautionf("%d critical local finding(s). Rotate any exposed credential.", counts[model.SeverityCritical])
	case counts[model.SeverityHigh] > 0:
		md.Warningf("%d high severity local finding(s).", counts[model.SeverityHigh])
	default:
		md.Note("Local checks are pattern matches and may include false positives.")
	}
	md.PlainText("")
}

func countBySeverity(findings []model.Finding) map[model.Severity]int {
	counts := make(map[model.Severity]int)
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}

// renderSeverityChart adds a mermaid pie chart of findings per severity.
func renderSeverityChart(md *markdown.Markdown, counts map[model.Severity]int) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Local findings by severity"),
		piechart.WithShowData(true),
	)
	for _, sev := range []model.Severity{model.SeverityCritical, model.SeverityHigh, model.SeverityMedium, model.SeverityLow} {
		if n := counts[sev]; n > 0 {
			chart.LabelAndIntValue(sev.String(), uint64(n))
		}
	}
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}
