package precheck

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/nao1215/sentinel/internal/model"
)

// Checker is one family of local checks.
type Checker interface {
	// Name returns the checker name for logging.
	Name() string

	// Check returns the findings in content.
	Check(content string) []model.Finding
}

// Scanner runs a set of checkers.
type Scanner struct {
	checkers []Checker
}

// NewScanner creates a Scanner with every built-in checker registered.
func NewScanner() *Scanner {
	s := &Scanner{checkers: make([]Checker, 0)}
	s.Register(NewSecretChecker())
	s.Register(NewEmailChecker())
	s.Register(NewCloudChecker())
	s.Register(NewEndpointChecker())
	return s
}

// Register adds a checker.
func (s *Scanner) Register(c Checker) {
	s.checkers = append(s.checkers, c)
}

// Scan runs every checker on content. Findings are deduplicated by check
// and value and ordered by severity (highest first), then by line.
func (s *Scanner) Scan(ctx context.Context, content string) ([]model.Finding, error) {
	all := make([]model.Finding, 0)
	for _, c := range s.checkers {
		if err := ctx.Err(); err != nil {
			return all, err
		}
		all = append(all, c.Check(content)...)
	}

	all = deduplicate(all)
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Severity != all[j].Severity {
			return all[i].Severity > all[j].Severity
		}
		return all[i].Line < all[j].Line
	})
	return all, nil
}

// deduplicate keeps the first occurrence of each check and value.
func deduplicate(findings []model.Finding) []model.Finding {
	seen := make(map[string]bool, len(findings))
	result := make([]model.Finding, 0, len(findings))
	for _, f := range findings {
		key := f.Check + "|" + f.Value
		if seen[key] {
			continue
		}
		seen[key] = true
		result = append(result, f)
	}
	return result
}

// pattern is a single regular-expression check.
type pattern struct {
	name        string
	title       string
	description string
	severity    model.Severity
	re          *regexp.Regexp
	redact      func(string) string
}

// maxMatchesPerPattern bounds the findings of one pattern in one file.
const maxMatchesPerPattern = 5

// find returns a finding per distinct match of p, at most
// maxMatchesPerPattern.
func (p *pattern) find(content string) []model.Finding {
	locs := p.re.FindAllStringIndex(content, maxMatchesPerPattern)
	findings := make([]model.Finding, 0, len(locs))
	for _, loc := range locs {
		value := content[loc[0]:loc[1]]
		if p.redact != nil {
			value = p.redact(value)
		}
		findings = append(findings, model.Finding{
			Check:       p.name,
			Title:       p.title,
			Description: p.description,
			Severity:    p.severity,
			Value:       value,
			Line:        lineOf(content, loc[0]),
		})
	}
	return findings
}

// lineOf returns the 1-based line containing byte offset off.
func lineOf(content string, off int) int {
	return strings.Count(content[:off], "\n") + 1
}

// redactKeep returns a redactor that keeps the first n characters.
func redactKeep(n int) func(string) string {
	return func(v string) string {
		if len(v) <= n {
			return v
		}
		return v[:n] + "...[REDACTED]"
	}
}

// redactPEM keeps only the PEM header line.
func redactPEM(v string) string {
	if i := strings.IndexByte(v, '\n'); i >= 0 {
		v = v[:i]
	}
	return v + "..."
}
