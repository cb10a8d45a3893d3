package analysis

import (
	"fmt"
	"strings"

	"github.com/nao1215/sentinel/internal/model"
)

// UnknownFileType is the label used for files without an extension.
const UnknownFileType = "unknown"

// SystemPrompt is the fixed instruction sent with every analysis.
const SystemPrompt = `You are an expert cybersecurity analyst specializing in web application security.
Your task is to analyze the provided file content and identify actual security vulnerabilities (only report on issues that are actually present in the file - if there are none found, report that there are none found),
focusing on but not limited to:

1. Cross-Site Scripting (XSS)
2. SQL Injection
3. Cross-Site Request Forgery (CSRF)
4. Insecure Direct Object References
5. Security Misconfigurations
6. Sensitive Data Exposure
7. Broken Authentication and Session Management
8. Using Components with Known Vulnerabilities
9. Unvalidated Redirects and Forwards
10. Insecure Deserialization
11. Improperly stored secrets (API keys, passwords, etc.)
12. Other common web application vulnerabilities
13. Personally Identifiable information (PII) exposure - email addresses, names and phone numbers, and more

For each vulnerability found, provide:
- A brief description of the vulnerability
- The specific line(s) or section(s) where the vulnerability is present
- A severity rating (Low, Medium, High, Critical)
- An example of how an attacker might exploit it (to prove criticality to management)
- A suggestion for remediation

Format your response as a structured report that can be easily presented to management.`

// UserPrompt builds the user message for one file.
func UserPrompt(fileType, content string) string {
	return fmt.Sprintf("Analyze the following %s file content for security vulnerabilities:\n\n%s", fileType, content)
}

// FileType returns the file type label for name: its extension without the
// dot, or "unknown" when there is none.
func FileType(name string) string {
	_, ext := model.SplitExt(name)
	label := strings.TrimPrefix(ext, ".")
	if label == "" {
		return UnknownFileType
	}
	return label
}
