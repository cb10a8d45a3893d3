package precheck

import (
	"regexp"
	"strings"

	"github.com/nao1215/sentinel/internal/model"
)

// patternChecker runs a fixed list of patterns.
type patternChecker struct {
	name     string
	patterns []*pattern
}

func (c *patternChecker) Name() string {
	return c.name
}

func (c *patternChecker) Check(content string) []model.Finding {
	findings := make([]model.Finding, 0)
	for _, p := range c.patterns {
		findings = append(findings, p.find(content)...)
	}
	return findings
}

// NewSecretChecker detects private keys and service credentials.
func NewSecretChecker() Checker {
	return &patternChecker{
		name: "secrets",
		patterns: []*pattern{
			{
				name:        "private_key",
				title:       "Private Key Exposed",
				description: "A PEM private key block is embedded in the file. Anyone can use it to decrypt traffic or impersonate the owner.",
				severity:    model.SeverityCritical,
				re:          regexp.MustCompile(`-----BEGIN (?:RSA |EC |DSA |OPENSSH |ENCRYPTED |PGP )?PRIVATE KEY(?: BLOCK)?-----`),
				redact:      redactPEM,
			},
			{
				name:        "openai_api_key",
				title:       "OpenAI API Key Exposed",
				description: "An OpenAI API key is embedded in client-side code and can be used at the owner's expense.",
				severity:    model.SeverityCritical,
				re:          regexp.MustCompile(`\bsk-(?:proj-)?[A-Za-z0-9_-]{20,}`),
				redact:      redactKeep(8),
			},
			{
				name:        "aws_access_key",
				title:       "AWS Access Key ID Found",
				description: "An AWS access key ID is embedded in the file. Combined with a secret key it grants AWS access.",
				severity:    model.SeverityHigh,
				re:          regexp.MustCompile(`\b(?:AKIA|ABIA|ACCA|ASIA)[A-Z0-9]{16}\b`),
				redact:      redactKeep(10),
			},
			{
				name:        "aws_secret_key",
				title:       "AWS Secret Access Key Exposed",
				description: "A value assigned to an AWS secret key is embedded in the file.",
				severity:    model.SeverityCritical,
				re:          regexp.MustCompile(`(?i)aws[_\-.]?secret[_\-.]?(?:access)?[_\-.]?key[^\w]*['"][A-Za-z0-9/+=]{40}['"]`),
				redact:      redactKeep(20),
			},
			{
				name:        "github_token",
				title:       "GitHub Token Exposed",
				description: "A GitHub access token is embedded in the file and may grant repository access.",
				severity:    model.SeverityHigh,
				re:          regexp.MustCompile(`\bgh[pousr]_[A-Za-z0-9_]{36,255}`),
				redact:      redactKeep(8),
			},
			{
				name:        "stripe_secret_key",
				title:       "Stripe Secret Key Exposed",
				description: "A Stripe secret key belongs on the server only; in client code it allows charges and refunds.",
				severity:    model.SeverityCritical,
				re:          regexp.MustCompile(`\b[rs]k_live_[A-Za-z0-9]{20,}`),
				redact:      redactKeep(10),
			},
			{
				name:        "google_api_key",
				title:       "Google API Key Found",
				description: "A Google API key is embedded in the file. Check that it is restricted by referrer and API.",
				severity:    model.SeverityMedium,
				re:          regexp.MustCompile(`\bAIza[0-9A-Za-z_-]{35}\b`),
				redact:      redactKeep(10),
			},
			{
				name:        "api_key_assignment",
				title:       "Hard-coded API Key",
				description: "A long literal is assigned to something named like an API key or secret.",
				severity:    model.SeverityMedium,
				re:          regexp.MustCompile(`(?i)(?:api[_\-.]?key|apikey|client[_\-.]?secret|secret[_\-.]?key)["']?\s*[:=]\s*["'][A-Za-z0-9_\-]{20,}["']`),
				redact:      redactKeep(20),
			},
		},
	}
}

// NewCloudChecker detects cloud storage endpoints, which are worth checking
// for public listing or write access.
func NewCloudChecker() Checker {
	return &patternChecker{
		name: "cloud",
		patterns: []*pattern{
			{
				name:        "aws_s3_bucket",
				title:       "AWS S3 Bucket Referenced",
				description: "An S3 bucket URL is referenced. Verify the bucket does not allow public listing or writes.",
				severity:    model.SeverityLow,
				re:          regexp.MustCompile(`(?i)[a-z0-9][a-z0-9.-]+\.s3[.-](?:[a-z0-9-]+\.)?amazonaws\.com|s3[.-](?:[a-z0-9-]+\.)?amazonaws\.com/[a-z0-9][a-z0-9.-]+`),
			},
			{
				name:        "gcp_storage",
				title:       "Google Cloud Storage Bucket Referenced",
				description: "A Cloud Storage bucket is referenced. Verify its IAM policy.",
				severity:    model.SeverityLow,
				re:          regexp.MustCompile(`(?i)storage\.googleapis\.com/[a-z0-9][a-z0-9._-]+|[a-z0-9][a-z0-9._-]+\.storage\.googleapis\.com`),
			},
			{
				name:        "firebase_database",
				title:       "Firebase Realtime Database Referenced",
				description: "A Firebase database URL is referenced. Open security rules expose all data.",
				severity:    model.SeverityMedium,
				re:          regexp.MustCompile(`(?i)[a-z0-9-]+\.firebaseio\.com`),
			},
			{
				name:        "azure_blob",
				title:       "Azure Blob Storage Referenced",
				description: "An Azure storage account is referenced. Check container access levels and SAS tokens.",
				severity:    model.SeverityLow,
				re:          regexp.MustCompile(`(?i)[a-z0-9]+\.blob\.core\.windows\.net`),
			},
		},
	}
}

// NewEndpointChecker detects exposed API documentation and debug routes.
func NewEndpointChecker() Checker {
	return &patternChecker{
		name: "endpoints",
		patterns: []*pattern{
			{
				name:        "swagger",
				title:       "API Documentation Exposed",
				description: "Swagger or OpenAPI documentation is referenced and reveals the backend API surface.",
				severity:    model.SeverityMedium,
				re:          regexp.MustCompile(`(?i)swagger-ui|(?:swagger|openapi)\.(?:json|ya?ml)|/api-docs\b`),
			},
			{
				name:        "graphql",
				title:       "GraphQL Endpoint Referenced",
				description: "A GraphQL endpoint or IDE is referenced. Introspection may expose the schema.",
				severity:    model.SeverityLow,
				re:          regexp.MustCompile(`(?i)/graphql\b|graphiql|graphql-playground`),
			},
			{
				name:        "debug_route",
				title:       "Debug or Admin Route Referenced",
				description: "A debug, admin or actuator route is referenced in public code.",
				severity:    model.SeverityMedium,
				re:          regexp.MustCompile(`(?i)/(?:actuator(?:/[a-z]+)?|_debug|debug/pprof|phpinfo\.php|server-status|admin/)\b`),
			},
			{
				name:        "source_map",
				title:       "Source Map Referenced",
				description: "A source map is referenced; it exposes the original unminified source.",
				severity:    model.SeverityLow,
				re:          regexp.MustCompile(`//[#@] sourceMappingURL=\S+\.map`),
			},
		},
	}
}

// emailChecker detects e-mail addresses (PII).
type emailChecker struct {
	re *regexp.Regexp
}

// NewEmailChecker detects e-mail addresses. Addresses at free mail
// providers rate lower than addresses at a personal or company domain.
func NewEmailChecker() Checker {
	return &emailChecker{
		re: regexp.MustCompile(`[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`),
	}
}

func (c *emailChecker) Name() string {
	return "email"
}

// nonEmailSuffixes are "user@host.ext" shaped strings that are asset names,
// such as retina images ("logo@2x.png").
var nonEmailSuffixes = []string{".png", ".jpg", ".jpeg", ".gif", ".svg", ".webp", ".js", ".css"}

func (c *emailChecker) Check(content string) []model.Finding {
	findings := make([]model.Finding, 0)
	for _, loc := range c.re.FindAllStringIndex(content, -1) {
		email := strings.ToLower(content[loc[0]:loc[1]])
		if hasAnySuffix(email, nonEmailSuffixes) {
			continue
		}
		findings = append(findings, model.Finding{
			Check:       "email",
			Title:       "E-mail Address Found",
			Description: "An e-mail address is published in the file and can be harvested for spam or phishing.",
			Severity:    emailSeverity(email),
			Value:       email,
			Line:        lineOf(content, loc[0]),
		})
	}
	return findings
}

var freeMailProviders = map[string]bool{
	"gmail.com": true, "yahoo.com": true, "hotmail.com": true, "outlook.com": true,
	"protonmail.com": true, "proton.me": true, "aol.com": true, "icloud.com": true,
	"mail.com": true, "yandex.com": true,
}

func emailSeverity(email string) model.Severity {
	_, domain, ok := strings.Cut(email, "@")
	if !ok || freeMailProviders[domain] {
		return model.SeverityLow
	}
	return model.SeverityMedium
}

func hasAnySuffix(s string, suffixes []string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
