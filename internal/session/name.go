package session

import (
	"fmt"
	"net/url"
	"strings"
)

// EnsureScheme prefixes raw with "https://" unless it already carries an
// http or https scheme. Surrounding whitespace is removed.
func EnsureScheme(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "http://") || strings.HasPrefix(raw, "https://") {
		return raw
	}
	return "https://" + raw
}

// DirectoryName derives the session identifier for rawURL.
//
// The host is split on dots. With more than two labels the leading
// (subdomain) labels are joined by "_" and followed by the second-level and
// top-level labels; otherwise the first label is the domain and the second,
// if any, the top-level label. A non-empty path is appended with its slashes
// turned into underscores and leading/trailing slashes dropped:
//
//	https://blog.example.com/posts/2024 -> blog_example_com_posts_2024
//	https://example.com                 -> example_com
//
// The path is used in its escaped form; no percent-decoding or other
// sanitization takes place. The result depends only on rawURL.
func DirectoryName(rawURL string) (string, error) {
	u, err := url.Parse(EnsureScheme(rawURL))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("%w: %q has no host", ErrInvalidURL, rawURL)
	}

	labels := strings.Split(u.Host, ".")

	var name string
	if len(labels) > 2 {
		subdomains := labels[:len(labels)-2]
		domain := labels[len(labels)-2]
		tld := labels[len(labels)-1]
		name = strings.Join(subdomains, "_") + "_" + domain + "_" + tld
	} else {
		domain := labels[0]
		tld := ""
		if len(labels) > 1 {
			tld = labels[1]
		}
		name = domain + "_" + tld
	}

	path := strings.ReplaceAll(strings.Trim(u.EscapedPath(), "/"), "/", "_")
	if path != "" {
		name += "_" + path
	}

	return name, nil
}
