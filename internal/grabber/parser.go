package grabber

import (
	"io"
	"net/url"
	"strings"

	"golang.org/x/net/html"
)

// AssetKind tells stylesheets and scripts apart.
type AssetKind int

const (
	// AssetStylesheet is a <link rel="stylesheet" href="..."> target.
	AssetStylesheet AssetKind = iota

	// AssetScript is a <script src="..."> target.
	AssetScript
)

// String returns the label shown to the operator.
func (k AssetKind) String() string {
	switch k {
	case AssetStylesheet:
		return "CSS"
	case AssetScript:
		return "JS"
	default:
		return "UNKNOWN"
	}
}

// AssetRef is a resolved reference to a linked asset.
type AssetRef struct {
	Kind AssetKind
	URL  string
}

// Parser extracts asset references from an HTML document.
type Parser struct {
	// baseURL is the URL of the page being parsed, used for resolving relative URLs.
	baseURL *url.URL
}

// ParseResult contains the information extracted from a page.
type ParseResult struct {
	// Title is the page title from the <title> tag.
	Title string

	// Stylesheets are the resolved hrefs of stylesheet links, in document order.
	Stylesheets []string

	// Scripts are the resolved srcs of script elements, in document order.
	Scripts []string
}

// Assets returns stylesheets first, then scripts.
func (r *ParseResult) Assets() []AssetRef {
	refs := make([]AssetRef, 0, len(r.Stylesheets)+len(r.Scripts))
	for _, u := range r.Stylesheets {
		refs = append(refs, AssetRef{Kind: AssetStylesheet, URL: u})
	}
	for _, u := range r.Scripts {
		refs = append(refs, AssetRef{Kind: AssetScript, URL: u})
	}
	return refs
}

// NewParser creates a new HTML parser with the given base URL.
func NewParser(baseURL string) (*Parser, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &Parser{baseURL: u}, nil
}

// Parse parses HTML content and extracts asset references.
func (p *Parser) Parse(content io.Reader) (*ParseResult, error) {
	doc, err := html.Parse(content)
	if err != nil {
		return nil, err
	}
	return p.ParseDocument(doc), nil
}

// ParseDocument walks an already parsed document.
func (p *Parser) ParseDocument(doc *html.Node) *ParseResult {
	result := &ParseResult{
		Stylesheets: make([]string, 0),
		Scripts:     make([]string, 0),
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			p.processElement(n, result)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return result
}

// processElement handles HTML element nodes.
func (p *Parser) processElement(n *html.Node, result *ParseResult) {
	switch n.Data {
	case "title":
		if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
			result.Title = strings.TrimSpace(n.FirstChild.Data)
		}

	case "link":
		if !hasRelToken(getAttr(n, "rel"), "stylesheet") {
			return
		}
		if resolved := p.resolveURL(getAttr(n, "href")); resolved != "" {
			result.Stylesheets = append(result.Stylesheets, resolved)
		}

	case "script":
		if resolved := p.resolveURL(getAttr(n, "src")); resolved != "" {
			result.Scripts = append(result.Scripts, resolved)
		}
	}
}

// hasRelToken reports whether the space separated rel value contains token.
func hasRelToken(rel, token string) bool {
	for _, field := range strings.Fields(rel) {
		if strings.EqualFold(field, token) {
			return true
		}
	}
	return false
}

// resolveURL resolves a relative URL against the base URL.
// It returns "" for values that cannot be fetched over HTTP.
func (p *Parser) resolveURL(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" {
		return ""
	}

	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "javascript:") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") ||
		strings.HasPrefix(lower, "data:") {
		return ""
	}

	u, err := url.Parse(href)
	if err != nil {
		return ""
	}

	resolved := p.baseURL.ResolveReference(u)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return ""
	}
	return resolved.String()
}

// getAttr retrieves an attribute value from an HTML node.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
