package grabber

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"

	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// IndexFileName is the file the page document is saved as.
const IndexFileName = "index.html"

// defaultMaxBodySize is used when no limit is configured.
const defaultMaxBodySize = 10 * 1024 * 1024 // 10MB

// Grabber fetches a page and its linked assets into a directory.
type Grabber struct {
	// client performs every GET. Its Timeout bounds each attempt.
	client *http.Client

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64

	logger *slog.Logger
}

// Option configures a Grabber.
type Option func(*Grabber)

// WithMaxBodySize sets the maximum response body size.
func WithMaxBodySize(size int64) Option {
	return func(g *Grabber) {
		if size > 0 {
			g.maxBodySize = size
		}
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Grabber) {
		g.logger = logger
	}
}

// NewGrabber creates a Grabber using client for all requests.
func NewGrabber(client *http.Client, opts ...Option) *Grabber {
	g := &Grabber{
		client:      client,
		maxBodySize: defaultMaxBodySize,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Result describes what a Grab call stored.
type Result struct {
	// PageURL is the final URL of the page after redirects.
	PageURL string

	// Title is the page title, if any.
	Title string

	// IndexPath is the path of the saved page document.
	IndexPath string

	// Assets holds one entry per linked asset, in fetch order.
	Assets []AssetResult
}

// AssetResult is the outcome of fetching one asset.
type AssetResult struct {
	Kind AssetKind

	// URL is the resolved asset URL.
	URL string

	// Path is where the asset was written. Empty when Err is set.
	Path string

	// Err is the fetch or write error, nil on success.
	Err error
}

// Saved returns the assets that were written successfully.
func (r *Result) Saved() []AssetResult {
	saved := make([]AssetResult, 0, len(r.Assets))
	for _, a := range r.Assets {
		if a.Err == nil {
			saved = append(saved, a)
		}
	}
	return saved
}

// Failed returns the assets that could not be fetched or written.
func (r *Result) Failed() []AssetResult {
	failed := make([]AssetResult, 0)
	for _, a := range r.Assets {
		if a.Err != nil {
			failed = append(failed, a)
		}
	}
	return failed
}

// Grab creates dir if needed, fetches pageURL and stores the re-rendered
// document as index.html followed by every linked stylesheet and script.
//
// An error is returned only when the page itself cannot be fetched, parsed
// or saved; in that case no file has been written. Asset failures are
// recorded in Result.Assets.
func (g *Grabber) Grab(ctx context.Context, pageURL, dir string) (*Result, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	body, finalURL, contentType, err := g.get(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}

	decoded, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", pageURL, err)
	}

	doc, err := html.Parse(decoded)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	var rendered bytes.Buffer
	if err := html.Render(&rendered, doc); err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", pageURL, err)
	}

	indexPath := filepath.Join(dir, IndexFileName)
	if err := os.WriteFile(indexPath, rendered.Bytes(), 0600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", indexPath, err)
	}
	g.logger.Debug("saved page", "url", finalURL, "path", indexPath)

	parser, err := NewParser(finalURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL %s: %w", finalURL, err)
	}
	parsed := parser.ParseDocument(doc)

	result := &Result{
		PageURL:   finalURL,
		Title:     parsed.Title,
		IndexPath: indexPath,
		Assets:    make([]AssetResult, 0, len(parsed.Stylesheets)+len(parsed.Scripts)),
	}

	for _, ref := range parsed.Assets() {
		asset := g.grabAsset(ctx, ref, dir)
		if asset.Err != nil {
			g.logger.Debug("asset skipped", "kind", ref.Kind.String(), "url", ref.URL, "error", asset.Err)
		} else {
			g.logger.Debug("saved asset", "kind", ref.Kind.String(), "url", ref.URL, "path", asset.Path)
		}
		result.Assets = append(result.Assets, asset)
	}

	return result, nil
}

// grabAsset fetches a single asset and writes it under dir.
func (g *Grabber) grabAsset(ctx context.Context, ref AssetRef, dir string) AssetResult {
	asset := AssetResult{Kind: ref.Kind, URL: ref.URL}

	name, err := assetFileName(ref.URL)
	if err != nil {
		asset.Err = err
		return asset
	}

	body, _, _, err := g.get(ctx, ref.URL)
	if err != nil {
		asset.Err = err
		return asset
	}

	target := filepath.Join(dir, name)
	if err := os.WriteFile(target, body, 0600); err != nil {
		asset.Err = fmt.Errorf("failed to write %s: %w", target, err)
		return asset
	}

	asset.Path = target
	return asset
}

// get performs a single GET and returns the body, the final URL and the
// Content-Type header.
func (g *Grabber) get(ctx context.Context, rawURL string) ([]byte, string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", "", err
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, "", "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", "", fmt.Errorf("%w: %s", ErrHTTPStatus, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.maxBodySize+1))
	if err != nil {
		return nil, "", "", err
	}
	if int64(len(body)) > g.maxBodySize {
		return nil, "", "", fmt.Errorf("%w: more than %d bytes", ErrBodyTooLarge, g.maxBodySize)
	}

	finalURL := rawURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return body, finalURL, resp.Header.Get("Content-Type"), nil
}

// assetFileName returns the base name of the URL path.
func assetFileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	name := path.Base(u.EscapedPath())
	if name == "" || name == "." || name == "/" {
		return "", fmt.Errorf("%w: %s", ErrNoFileName, rawURL)
	}
	return name, nil
}
