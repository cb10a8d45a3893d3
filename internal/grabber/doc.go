// Package grabber fetches a web page and the stylesheets and scripts it links
// to, and stores them in a session directory.
//
// Only one page is fetched per call. Its document is parsed with
// golang.org/x/net/html, re-rendered and saved as index.html. Every
// <link rel="stylesheet" href> and <script src> is then resolved against the
// page's final URL (after redirects) and fetched one after another, each with
// its own bounded-timeout GET. A failing asset is reported in the Result and
// does not stop the others. Nothing is retried.
//
// # Usage
//
//	client, err := grabber.NewHTTPClient(10*time.Second, "")
//	g := grabber.NewGrabber(client)
//	result, err := g.Grab(ctx, "https://example.com", "sites/example_com")
//
// Asset files are named after the last element of the resolved URL path.
// Two assets with the same base name overwrite each other; the later one wins.
package grabber
