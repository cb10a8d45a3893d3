// Package session maps target URLs to session directories and lists what a
// session directory holds.
//
// A session is nothing more than a directory under the sessions root whose
// name is derived from the URL it was fetched from:
//
//	sites/
//	  blog_example_com_posts_2024/
//	    index.html
//	    app.js
//	    reports/
//	      app_js_report.md
//
// There is no index or manifest. Resuming a session is plain directory
// discovery, so a session created by a fetch is visible to ListSessions as
// soon as its directory exists.
package session
