// Package main provides the entry point for the sentinel CLI.
//
// sentinel fetches a website's HTML, stylesheets and scripts into a local
// session directory, ranks the files by token count and sends the ones the
// operator selects to a language model for a security review. Each verdict
// is saved as a Markdown report next to the fetched files.
//
// Usage:
//
//	sentinel                 start the interactive loop
//	sentinel history         list past analyses
//	sentinel init            write a .sentinel configuration file
//
// See --help for all available options.
package main

func main() {
	Execute()
}
