// Package analysis sends file content to an OpenAI-compatible chat
// completion service and returns its security verdict as free text.
//
// One call is made per file: a fixed system prompt listing the vulnerability
// categories to look for, and a user message with the file type and the full
// content. There is no streaming, chunking or retry; any failure, including
// the service rejecting an oversized file, is returned to the caller as is.
package analysis
