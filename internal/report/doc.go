// Package report persists analysis verdicts as Markdown files inside a
// session's reports directory.
//
// A report is named after the analyzed file and its type,
// "<basename>_<type>_report.md", so re-analyzing the same file replaces the
// previous report instead of adding a new one. The file starts with a short
// header (file, type, session, model, token count, time) rendered with
// nao1215/markdown, a table of local check findings when there are any, and
// then the verdict exactly as the analysis service returned it.
//
// Writes go to a temporary file in the reports directory which is then
// renamed into place, so a report is either absent or complete.
package report
