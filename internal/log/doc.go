// Package log provides a slog handler that masks secrets before they reach
// the log output.
//
// The analysis client talks to a remote service with a bearer API key, and
// the grabber logs URLs and response headers at debug level. SecureHandler
// replaces any attribute whose key names a credential (api_key,
// authorization, cookie, ...) or whose value looks like one (OpenAI
// "sk-" keys, bearer tokens, JWTs) with MaskValue.
//
// Session identifiers and token counts are ordinary data here and are
// logged as is.
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
