package grabber

import "errors"

var (
	// ErrHTTPStatus is returned when a response has a non-2xx status code.
	ErrHTTPStatus = errors.New("unexpected HTTP status")

	// ErrNoFileName is returned when an asset URL has no usable base name
	// (for example "https://cdn.example.com/").
	ErrNoFileName = errors.New("asset URL has no file name")

	// ErrBodyTooLarge is returned when a response body exceeds the
	// configured size limit. Nothing is written for such a response.
	ErrBodyTooLarge = errors.New("response body exceeds size limit")

	// ErrInvalidProxyAddress is returned when the proxy address is not "host:port".
	ErrInvalidProxyAddress = errors.New("invalid proxy address format: expected host:port")
)
