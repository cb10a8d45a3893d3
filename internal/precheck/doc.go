// Package precheck runs fast local pattern checks over a file before it is
// sent for analysis.
//
// The checks look for material that should never ship in public HTML, CSS
// or JavaScript: private keys and service credentials, e-mail addresses,
// cloud storage endpoints and exposed API documentation or debug routes.
// Matches are redacted before they are stored, and they are listed in the
// report next to the model's verdict. They do not change what is sent to
// the analysis service.
package precheck
