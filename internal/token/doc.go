// Package token counts BPE tokens in text files.
//
// Counts are used to rank session files and as a rough proxy for what an
// analysis will cost. The encoding tables ship with the binary
// (tiktoken-go-loader), so counting never touches the network and a given
// encoding name always yields the same count for the same content.
package token
