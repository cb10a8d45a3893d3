package model

import "strings"

// FileEntry is a session file together with its token count.
type FileEntry struct {
	// Name is the file name inside the session directory.
	Name string `json:"name"`

	// Tokens is the unit count of the file content.
	Tokens int `json:"tokens"`
}

// SplitExt splits name into base and extension, the extension keeping its
// leading dot. Leading dots are part of the base, so ".htaccess" has no
// extension and "app.min.js" splits into "app.min" and ".js".
func SplitExt(name string) (string, string) {
	start := 0
	for start < len(name) && name[start] == '.' {
		start++
	}
	idx := strings.LastIndexByte(name[start:], '.')
	if idx < 0 {
		return name, ""
	}
	idx += start
	return name[:idx], name[idx:]
}
