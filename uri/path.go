package uri

import (
	"strings"
	"unicode/utf8"
)

// splitPath drops the first character of p, which is expected to be '/' but is not checked,
// and splits the rest on '/'. Empty segments are kept.
func splitPath(p string) []string {
	if p == "" {
		return nil
	}
	_, n := utf8.DecodeRuneInString(p)
	return strings.Split(p[n:], "/")
}
