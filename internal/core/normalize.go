package core

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Normalize trims surrounding whitespace and converts s to NFC, so that
// names typed on different systems compare equal byte for byte.
func Normalize(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
