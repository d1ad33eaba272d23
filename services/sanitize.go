package services

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// textPolicy strips every HTML element from user-supplied text fields
var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips markup and surrounding whitespace from a free-text
// field (names, addresses, codes entered by back-office users).
func SanitizeText(s string) string {
	return strings.TrimSpace(textPolicy.Sanitize(s))
}

// SanitizeAll applies SanitizeText to each of the given string pointers in place
func SanitizeAll(fields ...*string) {
	for _, f := range fields {
		if f != nil {
			*f = SanitizeText(*f)
		}
	}
}
