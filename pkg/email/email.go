// Package email holds small helpers for working with customer email
// addresses in notification content.
package email

import (
	"strings"
	"unicode"
)

// GreetingName derives a presentable first name from an email local part,
// for use when a form submission has no name field. "r.sharma@example.com"
// becomes "R"; "priya_patel@example.com" becomes "Priya".
func GreetingName(address string) string {
	first, _ := DeriveNameFromEmail(address)
	return first
}

// DeriveNameFromEmail splits an email local part on common separators and
// capitalizes the first and last segments. Falls back to "Customer" when
// nothing usable remains.
func DeriveNameFromEmail(address string) (string, string) {
	localPart := address
	if at := strings.IndexByte(address, '@'); at >= 0 {
		localPart = address[:at]
	}

	parts := strings.FieldsFunc(localPart, func(r rune) bool {
		return r == '.' || r == '_' || r == '-' || r == '+'
	})
	if len(parts) == 0 {
		return "Customer", "Customer"
	}

	first := capitalize(parts[0])
	last := "Customer"
	if len(parts) > 1 {
		last = capitalize(parts[len(parts)-1])
	}
	return first, last
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
