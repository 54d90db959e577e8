package utils

import (
	"regexp"
	"strings"
)

// Salvadoran numbering: country prefix, optional whitespace, 8 digits.
var phonePattern = regexp.MustCompile(`(\+503)\s?(\d{4})(\d{4})`)

// NormalizePhone canonicalizes a raw phone string to "+503 XXXX-XXXX".
// Inputs without the country prefix get "+503 " prepended first. Inputs
// that do not carry 8 consecutive digits after the prefix pass through
// unchanged; format enforcement belongs to the validation rules, the
// uniqueness check runs against whatever string comes out of here.
// Already-normalized numbers contain a dash, so they no longer match the
// pattern and the function is idempotent.
func NormalizePhone(raw string) string {
	if raw == "" {
		return raw
	}
	if !strings.HasPrefix(raw, "+503") {
		raw = "+503 " + raw
	}
	return phonePattern.ReplaceAllString(raw, "${1} ${2}-${3}")
}
