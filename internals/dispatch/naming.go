package dispatch

import (
	"strings"
	"unicode"
)

// CommandName converts an API name to its command-line form.
// Acronyms are kept together, e.g. GetFindings becomes get-findings,
// ProductARN becomes product-arn and Note.Text becomes note-text.
func CommandName(name string) string {
	runes := []rune(name)
	var b strings.Builder
	for i, r := range runes {
		if r == '.' || r == '_' {
			b.WriteRune('-')
			continue
		}
		if unicode.IsUpper(r) && i > 0 && runes[i-1] != '.' && runes[i-1] != '_' {
			prevLower := unicode.IsLower(runes[i-1]) || unicode.IsDigit(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (unicode.IsUpper(runes[i-1]) && nextLower) {
				b.WriteRune('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
