package security

import "strings"

// MaxTextLen caps any free-text field after sanitization.
const MaxTextLen = 10000

var angleBrackets = strings.NewReplacer("<", "", ">", "")

// SanitizeText strips angle brackets, trims surrounding whitespace and caps
// the result at MaxTextLen characters. Safe to apply repeatedly.
func SanitizeText(text string) string {
	out := strings.TrimSpace(angleBrackets.Replace(text))

	runes := []rune(out)
	if len(runes) > MaxTextLen {
		out = string(runes[:MaxTextLen])
	}

	return out
}
