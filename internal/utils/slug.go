package utils

import (
	"math/rand/v2"
	"strings"
	"unicode"
)

const slugAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// GenerateSlug turns a shop name into a URL slug with a random 6-char
// suffix so two shops with the same name get distinct slugs.
func GenerateSlug(name string) string {
	var b strings.Builder

	lastDash := true // suppress a leading dash

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) && r < 128 || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
		} else if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	slug := strings.Trim(b.String(), "-")

	suffix := make([]byte, 6)
	for i := range suffix {
		suffix[i] = slugAlphabet[rand.IntN(len(slugAlphabet))]
	}

	if slug == "" {
		return string(suffix)
	}

	return slug + "-" + string(suffix)
}
