package errors

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the longest text, in runes, accepted for an animation.
const MaxTextLength = 512

// ValidateText validates text requested for a scramble animation from an
// untrusted source such as a query string.
//
// Rules:
//   - Must be valid UTF-8
//   - No control characters (a frame is a single line)
//   - At most MaxTextLength runes
//
// Empty text is valid; it animates the display away.
func ValidateText(text string) error {
	if !utf8.ValidString(text) {
		return New(ErrCodeInvalidInput, "text is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(text); n > MaxTextLength {
		return New(ErrCodeInvalidInput, "text too long (%d runes, max %d)", n, MaxTextLength)
	}
	for _, r := range text {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "text contains control characters")
		}
	}
	return nil
}

// ValidateKey validates a preference key. Keys are used as JSON object keys
// and Redis key suffixes, so they are restricted to a conservative set:
//   - Not empty, at most 64 bytes
//   - Lowercase letters, digits, '-', '_' and '.'
//   - No leading or trailing '.'
func ValidateKey(key string) error {
	if key == "" {
		return New(ErrCodeInvalidKey, "key cannot be empty")
	}
	if len(key) > 64 {
		return New(ErrCodeInvalidKey, "key too long (max 64 bytes)")
	}
	if strings.HasPrefix(key, ".") || strings.HasSuffix(key, ".") {
		return New(ErrCodeInvalidKey, "key cannot start or end with '.'")
	}
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
		default:
			return New(ErrCodeInvalidKey, "key contains invalid character %q", r)
		}
	}
	return nil
}
