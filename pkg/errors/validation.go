package errors

import (
	"strings"
	"unicode"
)

// maxScopeIDLength bounds place and person identifiers; platform IDs are
// short, anything longer is suspect.
const maxScopeIDLength = 128

// ValidateScopeID validates a place or person identifier received over the
// API. Scope IDs end up as map keys and log fields, so the rules are
// intentionally conservative:
//   - No empty IDs
//   - No control characters or whitespace
//   - No path separators (IDs appear in URL paths)
//   - Maximum length of 128 characters
func ValidateScopeID(id string) error {
	if id == "" {
		return New(ErrCodeInvalidScope, "scope id cannot be empty")
	}
	if len(id) > maxScopeIDLength {
		return New(ErrCodeInvalidScope, "scope id too long (max %d characters)", maxScopeIDLength)
	}
	for _, r := range id {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidScope, "scope id contains whitespace or control characters")
		}
	}
	if strings.ContainsAny(id, "/\\") {
		return New(ErrCodeInvalidScope, "scope id contains path separators")
	}
	return nil
}

// ParseHexColor parses an accent color in "#rrggbb" or "rrggbb" form into
// its component bytes. Malformed input is an INVALID_COLOR error; callers
// fall back to the neutral default anchor rather than failing the render.
func ParseHexColor(s string) (r, g, b uint8, err error) {
	raw := strings.TrimPrefix(s, "#")
	if len(raw) != 6 {
		return 0, 0, 0, New(ErrCodeInvalidColor, "accent color %q is not rrggbb", s)
	}
	var out [3]uint8
	for i := 0; i < 3; i++ {
		hi, ok1 := hexNibble(raw[2*i])
		lo, ok2 := hexNibble(raw[2*i+1])
		if !ok1 || !ok2 {
			return 0, 0, 0, New(ErrCodeInvalidColor, "accent color %q has non-hex digits", s)
		}
		out[i] = hi<<4 | lo
	}
	return out[0], out[1], out[2], nil
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
