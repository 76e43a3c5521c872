package util

import "strings"

// Slugify normalizes a display name into a stable record key: lowercase,
// every run of non-alphanumeric characters collapsed to a single hyphen,
// leading and trailing hyphens trimmed. "Olive Oil (extra virgin)"
// becomes "olive-oil-extra-virgin".
func Slugify(name string) string {
	var b strings.Builder
	b.Grow(len(name))

	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}
