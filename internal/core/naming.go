package core

import (
	"fmt"
	"strings"
)

func SlugForHeading(heading string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(strings.TrimSpace(heading)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(r)
			pendingDash = false
		default:
			pendingDash = true
		}
	}
	return b.String()
}

func AnchorForSlide(ordinal int, heading string) string {
	slug := SlugForHeading(heading)
	if slug == "" {
		return fmt.Sprintf("slide-%d", ordinal)
	}
	return fmt.Sprintf("slide-%d-%s", ordinal, slug)
}
