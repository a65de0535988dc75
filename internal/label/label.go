package label

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// labelRegex accepts the characters a label may contain. Dots are excluded
// because `pipeline.label` is used to address a stage from the command line.
var labelRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Derive converts a declaration identifier into its default label: lower
// snake_case, with acronyms kept together (`MSAAWriteback` -> `msaa_writeback`).
// The result depends only on ident, so deriving twice yields the same label.
func Derive(ident string) string {
	runes := []rune(strings.TrimSpace(ident))
	var sb strings.Builder
	sb.Grow(len(runes) + 4)

	for i, r := range runes {
		if r == '-' || r == ' ' || r == '.' {
			r = '_'
		}
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				sb.WriteRune('_')
			}
		}
		sb.WriteRune(unicode.ToLower(r))
	}

	return collapseUnderscores(sb.String())
}

func collapseUnderscores(s string) string {
	for strings.Contains(s, "__") {
		s = strings.ReplaceAll(s, "__", "_")
	}
	return strings.Trim(s, "_")
}

// Validate checks that a label can be used as a sub-graph node identity.
func Validate(l string) error {
	if l == "" {
		return fmt.Errorf("label cannot be empty")
	}
	if !labelRegex.MatchString(l) {
		return fmt.Errorf("invalid label %q: only letters, digits, '_' and '-' are allowed", l)
	}
	return nil
}
