package nodeid

import (
	"fmt"
	"regexp"
	"strings"
)

// segmentRegex matches a single sub-graph name or label.
var segmentRegex = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// Parse creates an Address by parsing its canonical string representation.
func Parse(raw string) (Address, error) {
	if raw == "" {
		return Address{}, fmt.Errorf("identifier cannot be empty")
	}

	segments := strings.Split(raw, ".")
	if len(segments) > 2 {
		return Address{}, fmt.Errorf("identifier %q has more than two segments", raw)
	}
	for _, s := range segments {
		if s == "" {
			return Address{}, fmt.Errorf("identifier %q contains an empty segment", raw)
		}
		if !segmentRegex.MatchString(s) {
			return Address{}, fmt.Errorf("invalid segment %q in identifier %q", s, raw)
		}
	}

	if len(segments) == 1 {
		return Local(segments[0]), nil
	}
	return Qualified(segments[0], segments[1]), nil
}
