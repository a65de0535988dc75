package settings

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/specialistvlad/pipegraph/internal/label"
)

// ParseAssignments parses command line overrides of the form
// `pipeline.label=bool` and groups them by pipeline name.
func ParseAssignments(assignments []string) (map[string]Inclusion, error) {
	out := make(map[string]Inclusion)
	var errs []string

	for _, raw := range assignments {
		key, rawValue, ok := strings.Cut(raw, "=")
		if !ok {
			errs = append(errs, fmt.Sprintf("%q: expected pipeline.label=true|false", raw))
			continue
		}
		pipelineName, l, ok := strings.Cut(strings.TrimSpace(key), ".")
		if !ok || pipelineName == "" {
			errs = append(errs, fmt.Sprintf("%q: key must be qualified as pipeline.label", raw))
			continue
		}
		if err := label.Validate(l); err != nil {
			errs = append(errs, fmt.Sprintf("%q: %v", raw, err))
			continue
		}
		value, err := strconv.ParseBool(strings.TrimSpace(rawValue))
		if err != nil {
			errs = append(errs, fmt.Sprintf("%q: invalid boolean %q", raw, rawValue))
			continue
		}

		in := out[pipelineName]
		in.Set(l, value)
		out[pipelineName] = in
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("invalid stage settings:\n- %s", strings.Join(errs, "\n- "))
	}
	return out, nil
}
