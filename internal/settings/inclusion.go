package settings

import (
	"maps"
	"slices"
)

// Inclusion maps stage labels to whether they are included. The zero value
// is ready to use and includes everything.
type Inclusion struct {
	m map[string]bool
}

// New returns settings initialized from m. The map is copied.
func New(m map[string]bool) Inclusion {
	in := Inclusion{}
	for k, v := range m {
		in.Set(k, v)
	}
	return in
}

// Get reports whether label is included. Unknown labels are included.
func (in Inclusion) Get(label string) bool {
	v, ok := in.m[label]
	if !ok {
		return true
	}
	return v
}

// Set records value for label and returns the previous value, or true if
// label was not set.
func (in *Inclusion) Set(label string, value bool) bool {
	if in.m == nil {
		in.m = make(map[string]bool)
	}
	old := in.Get(label)
	in.m[label] = value
	return old
}

// Len returns the number of explicitly set labels.
func (in Inclusion) Len() int {
	return len(in.m)
}

// Clone returns an independent copy.
func (in Inclusion) Clone() Inclusion {
	return Inclusion{m: maps.Clone(in.m)}
}

// Merge returns a copy of in overridden by every label set in other.
func (in Inclusion) Merge(other Inclusion) Inclusion {
	out := in.Clone()
	for k, v := range other.m {
		out.Set(k, v)
	}
	return out
}

// Labels returns the explicitly set labels, sorted.
func (in Inclusion) Labels() []string {
	return slices.Sorted(maps.Keys(in.m))
}

// Disabled returns the labels explicitly set to false, sorted.
func (in Inclusion) Disabled() []string {
	var out []string
	for _, k := range in.Labels() {
		if !in.m[k] {
			out = append(out, k)
		}
	}
	return out
}

// Unknown returns the set labels that are not in known, sorted. These are
// most likely typos: they have no effect.
func (in Inclusion) Unknown(known []string) []string {
	var out []string
	for _, k := range in.Labels() {
		if !slices.Contains(known, k) {
			out = append(out, k)
		}
	}
	return out
}

// Map returns a copy of the explicit settings.
func (in Inclusion) Map() map[string]bool {
	out := make(map[string]bool, len(in.m))
	maps.Copy(out, in.m)
	return out
}
