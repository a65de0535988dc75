package nodeid

// Address is the structured representation of an edge endpoint.
type Address struct {
	// SubGraph is empty for a local label.
	SubGraph string
	Label    string
}

// Local returns the address of a label in the owning sub-graph.
func Local(label string) Address {
	return Address{Label: label}
}

// Qualified returns the address of label in subGraph.
func Qualified(subGraph, label string) Address {
	return Address{SubGraph: subGraph, Label: label}
}

// IsQualified reports whether the address names its sub-graph.
func (a Address) IsQualified() bool {
	return a.SubGraph != ""
}
