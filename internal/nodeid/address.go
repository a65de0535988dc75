package nodeid

// String serializes the Address into its canonical string representation.
func (a Address) String() string {
	if a.SubGraph == "" {
		return a.Label
	}
	return a.SubGraph + "." + a.Label
}

// In resolves a local address against owner, the sub-graph the endpoint is
// used in. Qualified addresses are returned unchanged.
func (a Address) In(owner string) Address {
	if a.IsQualified() {
		return a
	}
	return Address{SubGraph: owner, Label: a.Label}
}
