package label

// ID is the stable internal identifier of a label within one Interner.
type ID uint32

// Interner assigns IDs to labels in first-seen order.
type Interner struct {
	ids   map[string]ID
	names []string
}

// NewInterner creates an empty Interner.
func NewInterner() *Interner {
	return &Interner{ids: make(map[string]ID)}
}

// Intern returns the ID of l, assigning the next one if l is new.
func (in *Interner) Intern(l string) ID {
	if id, ok := in.ids[l]; ok {
		return id
	}
	id := ID(len(in.names))
	in.ids[l] = id
	in.names = append(in.names, l)
	return id
}

// Lookup returns the ID of l without assigning one.
func (in *Interner) Lookup(l string) (ID, bool) {
	id, ok := in.ids[l]
	return id, ok
}

// Name returns the label for id, or "" if id was never assigned.
func (in *Interner) Name(id ID) string {
	if int(id) >= len(in.names) {
		return ""
	}
	return in.names[id]
}

// Len returns the number of interned labels.
func (in *Interner) Len() int {
	return len(in.names)
}
