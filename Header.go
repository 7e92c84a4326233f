package rmux

// Header is a single key/value header pair.
// Both requests and responses carry headers as ordered slices rather than
// maps, preserving the order in which they were set.
type Header struct {
	Key   string
	Value string
}
