package mask

// Apply XORs b with key. Applying the same key twice restores b, so one
// function both masks and unmasks. A zero key leaves b unchanged.
func Apply(b, key byte) byte {
	return b ^ key
}

// ApplyAll returns a masked copy of data.
func ApplyAll(data []byte, key byte) []byte {
	out := make([]byte, len(data))
	for i, b := range data {
		out[i] = Apply(b, key)
	}
	return out
}
