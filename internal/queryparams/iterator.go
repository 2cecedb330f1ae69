package queryparams

// KeyIterator walks a private snapshot of a Params' keys once.
type KeyIterator struct {
	remaining []string
}

// Next returns the next key, or false once the snapshot is exhausted
func (it *KeyIterator) Next() (string, bool) {
	if len(it.remaining) == 0 {
		return "", false
	}
	key := it.remaining[0]
	it.remaining = it.remaining[1:]
	return key, true
}

// Remaining returns how many keys have not been consumed
func (it *KeyIterator) Remaining() int {
	return len(it.remaining)
}
