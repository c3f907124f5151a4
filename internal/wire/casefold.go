package wire

// lowerCaseTable implements ASCII-only case folding for DNS names (RFC 4343):
// A-Z maps to a-z, every other byte maps to itself. Locale-dependent case
// folding must never be used here.
var lowerCaseTable = func() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = byte(i)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		t[c] = c - 'A' + 'a'
	}
	return t
}()

func lowerCase(b byte) byte {
	return lowerCaseTable[b]
}
