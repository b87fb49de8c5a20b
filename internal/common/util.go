package common

// WipeByteArray overwrites b with zeroes so secrets do not linger in memory
// after use.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
