package common

// WipeByteArray overwrites b with zeros. Used on passwords read from the
// terminal once they have been copied out.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
