package sliceops

// SwapBuf returns a reversed copy of in.
func SwapBuf(in []byte) []byte {
	a := make([]byte, 0, len(in))
	a = append(a, in...)
	for i := len(a)/2 - 1; i >= 0; i-- {
		opp := len(a) - 1 - i
		a[i], a[opp] = a[opp], a[i]
	}

	return a
}

// SwapAddr converts a device address between wire order (little endian)
// and display order (most significant byte first).
func SwapAddr(in [6]byte) [6]byte {
	var out [6]byte
	for i := range in {
		out[len(in)-1-i] = in[i]
	}
	return out
}
