// Package bits provides mask based helpers for manipulating the bits of a
// byte. Every helper only touches the bits selected by mask.
package bits

// Test returns true if any bit of mask is set in b.
func Test(b, mask uint8) bool {
	return b&mask != 0
}

// Set returns b with the bits of mask set.
func Set(b, mask uint8) uint8 {
	return b | mask
}

// Reset returns b with the bits of mask cleared.
func Reset(b, mask uint8) uint8 {
	return b &^ mask
}

// Assign sets or clears the bits of mask depending on on.
func Assign(b, mask uint8, on bool) uint8 {
	if on {
		return Set(b, mask)
	}
	return Reset(b, mask)
}

// Replace returns b with the bits selected by mask taken from v, all other
// bits are kept from b.
func Replace(b, mask, v uint8) uint8 {
	return b&^mask | v&mask
}
