// Package bits provides fixed-width integer primitives shared by the cipher
// engines: bit-window slicing, word joining/splitting, circular rotation and
// the extended-Euclid modular inverse.
package bits

// SliceBits returns the [start, end) bit window of value, treated as a
// width-bit unsigned integer with start counted from the most significant
// bit. Callers must ensure 0 <= start < end <= width <= 64.
func SliceBits(value uint64, start, end, width uint) uint64 {
	value &= uint64(1)<<(width-start) - 1
	return value >> (width - end)
}

// JoinBits concatenates a sequence of width-bit words, most significant
// first, into a single integer.
func JoinBits(values []uint64, width uint) uint64 {
	var num uint64
	for _, value := range values {
		num = num<<width | value
	}
	return num
}

// SplitBits is the inverse of JoinBits: it splits a totalWidth-bit value into
// chunkWidth-bit words. totalWidth must be a multiple of chunkWidth.
func SplitBits(value uint64, totalWidth, chunkWidth uint) []uint64 {
	nums := make([]uint64, 0, totalWidth/chunkWidth)
	for i := uint(0); i < totalWidth/chunkWidth; i++ {
		nums = append(nums, SliceBits(value, i*chunkWidth, (i+1)*chunkWidth, totalWidth))
	}
	return nums
}

// RotateLeft performs a left circular shift of a width-bit value. The amount
// is reduced mod width, so data-dependent amounts past the word width wrap.
func RotateLeft(value uint64, amount, width uint) uint64 {
	amount %= width
	if amount == 0 {
		return value & (uint64(1)<<width - 1)
	}
	left := SliceBits(value, 0, amount, width)
	right := SliceBits(value, amount, width, width)
	return right<<amount | left
}

// RotateRight performs a right circular shift of a width-bit value.
func RotateRight(value uint64, amount, width uint) uint64 {
	amount %= width
	if amount == 0 {
		return value & (uint64(1)<<width - 1)
	}
	left := SliceBits(value, 0, width-amount, width)
	right := SliceBits(value, width-amount, width, width)
	return right<<(width-amount) | left
}

// ModInverse returns x such that a*x = 1 (mod m), or 0 when no inverse
// exists (gcd(a, m) != 1).
func ModInverse(a, m uint64) uint64 {
	g, x, _ := egcd(int64(a%m), int64(m))
	if g != 1 {
		return 0
	}
	return uint64((x%int64(m) + int64(m)) % int64(m))
}

// egcd computes gcd(a, b) together with the Bezout coefficients x, y so that
// a*x + b*y = gcd(a, b).
func egcd(a, b int64) (g, x, y int64) {
	if a == 0 {
		return b, 0, 1
	}
	g, y1, x1 := egcd(b%a, a)
	return g, x1 - (b/a)*y1, y1
}
