// Package varint implements the base-128 variable-length integer coding
// used for a day's tail values: the handful of offsets left over after
// block segmentation that are too few to justify the lane-wise bit-pack
// pipeline.
//
// Each encoded byte carries 7 data bits in its low bits and a
// continuation bit in its high bit (0x80): a set continuation bit means
// another byte follows. Groups are little-endian, so a uint32 occupies
// 1 to 5 bytes and zero encodes as a single zero byte.
package varint

// continuation is the per-byte header bit: set means another byte follows.
const continuation = 0x80

// bodyMask extracts the 7 data bits carried by each encoded byte.
const bodyMask = 0x7F

// shiftLen is the number of data bits contributed per encoded byte.
const shiftLen = 7

// Len returns the exact number of bytes Put will write for v, without
// encoding it. The day assembler uses this to pre-size the tail buffer
// once instead of growing it incrementally.
func Len(v uint32) int {
	if v == 0 {
		return 1
	}
	n := 0
	for v > 0 {
		v >>= shiftLen
		n++
	}
	return n
}

// Put appends the varint encoding of v to dst and returns the extended
// slice. dst may be nil.
func Put(dst []byte, v uint32) []byte {
	for v >= 0x80 {
		dst = append(dst, byte(continuation|(v&bodyMask)))
		v >>= shiftLen
	}
	return append(dst, byte(v))
}

// Get decodes a single varint from the front of src, returning the
// decoded value and the number of bytes consumed. It returns n == 0 if
// src is empty or the encoding never terminates within src (a
// truncated tail); callers should treat n == 0 as a corrupt-data
// signal.
func Get(src []byte) (v uint32, n int) {
	var shift uint
	for i, b := range src {
		v |= uint32(b&bodyMask) << shift
		n = i + 1
		if b&continuation == 0 {
			return v, n
		}
		shift += shiftLen
	}
	return 0, 0
}

// LenAll returns the exact encoded byte length of a whole slice of
// values, for pre-sizing a destination buffer before a single PutAll
// call.
func LenAll(values []uint32) int {
	total := 0
	for _, v := range values {
		total += Len(v)
	}
	return total
}

// PutAll appends the varint encoding of every value in values to dst,
// in order, and returns the extended slice.
func PutAll(dst []byte, values []uint32) []byte {
	for _, v := range values {
		dst = Put(dst, v)
	}
	return dst
}

// GetAll decodes count varints from the front of src into dst (which
// must have length >= count), returning the total number of bytes
// consumed. It returns n == 0 if src is truncated before count values
// could be decoded.
func GetAll(src []byte, dst []uint32, count int) (n int) {
	pos := 0
	for i := 0; i < count; i++ {
		if pos >= len(src) {
			return 0
		}
		v, consumed := Get(src[pos:])
		if consumed == 0 {
			return 0
		}
		dst[i] = v
		pos += consumed
	}
	return pos
}
