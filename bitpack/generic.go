package bitpack

import "github.com/arloliu/daytick/format"

// packGeneric is the width-parameterized reference pack routine,
// correct for every w in [1,32]. It is the template genbitpack
// instantiates per width into generated.go, and the oracle those
// specializations are tested against: pack_w must produce bytes
// identical to packGeneric(w, ...) for every width.
func packGeneric(w uint8, residues []uint32, dst []byte) []byte {
	l := format.LaneWidth
	perLane := len(residues) / l
	n := PayloadLen(len(residues), w)
	dst = growByte(dst, n)
	for i := range dst {
		dst[i] = 0
	}

	mask := uint64(1)<<w - 1
	for lane := 0; lane < l; lane++ {
		var acc uint64
		var nbits uint
		word := 0
		laneBase := lane * 4
		for k := 0; k < perLane; k++ {
			r := uint64(residues[k*l+lane]) & mask
			acc |= r << nbits
			nbits += uint(w)
			for nbits >= 32 {
				writeWord(dst, laneBase+word*l*4, uint32(acc))
				acc >>= 32
				nbits -= 32
				word++
			}
		}
		if nbits > 0 {
			writeWord(dst, laneBase+word*l*4, uint32(acc))
		}
	}

	return dst
}

// unpackGeneric is the width-parameterized reference unpack routine,
// the inverse of packGeneric for the same width w.
func unpackGeneric(w uint8, packed []byte, dst []uint32) {
	l := format.LaneWidth
	perLane := len(dst) / l
	mask := uint64(1)<<w - 1

	for lane := 0; lane < l; lane++ {
		var acc uint64
		var nbits uint
		word := 0
		laneBase := lane * 4
		next := func() uint32 {
			v := readWord(packed, laneBase+word*l*4)
			word++
			return v
		}
		acc = uint64(next())
		nbits = 32
		for k := 0; k < perLane; k++ {
			for nbits < uint(w) {
				acc |= uint64(next()) << nbits
				nbits += 32
			}
			dst[k*l+lane] = uint32(acc & mask)
			acc >>= w
			nbits -= uint(w)
		}
	}
}

func writeWord(dst []byte, off int, v uint32) {
	dst[off] = byte(v)
	dst[off+1] = byte(v >> 8)
	dst[off+2] = byte(v >> 16)
	dst[off+3] = byte(v >> 24)
}

func readWord(src []byte, off int) uint32 {
	return uint32(src[off]) | uint32(src[off+1])<<8 | uint32(src[off+2])<<16 | uint32(src[off+3])<<24
}
