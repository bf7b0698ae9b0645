// Command genbitpack emits bitpack/generated.go: one pack/unpack
// routine pair per residue bit-width in [0,32], plus the dispatch
// tables that select them.
//
// The routines fall into three shapes. Width 0 carries no residue
// bytes. Byte-aligned widths (8, 16, 32) are plain little-endian byte
// copies. Every other width instantiates a
// bit-accumulator template with the width as a compile-time constant,
// so the compiler resolves all shifts and masks per routine; the
// width-parameterized original of that template lives in
// bitpack/generic.go, which the generated specializations are tested
// against.
//
// go:generate is intentionally not wired up; regenerate by hand with
//
//	go run ./cmd/genbitpack -out bitpack/generated.go
//
// and commit the result.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
)

const fileHeader = `// Code generated by genbitpack. DO NOT EDIT.
//
// One pack/unpack routine pair per residue bit-width in [0,32], selected
// through the dispatch tables below. Byte-aligned widths (8, 16, 32)
// degenerate into plain little-endian byte copies; every other width runs a bit accumulator with the width fixed
// at compile time, so the compiler resolves every shift and mask to a
// constant. Width 0 carries no residue bytes at all.
//
// Regenerate with: go run ./cmd/genbitpack -out bitpack/generated.go

package bitpack

import "github.com/arloliu/daytick/format"

type packFunc func(residues []uint32, dst []byte) []byte

type unpackFunc func(packed []byte, dst []uint32)
`

const zeroWidth = `
func pack0(residues []uint32, dst []byte) []byte { return dst }

func unpack0(packed []byte, dst []uint32) {
	for i := range dst {
		dst[i] = 0
	}
}
`

// accumTemplate is instantiated per width with the width as a constant.
// Bits accumulate LSB-first per lane and flush 32 at a time into the
// lane-interleaved word layout; the final partial word's high bits are
// already zero because only masked values enter the accumulator, so no
// separate zero-fill pass is needed.
const accumTemplate = `
func pack%[1]d(residues []uint32, dst []byte) []byte {
	const w = %[1]d
	const mask = uint64(1)<<w - 1
	l := format.LaneWidth
	perLane := len(residues) / l
	dst = growByte(dst, PayloadLen(len(residues), w))
	for lane := 0; lane < l; lane++ {
		var acc uint64
		var nbits uint
		word := 0
		base := lane * 4
		for k := 0; k < perLane; k++ {
			acc |= (uint64(residues[k*l+lane]) & mask) << nbits
			nbits += w
			if nbits >= 32 {
				writeWord(dst, base+word*l*4, uint32(acc))
				acc >>= 32
				nbits -= 32
				word++
			}
		}
		if nbits > 0 {
			writeWord(dst, base+word*l*4, uint32(acc))
		}
	}
	return dst
}

func unpack%[1]d(packed []byte, dst []uint32) {
	const w = %[1]d
	const mask = uint64(1)<<w - 1
	l := format.LaneWidth
	perLane := len(dst) / l
	for lane := 0; lane < l; lane++ {
		base := lane * 4
		acc := uint64(readWord(packed, base))
		nbits := uint(32)
		word := 1
		for k := 0; k < perLane; k++ {
			if nbits < w {
				acc |= uint64(readWord(packed, base+word*l*4)) << nbits
				nbits += 32
				word++
			}
			dst[k*l+lane] = uint32(acc & mask)
			acc >>= w
			nbits -= w
		}
	}
}
`

const fullWordWidth = `
func pack32(residues []uint32, dst []byte) []byte {
	l := format.LaneWidth
	perLane := len(residues) / l
	dst = growByte(dst, PayloadLen(len(residues), 32))
	for lane := 0; lane < l; lane++ {
		for k := 0; k < perLane; k++ {
			writeWord(dst, (k*l+lane)*4, residues[k*l+lane])
		}
	}
	return dst
}

func unpack32(packed []byte, dst []uint32) {
	l := format.LaneWidth
	perLane := len(dst) / l
	for lane := 0; lane < l; lane++ {
		for k := 0; k < perLane; k++ {
			dst[k*l+lane] = readWord(packed, (k*l+lane)*4)
		}
	}
}
`

func main() {
	out := flag.String("out", "bitpack/generated.go", "output file path")
	flag.Parse()

	var buf bytes.Buffer
	buf.WriteString(fileHeader)

	writeDispatch(&buf, "packDispatch", "packFunc", "pack")
	writeDispatch(&buf, "unpackDispatch", "unpackFunc", "unpack")

	buf.WriteString(zeroWidth)
	for w := 1; w <= 32; w++ {
		switch {
		case w == 32:
			buf.WriteString(fullWordWidth)
		case w%8 == 0:
			writeByteCopy(&buf, w)
		default:
			fmt.Fprintf(&buf, accumTemplate, w)
		}
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		fmt.Fprintln(os.Stderr, "genbitpack: gofmt failed:", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, formatted, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, "genbitpack:", err)
		os.Exit(1)
	}
}

func writeDispatch(buf *bytes.Buffer, name, typ, prefix string) {
	fmt.Fprintf(buf, "\nvar %s = [format.MaxBitWidth + 1]%s{\n", name, typ)
	for w := 0; w <= 32; w++ {
		if w%8 == 0 {
			buf.WriteString("\t")
		}
		fmt.Fprintf(buf, "%s%d,", prefix, w)
		if w%8 == 7 || w == 32 {
			buf.WriteString("\n")
		} else {
			buf.WriteString(" ")
		}
	}
	buf.WriteString("}\n")
}

// writeByteCopy emits the byte-copy specializations for widths 8 and 16,
// where each residue occupies a fixed byte span inside its lane word.
// The zero-fill pass covers the pad bytes of the final partial word per
// lane, which the copy loop never touches.
func writeByteCopy(buf *bytes.Buffer, w int) {
	perWord := 32 / w
	bytesPerField := w / 8

	offExpr := fmt.Sprintf("((k/%d)*l+lane)*4 + (k%%%d)*%d", perWord, perWord, bytesPerField)
	if bytesPerField == 1 {
		offExpr = fmt.Sprintf("((k/%d)*l+lane)*4 + k%%%d", perWord, perWord)
	}

	fmt.Fprintf(buf, "\nfunc pack%d(residues []uint32, dst []byte) []byte {\n", w)
	fmt.Fprintf(buf, "\tl := format.LaneWidth\n")
	fmt.Fprintf(buf, "\tperLane := len(residues) / l\n")
	fmt.Fprintf(buf, "\tdst = growByte(dst, PayloadLen(len(residues), %d))\n", w)
	fmt.Fprintf(buf, "\tfor i := range dst {\n\t\tdst[i] = 0\n\t}\n")
	fmt.Fprintf(buf, "\tfor lane := 0; lane < l; lane++ {\n")
	fmt.Fprintf(buf, "\t\tfor k := 0; k < perLane; k++ {\n")
	fmt.Fprintf(buf, "\t\t\toff := %s\n", offExpr)
	fmt.Fprintf(buf, "\t\t\tv := residues[k*l+lane]\n")
	for b := 0; b < bytesPerField; b++ {
		if b == 0 {
			fmt.Fprintf(buf, "\t\t\tdst[off] = byte(v)\n")
		} else {
			fmt.Fprintf(buf, "\t\t\tdst[off+%d] = byte(v >> %d)\n", b, 8*b)
		}
	}
	fmt.Fprintf(buf, "\t\t}\n\t}\n\treturn dst\n}\n")

	fmt.Fprintf(buf, "\nfunc unpack%d(packed []byte, dst []uint32) {\n", w)
	fmt.Fprintf(buf, "\tl := format.LaneWidth\n")
	fmt.Fprintf(buf, "\tperLane := len(dst) / l\n")
	fmt.Fprintf(buf, "\tfor lane := 0; lane < l; lane++ {\n")
	fmt.Fprintf(buf, "\t\tfor k := 0; k < perLane; k++ {\n")
	fmt.Fprintf(buf, "\t\t\toff := %s\n", offExpr)
	reads := "uint32(packed[off])"
	for b := 1; b < bytesPerField; b++ {
		reads += fmt.Sprintf(" | uint32(packed[off+%d])<<%d", b, 8*b)
	}
	fmt.Fprintf(buf, "\t\t\tdst[k*l+lane] = %s\n", reads)
	fmt.Fprintf(buf, "\t\t}\n\t}\n}\n")
}
