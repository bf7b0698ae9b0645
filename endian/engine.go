// Package endian provides the byte-order engine used by every wire
// layout in this module: day headers and footers, block seeds, the
// container directory, and the serialized container framing are all
// little-endian.
//
// EndianEngine unifies encoding/binary's ByteOrder and AppendByteOrder
// interfaces so encoders can append multi-byte fields without a
// temporary scratch slice:
//
//	engine := endian.GetLittleEndianEngine()
//	buf = engine.AppendUint32(buf, offsetMS)
//
// The native-order helpers exist for code that wants to know whether a
// future memory-mapped fast path could reinterpret packed words in
// place; the wire format itself never varies with the host.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines read, write, and append operations for one byte
// order. binary.LittleEndian and binary.BigEndian both satisfy it.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CheckEndianness reports the host's native byte order.
func CheckEndianness() binary.ByteOrder {
	// For 0x0100, a little-endian host stores the zero byte first.
	var i uint16 = 0x0100
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers
// least-significant byte first, matching the wire format.
func IsNativeLittleEndian() bool {
	return CheckEndianness() == binary.LittleEndian
}

func IsNativeBigEndian() bool {
	return CheckEndianness() == binary.BigEndian
}

// CompareNativeEndian reports whether engine matches the host's native
// byte order.
func CompareNativeEndian(engine EndianEngine) bool {
	return engine == CheckEndianness()
}

// GetLittleEndianEngine returns the engine for the module's wire order.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
