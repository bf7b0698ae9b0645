package endian

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckEndiannessIsStableAndValid(t *testing.T) {
	first := CheckEndianness()
	assert.Contains(t, []binary.ByteOrder{binary.LittleEndian, binary.BigEndian}, first)

	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CheckEndianness())
	}
}

func TestNativeHelpersAgree(t *testing.T) {
	le := IsNativeLittleEndian()
	be := IsNativeBigEndian()
	assert.NotEqual(t, le, be)

	if le {
		assert.True(t, CompareNativeEndian(GetLittleEndianEngine()))
		assert.False(t, CompareNativeEndian(GetBigEndianEngine()))
	} else {
		assert.True(t, CompareNativeEndian(GetBigEndianEngine()))
		assert.False(t, CompareNativeEndian(GetLittleEndianEngine()))
	}
}

func TestLittleEndianEngineLayout(t *testing.T) {
	engine := GetLittleEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	buf := engine.AppendUint32(nil, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
	assert.Equal(t, uint32(0x01020304), engine.Uint32(buf))

	buf = engine.AppendUint16(nil, 0x0102)
	assert.Equal(t, []byte{0x02, 0x01}, buf)

	buf = engine.AppendUint64(nil, 0x0102030405060708)
	assert.Equal(t, byte(0x08), buf[0])
	assert.Equal(t, uint64(0x0102030405060708), engine.Uint64(buf))
}

func TestBigEndianEngineLayout(t *testing.T) {
	engine := GetBigEndianEngine()
	require.Implements(t, (*EndianEngine)(nil), engine)

	buf := engine.AppendUint32(nil, 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)
	assert.Equal(t, uint32(0x01020304), engine.Uint32(buf))
}
