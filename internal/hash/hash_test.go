package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBytesDeterministic(t *testing.T) {
	a := []byte("day payload bytes")
	b := append([]byte(nil), a...)
	assert.Equal(t, Bytes(a), Bytes(b))
	assert.NotEqual(t, Bytes(a), Bytes([]byte("different payload")))
}

func TestBytesEmptyIsStable(t *testing.T) {
	assert.Equal(t, Bytes(nil), Bytes([]byte{}))
}
