// Package pool holds the scratch-memory pools shared by the encode and
// decode paths: growable byte buffers for day assembly and container
// serialization, and reusable uint32 slices for block residues. Pooled
// memory is only ever borrowed for the duration of one operation;
// anything returned to a caller is copied out first.
package pool

import "sync"

const (
	// DayBufferDefaultSize comfortably holds one encoded day of blocks.
	DayBufferDefaultSize = 1024 * 16 // 16KiB
	// DayBufferMaxThreshold caps what the day pool will retain; an
	// unusually dense day's buffer is dropped rather than pinned.
	DayBufferMaxThreshold = 1024 * 128 // 128KiB

	ContainerBufferDefaultSize  = 1024 * 1024     // 1MiB
	ContainerBufferMaxThreshold = 1024 * 1024 * 8 // 8MiB
)

// ByteBuffer is a growable byte slice that day assembly and container
// serialization borrow as scratch space. Callers take Bytes()[:0] and
// build with append; Grow pre-sizes so the common case never
// reallocates mid-encode.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a ByteBuffer with the given initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps its allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Grow ensures the buffer can take requiredBytes more bytes without
// reallocating. Small buffers grow by DayBufferDefaultSize at a time;
// larger ones by a quarter of their capacity.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := DayBufferDefaultSize
	if cap(bb.B) > 4*DayBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// ByteBufferPool pools ByteBuffers, discarding any that grew past
// maxThreshold so one oversized operation cannot pin memory for the
// life of the process.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a pool handing out buffers of defaultSize
// initial capacity.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var (
	dayDefaultPool       = NewByteBufferPool(DayBufferDefaultSize, DayBufferMaxThreshold)
	containerDefaultPool = NewByteBufferPool(ContainerBufferDefaultSize, ContainerBufferMaxThreshold)
)

// GetDayBuffer retrieves a ByteBuffer from the day-assembly pool.
func GetDayBuffer() *ByteBuffer {
	return dayDefaultPool.Get()
}

// PutDayBuffer returns a ByteBuffer to the day-assembly pool.
func PutDayBuffer(bb *ByteBuffer) {
	dayDefaultPool.Put(bb)
}

// GetContainerBuffer retrieves a ByteBuffer from the
// container-serialization pool.
func GetContainerBuffer() *ByteBuffer {
	return containerDefaultPool.Get()
}

// PutContainerBuffer returns a ByteBuffer to the
// container-serialization pool.
func PutContainerBuffer(bb *ByteBuffer) {
	containerDefaultPool.Put(bb)
}
