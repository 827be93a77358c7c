// File: pool/bytepool.go
// Author: momentics <momentics@gmail.com>

package pool

// BytePool hands out fixed-size byte slices backed by a SyncPool.
type BytePool struct {
	inner *SyncPool[[]byte]
	size  int
}

// NewBytePool creates a pool of size-byte slices.
func NewBytePool(size int) *BytePool {
	return &BytePool{
		inner: NewSyncPool(func() []byte { return make([]byte, size) }),
		size:  size,
	}
}

// GetBuffer returns a buffer from the pool.
func (b *BytePool) GetBuffer() []byte {
	return b.inner.Get()
}

// PutBuffer returns a buffer to the pool. Foreign-sized slices are
// dropped so the pool stays homogeneous.
func (b *BytePool) PutBuffer(buf []byte) {
	if len(buf) != b.size {
		return
	}
	b.inner.Put(buf)
}

// Size returns the fixed slice size of this pool.
func (b *BytePool) Size() int {
	return b.size
}
