// Package mempool provides a fixed-block arena allocator for frame buffers.
//
// A pool carves one contiguous arena into equally sized blocks and tracks
// occupancy in a bitmap. Allocation is first-fit and never grows the arena:
// exhaustion is reported to the caller instead of falling back to the heap,
// which bounds worst-case memory use during real-time playback.
//
// A pool is owned by a single processing stream and is not safe for
// concurrent use. Independent pools may be used concurrently.
package mempool

import (
	"errors"
	"fmt"
	"math/bits"
	"unsafe"
)

var (
	// ErrInvalidBlockSize indicates a non-positive block size
	ErrInvalidBlockSize = errors.New("invalid block size")

	// ErrInvalidBlockCount indicates a non-positive block count
	ErrInvalidBlockCount = errors.New("invalid block count")

	// ErrPoolExhausted indicates all blocks are in use
	ErrPoolExhausted = errors.New("pool exhausted")
)

// Pool is a fixed-block arena allocator.
type Pool struct {
	arena      []byte
	bitmap     []uint64
	blockSize  int
	blockCount int
	used       int
}

// New creates a pool of blockCount blocks of blockSize bytes each.
// Both arguments must be positive; the arena is allocated once and
// never resized.
func New(blockSize, blockCount int) (*Pool, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockSize, blockSize)
	}
	if blockCount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBlockCount, blockCount)
	}

	return &Pool{
		arena:      make([]byte, blockSize*blockCount),
		bitmap:     make([]uint64, (blockCount+63)/64),
		blockSize:  blockSize,
		blockCount: blockCount,
	}, nil
}

// Alloc returns the first free block, or ErrPoolExhausted when every
// block is in use. The returned slice has length and capacity equal to
// the pool's block size and stays valid until freed.
func (p *Pool) Alloc() ([]byte, error) {
	if p.used >= p.blockCount {
		return nil, fmt.Errorf("%w: %d blocks in use", ErrPoolExhausted, p.used)
	}

	for i := 0; i < p.blockCount; i++ {
		if p.isUsed(i) {
			continue
		}
		p.setUsed(i, true)
		p.used++
		start := i * p.blockSize
		end := start + p.blockSize
		return p.arena[start:end:end], nil
	}

	return nil, ErrPoolExhausted
}

// Free returns a block to the pool, zeroing its memory so stale pixel
// data cannot leak into the next borrower. Buffers that do not point
// into the arena, or that do not start on a block boundary, are
// ignored. Freeing an already-free block is a no-op.
func (p *Pool) Free(buf []byte) {
	if len(buf) == 0 {
		return
	}

	// Block identity comes from the slice's backing pointer, mirroring
	// the pointer-range contract of the embedding boundary. For foreign
	// buffers the subtraction lands outside the arena and is rejected.
	base := uintptr(unsafe.Pointer(unsafe.SliceData(p.arena)))
	ptr := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))
	offset := ptr - base
	if offset >= uintptr(len(p.arena)) {
		return
	}
	if offset%uintptr(p.blockSize) != 0 {
		return
	}

	i := int(offset) / p.blockSize
	if !p.isUsed(i) {
		return
	}

	start := i * p.blockSize
	clear(p.arena[start : start+p.blockSize])
	p.setUsed(i, false)
	p.used--
}

// Used returns the number of blocks currently allocated.
func (p *Pool) Used() int {
	return p.used
}

// Blocks returns the total number of blocks in the pool.
func (p *Pool) Blocks() int {
	return p.blockCount
}

// BlockSize returns the size of each block in bytes.
func (p *Pool) BlockSize() int {
	return p.blockSize
}

func (p *Pool) isUsed(i int) bool {
	return p.bitmap[i/64]&(1<<(i%64)) != 0
}

func (p *Pool) setUsed(i int, used bool) {
	if used {
		p.bitmap[i/64] |= 1 << (i % 64)
	} else {
		p.bitmap[i/64] &^= 1 << (i % 64)
	}
}

// popcount recounts occupancy from the bitmap. Used returns the running
// counter; the two must always agree.
func (p *Pool) popcount() int {
	n := 0
	for _, w := range p.bitmap {
		n += bits.OnesCount64(w)
	}
	return n
}
