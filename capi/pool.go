package capi

import (
	"github.com/opd-ai/videoengine/mempool"
)

// PoolCreate builds a fixed-block buffer pool and returns its handle,
// or 0 when the geometry is invalid.
func PoolCreate(blockSize, blockCount int) Handle {
	p, err := mempool.New(blockSize, blockCount)
	if err != nil {
		return 0
	}
	return pools.put(p)
}

// PoolDestroy releases the pool handle. Outstanding blocks become
// garbage along with the arena.
func PoolDestroy(h Handle) bool {
	_, ok := pools.remove(h)
	return ok
}

// PoolAlloc returns a free block by reference, or nil when the pool is
// exhausted or unknown.
func PoolAlloc(h Handle) []byte {
	p, ok := pools.get(h)
	if !ok {
		return nil
	}
	buf, err := p.Alloc()
	if err != nil {
		return nil
	}
	return buf
}

// PoolFree returns a block to its pool. Foreign buffers are ignored.
func PoolFree(h Handle, buf []byte) bool {
	p, ok := pools.get(h)
	if !ok {
		return false
	}
	p.Free(buf)
	return true
}

// PoolUsed returns the number of blocks currently allocated, or 0.
func PoolUsed(h Handle) int {
	p, ok := pools.get(h)
	if !ok {
		return 0
	}
	return p.Used()
}

// PoolBlocks returns the pool's total block count, or 0.
func PoolBlocks(h Handle) int {
	p, ok := pools.get(h)
	if !ok {
		return 0
	}
	return p.Blocks()
}

// PoolBlockSize returns the pool's block size in bytes, or 0.
func PoolBlockSize(h Handle) int {
	p, ok := pools.get(h)
	if !ok {
		return 0
	}
	return p.BlockSize()
}
