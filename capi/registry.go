package capi

import (
	"sync"

	"github.com/opd-ai/videoengine"
	"github.com/opd-ai/videoengine/export"
	"github.com/opd-ai/videoengine/frame"
	"github.com/opd-ai/videoengine/mempool"
)

// Handle identifies one object across the embedding boundary. Handles
// are issued starting at 1; zero is reserved as the invalid handle.
type Handle uint64

// registry maps handles to live objects of one type. IDs are monotonic
// and never reused, so a stale handle can only miss, never alias a
// newer object.
type registry[T any] struct {
	mu    sync.RWMutex
	next  Handle
	items map[Handle]T
}

func newRegistry[T any]() *registry[T] {
	return &registry[T]{
		next:  1,
		items: make(map[Handle]T),
	}
}

func (r *registry[T]) put(item T) Handle {
	r.mu.Lock()
	defer r.mu.Unlock()

	h := r.next
	r.next++
	r.items[h] = item
	return h
}

func (r *registry[T]) get(h Handle) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[h]
	return item, ok
}

func (r *registry[T]) remove(h Handle) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[h]
	if ok {
		delete(r.items, h)
	}
	return item, ok
}

func (r *registry[T]) count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// One registry per object type the boundary hands out.
var (
	engines  = newRegistry[*videoengine.Engine]()
	decoders = newRegistry[*export.Decoder]()
	frames   = newRegistry[*frame.Frame]()
	encoders = newRegistry[*export.Encoder]()
	jobs     = newRegistry[*export.Job]()
	pools    = newRegistry[*mempool.Pool]()
)
