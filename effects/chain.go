package effects

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/opd-ai/videoengine/limits"
	"github.com/opd-ai/videoengine/mempool"
)

// Chain is an ordered, fixed-capacity collection of effects executed
// per frame in priority order. It owns two scratch buffers drawn
// lazily from its pool at the first processing pass and reused across
// calls; Release returns them.
//
// A chain belongs to a single processing stream and is not safe for
// concurrent use.
type Chain struct {
	effects [limits.MaxChainEffects]Effect
	count   int
	sorted  bool

	pool    *mempool.Pool
	scratch [2][]byte
}

// NewChain creates an empty chain backed by the given pool. The pool
// supplies the two scratch buffers used for double-buffered passes.
func NewChain(pool *mempool.Pool) *Chain {
	return &Chain{
		sorted: true,
		pool:   pool,
	}
}

// Add appends an effect and returns its index. The chain stores a
// copy; later changes to the caller's value do not affect the chain.
// Adding always marks the chain unsorted, even when the new effect's
// tier would preserve order.
func (c *Chain) Add(e Effect) (int, error) {
	if c.count >= limits.MaxChainEffects {
		logrus.WithFields(logrus.Fields{
			"function": "Add",
			"capacity": limits.MaxChainEffects,
		}).Error("Effect chain at capacity")
		return -1, fmt.Errorf("%w: capacity %d", ErrChainFull, limits.MaxChainEffects)
	}

	index := c.count
	c.effects[index] = e
	c.count++
	c.sorted = false

	logrus.WithFields(logrus.Fields{
		"function":    "Add",
		"effect_type": e.Type.String(),
		"priority":    e.Priority,
		"index":       index,
	}).Debug("Effect added to chain")

	return index, nil
}

// RemoveAt removes the effect at index, shifting later entries down
// so relative order is preserved.
func (c *Chain) RemoveAt(index int) error {
	if index < 0 || index >= c.count {
		logrus.WithFields(logrus.Fields{
			"function": "RemoveAt",
			"index":    index,
			"count":    c.count,
		}).Error("Effect index out of range")
		return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, c.count)
	}

	copy(c.effects[index:c.count-1], c.effects[index+1:c.count])
	c.count--
	c.sorted = false

	logrus.WithFields(logrus.Fields{
		"function":  "RemoveAt",
		"index":     index,
		"remaining": c.count,
	}).Debug("Effect removed from chain")

	return nil
}

// Clear removes every effect. The scratch buffers stay allocated for
// the next pass.
func (c *Chain) Clear() {
	c.count = 0
	c.sorted = true

	logrus.WithFields(logrus.Fields{
		"function": "Clear",
	}).Debug("Effect chain cleared")
}

// Sort orders the chain by priority tier, lowest first, keeping
// insertion order within a tier. Sorting an already-sorted chain is a
// no-op.
func (c *Chain) Sort() {
	if c.sorted || c.count <= 1 {
		c.sorted = true
		return
	}

	active := c.effects[:c.count]
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority < active[j].Priority
	})
	c.sorted = true
}

// Len returns the number of effects in the chain.
func (c *Chain) Len() int {
	return c.count
}

// At returns a copy of the effect at index.
func (c *Chain) At(index int) (Effect, error) {
	if index < 0 || index >= c.count {
		return Effect{}, fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, index, c.count)
	}
	return c.effects[index], nil
}

// Release returns the scratch buffers to the pool. The chain remains
// usable; the next pass reacquires them.
func (c *Chain) Release() {
	if c == nil || c.pool == nil {
		return
	}
	for i, s := range c.scratch {
		if s != nil {
			c.pool.Free(s)
			c.scratch[i] = nil
		}
	}
}
