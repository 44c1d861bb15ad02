package effects

import "errors"

var (
	// ErrNilChain indicates a nil chain was asked to process a frame
	ErrNilChain = errors.New("nil effect chain")

	// ErrChainFull indicates the chain is at its fixed capacity
	ErrChainFull = errors.New("effect chain full")

	// ErrIndexOutOfRange indicates an effect index outside the chain
	ErrIndexOutOfRange = errors.New("effect index out of range")

	// ErrScratchUnavailable indicates the chain could not acquire both
	// scratch buffers for a processing pass
	ErrScratchUnavailable = errors.New("scratch buffers unavailable")
)
