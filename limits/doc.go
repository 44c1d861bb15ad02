// Package limits provides centralized capacity constants and validation functions
// for the video engine. This package ensures consistent enforcement of structural
// bounds across all components of the videoengine implementation.
//
// # Capacity Hierarchy
//
// The package defines the fixed bounds that keep per-frame processing allocation
// free and worst-case memory use predictable:
//
//   - MaxChainEffects (32): The capacity of one effect chain. Chains are dense
//     arrays sized at compile time; the bound keeps removal (shift-down) cheap
//     and sorting trivially fast.
//
//   - MaxKeyframes (8): The number of stored intensity keyframes per effect.
//     The curve is a reserved animation extension point and is never evaluated
//     on the processing path.
//
//   - DefaultFrameWidth x DefaultFrameHeight (1920x1080): The working
//     resolution used to size pool blocks when the caller does not configure
//     one. A pool block always fits one RGBA frame at the working resolution.
//
//   - DefaultPoolBlocks (8): Frame-sized blocks in the engine pool. Processing
//     borrows two for scratch; the remainder serve decode/encode staging.
//
//   - MaxFrameDimension (16384): Upper bound for a single frame axis, applied
//     to every externally supplied dimension before allocation.
//
// # Validation Functions
//
// Each validation function reports structured errors with context:
//
//	err := limits.ValidateDimensions(width, height)
//	if err != nil {
//	    // ErrDimensionInvalid or ErrDimensionTooLarge
//	}
//
// Buffer lengths are validated against the exact byte requirement of their
// frame geometry:
//
//	err := limits.ValidateBufferSize(data, limits.FrameBytes(w, h))
//
// # Encoder Bounds
//
// MinQuality/MaxQuality and MinBitrate bound encoder configuration. Encoder
// setters clamp to these rather than failing, matching the tolerant behavior
// expected by editor front ends.
package limits
