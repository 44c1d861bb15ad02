// Package capi exposes the video engine to embedding hosts through
// integer handles, mirroring the calling conventions of a C or wasm
// boundary.
//
// # Overview
//
// Hosts that embed the engine (a browser runtime, a plugin loader, a
// foreign-language binding) cannot hold Go pointers. Every object they
// manage - engines, decoders, decoded frames, encoders, export jobs,
// and buffer pools - is therefore represented by an opaque [Handle]
// issued by a per-type registry. The zero handle is never issued and
// always means "no object".
//
// # Calling Conventions
//
// The functions follow foreign-boundary conventions rather than Go
// ones:
//
//   - Constructors return a Handle, or 0 on failure.
//   - Mutators return bool: true on success, false for unknown handles
//     or rejected arguments.
//   - Index-producing calls return the index, or -1 on failure.
//   - Accessors return zero values for unknown handles.
//
// Errors are logged on the Go side but never returned; a host on the
// far side of a flat boundary can only branch on the return value.
//
// # Buffer Ownership
//
// Pixel buffers cross the boundary by reference. EngineProcessFrame
// and the direct filter and transition helpers work in the caller's
// buffers, and FrameData returns the decoded frame's backing storage,
// valid until the frame handle is destroyed. FrameThumbnail is the
// exception: it hands the caller a freshly allocated preview.
//
// # Instance Management
//
// Handles stay valid until their Destroy function runs. Destroying a
// handle releases the underlying object's resources; destroying an
// unknown handle is a harmless no-op that returns false. Each registry
// is guarded by its own lock, so hosts may call in from multiple
// threads.
//
// # Usage
//
//	engine := capi.EngineCreate(1280, 720)
//	capi.EngineAddColorCorrection(engine, 0.1, 0, 0, 0)
//	capi.EngineAddBlur(engine, 2.5, true)
//
//	ok := capi.EngineProcessFrame(engine, pixels, 1280, 720,
//	    capi.PixelFormatRGBA, 0.033)
//	if !ok {
//	    // inspect host-side state, drop the frame
//	}
//
//	capi.EngineDestroy(engine)
package capi
