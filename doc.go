// Package videoengine implements the frame processing core of a video
// editor backend.
//
// The engine applies an ordered chain of effects to raw RGBA frames,
// one frame at a time, at interactive rates. All working memory comes
// from a fixed-block frame pool so that steady-state playback performs
// no heap allocation. This package provides the facade that integrates
// the subsystems: the effect chain, the filter and transition
// algorithms, the frame model, the buffer pool, and the export path.
//
// # Getting Started
//
// Create an engine with options, add effects, and feed it frames:
//
//	options := videoengine.NewOptions()
//	options.Width = 1280
//	options.Height = 720
//
//	engine, err := videoengine.New(options)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	// Build the effect chain
//	engine.AddEffect(effects.NewColorCorrection(0.1, 0.05, 0, 0))
//	engine.AddEffect(effects.NewBlur(2, true))
//
//	// Process frames as they arrive
//	for i, f := range frames {
//	    if err := engine.ProcessFrame(f, float64(i)/30.0); err != nil {
//	        log.Printf("frame %d: %v", i, err)
//	    }
//	}
//
// # Core Types
//
// The package defines several core types:
//
//   - [Engine]: Main facade integrating the chain, pool, and export path
//   - [Options]: Configuration for creating a new engine
//   - [Stats]: Snapshot of processing counters and pool occupancy
//   - [TimeProvider]: Interface for injectable time (testing support)
//
// # Effect Chain
//
// Effects execute in priority order (color correction, then filters,
// then transforms, then transitions) regardless of insertion order, and
// each effect is gated by its own time window:
//
//	blur := effects.NewBlur(3, true)
//	blur.ActiveFrom = 2.0
//	blur.ActiveUntil = 5.0
//	index, err := engine.AddEffect(blur)
//
//	// Remove or clear later
//	engine.RemoveEffect(index)
//	engine.ClearEffects()
//
// # Export
//
// Attach an encoder and drive an export session through the engine. The
// encoder routes every staged frame back through the effect chain:
//
//	enc, err := export.NewEncoder(1280, 720, 30)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	engine.AttachEncoder(enc)
//
//	engine.StartExport("out.vexp")
//	for i, data := range rawFrames {
//	    engine.ExportFrame(data, float64(i)/30.0)
//	}
//	engine.FinishExport()
//
// # Configuration
//
// Options load from YAML, with omitted fields keeping their defaults:
//
//	options, err := videoengine.LoadOptions("engine.yaml")
//
// # Deterministic Testing
//
// Time-dependent components support injectable time providers, which
// makes the per-frame latency counters reproducible in tests:
//
//	engine, _ := videoengine.New(nil)
//	engine.SetTimeProvider(mockTime)
//
// # Integration Architecture
//
// This package serves as the main integration point, orchestrating:
//
//   - [effects]: Effect chain ordering, time windows, and the frame pass
//   - [filter]: Pixel filter algorithms (blur, sharpen, color grading)
//   - [transition]: Two-source blend algorithms for clip boundaries
//   - [frame]: Frame model, format conversion, resizing, thumbnails
//   - [mempool]: Fixed-block arena allocator for frame buffers
//   - [export]: Decoder and encoder stand-ins, export jobs, artifacts
//   - [limits]: Shared capacity limits and dimension validation
//
// # Host Bindings
//
// The capi subpackage exposes the engine to embedding hosts through
// integer handles, mirroring the calling conventions of a C or wasm
// boundary. See the capi package documentation for details.
package videoengine
