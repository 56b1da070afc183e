// Package fx provides stateless pixel-effect kernels for flat RGBA rasters.
//
// # Overview
//
// fx operates on in-memory byte buffers in the layout used by canvas-style
// hosts: 4 bytes per pixel (R, G, B, A), row-major, no row padding. The
// package never allocates or owns the frame it filters; a host hands it a
// buffer view and calls exactly one kernel per invocation.
//
// # Quick Start
//
//	import "github.com/gogpu/fx"
//
//	// Wrap a caller-owned frame (len(pix) == w*h*4).
//	r, err := fx.FromBuffer(pix, w, h)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// In-place tonal adjustment.
//	r.Grayscale()
//	r.HueRotate(90)
//
//	// Neighborhood and remap kernels write into a second raster.
//	out, _ := fx.NewRaster(w, h)
//	fx.SobelEdgeDetection(out, r)
//	fx.SpiralDistortion(out, r, 2.5)
//
// # Calling Convention
//
// Tonal kernels (Grayscale, HueRotate, BrightnessContrast, GammaCorrection)
// are methods on a single *Raster and mutate it in place. Kernels whose
// output pixels depend on a neighborhood or a remapped source location
// (SobelEdgeDetection, SpiralDistortion, WormholeDistortion) take distinct
// destination and source rasters of identical dimensions; the destination is
// fully overwritten. The two shapes are deliberate: the signature encodes
// whether aliasing is allowed.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right, Y increases down
//   - Fractional sampling coordinates are in pixel units, edge-clamped
//
// # Concurrency
//
// Every kernel is a pure function of its raster(s) and scalar parameters and
// runs synchronously on the calling goroutine. Independent calls on
// independent rasters may run concurrently; fx itself spawns no goroutines.
package fx
