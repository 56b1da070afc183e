package fx

import "math"

// SpiralDistortion warps src into dst with a swirl centered on the image.
//
// dst and src must be distinct, non-overlapping rasters of identical
// dimensions; dst is fully overwritten. For each output pixel the polar
// angle relative to the image center is advanced by
// spiralFactor * (radius / maxRadius), so the twist grows with distance
// from the center, and the source is sampled at the warped coordinate
// through the edge-clamped bilinear sampler. A factor of 0 reproduces the
// source exactly.
func SpiralDistortion(dst, src *Raster, spiralFactor float64) {
	w, h := src.width, src.height
	centerX := float64(w) / 2
	centerY := float64(h) / 2
	maxRadius := math.Hypot(centerX, centerY)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			radius := math.Hypot(dx, dy)
			angle := math.Atan2(dy, dx)

			distorted := angle + spiralFactor*(radius/maxRadius)
			srcX := centerX + radius*math.Cos(distorted)
			srcY := centerY + radius*math.Sin(distorted)

			off := (y*w + x) * bytesPerPixel
			dst.pix[off], dst.pix[off+1], dst.pix[off+2], dst.pix[off+3] = src.Bilinear(srcX, srcY)
		}
	}
}

// maxPullFactor caps the wormhole pull so the distorted radius never
// collapses past the center.
const maxPullFactor = 0.99

// WormholeDistortion warps src into dst, pulling pixels toward the image
// center.
//
// dst and src must be distinct, non-overlapping rasters of identical
// dimensions; dst is fully overwritten. pullFactor is clamped to
// [0, 0.99]. For each output pixel the polar radius is compressed by
// 1 - pullFactor*(radius/maxRadius) with the angle unchanged, so the pull
// strengthens toward the edges; the source is sampled at the compressed
// coordinate through the edge-clamped bilinear sampler. A factor of 0
// reproduces the source exactly.
func WormholeDistortion(dst, src *Raster, pullFactor float64) {
	w, h := src.width, src.height
	centerX := float64(w) / 2
	centerY := float64(h) / 2
	maxRadius := math.Hypot(centerX, centerY)

	pullFactor = clampFloat(pullFactor, 0, maxPullFactor)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dx := float64(x) - centerX
			dy := float64(y) - centerY
			radius := math.Hypot(dx, dy)
			angle := math.Atan2(dy, dx)

			// radius of 0 would make the normalization degenerate; the
			// center pixel maps to itself.
			var normalized float64
			if radius != 0 {
				normalized = radius / maxRadius
			}
			distorted := radius * (1 - pullFactor*normalized)
			if distorted < 0 {
				distorted = 0
			}

			srcX := centerX + distorted*math.Cos(angle)
			srcY := centerY + distorted*math.Sin(angle)

			off := (y*w + x) * bytesPerPixel
			dst.pix[off], dst.pix[off+1], dst.pix[off+2], dst.pix[off+3] = src.Bilinear(srcX, srcY)
		}
	}
}
