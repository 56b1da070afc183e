package fx

import "math"

// Bilinear samples the raster at the fractional pixel coordinate (u, v)
// and returns the interpolated channel values, alpha included.
//
// Coordinates are clamped to [0, width-1] and [0, height-1] before
// sampling, and each of the four corner indices is clamped into bounds,
// so requests outside the raster degrade to the edge-clamped color rather
// than reading out of range. At exact integer coordinates the result is
// the source pixel, unchanged.
func (r *Raster) Bilinear(u, v float64) (cr, cg, cb, ca byte) {
	w, h := r.width, r.height

	u = clampFloat(u, 0, float64(w-1))
	v = clampFloat(v, 0, float64(h-1))

	x0 := int(math.Floor(u))
	y0 := int(math.Floor(v))
	tx := u - float64(x0)
	ty := v - float64(y0)

	x1 := clampInt(x0+1, 0, w-1)
	y1 := clampInt(y0+1, 0, h-1)
	x0 = clampInt(x0, 0, w-1)
	y0 = clampInt(y0, 0, h-1)

	r00, g00, b00, a00 := r.RGBAAt(x0, y0)
	r10, g10, b10, a10 := r.RGBAAt(x1, y0)
	r01, g01, b01, a01 := r.RGBAAt(x0, y1)
	r11, g11, b11, a11 := r.RGBAAt(x1, y1)

	cr = clampU8(lerp2D(float64(r00), float64(r10), float64(r01), float64(r11), tx, ty))
	cg = clampU8(lerp2D(float64(g00), float64(g10), float64(g01), float64(g11), tx, ty))
	cb = clampU8(lerp2D(float64(b00), float64(b10), float64(b01), float64(b11), tx, ty))
	ca = clampU8(lerp2D(float64(a00), float64(a10), float64(a01), float64(a11), tx, ty))
	return cr, cg, cb, ca
}

// lerp performs linear interpolation between a and b.
func lerp(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

// lerp2D performs bilinear interpolation on a 2x2 grid.
func lerp2D(v00, v10, v01, v11, tx, ty float64) float64 {
	v0 := lerp(v00, v10, tx)
	v1 := lerp(v01, v11, tx)
	return lerp(v0, v1, ty)
}
