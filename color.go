package fx

import "math"

// HSL represents a color in hue/saturation/lightness form.
// H is in degrees [0, 360); S and L are in [0, 1].
// It is a transient intermediate used by hue-based kernels, never stored
// in a raster.
type HSL struct {
	H, S, L float64
}

// RGBToHSL converts 8-bit RGB channel values to HSL.
func RGBToHSL(r, g, b byte) HSL {
	rd := float64(r) / 255
	gd := float64(g) / 255
	bd := float64(b) / 255

	maxC := math.Max(rd, math.Max(gd, bd))
	minC := math.Min(rd, math.Min(gd, bd))
	l := (maxC + minC) / 2

	if maxC == minC {
		// Achromatic: hue and saturation are zero by convention.
		return HSL{H: 0, S: 0, L: l}
	}

	d := maxC - minC
	var s float64
	if l > 0.5 {
		s = d / (2 - maxC - minC)
	} else {
		s = d / (maxC + minC)
	}

	var h float64
	switch maxC {
	case rd:
		h = (gd - bd) / d
		if gd < bd {
			h += 6
		}
	case gd:
		h = (bd-rd)/d + 2
	default: // bd
		h = (rd-gd)/d + 4
	}
	h /= 6

	return HSL{H: h * 360, S: s, L: l}
}

// RGB converts the color back to 8-bit RGB channel values.
func (c HSL) RGB() (r, g, b byte) {
	h := c.H / 360

	if c.S == 0 {
		// Achromatic.
		v := clampU8(c.L * 255)
		return v, v, v
	}

	var q float64
	if c.L < 0.5 {
		q = c.L * (1 + c.S)
	} else {
		q = c.L + c.S - c.L*c.S
	}
	p := 2*c.L - q

	r = clampU8(hueToChannel(p, q, h+1.0/3) * 255)
	g = clampU8(hueToChannel(p, q, h) * 255)
	b = clampU8(hueToChannel(p, q, h-1.0/3) * 255)
	return r, g, b
}

// hueToChannel evaluates the piecewise hue interpolation between the
// (p, q) lightness bounds at hue offset t. The result is in [0, 1].
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// clampU8 clamps a float64 to [0, 255] and converts to byte with rounding.
// Rounding (rather than truncation) keeps identity transforms exact when
// floating error leaves a value a hair below its integer target.
func clampU8(v float64) byte {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return byte(v + 0.5)
}

// clampFloat clamps a float64 value to [minVal, maxVal].
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clampInt clamps an integer value to [minVal, maxVal].
func clampInt(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// luma601 computes BT.601 luminance from 8-bit channels using integer
// arithmetic (weights 0.299/0.587/0.114). The weights sum to exactly 1000,
// so a gray pixel maps to itself.
func luma601(r, g, b byte) int {
	return (299*int(r) + 587*int(g) + 114*int(b)) / 1000
}
