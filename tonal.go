package fx

import "math"

// Grayscale converts the raster to grayscale in place using BT.601
// luminance weights (0.299, 0.587, 0.114). Alpha is left untouched.
func (r *Raster) Grayscale() {
	for i := 0; i < len(r.pix); i += bytesPerPixel {
		gray := byte(luma601(r.pix[i], r.pix[i+1], r.pix[i+2]))
		r.pix[i] = gray
		r.pix[i+1] = gray
		r.pix[i+2] = gray
	}
}

// HueRotate rotates the hue of every pixel by angleDegrees, in place.
// The angle may be negative or exceed 360; it is wrapped into [0, 360).
// Alpha is left untouched.
func (r *Raster) HueRotate(angleDegrees float64) {
	for i := 0; i < len(r.pix); i += bytesPerPixel {
		hsl := RGBToHSL(r.pix[i], r.pix[i+1], r.pix[i+2])
		hsl.H += angleDegrees
		for hsl.H < 0 {
			hsl.H += 360
		}
		hsl.H = math.Mod(hsl.H, 360)
		r.pix[i], r.pix[i+1], r.pix[i+2] = hsl.RGB()
	}
}

// BrightnessContrast adjusts brightness and contrast in place.
//
// contrast maps to a scale factor of 1+contrast applied to each channel's
// distance from the 128 midpoint, so -1 flattens to gray and +1 doubles
// contrast. brightness*255 is then added. Results are clamped to [0, 255];
// alpha is left untouched. BrightnessContrast(0, 0) is the identity.
func (r *Raster) BrightnessContrast(brightness, contrast float64) {
	factor := 1 + contrast
	offset := brightness * 255

	for i := 0; i < len(r.pix); i += bytesPerPixel {
		r.pix[i] = clampU8(128 + factor*(float64(r.pix[i])-128) + offset)
		r.pix[i+1] = clampU8(128 + factor*(float64(r.pix[i+1])-128) + offset)
		r.pix[i+2] = clampU8(128 + factor*(float64(r.pix[i+2])-128) + offset)
	}
}

// minGamma floors the gamma parameter away from zero so the 1/gamma
// exponent stays finite.
const minGamma = 0.01

// GammaCorrection applies the power-law transfer c' = c^(1/gamma) to each
// channel in place, with channels normalized to [0, 1] for the exponent.
// gamma below 0.01 is floored to 0.01. Alpha is left untouched.
// GammaCorrection(1) is the identity.
func (r *Raster) GammaCorrection(gamma float64) {
	if gamma < minGamma {
		gamma = minGamma
	}
	inv := 1 / gamma

	for i := 0; i < len(r.pix); i += bytesPerPixel {
		r.pix[i] = gammaChannel(r.pix[i], inv)
		r.pix[i+1] = gammaChannel(r.pix[i+1], inv)
		r.pix[i+2] = gammaChannel(r.pix[i+2], inv)
	}
}

func gammaChannel(c byte, inv float64) byte {
	return clampU8(math.Pow(float64(c)/255, inv) * 255)
}
