package fx

import "math"

// Sobel gradient kernels, applied to the BT.601 luminance of the 3x3
// neighborhood around each interior pixel.
var (
	sobelX = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
	sobelY = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}
)

// SobelEdgeDetection computes gradient-magnitude edges of src into dst.
//
// dst and src must be distinct, non-overlapping rasters of identical
// dimensions; dst is fully overwritten. For each interior pixel the
// horizontal and vertical Sobel kernels are applied to the luminance of
// its 3x3 neighborhood and the clamped gradient magnitude is written to
// R, G and B; alpha is copied from the source pixel. Border pixels are
// not covered by the 3x3 window and are written opaque black.
func SobelEdgeDetection(dst, src *Raster) {
	w, h := src.width, src.height

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			var sumX, sumY int
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					off := ((y+ky)*w + (x + kx)) * bytesPerPixel
					intensity := luma601(src.pix[off], src.pix[off+1], src.pix[off+2])
					sumX += sobelX[ky+1][kx+1] * intensity
					sumY += sobelY[ky+1][kx+1] * intensity
				}
			}
			magnitude := math.Sqrt(float64(sumX*sumX + sumY*sumY))
			edge := clampU8(magnitude)

			off := (y*w + x) * bytesPerPixel
			dst.pix[off] = edge
			dst.pix[off+1] = edge
			dst.pix[off+2] = edge
			dst.pix[off+3] = src.pix[off+3]
		}
	}

	// Border pass: every edge pixel becomes opaque black, so together with
	// the interior pass each output pixel is written exactly once.
	for x := 0; x < w; x++ {
		dst.SetRGBA(x, 0, 0, 0, 0, 255)
		dst.SetRGBA(x, h-1, 0, 0, 0, 255)
	}
	for y := 0; y < h; y++ {
		dst.SetRGBA(0, y, 0, 0, 0, 255)
		dst.SetRGBA(w-1, y, 0, 0, 0, 255)
	}
}
