package fx

import "errors"

// Common errors for raster construction.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("fx: invalid dimensions")

	// ErrBufferSize is returned when a provided pixel buffer does not hold
	// exactly width*height*4 bytes.
	ErrBufferSize = errors.New("fx: buffer size does not match dimensions")
)

// bytesPerPixel is the size of one RGBA8 pixel.
const bytesPerPixel = 4

// Raster is a view over a flat RGBA8 pixel buffer.
//
// Pixels are stored row-major with no padding between rows, 4 bytes per
// pixel in R, G, B, A channel order, so the stride is always width*4.
// A Raster built with FromBuffer does not own its backing slice; the caller
// keeps ownership and must keep the slice valid while the Raster is in use.
//
// Thread safety: a Raster is safe for concurrent reads. Kernels that write
// require external synchronization.
type Raster struct {
	pix    []byte
	width  int
	height int
}

// NewRaster allocates a zeroed raster with the given dimensions.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	return &Raster{
		pix:    make([]byte, width*height*bytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// FromBuffer wraps an existing pixel buffer without copying.
// The buffer must hold exactly width*height*4 bytes.
func FromBuffer(pix []byte, width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if len(pix) != width*height*bytesPerPixel {
		return nil, ErrBufferSize
	}
	return &Raster{pix: pix, width: width, height: height}, nil
}

// Clone creates a deep copy of the raster with its own backing buffer.
func (r *Raster) Clone() *Raster {
	pix := make([]byte, len(r.pix))
	copy(pix, r.pix)
	return &Raster{pix: pix, width: r.width, height: r.height}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Stride returns the number of bytes per row.
func (r *Raster) Stride() int { return r.width * bytesPerPixel }

// Bounds returns the raster dimensions as (width, height).
func (r *Raster) Bounds() (int, int) { return r.width, r.height }

// Pix returns the raw pixel data slice. Modifying it modifies the raster.
func (r *Raster) Pix() []byte { return r.pix }

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if the coordinates are out of bounds.
func (r *Raster) PixelOffset(x, y int) int {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		return -1
	}
	return (y*r.width + x) * bytesPerPixel
}

// RGBAAt returns the channel values of pixel (x, y).
// Returns (0, 0, 0, 0) if the coordinates are out of bounds.
func (r *Raster) RGBAAt(x, y int) (cr, cg, cb, ca byte) {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return 0, 0, 0, 0
	}
	return r.pix[off], r.pix[off+1], r.pix[off+2], r.pix[off+3]
}

// SetRGBA sets the channel values of pixel (x, y).
// Out-of-bounds coordinates are ignored.
func (r *Raster) SetRGBA(x, y int, cr, cg, cb, ca byte) {
	off := r.PixelOffset(x, y)
	if off < 0 {
		return
	}
	r.pix[off] = cr
	r.pix[off+1] = cg
	r.pix[off+2] = cb
	r.pix[off+3] = ca
}

// Fill sets every pixel to the given color.
func (r *Raster) Fill(cr, cg, cb, ca byte) {
	for i := 0; i < len(r.pix); i += bytesPerPixel {
		r.pix[i] = cr
		r.pix[i+1] = cg
		r.pix[i+2] = cb
		r.pix[i+3] = ca
	}
}

// SameSize reports whether two rasters have identical dimensions.
// Dual-buffer kernels require this of their destination and source.
func (r *Raster) SameSize(o *Raster) bool {
	return r.width == o.width && r.height == o.height
}

// Aliases reports whether two rasters share backing memory. Dual-buffer
// kernels require non-aliased destination and source; hosts can check the
// precondition with this before calling.
func (r *Raster) Aliases(o *Raster) bool {
	if len(r.pix) == 0 || len(o.pix) == 0 {
		return false
	}
	return &r.pix[0] == &o.pix[0]
}
