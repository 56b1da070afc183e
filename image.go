package fx

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// FromImage copies an image.Image into a newly allocated raster.
//
// Canvas-style frames are non-premultiplied, so the raster takes the
// image's NRGBA interpretation. *image.NRGBA sources are copied row by
// row; everything else is converted through golang.org/x/image/draw.
func FromImage(img image.Image) (*Raster, error) {
	bounds := img.Bounds()
	r, err := NewRaster(bounds.Dx(), bounds.Dy())
	if err != nil {
		return nil, err
	}

	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		rowBytes := r.width * bytesPerPixel
		for y := 0; y < r.height; y++ {
			srcStart := y * nrgba.Stride
			copy(r.pix[y*rowBytes:(y+1)*rowBytes], nrgba.Pix[srcStart:srcStart+rowBytes])
		}
		return r, nil
	}

	xdraw.Draw(r.Image(), image.Rect(0, 0, r.width, r.height), img, bounds.Min, xdraw.Src)
	return r, nil
}

// Image returns the raster as an *image.NRGBA sharing the same backing
// buffer. Writes through either view are visible in the other.
func (r *Raster) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    r.pix,
		Stride: r.width * bytesPerPixel,
		Rect:   image.Rect(0, 0, r.width, r.height),
	}
}

// Resize scales src into a newly allocated raster of the given dimensions
// using Catmull-Rom resampling. Useful for bringing camera frames to a
// working resolution before filtering.
func Resize(src *Raster, width, height int) (*Raster, error) {
	dst, err := NewRaster(width, height)
	if err != nil {
		return nil, err
	}
	xdraw.CatmullRom.Scale(dst.Image(), image.Rect(0, 0, width, height), src.Image(), image.Rect(0, 0, src.width, src.height), xdraw.Src, nil)
	return dst, nil
}
