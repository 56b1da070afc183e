package fx

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LoadImage loads an image from the given file path into a raster,
// choosing the decoder by extension and falling back to content detection.
// Supported formats: PNG, JPEG.
func LoadImage(path string) (*Raster, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("fx: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	var r *Raster
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		r, err = decodeWith(f, png.Decode)
	case ".jpg", ".jpeg":
		r, err = decodeWith(f, jpeg.Decode)
	default:
		r, err = Decode(f)
	}
	if err != nil {
		return nil, err
	}

	Logger().Debug("fx: loaded image", "path", path, "width", r.width, "height", r.height)
	return r, nil
}

// Decode decodes an image from the given reader into a raster,
// auto-detecting the format.
func Decode(rd io.Reader) (*Raster, error) {
	img, _, err := image.Decode(rd)
	if err != nil {
		return nil, fmt.Errorf("fx: decode: %w", err)
	}
	return FromImage(img)
}

func decodeWith(rd io.Reader, decode func(io.Reader) (image.Image, error)) (*Raster, error) {
	img, err := decode(rd)
	if err != nil {
		return nil, fmt.Errorf("fx: decode: %w", err)
	}
	return FromImage(img)
}

// SavePNG saves the raster as a PNG file.
func (r *Raster) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("fx: create file: %w", err)
	}
	if err := r.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// SaveJPEG saves the raster as a JPEG file with the given quality (1-100).
func (r *Raster) SaveJPEG(path string, quality int) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("fx: create file: %w", err)
	}
	if err := r.EncodeJPEG(f, quality); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// EncodePNG encodes the raster as PNG to the given writer.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("fx: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the raster as JPEG to the given writer.
func (r *Raster) EncodeJPEG(w io.Writer, quality int) error {
	quality = clampInt(quality, 1, 100)
	if err := jpeg.Encode(w, r.Image(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("fx: encode JPEG: %w", err)
	}
	return nil
}
