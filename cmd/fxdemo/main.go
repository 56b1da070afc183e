// Command fxdemo applies a single fx pixel effect to an image file.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/fx"
)

var filters = []string{
	"grayscale", "sobel", "hue", "spiral", "wormhole", "brightness", "gamma",
}

func main() {
	var (
		input      = flag.String("input", "", "input image (PNG or JPEG)")
		output     = flag.String("output", "out.png", "output file")
		filter     = flag.String("filter", "grayscale", "filter to apply: "+strings.Join(filters, ", "))
		angle      = flag.Float64("angle", 90, "hue rotation angle in degrees")
		spiral     = flag.Float64("spiral", 2.5, "spiral twist factor")
		pull       = flag.Float64("pull", 0.5, "wormhole pull factor [0, 0.99]")
		brightness = flag.Float64("brightness", 0, "brightness adjustment [-1, 1]")
		contrast   = flag.Float64("contrast", 0, "contrast adjustment [-1, 1]")
		gamma      = flag.Float64("gamma", 1, "gamma value")
		quality    = flag.Int("quality", 90, "JPEG quality (1-100)")
	)
	flag.Parse()

	if *input == "" {
		flag.Usage()
		os.Exit(2)
	}

	src, err := fx.LoadImage(*input)
	if err != nil {
		log.Fatalf("Failed to load: %v", err)
	}

	out, err := apply(src, *filter, params{
		angle:      *angle,
		spiral:     *spiral,
		pull:       *pull,
		brightness: *brightness,
		contrast:   *contrast,
		gamma:      *gamma,
	})
	if err != nil {
		log.Fatalf("Failed to apply %s: %v", *filter, err)
	}

	if err := save(out, *output, *quality); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Wrote %s (%dx%d, %s)\n", *output, out.Width(), out.Height(), *filter)
}

type params struct {
	angle      float64
	spiral     float64
	pull       float64
	brightness float64
	contrast   float64
	gamma      float64
}

// apply runs one named filter. In-place filters mutate src and return it;
// neighborhood and remap filters write into a fresh raster.
func apply(src *fx.Raster, name string, p params) (*fx.Raster, error) {
	switch name {
	case "grayscale":
		src.Grayscale()
		return src, nil
	case "hue":
		src.HueRotate(p.angle)
		return src, nil
	case "brightness":
		src.BrightnessContrast(p.brightness, p.contrast)
		return src, nil
	case "gamma":
		src.GammaCorrection(p.gamma)
		return src, nil
	case "sobel", "spiral", "wormhole":
		dst, err := fx.NewRaster(src.Width(), src.Height())
		if err != nil {
			return nil, err
		}
		switch name {
		case "sobel":
			fx.SobelEdgeDetection(dst, src)
		case "spiral":
			fx.SpiralDistortion(dst, src, p.spiral)
		case "wormhole":
			fx.WormholeDistortion(dst, src, p.pull)
		}
		return dst, nil
	default:
		return nil, fmt.Errorf("unknown filter %q (choose one of: %s)", name, strings.Join(filters, ", "))
	}
}

func save(r *fx.Raster, path string, quality int) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return r.SaveJPEG(path, quality)
	default:
		return r.SavePNG(path)
	}
}
