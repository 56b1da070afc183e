package fx

import "testing"

// uniformRaster creates a w×h raster filled with a single color.
func uniformRaster(t *testing.T, w, h int, r, g, b, a byte) *Raster {
	t.Helper()
	ras, err := NewRaster(w, h)
	if err != nil {
		t.Fatalf("NewRaster(%d, %d) = %v", w, h, err)
	}
	ras.Fill(r, g, b, a)
	return ras
}

// gradientRaster creates a w×h raster with per-pixel varying channels so
// that positional mix-ups show up in comparisons.
func gradientRaster(t *testing.T, w, h int) *Raster {
	t.Helper()
	ras, err := NewRaster(w, h)
	if err != nil {
		t.Fatalf("NewRaster(%d, %d) = %v", w, h, err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ras.SetRGBA(x, y,
				byte((x*255)/max(w-1, 1)),
				byte((y*255)/max(h-1, 1)),
				byte(((x+y)*255)/max(w+h-2, 1)),
				byte(255-(x*7+y*13)%32))
		}
	}
	return ras
}

// pixEqualWithin reports whether two pixel buffers agree channel-wise
// within the given tolerance.
func pixEqualWithin(a, b []byte, tol int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		d := int(a[i]) - int(b[i])
		if d < 0 {
			d = -d
		}
		if d > tol {
			return false
		}
	}
	return true
}
