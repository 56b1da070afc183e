package fx

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// A zero spiral factor must reproduce the source exactly: the polar
// round-trip lands back on each pixel center and the sampler returns it
// unchanged.
func TestSpiralZeroFactorIdentity(t *testing.T) {
	for _, size := range [][2]int{{8, 8}, {7, 5}, {1, 1}} {
		src := gradientRaster(t, size[0], size[1])
		dst := uniformRaster(t, size[0], size[1], 1, 2, 3, 4)

		SpiralDistortion(dst, src, 0)

		if diff := cmp.Diff(src.Pix(), dst.Pix()); diff != "" {
			t.Errorf("spiral(0) on %dx%d is not the identity:\n%s", size[0], size[1], diff)
		}
	}
}

func TestWormholeZeroFactorIdentity(t *testing.T) {
	for _, size := range [][2]int{{8, 8}, {7, 5}, {1, 1}} {
		src := gradientRaster(t, size[0], size[1])
		dst := uniformRaster(t, size[0], size[1], 1, 2, 3, 4)

		WormholeDistortion(dst, src, 0)

		if diff := cmp.Diff(src.Pix(), dst.Pix()); diff != "" {
			t.Errorf("wormhole(0) on %dx%d is not the identity:\n%s", size[0], size[1], diff)
		}
	}
}

// Uniform images are fixed points of both remaps: wherever a pixel is
// sampled from, it has the same color.
func TestRemapUniformFixedPoint(t *testing.T) {
	src := uniformRaster(t, 10, 10, 40, 80, 120, 160)

	spiral := uniformRaster(t, 10, 10, 0, 0, 0, 0)
	SpiralDistortion(spiral, src, 3.7)
	if diff := cmp.Diff(src.Pix(), spiral.Pix()); diff != "" {
		t.Errorf("spiral changed a uniform image:\n%s", diff)
	}

	worm := uniformRaster(t, 10, 10, 0, 0, 0, 0)
	WormholeDistortion(worm, src, 0.8)
	if diff := cmp.Diff(src.Pix(), worm.Pix()); diff != "" {
		t.Errorf("wormhole changed a uniform image:\n%s", diff)
	}
}

// The pull factor is clamped to 0.99, so any larger value behaves the same.
func TestWormholePullFactorClamped(t *testing.T) {
	src := gradientRaster(t, 9, 9)
	capped := uniformRaster(t, 9, 9, 0, 0, 0, 0)
	over := uniformRaster(t, 9, 9, 0, 0, 0, 0)

	WormholeDistortion(capped, src, 0.99)
	WormholeDistortion(over, src, 5)

	if diff := cmp.Diff(capped.Pix(), over.Pix()); diff != "" {
		t.Errorf("pullFactor 5 differs from clamped 0.99:\n%s", diff)
	}

	neg := uniformRaster(t, 9, 9, 0, 0, 0, 0)
	WormholeDistortion(neg, src, -1)
	if diff := cmp.Diff(src.Pix(), neg.Pix()); diff != "" {
		t.Errorf("negative pullFactor is not clamped to the identity:\n%s", diff)
	}
}

// A strong pull drags edge pixels toward the center color.
func TestWormholePullsTowardCenter(t *testing.T) {
	src := uniformRaster(t, 9, 9, 0, 0, 255, 255) // blue field
	for y := 3; y <= 5; y++ {
		for x := 3; x <= 5; x++ {
			src.SetRGBA(x, y, 255, 0, 0, 255) // red center block
		}
	}
	dst, err := NewRaster(9, 9)
	if err != nil {
		t.Fatal(err)
	}

	WormholeDistortion(dst, src, 0.9)

	// The corner's source radius shrinks to a tenth, landing inside the
	// red block.
	cr, _, cb, _ := dst.RGBAAt(0, 0)
	if cr != 255 || cb != 0 {
		t.Errorf("corner after pull = (R=%d, B=%d), want the center color (255, 0)", cr, cb)
	}
	// The exact center keeps its own color.
	cr, _, _, _ = dst.RGBAAt(4, 4)
	if cr != 255 {
		t.Errorf("center after pull R = %d, want 255", cr)
	}
}

// The spiral twists by spiralFactor radians at maximum radius, so a marker
// on the midline moves while the center stays put.
func TestSpiralMovesOffCenterPixels(t *testing.T) {
	src := uniformRaster(t, 15, 15, 0, 0, 0, 255)
	for x := 0; x < 15; x++ {
		src.SetRGBA(x, 7, 255, 255, 255, 255) // horizontal white line
	}
	dst, err := NewRaster(15, 15)
	if err != nil {
		t.Fatal(err)
	}

	SpiralDistortion(dst, src, 3)

	if diff := cmp.Diff(src.Pix(), dst.Pix()); diff == "" {
		t.Error("spiral(3) left a non-uniform image unchanged")
	}

	// Output is fully defined: alpha was 255 everywhere in the source and
	// sampling can only interpolate existing values.
	for i := 3; i < len(dst.Pix()); i += 4 {
		if dst.Pix()[i] != 255 {
			t.Fatalf("alpha at byte %d = %d, want 255", i, dst.Pix()[i])
		}
	}
}
