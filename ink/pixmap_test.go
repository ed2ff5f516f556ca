package ink

import (
	"bytes"
	"image/png"
	"math"
	"testing"
)

func TestPixmapSetGetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)

	pm.SetPixel(5, 5, RGBA{R: 0.5, G: 0.25, B: 0.125, A: 1})

	// Verify raw data directly.
	i := (5*10 + 5) * 4
	data := pm.Data()
	if data[i+0] != 127 || data[i+1] != 63 || data[i+2] != 31 || data[i+3] != 255 {
		t.Errorf("raw data mismatch: got (%d, %d, %d, %d), want (127, 63, 31, 255)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}

	got := pm.GetPixel(5, 5)
	tolerance := 0.01
	if math.Abs(got.R-0.5) > tolerance || math.Abs(got.A-1) > tolerance {
		t.Errorf("GetPixel mismatch: got %+v", got)
	}
}

func TestPixmapOutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	// Save original data.
	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	// These should not panic and should not modify data.
	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, White)
	}
	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}

	// Out-of-bounds reads return transparent.
	if got := pm.GetPixel(-1, -1); got != Transparent {
		t.Errorf("out-of-bounds GetPixel = %+v, want Transparent", got)
	}
}

func TestPixmapClear(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.SetPixel(2, 2, Black)

	pm.Clear(Transparent)

	for i, v := range pm.Data() {
		if v != 0 {
			t.Fatalf("Clear(Transparent) left data at index %d: %d", i, v)
		}
	}
}

func TestPixmapToImage(t *testing.T) {
	pm := NewPixmap(8, 6)
	pm.SetPixel(3, 2, Black)

	img := pm.ToImage()
	if img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("ToImage bounds = %v, want 8x6", img.Bounds())
	}

	r, g, b, a := img.At(3, 2).RGBA()
	if r != 0 || g != 0 || b != 0 || a != 0xFFFF {
		t.Errorf("ToImage pixel (3,2) = (%d,%d,%d,%d), want opaque black", r, g, b, a)
	}
}

func TestPixmapEncodePNG(t *testing.T) {
	pm := NewPixmap(20, 10)
	pm.Clear(White)

	var buf bytes.Buffer
	if err := pm.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("PNG decode failed: %v", err)
	}
	if img.Bounds().Dx() != 20 || img.Bounds().Dy() != 10 {
		t.Errorf("decoded bounds = %v, want 20x10", img.Bounds())
	}
}

func TestPixmapImageInterface(t *testing.T) {
	pm := NewPixmap(5, 5)

	if pm.Bounds().Dx() != 5 || pm.Bounds().Dy() != 5 {
		t.Errorf("Bounds = %v, want 5x5", pm.Bounds())
	}

	pm.SetPixel(1, 1, White)
	r, _, _, a := pm.At(1, 1).RGBA()
	if r != 0xFFFF || a != 0xFFFF {
		t.Errorf("At(1,1) = (r=%d, a=%d), want opaque white", r, a)
	}
}
