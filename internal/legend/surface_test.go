package legend

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

func TestPack(t *testing.T) {
	c := color.NRGBA{R: 0x01, G: 0x02, B: 0x03, A: 0x04}

	if got := Pack(c); got != 0x04030201 {
		t.Errorf("Expected 0x04030201, got %#08x", got)
	}
	if got := Unpack(Pack(c)); got != c {
		t.Errorf("Expected %v, got %v", c, got)
	}
	if Pack(color.NRGBA{R: 255, G: 255, B: 255, A: 255}) != 0xffffffff {
		t.Error("Expected opaque white to pack to all ones")
	}
}

func TestSurfaceNRGBAByteOrder(t *testing.T) {
	s := NewSurface(2, 1)
	s.Pix[1] = Pack(color.NRGBA{R: 10, G: 20, B: 30, A: 40})

	img := s.NRGBA()
	want := []uint8{0, 0, 0, 0, 10, 20, 30, 40}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Fatalf("byte %d: expected %d, got %d", i, b, img.Pix[i])
		}
	}
}

func TestSurfaceIsDrawImage(t *testing.T) {
	var _ draw.Image = (*Surface)(nil)

	s := NewSurface(4, 3)
	draw.Draw(s, image.Rect(1, 1, 3, 2), image.NewUniform(color.NRGBA{G: 255, A: 255}), image.Point{}, draw.Src)

	green := Pack(color.NRGBA{G: 255, A: 255})
	if s.PixelAt(1, 1) != green || s.PixelAt(2, 1) != green {
		t.Error("Expected drawn pixels to be green")
	}
	if s.PixelAt(0, 0) != 0 || s.PixelAt(3, 2) != 0 {
		t.Error("Expected untouched pixels to stay transparent")
	}
	if s.PixelAt(-1, 0) != 0 || s.PixelAt(4, 0) != 0 {
		t.Error("Expected zero outside the surface")
	}
}

func TestSurfacePutWrapsAndDrops(t *testing.T) {
	s := NewSurface(3, 2)

	s.put(4, 7)
	if s.PixelAt(1, 1) != 7 {
		t.Error("Expected flat index 4 to land on (1,1)")
	}

	s.put(-1, 9)
	s.put(6, 9)
	for _, p := range s.Pix {
		if p == 9 {
			t.Error("Expected out-of-buffer writes to be dropped")
		}
	}
}

func TestSurfaceResize(t *testing.T) {
	s := NewSurface(2, 2)
	s.Fill(5)
	s.Resize(2, 2)
	if s.Pix[0] != 5 {
		t.Error("Expected same-size resize to keep pixels")
	}

	s.Resize(3, 1)
	if len(s.Pix) != 3 || s.Width() != 3 || s.Height() != 1 {
		t.Errorf("Unexpected surface after resize: %dx%d, %d pixels", s.Width(), s.Height(), len(s.Pix))
	}

	s.Resize(-4, 2)
	if len(s.Pix) != 0 {
		t.Errorf("Expected empty surface, got %d pixels", len(s.Pix))
	}
}
