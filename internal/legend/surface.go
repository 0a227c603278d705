package legend

import (
	"encoding/binary"
	"image"
	"image/color"
)

// Pack packs c into a 32-bit value laid out as R | G<<8 | B<<16 | A<<24.
// In little-endian memory that is the byte order R, G, B, A, the layout of a
// browser canvas ImageData viewed as a Uint32Array. Channels are not
// premultiplied.
func Pack(c color.NRGBA) uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16 | uint32(c.A)<<24
}

// Unpack is the inverse of Pack.
func Unpack(p uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(p),
		G: uint8(p >> 8),
		B: uint8(p >> 16),
		A: uint8(p >> 24),
	}
}

// Surface is a caller-owned pixel buffer of packed colors in row-major order.
// Pixel (x, y) lives at Pix[y*width+x].
//
// Surface implements draw.Image so text can be drawn onto it.
type Surface struct {
	width  int
	height int
	Pix    []uint32
}

// NewSurface allocates a transparent surface.
func NewSurface(width, height int) *Surface {
	s := &Surface{}
	s.Resize(width, height)
	return s
}

func (s *Surface) Width() int  { return s.width }
func (s *Surface) Height() int { return s.height }

// Resize sets the surface dimensions, reallocating the buffer when they change.
// Negative dimensions are treated as zero.
func (s *Surface) Resize(width, height int) {
	width = max(width, 0)
	height = max(height, 0)
	if width == s.width && height == s.height && len(s.Pix) == width*height {
		return
	}
	s.width = width
	s.height = height
	s.Pix = make([]uint32, width*height)
}

// Fill sets every pixel to p.
func (s *Surface) Fill(p uint32) {
	for i := range s.Pix {
		s.Pix[i] = p
	}
}

// PixelAt returns the packed color at (x, y), or 0 outside the surface.
func (s *Surface) PixelAt(x, y int) uint32 {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return 0
	}
	return s.Pix[y*s.width+x]
}

// put writes p at a flat row-major index. Columns past a row's end land on the
// next row; indices outside the buffer are dropped.
func (s *Surface) put(i int, p uint32) {
	if i < 0 || i >= len(s.Pix) {
		return
	}
	s.Pix[i] = p
}

func (s *Surface) setPixel(x, y int, p uint32) {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.Pix[y*s.width+x] = p
}

func (s *Surface) ColorModel() color.Model { return color.NRGBAModel }

func (s *Surface) Bounds() image.Rectangle { return image.Rect(0, 0, s.width, s.height) }

func (s *Surface) At(x, y int) color.Color { return Unpack(s.PixelAt(x, y)) }

func (s *Surface) Set(x, y int, c color.Color) {
	s.setPixel(x, y, Pack(color.NRGBAModel.Convert(c).(color.NRGBA)))
}

// NRGBA copies the surface into an image with explicit R, G, B, A byte order,
// independent of host endianness.
func (s *Surface) NRGBA() *image.NRGBA {
	img := image.NewNRGBA(s.Bounds())
	for i, p := range s.Pix {
		binary.LittleEndian.PutUint32(img.Pix[i*4:], p)
	}
	return img
}
