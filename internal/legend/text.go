package legend

import (
	"image"
	"image/color"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/kiesman99/tiledebug/internal/logger"
)

var (
	fontOnce sync.Once
	fontData *opentype.Font
	fontErr  error
)

// newFace returns a face of the given pixel size. Faces are not safe for
// concurrent use, so each Draw call creates its own.
func newFace(size float64) font.Face {
	fontOnce.Do(func() {
		fontData, fontErr = opentype.Parse(goregular.TTF)
		if fontErr != nil {
			logger.Logger().Warn("parsing legend font, using basic font", "error", fontErr)
		}
	})
	if fontErr != nil {
		return basicfont.Face7x13
	}

	face, err := opentype.NewFace(fontData, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return basicfont.Face7x13
	}
	return face
}

// drawText draws text left-aligned with its baseline at (x, y).
func drawText(dst draw.Image, face font.Face, text string, x, y int, c color.Color) {
	if text == "" {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
