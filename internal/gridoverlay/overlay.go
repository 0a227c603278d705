// Package gridoverlay draws a debug view of a tiled map's grid: one coordinate
// label and a partial boundary outline per visible tile.
package gridoverlay

import (
	"image/color"
	"strconv"

	"github.com/paulmach/orb"

	"github.com/kiesman99/tiledebug/pkg/tile"
)

// TextAnchor is the horizontal anchor of a text primitive.
type TextAnchor string

const (
	AnchorStart  TextAnchor = "start"
	AnchorMiddle TextAnchor = "middle"
	AnchorEnd    TextAnchor = "end"
)

const (
	labelSize  = 10
	labelInset = 0.05
)

// Primitive is a drawable object generated for a single tile.
type Primitive interface {
	PrimitiveID() string
}

// TextPrimitive is a single text run placed in world coordinates.
type TextPrimitive struct {
	ID       string
	Position orb.Point
	Text     string
	Color    color.NRGBA
	Size     float64
	Anchor   TextAnchor
	// Billboard text faces the camera. Grid labels keep a fixed world orientation.
	Billboard bool
}

func (p TextPrimitive) PrimitiveID() string { return p.ID }

// PathPrimitive is a connected polyline in world coordinates.
type PathPrimitive struct {
	ID             string
	Path           orb.LineString
	Color          color.NRGBA
	WidthMinPixels float64
}

func (p PathPrimitive) PrimitiveID() string { return p.ID }

// SubLayerRenderer produces the ordered primitives drawn for one tile under id.
type SubLayerRenderer interface {
	RenderSubLayers(t tile.Tile, id string) []Primitive
}

// Style is the drawing style of one overlay pass.
type Style struct {
	Color color.NRGBA
}

// Config is passed through to the tiling host unchanged.
type Config struct {
	TileSize int
	MinZoom  int
	MaxZoom  int
	Pickable bool
}

// ZoomRange returns the zoom levels the host may request for this config.
func (c Config) ZoomRange() tile.ZoomRange {
	return tile.ZoomRange{Min: c.MinZoom, Max: c.MaxZoom}
}

var (
	DefaultStyle  = Style{Color: color.NRGBA{R: 255, A: 255}}
	DefaultConfig = Config{TileSize: 256, MinZoom: 0, MaxZoom: 24, Pickable: false}
)

// Layer is a tile grid overlay. Layers share no state, so several can be drawn
// side by side with different colors.
type Layer struct {
	ID     string
	Style  Style
	Config Config
}

// NewLayer returns a layer with the default style and config.
func NewLayer(id string) *Layer {
	return &Layer{
		ID:     id,
		Style:  DefaultStyle,
		Config: DefaultConfig,
	}
}

// Label returns the "{x}-{y}-{z}" text drawn for t.
func Label(t tile.Tile) string {
	return strconv.Itoa(t.X) + "-" + strconv.Itoa(t.Y) + "-" + strconv.Itoa(t.Z)
}

// RenderSubLayers returns the label and boundary primitives for t.
//
// The boundary only covers the west and south edges. Neighbouring tiles supply
// the north and east edges, so the full grid is drawn exactly once.
func (l *Layer) RenderSubLayers(t tile.Tile, id string) []Primitive {
	b := t.BBox

	return []Primitive{
		TextPrimitive{
			ID: id + "-c",
			// inset from the north-west corner keeps the label on its own tile
			Position: orb.Point{
				b.West + (b.East-b.West)*labelInset,
				b.North + (b.South-b.North)*labelInset,
			},
			Text:      Label(t),
			Color:     l.Style.Color,
			Size:      labelSize,
			Anchor:    AnchorStart,
			Billboard: false,
		},
		PathPrimitive{
			ID: id + "-b",
			Path: orb.LineString{
				{b.West, b.North},
				{b.West, b.South},
				{b.East, b.South},
			},
			Color:          l.Style.Color,
			WidthMinPixels: 1,
		},
	}
}
