package gridoverlay

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/kiesman99/tiledebug/internal/logger"
	"github.com/kiesman99/tiledebug/pkg/tile"
)

// TileID is the sub-layer id a host assigns to t under a layer id.
func TileID(layerID string, t tile.Tile) string {
	return fmt.Sprintf("%s-%d-%d-%d", layerID, t.X, t.Y, t.Z)
}

// Render asks r for the primitives of every tile, in tile order.
func Render(r SubLayerRenderer, layerID string, tiles []tile.Tile) []Primitive {
	prims := make([]Primitive, 0, 2*len(tiles))
	for _, t := range tiles {
		prims = append(prims, r.RenderSubLayers(t, TileID(layerID, t))...)
	}
	return prims
}

// RenderBound renders every tile at zoom z that intersects bound.
// It fails when z is outside the layer's zoom range.
func (l *Layer) RenderBound(bound orb.Bound, z int) ([]Primitive, error) {
	tiles, err := tile.Cover(bound, z, l.Config.ZoomRange())
	if err != nil {
		return nil, err
	}

	logger.Logger().Debug("rendering debug tiles",
		"layer", l.ID,
		"zoom", z,
		"tiles", len(tiles),
	)

	return Render(l, l.ID, tiles), nil
}
