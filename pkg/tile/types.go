package tile

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
)

// BoundaryMeta is a tile's geographic extent in degrees.
// West < East and South < North for any real tile.
type BoundaryMeta struct {
	West, South, East, North float64
}

// BoundaryFromBound converts an orb bound (Min = south-west, Max = north-east).
func BoundaryFromBound(b orb.Bound) BoundaryMeta {
	return BoundaryMeta{
		West:  b.Min.Lon(),
		South: b.Min.Lat(),
		East:  b.Max.Lon(),
		North: b.Max.Lat(),
	}
}

// Bound returns the extent as an orb bound.
func (b BoundaryMeta) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Tile is a quadtree grid cell at zoom Z, column X, row Y.
// Tiles are supplied per render by the tiling host and never cached.
type Tile struct {
	X, Y, Z int
	BBox    BoundaryMeta
}

// FromMaptile builds a Tile, including its bounding box, from an orb map tile.
func FromMaptile(t maptile.Tile) Tile {
	return Tile{
		X:    int(t.X),
		Y:    int(t.Y),
		Z:    int(t.Z),
		BBox: BoundaryFromBound(t.Bound()),
	}
}

// Maptile returns the orb representation of the tile address.
func (t Tile) Maptile() maptile.Tile {
	return maptile.New(uint32(t.X), uint32(t.Y), maptile.Zoom(t.Z))
}

// ZoomRange is the inclusive range of zoom levels a tiling host may request.
type ZoomRange struct {
	Min, Max int
}

// DefaultZoomRange matches the debug overlay defaults.
var DefaultZoomRange = ZoomRange{Min: 0, Max: 24}

// Contains reports whether z lies within the range.
func (r ZoomRange) Contains(z int) bool {
	return z >= r.Min && z <= r.Max
}

// Clamp limits z to the range.
func (r ZoomRange) Clamp(z int) int {
	if z < r.Min {
		return r.Min
	}
	if z > r.Max {
		return r.Max
	}
	return z
}
