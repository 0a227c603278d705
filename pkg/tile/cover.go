package tile

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/maptile/tilecover"
)

// ErrOutOfRange is returned when a tile lies outside the host's zoom range
// or outside the 2^z grid.
var ErrOutOfRange = errors.New("tile out of range")

// Cover returns every tile at zoom z that intersects bound, ordered by row then
// column. Zoom levels outside zr are never enumerated.
func Cover(bound orb.Bound, z int, zr ZoomRange) ([]Tile, error) {
	if !zr.Contains(z) {
		return nil, fmt.Errorf("%w: zoom %d not in [%d,%d]", ErrOutOfRange, z, zr.Min, zr.Max)
	}

	set := tilecover.Bound(bound, maptile.Zoom(z))
	tiles := make([]Tile, 0, len(set))
	for t := range set {
		tiles = append(tiles, FromMaptile(t))
	}

	sort.Slice(tiles, func(i, j int) bool {
		if tiles[i].Y != tiles[j].Y {
			return tiles[i].Y < tiles[j].Y
		}
		return tiles[i].X < tiles[j].X
	})

	return tiles, nil
}

// At returns the tile addressed by x, y, z after checking it against zr and the grid size.
func At(x, y, z int, zr ZoomRange) (Tile, error) {
	if !zr.Contains(z) {
		return Tile{}, fmt.Errorf("%w: zoom %d not in [%d,%d]", ErrOutOfRange, z, zr.Min, zr.Max)
	}
	if z < 0 || z > 32 {
		return Tile{}, fmt.Errorf("%w: zoom %d", ErrOutOfRange, z)
	}

	n := int64(1) << uint(z)
	if x < 0 || y < 0 || int64(x) >= n || int64(y) >= n {
		return Tile{}, fmt.Errorf("%w: %d/%d/%d", ErrOutOfRange, z, x, y)
	}

	return FromMaptile(maptile.New(uint32(x), uint32(y), maptile.Zoom(z))), nil
}

// ParseBBox parses "min-lat,min-lon,max-lat,max-lon" into a bound.
func ParseBBox(s string) (orb.Bound, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return orb.Bound{}, fmt.Errorf("bbox must be in format 'min-lat,min-lon,max-lat,max-lon'")
	}

	names := [4]string{"min-lat", "min-lon", "max-lat", "max-lon"}
	var v [4]float64
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return orb.Bound{}, fmt.Errorf("invalid %s in bbox: %w", names[i], err)
		}
		v[i] = f
	}

	if v[0] >= v[2] {
		return orb.Bound{}, fmt.Errorf("min-lat must be less than max-lat")
	}
	if v[1] >= v[3] {
		return orb.Bound{}, fmt.Errorf("min-lon must be less than max-lon")
	}

	return orb.Bound{
		Min: orb.Point{v[1], v[0]},
		Max: orb.Point{v[3], v[2]},
	}, nil
}
