package gridoverlay

import (
	"image/color"

	"github.com/paulmach/orb/geojson"
)

// ToFeatureCollection exports primitives as GeoJSON. Labels become Point
// features and boundaries LineString features; drawing attributes are kept in
// the feature properties.
func ToFeatureCollection(prims []Primitive) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, p := range prims {
		switch p := p.(type) {
		case TextPrimitive:
			f := geojson.NewFeature(p.Position)
			f.ID = p.ID
			f.Properties["kind"] = "text"
			f.Properties["text"] = p.Text
			f.Properties["color"] = colorArray(p.Color)
			f.Properties["size"] = p.Size
			f.Properties["anchor"] = string(p.Anchor)
			f.Properties["billboard"] = p.Billboard
			fc.Append(f)
		case PathPrimitive:
			f := geojson.NewFeature(p.Path)
			f.ID = p.ID
			f.Properties["kind"] = "path"
			f.Properties["color"] = colorArray(p.Color)
			f.Properties["widthMinPixels"] = p.WidthMinPixels
			fc.Append(f)
		}
	}

	return fc
}

func colorArray(c color.NRGBA) []int {
	return []int{int(c.R), int(c.G), int(c.B), int(c.A)}
}

// FeatureCollection exports prims with the layer's pass-through configuration
// attached as a "layer" foreign member.
func (l *Layer) FeatureCollection(prims []Primitive) *geojson.FeatureCollection {
	fc := ToFeatureCollection(prims)
	fc.ExtraMembers = geojson.Properties{
		"layer": map[string]interface{}{
			"id":       l.ID,
			"tileSize": l.Config.TileSize,
			"minZoom":  l.Config.MinZoom,
			"maxZoom":  l.Config.MaxZoom,
			"pickable": l.Config.Pickable,
		},
	}
	return fc
}
