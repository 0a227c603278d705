package gridoverlay

import (
	"encoding/json"
	"image/color"
	"math"
	"testing"

	"github.com/paulmach/orb"

	"github.com/kiesman99/tiledebug/pkg/tile"
)

func testTile() tile.Tile {
	return tile.Tile{
		X: 3, Y: 5, Z: 4,
		BBox: tile.BoundaryMeta{West: 100, South: -20, East: 120, North: 0},
	}
}

func TestRenderSubLayersOrderAndIDs(t *testing.T) {
	l := NewLayer("debugtiles")
	prims := l.RenderSubLayers(testTile(), "debugtiles-3-5-4")

	if len(prims) != 2 {
		t.Fatalf("Expected 2 primitives, got %d", len(prims))
	}
	if _, ok := prims[0].(TextPrimitive); !ok {
		t.Errorf("Expected first primitive to be text, got %T", prims[0])
	}
	if _, ok := prims[1].(PathPrimitive); !ok {
		t.Errorf("Expected second primitive to be path, got %T", prims[1])
	}
	if prims[0].PrimitiveID() != "debugtiles-3-5-4-c" {
		t.Errorf("Unexpected label id %q", prims[0].PrimitiveID())
	}
	if prims[1].PrimitiveID() != "debugtiles-3-5-4-b" {
		t.Errorf("Unexpected boundary id %q", prims[1].PrimitiveID())
	}
}

func TestLabelPrimitive(t *testing.T) {
	l := NewLayer("debug")
	text := l.RenderSubLayers(testTile(), "id")[0].(TextPrimitive)

	if text.Text != "3-5-4" {
		t.Errorf("Expected label 3-5-4, got %q", text.Text)
	}
	if math.Abs(text.Position.Lon()-101) > 1e-9 || math.Abs(text.Position.Lat()+1) > 1e-9 {
		t.Errorf("Expected label at (101,-1), got %v", text.Position)
	}
	if text.Billboard {
		t.Error("Expected non-billboard label")
	}
	if text.Anchor != AnchorStart {
		t.Errorf("Expected start anchor, got %q", text.Anchor)
	}
	if text.Size != 10 {
		t.Errorf("Expected size 10, got %v", text.Size)
	}
	if text.Color != DefaultStyle.Color {
		t.Errorf("Expected default color, got %v", text.Color)
	}
}

func TestBoundaryPathVisitsWestAndSouthEdges(t *testing.T) {
	tiles := []tile.Tile{
		testTile(),
		tile.FromMaptile(tile.Tile{X: 1, Y: 1, Z: 2}.Maptile()),
		{X: 0, Y: 0, Z: 0, BBox: tile.BoundaryMeta{West: -180, South: -85, East: 180, North: 85}},
	}

	l := NewLayer("debug")
	for _, tl := range tiles {
		path := l.RenderSubLayers(tl, "id")[1].(PathPrimitive)
		b := tl.BBox
		want := orb.LineString{{b.West, b.North}, {b.West, b.South}, {b.East, b.South}}

		if !path.Path.Equal(want) {
			t.Errorf("tile %s: expected path %v, got %v", Label(tl), want, path.Path)
		}
		if path.WidthMinPixels != 1 {
			t.Errorf("Expected 1px stroke, got %v", path.WidthMinPixels)
		}
	}
}

func TestDegenerateTileYieldsZeroAreaPrimitives(t *testing.T) {
	tl := tile.Tile{X: 1, Y: 2, Z: 3, BBox: tile.BoundaryMeta{West: 5, South: 5, East: 5, North: 5}}
	prims := NewLayer("debug").RenderSubLayers(tl, "id")

	text := prims[0].(TextPrimitive)
	if text.Position != (orb.Point{5, 5}) {
		t.Errorf("Expected label at corner, got %v", text.Position)
	}
	path := prims[1].(PathPrimitive)
	if len(path.Path) != 3 {
		t.Errorf("Expected 3 points, got %d", len(path.Path))
	}
}

func TestLayersDoNotShareState(t *testing.T) {
	red := NewLayer("debugtilesR")
	red.Style.Color = color.NRGBA{255, 0, 0, 120}
	blue := NewLayer("debugtilesB")
	blue.Style.Color = color.NRGBA{0, 0, 255, 120}

	r := red.RenderSubLayers(testTile(), "r")[1].(PathPrimitive)
	b := blue.RenderSubLayers(testTile(), "b")[1].(PathPrimitive)

	if r.Color == b.Color {
		t.Error("Expected independent colors per layer")
	}
	if DefaultStyle.Color != (color.NRGBA{255, 0, 0, 255}) {
		t.Errorf("Default style was modified: %v", DefaultStyle.Color)
	}
}

func TestRenderBound(t *testing.T) {
	l := NewLayer("debug")
	bound := orb.Bound{Min: orb.Point{-10, -10}, Max: orb.Point{10, 10}}

	prims, err := l.RenderBound(bound, 1)
	if err != nil {
		t.Fatalf("RenderBound failed: %v", err)
	}
	if len(prims) != 8 {
		t.Fatalf("Expected 8 primitives, got %d", len(prims))
	}
	if prims[0].PrimitiveID() != "debug-0-0-1-c" {
		t.Errorf("Unexpected first id %q", prims[0].PrimitiveID())
	}

	l.Config.MaxZoom = 0
	if _, err := l.RenderBound(bound, 1); err == nil {
		t.Error("Expected error for zoom above max zoom")
	}
}

func TestToFeatureCollection(t *testing.T) {
	prims := NewLayer("debug").RenderSubLayers(testTile(), "debug-3-5-4")
	fc := ToFeatureCollection(prims)

	if len(fc.Features) != 2 {
		t.Fatalf("Expected 2 features, got %d", len(fc.Features))
	}
	if fc.Features[0].Geometry.GeoJSONType() != "Point" {
		t.Errorf("Expected Point, got %s", fc.Features[0].Geometry.GeoJSONType())
	}
	if fc.Features[1].Geometry.GeoJSONType() != "LineString" {
		t.Errorf("Expected LineString, got %s", fc.Features[1].Geometry.GeoJSONType())
	}
	if fc.Features[0].Properties["text"] != "3-5-4" {
		t.Errorf("Expected text property, got %v", fc.Features[0].Properties["text"])
	}

	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded struct {
		Features []struct {
			ID         string         `json:"id"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}
	if decoded.Features[1].ID != "debug-3-5-4-b" {
		t.Errorf("Expected boundary id, got %q", decoded.Features[1].ID)
	}
}

func TestLayerFeatureCollectionCarriesConfig(t *testing.T) {
	l := NewLayer("debugtilesB")
	l.Config.MaxZoom = 12
	l.Config.Pickable = true

	fc := l.FeatureCollection(l.RenderSubLayers(testTile(), "x"))

	data, err := json.Marshal(fc)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded struct {
		Layer struct {
			ID       string `json:"id"`
			TileSize int    `json:"tileSize"`
			MinZoom  int    `json:"minZoom"`
			MaxZoom  int    `json:"maxZoom"`
			Pickable bool   `json:"pickable"`
		} `json:"layer"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to decode: %v", err)
	}

	if decoded.Layer.ID != "debugtilesB" || decoded.Layer.TileSize != 256 || decoded.Layer.MinZoom != 0 ||
		decoded.Layer.MaxZoom != 12 || !decoded.Layer.Pickable {
		t.Errorf("Unexpected layer member %+v", decoded.Layer)
	}
}
