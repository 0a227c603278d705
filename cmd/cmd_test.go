package cmd

import (
	"bytes"
	"encoding/json"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
)

func TestGridCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "grid.geojson")

	var stderr bytes.Buffer
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs([]string{"grid", "--bbox", "-10,-10,10,10", "--zoom", "1", "--id", "debugtilesB", "--color", "#0000ff78", "-o", output})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("grid command failed: %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output: %v", err)
	}

	var fc struct {
		Type     string `json:"type"`
		Features []struct {
			ID         string         `json:"id"`
			Properties map[string]any `json:"properties"`
		} `json:"features"`
		Layer struct {
			ID string `json:"id"`
		} `json:"layer"`
	}
	if err := json.Unmarshal(data, &fc); err != nil {
		t.Fatalf("Failed to decode GeoJSON: %v", err)
	}

	if fc.Type != "FeatureCollection" {
		t.Errorf("Expected FeatureCollection, got %q", fc.Type)
	}
	if len(fc.Features) != 8 {
		t.Fatalf("Expected 8 features, got %d", len(fc.Features))
	}
	if fc.Features[0].ID != "debugtilesB-0-0-1-c" {
		t.Errorf("Unexpected first feature id %q", fc.Features[0].ID)
	}
	if fc.Layer.ID != "debugtilesB" {
		t.Errorf("Expected layer member, got %q", fc.Layer.ID)
	}

	want := []any{0.0, 0.0, 255.0, 120.0}
	got, _ := fc.Features[1].Properties["color"].([]any)
	if len(got) != 4 || got[0] != want[0] || got[2] != want[2] || got[3] != want[3] {
		t.Errorf("Expected color %v, got %v", want, fc.Features[1].Properties["color"])
	}

	viper.Set("overlay.color", "#ff0000ff")
}

func TestGridCommandRejectsZoomOutsideRange(t *testing.T) {
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"grid", "--bbox", "-10,-10,10,10", "--zoom", "5", "--max-zoom", "4", "-o", filepath.Join(t.TempDir(), "x.geojson")})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for zoom above max zoom")
	}

	viper.Set("overlay.maxzoom", 24)
}

func TestLegendCommand(t *testing.T) {
	output := filepath.Join(t.TempDir(), "legend.png")

	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"legend", "--variable", "wave.height", "--width", "260", "--height", "44", "-o", output})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("legend command failed: %v", err)
	}

	file, err := os.Open(output)
	if err != nil {
		t.Fatalf("Failed to open output: %v", err)
	}
	defer file.Close()

	img, err := png.Decode(file)
	if err != nil {
		t.Fatalf("Failed to decode PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 260 || b.Dy() != 44 {
		t.Errorf("Expected 260x44 legend, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestLegendCommandUnknownVariable(t *testing.T) {
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"legend", "--variable", "no.such.variable", "-o", filepath.Join(t.TempDir(), "x.png")})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for unknown variable")
	}
}
