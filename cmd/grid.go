package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiesman99/tiledebug/pkg/tile"
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Write the tile grid overlay for a bounding box as GeoJSON",
	Long: `Write the debug grid overlay for every tile covering a bounding box.

Each tile contributes a "x-y-z" label near its north-west corner and a path
along its west and south edges. Zoom levels outside --min-zoom/--max-zoom
are refused.

Examples:
  tiledebug grid --bbox -47.5,166,-34,179 --zoom 5
  tiledebug grid --bbox -47.5,166,-34,179 --zoom 5 --color '#0000ff78' --id debugtilesB -o grid.geojson`,
	RunE: runGrid,
}

func init() {
	rootCmd.AddCommand(gridCmd)

	gridCmd.Flags().String("bbox", "", "bounding box as 'min-lat,min-lon,max-lat,max-lon' (required)")
	gridCmd.Flags().Int("zoom", 0, "zoom level")
	gridCmd.Flags().String("id", "debugtiles", "layer id used as primitive id prefix")
	gridCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	viper.BindPFlag("grid.bbox", gridCmd.Flags().Lookup("bbox"))
	viper.BindPFlag("grid.zoom", gridCmd.Flags().Lookup("zoom"))
	viper.BindPFlag("grid.id", gridCmd.Flags().Lookup("id"))
	viper.BindPFlag("grid.output", gridCmd.Flags().Lookup("output"))
}

func runGrid(cmd *cobra.Command, args []string) error {
	bboxStr := viper.GetString("grid.bbox")
	if bboxStr == "" {
		return fmt.Errorf("bounding box is required (use --bbox)")
	}

	bound, err := tile.ParseBBox(bboxStr)
	if err != nil {
		return err
	}

	layer, err := overlayLayer(viper.GetString("grid.id"))
	if err != nil {
		return err
	}

	zoom := viper.GetInt("grid.zoom")
	prims, err := layer.RenderBound(bound, zoom)
	if err != nil {
		return err
	}

	var output io.Writer = cmd.OutOrStdout()
	if name := viper.GetString("grid.output"); name != "" {
		file, err := os.Create(name)
		if err != nil {
			return err
		}
		defer file.Close()
		output = file
		fmt.Fprintf(cmd.ErrOrStderr(), "Output GeoJSON: %s\n", name)
	}

	enc := json.NewEncoder(output)
	enc.SetIndent("", "  ")
	if err := enc.Encode(layer.FeatureCollection(prims)); err != nil {
		return fmt.Errorf("failed to write GeoJSON: %w", err)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "==Zoom Level: %d\n", zoom)
	fmt.Fprintf(cmd.ErrOrStderr(), "==Tiles: %d\n", len(prims)/2)
	return nil
}
