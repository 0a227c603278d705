package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiesman99/tiledebug/internal/gridoverlay"
	"github.com/kiesman99/tiledebug/internal/legend"
	"github.com/kiesman99/tiledebug/internal/logger"
	"github.com/kiesman99/tiledebug/internal/styles"
)

const version = "1.0.0"

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tiledebug",
	Short: "Debug overlays and color legends for tiled weather maps",
	Long: `tiledebug renders debugging aids for tiled map layers.

It emits the tile grid overlay (one "x-y-z" label and the west and south
edges of every tile) as GeoJSON, rasterizes color-ramp legends to PNG, and
serves both over HTTP.

Examples:
  # Grid overlay for the tiles covering New Zealand at zoom 5
  tiledebug grid --bbox -47.5,166,-34,179 --zoom 5 -o grid.geojson

  # Legend for a variable from a style catalogue
  tiledebug legend --styles styles.yaml --variable wave.height --width 300 --height 50 -o legend.png

  # Start HTTP server
  tiledebug serve --port 8080`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: false,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("verbose") {
			logger.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.tiledebug.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log debug output to stderr")
	rootCmd.PersistentFlags().String("styles", "", "legend style catalogue (default: built-in styles)")

	// Overlay options shared by grid and serve
	rootCmd.PersistentFlags().String("color", "#ff0000ff", "overlay color as #rrggbb or #rrggbbaa")
	rootCmd.PersistentFlags().Int("tilesize", gridoverlay.DefaultConfig.TileSize, "tile size in pixels")
	rootCmd.PersistentFlags().Int("min-zoom", gridoverlay.DefaultConfig.MinZoom, "lowest zoom level the overlay is drawn at")
	rootCmd.PersistentFlags().Int("max-zoom", gridoverlay.DefaultConfig.MaxZoom, "highest zoom level the overlay is drawn at")
	rootCmd.PersistentFlags().Bool("pickable", gridoverlay.DefaultConfig.Pickable, "mark overlay primitives as pickable")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("styles", rootCmd.PersistentFlags().Lookup("styles"))
	viper.BindPFlag("overlay.color", rootCmd.PersistentFlags().Lookup("color"))
	viper.BindPFlag("overlay.tilesize", rootCmd.PersistentFlags().Lookup("tilesize"))
	viper.BindPFlag("overlay.minzoom", rootCmd.PersistentFlags().Lookup("min-zoom"))
	viper.BindPFlag("overlay.maxzoom", rootCmd.PersistentFlags().Lookup("max-zoom"))
	viper.BindPFlag("overlay.pickable", rootCmd.PersistentFlags().Lookup("pickable"))

	viper.SetDefault("legend.width", 300)
	viper.SetDefault("legend.height", 50)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".tiledebug" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".tiledebug")
	}

	viper.SetEnvPrefix("tiledebug")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadCatalogue returns the configured style catalogue, or the built-in one.
func loadCatalogue() (*styles.Catalogue, error) {
	path := viper.GetString("styles")
	if path == "" {
		return styles.Default(), nil
	}
	return styles.Load(path)
}

// overlayLayer builds the grid overlay from configuration.
func overlayLayer(id string) (*gridoverlay.Layer, error) {
	c, err := styles.ParseColor(viper.GetString("overlay.color"))
	if err != nil {
		return nil, fmt.Errorf("overlay color: %w", err)
	}

	layer := gridoverlay.NewLayer(id)
	layer.Style.Color = c
	layer.Config = gridoverlay.Config{
		TileSize: viper.GetInt("overlay.tilesize"),
		MinZoom:  viper.GetInt("overlay.minzoom"),
		MaxZoom:  viper.GetInt("overlay.maxzoom"),
		Pickable: viper.GetBool("overlay.pickable"),
	}

	if layer.Config.MinZoom > layer.Config.MaxZoom {
		return nil, fmt.Errorf("min-zoom %d is greater than max-zoom %d", layer.Config.MinZoom, layer.Config.MaxZoom)
	}
	return layer, nil
}

// legendDefaults returns the configured default legend size.
func legendDefaults() legend.Options {
	return legend.Options{
		Width:  viper.GetInt("legend.width"),
		Height: viper.GetInt("legend.height"),
		Title:  viper.GetString("legend.title"),
	}
}
