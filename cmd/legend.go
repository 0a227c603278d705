package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/kiesman99/tiledebug/internal/legend"
	"github.com/kiesman99/tiledebug/pkg/tile"
)

var legendCmd = &cobra.Command{
	Use:   "legend",
	Short: "Rasterize a variable's color legend to PNG",
	Long: `Rasterize the color legend of a data variable to PNG.

The legend is looked up by variable name in the style catalogue (--styles, or
the built-in catalogue). Use --list to print the known variables.

Examples:
  tiledebug legend --variable air.temperature.at-2m -o legend.png
  tiledebug legend --styles styles.yaml --variable wave.height --width 400 --height 60 --title 'Wave height'`,
	RunE: runLegend,
}

func init() {
	rootCmd.AddCommand(legendCmd)

	legendCmd.Flags().String("variable", "", "data variable name")
	legendCmd.Flags().Bool("list", false, "list variables in the style catalogue and exit")
	legendCmd.Flags().Int("width", 300, "legend width in pixels")
	legendCmd.Flags().Int("height", 50, "legend height in pixels")
	legendCmd.Flags().String("title", "", "legend title (default: style title and units)")
	legendCmd.Flags().StringP("output", "o", "", "output file (default: stdout)")

	viper.BindPFlag("legend.variable", legendCmd.Flags().Lookup("variable"))
	viper.BindPFlag("legend.width", legendCmd.Flags().Lookup("width"))
	viper.BindPFlag("legend.height", legendCmd.Flags().Lookup("height"))
	viper.BindPFlag("legend.title", legendCmd.Flags().Lookup("title"))
	viper.BindPFlag("legend.output", legendCmd.Flags().Lookup("output"))
}

func runLegend(cmd *cobra.Command, args []string) error {
	catalogue, err := loadCatalogue()
	if err != nil {
		return err
	}

	if list, _ := cmd.Flags().GetBool("list"); list {
		for _, v := range catalogue.Variables() {
			fmt.Fprintln(cmd.OutOrStdout(), v)
		}
		return nil
	}

	variable := viper.GetString("legend.variable")
	if variable == "" {
		return fmt.Errorf("variable is required (use --variable)")
	}

	l, err := catalogue.Legend(variable)
	if err != nil {
		return err
	}

	opts := legendDefaults()
	if opts.Width <= 0 || opts.Height <= 0 {
		return fmt.Errorf("width and height must be positive")
	}
	if opts.Title == "" {
		opts.Title = catalogue.Title(variable)
	}

	output := viper.GetString("legend.output")
	if output == "" {
		if stat, err := os.Stdout.Stat(); err == nil && (stat.Mode()&os.ModeCharDevice) != 0 {
			return fmt.Errorf("didn't specify output file and standard output is a terminal")
		}
	}

	surface := legend.NewSurface(opts.Width, opts.Height)
	legend.Draw(surface, l, opts)

	if err := tile.WritePNG(output, surface.NRGBA()); err != nil {
		return fmt.Errorf("failed to write PNG: %w", err)
	}

	if output != "" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Output PNG: %s\n", output)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "==Legend: %s (%d colors, %d ticks)\n", variable, l.Size, len(l.Ticks))
	fmt.Fprintf(cmd.ErrOrStderr(), "==Raster Size: %dx%d\n", opts.Width, opts.Height)
	return nil
}
