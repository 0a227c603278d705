// Package styles is a catalogue of color legends keyed by data-variable name,
// loaded from YAML.
package styles

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"os"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/kiesman99/tiledebug/internal/legend"
	"github.com/kiesman99/tiledebug/internal/logger"
)

// ErrUnknownVariable is returned for a variable the catalogue has no legend for.
var ErrUnknownVariable = errors.New("unknown variable")

//go:embed default.yaml
var defaultCatalogue []byte

type tickDoc struct {
	Pos   int    `yaml:"pos"`
	Label string `yaml:"label"`
}

type runDoc struct {
	Color string `yaml:"color"`
	Count int    `yaml:"count"`
}

type legendDoc struct {
	Title        string    `yaml:"title"`
	Units        string    `yaml:"units"`
	ShowBelowMin bool      `yaml:"showBelowMin"`
	ShowAboveMax bool      `yaml:"showAboveMax"`
	Colors       []string  `yaml:"colors"`
	Ramp         []runDoc  `yaml:"ramp"`
	Ticks        []tickDoc `yaml:"ticks"`
}

type document struct {
	Legends map[string]legendDoc `yaml:"legends"`
}

type entry struct {
	title  string
	legend legend.ColorLegend
}

// Catalogue maps variable names to legends. It is read-only after loading.
type Catalogue struct {
	entries map[string]entry
}

// Default returns the built-in catalogue.
func Default() *Catalogue {
	c, err := Parse(defaultCatalogue)
	if err != nil {
		panic(fmt.Sprintf("styles: invalid built-in catalogue: %v", err))
	}
	return c
}

// Load reads a catalogue file.
func Load(path string) (*Catalogue, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading styles: %w", err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Logger().Info("loaded styles", "path", path, "legends", len(c.entries))
	return c, nil
}

// Parse decodes a YAML catalogue.
func Parse(data []byte) (*Catalogue, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing styles: %w", err)
	}

	c := &Catalogue{entries: make(map[string]entry, len(doc.Legends))}
	for name, ld := range doc.Legends {
		l, err := ld.build()
		if err != nil {
			return nil, fmt.Errorf("legend %q: %w", name, err)
		}
		c.entries[name] = entry{title: ld.Title, legend: l}
	}

	return c, nil
}

func (ld legendDoc) build() (legend.ColorLegend, error) {
	var colors []uint32

	for i, s := range ld.Colors {
		c, err := ParseColor(s)
		if err != nil {
			return legend.ColorLegend{}, fmt.Errorf("colors[%d]: %w", i, err)
		}
		colors = append(colors, legend.Pack(c))
	}

	for i, run := range ld.Ramp {
		if run.Count <= 0 {
			return legend.ColorLegend{}, fmt.Errorf("ramp[%d]: count must be positive", i)
		}
		c, err := ParseColor(run.Color)
		if err != nil {
			return legend.ColorLegend{}, fmt.Errorf("ramp[%d]: %w", i, err)
		}
		p := legend.Pack(c)
		for range run.Count {
			colors = append(colors, p)
		}
	}

	ticks := make([]legend.Tick, 0, len(ld.Ticks))
	for i, t := range ld.Ticks {
		if t.Pos < 0 || t.Pos >= len(colors) {
			return legend.ColorLegend{}, fmt.Errorf("ticks[%d]: position %d outside [0,%d)", i, t.Pos, len(colors))
		}
		ticks = append(ticks, legend.Tick{Pos: t.Pos, Label: t.Label})
	}

	return legend.ColorLegend{
		Size:         len(colors),
		Colors:       colors,
		ShowBelowMin: ld.ShowBelowMin,
		ShowAboveMax: ld.ShowAboveMax,
		Units:        ld.Units,
		Ticks:        ticks,
	}, nil
}

// Variables returns the catalogue's variable names in sorted order.
func (c *Catalogue) Variables() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Legend returns a copy of the legend for variable.
func (c *Catalogue) Legend(variable string) (*legend.ColorLegend, error) {
	e, ok := c.entries[variable]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariable, variable)
	}

	l := e.legend
	l.Colors = slices.Clone(l.Colors)
	l.Ticks = slices.Clone(l.Ticks)
	return &l, nil
}

// Title returns the display title for variable: its configured title (or the
// variable name) followed by the units in parentheses.
func (c *Catalogue) Title(variable string) string {
	e, ok := c.entries[variable]
	if !ok {
		return variable
	}

	title := e.title
	if title == "" {
		title = variable
	}
	if e.legend.Units != "" {
		title += " (" + e.legend.Units + ")"
	}
	return title
}

// ParseColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	alpha := uint8(0xff)
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = uint8(a)
		s = s[:7]
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
