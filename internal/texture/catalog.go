package texture

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/huewheel"
	"github.com/jmylchreest/texgen/internal/pixbuf"
)

// Params carries the settings shared by catalogue generators.
type Params struct {
	// HueDimension is the side length of the hue wheel.
	HueDimension int

	// HueRadial selects the HSV component the wheel's radius drives.
	HueRadial huewheel.RadialChannel

	// Workers bounds the concurrency inside a single generator.
	Workers int

	// CircleMask is the mask for circle_t. Nil uses Disc(256).
	CircleMask *pixbuf.Buffer

	Logger hclog.Logger
}

// DefaultParams returns the parameters the client textures are built with.
func DefaultParams() Params {
	return Params{
		HueDimension: huewheel.DefaultDimension,
		HueRadial:    huewheel.RadialValue,
		Workers:      1,
	}
}

// GenerateFunc renders one texture.
type GenerateFunc func(ctx context.Context, p Params) (*pixbuf.Buffer, error)

// Entry is one texture in the catalogue.
type Entry struct {
	// Name identifies the texture on the command line.
	Name string

	// File is the output path relative to the output directory, without extension.
	File string

	// Description is shown by `texgen list`.
	Description string

	// Size describes the output dimensions for listings.
	Size func(p Params) (int, int)

	Generate GenerateFunc
}

// Catalog is an immutable set of named textures.
type Catalog struct {
	entries map[string]Entry
}

// NewCatalog builds a catalogue from entries. Duplicate names are an error.
func NewCatalog(entries ...Entry) (*Catalog, error) {
	c := &Catalog{entries: make(map[string]Entry, len(entries))}
	for _, e := range entries {
		if e.Name == "" || e.Generate == nil {
			return nil, fmt.Errorf("catalog entry %q is incomplete", e.Name)
		}
		if _, exists := c.entries[e.Name]; exists {
			return nil, fmt.Errorf("duplicate catalog entry: %s", e.Name)
		}
		c.entries[e.Name] = e
	}
	return c, nil
}

// Names returns every texture name in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.entries))
	for name := range c.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns the entry called name.
func (c *Catalog) Get(name string) (Entry, bool) {
	e, ok := c.entries[name]
	return e, ok
}

// Select returns the named entries in sorted, de-duplicated order, or every
// entry when names is empty. Unknown names are reported together.
func (c *Catalog) Select(names []string) ([]Entry, error) {
	if len(names) == 0 {
		names = c.Names()
	}

	var unknown []string
	selected := make([]Entry, 0, len(names))
	sorted := slices.Clone(names)
	sort.Strings(sorted)
	for _, name := range slices.Compact(sorted) {
		e, ok := c.entries[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		selected = append(selected, e)
	}

	if len(unknown) > 0 {
		return nil, fmt.Errorf("unknown textures: %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(c.Names(), ", "))
	}
	return selected, nil
}

func fixed(w, h int) func(Params) (int, int) {
	return func(Params) (int, int) { return w, h }
}

func gradientEntry(name string, ch Channel, desc string) Entry {
	return Entry{
		Name:        name,
		File:        "var/" + name,
		Description: desc,
		Size:        fixed(256, 256),
		Generate: func(context.Context, Params) (*pixbuf.Buffer, error) {
			return Gradient(256, 256, ch)
		},
	}
}

func checkerEntry(name string, size, cellW, cellH int, desc string) Entry {
	return Entry{
		Name:        name,
		File:        "var/" + name,
		Description: desc,
		Size:        fixed(size, size),
		Generate: func(context.Context, Params) (*pixbuf.Buffer, error) {
			opts := DefaultChecker(size)
			opts.CellWidth, opts.CellHeight = cellW, cellH
			return Checker(opts)
		},
	}
}

// Builtin returns the catalogue of textures the client ships with.
func Builtin() *Catalog {
	c, err := NewCatalog(
		Entry{
			Name:        "bg_tile",
			File:        "var/bg_tile",
			Description: "background grid tile",
			Size:        fixed(128, 128),
			Generate: func(context.Context, Params) (*pixbuf.Buffer, error) {
				return GridTile(128)
			},
		},
		gradientEntry("cs_b", ChannelGrey, "grey ramp"),
		gradientEntry("cs_red", ChannelRed, "red channel ramp"),
		gradientEntry("cs_green", ChannelGreen, "green channel ramp"),
		gradientEntry("cs_blue", ChannelBlue, "blue channel ramp"),
		gradientEntry("t_mask", ChannelAlpha, "alpha ramp over white"),
		checkerEntry("rect8_t", 8, 1, 1, "8px transparency checker"),
		checkerEntry("rect128_t", 128, 1, 1, "128px transparency checker"),
		checkerEntry("cs_t", 256, 4, 64, "colour slider transparency backdrop"),
		Entry{
			Name:        "circle_t",
			File:        "var/circle_t",
			Description: "transparency checker clipped to a circle",
			Size: func(p Params) (int, int) {
				if p.CircleMask != nil {
					return p.CircleMask.Width, p.CircleMask.Height
				}
				return 256, 256
			},
			Generate: func(_ context.Context, p Params) (*pixbuf.Buffer, error) {
				mask := p.CircleMask
				if mask == nil {
					var err error
					if mask, err = Disc(256); err != nil {
						return nil, err
					}
				}
				opts := DefaultChecker(0)
				opts.CellWidth, opts.CellHeight = 64, 64
				return MaskedChecker(mask, opts)
			},
		},
		Entry{
			Name:        "rect",
			File:        "var/rect",
			Description: "solid white quad",
			Size:        fixed(4, 4),
			Generate: func(context.Context, Params) (*pixbuf.Buffer, error) {
				return Solid(4, colour.White)
			},
		},
		Entry{
			Name:        "text_cursor",
			File:        "var/text_cursor",
			Description: "text cursor with black border",
			Size:        fixed(256, 256),
			Generate: func(context.Context, Params) (*pixbuf.Buffer, error) {
				return TextCursor(256, 12, 6)
			},
		},
		Entry{
			Name:        "cs_hs",
			File:        "var/cs_hs",
			Description: "hue wheel",
			Size: func(p Params) (int, int) {
				return p.HueDimension, p.HueDimension
			},
			Generate: func(ctx context.Context, p Params) (*pixbuf.Buffer, error) {
				r := huewheel.Renderer{
					Radial:  p.HueRadial,
					Workers: p.Workers,
					Logger:  p.Logger,
				}
				return r.Render(ctx, p.HueDimension)
			},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}
