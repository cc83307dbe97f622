package cli

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/compression"
	"github.com/jmylchreest/texgen/internal/image"
	"github.com/jmylchreest/texgen/internal/pixbuf"
)

func newInspectCmd() *cobra.Command {
	var samples bool

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Describe a generated image or bundle",
		Long: `Print the format and dimensions of an image, or the entries of a bundle
written by 'texgen generate --bundle'. With --samples the image is decoded
and a few landmark pixels are printed with a colour swatch.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			out := cmd.OutOrStdout()

			stat, err := os.Stat(path)
			if err != nil {
				return fmt.Errorf("failed to stat %s: %w", path, err)
			}

			if _, err := compression.DetectKind(path); err == nil {
				entries, err := compression.ListFile(path)
				if err != nil {
					return err
				}
				table := NewTable([]string{"ENTRY", "SIZE"})
				var total int64
				for _, e := range entries {
					table.AddRow([]string{e.Name, humanize.Bytes(uint64(e.Size))})
					total += e.Size
				}
				fmt.Fprint(out, table.Render())
				fmt.Fprintf(out, "\n%d entries, %s uncompressed, %s on disk\n",
					len(entries), humanize.Bytes(uint64(total)), humanize.Bytes(uint64(stat.Size())))
				return nil
			}

			info, err := image.Inspect(path)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s: %s %dx%d, %s\n", path, info.Format, info.Width, info.Height, humanize.Bytes(uint64(stat.Size())))

			if !samples {
				return nil
			}
			buf, err := image.LoadBuffer(image.NewFileLoader(), path)
			if err != nil {
				return err
			}
			fmt.Fprintln(out)
			fmt.Fprint(out, samplePixels(buf).Render())
			return nil
		},
	}

	cmd.Flags().BoolVarP(&samples, "samples", "s", false, "print the colour of the centre, corner and edge pixels")
	return cmd
}

// samplePixels tabulates a handful of landmark pixels: the centre, a
// corner and the midpoint of each edge.
func samplePixels(buf *pixbuf.Buffer) *Table {
	cx, cy := (buf.Width-1)/2, (buf.Height-1)/2
	points := []struct {
		name string
		x, y int
	}{
		{"centre", cx, cy},
		{"top-left", 0, 0},
		{"left", 0, cy},
		{"top", cx, 0},
		{"right", buf.Width - 1, cy},
		{"bottom", cx, buf.Height - 1},
	}

	table := NewTable([]string{"POINT", "X,Y", "COLOUR", "ALPHA", "HSV"})
	for _, p := range points {
		px := buf.At(p.x, p.y)
		rgb := colour.ToRGB(px)
		h, s, v := colour.RGBToHSV(rgb)
		table.AddRow([]string{
			p.name,
			fmt.Sprintf("%d,%d", p.x, p.y),
			colour.FormatColourWithPreview(rgb, 2),
			fmt.Sprintf("%d", px.A),
			fmt.Sprintf("%.0f° %.0f%% %.0f%%", h*360, s*100, v*100),
		})
	}
	return table
}
