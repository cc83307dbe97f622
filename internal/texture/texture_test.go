package texture

import (
	"context"
	"errors"
	"image/color"
	"strings"
	"testing"

	"github.com/jmylchreest/texgen/internal/colour"
	"github.com/jmylchreest/texgen/internal/pixbuf"
)

var (
	opaqueBlack = color.NRGBA{A: 255}
	opaqueWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	light       = color.NRGBA{R: 170, G: 170, B: 170, A: 255}
	dark        = color.NRGBA{R: 113, G: 113, B: 113, A: 255}
)

func TestGridTile(t *testing.T) {
	buf, err := GridTile(128)
	if err != nil {
		t.Fatalf("GridTile failed: %v", err)
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, opaqueWhite},
		{62, 10, opaqueWhite},
		{63, 10, opaqueBlack},
		{64, 10, opaqueBlack},
		{65, 10, opaqueWhite},
		{10, 63, opaqueBlack},
		{10, 64, opaqueBlack},
		{127, 127, opaqueWhite},
	}
	for _, tt := range tests {
		if got := buf.At(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	if _, err := GridTile(1); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("GridTile(1) error = %v, want ErrInvalidSize", err)
	}
}

func TestTextCursor(t *testing.T) {
	buf, err := TextCursor(256, 12, 6)
	if err != nil {
		t.Fatalf("TextCursor failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{"top border", 128, 11, opaqueBlack},
		{"below top border", 128, 12, opaqueWhite},
		{"bottom border", 128, 244, opaqueBlack},
		{"above bottom border", 128, 243, opaqueWhite},
		{"left border", 71, 128, opaqueBlack},
		{"left interior", 72, 128, opaqueWhite},
		{"right interior", 183, 128, opaqueWhite},
		{"right border", 184, 128, opaqueBlack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := buf.At(tt.x, tt.y); got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestGradient(t *testing.T) {
	tests := []struct {
		ch   Channel
		x    int
		want color.NRGBA
	}{
		{ChannelGrey, 0, color.NRGBA{A: 255}},
		{ChannelGrey, 200, color.NRGBA{R: 200, G: 200, B: 200, A: 255}},
		{ChannelRed, 17, color.NRGBA{R: 17, G: 255, B: 255, A: 255}},
		{ChannelGreen, 17, color.NRGBA{R: 255, G: 17, B: 255, A: 255}},
		{ChannelBlue, 255, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{ChannelAlpha, 40, color.NRGBA{R: 255, G: 255, B: 255, A: 40}},
	}

	for _, tt := range tests {
		t.Run(string(tt.ch), func(t *testing.T) {
			buf, err := Gradient(256, 256, tt.ch)
			if err != nil {
				t.Fatalf("Gradient failed: %v", err)
			}
			for _, y := range []int{0, 100, 255} {
				if got := buf.At(tt.x, y); got != tt.want {
					t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, y, got, tt.want)
				}
			}
		})
	}
}

func TestGradientScalesNarrowRamps(t *testing.T) {
	buf, err := Gradient(2, 1, ChannelGrey)
	if err != nil {
		t.Fatalf("Gradient failed: %v", err)
	}
	if got := buf.At(0, 0).R; got != 0 {
		t.Errorf("left edge = %d, want 0", got)
	}
	if got := buf.At(1, 0).R; got != 255 {
		t.Errorf("right edge = %d, want 255", got)
	}
}

func TestGradientUnknownChannel(t *testing.T) {
	if _, err := Gradient(4, 4, Channel("cyan")); err == nil {
		t.Error("expected error for unknown channel")
	}
}

func TestChecker(t *testing.T) {
	buf, err := Checker(DefaultChecker(8))
	if err != nil {
		t.Fatalf("Checker failed: %v", err)
	}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			want := dark
			if (x&1)^(y&1) == 0 {
				want = light
			}
			if got := buf.At(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCheckerCells(t *testing.T) {
	opts := DefaultChecker(256)
	opts.CellWidth, opts.CellHeight = 4, 64
	buf, err := Checker(opts)
	if err != nil {
		t.Fatalf("Checker failed: %v", err)
	}

	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{0, 0, light},
		{3, 63, light},
		{4, 0, dark},
		{0, 64, dark},
		{4, 64, light},
	}
	for _, tt := range tests {
		if got := buf.At(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}

	opts.CellWidth = 0
	if _, err := Checker(opts); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("zero cell width error = %v, want ErrInvalidSize", err)
	}
}

func TestMaskedChecker(t *testing.T) {
	mask, err := pixbuf.New(4, 2)
	if err != nil {
		t.Fatalf("pixbuf.New failed: %v", err)
	}
	keep := color.NRGBA{R: 9, G: 8, B: 7, A: 0}
	mask.Set(0, 0, keep)
	mask.Set(1, 0, colour.White.WithAlpha(1))
	mask.Set(2, 1, colour.White.Opaque())

	buf, err := MaskedChecker(mask, DefaultChecker(0))
	if err != nil {
		t.Fatalf("MaskedChecker failed: %v", err)
	}
	if buf.Width != 4 || buf.Height != 2 {
		t.Fatalf("size = %dx%d, want 4x2", buf.Width, buf.Height)
	}
	if got := buf.At(0, 0); got != keep {
		t.Errorf("transparent mask pixel = %v, want it copied unchanged", got)
	}
	if got := buf.At(1, 0); got != dark {
		t.Errorf("pixel (1,0) = %v, want %v", got, dark)
	}
	if got := buf.At(2, 1); got != dark {
		t.Errorf("pixel (2,1) = %v, want %v", got, dark)
	}
	if got := buf.At(3, 1); got != (color.NRGBA{}) {
		t.Errorf("pixel (3,1) = %v, want transparent", got)
	}

	if _, err := MaskedChecker(nil, DefaultChecker(0)); err == nil {
		t.Error("expected error for nil mask")
	}
}

func TestDisc(t *testing.T) {
	buf, err := Disc(5)
	if err != nil {
		t.Fatalf("Disc failed: %v", err)
	}
	if got := buf.At(0, 0); got.A != 0 {
		t.Errorf("corner alpha = %d, want 0", got.A)
	}
	for _, p := range [][2]int{{2, 2}, {0, 2}, {4, 2}, {2, 0}, {2, 4}} {
		if got := buf.At(p[0], p[1]); got != opaqueWhite {
			t.Errorf("pixel %v = %v, want opaque white", p, got)
		}
	}
}

func TestSolid(t *testing.T) {
	buf, err := Solid(4, colour.White)
	if err != nil {
		t.Fatalf("Solid failed: %v", err)
	}
	for i := 0; i < len(buf.Pix); i++ {
		if buf.Pix[i] != 255 {
			t.Fatalf("byte %d = %d, want 255", i, buf.Pix[i])
		}
	}
	if _, err := Solid(0, colour.White); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("Solid(0) error = %v, want ErrInvalidSize", err)
	}
}

func TestBuiltinCatalog(t *testing.T) {
	cat := Builtin()
	names := cat.Names()

	want := []string{
		"bg_tile", "circle_t", "cs_b", "cs_blue", "cs_green", "cs_hs", "cs_red",
		"cs_t", "rect", "rect128_t", "rect8_t", "t_mask", "text_cursor",
	}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Fatalf("Names() = %v, want %v", names, want)
	}

	params := DefaultParams()
	params.HueDimension = 16

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			e, ok := cat.Get(name)
			if !ok {
				t.Fatalf("Get(%q) failed", name)
			}
			if !strings.HasPrefix(e.File, "var/") {
				t.Errorf("File = %q, want var/ prefix", e.File)
			}
			buf, err := e.Generate(context.Background(), params)
			if err != nil {
				t.Fatalf("Generate failed: %v", err)
			}
			w, h := e.Size(params)
			if buf.Width != w || buf.Height != h {
				t.Errorf("size = %dx%d, Size() reports %dx%d", buf.Width, buf.Height, w, h)
			}
		})
	}
}

func TestCatalogSelect(t *testing.T) {
	cat := Builtin()

	all, err := cat.Select(nil)
	if err != nil {
		t.Fatalf("Select(nil) failed: %v", err)
	}
	if len(all) != len(cat.Names()) {
		t.Errorf("Select(nil) returned %d entries, want %d", len(all), len(cat.Names()))
	}

	some, err := cat.Select([]string{"rect", "cs_hs", "rect"})
	if err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if len(some) != 2 || some[0].Name != "cs_hs" || some[1].Name != "rect" {
		t.Errorf("Select returned %v", some)
	}

	_, err = cat.Select([]string{"rect", "nope", "missing"})
	if err == nil || !strings.Contains(err.Error(), "missing, nope") {
		t.Errorf("Select error = %v, want unknown names listed", err)
	}
}

func TestNewCatalogRejectsDuplicates(t *testing.T) {
	e := Entry{Name: "a", Generate: func(context.Context, Params) (*pixbuf.Buffer, error) { return nil, nil }}
	if _, err := NewCatalog(e, e); err == nil {
		t.Error("expected duplicate error")
	}
	if _, err := NewCatalog(Entry{Name: "b"}); err == nil {
		t.Error("expected incomplete entry error")
	}
}

func TestCircleMaskParam(t *testing.T) {
	mask, err := Disc(32)
	if err != nil {
		t.Fatalf("Disc failed: %v", err)
	}
	e, _ := Builtin().Get("circle_t")
	p := DefaultParams()
	p.CircleMask = mask

	buf, err := e.Generate(context.Background(), p)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if buf.Width != 32 || buf.Height != 32 {
		t.Errorf("size = %dx%d, want mask size 32x32", buf.Width, buf.Height)
	}
	if got := buf.At(16, 16); got != light {
		t.Errorf("centre = %v, want %v", got, light)
	}
}
