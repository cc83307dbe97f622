package huewheel

import (
	"context"
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/jmylchreest/texgen/internal/colour"
)

func TestRenderInvalidDimension(t *testing.T) {
	for _, d := range []int{-4, 0, 1} {
		buf, err := Render(d)
		if !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("Render(%d) error = %v, want ErrInvalidDimension", d, err)
		}
		if buf != nil {
			t.Errorf("Render(%d) returned a buffer alongside an error", d)
		}
	}
}

func TestRenderUnknownRadial(t *testing.T) {
	r := Renderer{Radial: "hue"}
	if _, err := r.Render(context.Background(), 8); err == nil {
		t.Fatal("expected error for unknown radial channel")
	}
}

func TestRenderPixelCount(t *testing.T) {
	for _, d := range []int{2, 3, 4, 16, 33} {
		buf, err := Render(d)
		if err != nil {
			t.Fatalf("Render(%d) failed: %v", d, err)
		}
		if buf.Width != d || buf.Height != d {
			t.Errorf("Render(%d) size = %dx%d", d, buf.Width, buf.Height)
		}
		if buf.Len() != d*d {
			t.Errorf("Render(%d) has %d pixels, want %d", d, buf.Len(), d*d)
		}
		if len(buf.Pix) != d*d*4 {
			t.Errorf("Render(%d) has %d bytes, want %d", d, len(buf.Pix), d*d*4)
		}
	}
}

func TestRenderTransparencyAndOpacity(t *testing.T) {
	const d = 64
	buf, err := Render(d)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	center := Center(d)
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			dx, dy := float64(x)-center, float64(y)-center
			px := buf.At(x, y)
			if math.Sqrt(dx*dx+dy*dy) > center {
				if px != (color.NRGBA{}) {
					t.Fatalf("pixel (%d,%d) outside the circle = %v, want transparent black", x, y, px)
				}
			} else if px.A != 255 {
				t.Fatalf("pixel (%d,%d) inside the circle has alpha %d", x, y, px.A)
			}
		}
	}
}

func TestRenderCenterIsBlack(t *testing.T) {
	// Odd dimensions have an exact centre pixel.
	buf, err := Render(5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if got := buf.At(2, 2); got != (color.NRGBA{A: 255}) {
		t.Errorf("centre pixel = %v, want opaque black", got)
	}

	// Even dimensions: the four pixels nearest the centre are black once
	// the radius is large enough for their brightness to truncate to 0.
	const d = 1024
	buf, err = Render(d)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	for _, p := range [][2]int{{511, 511}, {512, 511}, {511, 512}, {512, 512}} {
		if got := buf.At(p[0], p[1]); got != (color.NRGBA{A: 255}) {
			t.Errorf("near-centre pixel %v = %v, want opaque black", p, got)
		}
	}
}

func TestRenderRimIsFullySaturated(t *testing.T) {
	// With dimension 5 the centre is 2 and the four axis pixels sit exactly
	// on the circle.
	buf, err := Render(5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	tests := []struct {
		name string
		x, y int
		want color.NRGBA
	}{
		{name: "negative x axis wraps to red", x: 0, y: 2, want: color.NRGBA{R: 255, A: 255}},
		{name: "positive x axis is cyan", x: 4, y: 2, want: color.NRGBA{G: 255, B: 255, A: 255}},
		{name: "negative y axis", x: 2, y: 0, want: color.NRGBA{R: 127, G: 255, A: 255}},
		{name: "positive y axis", x: 2, y: 4, want: color.NRGBA{R: 127, B: 255, A: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buf.At(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("pixel (%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
			maxC := max(got.R, got.G, got.B)
			minC := min(got.R, got.G, got.B)
			if maxC != 255 || minC != 0 {
				t.Errorf("rim pixel channels max=%d min=%d, want 255 and 0", maxC, minC)
			}
		})
	}
}

func TestRenderScenarioFour(t *testing.T) {
	buf, err := Render(4)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if Center(4) != 1.5 {
		t.Fatalf("Center(4) = %v, want 1.5", Center(4))
	}

	if got := buf.At(0, 0); got != (color.NRGBA{}) {
		t.Errorf("pixel (0,0) = %v, want transparent", got)
	}

	// hue 0.125, brightness ~0.4714: sector 0 with f = 0.75.
	want := color.NRGBA{R: 120, G: 90, B: 0, A: 255}
	if got := buf.At(1, 1); got != want {
		t.Errorf("pixel (1,1) = %v, want %v", got, want)
	}

	if h := Hue(-0.5, -0.5); math.Abs(h-0.125) > 1e-12 {
		t.Errorf("Hue(-0.5,-0.5) = %v, want 0.125", h)
	}
}

func TestHueMonotonicWithWraparound(t *testing.T) {
	const steps = 720
	prev := -1.0
	for i := 0; i < steps; i++ {
		angle := -math.Pi + 2*math.Pi*float64(i)/steps
		h := Hue(math.Cos(angle), math.Sin(angle))
		if h < 0 || h >= 1 {
			t.Fatalf("hue %v at angle %v outside [0,1)", h, angle)
		}
		if h <= prev {
			t.Fatalf("hue not increasing at angle %v: %v <= %v", angle, h, prev)
		}
		prev = h
	}

	// Angle -π is hue 0; just below π wraps back towards 0.
	if h := Hue(-1, math.Copysign(0, -1)); h != 0 {
		t.Errorf("hue at angle -π = %v, want 0", h)
	}
	eps := 1e-9
	h := Hue(math.Cos(math.Pi-eps), math.Sin(math.Pi-eps))
	if d := colour.HueDistance(h, 0); d > 1e-6 {
		t.Errorf("hue just below π = %v, distance to 0 is %v", h, d)
	}
}

func TestRenderIdempotent(t *testing.T) {
	a, err := Render(48)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	b, err := Render(48)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("two renders of the same dimension differ")
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	seq := Renderer{}
	par := Renderer{Workers: 4}

	a, err := seq.Render(context.Background(), 97)
	if err != nil {
		t.Fatalf("sequential render failed: %v", err)
	}
	b, err := par.Render(context.Background(), 97)
	if err != nil {
		t.Fatalf("parallel render failed: %v", err)
	}
	if !a.Equal(b) {
		t.Error("parallel render differs from sequential render")
	}
}

func TestRenderCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{0, 4} {
		r := Renderer{Workers: workers}
		buf, err := r.Render(ctx, 32)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: error = %v, want context.Canceled", workers, err)
		}
		if buf != nil {
			t.Errorf("workers=%d: cancelled render returned a buffer", workers)
		}
	}
}

func TestRenderRadialSaturation(t *testing.T) {
	r := Renderer{Radial: RadialSaturation}
	buf, err := r.Render(context.Background(), 5)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	if got := buf.At(2, 2); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("centre pixel = %v, want opaque white", got)
	}
	if got := buf.At(4, 2); got != (color.NRGBA{G: 255, B: 255, A: 255}) {
		t.Errorf("rim pixel = %v, want cyan", got)
	}
	if got := buf.At(0, 0); got != (color.NRGBA{}) {
		t.Errorf("corner pixel = %v, want transparent", got)
	}
}
