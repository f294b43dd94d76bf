package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Render encodes the figure as one PNG: panels rendered side by side with
// the overall title drawn across the top strip.
func (f *Figure) Render(w io.Writer) error {
	if len(f.Panels) == 0 {
		return fmt.Errorf("figure has no panels")
	}

	panels := make([]image.Image, len(f.Panels))
	width, height := 0, 0
	for i := range f.Panels {
		var buf bytes.Buffer
		if err := f.Panels[i].Render(chart.PNG, &buf); err != nil {
			return fmt.Errorf("render panel %d: %w", i, err)
		}
		img, err := png.Decode(&buf)
		if err != nil {
			return fmt.Errorf("decode panel %d: %w", i, err)
		}
		panels[i] = img
		width += img.Bounds().Dx()
		if h := img.Bounds().Dy(); h > height {
			height = h
		}
	}

	bar := f.style.TitleBarHeight
	canvas := image.NewRGBA(image.Rect(0, 0, width, height+bar))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	x := 0
	for _, img := range panels {
		b := img.Bounds()
		dst := image.Rect(x, bar, x+b.Dx(), bar+b.Dy())
		draw.Draw(canvas, dst, img, b.Min, draw.Src)
		x += b.Dx()
	}

	if bar > 0 && f.Suptitle != "" {
		drawSuptitle(canvas, f.Suptitle, width, bar)
	}

	if err := png.Encode(w, canvas); err != nil {
		return fmt.Errorf("encode figure: %w", err)
	}
	return nil
}

// drawSuptitle centers the overall title in the strip above the panels.
func drawSuptitle(dst *image.RGBA, text string, width, barHeight int) {
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.Black),
		Face: face,
	}
	textWidth := d.MeasureString(text).Ceil()
	x := (width - textWidth) / 2
	if x < 0 {
		x = 0
	}
	d.Dot = fixed.P(x, (barHeight+face.Ascent)/2)
	d.DrawString(text)
}
