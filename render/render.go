/*
Package render draws a status bar into an image.

Drawing follows the layering of a bar: the bar's background first, then the
background bars of every slot across the full bar height, the underline bars
at the bottom edge, and finally the text, glyph run by glyph run.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unibar"
	"github.com/npillmayer/unibar/config"
	"github.com/npillmayer/unibar/fonts"
	"github.com/npillmayer/unibar/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// tracer traces with key 'unibar.render'
func tracer() tracing.Trace {
	return tracing.Select("unibar.render")
}

// Colors holds the color values for the palette indices of a bar.
type Colors struct {
	Bar         color.Color
	Backgrounds []color.RGBA
	Underlines  []color.RGBA
	Fonts       []color.RGBA
}

// Geometry holds the pixel dimensions of a bar.
type Geometry struct {
	Width     int
	Height    int
	Underline int // height of underline bars
	Baseline  int // 0 centers text vertically
}

// FromConfig extracts colors and geometry from a bar configuration.
func FromConfig(c *config.Config) (Colors, Geometry) {
	return Colors{
			Bar:         c.DefaultBackground,
			Backgrounds: c.BackgroundColors,
			Underlines:  c.HighlightColors,
			Fonts:       c.FontColors,
		}, Geometry{
			Width:     c.Width,
			Height:    c.Size,
			Underline: c.HighlightSize,
			Baseline:  c.FontY,
		}
}

// Painter draws bars with a fixed set of faces, colors and geometry.
type Painter struct {
	faces  *fonts.Set
	colors Colors
	geom   Geometry
}

// NewPainter creates a painter.
func NewPainter(faces *fonts.Set, colors Colors, geom Geometry) *Painter {
	if geom.Baseline <= 0 {
		geom.Baseline = centeredBaseline(geom.Height, faces)
	}
	return &Painter{faces: faces, colors: colors, geom: geom}
}

func centeredBaseline(height int, faces *fonts.Set) int {
	ascent, descent := faces.Ascent(), faces.Height()-faces.Ascent()
	return (height + ascent - descent) / 2
}

// Geometry returns the geometry p paints with.
func (p *Painter) Geometry() Geometry {
	return p.geom
}

// NewImage allocates an image of the size of a bar.
func (p *Painter) NewImage() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, p.geom.Width, p.geom.Height))
}

// Paint draws all slots of bar into img.
func (p *Painter) Paint(img draw.Image, bar *unibar.Bar) {
	bounds := image.Rect(0, 0, p.geom.Width, p.geom.Height)
	draw.Draw(img, bounds, image.NewUniform(p.colors.Bar), image.Point{}, draw.Src)
	offsets := bar.Place(p.geom.Width)
	for i, x := range offsets {
		line := bar.Line(unibar.Slot(i))
		if line.Empty() {
			continue
		}
		p.paintLine(img, line, x)
	}
}

// PaintLine draws a single parsed line into img, starting at pixel offset x.
func (p *Painter) PaintLine(img draw.Image, line *unibar.ParsedLine, x int) {
	if !line.Empty() {
		p.paintLine(img, line, x)
	}
}

func (p *Painter) paintLine(img draw.Image, line *unibar.ParsedLine, x int) {
	for _, r := range line.Backgrounds {
		p.fill(img, r, x, 0, p.geom.Height, lookup(p.colors.Backgrounds, r.Index))
	}
	for _, r := range line.Underlines {
		p.fill(img, r, x, p.geom.Height-p.geom.Underline, p.geom.Height, lookup(p.colors.Underlines, r.Index))
	}
	dot := x
	for _, g := range line.Glyphs {
		chunk := line.Chunk(g)
		face := p.faces.Face(g.Face)
		d := font.Drawer{
			Dst:  img,
			Src:  image.NewUniform(lookup(p.colors.Fonts, g.Color)),
			Face: face.DrawFace(),
			Dot:  fixed.P(dot, p.geom.Baseline),
		}
		d.DrawString(chunk)
		dot += int(face.Advance(chunk))
	}
	tracer().Debugf("painted %q at x=%d", line.String(), x)
}

func (p *Painter) fill(img draw.Image, r layout.Rect, x, top, bottom int, c color.Color) {
	rect := image.Rect(x+int(r.Start), max(top, 0), x+int(r.End), bottom)
	draw.Draw(img, rect, image.NewUniform(c), image.Point{}, draw.Src)
}

// lookup returns palette entry i. Indices are range-checked while parsing,
// a miss means colors and engine disagree about the palette.
func lookup(palette []color.RGBA, i int) color.RGBA {
	if i < 0 || i >= len(palette) {
		tracer().Errorf("palette index %d out of range", i)
		return color.RGBA{0xFF, 0x00, 0xFF, 0xFF}
	}
	return palette[i]
}

// WritePNG encodes img as PNG.
func WritePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// SavePNG writes img to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WritePNG(f, img); err != nil {
		f.Close()
		return fmt.Errorf("cannot encode %s: %w", path, err)
	}
	return f.Close()
}
