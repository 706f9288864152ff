package fonts

import (
	"bytes"
	"math"

	gotext "github.com/go-text/typesetting/font"
	"github.com/npillmayer/unibar/internal/fontload"
	"golang.org/x/image/font"
)

// gotextFace measures with the nominal glyph advances of go-text/typesetting.
// Advances are neither kerned nor shaped. Drawing uses an x/image face of the
// same font file.
type gotextFace struct {
	name   string
	face   *gotext.Face
	scale  float64 // pixels per font unit
	ascent float64 // pixels
	height float64 // pixels
	draw   font.Face
}

func openGoText(s Spec) (*gotextFace, error) {
	f, err := fontload.Resolve(s.Name)
	if err != nil {
		return nil, err
	}
	face, err := gotext.ParseTTF(bytes.NewReader(f.Binary))
	if err != nil {
		return nil, err
	}
	draw, err := newDrawFace(f.SFNT, s)
	if err != nil {
		return nil, err
	}
	gf := &gotextFace{name: f.Fontname, face: face, draw: draw}
	if upem := face.Upem(); upem > 0 {
		gf.scale = s.pixels() / float64(upem)
	}
	if ext, ok := face.FontHExtents(); ok {
		gf.ascent = float64(ext.Ascender) * gf.scale
		gf.height = float64(ext.Ascender-ext.Descender+ext.LineGap) * gf.scale
	} else {
		m := draw.Metrics()
		gf.ascent, gf.height = float64(m.Ascent.Ceil()), float64(m.Height.Ceil())
	}
	return gf, nil
}

func (f *gotextFace) Name() string {
	return f.name
}

func (f *gotextFace) HasGlyph(r rune) bool {
	_, ok := f.face.NominalGlyph(r)
	return ok
}

// Advance sums nominal advances. Characters without a glyph measure as the
// font's .notdef glyph.
func (f *gotextFace) Advance(text string) uint32 {
	var units float64
	for _, r := range text {
		gid, _ := f.face.NominalGlyph(r)
		units += float64(f.face.HorizontalAdvance(gid))
	}
	if units <= 0 {
		return 0
	}
	return uint32(math.Ceil(units * f.scale))
}

func (f *gotextFace) Height() int {
	return int(math.Ceil(f.height))
}

func (f *gotextFace) Ascent() int {
	return int(math.Ceil(f.ascent))
}

func (f *gotextFace) DrawFace() font.Face {
	return f.draw
}
