package fonts

import (
	"fmt"

	"github.com/npillmayer/unibar/internal/fontload"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Face is a font at a fixed size.
type Face interface {
	// Name returns the name of the underlying font.
	Name() string
	// HasGlyph reports whether the face can display r.
	HasGlyph(r rune) bool
	// Advance returns the width of text in pixels, rounded up.
	Advance(text string) uint32
	// Height returns the line height in pixels.
	Height() int
	// Ascent returns the distance from the baseline to the top of a line.
	Ascent() int
	// DrawFace returns a face for drawing with golang.org/x/image/font.
	DrawFace() font.Face
}

// Open opens the face described by a font specification.
func Open(spec string) (Face, error) {
	s, err := ParseSpec(spec)
	if err != nil {
		return nil, err
	}
	return OpenSpec(s)
}

// OpenSpec opens the face described by s.
func OpenSpec(s Spec) (Face, error) {
	var face Face
	var err error
	switch s.Backend {
	case SFNT:
		face, err = openSFNT(s)
	case GoText:
		face, err = openGoText(s)
	case Cells:
		face = newCellFace()
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownBackend, int(s.Backend))
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open font %s: %w", s, err)
	}
	tracer().Debugf("opened font %q as %s", face.Name(), s)
	return face, nil
}

// sfntFace measures with x/image/font/opentype.
type sfntFace struct {
	name string
	font *sfnt.Font
	face font.Face
	buf  sfnt.Buffer
}

func openSFNT(s Spec) (*sfntFace, error) {
	f, err := fontload.Resolve(s.Name)
	if err != nil {
		return nil, err
	}
	face, err := newDrawFace(f.SFNT, s)
	if err != nil {
		return nil, err
	}
	return &sfntFace{name: f.Fontname, font: f.SFNT, face: face}, nil
}

func newDrawFace(f *sfnt.Font, s Spec) (font.Face, error) {
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    s.Size,
		DPI:     s.DPI,
		Hinting: font.HintingFull,
	})
}

func (f *sfntFace) Name() string {
	return f.name
}

func (f *sfntFace) HasGlyph(r rune) bool {
	gid, err := f.font.GlyphIndex(&f.buf, r)
	return err == nil && gid != 0
}

func (f *sfntFace) Advance(text string) uint32 {
	return ceil(font.MeasureString(f.face, text))
}

func (f *sfntFace) Height() int {
	return f.face.Metrics().Height.Ceil()
}

func (f *sfntFace) Ascent() int {
	return f.face.Metrics().Ascent.Ceil()
}

func (f *sfntFace) DrawFace() font.Face {
	return f.face
}

func ceil(x fixed.Int26_6) uint32 {
	if x <= 0 {
		return 0
	}
	return uint32(x.Ceil())
}
