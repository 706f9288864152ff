package unibar

import (
	"github.com/npillmayer/unibar/layout"
	"github.com/npillmayer/unibar/markup"
	"golang.org/x/text/unicode/norm"
)

// Palette holds the number of colors available per color channel.
// Color values themselves are of no interest to layout.
type Palette struct {
	Background int
	Underline  int
	Font       int
}

// ParsedLine is the layout of one input line.
type ParsedLine struct {
	Text        []rune
	Glyphs      []layout.GlyphRun
	Backgrounds []layout.Rect
	Underlines  []layout.Rect
	Diagnostics []markup.Diagnostic
}

// String returns the visible text of p.
func (p *ParsedLine) String() string {
	if p == nil {
		return ""
	}
	return string(p.Text)
}

// Empty reports whether p has no visible text.
func (p *ParsedLine) Empty() bool {
	return p == nil || len(p.Text) == 0
}

// Chunk returns the text of a glyph run of p.
func (p *ParsedLine) Chunk(g layout.GlyphRun) string {
	start, end := max(g.Start, 0), min(g.End, len(p.Text))
	if start >= end {
		return ""
	}
	return string(p.Text[start:end])
}

// Engine parses and measures input lines against a fixed face list and
// palette. It owns the default-face cache.
//
// An Engine is not safe for concurrent use.
type Engine struct {
	metrics   layout.Metrics
	bounds    markup.Bounds
	cache     *layout.FaceCache
	normalize bool
}

// Option configures an Engine.
type Option func(*Engine)

// WithCache lets an engine use a default-face cache owned elsewhere. The cache
// must have been created for the same face list.
func WithCache(cache *layout.FaceCache) Option {
	return func(e *Engine) {
		if cache != nil {
			e.cache = cache
		}
	}
}

// WithNormalization makes the engine convert input lines to Unicode NFC
// before parsing, so that composed and decomposed input lay out alike.
func WithNormalization() Option {
	return func(e *Engine) {
		e.normalize = true
	}
}

// NewEngine creates an engine for faces font faces, measured by metrics.
func NewEngine(metrics layout.Metrics, faces int, palette Palette, opts ...Option) (*Engine, error) {
	if metrics == nil {
		return nil, ErrNoMetrics
	}
	if faces <= 0 {
		return nil, ErrNoFaces
	}
	e := &Engine{
		metrics: metrics,
		bounds: markup.Bounds{
			Background: palette.Background,
			Underline:  palette.Underline,
			Font:       palette.Font,
			Faces:      faces,
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.cache == nil {
		e.cache = layout.NewFaceCache(faces)
	}
	return e, nil
}

// Bounds returns the per-channel index bounds used for parsing.
func (e *Engine) Bounds() markup.Bounds {
	return e.bounds
}

// Cache returns the engine's default-face cache.
func (e *Engine) Cache() *layout.FaceCache {
	return e.cache
}

// Metrics returns the font metrics the engine measures with.
func (e *Engine) Metrics() layout.Metrics {
	return e.metrics
}

// ParseLine lays out a raw input line. Malformed markup never fails a parse;
// dropped directives are listed in the result's Diagnostics.
func (e *Engine) ParseLine(raw string) *ParsedLine {
	if e.normalize {
		raw = norm.NFC.String(raw)
	}
	res := markup.Tokenize(raw, e.bounds)
	faces := layout.ResolveFaces(res.Text, res.Channel(markup.FontFace), e.metrics, e.cache)
	glyphs := layout.Partition(res.Channel(markup.FontColor), faces)
	line := &ParsedLine{
		Text:        res.Text,
		Glyphs:      glyphs,
		Backgrounds: layout.Project(markup.Explicit(res.Channel(markup.Background)), glyphs, res.Text, e.metrics),
		Underlines:  layout.Project(markup.Explicit(res.Channel(markup.Underline)), glyphs, res.Text, e.metrics),
		Diagnostics: res.Diagnostics,
	}
	tracer().Debugf("parsed line %q: %d glyph runs, %d backgrounds, %d underlines",
		line.String(), len(line.Glyphs), len(line.Backgrounds), len(line.Underlines))
	return line
}

// MeasureLine returns the pixel width of a parsed line, i.e. the sum of the
// widths of its glyph runs.
func (e *Engine) MeasureLine(p *ParsedLine) uint32 {
	if p.Empty() {
		return 0
	}
	return layout.Width(p.Glyphs, p.Text, e.metrics)
}
