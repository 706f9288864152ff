package unibar

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/unibar/layout"
	"github.com/npillmayer/unibar/markup"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

// testMetrics: face 0 displays ASCII only, faces 1 and 2 display everything.
// Characters are 8, 10 and 12 pixels wide respectively.
type testMetrics struct {
	supportQueries int
}

var testWidths = []uint32{8, 10, 12}

func (m *testMetrics) Supports(face int, r rune) bool {
	m.supportQueries++
	return face != 0 || r <= unicode.MaxASCII
}

func (m *testMetrics) Measure(face int, text string) uint32 {
	return testWidths[face] * uint32(utf8.RuneCountInString(text))
}

type EngineTestEnviron struct {
	suite.Suite
	metrics *testMetrics
	engine  *Engine
}

// listen for 'go test' command --> run test methods
func TestEngineFunctions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unibar")
	defer teardown()
	suite.Run(t, new(EngineTestEnviron))
}

// run before each test method
func (env *EngineTestEnviron) SetupTest() {
	tracing.Select("unibar").SetTraceLevel(tracing.LevelInfo)
	env.metrics = &testMetrics{}
	var err error
	env.engine, err = NewEngine(env.metrics, len(testWidths), Palette{Background: 3, Underline: 3, Font: 3})
	env.Require().NoError(err)
}

// --- Tests -----------------------------------------------------------------

func (env *EngineTestEnviron) TestPlainText() {
	line := env.engine.ParseLine("hello")
	env.Equal("hello", line.String())
	env.Equal([]layout.GlyphRun{{Face: 0, Color: 0, Start: 0, End: 5}}, line.Glyphs)
	env.Empty(line.Backgrounds, "expected no background bars")
	env.Empty(line.Underlines, "expected no underline bars")
	env.Equal(uint32(40), env.engine.MeasureLine(line))
}

func (env *EngineTestEnviron) TestBackground() {
	line := env.engine.ParseLine("{B1}hi{/B}there")
	env.Equal("hithere", line.String())
	env.Equal([]layout.Rect{{Index: 1, Start: 0, End: 16}}, line.Backgrounds)
	env.Empty(line.Underlines)
}

func (env *EngineTestEnviron) TestFontColors() {
	line := env.engine.ParseLine("{F2}ab{F0}cd")
	env.Equal([]layout.GlyphRun{
		{Face: 0, Color: 2, Start: 0, End: 2},
		{Face: 0, Color: 0, Start: 2, End: 4},
	}, line.Glyphs)
	env.Equal("ab", line.Chunk(line.Glyphs[0]))
	env.Equal("cd", line.Chunk(line.Glyphs[1]))
}

func (env *EngineTestEnviron) TestOutOfRange() {
	line := env.engine.ParseLine("{B9}x")
	env.Equal("x", line.String())
	env.Empty(line.Backgrounds, "out-of-range background must be dropped")
	env.Require().Len(line.Diagnostics, 1)
	env.Equal(markup.SeverityMajor, line.Diagnostics[0].Severity)
}

func (env *EngineTestEnviron) TestNestedChannels() {
	line := env.engine.ParseLine("{F1}{f2}mixed{/f}{/F}")
	env.Equal([]layout.GlyphRun{{Face: 2, Color: 1, Start: 0, End: 5}}, line.Glyphs)
	env.Equal(uint32(60), env.engine.MeasureLine(line))
}

func (env *EngineTestEnviron) TestDefaultFaceFallback() {
	line := env.engine.ParseLine("a€b")
	env.Equal([]layout.GlyphRun{
		{Face: 0, Color: 0, Start: 0, End: 1},
		{Face: 1, Color: 0, Start: 1, End: 2},
		{Face: 0, Color: 0, Start: 2, End: 3},
	}, line.Glyphs)
	env.Equal(uint32(26), env.engine.MeasureLine(line))
}

func (env *EngineTestEnviron) TestUnderlineAcrossFaces() {
	// "ab" in face 0, "€" in face 1; the glyph run starting at the end of the
	// underline adds the width of its first character
	line := env.engine.ParseLine("{H2}ab{/H}€")
	env.Equal([]layout.Rect{{Index: 2, Start: 0, End: 26}}, line.Underlines)
	line = env.engine.ParseLine("a{H0}b€{/H}")
	env.Equal([]layout.Rect{{Index: 0, Start: 8, End: 26}}, line.Underlines)
}

func (env *EngineTestEnviron) TestEmptySwitchKeepsRunsMinimal() {
	line := env.engine.ParseLine("{F1}a{F2}{F1}b")
	env.Equal([]layout.GlyphRun{{Face: 0, Color: 1, Start: 0, End: 2}}, line.Glyphs)
	line = env.engine.ParseLine("{B1}a{B2}{B1}b")
	env.Equal([]layout.Rect{{Index: 1, Start: 0, End: 16}}, line.Backgrounds)
	line = env.engine.ParseLine("{f1}a{f2}{f1}b")
	env.Equal([]layout.GlyphRun{{Face: 1, Color: 0, Start: 0, End: 2}}, line.Glyphs)
}

func (env *EngineTestEnviron) TestExplicitFaceMatchingDefault() {
	// face 0 is the default face of ASCII characters
	line := env.engine.ParseLine("{f0}a{/f}b")
	env.Equal([]layout.GlyphRun{{Face: 0, Color: 0, Start: 0, End: 2}}, line.Glyphs)
	line = env.engine.ParseLine("{f1}€{/f}€")
	env.Equal([]layout.GlyphRun{{Face: 1, Color: 0, Start: 0, End: 2}}, line.Glyphs)
}

func (env *EngineTestEnviron) TestIdempotence() {
	raw := "{B1}{F2}sta{f1}tus{/f} €{/B}{H0}bar"
	first := env.engine.ParseLine(raw)
	second := env.engine.ParseLine(raw)
	env.Equal(first, second, "parsing the same line twice must give identical results")
}

func (env *EngineTestEnviron) TestCacheFilledOnce() {
	env.engine.ParseLine("abcabc")
	queries := env.metrics.supportQueries
	env.Equal(3, env.engine.Cache().Len())
	env.engine.ParseLine("cabbage")
	env.Equal(queries+2, env.metrics.supportQueries, "expected queries only for 'g' and 'e'")
}

func (env *EngineTestEnviron) TestMalformedKeepsText() {
	line := env.engine.ParseLine("{Bx}ab{/?}cd")
	env.Equal("abcd", line.String())
	env.Len(line.Diagnostics, 2)
	env.Empty(line.Backgrounds)
}

func (env *EngineTestEnviron) TestRectsOrderedAndValid() {
	line := env.engine.ParseLine("{B0}a{B1}bc{/B}d{B2}€e{H1}f{/H}g")
	env.Require().Len(line.Backgrounds, 3)
	for i, r := range line.Backgrounds {
		env.LessOrEqual(r.Start, r.End)
		if i > 0 {
			env.LessOrEqual(line.Backgrounds[i-1].Start, r.Start)
		}
	}
	env.Len(line.Underlines, 1)
}

func (env *EngineTestEnviron) TestEmptyLine() {
	line := env.engine.ParseLine("")
	env.True(line.Empty())
	env.Empty(line.Glyphs)
	env.Equal(uint32(0), env.engine.MeasureLine(line))
}

func (env *EngineTestEnviron) TestNormalization() {
	engine, err := NewEngine(env.metrics, len(testWidths), Palette{Font: 1}, WithNormalization())
	env.Require().NoError(err)
	line := engine.ParseLine("e\u0301")
	env.Equal("\u00e9", line.String())
	env.Len(line.Text, 1)
}

// --- Plain tests -----------------------------------------------------------

func TestNewEngineErrors(t *testing.T) {
	if _, err := NewEngine(nil, 1, Palette{}); err != ErrNoMetrics {
		t.Errorf("expected ErrNoMetrics, have %v", err)
	}
	if _, err := NewEngine(&testMetrics{}, 0, Palette{}); err != ErrNoFaces {
		t.Errorf("expected ErrNoFaces, have %v", err)
	}
}

func TestGlyphRunsCoverText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unibar")
	defer teardown()
	//
	engine, _ := NewEngine(&testMetrics{}, len(testWidths), Palette{Background: 2, Underline: 2, Font: 3})
	inputs := []string{
		"plain", "{F1}a{f2}b{F2}c{/f}d€e", "{f1}x{f2}y{/f}z{F1}", "€€{F2}€",
		"{B1}{H1}{F1}{f1}all{/B}{/H}{/F}{/f}", "{B1",
	}
	for _, input := range inputs {
		line := engine.ParseLine(input)
		pos := 0
		for _, g := range line.Glyphs {
			if g.Start != pos || g.Len() <= 0 {
				t.Fatalf("%q: glyph runs not contiguous: %v", input, line.Glyphs)
			}
			pos = g.End
		}
		if pos != len(line.Text) {
			t.Errorf("%q: glyph runs cover %d of %d chars", input, pos, len(line.Text))
		}
	}
}
