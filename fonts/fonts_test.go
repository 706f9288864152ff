package fonts

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

func TestParseSpec(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unibar.fonts")
	defer teardown()
	//
	s, err := ParseSpec("mono:size=12")
	require.NoError(t, err)
	assert.Equal(t, Spec{Name: "mono", Size: 12, DPI: DefaultDPI, Backend: SFNT}, s)
	s, err = ParseSpec(" /usr/share/fonts/x.ttf : size=9.5 : dpi=96 : backend=gotext ")
	require.NoError(t, err)
	assert.Equal(t, "/usr/share/fonts/x.ttf", s.Name)
	assert.Equal(t, 9.5, s.Size)
	assert.Equal(t, 96.0, s.DPI)
	assert.Equal(t, GoText, s.Backend)
	s, err = ParseSpec("bold:weight=200")
	require.NoError(t, err, "unknown options are ignored")
	assert.Equal(t, DefaultSize, s.Size)
	//
	for _, bad := range []string{"", ":size=3", "mono:size", "mono:size=-1", "mono:dpi=x"} {
		_, err := ParseSpec(bad)
		assert.ErrorIs(t, err, ErrInvalidSpec, "spec %q", bad)
	}
	_, err = ParseSpec("mono:backend=cairo")
	assert.True(t, errors.Is(err, ErrUnknownBackend))
}

func TestSFNTFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unibar.fonts")
	defer teardown()
	//
	face, err := Open("mono:size=12")
	require.NoError(t, err)
	assert.True(t, face.HasGlyph('a'))
	assert.False(t, face.HasGlyph('\U0001F600'), "Go Mono has no emoji")
	a := face.Advance("a")
	assert.Greater(t, a, uint32(0))
	assert.Equal(t, a*4, face.Advance("abcd"), "mono font advances are uniform")
	assert.Equal(t, uint32(0), face.Advance(""))
	assert.Greater(t, face.Height(), 0)
	assert.Greater(t, face.Height(), face.Ascent())
	assert.NotNil(t, face.DrawFace())
}

func TestGoTextFace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unibar.fonts")
	defer teardown()
	//
	face, err := Open("mono:size=12:backend=gotext")
	require.NoError(t, err)
	assert.True(t, face.HasGlyph('x'))
	assert.False(t, face.HasGlyph('\U0001F600'))
	a := face.Advance("x")
	assert.Greater(t, a, uint32(0))
	assert.LessOrEqual(t, face.Advance("xx"), 2*a)
	assert.Greater(t, face.Ascent(), 0)
}

func TestCellFace(t *testing.T) {
	face, err := Open("any:backend=cells")
	require.NoError(t, err)
	assert.Equal(t, uint32(7*3), face.Advance("abc"))
	assert.Equal(t, uint32(7*2), face.Advance("世"), "wide characters take two cells")
	assert.True(t, face.HasGlyph('a'))
	assert.False(t, face.HasGlyph('\n'))
	assert.False(t, face.HasGlyph('世'), "basicfont has no CJK glyphs")
	assert.Equal(t, 13, face.Height())
}

func TestCellFaceDrawsAsMeasured(t *testing.T) {
	face, err := Open("any:backend=cells")
	require.NoError(t, err)
	for _, text := range []string{"abc", "a世b", "日本"} {
		drawn := font.MeasureString(face.DrawFace(), text)
		assert.Equal(t, fixed.I(int(face.Advance(text))), drawn, "text %q", text)
	}
}

func TestSet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unibar.fonts")
	defer teardown()
	//
	_, err := NewSet()
	assert.ErrorIs(t, err, ErrNoFaces)
	set, err := OpenSet([]string{"mono:size=10", "x:backend=cells"})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Supports(1, 'a'))
	assert.False(t, set.Supports(0, '世'))
	assert.False(t, set.Supports(1, '世'))
	assert.False(t, set.Supports(2, 'a'), "out of range faces support nothing")
	assert.Equal(t, uint32(14), set.Measure(1, "ab"))
	assert.Equal(t, set.Measure(0, "ab"), set.Measure(5, "ab"), "out of range measures with face 0")
	assert.GreaterOrEqual(t, set.Height(), 13)
	_, err = OpenSet([]string{"mono", "/nonexistent/font.ttf"})
	assert.Error(t, err)
}
