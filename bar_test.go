package unibar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func newTestBar(t *testing.T, separator string) *Bar {
	engine, err := NewEngine(&testMetrics{}, len(testWidths), Palette{Background: 2, Underline: 2, Font: 2})
	if err != nil {
		t.Fatal(err)
	}
	return NewBar(engine, separator)
}

func TestBarUpdateLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "unibar")
	defer teardown()
	//
	bar := newTestBar(t, "\t")
	bar.UpdateLine("{B1}left{/B}\tmid\tright\tmore")
	if s := bar.Line(Left).String(); s != "left" {
		t.Errorf("expected left slot 'left', have %q", s)
	}
	if s := bar.Line(Center).String(); s != "mid" {
		t.Errorf("expected center slot 'mid', have %q", s)
	}
	if s := bar.Line(Right).String(); s != "right\tmore" {
		t.Errorf("expected right slot to keep the rest of the line, have %q", s)
	}
	if len(bar.Line(Left).Backgrounds) != 1 {
		t.Errorf("expected a background bar in the left slot")
	}
	bar.UpdateLine("only")
	if !bar.Line(Center).Empty() || !bar.Line(Right).Empty() {
		t.Errorf("expected missing slots to be cleared")
	}
}

func TestBarNoSeparator(t *testing.T) {
	bar := newTestBar(t, "")
	bar.UpdateLine("a\tb")
	if s := bar.Line(Left).String(); s != "a\tb" {
		t.Errorf("expected whole line in left slot, have %q", s)
	}
	if !bar.Line(Right).Empty() {
		t.Errorf("expected right slot to be empty")
	}
}

func TestBarUpdateSlot(t *testing.T) {
	bar := newTestBar(t, "\t")
	if bar.Update(Slot(7), "x") != nil {
		t.Errorf("expected update of invalid slot to be dropped")
	}
	if bar.Line(Slot(-1)) != nil {
		t.Errorf("expected no line for invalid slot")
	}
	line := bar.Update(Right, "{F1}r")
	if line != bar.Line(Right) {
		t.Errorf("expected update to replace the slot's line")
	}
	if len(line.Glyphs) != 1 || line.Glyphs[0].Color != 1 {
		t.Errorf("unexpected glyph runs %v", line.Glyphs)
	}
}

func TestBarPlace(t *testing.T) {
	bar := newTestBar(t, "\t")
	bar.UpdateLine("ab\tcdef\tgh") // 16px, 32px, 16px
	x := bar.Place(100)
	if x != [SlotCount]int{0, 34, 84} {
		t.Errorf("unexpected slot offsets %v", x)
	}
	x = bar.Place(10) // narrower than any slot
	if x != [SlotCount]int{0, 0, 0} {
		t.Errorf("expected offsets clamped to 0, have %v", x)
	}
}

func TestSlotString(t *testing.T) {
	if Center.String() != "center" || Slot(5).String() != "<invalid slot>" {
		t.Errorf("unexpected slot names")
	}
}
