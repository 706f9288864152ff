package main

import (
	"errors"
	"fmt"

	"github.com/npillmayer/unibar"
	"github.com/npillmayer/unibar/layout"
	"github.com/pterm/pterm"
	"golang.org/x/text/unicode/runenames"
)

var errNoLine = errors.New("no line parsed yet")

func parseOp(intp *Intp, op *Op) (error, bool) {
	line := intp.engine.ParseLine(op.arg)
	intp.last = line
	pterm.Printf("text: %q (%d chars, %d px)\n", line.String(), len(line.Text), intp.engine.MeasureLine(line))
	printGlyphRuns(line)
	printRects("Backgrounds", line.Backgrounds)
	printRects("Underlines", line.Underlines)
	if n := len(line.Diagnostics); n > 0 {
		pterm.Warning.Printf("%d directive(s) dropped, see 'diag'\n", n)
	}
	return nil, false
}

func widthOp(intp *Intp, op *Op) (error, bool) {
	line := intp.engine.ParseLine(op.arg)
	intp.last = line
	pterm.Printf("%d px\n", intp.engine.MeasureLine(line))
	return nil, false
}

func facesOp(intp *Intp, op *Op) (error, bool) {
	data := [][]string{
		{"Char", "Code", "Name", "Face", "Font"},
	}
	for _, r := range op.arg {
		face := intp.engine.Cache().Face(r, intp.faces)
		data = append(data, []string{
			string(r),
			fmt.Sprintf("U+%04X", r),
			runenames.Name(r),
			fmt.Sprintf("%d", face),
			intp.faces.Face(face).Name(),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func cacheOp(intp *Intp, op *Op) (error, bool) {
	cache := intp.engine.Cache()
	pterm.Printf("%d cached characters\n", cache.Len())
	if cache.Len() == 0 {
		return nil, false
	}
	data := [][]string{
		{"Char", "Code", "Face"},
	}
	for _, r := range cache.Runes() {
		face, _ := cache.Lookup(r)
		data = append(data, []string{string(r), fmt.Sprintf("U+%04X", r), fmt.Sprintf("%d", face)})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func diagOp(intp *Intp, op *Op) (error, bool) {
	if intp.last == nil {
		return errNoLine, false
	}
	if len(intp.last.Diagnostics) == 0 {
		pterm.Println("no diagnostics")
	}
	for _, d := range intp.last.Diagnostics {
		pterm.Println(d.Error())
	}
	return nil, false
}

func printGlyphRuns(line *unibar.ParsedLine) {
	if len(line.Glyphs) == 0 {
		return
	}
	data := [][]string{
		{"Start", "End", "Face", "Color", "Text"},
	}
	for _, g := range line.Glyphs {
		data = append(data, []string{
			fmt.Sprintf("%d", g.Start),
			fmt.Sprintf("%d", g.End),
			fmt.Sprintf("%d", g.Face),
			fmt.Sprintf("%d", g.Color),
			fmt.Sprintf("%q", line.Chunk(g)),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

func printRects(title string, rects []layout.Rect) {
	if len(rects) == 0 {
		return
	}
	pterm.Printf("%s:\n", title)
	data := [][]string{
		{"Color", "From px", "To px"},
	}
	for _, r := range rects {
		data = append(data, []string{
			fmt.Sprintf("%d", r.Index),
			fmt.Sprintf("%d", r.Start),
			fmt.Sprintf("%d", r.End),
		})
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}
