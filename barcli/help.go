package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(strings.TrimSpace(topic)) {
	case "markup", "parse":
		pterm.Info.Println("Markup")
		pterm.Println(`
	Text is interspersed with format blocks in braces:
	+-----------+-----------------------------+
	| {B<n>}    | background bar, color n     |
	| {H<n>}    | underline bar, color n      |
	| {F<n>}    | font color n                |
	| {f<n>}    | font face n                 |
	| {/B}      | end background bar          |
	+-----------+-----------------------------+
	Directives may be combined, e.g. {B1F2} or {/BF}.
	'parse <markup>' prints glyph runs and bars of a line.
	`)
	case "faces", "cache":
		pterm.Info.Println("Default faces")
		pterm.Println(`
	Characters without an explicit face use the first face able to display them.
	'faces <text>' lists the default face per character.
	'cache' lists all characters seen so far with their default face.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	parse <markup>   lay out a line
	width <markup>   pixel width of a line
	faces <text>     default face per character
	cache            default-face cache contents
	diag             diagnostics of the last parsed line
	help [markup|faces]
	quit
	`)
	}
}
