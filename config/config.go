/*
Package config reads the configuration of a status bar.

A configuration file consists of lines of the form

	option = value

Lines starting with '#' are comments. The options are

	position            top | bottom | left | right
	size                height of the bar in pixels
	width               width of the bar in pixels
	highlight_size      height of underline bars in pixels
	font_y              baseline of the text, 0 centers text vertically
	slot_separator      string separating left, center and right slot input
	font                font specification (repeatable)
	default_background  color of the bar
	ft_colour           font color (repeatable)
	background_colour   background bar color (repeatable)
	highlight_colour    underline bar color (repeatable)

Repeatable options form lists, indexed from 0 in the order of appearance.
Setting a list option at least once replaces its built-in default entry.
Colors are given in hex notation, e.g. "#FF8000".

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package config

import (
	"bufio"
	"errors"
	"fmt"
	"image/color"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/unibar"
)

// tracer traces with key 'unibar.config'
func tracer() tracing.Trace {
	return tracing.Select("unibar.config")
}

// ErrSyntax is wrapped by errors for malformed configuration lines.
var ErrSyntax = errors.New("config: syntax error")

// Position is the screen edge a bar is attached to.
type Position int

const (
	Top Position = iota
	Bottom
	Left
	Right
)

var positionNames = []string{"top", "bottom", "left", "right"}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "<invalid position>"
	}
	return positionNames[p]
}

// Config is the configuration of a bar.
type Config struct {
	Position          Position
	Size              int // height of the bar, or width for vertical positions
	Width             int // extent along the screen edge
	HighlightSize     int // height of underline bars
	FontY             int // text baseline; 0 centers text
	SlotSeparator     string
	Fonts             []string
	DefaultBackground color.RGBA
	FontColors        []color.RGBA
	BackgroundColors  []color.RGBA
	HighlightColors   []color.RGBA
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Position:          Top,
		Size:              32,
		Width:             1920,
		HighlightSize:     4,
		SlotSeparator:     "\t",
		Fonts:             []string{"mono:size=12"},
		DefaultBackground: rgba(0x00, 0x00, 0x00),
		FontColors:        []color.RGBA{rgba(0xFF, 0xFF, 0xFF)},
		BackgroundColors:  []color.RGBA{rgba(0x00, 0x00, 0xFF)},
		HighlightColors:   []color.RGBA{rgba(0xFF, 0x00, 0x00)},
	}
}

// Palette returns the number of colors per color channel.
func (c *Config) Palette() unibar.Palette {
	return unibar.Palette{
		Background: len(c.BackgroundColors),
		Underline:  len(c.HighlightColors),
		Font:       len(c.FontColors),
	}
}

// Load reads a configuration file. A missing file yields the built-in
// configuration.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		tracer().Infof("no configuration file %s, using defaults", path)
		return Default(), nil
	} else if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// list collects the values of a repeatable option.
type list[T any] struct {
	values []T
}

func (l *list[T]) add(v T) {
	l.values = append(l.values, v)
}

// apply replaces dflt if any value has been set.
func (l *list[T]) apply(dflt []T) []T {
	if len(l.values) == 0 {
		return dflt
	}
	return l.values
}

type parser struct {
	conf       *Config
	fonts      list[string]
	fg, bg, hl list[color.RGBA]
}

// Parse reads a configuration from r. Options not given keep their default.
// Unknown options are skipped; malformed lines and values are errors.
func Parse(r io.Reader) (*Config, error) {
	p := &parser{conf: Default()}
	scanner := bufio.NewScanner(r)
	for lineno := 1; scanner.Scan(); lineno++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		opt, val, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("%w: line %d: expected 'option = value'", ErrSyntax, lineno)
		}
		if err := p.set(strings.TrimSpace(opt), strings.TrimSpace(val)); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	p.conf.Fonts = p.fonts.apply(p.conf.Fonts)
	p.conf.FontColors = p.fg.apply(p.conf.FontColors)
	p.conf.BackgroundColors = p.bg.apply(p.conf.BackgroundColors)
	p.conf.HighlightColors = p.hl.apply(p.conf.HighlightColors)
	return p.conf, nil
}

func (p *parser) set(opt, val string) (err error) {
	c := p.conf
	switch opt {
	case "position":
		c.Position, err = parsePosition(val)
	case "size":
		c.Size, err = parsePixels(opt, val)
	case "width":
		c.Width, err = parsePixels(opt, val)
	case "highlight_size":
		c.HighlightSize, err = parsePixels(opt, val)
	case "font_y":
		c.FontY, err = parsePixels(opt, val)
	case "slot_separator":
		c.SlotSeparator, err = unquote(val)
	case "font":
		p.fonts.add(val)
	case "default_background":
		c.DefaultBackground, err = ParseColor(val)
	case "ft_colour", "ft_color":
		err = p.addColor(&p.fg, val)
	case "background_colour", "background_color":
		err = p.addColor(&p.bg, val)
	case "highlight_colour", "highlight_color":
		err = p.addColor(&p.hl, val)
	default:
		tracer().Errorf("invalid option %q", opt)
	}
	return
}

func (p *parser) addColor(l *list[color.RGBA], val string) error {
	c, err := ParseColor(val)
	if err != nil {
		return err
	}
	l.add(c)
	return nil
}

func parsePosition(val string) (Position, error) {
	for i, name := range positionNames {
		if strings.EqualFold(name, val) {
			return Position(i), nil
		}
	}
	return Top, fmt.Errorf("%w: invalid position %q", ErrSyntax, val)
}

func parsePixels(opt, val string) (int, error) {
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", ErrSyntax, opt, val)
	}
	return n, nil
}

// unquote accepts Go string literals, so that separators like "\t" can be
// written down.
func unquote(val string) (string, error) {
	if !strings.HasPrefix(val, `"`) {
		return val, nil
	}
	s, err := strconv.Unquote(val)
	if err != nil {
		return "", fmt.Errorf("%w: invalid string %s", ErrSyntax, val)
	}
	return s, nil
}

// ParseColor parses a color in hex notation, "#RRGGBB" or "#RGB".
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: invalid color %q", ErrSyntax, s)
	}
	r, g, b := c.RGB255()
	return rgba(r, g, b), nil
}

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}
