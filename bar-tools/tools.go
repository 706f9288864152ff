package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/npillmayer/unibar"
	"github.com/npillmayer/unibar/config"
	"github.com/npillmayer/unibar/fonts"
	"github.com/npillmayer/unibar/render"
	"github.com/thatisuday/commando"
)

func main() {
	commando.
		SetExecutableName("bar-tools").
		SetVersion("v0.1.0").
		SetDescription("CLI for driving and inspecting an off-screen status bar.")

	commando.
		Register(nil).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil)

	commando.
		Register("run").
		SetDescription("Read lines from standard input until EOF or 'QUIT NOW', re-rendering the bar to a PNG file after each line.").
		SetShortDescription("drive a bar from stdin").
		AddFlag("config,c", "bar configuration file", commando.String, "-").
		AddFlag("fonts,f", "comma separated font list, overrides the configuration", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "unibar.png").
		AddFlag("width,W", "bar width in pixels (0 uses the configuration)", commando.Int, 0).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runRunCommand)

	commando.
		Register("render").
		SetDescription("Render one line of markup to a PNG file.").
		SetShortDescription("render markup").
		AddArgument("markup", "input line, quoted as a single argument", "").
		AddFlag("config,c", "bar configuration file", commando.String, "-").
		AddFlag("fonts,f", "comma separated font list, overrides the configuration", commando.String, "-").
		AddFlag("output,o", "output PNG file", commando.String, "unibar.png").
		AddFlag("width,W", "bar width in pixels (0 uses the configuration)", commando.Int, 0).
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runRenderCommand)

	commando.
		Register("measure").
		SetDescription("Lay out one line of markup and print its glyph runs and bars.").
		SetShortDescription("measure markup").
		AddArgument("markup", "input line, quoted as a single argument", "").
		AddFlag("config,c", "bar configuration file", commando.String, "-").
		AddFlag("fonts,f", "comma separated font list, overrides the configuration", commando.String, "-").
		AddFlag("verbose,V", "display additional output", commando.Bool, nil).
		SetAction(runMeasureCommand)

	commando.Parse(nil)
}

// setup holds everything needed to lay out and paint a bar.
type setup struct {
	conf    *config.Config
	faces   *fonts.Set
	bar     *unibar.Bar
	painter *render.Painter
}

func mustSetup(flags map[string]commando.FlagValue) *setup {
	conf := config.Default()
	if path := optFlagString(flags["config"], "config"); path != "" {
		var err error
		if conf, err = config.Load(path); err != nil {
			fatalf("%v", err)
		}
	}
	if list := optFlagString(flags["fonts"], "fonts"); list != "" {
		conf.Fonts = strings.Split(list, ",")
	}
	if fv, ok := flags["width"]; ok {
		if w := mustFlagInt(fv, "width"); w > 0 {
			conf.Width = w
		}
	}
	faces, err := fonts.OpenSet(conf.Fonts)
	if err != nil {
		fatalf("%v", err)
	}
	engine, err := unibar.NewEngine(faces, faces.Len(), conf.Palette(), unibar.WithNormalization())
	if err != nil {
		fatalf("%v", err)
	}
	colors, geom := render.FromConfig(conf)
	return &setup{
		conf:    conf,
		faces:   faces,
		bar:     unibar.NewBar(engine, conf.SlotSeparator),
		painter: render.NewPainter(faces, colors, geom),
	}
}

func (s *setup) save(path string) error {
	img := s.painter.NewImage()
	s.painter.Paint(img, s.bar)
	return render.SavePNG(path, img)
}

func runRunCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	s := mustSetup(flags)
	out := mustFlagString(flags["output"], "output")
	verbose := mustFlagBool(flags["verbose"], "verbose")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err := unibar.Run(ctx, os.Stdin, s.bar, func(bar *unibar.Bar) error {
		if verbose {
			printSlots(bar)
		}
		return s.save(out)
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		fatalf("%v", err)
	}
}

func runRenderCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	s := mustSetup(flags)
	out := mustFlagString(flags["output"], "output")
	s.bar.UpdateLine(markupArg(args))
	if mustFlagBool(flags["verbose"], "verbose") {
		printSlots(s.bar)
	}
	if err := s.save(out); err != nil {
		fatalf("%v", err)
	}
	fmt.Printf("wrote %s (%dx%d)\n", out, s.painter.Geometry().Width, s.painter.Geometry().Height)
}

func runMeasureCommand(args map[string]commando.ArgValue, flags map[string]commando.FlagValue) {
	s := mustSetup(flags)
	engine := s.bar.Engine()
	line := engine.ParseLine(markupArg(args))
	fmt.Println(formatLine(line, engine.MeasureLine(line)))
	if mustFlagBool(flags["verbose"], "verbose") {
		for _, d := range line.Diagnostics {
			fmt.Printf("diagnostic: %s\n", d.Error())
		}
	}
}

// markupArg returns the input line argument. Lines containing blanks must be
// quoted.
func markupArg(args map[string]commando.ArgValue) string {
	return args["markup"].Value
}

func printSlots(bar *unibar.Bar) {
	for i := 0; i < unibar.SlotCount; i++ {
		slot := unibar.Slot(i)
		line := bar.Line(slot)
		fmt.Printf("%-6s %q\n", slot, line.String())
	}
}

func formatLine(line *unibar.ParsedLine, width uint32) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "text:   %q\n", line.String())
	fmt.Fprintf(&sb, "width:  %d px\n", width)
	for _, g := range line.Glyphs {
		fmt.Fprintf(&sb, "glyphs: %s %q\n", g, line.Chunk(g))
	}
	for _, r := range line.Backgrounds {
		fmt.Fprintf(&sb, "bg:     %s\n", r)
	}
	for _, r := range line.Underlines {
		fmt.Fprintf(&sb, "ul:     %s\n", r)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// optFlagString returns the value of a string flag, with "-" meaning unset.
func optFlagString(flag commando.FlagValue, name string) string {
	s := strings.TrimSpace(mustFlagString(flag, name))
	if s == "-" {
		return ""
	}
	return s
}

func mustFlagString(flag commando.FlagValue, name string) string {
	s, err := flag.GetString()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return s
}

func mustFlagInt(flag commando.FlagValue, name string) int {
	n, err := flag.GetInt()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return n
}

func mustFlagBool(flag commando.FlagValue, name string) bool {
	b, err := flag.GetBool()
	if err != nil {
		fatalf("invalid --%s flag: %v", name, err)
	}
	return b
}

func fatalf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(os.Stderr, "bar-tools: "+format+"\n", args...)
	os.Exit(1)
}
