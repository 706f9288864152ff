package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/unibar"
	"github.com/npillmayer/unibar/config"
	"github.com/npillmayer/unibar/fonts"
	"github.com/pterm/pterm"
)

// tracer traces with key 'unibar.cli'
func tracer() tracing.Trace {
	return tracing.Select("unibar.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":     "go",
		"trace.unibar.cli":    "Info",
		"trace.unibar":        "Error",
		"trace.unibar.markup": "Error",
		"trace.unibar.layout": "Error",
		"trace.unibar.fonts":  "Error",
		"trace.unibar.config": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	confpath := flag.String("config", "", "Bar configuration file")
	fontlist := flag.String("fonts", "", "Comma separated font list, overrides the configuration")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the unibar markup inspector")
	//
	// set up layout engine
	intp, err := newIntp(*confpath, *fontlist)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	intp.repl, err = readline.New("ub > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer intp.repl.Close()
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// Intp is our interpreter object
type Intp struct {
	conf   *config.Config
	faces  *fonts.Set
	engine *unibar.Engine
	last   *unibar.ParsedLine
	repl   *readline.Instance
}

func newIntp(confpath, fontlist string) (*Intp, error) {
	conf := config.Default()
	if confpath != "" {
		var err error
		if conf, err = config.Load(confpath); err != nil {
			return nil, err
		}
	}
	if fontlist != "" {
		conf.Fonts = strings.Split(fontlist, ",")
	}
	faces, err := fonts.OpenSet(conf.Fonts)
	if err != nil {
		return nil, err
	}
	engine, err := unibar.NewEngine(faces, faces.Len(), conf.Palette(), unibar.WithNormalization())
	if err != nil {
		return nil, err
	}
	for i := 0; i < faces.Len(); i++ {
		pterm.Printf("face %d: %s\n", i, faces.Face(i).Name())
	}
	return &Intp{conf: conf, faces: faces, engine: engine}, nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd := parseCommand(line)
		tracer().Debugf("command %s %q", opNames[cmd.code], cmd.arg)
		err, quit := commandFn[cmd.code](intp, cmd)
		if err != nil {
			pterm.Error.Println(err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Op is a single interpreter command.
type Op struct {
	code int
	arg  string
}

const (
	QUIT int = iota
	HELP
	PARSE
	WIDTH
	FACES
	CACHE
	DIAG
)

var opMap = map[string]int{
	"quit":  QUIT,
	"help":  HELP,
	"parse": PARSE,
	"width": WIDTH,
	"faces": FACES,
	"cache": CACHE,
	"diag":  DIAG,
}

var opNames = []string{
	"quit",
	"help",
	"parse",
	"width",
	"faces",
	"cache",
	"diag",
}

// parseCommand splits a line into command and argument. Markup arguments
// keep their spaces; unknown commands turn into help.
func parseCommand(line string) *Op {
	line = strings.TrimLeft(line, " \t")
	name, arg, _ := strings.Cut(line, " ")
	code, ok := opMap[strings.ToLower(name)]
	if !ok {
		return &Op{code: HELP, arg: name}
	}
	return &Op{code: code, arg: arg}
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:  quitOp,
	HELP:  helpOp,
	PARSE: parseOp,
	WIDTH: widthOp,
	FACES: facesOp,
	CACHE: cacheOp,
	DIAG:  diagOp,
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}
