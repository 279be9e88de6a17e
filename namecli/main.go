package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"

	"github.com/otkit/fontname"
	"github.com/otkit/fontname/internal/fontload"
	"github.com/otkit/fontname/ot"
	"github.com/otkit/fontname/otname"
)

// tracer traces with key 'fontname.names'
func tracer() tracing.Trace {
	return tracing.Select("fontname.names")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.fontname.names": "Info",
		"trace.fontname.ot":    "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontfile := flag.String("font", "", "Font file to load (TTF or OTF)")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the font name CLI")
	//
	// set up REPL
	repl, err := readline.New("name > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl}
	//
	// load font to inspect
	if err := intp.loadFont(*fontfile); err != nil { // font file provided by flag
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
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
	font     *ot.Font
	names    *otname.Table
	osName   string // full name as the x/image sfnt reader resolves it
	fontfile string
	repl     *readline.Instance
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			tracer().Errorf(err.Error())
			continue
		}
		err, quit := intp.execute(cmd)
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

type Op struct {
	code int
	arg  string
}

const NOOP = -1
const (
	// op-codes QUIT and HELP will not have arguments
	QUIT int = iota
	HELP
	// op-codes below may have arguments
	TABLES
	LIST
	NAME
	FULL
	FAMILY
)

var opMap = map[string]int{
	"quit":   QUIT,
	"help":   HELP,
	"tables": TABLES,
	"list":   LIST,
	"name":   NAME,
	"full":   FULL,
	"family": FAMILY,
}

func (intp *Intp) parseCommand(line string) (*Op, error) {
	c := strings.Split(line, ":") // e.g. "name:4" or "list"
	code, ok := opMap[strings.ToLower(c[0])]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", c[0])
	}
	op := &Op{code: code}
	if len(c) > 1 {
		op.arg = c[1]
	}
	return op, nil
}

var commandFn = map[int]func(*Intp, *Op) (error, bool){
	QUIT:   quitOp,
	HELP:   helpOp,
	TABLES: tablesOp,
	LIST:   listOp,
	NAME:   nameOp,
	FULL:   fullOp,
	FAMILY: familyOp,
}

func (intp *Intp) execute(op *Op) (err error, stop bool) {
	tracer().Debugf("op = %v", op)
	f, ok := commandFn[op.code]
	if !ok {
		pterm.Error.Printf("unknown command code: %d\n", op.code)
		return nil, false
	}
	return f(intp, op)
}

func quitOp(intp *Intp, op *Op) (error, bool) {
	return nil, true
}

func helpOp(intp *Intp, op *Op) (error, bool) {
	pterm.Println("Commands:")
	pterm.Println("  tables      list the tables contained in the font")
	pterm.Println("  list        list all name records")
	pterm.Println("  name:<id>   resolve a name by its numeric identifier, e.g. name:4")
	pterm.Println("  full        resolve the full font name (name ID 4)")
	pterm.Println("  family      resolve family and subfamily names")
	pterm.Println("  quit        leave the CLI")
	return nil, false
}

func tablesOp(intp *Intp, op *Op) (error, bool) {
	pterm.Printf("font tables: %v\n", intp.font.TableTags())
	return nil, false
}

func nameOp(intp *Intp, op *Op) (error, bool) {
	if op.arg == "" {
		return errors.New("command 'name' needs a numeric identifier, e.g. name:4"), false
	}
	id, err := strconv.Atoi(op.arg)
	if err != nil || id < 0 || id > 0xffff {
		return fmt.Errorf("not a name identifier: %s", op.arg), false
	}
	value, err := intp.names.Find(sfnt.NameID(id), nil)
	if err != nil {
		return err, false
	}
	pterm.Printf("name %d: %q\n", id, value)
	return nil, false
}

func fullOp(intp *Intp, op *Op) (error, bool) {
	value, err := fontname.FullName(intp.font)
	if err != nil {
		return err, false
	}
	pterm.Printf("full font name: %q\n", value)
	if intp.osName != "" && intp.osName != value {
		pterm.Printf("note: x/image sfnt resolves the name as %q\n", intp.osName)
	}
	return nil, false
}

func familyOp(intp *Intp, op *Op) (error, bool) {
	family, subfamily := fontname.FamilyName(intp.font)
	pterm.Printf("family: %q, subfamily: %q\n", family, subfamily)
	return nil, false
}

// --- Font Loading -----------------------------------------------------

func (intp *Intp) loadFont(fontfile string) error {
	if fontfile == "" {
		return errors.New("no font file given, use -font")
	}
	f, err := fontload.LoadOpenTypeFont(fontfile)
	if err != nil {
		tracer().Errorf("cannot load font %s: %s", fontfile, err)
		return err
	}
	otf, err := ot.Parse(f.Binary)
	if err != nil {
		tracer().Errorf("cannot decode font %s: %s", fontfile, err)
		return err
	}
	names, err := fontname.Names(otf)
	if err != nil {
		tracer().Errorf("cannot decode name table of %s: %s", fontfile, err)
		return err
	}
	intp.font = otf
	intp.names = names
	intp.osName = f.Fontname
	intp.fontfile = fontfile
	pterm.Printf("loaded %s with %d name records\n", fontfile, names.Len())
	for _, w := range otf.Warnings() {
		pterm.Printf("warning: %s\n", w.String())
	}
	return nil
}
