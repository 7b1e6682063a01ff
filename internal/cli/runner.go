package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/x/ansi"
	"go.uber.org/zap"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/store/jsonstore"
	"github.com/idilsaglam/shoplist/internal/tui"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// Options carry what the root command resolved from flags and config.
type Options struct {
	ShowHelp  bool
	CharLimit int
	Logger    *zap.Logger

	Stdout, Stderr io.Writer

	// RunTUI replaces tui.Run, for tests.
	RunTUI func(*store.Store, tui.Options) error
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	if o.Stdout == nil {
		o.Stdout = os.Stdout
	}
	if o.Stderr == nil {
		o.Stderr = os.Stderr
	}
	if o.RunTUI == nil {
		o.RunTUI = tui.Run
	}
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	opt.defaults()
	if len(args) == 0 {
		return doTUI(opt)
	}
	cmd, a := args[0], args[1:]

	switch cmd {
	case "help", "-h", "--help":
		PrintHelp(opt.Stdout)
		return 0

	case "tui":
		if len(a) != 0 {
			ui.Fail(opt.Stderr, "usage: shoplist tui")
			return 2
		}
		return doTUI(opt)

	case "replay":
		return doReplay(a, opt)
	}

	ui.Fail(opt.Stderr, "unknown subcommand: "+cmd)
	fmt.Fprintln(opt.Stderr)
	PrintHelp(opt.Stderr)
	return 2
}

func PrintHelp(w io.Writer) {
	fmt.Fprint(w, `shoplist - a shopping list in your terminal

Usage:
  shoplist [flags] [subcommand]

Subcommands:
  tui                        Interactive list (default)
  replay [-json] <script>    Apply a JSON action script and print the list
  help                       Show this help

Flags:
  -config <file>             Config file (default: ./shoplist.yaml)
  -theme <classic|neon|mono> Color theme

Keys (tui):
  a add   space toggle purchased   e edit   d delete   q quit

Examples:
  shoplist
  shoplist -theme mono replay groceries.json
  shoplist replay -json groceries.json
`)
}

// -------------- subcommand impls ----------------

func doTUI(opt Options) int {
	s := store.New(opt.Logger)
	var changes int
	s.Subscribe(func(prev, next model.List, a model.Action) { changes++ })

	opt.Logger.Info("tui started")
	err := opt.RunTUI(s, tui.Options{
		Theme:     ui.Current(),
		ShowHelp:  opt.ShowHelp,
		CharLimit: opt.CharLimit,
		Logger:    opt.Logger,
	})
	if err != nil {
		opt.Logger.Error("tui failed", zap.Error(err))
		ui.Fail(opt.Stderr, "tui: "+err.Error())
		return 1
	}

	state := s.State()
	purchased, _ := state.Stats()
	opt.Logger.Info("tui closed", zap.Int("changes", changes), zap.Int("items", state.Len()))
	ui.OK(opt.Stdout, fmt.Sprintf("%d items, %d purchased", state.Len(), purchased))
	return 0
}

func doReplay(args []string, opt Options) int {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	fs.SetOutput(opt.Stderr)
	asJSON := fs.Bool("json", false, "print the resulting list as JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		ui.Fail(opt.Stderr, "usage: shoplist replay [-json] <script.json>")
		return 2
	}
	path := fs.Arg(0)

	actions, err := jsonstore.LoadActions(path)
	if err != nil {
		ui.Fail(opt.Stderr, "load: "+err.Error())
		if errors.Is(err, jsonstore.ErrNoScript) {
			return 2
		}
		return 1
	}

	s := store.New(opt.Logger)
	for i, a := range actions {
		if err := s.Dispatch(a); err != nil {
			ui.Fail(opt.Stderr, fmt.Sprintf("action %d: %v", i+1, err))
			if errors.Is(err, model.ErrInvalidQuantity) {
				ui.Hint(opt.Stderr, "Hint: quantity must be a whole number above zero")
			}
			return 1
		}
	}
	opt.Logger.Info("script replayed", zap.String("path", path), zap.Int("actions", len(actions)))

	if *asJSON {
		if err := jsonstore.WriteSnapshot(opt.Stdout, s.State()); err != nil {
			ui.Fail(opt.Stderr, err.Error())
			return 1
		}
		return 0
	}
	fmt.Fprintln(opt.Stdout, ui.Panel(ui.Current(), listLines(ui.Current(), s.State())))
	return 0
}

// -------------- rendering helpers --------------

func listLines(t ui.Theme, l model.List) []string {
	purchased, pending := l.Stats()
	lines := []string{
		ui.Header(t, "Shopping List", purchased, pending),
		t.Muted.Render(ui.ProgressBar(t, purchased, l.Len(), 28)),
		"",
	}
	if l.Len() == 0 {
		return append(lines, t.Muted.Render("no items"))
	}
	for _, it := range l.Items {
		name := ansi.Truncate(it.Name, 80, "...")
		box := t.Muted.Render(t.BoxUnchecked)
		if it.Purchased {
			box, name = t.Success.Render(t.BoxChecked), t.Purchased.Render(name)
		}
		lines = append(lines, fmt.Sprintf("%s %s %s  %s",
			t.Muted.Render(fmt.Sprintf("%2d.", it.ID)), box, name,
			t.Muted.Render(fmt.Sprintf("Qty: %d", it.Quantity))))
	}
	return lines
}
