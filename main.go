package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"strummy/config"
	"strummy/debug"
	"strummy/pattern"
	"strummy/theme"
	"strummy/tui"
)

type options struct {
	configPath string
	file       string
	length     int
	seed       uint64
	palette    string
	debug      bool

	set map[string]bool // flags given on the command line
}

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		fmt.Fprintln(stderr, "Error: strummy needs an interactive terminal")
		return 1
	}

	if cfg.Debug {
		if err := debug.Enable(cfg.DebugLog); err != nil {
			fmt.Fprintf(stderr, "Error: debug log: %v\n", err)
			return 1
		}
		defer debug.Disable()
	}

	th, err := theme.Load(cfg.Palette)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	rng := newRand(opts.seed)
	state := tui.NewAppState(initialPattern(cfg, rng), cfg.PatternFile, rng, th)

	debug.Log("app", "start file=%s length=%d", cfg.PatternFile, state.Pattern().Len())

	// bubbletea enters raw mode and the alt screen here and restores the
	// terminal before Run returns, including when it returns an error.
	p := tea.NewProgram(tui.New(state), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		debug.Error("app", err, "program exited")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	debug.Log("app", "exit")
	return 0
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{set: map[string]bool{}}

	fs := flag.NewFlagSet("strummy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/strummy/config.json)")
	fs.StringVar(&opts.file, "file", "", "pattern file to save to and load from (.json or .yaml)")
	fs.IntVar(&opts.length, "length", config.DefaultPatternLength, "slots in a generated pattern")
	fs.Uint64Var(&opts.seed, "seed", 0, "random seed, 0 picks one")
	fs.StringVar(&opts.palette, "palette", "", "GIMP .gpl palette file")
	fs.BoolVar(&opts.debug, "debug", false, "write a debug log to ~/.config/strummy/debug.log")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { opts.set[f.Name] = true })

	return opts, nil
}

// resolveConfig loads the config file and lets flags override it
func resolveConfig(opts *options) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.configPath != "" {
		cfg, err = config.LoadFile(opts.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if opts.set["file"] {
		cfg.PatternFile = opts.file
	}
	if opts.set["length"] {
		cfg.PatternLength = opts.length
	}
	if opts.set["palette"] {
		cfg.Palette = opts.palette
	}
	if opts.set["debug"] {
		cfg.Debug = opts.debug
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// initialPattern resumes the saved pattern if there is one
func initialPattern(cfg *config.Config, rng *rand.Rand) *pattern.Pattern {
	if _, err := os.Stat(cfg.PatternFile); err == nil {
		p, err := pattern.Load(cfg.PatternFile)
		if err == nil {
			return p
		}
		debug.Error("app", err, "ignoring saved pattern")
	}
	return pattern.Generate(rng, cfg.PatternLength)
}

func newRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
