package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand/v2"
	"os"

	"strummy/config"
	"strummy/pattern"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 2
	}

	var err error
	switch args[0] {
	case "gen":
		err = gen(args[1:], stdout, stderr)
	case "show":
		err = show(args[1:], stdout, stderr)
	default:
		usage(stderr)
		return 2
	}

	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Strumming pattern tool")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  gen   [-length N] [-seed S] [-o file]  - print a random pattern, optionally save it")
	fmt.Fprintln(w, "  show  file                             - print a saved pattern")
}

func gen(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	length := fs.Int("length", config.DefaultPatternLength, "slots in the pattern")
	seed := fs.Uint64("seed", 0, "random seed, 0 picks one")
	out := fs.String("o", "", "save to file (.json or .yaml)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *length < 0 {
		return fmt.Errorf("length must be >= 0, got %d", *length)
	}

	s := *seed
	if s == 0 {
		s = rand.Uint64()
	}
	p := pattern.Generate(rand.New(rand.NewPCG(s, s^0x9e3779b97f4a7c15)), *length)

	fmt.Fprintln(stdout, p.Shorthand())

	if *out != "" {
		if err := pattern.Save(p, *out); err != nil {
			return err
		}
	}
	return nil
}

func show(args []string, stdout, stderr io.Writer) error {
	if len(args) != 1 {
		usage(stderr)
		return fmt.Errorf("show takes exactly one file")
	}

	p, err := pattern.Load(args[0])
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "%s  (%d strokes)\n", p.Shorthand(), p.Len())
	return nil
}
