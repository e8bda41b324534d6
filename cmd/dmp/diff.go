package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rivo/uniseg"
	"golang.org/x/text/unicode/norm"

	"github.com/glyphdiff/dmp/config"
	"github.com/glyphdiff/dmp/modules/dmp"
	"github.com/glyphdiff/dmp/modules/dmp/color"
	"github.com/glyphdiff/dmp/modules/term"
)

func runDiff(args []string) error {
	fs := newFlagSet("diff")
	normalize := fs.Bool("normalize-unicode", false, "NFC-normalize both inputs before diffing")
	configPath := fs.String("config", "", "path to a TOML tuning file")
	noColor := fs.Bool("no-color", false, "disable colorized output")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: dmp diff [flags] <file1> <file2>")
	}

	cfg := dmp.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}

	text1, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	text2, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}
	s1, s2 := string(text1), string(text2)
	if *normalize {
		s1 = norm.NFC.String(s1)
		s2 = norm.NFC.String(s2)
	}

	engine := dmp.New(cfg)
	diffs, err := engine.Diff(context.Background(), s1, s2)
	if err != nil {
		return err
	}
	diffs = engine.CleanupSemantic(diffs)

	cc := color.New()
	if *noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		cc = color.Off()
	}
	printDiff(os.Stdout, diffs, cc)
	return nil
}

// printDiff renders the script inline, switching a run of adjacent
// delete+insert segments to a two-column side-by-side view once the
// terminal is wide enough to fit both without wrapping.
func printDiff(w *os.File, diffs dmp.Diffs, cc color.Config) {
	width := term.Width(w.Fd(), 80)
	for i := 0; i < len(diffs); i++ {
		seg := diffs[i]
		if seg.Op == dmp.Delete && i+1 < len(diffs) && diffs[i+1].Op == dmp.Insert {
			ins := diffs[i+1]
			if uniseg.StringWidth(seg.Text)+uniseg.StringWidth(ins.Text)+3 <= width {
				fmt.Fprintf(w, "%s | %s\n", cc.Paint(color.Old, seg.Text), cc.Paint(color.Ins, ins.Text))
				i++
				continue
			}
		}
		var key color.Key
		switch seg.Op {
		case dmp.Delete:
			key = color.Old
		case dmp.Insert:
			key = color.Ins
		default:
			key = color.Context
		}
		fmt.Fprint(w, cc.Paint(key, seg.Text))
	}
	fmt.Fprintln(w)
}
