package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/glyphdiff/dmp/modules/dmp"
)

func runMatch(args []string) error {
	fs := newFlagSet("match")
	threshold := fs.Float64("threshold", dmp.DefaultMatchThreshold, "acceptance ceiling in [0,1]")
	distance := fs.Int("distance", dmp.DefaultMatchDistance, "proximity weight")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 3 {
		return fmt.Errorf("usage: dmp match [flags] <file> <pattern> <loc>")
	}
	text, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	loc, err := strconv.Atoi(fs.Arg(2))
	if err != nil {
		return fmt.Errorf("loc must be an integer: %w", err)
	}

	e := dmp.New(dmp.DefaultConfig())
	e.Config.MatchThreshold = *threshold
	e.Config.MatchDistance = *distance
	got, err := e.Match(string(text), fs.Arg(1), loc)
	if err != nil {
		return err
	}
	if got == -1 {
		fmt.Println("no match")
		return nil
	}
	fmt.Println(got)
	return nil
}
