package main

import (
	"context"
	"fmt"
	"os"

	"github.com/glyphdiff/dmp/modules/dmp"
)

func runDelta(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: dmp delta encode <file1> <file2> | dmp delta decode <file1> <delta-file>")
	}
	switch args[0] {
	case "encode":
		return runDeltaEncode(args[1:])
	case "decode":
		return runDeltaDecode(args[1:])
	default:
		return fmt.Errorf("dmp delta: unknown mode %q, want encode or decode", args[0])
	}
}

func runDeltaEncode(args []string) error {
	fs := newFlagSet("delta encode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: dmp delta encode <file1> <file2>")
	}
	text1, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	text2, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}
	diffs, err := dmp.New(dmp.DefaultConfig()).Diff(context.Background(), string(text1), string(text2))
	if err != nil {
		return err
	}
	fmt.Println(diffs.ToDelta())
	return nil
}

func runDeltaDecode(args []string) error {
	fs := newFlagSet("delta decode")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("usage: dmp delta decode <file1> <delta-file>")
	}
	text1, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	deltaBytes, err := os.ReadFile(fs.Arg(1))
	if err != nil {
		return err
	}
	diffs, err := dmp.FromDelta(string(text1), string(deltaBytes))
	if err != nil {
		return err
	}
	fmt.Print(diffs.Text2())
	return nil
}
