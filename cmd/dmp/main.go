// Command dmp is a CLI front-end for the diff/match/delta engine: it can
// diff two files, locate a pattern with fuzzy matching, encode/decode the
// compact delta format, or batch-diff many file pairs concurrently.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime/debug"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "diff":
		err = runDiff(os.Args[2:])
	case "match":
		err = runMatch(os.Args[2:])
	case "delta":
		err = runDelta(os.Args[2:])
	case "batch":
		err = runBatch(context.Background(), os.Args[2:])
	case "--version":
		printVersion()
		return
	case "-h", "--help", "help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "dmp: unknown subcommand %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "dmp: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: dmp <command> [flags]

commands:
  diff    <file1> <file2>          diff two files
  match   <file> <pattern> <loc>   locate pattern in file near loc
  delta   encode|decode ...        encode or decode the compact delta format
  batch   <pairs.txt>              diff many file pairs concurrently
  --version                        print build version`)
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ExitOnError)
	return fs
}

func printVersion() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		fmt.Println("dmp: version unknown")
		return
	}
	fmt.Printf("dmp %s\n", info.Main.Version)
}
