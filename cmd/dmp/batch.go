package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/kballard/go-shellquote"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
	"golang.org/x/sync/errgroup"

	"github.com/glyphdiff/dmp/modules/dmp"
	"github.com/glyphdiff/dmp/modules/term"
)

// runBatch diffs many file pairs concurrently, exercising the engine's
// reentrancy guarantee (distinct Engine values, or the same one used
// read-only, may run concurrently on distinct inputs).
func runBatch(ctx context.Context, args []string) error {
	fs := newFlagSet("batch")
	concurrency := fs.Int("concurrency", 8, "max concurrent diffs")
	pager := fs.String("pager", "", "shell command line to pipe results through, e.g. \"less -R\"")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("usage: dmp batch [flags] <pairs.txt>")
	}

	pairs, err := readPairs(fs.Arg(0))
	if err != nil {
		return err
	}
	if len(pairs) == 0 {
		return nil
	}

	width := term.Width(os.Stderr.Fd(), 80)
	p := mpb.New(mpb.WithOutput(os.Stderr), mpb.WithAutoRefresh(), mpb.WithWidth(width))
	bar := p.New(int64(len(pairs)),
		mpb.BarStyle().Filler("#").Padding(" "),
		mpb.PrependDecorators(decor.Name("diffing", decor.WC{W: 10})),
		mpb.AppendDecorators(decor.CountersNoUnit("%d / %d"), decor.OnComplete(decor.Percentage(), "done")),
	)

	engine := dmp.New(dmp.DefaultConfig())
	results := make([]string, len(pairs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(*concurrency)
	for i, pr := range pairs {
		i, pr := i, pr
		g.Go(func() error {
			defer bar.Increment()
			t1, err := os.ReadFile(pr.file1)
			if err != nil {
				return fmt.Errorf("%s: %w", pr.file1, err)
			}
			t2, err := os.ReadFile(pr.file2)
			if err != nil {
				return fmt.Errorf("%s: %w", pr.file2, err)
			}
			diffs, err := engine.Diff(gctx, string(t1), string(t2))
			if err != nil {
				return fmt.Errorf("%s vs %s: %w", pr.file1, pr.file2, err)
			}
			mu.Lock()
			results[i] = fmt.Sprintf("--- %s\n+++ %s\n%s", pr.file1, pr.file2, diffs.ToDelta())
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		p.Wait()
		return err
	}
	p.Wait()

	out := strings.Join(results, "\n\n")
	if *pager == "" {
		fmt.Println(out)
		return nil
	}
	return runPager(*pager, out)
}

type filePair struct{ file1, file2 string }

func readPairs(path string) ([]filePair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var pairs []filePair
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("malformed pair line: %q", line)
		}
		pairs = append(pairs, filePair{file1: fields[0], file2: fields[1]})
	}
	return pairs, sc.Err()
}

func runPager(pagerCmd, output string) error {
	args, err := shellquote.Split(pagerCmd)
	if err != nil || len(args) == 0 {
		return fmt.Errorf("invalid --pager command %q: %w", pagerCmd, err)
	}
	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdin = strings.NewReader(output)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
