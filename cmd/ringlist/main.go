package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"sort"
	"syscall"

	"github.com/emirpasic/gods/v2/containers"
	"github.com/outofforest/logger"
	"github.com/pkg/errors"
	"github.com/ridge/must"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/outofforest/ringlist/resource"
	"github.com/outofforest/ringlist/script"
)

const usage = `ringlist - replays YAML scripts against ring lists

Usage:
  ringlist [options] script.yaml...

Options:
`

var errScriptFailed = errors.New("script failed")

type options struct {
	Render   bool
	Quiet    bool
	FailFast bool
}

func main() {
	var opts options

	flags := pflag.NewFlagSet("ringlist", pflag.ExitOnError)
	flags.BoolVar(&opts.Render, "render", false, "Draw the final ring of every script")
	flags.BoolVarP(&opts.Quiet, "quiet", "q", false, "Print only failing steps")
	flags.BoolVar(&opts.FailFast, "fail-fast", false, "Stop replaying after the first failing script")
	flags.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		flags.PrintDefaults()
	}
	must.OK(flags.Parse(os.Args[1:]))

	if flags.NArg() == 0 {
		flags.Usage()
		os.Exit(2)
	}

	log := logger.New(logger.DefaultConfig)
	ctx, cancel := signal.NotifyContext(logger.WithLogger(context.Background(), log), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout, flags.Args(), opts); err != nil {
		log.Error("Replay failed", zap.Error(err))
		cancel()
		os.Exit(1)
	}
}

func run(ctx context.Context, out io.Writer, paths []string, opts options) error {
	scripts := make([]script.Script, 0, len(paths))
	for _, path := range paths {
		s, err := load(path)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	resultCh := make(chan script.Report)
	errCh := make(chan error, 1)
	go func() {
		errCh <- script.RunAll(ctx, scripts, resultCh)
	}()

	var stopped bool
	var firstFailed script.Report
	reports := make([]script.Report, 0, len(scripts))
	for report := range resultCh {
		reports = append(reports, report)
		if opts.FailFast && report.Err != nil && !stopped {
			stopped = true
			firstFailed = report
			cancel()
		}
	}
	err := <-errCh

	if stopped {
		printReport(out, firstFailed, opts)
		return errors.Wrapf(errScriptFailed, "%s: %s", firstFailed.Name, firstFailed.Err)
	}
	if err != nil {
		return err
	}

	sort.Slice(reports, func(i, j int) bool { return reports[i].Index < reports[j].Index })

	var failed int
	for _, report := range reports {
		printReport(out, report, opts)
		if report.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return errors.Wrapf(errScriptFailed, "%d of %d scripts failed", failed, len(reports))
	}
	return nil
}

func load(path string) (script.Script, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return script.Script{}, errors.WithStack(err)
	}
	text := resource.ReadWhole(os.DirFS(filepath.Dir(abs)), filepath.Base(abs))
	if text == "" {
		return script.Script{}, errors.Errorf("script %q is empty or could not be read", path)
	}
	return script.Parse(path, text)
}

func printReport(out io.Writer, report script.Report, opts options) {
	status := "ok"
	if report.Err != nil {
		status = "FAIL"
	}
	fmt.Fprintf(out, "%s %s\n", status, report.Name)

	for i, step := range report.Steps {
		switch {
		case step.Err != nil:
			fmt.Fprintf(out, "  %d %s: %s\n", i, step.Op.Op, step.Err)
		case !opts.Quiet && step.Output != "":
			fmt.Fprintf(out, "  %d %s -> %s\n", i, step.Op.Op, step.Output)
		case !opts.Quiet:
			fmt.Fprintf(out, "  %d %s\n", i, step.Op.Op)
		}
	}

	if !opts.Quiet {
		printFinal(out, report.List)
	}
	if opts.Render {
		fmt.Fprintln(out, script.Render(report.List))
	}
}

func printFinal(out io.Writer, list containers.Container[string]) {
	if list.Empty() {
		fmt.Fprintln(out, "  final: empty")
		return
	}
	fmt.Fprintf(out, "  final: %d %v\n", list.Size(), list.Values())
}
