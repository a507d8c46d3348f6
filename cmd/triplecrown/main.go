package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/preston-bernstein/triple-crown/internal/config"
	"github.com/preston-bernstein/triple-crown/internal/logging"
	"github.com/preston-bernstein/triple-crown/internal/render"
	"github.com/preston-bernstein/triple-crown/internal/runner"
)

const (
	appName    = "triple-crown"
	appVersion = "dev"
	exitUsage  = 2
)

func main() {
	if os.Getenv("SKIP_TRIPLECROWN_RUN") == "1" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("triplecrown", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: triplecrown [-format text|json] [-filter school] [table|history|timeline|index]")
		fs.PrintDefaults()
	}
	format := fs.String("format", string(render.FormatText), "output format: text or json")
	filter := fs.String("filter", "", "table only: keep seasons where a school contains this text")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() > 1 {
		fs.Usage()
		return exitUsage
	}

	cmd, err := runner.ParseCommand(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	outFormat, err := render.ParseFormat(*format)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	cfg := config.Load()
	logger := logging.NewLogger(logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: appName,
		Version: appVersion,
		Output:  stderr,
	})

	return runner.New(cfg, logger, stdout, appVersion).Run(ctx, runner.Options{
		Command: cmd,
		Format:  outFormat,
		Filter:  *filter,
	})
}
