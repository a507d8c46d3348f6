// Package runner wires configuration, telemetry and the season loader into one command run.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	appseasons "github.com/preston-bernstein/triple-crown/internal/app/seasons"
	"github.com/preston-bernstein/triple-crown/internal/config"
	"github.com/preston-bernstein/triple-crown/internal/logging"
	"github.com/preston-bernstein/triple-crown/internal/metrics"
	"github.com/preston-bernstein/triple-crown/internal/providers"
	"github.com/preston-bernstein/triple-crown/internal/render"
	"github.com/preston-bernstein/triple-crown/internal/snapshots"
	"github.com/preston-bernstein/triple-crown/internal/tracing"
	"github.com/preston-bernstein/triple-crown/internal/views"
)

var (
	metricsSetup = metrics.Setup
	tracingSetup = tracing.Setup
)

// Exit codes returned by Run.
const (
	ExitOK     = 0
	ExitFailed = 1
)

// Command selects what a run produces.
type Command string

const (
	CommandTable    Command = "table"
	CommandHistory  Command = "history"
	CommandTimeline Command = "timeline"
	CommandIndex    Command = "index"
)

// ParseCommand maps a command-line word to a Command. Empty means table.
func ParseCommand(raw string) (Command, error) {
	switch c := Command(strings.ToLower(strings.TrimSpace(raw))); c {
	case "":
		return CommandTable, nil
	case CommandTable, CommandHistory, CommandTimeline, CommandIndex:
		return c, nil
	default:
		return "", fmt.Errorf("unknown command %q (want table, history, timeline or index)", raw)
	}
}

// Options are the per-run choices made on the command line.
type Options struct {
	Command Command
	Format  render.Format
	// Filter narrows the table to rows with a matching school.
	Filter string
}

// Runner performs one load-and-render cycle.
type Runner struct {
	cfg      config.Config
	logger   *slog.Logger
	out      io.Writer
	version  string
	provider providers.SeasonProvider
	recorder *metrics.Recorder
}

// New constructs a Runner writing to out (stdout when nil).
func New(cfg config.Config, logger *slog.Logger, out io.Writer, version string) *Runner {
	if out == nil {
		out = os.Stdout
	}
	return &Runner{cfg: cfg, logger: logger, out: out, version: version}
}

// Run executes opts.Command and returns the process exit code.
func (r *Runner) Run(ctx context.Context, opts Options) int {
	renderer := render.New(r.out, opts.Format)
	if opts.Command == CommandIndex {
		return r.rebuildIndex(renderer)
	}

	recorder, metricsStop := r.buildMetrics(ctx)
	tp, tracingStop := r.buildTracing(ctx)
	defer r.shutdown(metricsStop, tracingStop)

	provider := newProviderFactory(r.logger, recorder, tp).build(r.cfg, r.provider)
	loader := appseasons.NewLoader(provider, appseasons.Options{
		Mode:         appseasons.ParseMode(r.cfg.Load.Mode),
		Concurrency:  r.cfg.Load.Concurrency,
		FetchTimeout: r.cfg.Load.FetchTimeout,
		Debug:        r.cfg.Load.Debug,
	}, r.logger, recorder, tp)

	res, err := loader.Load(ctx)
	page, code := pageFor(res, err)
	if err != nil {
		logging.Error(r.logger, "season load failed", err)
		res.Seasons = nil
	}

	if rerr := r.renderView(renderer, opts, page, res.Seasons); rerr != nil {
		logging.Error(r.logger, "render failed", rerr)
		return ExitFailed
	}
	return code
}

// pageFor picks the status line and exit code for a load outcome. A failed
// load never shows rows.
func pageFor(res appseasons.Result, err error) (render.Page, int) {
	page := render.Page{LoadID: res.LoadID}
	switch {
	case err != nil:
		page.Status = render.StatusLoadError
		return page, ExitFailed
	case res.NoSeasons():
		page.Status = render.StatusNoSeasons
	case res.AllSkipped():
		page.Status = render.StatusAllSkipped
	}
	for _, s := range res.Skipped {
		page.Skipped = append(page.Skipped, s.File)
	}
	if res.AllSkipped() {
		return page, ExitFailed
	}
	return page, ExitOK
}

func (r *Runner) renderView(renderer *render.Renderer, opts Options, page render.Page, list []appseasons.Season) error {
	switch opts.Command {
	case CommandHistory:
		return renderer.History(page, views.History(list))
	case CommandTimeline:
		return renderer.Timeline(page, views.Timeline(list))
	default:
		return renderer.Table(page, views.FilterTable(views.Table(list), opts.Filter))
	}
}

// rebuildIndex regenerates the manifest from the season files in the data directory.
func (r *Runner) rebuildIndex(renderer *render.Renderer) int {
	writer := snapshots.NewWriter(r.cfg.Source.DataDir)
	m, changed, err := writer.RebuildManifest()
	if err != nil {
		logging.Error(r.logger, "manifest rebuild failed", err, slog.String(logging.FieldPath, writer.BasePath()))
		return ExitFailed
	}
	logging.Info(r.logger, "manifest rebuilt",
		slog.String(logging.FieldPath, writer.BasePath()),
		slog.Int(logging.FieldCount, len(m.Files)),
		slog.Bool("changed", changed),
	)
	if err := renderer.Manifest(m, changed); err != nil {
		logging.Error(r.logger, "render failed", err)
		return ExitFailed
	}
	return ExitOK
}

func (r *Runner) buildMetrics(ctx context.Context) (*metrics.Recorder, func(context.Context) error) {
	if r.recorder != nil {
		return r.recorder, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      r.cfg.Metrics.Enabled,
		TextfilePath: r.cfg.Metrics.TextfilePath,
		ServiceName:  r.cfg.Metrics.ServiceName,
		OtlpEndpoint: r.cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: r.cfg.Metrics.OtlpInsecure,
	}

	rec, gatherer, shutdown, err := metricsSetup(ctx, recCfg)
	if err != nil {
		logging.Warn(r.logger, "metrics setup failed, continuing without telemetry", "error", err)
		return metrics.NewRecorder(), nil
	}
	if gatherer != nil {
		logGathered(r.logger, gatherer)
	}
	return rec, shutdown
}

func (r *Runner) buildTracing(ctx context.Context) (trace.TracerProvider, func(context.Context) error) {
	tp, shutdown, err := tracingSetup(ctx, tracing.Config{
		Enabled:      r.cfg.Tracing.Enabled,
		ServiceName:  r.cfg.Tracing.ServiceName,
		Version:      r.version,
		OtlpEndpoint: r.cfg.Tracing.OtlpEndpoint,
		OtlpInsecure: r.cfg.Tracing.OtlpInsecure,
	}, r.logger)
	if err != nil {
		logging.Warn(r.logger, "tracing setup failed, continuing without spans", "error", err)
		return nil, nil
	}
	return tp, shutdown
}

func (r *Runner) shutdown(stops ...func(context.Context) error) {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	for _, stop := range stops {
		if stop == nil {
			continue
		}
		if err := stop(ctx); err != nil {
			logging.Warn(r.logger, "telemetry shutdown failed", "error", err)
		}
	}
}

// logGathered reports how many metric families are registered, confirming the exporter is live.
func logGathered(logger *slog.Logger, gatherer prometheus.Gatherer) {
	families, err := gatherer.Gather()
	if err != nil {
		logging.Warn(logger, "metrics gather failed", "error", err)
		return
	}
	logging.Debug(logger, "metrics exporter ready", slog.Int(logging.FieldCount, len(families)))
}
