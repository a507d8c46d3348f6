package seasons

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/triple-crown/internal/crown"
	domainseasons "github.com/preston-bernstein/triple-crown/internal/domain/seasons"
	"github.com/preston-bernstein/triple-crown/internal/logging"
	"github.com/preston-bernstein/triple-crown/internal/metrics"
	"github.com/preston-bernstein/triple-crown/internal/providers"
	"github.com/preston-bernstein/triple-crown/internal/tracing"
)

const defaultConcurrency = 8

// Options controls a Loader.
type Options struct {
	Mode         Mode
	Concurrency  int
	FetchTimeout time.Duration
	// Debug logs per-season detection detail at info level.
	Debug bool
}

// Loader turns a manifest and its season files into resolved, sorted seasons.
type Loader struct {
	provider providers.SeasonProvider
	opts     Options
	logger   *slog.Logger
	recorder *metrics.Recorder
	tracer   trace.Tracer
	now      func() time.Time
	newID    func() string
}

// NewLoader constructs a Loader. A zero Mode means strict.
func NewLoader(provider providers.SeasonProvider, opts Options, logger *slog.Logger, recorder *metrics.Recorder, tp trace.TracerProvider) *Loader {
	if opts.Mode == "" {
		opts.Mode = ModeStrict
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaultConcurrency
	}
	return &Loader{
		provider: provider,
		opts:     opts,
		logger:   logger,
		recorder: recorder,
		tracer:   tracing.Tracer(tp),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Load fetches the manifest, then every season file it lists, and returns the
// seasons newest first. The manifest is always fetched before any season file.
func (l *Loader) Load(ctx context.Context) (res Result, err error) {
	start := l.now()
	res = Result{LoadID: l.newID(), Mode: l.opts.Mode}

	logger := l.logger
	if logger == nil {
		logger = slog.New(discardHandler{})
	}
	logger = logger.With(slog.String(logging.FieldLoadID, res.LoadID), slog.String(logging.FieldMode, string(l.opts.Mode)))
	ctx = logging.WithLogger(ctx, logger)

	ctx, span := l.tracer.Start(ctx, "seasons.load", trace.WithAttributes(
		attribute.String(logging.FieldLoadID, res.LoadID),
		attribute.String(logging.FieldMode, string(l.opts.Mode)),
	))
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
		l.recorder.RecordLoad(metrics.LoadOutcome{
			Mode:     string(l.opts.Mode),
			Duration: l.now().Sub(start),
			Seasons:  len(res.Seasons),
			Skipped:  len(res.Skipped),
			Triples:  res.Triples(),
			Err:      err,
		})
	}()

	if l.provider == nil {
		return Result{}, &ManifestError{Path: domainseasons.ManifestFile, Err: providers.ErrProviderUnavailable}
	}

	manifest, err := l.fetchManifest(ctx)
	if err != nil {
		logger.Error("manifest load failed", "error", err)
		return Result{}, err
	}
	if manifest.Dropped > 0 {
		logger.Warn("manifest entries ignored", slog.Int(logging.FieldSkipped, manifest.Dropped))
	}
	res.Files = len(manifest.Files)
	span.SetAttributes(attribute.Int("files", res.Files))

	if res.Files == 0 {
		logger.Info("no seasons listed")
		res.Seasons = []Season{}
		return res, nil
	}

	records, skipped, err := l.fetchSeasons(ctx, manifest.Files)
	if err != nil {
		logger.Error("season load aborted", "error", err)
		return Result{}, err
	}
	res.Skipped = skipped

	res.Seasons = make([]Season, 0, len(records))
	for _, rec := range records {
		season := Resolve(rec)
		l.logSeason(logger, season)
		res.Seasons = append(res.Seasons, season)
	}
	sort.SliceStable(res.Seasons, func(i, j int) bool {
		return res.Seasons[i].StartYear > res.Seasons[j].StartYear
	})

	logger.Info("seasons loaded",
		slog.Int(logging.FieldCount, len(res.Seasons)),
		slog.Int(logging.FieldSkipped, len(res.Skipped)),
		slog.Int64(logging.FieldDurationMS, l.now().Sub(start).Milliseconds()),
	)
	return res, nil
}

func (l *Loader) fetchManifest(ctx context.Context) (domainseasons.Manifest, error) {
	fctx, cancel := l.fetchContext(ctx)
	defer cancel()

	m, err := l.provider.FetchManifest(fctx)
	if err != nil {
		return domainseasons.Manifest{}, &ManifestError{Path: l.provider.Location(domainseasons.ManifestFile), Err: err}
	}
	return m, nil
}

type slot struct {
	rec domainseasons.Record
	ok  bool
	err *SeasonLoadError
}

// fetchSeasons loads files concurrently. Each goroutine owns one slot, so
// manifest order is kept without locking. Strict mode cancels the rest on the
// first failure and returns it.
func (l *Loader) fetchSeasons(ctx context.Context, files []string) ([]domainseasons.Record, []Skip, error) {
	slots := make([]slot, len(files))

	var g *errgroup.Group
	gctx := ctx
	if l.opts.Mode == ModeStrict {
		g, gctx = errgroup.WithContext(ctx)
	} else {
		g = &errgroup.Group{}
	}
	g.SetLimit(l.opts.Concurrency)

	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				slots[i].err = &SeasonLoadError{File: name, Path: l.provider.Location(name), Err: err}
				return slots[i].err
			}
			fctx, cancel := l.fetchContext(gctx)
			defer cancel()

			rec, err := l.provider.FetchSeason(fctx, name)
			if err != nil {
				slots[i].err = &SeasonLoadError{File: name, Path: l.provider.Location(name), Err: err}
				if l.opts.Mode == ModeStrict {
					return slots[i].err
				}
				return nil
			}
			slots[i] = slot{rec: rec, ok: true}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	logger := logging.FromContext(ctx, l.logger)
	records := make([]domainseasons.Record, 0, len(files))
	var skipped []Skip
	for _, s := range slots {
		if s.ok {
			records = append(records, s.rec)
			continue
		}
		if s.err == nil {
			continue
		}
		logging.Warn(logger, "season file skipped",
			slog.String(logging.FieldPath, s.err.Path),
			slog.Any("error", s.err.Err),
		)
		skipped = append(skipped, Skip{File: s.err.File, Path: s.err.Path, Err: s.err.Err})
	}
	return records, skipped, nil
}

func (l *Loader) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if l.opts.FetchTimeout > 0 {
		return context.WithTimeout(ctx, l.opts.FetchTimeout)
	}
	return context.WithCancel(ctx)
}

func (l *Loader) logSeason(logger *slog.Logger, s Season) {
	for _, name := range []domainseasons.DivisionName{domainseasons.Boys, domainseasons.Girls} {
		division := s.Record.Winners.Division(name)
		for _, e := range domainseasons.Events {
			if w := division.Winner(e); crown.IsMalformed(w) {
				logger.Debug("malformed winner value",
					slog.String(logging.FieldSeason, s.Label),
					slog.String(logging.FieldDivision, string(name)),
					slog.String(logging.FieldEvent, string(e)),
					slog.String("shape", w.Kind.String()),
				)
			}
		}
	}
	if !l.opts.Debug {
		return
	}
	logger.Info("season resolved",
		slog.String(logging.FieldSeason, s.Label),
		slog.Bool("boys_triple", s.Boys.Triple),
		slog.Bool("girls_triple", s.Girls.Triple),
		slog.Any("boys", s.Boys.Events),
		slog.Any("girls", s.Girls.Events),
	)
}

type discardHandler struct{}

func (discardHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (discardHandler) Handle(context.Context, slog.Record) error { return nil }
func (h discardHandler) WithAttrs([]slog.Attr) slog.Handler      { return h }
func (h discardHandler) WithGroup(string) slog.Handler           { return h }
