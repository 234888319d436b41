package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync/atomic"
	"time"

	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/config"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/domain"
	"github.com/haved-jossain/spotted-lanternfly-mapper/internal/observability"
)

// ErrEmptyYearRange is returned before any scanning when no post falls inside
// the requested year window: the work would be vacuous.
var ErrEmptyYearRange = errors.New("no posts within the requested year range")

// PostSource loads the ordered post list from the input spreadsheet.
type PostSource interface {
	Load(ctx context.Context) ([]domain.Post, error)
}

// RecordExporter receives one ClassificationRecord per in-range post, in scan
// order. It decides whether and how to persist them.
type RecordExporter interface {
	Write(ctx context.Context, rec domain.ClassificationRecord) error
}

// Presenter renders one labeled RegionCounter per output bucket. Presenter
// failures are logged, never fatal.
type Presenter interface {
	Present(ctx context.Context, counter *domain.RegionCounter) error
}

// FanoutExporter forwards each record to every underlying exporter.
type FanoutExporter []RecordExporter

func (f FanoutExporter) Write(ctx context.Context, rec domain.ClassificationRecord) error {
	for _, e := range f {
		if err := e.Write(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// Options are the scan parameters carried over from configuration.
type Options struct {
	StartYear     string
	EndYear       string
	OutputMode    string // config.OutputSingle or config.OutputMultiple
	DedupCapacity int
}

// Aggregator drives the single pass over posts: year-range filtering, text
// normalization, duplicate-gated classification, per-year region counting,
// and the optional merge into a single output bucket. It owns the dedup
// window and the year buckets for the lifetime of one run; neither is visible
// to other goroutines mid-scan.
type Aggregator struct {
	source    PostSource
	tagger    domain.Tagger
	exporter  RecordExporter // nil disables the detailed export
	presenter Presenter
	logger    *slog.Logger
	metrics   *observability.Metrics
	opts      Options

	ready    atomic.Bool
	progress atomic.Int64
	buckets  map[string]*domain.RegionCounter
}

// New creates an Aggregator with the given collaborators. Pass a nil exporter
// to disable the detailed export.
func New(source PostSource, tagger domain.Tagger, exporter RecordExporter, presenter Presenter,
	logger *slog.Logger, metrics *observability.Metrics, opts Options) *Aggregator {
	return &Aggregator{
		source:    source,
		tagger:    tagger,
		exporter:  exporter,
		presenter: presenter,
		logger:    logger,
		metrics:   metrics,
		opts:      opts,
	}
}

// CheckReadiness returns nil once the scan has processed at least one post.
func (a *Aggregator) CheckReadiness(_ context.Context) error {
	if !a.ready.Load() {
		return errors.New("scan has not processed any posts yet")
	}
	return nil
}

// Progress returns the integer percentage of in-range posts processed so far.
func (a *Aggregator) Progress() int {
	return int(a.progress.Load())
}

// Buckets exposes the final year buckets after Run has returned. In
// single-output mode the map holds exactly one merged entry.
func (a *Aggregator) Buckets() map[string]*domain.RegionCounter {
	return a.buckets
}

// Run executes the scan: load posts, validate the year range, classify and
// count in a single ordered pass, optionally merge, and hand every bucket to
// the presenter.
func (a *Aggregator) Run(ctx context.Context) error {
	posts, err := a.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load posts: %w", err)
	}

	total := a.countInRange(posts)
	if total == 0 {
		return ErrEmptyYearRange
	}

	a.logger.Info("scan starting",
		"posts", len(posts),
		"in_range", total,
		"start_year", a.opts.StartYear,
		"end_year", a.opts.EndYear,
		"output_mode", a.opts.OutputMode,
	)
	a.metrics.ScanRunning.Set(1)
	defer a.metrics.ScanRunning.Set(0)
	start := time.Now()

	buckets, err := a.scan(ctx, posts, total)
	if err != nil {
		return err
	}

	if a.opts.OutputMode == config.OutputSingle {
		buckets = a.mergeBuckets(buckets)
	}
	a.buckets = buckets

	a.present(ctx, buckets)

	a.metrics.ScanDuration.Observe(time.Since(start).Seconds())
	a.logger.Info("scan complete", "buckets", len(buckets), "duration", time.Since(start))
	return nil
}

// countInRange counts posts whose year falls inside [StartYear, EndYear].
// Malformed timestamps match no year.
func (a *Aggregator) countInRange(posts []domain.Post) int {
	n := 0
	for _, p := range posts {
		if year, ok := domain.PostYear(p.Date); ok && domain.YearInRange(year, a.opts.StartYear, a.opts.EndYear) {
			n++
		}
	}
	return n
}

// scan is the single ordered pass over the post list.
func (a *Aggregator) scan(ctx context.Context, posts []domain.Post, total int) (map[string]*domain.RegionCounter, error) {
	buckets := make(map[string]*domain.RegionCounter)
	window := domain.NewDedupWindow(a.opts.DedupCapacity)
	processed := 0
	lastDecile := 0

	for _, post := range posts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		a.metrics.PostsScanned.Inc()

		year, ok := domain.PostYear(post.Date)
		if !ok || !domain.YearInRange(year, a.opts.StartYear, a.opts.EndYear) {
			continue
		}
		a.metrics.PostsInRange.Inc()

		counter, ok := buckets[year]
		if !ok {
			counter = domain.NewRegionCounter(year)
			buckets[year] = counter
		}

		rec := a.classifyPost(post, window, counter)
		if a.exporter != nil {
			if err := a.exporter.Write(ctx, rec); err != nil {
				return nil, fmt.Errorf("export record %d: %w", rec.Index, err)
			}
		}

		processed++
		a.ready.Store(true)
		pct := processed * 100 / total
		a.progress.Store(int64(pct))
		a.metrics.Progress.Set(float64(pct))
		if pct/10 > lastDecile {
			lastDecile = pct / 10
			a.logger.Info("progress", "percent", lastDecile*10)
		}
	}

	return buckets, nil
}

// classifyPost normalizes and classifies one in-range post, updating the
// dedup window and the year's counter on a positive verdict. It always
// returns a record for the export stream; per-post NLP failures downgrade the
// verdict to Other and are never fatal.
func (a *Aggregator) classifyPost(post domain.Post, window *domain.DedupWindow, counter *domain.RegionCounter) domain.ClassificationRecord {
	rec := domain.ClassificationRecord{
		Index:       post.Row,
		Date:        post.Date,
		Verdict:     domain.VerdictOther,
		Location:    post.Location,
		Text:        post.Text,
		ProcessedAt: domain.Now(),
	}

	mentions, err := domain.ExtractMentions(a.tagger, post.Text)
	if err != nil {
		a.logger.Warn("entity extraction failed, skipping post", "row", post.Row, "error", err)
		a.metrics.TaggerErrors.Inc()
		return rec
	}
	rec.ExtractedLocations = mentions

	stepOne := domain.NormalizeStepOne(post.Text)
	tokens, err := a.tagger.Tokenize(stepOne)
	if err != nil {
		a.logger.Warn("tokenization failed, skipping post", "row", post.Row, "error", err)
		a.metrics.TaggerErrors.Inc()
		return rec
	}
	normalized := domain.NormalizeStepTwo(tokens)

	if window.Contains(normalized) {
		a.metrics.DuplicatesSuppressed.Inc()
		return rec
	}
	if !domain.Classify(normalized) {
		return rec
	}

	rec.Verdict = domain.VerdictSighting
	a.metrics.PositiveVerdicts.Inc()
	window.Record(normalized)
	a.countRegion(post, counter)

	return rec
}

// countRegion resolves the structured location and increments the bucket
// counter. Location anomalies are recovered locally and distinguished only in
// telemetry.
func (a *Aggregator) countRegion(post domain.Post, counter *domain.RegionCounter) {
	code, ok := domain.ResolveRegionCode(post.Location)
	if !ok {
		reason := observability.SkipReasonNonUSA
		if post.Location == "" || post.Location == "nan" {
			reason = observability.SkipReasonMissing
		}
		a.metrics.RegionSkips.WithLabelValues(reason).Inc()
		return
	}
	if !counter.Increment(code) {
		// Resolved but outside the known region set: not counted.
		a.logger.Debug("unknown region code, not counted", "row", post.Row, "code", string(code))
		a.metrics.RegionSkips.WithLabelValues(observability.SkipReasonUnknownCode).Inc()
		return
	}
	a.metrics.RegionIncrements.Inc()
}

// mergeBuckets combines all per-year counters into one bucket labeled by the
// year range. Merge order does not affect the result.
func (a *Aggregator) mergeBuckets(buckets map[string]*domain.RegionCounter) map[string]*domain.RegionCounter {
	label := a.opts.StartYear
	if a.opts.StartYear != a.opts.EndYear {
		label = a.opts.StartYear + " - " + a.opts.EndYear
	}

	merged := domain.NewRegionCounter(label)
	for _, counter := range buckets {
		merged.Merge(counter)
	}
	return map[string]*domain.RegionCounter{label: merged}
}

// present hands each bucket to the presenter in label order.
func (a *Aggregator) present(ctx context.Context, buckets map[string]*domain.RegionCounter) {
	labels := make([]string, 0, len(buckets))
	for label := range buckets {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	for _, label := range labels {
		if err := a.presenter.Present(ctx, buckets[label]); err != nil {
			a.logger.Error("present bucket failed", "label", label, "error", err)
		}
	}
}
