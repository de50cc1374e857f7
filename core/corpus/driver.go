package corpus

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gaurav-prasanna/wikichunk/core"
	"github.com/gaurav-prasanna/wikichunk/core/coverage"
	"github.com/gaurav-prasanna/wikichunk/core/dom"
	"github.com/gaurav-prasanna/wikichunk/core/logging"
	"github.com/gaurav-prasanna/wikichunk/core/metrics"
	"github.com/gaurav-prasanna/wikichunk/core/pipeline"
)

// Processor turns one file into chunks and events. *pipeline.Coordinator
// satisfies it.
type Processor interface {
	ProcessFile(path string) (pipeline.Result, error)
}

// Options configures a Driver.
type Options struct {
	Root    string
	Include []string
	// Workers bounds parallelism; zero or less means one per CPU.
	Workers int
	Logger  *logging.Logger
	// Metrics is optional.
	Metrics *metrics.Metrics
}

// Failure is a document that could not be processed.
type Failure struct {
	Path string
	Err  error
}

// Summary is the outcome of a corpus run.
type Summary struct {
	RunID     string
	Documents int
	Skipped   int
	Failures  []Failure
	// Chunks is ordered by document path, then by extractor and document
	// order within each page.
	Chunks   []core.Chunk
	Coverage *coverage.Report
	Elapsed  time.Duration
}

// Driver runs a Processor over every document of a corpus.
type Driver struct {
	proc Processor
	opts Options
	log  *logging.Logger
}

// New creates a Driver.
func New(proc Processor, opts Options) *Driver {
	if opts.Workers <= 0 {
		opts.Workers = runtime.NumCPU()
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Driver{proc: proc, opts: opts, log: log.Named("corpus")}
}

// docResult is what one worker produces for one document.
type docResult struct {
	chunks   []core.Chunk
	coverage *coverage.Accumulator
}

// Run processes every discovered document. A document that fails is
// logged, counted in Summary.Failures and left out of the output; only
// discovery errors and cancellation fail the run.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	runID := uuid.NewString()
	log := d.log.With(zap.String("run_id", runID))

	paths, err := Discover(ctx, d.opts.Root, d.opts.Include)
	if err != nil {
		return nil, err
	}
	log.Info("corpus discovered",
		zap.String("root", d.opts.Root),
		zap.Int("documents", len(paths)),
		zap.Int("workers", d.opts.Workers))

	var (
		results  = make([]docResult, len(paths))
		mu       sync.Mutex
		failures []Failure
		skipped  int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(d.opts.Workers)
	for i, path := range paths {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			docStart := time.Now()
			res, err := d.proc.ProcessFile(path)
			took := time.Since(docStart)

			if err != nil {
				status := metrics.StatusFailed
				if errors.Is(err, dom.ErrNotText) {
					status = metrics.StatusSkipped
					log.Warn("skipping non-text document", zap.String("path", path))
				} else {
					log.Error("document failed",
						zap.String("page", dom.PageTitle(path)),
						zap.String("path", path),
						zap.Error(err))
				}
				d.record(status, took, nil)

				mu.Lock()
				if status == metrics.StatusSkipped {
					skipped++
				} else {
					failures = append(failures, Failure{Path: path, Err: err})
				}
				mu.Unlock()
				return nil
			}

			acc := coverage.New()
			acc.Record(res.Events...)
			results[i] = docResult{chunks: res.Chunks, coverage: acc}
			d.record(metrics.StatusOK, took, &res)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("processing corpus: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("processing corpus: %w", err)
	}

	total := coverage.New()
	sum := &Summary{RunID: runID, Documents: len(paths), Skipped: skipped}
	for _, r := range results {
		sum.Chunks = append(sum.Chunks, r.chunks...)
		total.Merge(r.coverage)
	}
	sortFailures(failures)
	sum.Failures = failures
	sum.Coverage = total.Finalize()
	sum.Elapsed = time.Since(start)

	log.Info("corpus processed",
		zap.Int("documents", sum.Documents),
		zap.Int("chunks", len(sum.Chunks)),
		zap.Int("failed", len(sum.Failures)),
		zap.Int("skipped", sum.Skipped),
		zap.Int("unhandled", sum.Coverage.Total()),
		zap.Int("unhandled_pages", total.Pages()),
		zap.Duration("elapsed", sum.Elapsed))
	return sum, nil
}

func (d *Driver) record(status string, took time.Duration, res *pipeline.Result) {
	m := d.opts.Metrics
	if m == nil {
		return
	}
	m.RecordDocument(status, took)
	if res == nil {
		return
	}
	for _, c := range res.Chunks {
		m.RecordChunk(c.Metadata.SectionTitle)
	}
	for _, e := range res.Events {
		m.RecordUnhandled(e.Kind.String())
	}
}

func sortFailures(f []Failure) {
	sort.Slice(f, func(i, j int) bool { return f[i].Path < f[j].Path })
}
