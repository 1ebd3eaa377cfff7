package partition

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/nao1215/parasort/internal/input"
	"github.com/nao1215/parasort/internal/model"
	"github.com/nao1215/parasort/internal/param"
	"github.com/nao1215/parasort/internal/stats"
	"github.com/nao1215/parasort/internal/urlparse"
)

// ErrAlreadyStarted is returned when Run is called a second time.
// A Partitioner handles exactly one run.
var ErrAlreadyStarted = errors.New("partitioner already started")

// State is the lifecycle state of a Partitioner.
type State int

const (
	// StateNotStarted means no URL has been consumed yet.
	StateNotStarted State = iota

	// StateProcessing means the run is in progress, or it failed.
	StateProcessing

	// StateFinalized means every URL was written and every file closed.
	StateFinalized
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not started"
	case StateProcessing:
		return "processing"
	case StateFinalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Progress receives one tick per written URL.
// *progressbar.ProgressBar satisfies it.
type Progress interface {
	Add(n int) error
}

// Result is the outcome of a finalized run.
type Result struct {
	// Summary holds the statistics of the run.
	Summary *model.RunSummary

	// Parameters holds the extracted parameter names.
	// It is nil unless extraction was enabled.
	Parameters *model.ParameterIndex

	// Files lists the category files that were written, per domain in
	// processing order.
	Files []string
}

// Partitioner writes URLs into per-domain, per-category files.
// It is not safe for concurrent use and handles a single run.
type Partitioner struct {
	outputDir string
	matcher   *param.Matcher

	clearValues   bool
	extractParams bool
	groupByRoot   bool

	logger   *slog.Logger
	progress Progress
	onDomain func(domain string, urls int)

	state State
}

// Option is a function that configures a Partitioner.
type Option func(*Partitioner)

// WithClearValues empties every query value before a URL is written.
func WithClearValues(clear bool) Option {
	return func(p *Partitioner) {
		p.clearValues = clear
	}
}

// WithExtractParams collects every parameter name per domain into
// Result.Parameters.
func WithExtractParams(extract bool) Option {
	return func(p *Partitioner) {
		p.extractParams = extract
	}
}

// WithRootDomainGrouping groups URLs by registrable domain instead of
// full host name.
func WithRootDomainGrouping(group bool) Option {
	return func(p *Partitioner) {
		p.groupByRoot = group
	}
}

// WithLogger sets a custom logger for the partitioner.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Partitioner) {
		p.logger = logger
	}
}

// WithProgress reports every written URL to progress.
func WithProgress(progress Progress) Option {
	return func(p *Partitioner) {
		p.progress = progress
	}
}

// WithDomainHook calls fn before the URLs of a domain are written.
func WithDomainHook(fn func(domain string, urls int)) Option {
	return func(p *Partitioner) {
		p.onDomain = fn
	}
}

// New creates a Partitioner that writes below outputDir and categorizes
// with matcher.
func New(outputDir string, matcher *param.Matcher, opts ...Option) *Partitioner {
	p := &Partitioner{
		outputDir: outputDir,
		matcher:   matcher,
		state:     StateNotStarted,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// State returns the current lifecycle state.
func (p *Partitioner) State() State {
	return p.state
}

// entry is one input line with the parameter names parsed from it.
type entry struct {
	raw   string
	names []string
}

// domainGroup holds the URLs of one domain in input order.
type domainGroup struct {
	domain  string
	entries []entry
}

// Run partitions urls and returns the run statistics.
// It returns input.ErrNoURLs, and creates no output, when urls is empty.
//
// A filesystem error aborts the run. Files already written stay on disk,
// and the files of the domain being written are closed before Run returns.
// Cancellation of ctx is checked between URLs and returns ctx.Err() with
// the same cleanup.
func (p *Partitioner) Run(ctx context.Context, urls []string) (*Result, error) {
	if p.state != StateNotStarted {
		return nil, ErrAlreadyStarted
	}
	if len(urls) == 0 {
		return nil, input.ErrNoURLs
	}
	p.state = StateProcessing
	startedAt := time.Now()

	if err := os.MkdirAll(p.outputDir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", p.outputDir, err)
	}

	var extractor *stats.Extractor
	if p.extractParams {
		extractor = stats.NewExtractor()
	}

	groups, err := p.group(ctx, urls, extractor)
	if err != nil {
		return nil, err
	}

	aggregator := stats.NewAggregator()
	result := &Result{}
	for _, g := range groups {
		files, err := p.writeDomain(ctx, g, aggregator)
		result.Files = append(result.Files, files...)
		if err != nil {
			return nil, err
		}
	}

	result.Summary = aggregator.Summary()
	result.Summary.OutputDir = p.outputDir
	result.Summary.StartedAt = startedAt
	result.Summary.FinishedAt = time.Now()
	if extractor != nil {
		result.Parameters = extractor.Index()
	}

	p.state = StateFinalized
	p.logger.Debug("partition finalized",
		"urls", result.Summary.TotalURLs,
		"domains", result.Summary.DomainCount(),
		"files", len(result.Files),
	)
	return result, nil
}

// group parses every URL once and assigns it to its domain bucket, keeping
// the order in which domains first appear. Extraction observes the
// original URLs here.
func (p *Partitioner) group(ctx context.Context, urls []string, extractor *stats.Extractor) ([]domainGroup, error) {
	index := make(map[string]int)
	var groups []domainGroup

	for _, raw := range urls {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		parsed := urlparse.Parse(raw)
		domain := p.domainOf(raw, parsed)
		i, ok := index[domain]
		if !ok {
			i = len(groups)
			index[domain] = i
			groups = append(groups, domainGroup{domain: domain})
		}
		e := entry{raw: raw, names: parsed.Names()}
		groups[i].entries = append(groups[i].entries, e)

		if extractor != nil {
			extractor.Observe(domain, e.names)
		}
	}
	return groups, nil
}

// domainOf returns the bucket name of a parsed URL.
func (p *Partitioner) domainOf(raw string, parsed urlparse.ParsedURL) string {
	domain := parsed.Domain
	if domain == urlparse.UnknownDomain {
		p.logger.Debug("no usable host, routing to fallback bucket",
			"url", raw,
			"domain", domain,
		)
		return domain
	}
	if p.groupByRoot {
		return urlparse.RootDomain(domain)
	}
	return domain
}

// writeDomain writes all URLs of one domain and closes its files.
// It returns the created file paths even when it fails.
func (p *Partitioner) writeDomain(ctx context.Context, g domainGroup, aggregator *stats.Aggregator) (files []string, err error) {
	if p.onDomain != nil {
		p.onDomain(g.domain, len(g.entries))
	}

	b, err := newBucket(p.outputDir, g.domain)
	if err != nil {
		return nil, err
	}
	defer func() {
		files = b.paths()
		if closeErr := b.close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	for _, e := range g.entries {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("partition cancelled",
				"domain", g.domain,
				"reason", err,
			)
			return nil, err
		}

		// Clearing values keeps every key, so the parsed names still apply.
		line := e.raw
		if p.clearValues {
			line = urlparse.ClearValues(e.raw)
		}

		c := p.matcher.Categorize(line, e.names)
		if err := b.write(c); err != nil {
			return nil, err
		}
		aggregator.Record(g.domain, c)

		if p.progress != nil {
			// A failing progress display never stops the run.
			_ = p.progress.Add(1)
		}
	}

	p.logger.Debug("domain written",
		"domain", g.domain,
		"urls", len(g.entries),
		"files", len(b.order),
	)
	return nil, nil
}
