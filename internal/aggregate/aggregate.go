// Package aggregate resolves the exercises of a track and tallies their
// current and outdated submission counts.
//
// All remote reads happen sequentially on the calling goroutine. The first
// failed read aborts the whole run and no partial report is returned.
package aggregate

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/programme-lv/exsubs/api"
	"github.com/programme-lv/exsubs/internal/progress"
)

// Client is the subset of the exercism API the aggregator reads from.
type Client interface {
	TrackExercises(ctx context.Context, track string) ([]api.Exercise, error)
	ExerciseSubmissions(ctx context.Context, track, exercise string, page int) (*api.SubmissionPage, error)
}

type Aggregator struct {
	client    Client
	separator string
	progress  io.Writer
	logger    *slog.Logger
}

type Option func(*Aggregator)

// WithSeparator sets the character separating slugs in selectors and skip lists.
func WithSeparator(sep string) Option {
	return func(a *Aggregator) { a.separator = sep }
}

// WithProgress enables progress bars drawn on w.
func WithProgress(w io.Writer) Option {
	return func(a *Aggregator) { a.progress = w }
}

func WithLogger(logger *slog.Logger) Option {
	return func(a *Aggregator) { a.logger = logger }
}

func New(client Client, opts ...Option) *Aggregator {
	a := &Aggregator{
		client:    client,
		separator: DefaultSeparator,
		logger:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type Request struct {
	Track     string
	Exercises string // Wildcard or separator-joined slugs
	Skip      string // separator-joined slugs, empty for none

	Current  bool
	Outdated bool
	Sum      bool
}

// BuildReport runs the whole pipeline. Total submissions are always
// collected; outdated counts, deltas and sums only when requested.
func (a *Aggregator) BuildReport(ctx context.Context, req Request) (*api.Report, error) {
	slugs, err := a.ResolveExercises(ctx, req.Track, req.Exercises, req.Skip)
	if err != nil {
		return nil, err
	}
	a.logger.Info("resolved exercises", "track", req.Track, "count", len(slugs))

	records := make([]api.ExerciseRecord, len(slugs))
	for i, slug := range slugs {
		records[i].Slug = slug
	}

	if err := a.countSubmissions(ctx, req.Track, records); err != nil {
		return nil, err
	}

	if req.Outdated {
		for i := range records {
			outdated, err := a.countOutdated(ctx, req.Track, &records[i])
			if err != nil {
				return nil, err
			}
			records[i].TotalOutdated = &outdated
		}
	}

	if req.Current && req.Outdated {
		for i := range records {
			delta := *records[i].TotalSubmissions - *records[i].TotalOutdated
			records[i].Delta = &delta
		}
	}

	rep := &api.Report{Exercises: records}
	if req.Sum {
		rep.Sums = Sum(records)
	}
	return rep, nil
}

func (a *Aggregator) countSubmissions(ctx context.Context, track string, records []api.ExerciseRecord) error {
	bar := a.newBar(fmt.Sprintf("%s: counting current submissions", track), int64(len(records)))
	defer bar.Finish()

	for i := range records {
		page, err := a.client.ExerciseSubmissions(ctx, track, records[i].Slug, 1)
		if err != nil {
			return err
		}
		total := page.Meta.TotalCount
		records[i].TotalSubmissions = &total
		bar.Add(1)
	}
	return nil
}

func (a *Aggregator) countOutdated(ctx context.Context, track string, rec *api.ExerciseRecord) (int64, error) {
	a.logger.Debug("scanning submissions", "track", track, "exercise", rec.Slug)
	bar := a.newBar(fmt.Sprintf("%s: scanning for outdated submissions", rec.Slug), *rec.TotalSubmissions)
	defer bar.Finish()

	var outdated int64
	for isOutdated, err := range OutdatedFlags(ctx, a.client, track, rec.Slug) {
		if err != nil {
			return 0, err
		}
		if isOutdated {
			outdated++
		}
		bar.Add(1)
	}
	return outdated, nil
}

func (a *Aggregator) newBar(description string, total int64) *progress.Bar {
	if a.progress == nil {
		return nil
	}
	return progress.New(a.progress, description, total)
}
