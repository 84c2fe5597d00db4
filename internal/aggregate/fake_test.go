package aggregate_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/programme-lv/exsubs/api"
	"github.com/programme-lv/exsubs/internal/exercism"
)

// fakeClient serves exercises and submissions from memory.
type fakeClient struct {
	tracks      map[string][]string
	submissions map[string][]bool // exercise slug -> out-of-date flags
	totalCount  map[string]int64  // overrides meta.total_count
	pageSize    int
	failPage    map[string]int // exercise slug -> page that fails

	calls []string
}

func (f *fakeClient) TrackExercises(_ context.Context, track string) ([]api.Exercise, error) {
	f.calls = append(f.calls, "track "+track)
	slugs, ok := f.tracks[track]
	if !ok {
		return nil, &exercism.NotFoundError{Resource: "track " + track}
	}
	res := make([]api.Exercise, 0, len(slugs))
	for _, s := range slugs {
		res = append(res, api.Exercise{Slug: s})
	}
	return res, nil
}

func (f *fakeClient) ExerciseSubmissions(_ context.Context, track, exercise string, page int) (*api.SubmissionPage, error) {
	f.calls = append(f.calls, fmt.Sprintf("%s/%s?page=%d", track, exercise, page))
	flags, ok := f.submissions[exercise]
	if !ok {
		return nil, &exercism.NotFoundError{Resource: "exercise " + track + "/" + exercise}
	}
	if p, ok := f.failPage[exercise]; ok && p == page {
		return nil, &exercism.TransportError{URL: exercise, Err: errors.New("connection reset")}
	}

	size := f.pageSize
	if size <= 0 {
		size = 20
	}
	totalPages := (len(flags) + size - 1) / size

	var results []api.Submission
	lo := (page - 1) * size
	for i := lo; i < lo+size && i < len(flags); i++ {
		results = append(results, api.Submission{UUID: fmt.Sprint(i), IsOutOfDate: flags[i]})
	}

	total := int64(len(flags))
	if t, ok := f.totalCount[exercise]; ok {
		total = t
	}
	return &api.SubmissionPage{
		Results: results,
		Meta:    api.PageMeta{CurrentPage: page, TotalCount: total, TotalPages: totalPages},
	}, nil
}

func flags(n int, outdatedEvery int) []bool {
	res := make([]bool, n)
	for i := range res {
		res[i] = outdatedEvery > 0 && i%outdatedEvery == 0
	}
	return res
}
