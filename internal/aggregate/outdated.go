package aggregate

import (
	"context"
	"iter"
)

// OutdatedFlags yields the out-of-date flag of every submission of an
// exercise. Pages are fetched lazily in ascending order; the page count is
// read from the first page's metadata. Stopping the iteration stops fetching.
// A fetch failure is yielded once as the final element.
func OutdatedFlags(ctx context.Context, client Client, track, exercise string) iter.Seq2[bool, error] {
	return func(yield func(bool, error) bool) {
		first, err := client.ExerciseSubmissions(ctx, track, exercise, 1)
		if err != nil {
			yield(false, err)
			return
		}

		for pageNum := 1; pageNum <= first.Meta.TotalPages; pageNum++ {
			page, err := client.ExerciseSubmissions(ctx, track, exercise, pageNum)
			if err != nil {
				yield(false, err)
				return
			}
			for _, subm := range page.Results {
				if !yield(subm.IsOutOfDate, nil) {
					return
				}
			}
		}
	}
}
