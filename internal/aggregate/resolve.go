package aggregate

import (
	"context"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// Wildcard selects every exercise of the track.
const Wildcard = "*"

const DefaultSeparator = ","

// ResolveExercises turns the exercise selector into an ordered slug list and
// removes the skipped slugs from it.
func (a *Aggregator) ResolveExercises(ctx context.Context, track, selector, skip string) ([]string, error) {
	var slugs []string
	if selector == Wildcard {
		exercises, err := a.client.TrackExercises(ctx, track)
		if err != nil {
			return nil, err
		}
		slugs = make([]string, 0, len(exercises))
		for _, ex := range exercises {
			slugs = append(slugs, ex.Slug)
		}
	} else {
		slugs = SplitSlugs(selector, a.separator)
		a.warnDuplicates(slugs)
	}

	var skipped []string
	if skip != "" {
		skipped = SplitSlugs(skip, a.separator)
	}
	return RemoveSkipped(slugs, skipped)
}

// SplitSlugs splits s on sep and lowercases each entry. Empty entries are kept.
func SplitSlugs(s, sep string) []string {
	slugs := strings.Split(s, sep)
	for i, slug := range slugs {
		slugs[i] = strings.ToLower(slug)
	}
	return slugs
}

// RemoveSkipped removes the first occurrence of every skip entry from slugs,
// keeping the relative order of the rest. slugs is not modified.
func RemoveSkipped(slugs, skip []string) ([]string, error) {
	res := slices.Clone(slugs)
	for _, s := range skip {
		i := slices.Index(res, s)
		if i < 0 {
			return nil, &UnknownSkipSlugError{Slug: s, Resolved: res}
		}
		res = slices.Delete(res, i, i+1)
	}
	return res, nil
}

func (a *Aggregator) warnDuplicates(slugs []string) {
	seen := mapset.NewThreadUnsafeSet[string]()
	for _, s := range slugs {
		if !seen.Add(s) {
			a.logger.Warn("exercise selected more than once", "exercise", s)
		}
	}
}
