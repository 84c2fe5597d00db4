package aggregate_test

import (
	"context"
	"testing"

	"github.com/programme-lv/exsubs/internal/aggregate"
	"github.com/programme-lv/exsubs/internal/exercism"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutdatedFlagsYieldsEverySubmission(t *testing.T) {
	client := &fakeClient{submissions: map[string][]bool{"leap": flags(25, 5)}, pageSize: 10}

	var got []bool
	for flag, err := range aggregate.OutdatedFlags(context.Background(), client, "python", "leap") {
		require.NoError(t, err)
		got = append(got, flag)
	}
	assert.Equal(t, flags(25, 5), got)
}

func TestOutdatedFlagsStopsFetchingOnBreak(t *testing.T) {
	client := &fakeClient{submissions: map[string][]bool{"leap": flags(100, 0)}, pageSize: 10}

	seen := 0
	for _, err := range aggregate.OutdatedFlags(context.Background(), client, "python", "leap") {
		require.NoError(t, err)
		seen++
		if seen == 15 {
			break
		}
	}
	assert.Equal(t, []string{"python/leap?page=1", "python/leap?page=1", "python/leap?page=2"}, client.calls)
}

func TestOutdatedFlagsEmptyExercise(t *testing.T) {
	client := &fakeClient{submissions: map[string][]bool{"leap": nil}}

	n := 0
	for _, err := range aggregate.OutdatedFlags(context.Background(), client, "python", "leap") {
		require.NoError(t, err)
		n++
	}
	assert.Zero(t, n)
	assert.Equal(t, []string{"python/leap?page=1"}, client.calls)
}

func TestOutdatedFlagsYieldsErrorOnce(t *testing.T) {
	client := &fakeClient{submissions: map[string][]bool{}}

	errs := 0
	for _, err := range aggregate.OutdatedFlags(context.Background(), client, "python", "leap") {
		var notFound *exercism.NotFoundError
		require.ErrorAs(t, err, &notFound)
		errs++
	}
	assert.Equal(t, 1, errs)
}
