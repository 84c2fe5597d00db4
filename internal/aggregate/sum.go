package aggregate

import "github.com/programme-lv/exsubs/api"

type summable struct {
	value  func(*api.ExerciseRecord) *int64
	assign func(*api.Sums, *int64)
}

var summableFields = []summable{
	{
		value:  func(r *api.ExerciseRecord) *int64 { return r.TotalSubmissions },
		assign: func(s *api.Sums, v *int64) { s.TotalSubmissions = v },
	},
	{
		value:  func(r *api.ExerciseRecord) *int64 { return r.TotalOutdated },
		assign: func(s *api.Sums, v *int64) { s.TotalOutdated = v },
	},
	{
		value:  func(r *api.ExerciseRecord) *int64 { return r.Delta },
		assign: func(s *api.Sums, v *int64) { s.Delta = v },
	},
}

// Sum totals each count over the records that have it set. A count unset on
// every record stays unset in the result.
func Sum(records []api.ExerciseRecord) *api.Sums {
	sums := &api.Sums{}
	for _, f := range summableFields {
		var total *int64
		for i := range records {
			v := f.value(&records[i])
			if v == nil {
				continue
			}
			if total == nil {
				total = new(int64)
			}
			*total += *v
		}
		f.assign(sums, total)
	}
	return sums
}
