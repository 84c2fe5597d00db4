package api

import (
	"encoding/json"
	"fmt"
)

// ExerciseRecord holds the counts gathered for one exercise.
// A nil count means the stage producing it did not run.
type ExerciseRecord struct {
	Slug             string `json:"slug"`
	TotalSubmissions *int64 `json:"total_submissions,omitempty"`
	TotalOutdated    *int64 `json:"total_outdated,omitempty"`
	Delta            *int64 `json:"delta,omitempty"`
}

// Sums totals every count over all records that have it set.
type Sums struct {
	TotalSubmissions *int64 `json:"total_submissions,omitempty"`
	TotalOutdated    *int64 `json:"total_outdated,omitempty"`
	Delta            *int64 `json:"delta,omitempty"`
}

// Report is serialized as a JSON array of exercise records, optionally
// followed by one sums object.
type Report struct {
	Exercises []ExerciseRecord
	Sums      *Sums
}

func (r Report) MarshalJSON() ([]byte, error) {
	elems := make([]any, 0, len(r.Exercises)+1)
	for _, rec := range r.Exercises {
		elems = append(elems, rec)
	}
	if r.Sums != nil {
		elems = append(elems, r.Sums)
	}
	return json.Marshal(elems)
}

func (r *Report) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("report is not a JSON array: %w", err)
	}

	exercises := make([]ExerciseRecord, 0, len(raw))
	var sums *Sums
	for i, elem := range raw {
		var keys map[string]json.RawMessage
		if err := json.Unmarshal(elem, &keys); err != nil {
			return fmt.Errorf("report element %d is not an object: %w", i, err)
		}

		if _, hasSlug := keys["slug"]; !hasSlug {
			if i != len(raw)-1 {
				return fmt.Errorf("report element %d has no slug but is not the last element", i)
			}
			sums = &Sums{}
			if err := json.Unmarshal(elem, sums); err != nil {
				return fmt.Errorf("failed to parse sums: %w", err)
			}
			continue
		}

		var rec ExerciseRecord
		if err := json.Unmarshal(elem, &rec); err != nil {
			return fmt.Errorf("failed to parse report element %d: %w", i, err)
		}
		exercises = append(exercises, rec)
	}

	r.Exercises = exercises
	r.Sums = sums
	return nil
}
