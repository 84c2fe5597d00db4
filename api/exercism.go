package api

// Exercise is one entry of a track's exercise listing.
type Exercise struct {
	Slug       string `json:"slug"`
	Type       string `json:"type"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Blurb      string `json:"blurb"`
}

type TrackExercises struct {
	Exercises []Exercise `json:"exercises"`
}

// Submission is a published community solution of an exercise.
type Submission struct {
	UUID        string `json:"uuid"`
	Snippet     string `json:"snippet"`
	NumLoc      int    `json:"num_loc"`
	PublishedAt string `json:"published_at"`

	// set when a newer version of the exercise exists
	IsOutOfDate bool `json:"is_out_of_date"`
}

type PageMeta struct {
	CurrentPage int   `json:"current_page"`
	TotalCount  int64 `json:"total_count"`
	TotalPages  int   `json:"total_pages"`
}

// SubmissionPage is a single page of an exercise's submission listing.
type SubmissionPage struct {
	Results []Submission `json:"results"`
	Meta    PageMeta     `json:"meta"`
}
