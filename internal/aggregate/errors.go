package aggregate

import (
	"fmt"
	"strings"
)

// UnknownSkipSlugError is returned when a skipped exercise is not among
// the resolved exercises.
type UnknownSkipSlugError struct {
	Slug     string
	Resolved []string
}

func (e *UnknownSkipSlugError) Error() string {
	return fmt.Sprintf("cannot skip exercise %q: not among resolved exercises [%s]",
		e.Slug, strings.Join(e.Resolved, ", "))
}
