package engine

import (
	"errors"
	"fmt"
)

// NotFoundError reports that a player or team lookup resolved to nothing.
// Kind is "player", "team" or "week"; Query is the text that failed to
// resolve.
type NotFoundError struct {
	Kind   string
	Query  string
	Season int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no %s matching %q in season %d", e.Kind, e.Query, e.Season)
}

// IsNotFound reports whether err is a lookup miss.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}
