package leave

import (
	"errors"
	"time"
)

// CalculateDays returns the inclusive day count between start and end.
// The range must be strictly ordered: a request starting and ending on
// the same day is rejected upstream before this runs.
func CalculateDays(start, end time.Time) (int, error) {
	if !start.Before(end) {
		return 0, errors.New("start date must precede end date")
	}
	return int(end.Sub(start).Hours()/24) + 1, nil
}
