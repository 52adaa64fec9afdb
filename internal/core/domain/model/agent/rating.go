package agent

import (
	"dispatch/internal/pkg/errs"
)

const (
	// minRating is the lowest score a customer can give.
	minRating = 1
	// maxRating is the highest score a customer can give.
	maxRating = 5
)

// Rating is the running average of customer scores for an agent together
// with the number of scores received. A fresh agent starts at (0, 0).
//
// Rating is immutable: AddRating returns a new value instead of mutating
// the receiver.
type Rating struct {
	average float64
	count   int
}

// NewRating creates the initial rating for an agent who has not been
// rated yet.
func NewRating() Rating {
	return Rating{}
}

// RestoreRating reconstructs a Rating from persistent storage.
// Fails if count is negative, or if average falls outside [1, 5] while
// scores exist.
func RestoreRating(average float64, count int) (Rating, error) {
	if count < 0 {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating count", count, 0, "unbounded")
	}
	if count == 0 {
		if average != 0 {
			return Rating{}, errs.NewValueIsInvalidError("rating average must be 0 when count is 0")
		}
		return Rating{}, nil
	}
	if average < minRating || average > maxRating {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating average", average, minRating, maxRating)
	}
	return Rating{average: average, count: count}, nil
}

// Average returns the mean of all scores received, or 0 when unrated.
func (r Rating) Average() float64 {
	return r.average
}

// Count returns the number of scores received.
func (r Rating) Count() int {
	return r.count
}

// AddRating folds a new score into the running mean and returns the
// updated rating. Fails if the score falls outside [1, 5].
func (r Rating) AddRating(score int) (Rating, error) {
	if score < minRating || score > maxRating {
		return Rating{}, errs.NewValueIsOutOfRangeError("rating", score, minRating, maxRating)
	}

	newCount := r.count + 1
	newAverage := (r.average*float64(r.count) + float64(score)) / float64(newCount)
	return Rating{average: newAverage, count: newCount}, nil
}

// IsEqual compares two ratings by average and count.
func (r Rating) IsEqual(other Rating) bool {
	return r.average == other.average && r.count == other.count
}
