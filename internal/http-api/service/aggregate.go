package service

import "ratemyprompt/internal/http-api/models"

// RatingSummary is the scalar summary every view carries per prompt.
type RatingSummary struct {
	Average float64 `json:"average_rating"`
	Count   int64   `json:"total_ratings"`
}

// Aggregate computes the flat arithmetic mean and count of a rating set.
// Pure; it always operates on whatever snapshot of the collection the caller
// fetched. A zero count is the "no ratings" sentinel - the average is left at
// zero and presentation decides how to render it. No rounding happens here:
// display rounding is a DTO concern.
func Aggregate(ratings []models.Rating) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}

	var sum int
	for _, r := range ratings {
		sum += r.Score
	}

	return RatingSummary{
		Average: float64(sum) / float64(len(ratings)),
		Count:   int64(len(ratings)),
	}
}
