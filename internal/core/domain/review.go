package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Review is a rating left by one user about another.
type Review struct {
	ID       uuid.UUID
	Reviewer *User
	Reviewee *User
	Rating   int
	Comment  string
	Removed  bool
}

// NewReview builds a review. Ratings are bounded 1-5 and self-reviews are
// rejected; records loaded from persistence bypass this and are accepted
// as-is so historical data never blocks a load.
func NewReview(reviewer, reviewee *User, rating int, comment string) (*Review, error) {
	if reviewer == nil || reviewee == nil {
		return nil, fmt.Errorf("new review: %w", ErrNotFound)
	}
	if reviewer.ID == reviewee.ID {
		return nil, fmt.Errorf("new review: %w", ErrSelfReview)
	}
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("new review: rating %d outside 1-5", rating)
	}
	return &Review{
		Reviewer: reviewer,
		Reviewee: reviewee,
		Rating:   rating,
		Comment:  comment,
	}, nil
}
