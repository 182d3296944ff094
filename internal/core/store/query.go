package store

import (
	"iter"

	"github.com/google/uuid"

	"github.com/campushire/career-registry/internal/core/domain"
)

// Queries return lazy, restartable sequences: each range starts a fresh
// traversal in insertion order and shares no cursor state. All queries skip
// removed entities; only identifier lookups see history.

// OpenPostings yields non-removed postings with status Open.
func (s *Store) OpenPostings() iter.Seq[*domain.JobPosting] {
	return s.postingsWhere(func(p *domain.JobPosting) bool {
		return p.Status == domain.StatusOpen
	})
}

// PostingsByRequirement yields open postings whose requirement list contains
// keyword as an exact, case-sensitive member. This mirrors the legacy
// behavior: despite the UI calling it a keyword search, it never matched
// substrings or the title/description.
func (s *Store) PostingsByRequirement(keyword string) iter.Seq[*domain.JobPosting] {
	return s.postingsWhere(func(p *domain.JobPosting) bool {
		return p.Status == domain.StatusOpen && p.RequiresKeyword(keyword)
	})
}

// PostingsByEmployer yields non-removed postings owned by the employer.
func (s *Store) PostingsByEmployer(employerID uuid.UUID) iter.Seq[*domain.JobPosting] {
	return s.postingsWhere(func(p *domain.JobPosting) bool {
		return p.Employer != nil && p.Employer.ID == employerID
	})
}

// PostingsByApplicant yields non-removed postings the student applied to.
// The student's own removal does not affect the result: applications are
// history and survive the applicant's soft-delete.
func (s *Store) PostingsByApplicant(studentID uuid.UUID) iter.Seq[*domain.JobPosting] {
	return s.postingsWhere(func(p *domain.JobPosting) bool {
		return p.HasApplicant(studentID)
	})
}

// ReviewsByReviewee yields non-removed reviews written about the user.
func (s *Store) ReviewsByReviewee(userID uuid.UUID) iter.Seq[*domain.Review] {
	return s.reviewsWhere(func(r *domain.Review) bool {
		return r.Reviewee != nil && r.Reviewee.ID == userID
	})
}

// ReviewsByReviewer yields non-removed reviews written by the user.
func (s *Store) ReviewsByReviewer(userID uuid.UUID) iter.Seq[*domain.Review] {
	return s.reviewsWhere(func(r *domain.Review) bool {
		return r.Reviewer != nil && r.Reviewer.ID == userID
	})
}

// Users yields non-removed users of the given kinds, or of every kind when
// none are given.
func (s *Store) Users(kinds ...domain.UserKind) iter.Seq[*domain.User] {
	return func(yield func(*domain.User) bool) {
		for _, id := range s.userOrder {
			u := s.users[id]
			if u.Removed {
				continue
			}
			if len(kinds) > 0 && !kindIn(u.Kind, kinds) {
				continue
			}
			if !yield(u) {
				return
			}
		}
	}
}

func (s *Store) postingsWhere(keep func(*domain.JobPosting) bool) iter.Seq[*domain.JobPosting] {
	return func(yield func(*domain.JobPosting) bool) {
		for _, id := range s.postingOrder {
			p := s.postings[id]
			if p.Removed || !keep(p) {
				continue
			}
			if !yield(p) {
				return
			}
		}
	}
}

func (s *Store) reviewsWhere(keep func(*domain.Review) bool) iter.Seq[*domain.Review] {
	return func(yield func(*domain.Review) bool) {
		for _, id := range s.reviewOrder {
			r := s.reviews[id]
			if r.Removed || !keep(r) {
				continue
			}
			if !yield(r) {
				return
			}
		}
	}
}

func kindIn(k domain.UserKind, kinds []domain.UserKind) bool {
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}
