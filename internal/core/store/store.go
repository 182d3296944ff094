// Package store holds the in-memory entity store: an arena of users, job
// postings and reviews keyed by identifier, with username/email uniqueness
// indexes and soft-delete lifecycle. The store is the only place entities
// live once added; callers mutate through its accessors.
package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campushire/career-registry/internal/core/domain"
)

type Store struct {
	log zerolog.Logger

	users      map[uuid.UUID]*domain.User
	byUsername map[string]uuid.UUID
	byEmail    map[string]uuid.UUID
	userOrder  []uuid.UUID

	reviews     map[uuid.UUID]*domain.Review
	reviewOrder []uuid.UUID

	postings     map[uuid.UUID]*domain.JobPosting
	postingOrder []uuid.UUID
}

func New(log zerolog.Logger) *Store {
	return &Store{
		log:        log,
		users:      make(map[uuid.UUID]*domain.User),
		byUsername: make(map[string]uuid.UUID),
		byEmail:    make(map[string]uuid.UUID),
		reviews:    make(map[uuid.UUID]*domain.Review),
		postings:   make(map[uuid.UUID]*domain.JobPosting),
	}
}

// Stats summarises store contents, removed entities included.
type Stats struct {
	Students   int
	Employers  int
	Professors int
	Admins     int
	Reviews    int
	Postings   int
}

func (s *Store) Stats() Stats {
	st := Stats{Reviews: len(s.reviews), Postings: len(s.postings)}
	for _, u := range s.users {
		switch u.Kind {
		case domain.KindStudent:
			st.Students++
		case domain.KindEmployer:
			st.Employers++
		case domain.KindProfessor:
			st.Professors++
		case domain.KindAdmin:
			st.Admins++
		}
	}
	return st
}

// AddUser inserts a user, assigning a fresh identifier when none is set.
// Username and email must be unique across all users, removed ones included;
// a removed user's username or email is never resurrected for a new account.
func (s *Store) AddUser(u *domain.User) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if _, ok := s.users[u.ID]; ok {
		return fmt.Errorf("add user %q: identifier %s already in use", u.Username, u.ID)
	}
	if _, ok := s.byUsername[u.Username]; ok {
		return fmt.Errorf("add user %q: %w", u.Username, domain.ErrDuplicateUsername)
	}
	if _, ok := s.byEmail[u.Email]; ok {
		return fmt.Errorf("add user %q: %w", u.Username, domain.ErrDuplicateEmail)
	}
	s.users[u.ID] = u
	s.byUsername[u.Username] = u.ID
	s.byEmail[u.Email] = u.ID
	s.userOrder = append(s.userOrder, u.ID)
	return nil
}

// AddReview inserts a review. Reviewer and reviewee must already be present
// in the store (removed users count as present: history references them).
// The reviewee's average rating is recomputed.
func (s *Store) AddReview(r *domain.Review) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if _, ok := s.reviews[r.ID]; ok {
		return fmt.Errorf("add review: identifier %s already in use", r.ID)
	}
	if r.Reviewer == nil || !s.present(r.Reviewer.ID) {
		return &domain.DanglingReferenceError{Referencing: "review " + r.ID.String(), TargetKind: "reviewer", RawID: rawID(r.Reviewer)}
	}
	if r.Reviewee == nil || !s.present(r.Reviewee.ID) {
		return &domain.DanglingReferenceError{Referencing: "review " + r.ID.String(), TargetKind: "reviewee", RawID: rawID(r.Reviewee)}
	}
	s.insertReview(r)
	return nil
}

// AddJobPosting inserts a posting. The employer must be present and not
// removed; every applicant must be a student already present in the store,
// each at most once.
func (s *Store) AddJobPosting(p *domain.JobPosting) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if _, ok := s.postings[p.ID]; ok {
		return fmt.Errorf("add posting: identifier %s already in use", p.ID)
	}
	if p.Employer == nil || !s.present(p.Employer.ID) {
		return &domain.DanglingReferenceError{Referencing: "posting " + p.ID.String(), TargetKind: "employer", RawID: rawID(p.Employer)}
	}
	if p.Employer.Removed {
		return fmt.Errorf("add posting %q: %w", p.Title, domain.ErrRemovedEmployer)
	}
	seen := make(map[uuid.UUID]bool, len(p.Applicants))
	for _, a := range p.Applicants {
		if a == nil || !s.present(a.ID) {
			return &domain.DanglingReferenceError{Referencing: "posting " + p.ID.String(), TargetKind: "applicant", RawID: rawID(a)}
		}
		if a.Kind != domain.KindStudent {
			return fmt.Errorf("add posting %q: applicant %s: %w", p.Title, a.ID, domain.ErrNotStudent)
		}
		if seen[a.ID] {
			return fmt.Errorf("add posting %q: applicant %s: %w", p.Title, a.ID, domain.ErrDuplicateApplicant)
		}
		seen[a.ID] = true
	}
	s.insertPosting(p)
	return nil
}

// AddApplicant records a student's application to a posting. Applying twice
// is a typed failure rather than the silent no-op the legacy UI relied on.
func (s *Store) AddApplicant(postingID, studentID uuid.UUID) error {
	p, ok := s.postings[postingID]
	if !ok {
		return fmt.Errorf("apply to posting %s: %w", postingID, domain.ErrNotFound)
	}
	u, ok := s.users[studentID]
	if !ok {
		return fmt.Errorf("apply to posting %s: student %s: %w", postingID, studentID, domain.ErrNotFound)
	}
	if u.Kind != domain.KindStudent {
		return fmt.Errorf("apply to posting %s: user %s: %w", postingID, studentID, domain.ErrNotStudent)
	}
	if u.Removed {
		return fmt.Errorf("apply to posting %s: student %s: %w", postingID, studentID, domain.ErrNotFound)
	}
	if p.HasApplicant(studentID) {
		return fmt.Errorf("apply to posting %s: %w", postingID, domain.ErrDuplicateApplicant)
	}
	p.Applicants = append(p.Applicants, u)
	return nil
}

// RemoveUser soft-deletes a user. Removing an already-removed user is a
// no-op; the slot is never erased, so historical references keep resolving.
func (s *Store) RemoveUser(id uuid.UUID) error {
	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("remove user %s: %w", id, domain.ErrNotFound)
	}
	u.Removed = true
	return nil
}

func (s *Store) RemoveJobPosting(id uuid.UUID) error {
	p, ok := s.postings[id]
	if !ok {
		return fmt.Errorf("remove posting %s: %w", id, domain.ErrNotFound)
	}
	p.Removed = true
	return nil
}

// RemoveReview soft-deletes a review and recomputes the reviewee's rating,
// which is derived from non-removed reviews only.
func (s *Store) RemoveReview(id uuid.UUID) error {
	r, ok := s.reviews[id]
	if !ok {
		return fmt.Errorf("remove review %s: %w", id, domain.ErrNotFound)
	}
	r.Removed = true
	s.recomputeRating(r.Reviewee)
	return nil
}

// ApproveUser flips the approval flag. Admin and professor accounts start
// unapproved and cannot act until approved.
func (s *Store) ApproveUser(id uuid.UUID) error {
	u, ok := s.users[id]
	if !ok {
		return fmt.Errorf("approve user %s: %w", id, domain.ErrNotFound)
	}
	u.Approved = true
	return nil
}

// SetPostingStatus updates a posting's lifecycle status.
func (s *Store) SetPostingStatus(id uuid.UUID, status domain.PostingStatus) error {
	p, ok := s.postings[id]
	if !ok {
		return fmt.Errorf("set posting status %s: %w", id, domain.ErrNotFound)
	}
	p.Status = status
	return nil
}

// UserByID resolves an identifier, removed users included.
func (s *Store) UserByID(id uuid.UUID) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, domain.ErrNotFound)
	}
	return u, nil
}

// UserByUsername looks a user up through the username index, removed users
// included. Callers that only want active accounts check Removed themselves.
func (s *Store) UserByUsername(username string) (*domain.User, error) {
	id, ok := s.byUsername[username]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
	}
	return s.users[id], nil
}

func (s *Store) UserByEmail(email string) (*domain.User, error) {
	id, ok := s.byEmail[email]
	if !ok {
		return nil, fmt.Errorf("user %q: %w", email, domain.ErrNotFound)
	}
	return s.users[id], nil
}

func (s *Store) PostingByID(id uuid.UUID) (*domain.JobPosting, error) {
	p, ok := s.postings[id]
	if !ok {
		return nil, fmt.Errorf("posting %s: %w", id, domain.ErrNotFound)
	}
	return p, nil
}

func (s *Store) ReviewByID(id uuid.UUID) (*domain.Review, error) {
	r, ok := s.reviews[id]
	if !ok {
		return nil, fmt.Errorf("review %s: %w", id, domain.ErrNotFound)
	}
	return r, nil
}

func (s *Store) present(id uuid.UUID) bool {
	_, ok := s.users[id]
	return ok
}

func (s *Store) insertReview(r *domain.Review) {
	s.reviews[r.ID] = r
	s.reviewOrder = append(s.reviewOrder, r.ID)
	s.recomputeRating(r.Reviewee)
}

func (s *Store) insertPosting(p *domain.JobPosting) {
	s.postings[p.ID] = p
	s.postingOrder = append(s.postingOrder, p.ID)
}

// recomputeRating refreshes the denormalized average rating from non-removed
// reviews. Professors and admins carry no rating field and are skipped.
func (s *Store) recomputeRating(u *domain.User) {
	if u == nil {
		return
	}
	var sum, n int
	for _, r := range s.reviews {
		if r.Removed || r.Reviewee == nil || r.Reviewee.ID != u.ID {
			continue
		}
		sum += r.Rating
		n++
	}
	var avg float64
	if n > 0 {
		avg = float64(sum) / float64(n)
	}
	switch {
	case u.Student != nil:
		u.Student.AverageRating = avg
	case u.Employer != nil:
		u.Employer.AverageRating = avg
	}
}

func rawID(u *domain.User) string {
	if u == nil {
		return ""
	}
	return u.ID.String()
}
