package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PostingStatus is the lifecycle state of a job posting.
type PostingStatus string

const (
	StatusOpen          PostingStatus = "Open"
	StatusPending       PostingStatus = "Pending"
	StatusClosed        PostingStatus = "Closed"
	StatusNotApplicable PostingStatus = "NA"
)

// ParsePostingStatus matches case-insensitively and falls back to
// StatusNotApplicable for anything unrecognised, including the empty string.
func ParsePostingStatus(s string) PostingStatus {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "open":
		return StatusOpen
	case "pending":
		return StatusPending
	case "closed":
		return StatusClosed
	default:
		return StatusNotApplicable
	}
}

// JobPosting is a position offered by an employer. Applicants holds live
// student references in application order, each at most once.
type JobPosting struct {
	ID           uuid.UUID
	Employer     *User
	Title        string
	Description  string
	Requirements []string
	HourlyWage   float64
	Status       PostingStatus
	Applicants   []*User
	Removed      bool
}

// NewPostingInput holds the validated scalar fields of a new posting.
type NewPostingInput struct {
	Title        string  `validate:"required"`
	Description  string  `validate:"required"`
	Requirements []string
	HourlyWage   float64 `validate:"gte=0"`
}

// NewJobPosting builds an open posting owned by employer. The employer must
// be an employer-kind user; presence in the store is checked at insertion.
func NewJobPosting(employer *User, in NewPostingInput) (*JobPosting, error) {
	if employer == nil || employer.Kind != KindEmployer {
		return nil, fmt.Errorf("new posting: %w", ErrNotEmployer)
	}
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("new posting: %w", err)
	}
	return &JobPosting{
		Employer:     employer,
		Title:        in.Title,
		Description:  in.Description,
		Requirements: in.Requirements,
		HourlyWage:   in.HourlyWage,
		Status:       StatusOpen,
	}, nil
}

// HasApplicant reports whether the student with the given id already applied.
func (p *JobPosting) HasApplicant(id uuid.UUID) bool {
	for _, a := range p.Applicants {
		if a.ID == id {
			return true
		}
	}
	return false
}

// RequiresKeyword reports whether keyword is an exact, case-sensitive member
// of the requirements list. Deliberately not a substring match.
func (p *JobPosting) RequiresKeyword(keyword string) bool {
	for _, r := range p.Requirements {
		if r == keyword {
			return true
		}
	}
	return false
}
