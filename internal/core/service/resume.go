package service

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/campushire/career-registry/internal/core/domain"
)

// ResumeView is the structured resume read handed to the presentation
// layer, which owns the actual text formatting. Slices are copies: mutating
// a view never touches the store.
type ResumeView struct {
	Name          string
	Email         string
	Major         domain.Major
	AverageRating float64
	Educations    []domain.Education
	Employments   []domain.Employment
	Skills        []string
}

// Resume builds the resume view for a student. Fails with ErrNoResume until
// the student has created one.
func (s *Session) Resume(studentID uuid.UUID) (*ResumeView, error) {
	if s.store == nil {
		return nil, ErrNotOpen
	}
	u, err := s.store.UserByID(studentID)
	if err != nil {
		return nil, err
	}
	if u.Kind != domain.KindStudent {
		return nil, fmt.Errorf("resume for %s: %w", studentID, domain.ErrNotStudent)
	}
	if !u.Student.CreatedResume {
		return nil, fmt.Errorf("resume for %s: %w", studentID, domain.ErrNoResume)
	}
	p := u.Student
	view := &ResumeView{
		Name:          u.FirstName + " " + u.LastName,
		Email:         u.Email,
		Major:         p.Major,
		AverageRating: p.AverageRating,
		Educations:    append([]domain.Education(nil), p.Educations...),
		Employments:   append([]domain.Employment(nil), p.Employments...),
		Skills:        append([]string(nil), p.Skills...),
	}
	return view, nil
}
