package store

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/campushire/career-registry/internal/core/domain"
)

// Education, employment and skill entries are owned exclusively by their
// student, so unlike every other entity they are hard-removed from the
// student's ordered sequences rather than soft-deleted.

func (s *Store) student(id uuid.UUID) (*domain.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, fmt.Errorf("student %s: %w", id, domain.ErrNotFound)
	}
	if u.Kind != domain.KindStudent {
		return nil, fmt.Errorf("student %s: %w", id, domain.ErrNotStudent)
	}
	return u, nil
}

func (s *Store) AddEducation(studentID uuid.UUID, e domain.Education) error {
	u, err := s.student(studentID)
	if err != nil {
		return err
	}
	u.Student.Educations = append(u.Student.Educations, e)
	return nil
}

func (s *Store) RemoveEducation(studentID uuid.UUID, index int) error {
	u, err := s.student(studentID)
	if err != nil {
		return err
	}
	edus := u.Student.Educations
	if index < 0 || index >= len(edus) {
		return fmt.Errorf("remove education %d of student %s: %w", index, studentID, domain.ErrNotFound)
	}
	u.Student.Educations = append(edus[:index], edus[index+1:]...)
	return nil
}

func (s *Store) AddEmployment(studentID uuid.UUID, e domain.Employment) error {
	u, err := s.student(studentID)
	if err != nil {
		return err
	}
	u.Student.Employments = append(u.Student.Employments, e)
	return nil
}

func (s *Store) RemoveEmployment(studentID uuid.UUID, index int) error {
	u, err := s.student(studentID)
	if err != nil {
		return err
	}
	emps := u.Student.Employments
	if index < 0 || index >= len(emps) {
		return fmt.Errorf("remove employment %d of student %s: %w", index, studentID, domain.ErrNotFound)
	}
	u.Student.Employments = append(emps[:index], emps[index+1:]...)
	return nil
}

// AddSkill adds a technical skill. Skills form a set: adding one the student
// already has is a no-op.
func (s *Store) AddSkill(studentID uuid.UUID, skill string) error {
	u, err := s.student(studentID)
	if err != nil {
		return err
	}
	for _, have := range u.Student.Skills {
		if have == skill {
			return nil
		}
	}
	u.Student.Skills = append(u.Student.Skills, skill)
	return nil
}

// RemoveSkill drops a skill if present; removing an absent skill is a no-op.
func (s *Store) RemoveSkill(studentID uuid.UUID, skill string) error {
	u, err := s.student(studentID)
	if err != nil {
		return err
	}
	for i, have := range u.Student.Skills {
		if have == skill {
			u.Student.Skills = append(u.Student.Skills[:i], u.Student.Skills[i+1:]...)
			return nil
		}
	}
	return nil
}

func (s *Store) SetResumeCreated(studentID uuid.UUID, created bool) error {
	u, err := s.student(studentID)
	if err != nil {
		return err
	}
	u.Student.CreatedResume = created
	return nil
}

func (s *Store) SetMajor(studentID uuid.UUID, major domain.Major) error {
	u, err := s.student(studentID)
	if err != nil {
		return err
	}
	u.Student.Major = major
	return nil
}
