package store

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/google/uuid"

	"github.com/campushire/career-registry/internal/core/domain"
	"github.com/campushire/career-registry/internal/core/ports"
)

// Snapshot flattens the whole store back to record batches, the exact
// inverse of a resolve pass. Removed entities are included so history
// survives a reload, and relationships flatten to identifier strings.
// Batches come out in insertion order, so save/load cycles are stable.
func (s *Store) Snapshot() ports.RecordBatches {
	var b ports.RecordBatches
	for _, id := range s.userOrder {
		u := s.users[id]
		switch u.Kind {
		case domain.KindAdmin:
			b.Admins = append(b.Admins, baseRecord(u))
		case domain.KindProfessor:
			b.Professors = append(b.Professors, baseRecord(u))
		case domain.KindStudent:
			b.Students = append(b.Students, ports.StudentRecord{
				UserRecord:    baseRecord(u),
				Major:         string(u.Student.Major),
				CreatedResume: u.Student.CreatedResume,
				Educations:    u.Student.Educations,
				Employments:   u.Student.Employments,
				Skills:        u.Student.Skills,
				AverageRating: u.Student.AverageRating,
			})
		case domain.KindEmployer:
			b.Employers = append(b.Employers, ports.EmployerRecord{
				UserRecord:    baseRecord(u),
				Company:       u.Employer.Company,
				AverageRating: u.Employer.AverageRating,
			})
		}
	}

	b.Reviews = slice.Map(s.reviewOrder, func(_ int, id uuid.UUID) ports.ReviewRecord {
		r := s.reviews[id]
		return ports.ReviewRecord{
			ID:         r.ID.String(),
			ReviewerID: r.Reviewer.ID.String(),
			RevieweeID: r.Reviewee.ID.String(),
			Rating:     r.Rating,
			Comment:    r.Comment,
			Removed:    r.Removed,
		}
	})

	b.Postings = slice.Map(s.postingOrder, func(_ int, id uuid.UUID) ports.PostingRecord {
		p := s.postings[id]
		return ports.PostingRecord{
			ID:           p.ID.String(),
			EmployerID:   p.Employer.ID.String(),
			Title:        p.Title,
			Description:  p.Description,
			Requirements: p.Requirements,
			HourlyWage:   p.HourlyWage,
			Status:       string(p.Status),
			ApplicantIDs: slice.Map(p.Applicants, func(_ int, a *domain.User) string {
				return a.ID.String()
			}),
			Removed: p.Removed,
		}
	})

	return b
}

func baseRecord(u *domain.User) ports.UserRecord {
	return ports.UserRecord{
		ID:        u.ID.String(),
		Username:  u.Username,
		Password:  u.Password,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Approved:  u.Approved,
		Removed:   u.Removed,
	}
}
