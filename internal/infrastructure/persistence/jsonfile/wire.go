package jsonfile

import (
	"github.com/ecodeclub/ekit/slice"

	"github.com/campushire/career-registry/internal/core/domain"
	"github.com/campushire/career-registry/internal/core/ports"
)

// Wire shapes mirror the on-disk records with pointer fields so the decoder
// can tell a missing required field from a zero value. Optional fields take
// the kind's documented default when absent. Fields are spelled out per kind
// rather than embedded: validator does not descend into unexported embedded
// structs.

type jsonUser struct {
	ID        *string `json:"id" validate:"required"`
	Username  *string `json:"username" validate:"required"`
	Password  *string `json:"password" validate:"required"`
	Email     *string `json:"email" validate:"required,email"`
	FirstName *string `json:"first_name" validate:"required"`
	LastName  *string `json:"last_name" validate:"required"`
	Approved  *bool   `json:"approved"`
	Removed   *bool   `json:"removed"`
}

type jsonEducation struct {
	Place    *string  `json:"place" validate:"required"`
	GPA      *float64 `json:"gpa"`
	GradDate *string  `json:"grad_date" validate:"required"`
}

type jsonEmployment struct {
	Company *string  `json:"company" validate:"required"`
	Title   *string  `json:"title" validate:"required"`
	Dates   *string  `json:"dates" validate:"required"`
	Details []string `json:"details"`
}

type jsonStudent struct {
	ID            *string          `json:"id" validate:"required"`
	Username      *string          `json:"username" validate:"required"`
	Password      *string          `json:"password" validate:"required"`
	Email         *string          `json:"email" validate:"required,email"`
	FirstName     *string          `json:"first_name" validate:"required"`
	LastName      *string          `json:"last_name" validate:"required"`
	Approved      *bool            `json:"approved"`
	Removed       *bool            `json:"removed"`
	Major         *string          `json:"major"`
	CreatedResume *bool            `json:"created_resume"`
	Educations    []jsonEducation  `json:"educations" validate:"dive"`
	Employments   []jsonEmployment `json:"employments" validate:"dive"`
	Skills        []string         `json:"skills"`
	AverageRating *float64         `json:"average_rating"`
}

type jsonEmployer struct {
	ID            *string  `json:"id" validate:"required"`
	Username      *string  `json:"username" validate:"required"`
	Password      *string  `json:"password" validate:"required"`
	Email         *string  `json:"email" validate:"required,email"`
	FirstName     *string  `json:"first_name" validate:"required"`
	LastName      *string  `json:"last_name" validate:"required"`
	Approved      *bool    `json:"approved"`
	Removed       *bool    `json:"removed"`
	Company       *string  `json:"company" validate:"required"`
	AverageRating *float64 `json:"average_rating"`
}

type jsonReview struct {
	ID       *string `json:"id" validate:"required"`
	Reviewer *string `json:"reviewer" validate:"required"`
	Reviewee *string `json:"reviewee" validate:"required"`
	Rating   *int    `json:"rating"`
	Comment  *string `json:"comment"`
	Removed  *bool   `json:"removed"`
}

type jsonPosting struct {
	ID           *string  `json:"id" validate:"required"`
	Employer     *string  `json:"employer" validate:"required"`
	Title        *string  `json:"title" validate:"required"`
	Description  *string  `json:"description"`
	Requirements []string `json:"requirements"`
	HourlyWage   *float64 `json:"hourly_wage" validate:"omitempty,gte=0"`
	Status       *string  `json:"status"`
	Applicants   []string `json:"applicants"`
	Removed      *bool    `json:"removed"`
}

// mapIfAny is slice.Map preserving nil for an absent list, so a record that
// never had the field round-trips without growing an empty array.
func mapIfAny[Src, Dst any](src []Src, m func(int, Src) Dst) []Dst {
	if len(src) == 0 {
		return nil
	}
	return slice.Map(src, m)
}

func strVal(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}

func boolVal(p *bool) bool {
	return p != nil && *p
}

func floatVal(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func intVal(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func (w jsonUser) toRecord() ports.UserRecord {
	return ports.UserRecord{
		ID:        strVal(w.ID, ""),
		Username:  strVal(w.Username, ""),
		Password:  strVal(w.Password, ""),
		Email:     strVal(w.Email, ""),
		FirstName: strVal(w.FirstName, ""),
		LastName:  strVal(w.LastName, ""),
		Approved:  boolVal(w.Approved),
		Removed:   boolVal(w.Removed),
	}
}

func (w jsonStudent) toRecord() ports.StudentRecord {
	return ports.StudentRecord{
		UserRecord: ports.UserRecord{
			ID:        strVal(w.ID, ""),
			Username:  strVal(w.Username, ""),
			Password:  strVal(w.Password, ""),
			Email:     strVal(w.Email, ""),
			FirstName: strVal(w.FirstName, ""),
			LastName:  strVal(w.LastName, ""),
			Approved:  boolVal(w.Approved),
			Removed:   boolVal(w.Removed),
		},
		Major:         strVal(w.Major, string(domain.MajorNotApplicable)),
		CreatedResume: boolVal(w.CreatedResume),
		Educations: mapIfAny(w.Educations, func(_ int, e jsonEducation) domain.Education {
			return domain.Education{
				Place:    strVal(e.Place, ""),
				GPA:      floatVal(e.GPA),
				GradDate: strVal(e.GradDate, ""),
			}
		}),
		Employments: mapIfAny(w.Employments, func(_ int, e jsonEmployment) domain.Employment {
			return domain.Employment{
				Company: strVal(e.Company, ""),
				Title:   strVal(e.Title, ""),
				Dates:   strVal(e.Dates, ""),
				Details: e.Details,
			}
		}),
		Skills:        w.Skills,
		AverageRating: floatVal(w.AverageRating),
	}
}

func (w jsonEmployer) toRecord() ports.EmployerRecord {
	return ports.EmployerRecord{
		UserRecord: ports.UserRecord{
			ID:        strVal(w.ID, ""),
			Username:  strVal(w.Username, ""),
			Password:  strVal(w.Password, ""),
			Email:     strVal(w.Email, ""),
			FirstName: strVal(w.FirstName, ""),
			LastName:  strVal(w.LastName, ""),
			Approved:  boolVal(w.Approved),
			Removed:   boolVal(w.Removed),
		},
		Company:       strVal(w.Company, ""),
		AverageRating: floatVal(w.AverageRating),
	}
}

func (w jsonReview) toRecord() ports.ReviewRecord {
	return ports.ReviewRecord{
		ID:         strVal(w.ID, ""),
		ReviewerID: strVal(w.Reviewer, ""),
		RevieweeID: strVal(w.Reviewee, ""),
		Rating:     intVal(w.Rating),
		Comment:    strVal(w.Comment, ""),
		Removed:    boolVal(w.Removed),
	}
}

func (w jsonPosting) toRecord() ports.PostingRecord {
	return ports.PostingRecord{
		ID:           strVal(w.ID, ""),
		EmployerID:   strVal(w.Employer, ""),
		Title:        strVal(w.Title, ""),
		Description:  strVal(w.Description, ""),
		Requirements: w.Requirements,
		HourlyWage:   floatVal(w.HourlyWage),
		Status:       strVal(w.Status, string(domain.StatusNotApplicable)),
		ApplicantIDs: w.Applicants,
		Removed:      boolVal(w.Removed),
	}
}
