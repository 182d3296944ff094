package ports

import "github.com/campushire/career-registry/internal/core/domain"

// Flat, denormalized record shapes exchanged with the persistence layer.
// Relationship fields are raw identifier strings, never nested entities;
// the resolver turns them into live references after every batch is in.

// UserRecord carries the fields common to every account kind. Admin and
// professor batches use it directly.
type UserRecord struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Approved  bool   `json:"approved"`
	Removed   bool   `json:"removed"`
}

type StudentRecord struct {
	UserRecord
	Major         string              `json:"major"`
	CreatedResume bool                `json:"created_resume"`
	Educations    []domain.Education  `json:"educations"`
	Employments   []domain.Employment `json:"employments"`
	Skills        []string            `json:"skills"`
	AverageRating float64             `json:"average_rating"`
}

type EmployerRecord struct {
	UserRecord
	Company       string  `json:"company"`
	AverageRating float64 `json:"average_rating"`
}

type ReviewRecord struct {
	ID         string `json:"id"`
	ReviewerID string `json:"reviewer"`
	RevieweeID string `json:"reviewee"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Removed    bool   `json:"removed"`
}

type PostingRecord struct {
	ID           string   `json:"id"`
	EmployerID   string   `json:"employer"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
	HourlyWage   float64  `json:"hourly_wage"`
	Status       string   `json:"status"`
	ApplicantIDs []string `json:"applicants"`
	Removed      bool     `json:"removed"`
}

// RecordBatches is the full persisted state: one batch per entity kind.
type RecordBatches struct {
	Admins     []UserRecord
	Students   []StudentRecord
	Employers  []EmployerRecord
	Professors []UserRecord
	Reviews    []ReviewRecord
	Postings   []PostingRecord
}
