package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// UserKind tags the closed set of user variants.
type UserKind string

const (
	KindStudent   UserKind = "student"
	KindEmployer  UserKind = "employer"
	KindProfessor UserKind = "professor"
	KindAdmin     UserKind = "admin"
)

// Major is a student's field of study.
type Major string

const (
	MajorNotApplicable       Major = "not applicable"
	MajorComputerScience     Major = "computer science"
	MajorComputerEngineering Major = "computer engineering"
	MajorComputerInfoSystems Major = "computer information systems"
	MajorIntegratedInfoTech  Major = "integrated information technology"
)

// ParseMajor matches case-insensitively and falls back to MajorNotApplicable
// for anything unrecognised.
func ParseMajor(s string) Major {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(MajorComputerScience):
		return MajorComputerScience
	case string(MajorComputerEngineering):
		return MajorComputerEngineering
	case string(MajorComputerInfoSystems):
		return MajorComputerInfoSystems
	case string(MajorIntegratedInfoTech):
		return MajorIntegratedInfoTech
	default:
		return MajorNotApplicable
	}
}

// Education is one entry in a student's education history. Owned exclusively
// by the student; never referenced by identifier.
type Education struct {
	Place    string  `json:"place" validate:"required"`
	GPA      float64 `json:"gpa"`
	GradDate string  `json:"grad_date" validate:"required"`
}

// Employment is one entry in a student's work history.
type Employment struct {
	Company string   `json:"company" validate:"required"`
	Title   string   `json:"title" validate:"required"`
	Dates   string   `json:"dates" validate:"required"`
	Details []string `json:"details"`
}

// StudentProfile carries the student-specific payload of a User.
type StudentProfile struct {
	Major         Major
	CreatedResume bool
	Educations    []Education
	Employments   []Employment
	Skills        []string
	AverageRating float64 // derived from reviews where the student is reviewee
}

// EmployerProfile carries the employer-specific payload of a User.
type EmployerProfile struct {
	Company       string
	AverageRating float64
}

// User is the common capability record for all account kinds. Exactly one of
// Student/Employer is non-nil, and only when Kind matches; professors and
// admins carry no extra payload.
type User struct {
	ID        uuid.UUID
	Kind      UserKind
	Username  string
	Password  string // stored opaque; authentication is exact match
	Email     string
	FirstName string
	LastName  string
	Approved  bool
	Removed   bool

	Student  *StudentProfile
	Employer *EmployerProfile
}

// NewUserInput holds the fields common to every account kind.
type NewUserInput struct {
	Username  string `validate:"required"`
	Password  string `validate:"required"`
	Email     string `validate:"required,email"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
}

// NewStudent builds a student account. Students do not go through the
// approval queue.
func NewStudent(in NewUserInput, major Major) (*User, error) {
	u, err := newUser(in, KindStudent)
	if err != nil {
		return nil, err
	}
	u.Approved = true
	u.Student = &StudentProfile{Major: major}
	return u, nil
}

// NewEmployer builds an employer account for the given company.
func NewEmployer(in NewUserInput, company string) (*User, error) {
	if strings.TrimSpace(company) == "" {
		return nil, fmt.Errorf("new employer: company must not be empty")
	}
	u, err := newUser(in, KindEmployer)
	if err != nil {
		return nil, err
	}
	u.Approved = true
	u.Employer = &EmployerProfile{Company: company}
	return u, nil
}

// NewProfessor builds a professor account. Professors start unapproved and
// must be approved by an admin before acting.
func NewProfessor(in NewUserInput) (*User, error) {
	return newUser(in, KindProfessor)
}

// NewAdmin builds an admin account, unapproved until an existing admin
// approves it.
func NewAdmin(in NewUserInput) (*User, error) {
	return newUser(in, KindAdmin)
}

func newUser(in NewUserInput, kind UserKind) (*User, error) {
	if err := validate.Struct(in); err != nil {
		return nil, fmt.Errorf("new %s: %w", kind, err)
	}
	return &User{
		Kind:      kind,
		Username:  in.Username,
		Password:  in.Password,
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}, nil
}

// NewEducation validates and builds an education entry.
func NewEducation(place string, gpa float64, gradDate string) (Education, error) {
	e := Education{Place: place, GPA: gpa, GradDate: gradDate}
	if err := validate.Struct(e); err != nil {
		return Education{}, fmt.Errorf("new education: %w", err)
	}
	if gpa < 0 || gpa > 4.0 {
		return Education{}, fmt.Errorf("new education: gpa %.2f outside 0.0-4.0", gpa)
	}
	return e, nil
}

// NewEmployment validates and builds an employment entry.
func NewEmployment(company, title, dates string, details []string) (Employment, error) {
	e := Employment{Company: company, Title: title, Dates: dates, Details: details}
	if err := validate.Struct(e); err != nil {
		return Employment{}, fmt.Errorf("new employment: %w", err)
	}
	return e, nil
}
