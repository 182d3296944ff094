package store

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/campushire/career-registry/internal/core/domain"
)

func newTestStore() *Store {
	return New(zerolog.Nop())
}

func input(name string) domain.NewUserInput {
	return domain.NewUserInput{
		Username:  name,
		Password:  "pw-" + name,
		Email:     name + "@example.edu",
		FirstName: "First",
		LastName:  "Last",
	}
}

func addStudent(t *testing.T, s *Store, name string) *domain.User {
	t.Helper()
	u, err := domain.NewStudent(input(name), domain.MajorNotApplicable)
	require.NoError(t, err)
	require.NoError(t, s.AddUser(u))
	return u
}

func addEmployer(t *testing.T, s *Store, name, company string) *domain.User {
	t.Helper()
	u, err := domain.NewEmployer(input(name), company)
	require.NoError(t, err)
	require.NoError(t, s.AddUser(u))
	return u
}

func addOpenPosting(t *testing.T, s *Store, employer *domain.User, title string, reqs ...string) *domain.JobPosting {
	t.Helper()
	p, err := domain.NewJobPosting(employer, domain.NewPostingInput{
		Title:       title,
		Description: "description of " + title,
		HourlyWage:  12,
	})
	require.NoError(t, err)
	p.Requirements = reqs
	require.NoError(t, s.AddJobPosting(p))
	return p
}
