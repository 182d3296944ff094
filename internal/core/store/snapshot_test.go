package store

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/career-registry/internal/core/domain"
)

func TestSnapshotRoundTrip(t *testing.T) {
	s := newTestStore()
	acme := addEmployer(t, s, "acme-hr", "Acme")
	alice := addStudent(t, s, "alice")
	bob := addStudent(t, s, "bob")
	prof, err := domain.NewProfessor(input("prof"))
	require.NoError(t, err)
	require.NoError(t, s.AddUser(prof))

	require.NoError(t, s.AddEducation(alice.ID, domain.Education{Place: "State University", GPA: 3.4, GradDate: "May 2026"}))
	require.NoError(t, s.AddSkill(alice.ID, "go"))
	require.NoError(t, s.SetResumeCreated(alice.ID, true))

	r, err := domain.NewReview(alice, acme, 5, "great")
	require.NoError(t, err)
	require.NoError(t, s.AddReview(r))

	p := addOpenPosting(t, s, acme, "Intern", "java")
	require.NoError(t, s.AddApplicant(p.ID, alice.ID))
	require.NoError(t, s.AddApplicant(p.ID, bob.ID))

	// Soft-deletes must survive the round trip.
	require.NoError(t, s.RemoveUser(bob.ID))
	p2 := addOpenPosting(t, s, acme, "Temp")
	require.NoError(t, s.RemoveJobPosting(p2.ID))

	loaded, report, err := Resolve(s.Snapshot(), Options{Strict: true}, zerolog.Nop())
	require.NoError(t, err)
	require.True(t, report.Clean())

	alice2, err := loaded.UserByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Username, alice2.Username)
	assert.Equal(t, alice.Student.Educations, alice2.Student.Educations)
	assert.Equal(t, alice.Student.Skills, alice2.Student.Skills)
	assert.True(t, alice2.Student.CreatedResume)
	assert.Equal(t, 0.0, alice2.Student.AverageRating, "alice has no reviews")

	bob2, err := loaded.UserByID(bob.ID)
	require.NoError(t, err)
	assert.True(t, bob2.Removed, "removed users survive the round trip")

	p1b, err := loaded.PostingByID(p.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"java"}, p1b.Requirements)
	require.Len(t, p1b.Applicants, 2)
	assert.Equal(t, alice.ID, p1b.Applicants[0].ID)
	assert.Equal(t, bob.ID, p1b.Applicants[1].ID)

	p2b, err := loaded.PostingByID(p2.ID)
	require.NoError(t, err)
	assert.True(t, p2b.Removed)

	r2, err := loaded.ReviewByID(r.ID)
	require.NoError(t, err)
	assert.Equal(t, acme.ID, r2.Reviewee.ID)
	acme2, err := loaded.UserByID(acme.ID)
	require.NoError(t, err)
	assert.Equal(t, 5.0, acme2.Employer.AverageRating)

	// A second flatten of the reloaded store must be identical.
	assert.Equal(t, s.Snapshot(), loaded.Snapshot())
}

func TestSnapshotPartitionsUserKinds(t *testing.T) {
	s := newTestStore()
	addStudent(t, s, "alice")
	addEmployer(t, s, "acme-hr", "Acme")
	prof, err := domain.NewProfessor(input("prof"))
	require.NoError(t, err)
	require.NoError(t, s.AddUser(prof))
	admin, err := domain.NewAdmin(input("root"))
	require.NoError(t, err)
	require.NoError(t, s.AddUser(admin))

	b := s.Snapshot()
	assert.Len(t, b.Students, 1)
	assert.Len(t, b.Employers, 1)
	assert.Len(t, b.Professors, 1)
	assert.Len(t, b.Admins, 1)
	assert.Equal(t, "prof", b.Professors[0].Username)
}
