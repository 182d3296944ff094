package store

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/career-registry/internal/core/domain"
)

func collect[T any](seq func(func(T) bool)) []T {
	var out []T
	seq(func(v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

func TestOpenPostings(t *testing.T) {
	s := newTestStore()
	acme := addEmployer(t, s, "acme-hr", "Acme")
	open := addOpenPosting(t, s, acme, "Intern")
	closed := addOpenPosting(t, s, acme, "Senior")
	require.NoError(t, s.SetPostingStatus(closed.ID, domain.StatusClosed))
	removed := addOpenPosting(t, s, acme, "Temp")
	require.NoError(t, s.RemoveJobPosting(removed.ID))

	got := collect(s.OpenPostings())
	assert.Equal(t, []*domain.JobPosting{open}, got)
}

func TestQueriesAreRestartableAndDeterministic(t *testing.T) {
	s := newTestStore()
	acme := addEmployer(t, s, "acme-hr", "Acme")
	addOpenPosting(t, s, acme, "Intern")
	addOpenPosting(t, s, acme, "Junior")

	seq := s.OpenPostings()
	first := collect(seq)
	second := collect(seq)
	assert.Equal(t, first, second, "each range starts a fresh traversal")

	// Early break must not poison later traversals.
	for range seq {
		break
	}
	assert.Equal(t, first, collect(seq))
}

func TestPostingsByRequirement(t *testing.T) {
	s := newTestStore()
	acme := addEmployer(t, s, "acme-hr", "Acme")
	addStudent(t, s, "alice")
	p1 := addOpenPosting(t, s, acme, "Java Intern", "java")

	got := collect(s.PostingsByRequirement("java"))
	assert.Equal(t, []*domain.JobPosting{p1}, got)

	assert.Empty(t, collect(s.PostingsByRequirement("python")))
	assert.Empty(t, collect(s.PostingsByRequirement("jav")), "membership, not substring")

	require.NoError(t, s.SetPostingStatus(p1.ID, domain.StatusClosed))
	assert.Empty(t, collect(s.PostingsByRequirement("java")), "only open postings match")
}

func TestPostingsByEmployer(t *testing.T) {
	s := newTestStore()
	acme := addEmployer(t, s, "acme-hr", "Acme")
	globex := addEmployer(t, s, "globex-hr", "Globex")
	p1 := addOpenPosting(t, s, acme, "Intern")
	addOpenPosting(t, s, globex, "Junior")

	assert.Equal(t, []*domain.JobPosting{p1}, collect(s.PostingsByEmployer(acme.ID)))
}

func TestPostingsByApplicantSurvivesStudentRemoval(t *testing.T) {
	s := newTestStore()
	acme := addEmployer(t, s, "acme-hr", "Acme")
	alice := addStudent(t, s, "alice")
	p1 := addOpenPosting(t, s, acme, "Intern")
	require.NoError(t, s.AddApplicant(p1.ID, alice.ID))

	assert.Equal(t, []*domain.JobPosting{p1}, collect(s.PostingsByApplicant(alice.ID)))

	// Applications are history: the applicant's removal does not hide them,
	// and the posting stays open. Only the posting's own flag hides it.
	require.NoError(t, s.RemoveUser(alice.ID))
	assert.Equal(t, []*domain.JobPosting{p1}, collect(s.PostingsByApplicant(alice.ID)))
	assert.Equal(t, []*domain.JobPosting{p1}, collect(s.OpenPostings()))

	require.NoError(t, s.RemoveJobPosting(p1.ID))
	assert.Empty(t, collect(s.PostingsByApplicant(alice.ID)))
}

func TestReviewsByRevieweeAndReviewer(t *testing.T) {
	s := newTestStore()
	alice := addStudent(t, s, "alice")
	bob := addStudent(t, s, "bob")
	acme := addEmployer(t, s, "acme-hr", "Acme")

	r1, err := domain.NewReview(alice, acme, 4, "")
	require.NoError(t, err)
	require.NoError(t, s.AddReview(r1))
	r2, err := domain.NewReview(bob, acme, 2, "")
	require.NoError(t, err)
	require.NoError(t, s.AddReview(r2))

	assert.Equal(t, []*domain.Review{r1, r2}, collect(s.ReviewsByReviewee(acme.ID)))
	assert.Equal(t, []*domain.Review{r1}, collect(s.ReviewsByReviewer(alice.ID)))

	require.NoError(t, s.RemoveReview(r1.ID))
	assert.Equal(t, []*domain.Review{r2}, collect(s.ReviewsByReviewee(acme.ID)))
}

func TestUsersByKind(t *testing.T) {
	s := newTestStore()
	alice := addStudent(t, s, "alice")
	bob := addStudent(t, s, "bob")
	acme := addEmployer(t, s, "acme-hr", "Acme")
	require.NoError(t, s.RemoveUser(bob.ID))

	students := collect(s.Users(domain.KindStudent))
	assert.Equal(t, []*domain.User{alice}, students, "removed students are excluded")

	all := collect(s.Users())
	assert.True(t, slices.Contains(all, acme))
	assert.False(t, slices.Contains(all, bob))
}
