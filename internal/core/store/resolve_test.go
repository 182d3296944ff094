package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/career-registry/internal/core/domain"
	"github.com/campushire/career-registry/internal/core/ports"
)

var (
	idAlice = uuid.MustParse("11111111-1111-1111-1111-111111111111")
	idBob   = uuid.MustParse("22222222-2222-2222-2222-222222222222")
	idAcme  = uuid.MustParse("33333333-3333-3333-3333-333333333333")
	idAdmin = uuid.MustParse("44444444-4444-4444-4444-444444444444")
	idRev   = uuid.MustParse("55555555-5555-5555-5555-555555555555")
	idPost  = uuid.MustParse("66666666-6666-6666-6666-666666666666")
)

func userRec(id uuid.UUID, username string) ports.UserRecord {
	return ports.UserRecord{
		ID:        id.String(),
		Username:  username,
		Password:  "pw",
		Email:     username + "@example.edu",
		FirstName: "First",
		LastName:  "Last",
		Approved:  true,
	}
}

func testBatches() ports.RecordBatches {
	return ports.RecordBatches{
		Admins: []ports.UserRecord{userRec(idAdmin, "root")},
		Students: []ports.StudentRecord{
			{UserRecord: userRec(idAlice, "alice"), Major: "Computer Science"},
			{UserRecord: userRec(idBob, "bob"), Major: "nonsense"},
		},
		Employers: []ports.EmployerRecord{
			{UserRecord: userRec(idAcme, "acme-hr"), Company: "Acme"},
		},
		Reviews: []ports.ReviewRecord{
			{ID: idRev.String(), ReviewerID: idAlice.String(), RevieweeID: idAcme.String(), Rating: 4, Comment: "fine"},
		},
		Postings: []ports.PostingRecord{
			{
				ID: idPost.String(), EmployerID: idAcme.String(), Title: "Intern",
				Requirements: []string{"java"}, HourlyWage: 15, Status: "open",
				ApplicantIDs: []string{idAlice.String()},
			},
		},
	}
}

func TestResolveLinksGraph(t *testing.T) {
	s, report, err := Resolve(testBatches(), Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, report.Clean())
	assert.Equal(t, 4, report.Users)
	assert.Equal(t, 1, report.Reviews)
	assert.Equal(t, 1, report.Postings)

	alice, err := s.UserByID(idAlice)
	require.NoError(t, err)
	assert.Equal(t, domain.MajorComputerScience, alice.Student.Major)

	bob, err := s.UserByID(idBob)
	require.NoError(t, err)
	assert.Equal(t, domain.MajorNotApplicable, bob.Student.Major, "unknown majors fall back")

	p, err := s.PostingByID(idPost)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusOpen, p.Status)
	require.Len(t, p.Applicants, 1)
	assert.Same(t, alice, p.Applicants[0], "applicants resolve to live store entities")

	r, err := s.ReviewByID(idRev)
	require.NoError(t, err)
	assert.Same(t, r.Reviewee, p.Employer)
	assert.Equal(t, 4.0, p.Employer.Employer.AverageRating, "rating is recomputed from reviews")
}

func TestResolveSkipsDanglingReviewButKeepsRest(t *testing.T) {
	b := testBatches()
	ghost := uuid.New()
	b.Reviews = append(b.Reviews, ports.ReviewRecord{
		ID:         uuid.NewString(),
		ReviewerID: idAlice.String(),
		RevieweeID: ghost.String(),
		Rating:     1,
	})

	s, report, err := Resolve(b, Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Reviews, "valid review in the same batch still loads")
	require.Len(t, report.Dangling, 1)
	assert.Equal(t, "reviewee", report.Dangling[0].TargetKind)
	assert.Equal(t, ghost.String(), report.Dangling[0].RawID)

	_, err = s.ReviewByID(idRev)
	assert.NoError(t, err)
}

func TestResolveStrictModeFailsFast(t *testing.T) {
	b := testBatches()
	b.Postings[0].ApplicantIDs = []string{uuid.NewString()}

	_, _, err := Resolve(b, Options{Strict: true}, zerolog.Nop())
	var dangling *domain.DanglingReferenceError
	require.ErrorAs(t, err, &dangling)
	assert.Equal(t, "applicant", dangling.TargetKind)
}

func TestResolveSkipsPostingWithDanglingEmployer(t *testing.T) {
	b := testBatches()
	b.Postings[0].EmployerID = uuid.NewString()

	s, report, err := Resolve(b, Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Postings)
	require.Len(t, report.Dangling, 1)
	assert.Equal(t, "employer", report.Dangling[0].TargetKind)
	_, err = s.PostingByID(idPost)
	assert.Error(t, err)
}

func TestResolveTreatsNonEmployerOwnerAsDangling(t *testing.T) {
	b := testBatches()
	b.Postings[0].EmployerID = idAlice.String()

	_, report, err := Resolve(b, Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Postings)
	require.Len(t, report.Dangling, 1)
}

func TestResolveCollapsesDuplicateApplicants(t *testing.T) {
	b := testBatches()
	b.Postings[0].ApplicantIDs = []string{idAlice.String(), idAlice.String()}

	s, report, err := Resolve(b, Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Postings)

	p, err := s.PostingByID(idPost)
	require.NoError(t, err)
	assert.Len(t, p.Applicants, 1)
}

func TestResolveReportsUniquenessConflicts(t *testing.T) {
	b := testBatches()
	b.Professors = []ports.UserRecord{userRec(uuid.New(), "alice")} // username clash

	_, report, err := Resolve(b, Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 4, report.Users)
	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Errors[0], domain.ErrDuplicateUsername)
}

func TestResolveBadIdentifierIsSkipped(t *testing.T) {
	b := testBatches()
	b.Reviews[0].ID = "not-a-uuid"

	_, report, err := Resolve(b, Options{}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, 0, report.Reviews)
	assert.Len(t, report.Errors, 1)
}
