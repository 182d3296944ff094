package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/campushire/career-registry/internal/core/domain"
	"github.com/campushire/career-registry/internal/core/ports"
)

// Options controls how Resolve treats records it cannot link.
type Options struct {
	// Strict turns any dangling reference or conflicting record into a fatal
	// load error. The default is skip-and-report: the bad record is dropped,
	// everything else loads.
	Strict bool
}

// LoadReport summarises a resolve pass: how much loaded and what was
// dropped. A report with no Dangling entries and no Errors is a clean load.
type LoadReport struct {
	Users    int
	Reviews  int
	Postings int

	Decode   []domain.DecodeError // filled in by the caller that ran the decoder
	Dangling []domain.DanglingReferenceError
	Errors   []error // malformed identifiers, uniqueness conflicts, duplicate record ids
}

// Clean reports whether every record decoded and resolved.
func (r *LoadReport) Clean() bool {
	return len(r.Decode) == 0 && len(r.Dangling) == 0 && len(r.Errors) == 0
}

// Resolve links flat record batches into a populated store. Users of every
// kind enter the arena first, order-independent; reviews resolve next, then
// postings together with their nested applicant lists. Nothing resolves
// "as you go", so batch file order can never produce a dangling link that a
// different order would have avoided.
//
// In strict mode the first unresolvable record aborts the load; the returned
// store holds whatever resolved before the failure and must be discarded.
func Resolve(batches ports.RecordBatches, opts Options, log zerolog.Logger) (*Store, *LoadReport, error) {
	s := New(log)
	report := &LoadReport{}

	if err := s.resolveUsers(batches, opts, report); err != nil {
		return s, report, err
	}
	if err := s.resolveReviews(batches.Reviews, opts, report); err != nil {
		return s, report, err
	}
	if err := s.resolvePostings(batches.Postings, opts, report); err != nil {
		return s, report, err
	}

	log.Info().
		Int("users", report.Users).
		Int("reviews", report.Reviews).
		Int("postings", report.Postings).
		Int("dangling", len(report.Dangling)).
		Int("errors", len(report.Errors)).
		Msg("store resolved")
	return s, report, nil
}

func (s *Store) resolveUsers(batches ports.RecordBatches, opts Options, report *LoadReport) error {
	add := func(u *domain.User, err error) error {
		if err == nil {
			err = s.AddUser(u)
		}
		if err != nil {
			if opts.Strict {
				return err
			}
			report.Errors = append(report.Errors, err)
			s.log.Warn().Err(err).Msg("user record skipped")
			return nil
		}
		report.Users++
		return nil
	}

	for _, rec := range batches.Admins {
		if err := add(userFromRecord(rec, domain.KindAdmin)); err != nil {
			return err
		}
	}
	for _, rec := range batches.Students {
		if err := add(studentFromRecord(rec)); err != nil {
			return err
		}
	}
	for _, rec := range batches.Employers {
		if err := add(employerFromRecord(rec)); err != nil {
			return err
		}
	}
	for _, rec := range batches.Professors {
		if err := add(userFromRecord(rec, domain.KindProfessor)); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) resolveReviews(recs []ports.ReviewRecord, opts Options, report *LoadReport) error {
	for _, rec := range recs {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			if err := s.skip(opts, report, fmt.Errorf("review %q: bad identifier: %w", rec.ID, err)); err != nil {
				return err
			}
			continue
		}
		if _, ok := s.reviews[id]; ok {
			if err := s.skip(opts, report, fmt.Errorf("review %s: duplicate identifier", id)); err != nil {
				return err
			}
			continue
		}
		reviewer, derr := s.lookupRef("review "+rec.ID, "reviewer", rec.ReviewerID)
		if derr == nil {
			var reviewee *domain.User
			reviewee, derr = s.lookupRef("review "+rec.ID, "reviewee", rec.RevieweeID)
			if derr == nil {
				s.insertReview(&domain.Review{
					ID:       id,
					Reviewer: reviewer,
					Reviewee: reviewee,
					Rating:   rec.Rating,
					Comment:  rec.Comment,
					Removed:  rec.Removed,
				})
				report.Reviews++
				continue
			}
		}
		if opts.Strict {
			return derr
		}
		report.Dangling = append(report.Dangling, *derr)
		s.log.Warn().Str("review", rec.ID).Str("target", derr.TargetKind).Str("raw_id", derr.RawID).Msg("review skipped: dangling reference")
	}
	return nil
}

func (s *Store) resolvePostings(recs []ports.PostingRecord, opts Options, report *LoadReport) error {
	for _, rec := range recs {
		id, err := uuid.Parse(rec.ID)
		if err != nil {
			if err := s.skip(opts, report, fmt.Errorf("posting %q: bad identifier: %w", rec.ID, err)); err != nil {
				return err
			}
			continue
		}
		if _, ok := s.postings[id]; ok {
			if err := s.skip(opts, report, fmt.Errorf("posting %s: duplicate identifier", id)); err != nil {
				return err
			}
			continue
		}

		employer, derr := s.lookupRef("posting "+rec.ID, "employer", rec.EmployerID)
		if derr == nil && employer.Kind != domain.KindEmployer {
			derr = &domain.DanglingReferenceError{Referencing: "posting " + rec.ID, TargetKind: "employer", RawID: rec.EmployerID}
		}
		var applicants []*domain.User
		if derr == nil {
			applicants, derr = s.resolveApplicants(rec)
		}
		if derr != nil {
			if opts.Strict {
				return derr
			}
			report.Dangling = append(report.Dangling, *derr)
			s.log.Warn().Str("posting", rec.ID).Str("target", derr.TargetKind).Str("raw_id", derr.RawID).Msg("posting skipped: dangling reference")
			continue
		}

		s.insertPosting(&domain.JobPosting{
			ID:           id,
			Employer:     employer,
			Title:        rec.Title,
			Description:  rec.Description,
			Requirements: rec.Requirements,
			HourlyWage:   rec.HourlyWage,
			Status:       domain.ParsePostingStatus(rec.Status),
			Applicants:   applicants,
			Removed:      rec.Removed,
		})
		report.Postings++
	}
	return nil
}

// resolveApplicants links a posting's applicant id list. Duplicate ids are
// collapsed to keep the applicant set duplicate-free; a non-student target
// counts as dangling, matching how the legacy reader treated it.
func (s *Store) resolveApplicants(rec ports.PostingRecord) ([]*domain.User, *domain.DanglingReferenceError) {
	var applicants []*domain.User
	seen := make(map[uuid.UUID]bool, len(rec.ApplicantIDs))
	for _, raw := range rec.ApplicantIDs {
		u, derr := s.lookupRef("posting "+rec.ID, "applicant", raw)
		if derr != nil {
			return nil, derr
		}
		if u.Kind != domain.KindStudent {
			return nil, &domain.DanglingReferenceError{Referencing: "posting " + rec.ID, TargetKind: "applicant", RawID: raw}
		}
		if seen[u.ID] {
			s.log.Warn().Str("posting", rec.ID).Str("applicant", raw).Msg("duplicate applicant collapsed")
			continue
		}
		seen[u.ID] = true
		applicants = append(applicants, u)
	}
	return applicants, nil
}

func (s *Store) lookupRef(referencing, targetKind, raw string) (*domain.User, *domain.DanglingReferenceError) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, &domain.DanglingReferenceError{Referencing: referencing, TargetKind: targetKind, RawID: raw}
	}
	u, ok := s.users[id]
	if !ok {
		return nil, &domain.DanglingReferenceError{Referencing: referencing, TargetKind: targetKind, RawID: raw}
	}
	return u, nil
}

func (s *Store) skip(opts Options, report *LoadReport, err error) error {
	if opts.Strict {
		return err
	}
	report.Errors = append(report.Errors, err)
	s.log.Warn().Err(err).Msg("record skipped")
	return nil
}

func userFromRecord(rec ports.UserRecord, kind domain.UserKind) (*domain.User, error) {
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return nil, fmt.Errorf("%s %q: bad identifier: %w", kind, rec.Username, err)
	}
	return &domain.User{
		ID:        id,
		Kind:      kind,
		Username:  rec.Username,
		Password:  rec.Password,
		Email:     rec.Email,
		FirstName: rec.FirstName,
		LastName:  rec.LastName,
		Approved:  rec.Approved,
		Removed:   rec.Removed,
	}, nil
}

func studentFromRecord(rec ports.StudentRecord) (*domain.User, error) {
	u, err := userFromRecord(rec.UserRecord, domain.KindStudent)
	if err != nil {
		return nil, err
	}
	u.Student = &domain.StudentProfile{
		Major:         domain.ParseMajor(rec.Major),
		CreatedResume: rec.CreatedResume,
		Educations:    rec.Educations,
		Employments:   rec.Employments,
		Skills:        rec.Skills,
		AverageRating: rec.AverageRating,
	}
	return u, nil
}

func employerFromRecord(rec ports.EmployerRecord) (*domain.User, error) {
	u, err := userFromRecord(rec.UserRecord, domain.KindEmployer)
	if err != nil {
		return nil, err
	}
	u.Employer = &domain.EmployerProfile{
		Company:       rec.Company,
		AverageRating: rec.AverageRating,
	}
	return u, nil
}
