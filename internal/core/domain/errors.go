package domain

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("entity not found")
var ErrDuplicateUsername = errors.New("username already taken")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrDuplicateApplicant = errors.New("student already applied")
var ErrSelfReview = errors.New("reviewer and reviewee are the same user")
var ErrNotStudent = errors.New("user is not a student")
var ErrNotEmployer = errors.New("user is not an employer")
var ErrRemovedEmployer = errors.New("employer has been removed")
var ErrNoResume = errors.New("student has not created a resume")

// DecodeError describes a single flat record that could not be decoded.
// Index is the record's position within its batch.
type DecodeError struct {
	Kind   string
	Index  int
	Field  string
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("decode %s record %d: %s", e.Kind, e.Index, e.Reason)
	}
	return fmt.Sprintf("decode %s record %d: field %q: %s", e.Kind, e.Index, e.Field, e.Reason)
}

// DanglingReferenceError reports an identifier that does not resolve to any
// entity in the store.
type DanglingReferenceError struct {
	Referencing string // description of the referencing record, e.g. "review 7f3a..."
	TargetKind  string // what the identifier was supposed to name
	RawID       string
}

func (e *DanglingReferenceError) Error() string {
	return fmt.Sprintf("%s references unknown %s %q", e.Referencing, e.TargetKind, e.RawID)
}
