package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/campushire/career-registry/internal/core/domain"
	"github.com/campushire/career-registry/internal/core/ports"
)

// Reader decodes the six batch files into flat records. A malformed element
// never takes the rest of its batch down: everything that decoded cleanly is
// returned alongside per-record errors, and a missing file is simply an
// empty batch.
type Reader struct {
	paths    Paths
	validate *validator.Validate
	log      zerolog.Logger
}

func NewReader(paths Paths, log zerolog.Logger) *Reader {
	v := validator.New()
	// Report wire field names, not Go field names, in decode errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Reader{paths: paths, validate: v, log: log}
}

func (r *Reader) Read(ctx context.Context) (ports.RecordBatches, []domain.DecodeError, error) {
	var batches ports.RecordBatches
	var errs []domain.DecodeError

	if err := ctx.Err(); err != nil {
		return batches, nil, err
	}

	batches.Admins = readBatch(r, r.paths.Admins, "admin", &errs, jsonUser.toRecord)
	batches.Students = readBatch(r, r.paths.Students, "student", &errs, jsonStudent.toRecord)
	batches.Employers = readBatch(r, r.paths.Employers, "employer", &errs, jsonEmployer.toRecord)
	batches.Professors = readBatch(r, r.paths.Professors, "professor", &errs, jsonUser.toRecord)
	batches.Reviews = readBatch(r, r.paths.Reviews, "review", &errs, jsonReview.toRecord)
	batches.Postings = readBatch(r, r.paths.Postings, "posting", &errs, jsonPosting.toRecord)

	for _, e := range errs {
		r.log.Warn().Str("kind", e.Kind).Int("index", e.Index).Str("field", e.Field).Str("reason", e.Reason).Msg("record dropped")
	}
	return batches, errs, nil
}

// readBatch streams one JSON array file element by element. Validation
// failures drop only the offending element; a syntax error ends the file but
// keeps every element decoded before it, matching the legacy
// log-and-continue policy.
func readBatch[W any, R any](r *Reader, path, kind string, errs *[]domain.DecodeError, convert func(W) R) []R {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.log.Debug().Str("file", path).Str("kind", kind).Msg("batch file missing, starting empty")
			return nil
		}
		*errs = append(*errs, domain.DecodeError{Kind: kind, Index: -1, Reason: err.Error()})
		return nil
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	tok, err := dec.Token()
	if err != nil {
		*errs = append(*errs, domain.DecodeError{Kind: kind, Index: -1, Reason: fmt.Sprintf("read %s: %v", path, err)})
		return nil
	}
	if tok != json.Delim('[') {
		*errs = append(*errs, domain.DecodeError{Kind: kind, Index: -1, Reason: "file is not a JSON array"})
		return nil
	}

	var out []R
	for i := 0; dec.More(); i++ {
		var w W
		if err := dec.Decode(&w); err != nil {
			// Cannot resync after a syntax error inside the array.
			*errs = append(*errs, domain.DecodeError{Kind: kind, Index: i, Reason: err.Error()})
			return out
		}
		if err := r.validate.Struct(&w); err != nil {
			*errs = append(*errs, validationError(kind, i, err))
			continue
		}
		out = append(out, convert(w))
	}
	// More swallows syntax errors between elements; reading the closing
	// bracket surfaces a truncated file.
	if _, err := dec.Token(); err != nil {
		*errs = append(*errs, domain.DecodeError{Kind: kind, Index: len(out), Reason: err.Error()})
	}
	return out
}

// validationError converts the first field failure into a DecodeError naming
// the offending field.
func validationError(kind string, index int, err error) domain.DecodeError {
	var ve validator.ValidationErrors
	if errors.As(err, &ve) && len(ve) > 0 {
		fe := ve[0]
		// Namespace is "jsonStudent.educations[0].place"; drop the root type.
		field := fe.Namespace()
		if i := strings.IndexByte(field, '.'); i >= 0 {
			field = field[i+1:]
		}
		reason := "missing or empty"
		if fe.Tag() != "required" {
			reason = fmt.Sprintf("failed %q check", fe.Tag())
		}
		return domain.DecodeError{Kind: kind, Index: index, Field: field, Reason: reason}
	}
	return domain.DecodeError{Kind: kind, Index: index, Reason: err.Error()}
}
