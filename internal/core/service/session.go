// Package service wires the store to its persistence ports for the lifetime
// of one user session: load once at startup, mutate through the store,
// flush once at shutdown.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campushire/career-registry/internal/core/domain"
	"github.com/campushire/career-registry/internal/core/ports"
	"github.com/campushire/career-registry/internal/core/store"
	"github.com/campushire/career-registry/internal/infrastructure/metrics"
)

var ErrNotOpen = errors.New("session not opened")

// Session owns the store for one process lifetime. It is constructed
// explicitly and passed to whatever layer needs it; there is no global
// instance.
type Session struct {
	reader ports.RecordReader
	writer ports.RecordWriter
	store  *store.Store
	strict bool
	log    zerolog.Logger
}

// Options controls session behaviour.
type Options struct {
	// StrictResolve makes any dangling reference fatal at load instead of
	// the default skip-and-report.
	StrictResolve bool
}

func NewSession(reader ports.RecordReader, writer ports.RecordWriter, opts Options, log zerolog.Logger) *Session {
	return &Session{reader: reader, writer: writer, strict: opts.StrictResolve, log: log}
}

// Open decodes the persisted batches and resolves them into a fresh store.
// The returned report lists every record that was dropped; with strict
// resolve disabled a non-clean report is not an error.
func (s *Session) Open(ctx context.Context) (*store.LoadReport, error) {
	batches, decodeErrs, err := s.reader.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}
	for _, e := range decodeErrs {
		metrics.RecordsDroppedTotal.WithLabelValues(e.Kind, "decode").Inc()
	}

	st, report, err := store.Resolve(batches, store.Options{Strict: s.strict}, s.log)
	report.Decode = decodeErrs
	if err != nil {
		return report, fmt.Errorf("open session: %w", err)
	}
	s.store = st

	metrics.RecordsLoadedTotal.WithLabelValues("user").Add(float64(report.Users))
	metrics.RecordsLoadedTotal.WithLabelValues("review").Add(float64(report.Reviews))
	metrics.RecordsLoadedTotal.WithLabelValues("posting").Add(float64(report.Postings))
	for _, d := range report.Dangling {
		metrics.RecordsDroppedTotal.WithLabelValues(d.TargetKind, "dangling").Inc()
	}
	for range report.Errors {
		metrics.RecordsDroppedTotal.WithLabelValues("unknown", "conflict").Inc()
	}
	s.publishStats()

	if !report.Clean() {
		s.log.Warn().
			Int("decode_errors", len(report.Decode)).
			Int("dangling", len(report.Dangling)).
			Int("conflicts", len(report.Errors)).
			Msg("session opened with partial data")
	}
	return report, nil
}

// Store exposes the live store. Nil until Open succeeds.
func (s *Session) Store() *store.Store {
	return s.store
}

// Close flattens the store back to records and persists the whole set.
func (s *Session) Close(ctx context.Context) error {
	if s.store == nil {
		return ErrNotOpen
	}
	if err := s.writer.Write(ctx, s.store.Snapshot()); err != nil {
		return fmt.Errorf("close session: %w", err)
	}
	metrics.SavesTotal.Inc()
	s.publishStats()
	s.log.Info().Msg("session closed")
	return nil
}

// Authenticate matches username and password exactly, case-sensitively.
// Every failure looks the same to the caller: a wrong username, a wrong
// password and a removed account all come back as ErrNotFound, so nothing
// leaks about which field was wrong.
func (s *Session) Authenticate(username, password string) (*domain.User, error) {
	if s.store == nil {
		return nil, ErrNotOpen
	}
	u, err := s.store.UserByUsername(username)
	if err != nil || u.Removed || u.Password != password {
		metrics.AuthAttemptsTotal.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("authenticate %q: %w", username, domain.ErrNotFound)
	}
	metrics.AuthAttemptsTotal.WithLabelValues("ok").Inc()
	return u, nil
}

func (s *Session) publishStats() {
	st := s.store.Stats()
	metrics.StoreEntities.WithLabelValues("student").Set(float64(st.Students))
	metrics.StoreEntities.WithLabelValues("employer").Set(float64(st.Employers))
	metrics.StoreEntities.WithLabelValues("professor").Set(float64(st.Professors))
	metrics.StoreEntities.WithLabelValues("admin").Set(float64(st.Admins))
	metrics.StoreEntities.WithLabelValues("review").Set(float64(st.Reviews))
	metrics.StoreEntities.WithLabelValues("posting").Set(float64(st.Postings))
}
