// Package fallback routes record-store calls to the document database when
// it is reachable and to the local file store otherwise. Availability is
// probed once at startup; a healthy primary that fails mid-call degrades
// that one call to the secondary instead of failing the request, which makes
// the file store authoritative for anything written on that path.
package fallback

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/repository"
)

type Store[T repository.Record] struct {
	primary   repository.Store[T] // nil when the startup probe failed
	secondary repository.Store[T]
	logger    *logrus.Logger
}

// New builds the coordinator. Pass a nil primary to run degraded for the
// lifetime of the process.
func New[T repository.Record](primary, secondary repository.Store[T], logger *logrus.Logger) *Store[T] {
	return &Store[T]{primary: primary, secondary: secondary, logger: logger}
}

// Degraded reports whether every call goes straight to the file store.
func (s *Store[T]) Degraded() bool { return s.primary == nil }

// domainOutcome distinguishes absent-record results from infrastructure
// failures; only the latter trigger the secondary.
func domainOutcome(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

func (s *Store[T]) fellBack(op string, err error) {
	if s.logger != nil {
		s.logger.WithError(err).WithField("op", op).Warn("primary backend failed, retrying on file store")
	}
}

func secondaryErr(err error) error {
	if err == nil || domainOutcome(err) {
		return err
	}
	return fmt.Errorf("%w: %s", repository.ErrBackendUnavailable, err)
}

func (s *Store[T]) Put(ctx context.Context, rec T) error {
	if s.primary != nil {
		err := s.primary.Put(ctx, rec)
		if err == nil {
			return nil
		}
		s.fellBack("put", err)
	}
	return secondaryErr(s.secondary.Put(ctx, rec))
}

func (s *Store[T]) GetByID(ctx context.Context, id string) (T, error) {
	if s.primary != nil {
		rec, err := s.primary.GetByID(ctx, id)
		if err == nil || domainOutcome(err) {
			return rec, err
		}
		s.fellBack("get_by_id", err)
	}
	rec, err := s.secondary.GetByID(ctx, id)
	return rec, secondaryErr(err)
}

func (s *Store[T]) FindOneBy(ctx context.Context, field, value string) (T, error) {
	if s.primary != nil {
		rec, err := s.primary.FindOneBy(ctx, field, value)
		if err == nil || domainOutcome(err) {
			return rec, err
		}
		s.fellBack("find_one_by", err)
	}
	rec, err := s.secondary.FindOneBy(ctx, field, value)
	return rec, secondaryErr(err)
}

func (s *Store[T]) GetAll(ctx context.Context) (map[string]T, error) {
	if s.primary != nil {
		recs, err := s.primary.GetAll(ctx)
		if err == nil {
			return recs, nil
		}
		s.fellBack("get_all", err)
	}
	recs, err := s.secondary.GetAll(ctx)
	return recs, secondaryErr(err)
}

var _ repository.Store[repository.Record] = (*Store[repository.Record])(nil)
