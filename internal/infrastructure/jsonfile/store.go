package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/PRASANNAPATIL12/2.31weddingcard/internal/domain/repository"
)

// Store keeps one collection in a single JSON file, an object keyed by
// record id. Every write rewrites the whole file. A missing or unreadable
// file loads as an empty collection. The read-modify-write cycle is guarded
// by a mutex so concurrent writers cannot drop each other's records.
type Store[T repository.Record] struct {
	path   string
	mu     sync.Mutex
	logger *logrus.Logger
}

func NewStore[T repository.Record](path string, logger *logrus.Logger) *Store[T] {
	return &Store[T]{path: path, logger: logger}
}

func (s *Store[T]) load() map[string]T {
	out := make(map[string]T)
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) && s.logger != nil {
			s.logger.WithError(err).WithField("path", s.path).Warn("file store unreadable, treating as empty")
		}
		return out
	}
	if err := json.Unmarshal(data, &out); err != nil {
		if s.logger != nil {
			s.logger.WithError(err).WithField("path", s.path).Warn("file store corrupt, treating as empty")
		}
		return make(map[string]T)
	}
	return out
}

func (s *Store[T]) save(records map[string]T) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

func (s *Store[T]) Put(ctx context.Context, rec T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	records := s.load()
	records[rec.RecordID()] = rec
	return s.save(records)
}

func (s *Store[T]) GetByID(ctx context.Context, id string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.load()[id]
	if !ok {
		return rec, repository.ErrNotFound
	}
	return rec, nil
}

// FindOneBy scans the collection in map order, which Go randomizes: with
// duplicate values the returned match is not stable between calls.
func (s *Store[T]) FindOneBy(ctx context.Context, field, value string) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var zero T
	for _, rec := range s.load() {
		if v, ok := rec.FieldValue(field); ok && v == value {
			return rec, nil
		}
	}
	return zero, repository.ErrNotFound
}

func (s *Store[T]) GetAll(ctx context.Context) (map[string]T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}
