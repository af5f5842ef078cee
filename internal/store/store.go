// Package store owns the in-memory transaction collection and its persistence.
// The collection is loaded once at startup and written back in full after
// every mutation.
package store

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"momoapi/internal/allocator"
	apperrors "momoapi/internal/errors"
	"momoapi/internal/index"
	"momoapi/internal/logger"
	"momoapi/internal/models"
)

// DefaultIndexThreshold is the collection size from which FindByID is served
// by the hash index instead of a linear scan.
const DefaultIndexThreshold = 64

// LoadStatus classifies the outcome of Store.Load.
type LoadStatus int

const (
	// LoadOK means the persisted collection was read.
	LoadOK LoadStatus = iota
	// LoadMissing means nothing was persisted yet; the store starts empty.
	LoadMissing
	// LoadReadFailure means the persisted data could not be read or decoded;
	// the store was reset to empty.
	LoadReadFailure
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadReadFailure:
		return "read_failure"
	default:
		return "unknown"
	}
}

// LoadResult reports what Load found.
type LoadResult struct {
	Status LoadStatus
	Count  int
	Err    error
}

// Store is the authoritative transaction collection. A single RWMutex guards
// every read-modify-write together with the save that follows it.
type Store struct {
	mu             sync.RWMutex
	persister      Persister
	log            *zap.SugaredLogger
	records        []models.Transaction
	alloc          *allocator.Allocator
	byID           index.Index
	indexThreshold int
	lastSaveErr    error
}

// Option configures a Store.
type Option func(*Store)

// WithIndexThreshold sets the size from which lookups use the hash index.
// Zero indexes every collection.
func WithIndexThreshold(n int) Option {
	return func(s *Store) {
		if n >= 0 {
			s.indexThreshold = n
		}
	}
}

// WithLogger replaces the store's logger.
func WithLogger(l *zap.SugaredLogger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New creates an empty store backed by p. Call Load to read persisted data.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persister:      p,
		log:            logger.Named("store"),
		alloc:          allocator.New(nil),
		indexThreshold: DefaultIndexThreshold,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one. Read
// failures are logged and reset the collection to empty instead of failing.
func (s *Store) Load() LoadResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	records, err := s.persister.Load()
	var result LoadResult
	switch {
	case err == nil:
		result = LoadResult{Status: LoadOK, Count: len(records)}
	case errors.Is(err, ErrSourceMissing):
		records = nil
		result = LoadResult{Status: LoadMissing}
	default:
		records = nil
		result = LoadResult{Status: LoadReadFailure, Err: err}
	}

	s.records = records
	s.alloc = allocator.New(records)
	s.reindexLocked()

	switch result.Status {
	case LoadReadFailure:
		s.log.Warnw("failed to load transactions, starting empty",
			"source", s.persister.Describe(),
			"error", err,
		)
	default:
		s.log.Infow("transactions loaded",
			"source", s.persister.Describe(),
			"status", result.Status.String(),
			"count", result.Count,
			"next_id", s.alloc.Peek(),
		)
	}
	return result
}

// Save writes the full collection to the persistence target.
func (s *Store) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked()
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Transaction, len(s.records))
	copy(out, s.records)
	return out
}

// Count returns the number of stored transactions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// NextID returns the id the next insert will receive.
func (s *Store) NextID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alloc.Peek()
}

// LastSaveError returns the error of the most recent save, or nil if it succeeded.
func (s *Store) LastSaveError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSaveErr
}

// FindByID returns the transaction with the given id.
func (s *Store) FindByID(id string) (models.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var (
		t  models.Transaction
		ok bool
	)
	if s.byID != nil {
		t, ok = index.Lookup(s.byID, id)
	} else {
		t, ok = index.LinearSearch(s.records, id)
	}
	if !ok {
		return models.Transaction{}, notFound(id)
	}
	return t, nil
}

// Insert allocates the next id and reference, builds the record with them and
// appends it to the collection.
func (s *Store) Insert(build func(id, reference string) models.Transaction) models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, reference := s.alloc.Next()
	for s.containsLocked(id) {
		id, reference = s.alloc.Next()
	}

	t := build(id, reference)
	t.ID = id
	s.records = append(s.records, t)
	s.reindexLocked()
	_ = s.saveLocked()
	return t
}

// Update applies fn to the matching record in place and saves.
func (s *Store) Update(id string, fn func(t *models.Transaction)) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.positionLocked(id)
	if i < 0 {
		return models.Transaction{}, notFound(id)
	}

	fn(&s.records[i])
	s.records[i].ID = id
	s.reindexLocked()
	_ = s.saveLocked()
	return s.records[i], nil
}

// Delete removes the matching record and saves. It returns the removed record.
func (s *Store) Delete(id string) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.positionLocked(id)
	if i < 0 {
		return models.Transaction{}, notFound(id)
	}

	removed := s.records[i]
	s.records = append(s.records[:i], s.records[i+1:]...)
	s.reindexLocked()
	_ = s.saveLocked()
	return removed, nil
}

// saveLocked persists the collection. A failure is logged and remembered;
// the in-memory collection stays authoritative and the write is not retried.
func (s *Store) saveLocked() error {
	err := s.persister.Save(s.records)
	s.lastSaveErr = err
	if err != nil {
		s.log.Errorw("failed to persist transactions",
			"target", s.persister.Describe(),
			"count", len(s.records),
			"error", err,
		)
	}
	return err
}

func (s *Store) reindexLocked() {
	if len(s.records) >= s.indexThreshold {
		s.byID = index.Build(s.records)
		return
	}
	s.byID = nil
}

func (s *Store) positionLocked(id string) int {
	for i := range s.records {
		if s.records[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) containsLocked(id string) bool {
	return s.positionLocked(id) >= 0
}

func notFound(id string) error {
	return apperrors.WithMessage(apperrors.ErrTransactionNotFound, fmt.Sprintf("Transaction %s not found", id))
}
