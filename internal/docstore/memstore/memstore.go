// Package memstore keeps documents in process memory. It backs dry runs
// of the seed command and the loader tests.
package memstore

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/newbeeR2020/lockerroom_seed/internal/docstore"
)

// Op describes a write about to be applied.
type Op struct {
	Kind       string // "set" or "add"
	Collection string
	Key        string
}

// Store is an in-memory docstore.Store.
type Store struct {
	mu     sync.Mutex
	now    func() time.Time
	newKey func() string
	failOn func(Op) error
	ops    []Op
	data   map[string]map[string]docstore.Document
}

// Option configures a Store.
type Option func(*Store)

// WithClock sets the clock used to resolve server timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithKeyFunc sets the generator for keys assigned by Add.
func WithKeyFunc(fn func() string) Option {
	return func(s *Store) { s.newKey = fn }
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		now:    time.Now,
		newKey: uuid.NewString,
		data:   make(map[string]map[string]docstore.Document),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FailOn installs a hook consulted before every write. A non-nil error
// aborts that write and is returned to the caller.
func (s *Store) FailOn(fn func(Op) error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failOn = fn
}

func (s *Store) Set(ctx context.Context, collection, key string, doc docstore.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if key == "" {
		return fmt.Errorf("set %s: key is required", collection)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	op := Op{Kind: "set", Collection: collection, Key: key}
	if err := s.record(op); err != nil {
		return err
	}
	s.put(collection, key, doc)
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	op := Op{Kind: "add", Collection: collection}
	if err := s.record(op); err != nil {
		return "", err
	}
	key := s.newKey()
	if _, taken := s.data[collection][key]; taken {
		return "", fmt.Errorf("add %s: generated key %q already exists", collection, key)
	}
	s.put(collection, key, doc)
	return key, nil
}

func (s *Store) record(op Op) error {
	s.ops = append(s.ops, op)
	if s.failOn != nil {
		return s.failOn(op)
	}
	return nil
}

func (s *Store) put(collection, key string, doc docstore.Document) {
	if s.data[collection] == nil {
		s.data[collection] = make(map[string]docstore.Document)
	}
	s.data[collection][key] = docstore.Resolve(doc, docstore.Resolver(s.now()))
}

// Get returns a copy of the stored document and whether it exists.
func (s *Store) Get(collection, key string) (docstore.Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	doc, ok := s.data[collection][key]
	if !ok {
		return nil, false
	}
	return docstore.Clone(doc), true
}

// Count returns the number of documents in collection.
func (s *Store) Count(collection string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data[collection])
}

// Keys returns the keys in collection, sorted.
func (s *Store) Keys(collection string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.data[collection]))
	for k := range s.data[collection] {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Ops returns every attempted write in order, including failed ones.
func (s *Store) Ops() []Op {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Op(nil), s.ops...)
}
