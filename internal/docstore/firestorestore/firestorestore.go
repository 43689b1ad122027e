// Package firestorestore writes documents to Cloud Firestore.
package firestorestore

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/newbeeR2020/lockerroom_seed/internal/docstore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Store is a docstore.Store backed by a Firestore client.
type Store struct {
	Client *firestore.Client
}

// New opens the Firestore client of an already initialized Firebase app.
func New(ctx context.Context, app *firebase.App) (*Store, error) {
	c, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return &Store{Client: c}, nil
}

// Close closes the Firestore client.
func (s *Store) Close() error {
	if s == nil || s.Client == nil {
		return nil
	}
	return s.Client.Close()
}

// fields maps server timestamps to the Firestore sentinel so the commit
// time comes from Firestore, not from this machine.
func fields(doc docstore.Document) map[string]any {
	return docstore.Resolve(doc, func(ts docstore.Timestamp) any {
		if ts.IsServerAssigned() {
			return firestore.ServerTimestamp
		}
		return ts.Value()
	})
}

func (s *Store) Set(ctx context.Context, collection, key string, doc docstore.Document) error {
	if key == "" {
		return fmt.Errorf("set %s: key is required", collection)
	}
	if _, err := s.Client.Collection(collection).Doc(key).Set(ctx, fields(doc)); err != nil {
		return fmt.Errorf("set %s/%s: %w", collection, key, err)
	}
	return nil
}

func (s *Store) Add(ctx context.Context, collection string, doc docstore.Document) (string, error) {
	ref, _, err := s.Client.Collection(collection).Add(ctx, fields(doc))
	if err != nil {
		return "", fmt.Errorf("add %s: %w", collection, err)
	}
	return ref.ID, nil
}

// Get decodes a stored document into dst with DataTo. DataTo cannot fill
// docstore.Timestamp, so dst needs time.Time fields for createdAt and
// updatedAt; the fixture types skip them.
func (s *Store) Get(ctx context.Context, collection, key string, dst any) error {
	snap, err := s.Client.Collection(collection).Doc(key).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return docstore.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("get %s/%s: %w", collection, key, err)
	}
	return snap.DataTo(dst)
}

// Count walks the collection and returns how many documents it holds.
func (s *Store) Count(ctx context.Context, collection string) (int, error) {
	iter := s.Client.Collection(collection).Documents(ctx)
	defer iter.Stop()
	n := 0
	for {
		_, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return n, nil
		}
		if err != nil {
			return 0, fmt.Errorf("count %s: %w", collection, err)
		}
		n++
	}
}
