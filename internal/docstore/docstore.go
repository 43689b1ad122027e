// Package docstore defines the document-store contract the fixture loader
// writes through, independent of the backing database.
package docstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Collection names used by the fixtures.
const (
	UsersCollection   = "users"
	ReviewsCollection = "reviews"
)

// ErrNotFound is returned when reading back a document that does not exist.
var ErrNotFound = errors.New("document not found")

// Document is a schema-free record. Values may be scalars, Timestamps,
// nested Documents or map[string]any, and slices.
type Document map[string]any

// Store writes documents into named collections.
type Store interface {
	// Set creates or overwrites the document stored under key.
	Set(ctx context.Context, collection, key string, doc Document) error
	// Add inserts doc under a key chosen by the store and returns that key.
	Add(ctx context.Context, collection string, doc Document) (string, error)
}

// Timestamp is either a value supplied by the caller or a marker asking
// the store to fill in its own clock at commit time.
type Timestamp struct {
	server bool
	value  time.Time
}

// ServerTimestamp returns the server-assigned variant.
func ServerTimestamp() Timestamp {
	return Timestamp{server: true}
}

// ClientTimestamp returns the caller-provided variant.
func ClientTimestamp(t time.Time) Timestamp {
	return Timestamp{value: t}
}

// IsServerAssigned reports whether the store must resolve the value.
func (t Timestamp) IsServerAssigned() bool {
	return t.server
}

// Value returns the caller-provided time. It is zero for server timestamps.
func (t Timestamp) Value() time.Time {
	return t.value
}

func (t Timestamp) String() string {
	if t.server {
		return "ServerTimestamp"
	}
	return t.value.Format(time.RFC3339Nano)
}

// MarshalJSON renders server timestamps as the string "serverTimestamp"
// and caller-provided ones as RFC 3339 times.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.server {
		return json.Marshal("serverTimestamp")
	}
	return json.Marshal(t.value)
}

// UnmarshalJSON reverses MarshalJSON. Stored documents carry resolved
// times, which decode as caller-provided timestamps.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	if s == "serverTimestamp" {
		*t = ServerTimestamp()
		return nil
	}
	v, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*t = ClientTimestamp(v)
	return nil
}

// Resolve returns a deep copy of doc with every Timestamp replaced by
// fn(ts). Nested documents, maps and slices are copied, so the caller's
// document is never mutated.
func Resolve(doc Document, fn func(Timestamp) any) Document {
	if doc == nil {
		return nil
	}
	out := make(Document, len(doc))
	for k, v := range doc {
		out[k] = resolveValue(v, fn)
	}
	return out
}

func resolveValue(v any, fn func(Timestamp) any) any {
	switch val := v.(type) {
	case Timestamp:
		return fn(val)
	case Document:
		return map[string]any(Resolve(val, fn))
	case map[string]any:
		return map[string]any(Resolve(Document(val), fn))
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = resolveValue(item, fn)
		}
		return out
	case []string:
		return append([]string{}, val...)
	default:
		return v
	}
}

// Clone deep-copies doc, leaving Timestamps as they are.
func Clone(doc Document) Document {
	return Resolve(doc, func(ts Timestamp) any { return ts })
}

// Resolver returns a Timestamp resolver that uses now for server timestamps.
func Resolver(now time.Time) func(Timestamp) any {
	return func(ts Timestamp) any {
		if ts.IsServerAssigned() {
			return now
		}
		return ts.Value()
	}
}
