package memstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/newbeeR2020/lockerroom_seed/internal/docstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetOverwritesByKey(t *testing.T) {
	s := New()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users", "test_user_1", docstore.Document{"bio": "first"}))
	require.NoError(t, s.Set(ctx, "users", "test_user_1", docstore.Document{"bio": "second"}))

	assert.Equal(t, 1, s.Count("users"))
	doc, ok := s.Get("users", "test_user_1")
	require.True(t, ok)
	assert.Equal(t, "second", doc["bio"])
}

func TestSetRequiresKey(t *testing.T) {
	err := New().Set(context.Background(), "users", "", docstore.Document{})
	assert.Error(t, err)
}

func TestAddGeneratesDistinctKeys(t *testing.T) {
	n := 0
	s := New(WithKeyFunc(func() string {
		n++
		return fmt.Sprintf("review-%d", n)
	}))
	ctx := context.Background()

	k1, err := s.Add(ctx, "reviews", docstore.Document{"title": "a"})
	require.NoError(t, err)
	k2, err := s.Add(ctx, "reviews", docstore.Document{"title": "a"})
	require.NoError(t, err)

	assert.Equal(t, "review-1", k1)
	assert.Equal(t, "review-2", k2)
	assert.Equal(t, 2, s.Count("reviews"))
	assert.Equal(t, []string{"review-1", "review-2"}, s.Keys("reviews"))
}

func TestAddRejectsKeyCollision(t *testing.T) {
	s := New(WithKeyFunc(func() string { return "same" }))
	ctx := context.Background()

	_, err := s.Add(ctx, "reviews", docstore.Document{})
	require.NoError(t, err)
	_, err = s.Add(ctx, "reviews", docstore.Document{})
	assert.Error(t, err)
}

func TestServerTimestampsUseStoreClock(t *testing.T) {
	at := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	s := New(WithClock(func() time.Time { return at }))

	require.NoError(t, s.Set(context.Background(), "users", "u", docstore.Document{
		"createdAt": docstore.ServerTimestamp(),
		"location":  docstore.Document{"city": "New York"},
	}))

	doc, ok := s.Get("users", "u")
	require.True(t, ok)
	assert.Equal(t, at, doc["createdAt"])
	assert.Equal(t, map[string]any{"city": "New York"}, doc["location"])
}

func TestGetReturnsCopy(t *testing.T) {
	s := New()
	require.NoError(t, s.Set(context.Background(), "users", "u", docstore.Document{"bio": "x"}))

	doc, _ := s.Get("users", "u")
	doc["bio"] = "changed"

	again, _ := s.Get("users", "u")
	assert.Equal(t, "x", again["bio"])
}

func TestFailOnAbortsWrite(t *testing.T) {
	s := New()
	boom := errors.New("permission denied")
	s.FailOn(func(op Op) error {
		if op.Kind == "add" {
			return boom
		}
		return nil
	})
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users", "u", docstore.Document{}))
	_, err := s.Add(ctx, "reviews", docstore.Document{})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, s.Count("reviews"))
	assert.Equal(t, []Op{
		{Kind: "set", Collection: "users", Key: "u"},
		{Kind: "add", Collection: "reviews"},
	}, s.Ops())
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New()
	assert.ErrorIs(t, s.Set(ctx, "users", "u", docstore.Document{}), context.Canceled)
	_, err := s.Add(ctx, "reviews", docstore.Document{})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Ops())
}
