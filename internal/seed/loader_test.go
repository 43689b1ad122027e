package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/newbeeR2020/lockerroom_seed/internal/docstore"
	"github.com/newbeeR2020/lockerroom_seed/internal/docstore/memstore"
	"github.com/newbeeR2020/lockerroom_seed/internal/fixtures"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLoader(store docstore.Store) (*Loader, *bytes.Buffer) {
	var buf bytes.Buffer
	return New(store, zerolog.New(&buf)), &buf
}

func TestRunSeedsCatalog(t *testing.T) {
	store := memstore.New()
	loader, logs := newLoader(store)

	res, err := loader.Run(context.Background(), fixtures.Users(), fixtures.Reviews())
	require.NoError(t, err)

	assert.Equal(t, Done, res.State)
	assert.Equal(t, []string{"test_user_1", "test_user_2"}, res.UserIDs)
	require.Len(t, res.ReviewIDs, 3)
	assert.Equal(t, 2, store.Count(docstore.UsersCollection))
	assert.Equal(t, 3, store.Count(docstore.ReviewsCollection))

	var authors []string
	for _, id := range res.ReviewIDs {
		doc, ok := store.Get(docstore.ReviewsCollection, id)
		require.True(t, ok)
		authors = append(authors, doc["authorId"].(string))
	}
	assert.Equal(t, []string{"test_user_1", "test_user_2", "test_user_1"}, authors)

	for _, uid := range res.UserIDs {
		doc, ok := store.Get(docstore.UsersCollection, uid)
		require.True(t, ok)
		assert.Equal(t, uid, doc["uid"])
	}

	assert.Contains(t, logs.String(), "created user: John Doe")
	assert.Contains(t, logs.String(), "created review: Romantic Dinner at The Ivy")
	assert.Contains(t, logs.String(), "test data initialization complete")
	assert.Contains(t, logs.String(), "enable Authentication providers")
}

func TestRunTwiceUsersIdempotentReviewsDuplicated(t *testing.T) {
	store := memstore.New()
	loader, _ := newLoader(store)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := loader.Run(ctx, fixtures.Users(), fixtures.Reviews())
		require.NoError(t, err)
	}

	assert.Equal(t, 2, store.Count(docstore.UsersCollection))
	assert.Equal(t, 6, store.Count(docstore.ReviewsCollection))
}

func TestRunWritesAllUsersBeforeAnyReview(t *testing.T) {
	store := memstore.New()
	loader, _ := newLoader(store)

	_, err := loader.Run(context.Background(), fixtures.Users(), fixtures.Reviews())
	require.NoError(t, err)

	ops := store.Ops()
	require.Len(t, ops, 5)
	for i, op := range ops {
		if i < 2 {
			assert.Equal(t, "set", op.Kind)
			assert.Equal(t, docstore.UsersCollection, op.Collection)
		} else {
			assert.Equal(t, "add", op.Kind)
			assert.Equal(t, docstore.ReviewsCollection, op.Collection)
		}
	}
	assert.Equal(t, "test_user_1", ops[0].Key)
	assert.Equal(t, "test_user_2", ops[1].Key)
}

func TestRunUserFailureStopsBeforeReviews(t *testing.T) {
	store := memstore.New()
	denied := errors.New("permission denied")
	store.FailOn(func(op memstore.Op) error {
		if op.Key == "test_user_2" {
			return denied
		}
		return nil
	})
	loader, logs := newLoader(store)

	res, err := loader.Run(context.Background(), fixtures.Users(), fixtures.Reviews())

	require.ErrorIs(t, err, denied)
	assert.Contains(t, err.Error(), `create user "test_user_2"`)
	assert.Equal(t, Failed, res.State)
	assert.Equal(t, []string{"test_user_1"}, res.UserIDs)
	assert.Empty(t, res.ReviewIDs)
	assert.Equal(t, 1, store.Count(docstore.UsersCollection), "earlier writes are not rolled back")
	assert.Equal(t, 0, store.Count(docstore.ReviewsCollection))
	for _, op := range store.Ops() {
		assert.NotEqual(t, "add", op.Kind, "no review write may be attempted")
	}
	assert.NotContains(t, logs.String(), "initialization complete")
}

func TestRunReviewFailureAbortsRemainingReviews(t *testing.T) {
	store := memstore.New()
	adds := 0
	quota := errors.New("quota exceeded")
	store.FailOn(func(op memstore.Op) error {
		if op.Kind != "add" {
			return nil
		}
		adds++
		if adds == 2 {
			return quota
		}
		return nil
	})
	loader, _ := newLoader(store)

	res, err := loader.Run(context.Background(), fixtures.Users(), fixtures.Reviews())

	require.ErrorIs(t, err, quota)
	assert.Equal(t, Failed, res.State)
	assert.Len(t, res.ReviewIDs, 1)
	assert.Equal(t, 1, store.Count(docstore.ReviewsCollection))
	assert.Len(t, store.Ops(), 4, "third review is never attempted and nothing is retried")
}

func TestRunResolvesServerTimestamps(t *testing.T) {
	start := time.Now()
	store := memstore.New()
	loader, _ := newLoader(store)

	res, err := loader.Run(context.Background(), fixtures.Users(), fixtures.Reviews())
	require.NoError(t, err)

	for i, id := range res.ReviewIDs {
		doc, ok := store.Get(docstore.ReviewsCollection, id)
		require.True(t, ok)

		for _, field := range []string{"createdAt", "updatedAt"} {
			ts, ok := doc[field].(time.Time)
			require.True(t, ok, "%s is %T", field, doc[field])
			assert.False(t, ts.Before(start))
		}

		want := fixtures.Reviews()[i].Document()
		for k, v := range want {
			if k == "createdAt" || k == "updatedAt" {
				continue
			}
			if nested, ok := v.(docstore.Document); ok {
				v = map[string]any(nested)
			}
			assert.Equal(t, v, doc[k], fmt.Sprintf("review %d field %s", i, k))
		}
		assert.Len(t, doc, len(want))
	}
}

func TestRunEmptyCatalog(t *testing.T) {
	store := memstore.New()
	loader, _ := newLoader(store)

	res, err := loader.Run(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Done, res.State)
	assert.Empty(t, store.Ops())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "not-started", NotStarted.String())
	assert.Equal(t, "writing-users", WritingUsers.String())
	assert.Equal(t, "writing-reviews", WritingReviews.String())
	assert.Equal(t, "done", Done.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "state(9)", State(9).String())
}
