// Package seed writes the fixture catalog into a document store: every
// user first, keyed by uid, then every review under a store-assigned key.
package seed

import (
	"context"
	"fmt"

	"github.com/newbeeR2020/lockerroom_seed/internal/docstore"
	"github.com/newbeeR2020/lockerroom_seed/internal/fixtures"
	"github.com/rs/zerolog"
)

// State is the loader's progress. It only moves forward.
type State int

const (
	NotStarted State = iota
	WritingUsers
	WritingReviews
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case NotStarted:
		return "not-started"
	case WritingUsers:
		return "writing-users"
	case WritingReviews:
		return "writing-reviews"
	case Done:
		return "done"
	case Failed:
		return "failed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Result records how far a run got.
type Result struct {
	State     State
	UserIDs   []string
	ReviewIDs []string
}

// Loader writes fixtures one record at a time and stops at the first
// failure. Nothing already written is rolled back.
type Loader struct {
	store docstore.Store
	log   zerolog.Logger
}

func New(store docstore.Store, log zerolog.Logger) *Loader {
	return &Loader{store: store, log: log}
}

// Run writes users then reviews. Users are upserted, so re-running is
// safe for them; reviews are inserted, so a re-run duplicates them.
func (l *Loader) Run(ctx context.Context, users []fixtures.User, reviews []fixtures.Review) (Result, error) {
	res := Result{State: NotStarted}
	l.log.Info().Int("users", len(users)).Int("reviews", len(reviews)).Msg("initializing test data")

	res.State = WritingUsers
	for _, u := range users {
		if err := l.store.Set(ctx, docstore.UsersCollection, u.UID, u.Document()); err != nil {
			res.State = Failed
			return res, fmt.Errorf("create user %q: %w", u.UID, err)
		}
		res.UserIDs = append(res.UserIDs, u.UID)
		l.log.Info().Str("uid", u.UID).Msgf("✅ created user: %s", u.DisplayName)
	}

	res.State = WritingReviews
	for i, r := range reviews {
		id, err := l.store.Add(ctx, docstore.ReviewsCollection, r.Document())
		if err != nil {
			res.State = Failed
			return res, fmt.Errorf("create review %d %q: %w", i, r.Title, err)
		}
		res.ReviewIDs = append(res.ReviewIDs, id)
		l.log.Info().Str("id", id).Str("author", r.AuthorID).Msgf("✅ created review: %s (ID: %s)", r.Title, id)
	}

	res.State = Done
	l.log.Info().
		Int("users", len(res.UserIDs)).
		Int("reviews", len(res.ReviewIDs)).
		Msg("🎉 test data initialization complete")
	l.log.Warn().Msg("⚠️  remember to enable Authentication providers for the project")
	return res, nil
}
