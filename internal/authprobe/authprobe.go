// Package authprobe checks that Firebase Authentication answers for the
// project by looking up a user id that should not exist.
package authprobe

import (
	"context"
	"errors"

	"firebase.google.com/go/v4/auth"
	"github.com/rs/zerolog"
)

// DefaultKey is the uid looked up by the probe.
const DefaultKey = "test"

// Status strings reported to the operator.
const (
	StatusEnabled       = "Enabled"
	StatusNeedsEnabling = "Needs enabling"
)

// Lookup fetches a user by uid. *auth.Client satisfies it.
type Lookup interface {
	GetUser(ctx context.Context, uid string) (*auth.UserRecord, error)
}

// Result classifies the outcome of one lookup.
type Result int

const (
	// OtherFailure covers every outcome that is not a clean "no such user".
	OtherFailure Result = iota
	// NotFound means the backend answered and enforced identity lookups.
	NotFound
)

func (r Result) String() string {
	if r == NotFound {
		return "not-found"
	}
	return "other-failure"
}

// errUserFound marks a lookup that returned a user for the probe key.
var errUserFound = errors.New("probe key resolved to an existing user")

// Classify maps a lookup error to a Result. A nil error is an
// OtherFailure: only "not found" proves the backend is enabled.
func Classify(err error, isNotFound func(error) bool) Result {
	if err != nil && isNotFound(err) {
		return NotFound
	}
	return OtherFailure
}

// Report is what a probe run found.
type Report struct {
	Key    string
	Result Result
	Status string
	// Ambiguous is set when the lookup unexpectedly found a user.
	Ambiguous bool
	Err       error
}

// Probe performs a single lookup; it never retries and never exits.
type Probe struct {
	Lookup     Lookup
	Key        string
	IsNotFound func(error) bool
	Log        zerolog.Logger
}

// New returns a probe over a Firebase auth client.
func New(client *auth.Client, log zerolog.Logger) *Probe {
	return &Probe{
		Lookup:     client,
		Key:        DefaultKey,
		IsNotFound: auth.IsUserNotFound,
		Log:        log,
	}
}

// Run looks up the probe key once and reports the backend status.
func (p *Probe) Run(ctx context.Context) Report {
	key := p.Key
	if key == "" {
		key = DefaultKey
	}
	isNotFound := p.IsNotFound
	if isNotFound == nil {
		isNotFound = auth.IsUserNotFound
	}

	user, err := p.Lookup.GetUser(ctx, key)
	rep := Report{Key: key, Err: err}
	if err == nil {
		rep.Ambiguous = true
		rep.Err = errUserFound
		uid := ""
		if user != nil && user.UserInfo != nil {
			uid = user.UID
		}
		p.Log.Warn().Str("key", key).Str("uid", uid).Msg("probe key exists; cannot tell whether auth is enabled")
	}

	rep.Result = Classify(err, isNotFound)
	switch rep.Result {
	case NotFound:
		rep.Status = StatusEnabled
		p.Log.Info().Str("key", key).Msg("✓ auth is working (user not found is expected)")
	default:
		rep.Status = StatusNeedsEnabling
		if !rep.Ambiguous {
			p.Log.Error().Err(err).Str("key", key).Msg("✗ auth lookup failed")
		}
	}
	p.Log.Info().Str("status", rep.Status).Msg("auth setup status")
	return rep
}
