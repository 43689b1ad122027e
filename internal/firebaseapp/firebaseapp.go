// Package firebaseapp builds the Firebase Admin app once per process. The
// returned app is passed to whatever needs Auth or Firestore.
package firebaseapp

import (
	"context"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// Settings identify the project and, optionally, a service account key.
// Without a key file the SDK falls back to application default credentials.
type Settings struct {
	ProjectID       string
	CredentialsFile string
}

func (s Settings) clientOptions() []option.ClientOption {
	if s.CredentialsFile == "" {
		return nil
	}
	return []option.ClientOption{option.WithCredentialsFile(s.CredentialsFile)}
}

// New initializes the Firebase app for the configured project.
func New(ctx context.Context, s Settings) (*firebase.App, error) {
	if s.ProjectID == "" {
		return nil, errors.New("firebase project id is required")
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: s.ProjectID}, s.clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}
	return app, nil
}
