package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	firestore "google.golang.org/api/firestore/v1"
	"google.golang.org/api/option"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

const datastoreScope = "https://www.googleapis.com/auth/datastore"

// FirestoreMirror upserts the serialized state into
// projects/{project}/databases/(default)/documents/users/{userID}. The update
// mask limits the write to the state field, so the patch behaves like a
// merge-style set and creates the document when it does not exist yet.
type FirestoreMirror struct {
	svc       *firestore.Service
	projectID string
}

// NewFirestoreMirror builds a mirror for the given project. When tokenFile is
// non-empty it must hold a cached oauth2 token in JSON form; otherwise
// application default credentials are used.
func NewFirestoreMirror(ctx context.Context, projectID, tokenFile string) (*FirestoreMirror, error) {
	if projectID == "" {
		return nil, fmt.Errorf("mirror: project id is required")
	}
	ts, err := tokenSource(ctx, tokenFile)
	if err != nil {
		return nil, err
	}
	svc, err := firestore.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("mirror: create firestore service: %w", err)
	}
	return &FirestoreMirror{svc: svc, projectID: projectID}, nil
}

func tokenSource(ctx context.Context, tokenFile string) (oauth2.TokenSource, error) {
	if tokenFile == "" {
		ts, err := google.DefaultTokenSource(ctx, datastoreScope)
		if err != nil {
			return nil, fmt.Errorf("mirror: default credentials: %w", err)
		}
		return ts, nil
	}
	raw, err := os.ReadFile(tokenFile)
	if err != nil {
		return nil, fmt.Errorf("mirror: read token file: %w", err)
	}
	tok := &oauth2.Token{}
	if err := json.Unmarshal(raw, tok); err != nil {
		return nil, fmt.Errorf("mirror: decode token file: %w", err)
	}
	return oauth2.StaticTokenSource(tok), nil
}

func (m *FirestoreMirror) Push(ctx context.Context, userID string, state *model.State) error {
	if userID == "" {
		return fmt.Errorf("mirror: user id is required")
	}
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("mirror: marshal state: %w", err)
	}
	name := fmt.Sprintf("projects/%s/databases/(default)/documents/users/%s", m.projectID, userID)
	doc := &firestore.Document{
		Fields: map[string]firestore.Value{
			"state": {StringValue: string(payload)},
		},
	}
	_, err = m.svc.Projects.Databases.Documents.
		Patch(name, doc).
		UpdateMaskFieldPaths("state").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("mirror: push state for %s: %w", userID, err)
	}
	return nil
}
