package mirror

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

func TestNopPush(t *testing.T) {
	if err := (Nop{}).Push(context.Background(), "anyone", model.NewState()); err != nil {
		t.Fatalf("nop push should never fail: %v", err)
	}
}

func TestTokenSourceFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	payload := `{"access_token":"abc123","token_type":"Bearer"}`
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write token file: %v", err)
	}

	ts, err := tokenSource(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	tok, err := ts.Token()
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	if tok.AccessToken != "abc123" {
		t.Fatalf("unexpected access token: %q", tok.AccessToken)
	}
}

func TestTokenSourceRejectsMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatalf("write token file: %v", err)
	}
	if _, err := tokenSource(context.Background(), path); err == nil {
		t.Fatal("expected error for malformed token file")
	}
}

func TestNewFirestoreMirrorRequiresProject(t *testing.T) {
	if _, err := NewFirestoreMirror(context.Background(), "", ""); err == nil {
		t.Fatal("expected error for missing project id")
	}
}
