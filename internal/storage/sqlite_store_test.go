package storage

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "planner-test.db")
	store, err := OpenSQLite(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestLoadEmptyStoreReturnsNotFound(t *testing.T) {
	store := setupStore(t)
	if _, err := store.Load(context.Background()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	state := model.NewState()
	state.Theme = "dark"
	state.LastVisitDateKey = "2026-03-07"
	state.Profile = model.Profile{Sex: model.SexFemale, Age: 28, WeightLbs: 140, HeightIn: 65}
	day := state.Day("2026-03-07")
	day.AddCustomTask("call mom")
	day.SetCompleted("call mom", true)
	day.Notes = "a good day"
	day.Exercise.Intensity = 7
	state.ScheduleFutureTask("2026-03-12", "renew passport")

	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Theme != "dark" || got.LastVisitDateKey != "2026-03-07" {
		t.Fatalf("unexpected state: %+v", got)
	}
	if got.Profile.Age != 28 || got.Profile.Sex != model.SexFemale {
		t.Fatalf("unexpected profile: %+v", got.Profile)
	}
	loadedDay, ok := got.Days["2026-03-07"]
	if !ok {
		t.Fatal("day record missing after round trip")
	}
	if !loadedDay.Completed["call mom"] || loadedDay.Notes != "a good day" {
		t.Fatalf("unexpected day record: %+v", loadedDay)
	}
	if loadedDay.Exercise.Intensity != 7 {
		t.Fatalf("unexpected exercise: %+v", loadedDay.Exercise)
	}
	if len(got.FutureTasks["2026-03-12"]) != 1 {
		t.Fatalf("unexpected future tasks: %+v", got.FutureTasks)
	}
}

func TestSaveOverwritesWholesale(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	first := model.NewState()
	first.Day("2026-03-01").AddCustomTask("old task")
	if err := store.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}

	second := model.NewState()
	second.Theme = "dark"
	if err := store.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Theme != "dark" {
		t.Fatalf("expected latest state, got: %+v", got)
	}
	if _, ok := got.Days["2026-03-01"]; ok {
		t.Fatal("old state should have been replaced, not merged")
	}
}

func TestLoadMalformedPayloadFallsBackToDefaults(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)`,
		StateKey, "{not json", "2026-03-07T00:00:00Z"); err != nil {
		t.Fatalf("seed malformed payload: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("malformed payload must recover, got: %v", err)
	}
	if len(got.Goals) != 3 {
		t.Fatalf("expected default goal catalog, got %d goals", len(got.Goals))
	}
}

func TestLoadRunsMigration(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	legacy := `{"days":{"2025-11-02":{"exercise":{"type":"run"},"diet":{}}}}`
	if _, err := store.db.ExecContext(ctx,
		`INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)`,
		StateKey, legacy, "2025-11-02T00:00:00Z"); err != nil {
		t.Fatalf("seed legacy payload: %v", err)
	}

	got, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	day := got.Days["2025-11-02"]
	if day == nil || day.Exercise.Intensity != 5 || day.Exercise.DurationMinutes != 60 {
		t.Fatalf("legacy record not migrated: %+v", day)
	}
	if got.Version != model.StateVersion {
		t.Fatalf("expected migrated version, got %d", got.Version)
	}
}
