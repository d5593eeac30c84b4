package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

const sqliteTimeLayout = time.RFC3339Nano

// SQLiteStore keeps the serialized state in a one-row key-value table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) (*SQLiteStore, error) {
	if db == nil {
		return nil, errors.New("storage: nil db")
	}
	return &SQLiteStore{db: db}, nil
}

// OpenSQLite opens (or creates) the database at path and applies migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := MigrateUp(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	store, err := NewSQLiteStore(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads the state tree. ErrNotFound when nothing was ever saved; a
// malformed payload is not an error to the caller — it is logged and the
// default state is returned so the planner always starts.
func (s *SQLiteStore) Load(ctx context.Context) (*model.State, error) {
	row := s.db.QueryRowContext(ctx, `SELECT value FROM app_state WHERE key = ?`, StateKey)
	var raw string
	if err := row.Scan(&raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	state := model.NewState()
	if err := json.Unmarshal([]byte(raw), state); err != nil {
		log.Printf("storage: discarding malformed state: %v", err)
		return model.NewState(), nil
	}
	state.Migrate()
	return state, nil
}

// Save overwrites the whole state tree under StateKey.
func (s *SQLiteStore) Save(ctx context.Context, state *model.State) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_state (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		StateKey, string(payload), time.Now().UTC().Format(sqliteTimeLayout),
	)
	return err
}
