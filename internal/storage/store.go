// Package storage persists the planner state. The whole state tree is kept
// under a single key and overwritten wholesale on every save; there is no
// incremental persistence.
package storage

import (
	"context"
	"errors"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

// ErrNotFound is returned by Load when no state has been saved yet.
var ErrNotFound = errors.New("storage: not found")

// StateKey is the single key the serialized state lives under.
const StateKey = "planner_v11"

// StateStore loads and saves the entire planner state.
type StateStore interface {
	Load(ctx context.Context) (*model.State, error)
	Save(ctx context.Context, state *model.State) error
	Close() error
}
