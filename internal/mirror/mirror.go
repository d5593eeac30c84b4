// Package mirror pushes a copy of the planner state to a per-user remote
// document. Mirroring is strictly best effort: local storage stays the source
// of truth, pushes are fire-and-forget, and failures are logged but never
// retried or surfaced.
package mirror

import (
	"context"

	"github.com/eugene-medvedev/Tomorrow-Planner/internal/model"
)

// Mirror uploads the full state tree for one user.
type Mirror interface {
	Push(ctx context.Context, userID string, state *model.State) error
}

// Nop is the mirror used when no signed-in session is configured.
type Nop struct{}

func (Nop) Push(context.Context, string, *model.State) error { return nil }
