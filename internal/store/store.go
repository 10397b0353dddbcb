package store

import (
	"context"

	"workforce/internal/analytics"
)

// Source supplies a consistent snapshot of the five input tables. The
// pipeline never writes back; implementations only need read access.
type Source interface {
	Load(ctx context.Context) (analytics.Snapshot, error)
}
