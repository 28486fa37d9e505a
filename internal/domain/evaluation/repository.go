package evaluation

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	// Upsert writes one snapshot keyed by (userId, ratioId, startDate,
	// endDate) as a single atomic insert-or-update, refreshing value,
	// status and calculatedAt on conflict. Concurrent recomputations of
	// the same window are last-writer-wins, never duplicate rows.
	Upsert(ctx context.Context, result *Result) error

	// FindHistory lists snapshots ordered by startDate desc, calculatedAt
	// desc. Nil range bounds are ignored.
	FindHistory(ctx context.Context, userID ulid.ULID, from, to *time.Time, pagination *pkg.PaginationParams) ([]*Result, int64, error)

	FindByIDAndUser(ctx context.Context, id, userID ulid.ULID) (*Result, error)
}
