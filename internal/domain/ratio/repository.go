package ratio

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	// GetAllActive returns non-deleted ratios, each with its non-deleted
	// components joined to an active subcategory → category → account type
	// chain. Components whose chain is deleted are omitted.
	GetAllActive(ctx context.Context) ([]*Ratio, error)

	GetByID(ctx context.Context, ratioID ulid.ULID) (*Ratio, error)
}
