package hierarchy

import (
	"context"

	"github.com/oklog/ulid/v2"
)

type Repository interface {
	GetTree(ctx context.Context) ([]*AccountType, error)
	GetSubcategoryByID(ctx context.Context, subcategoryID ulid.ULID) (*Subcategory, error)
	GetSubcategoryPath(ctx context.Context, subcategoryID ulid.ULID) (*SubcategoryPath, error)
}
