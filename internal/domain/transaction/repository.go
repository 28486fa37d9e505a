package transaction

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, transaction *Transaction) error
	Update(ctx context.Context, transaction *Transaction) error
	SoftDelete(ctx context.Context, transactionID, userID ulid.ULID) error
	GetByIDAndUser(ctx context.Context, transactionID, userID ulid.ULID) (*Transaction, error)
	GetAll(ctx context.Context, userID ulid.ULID, filters *Filters, pagination *pkg.PaginationParams) ([]*Transaction, int64, error)

	// GetInWindow returns the user's non-deleted transactions dated within
	// [start, end], each annotated with its subcategory → category →
	// account type chain.
	GetInWindow(ctx context.Context, userID ulid.ULID, start, end time.Time) ([]*Transaction, error)

	// BalanceAsOf sums the signed amounts of the user's non-deleted
	// transactions for one subcategory with date <= asOf.
	BalanceAsOf(ctx context.Context, userID, subcategoryID ulid.ULID, asOf time.Time) (decimal.Decimal, error)

	CountByUser(ctx context.Context, userID ulid.ULID) (int64, error)
}
