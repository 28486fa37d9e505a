package evaluation

import (
	"context"
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// BalanceReader is the slice of the transaction store the aggregator needs
// for stock components: a cumulative signed sum through a cutoff date.
type BalanceReader interface {
	BalanceAsOf(ctx context.Context, userID, subcategoryID ulid.ULID, asOf time.Time) (decimal.Decimal, error)
}

// Aggregator turns a ratio's component list into side totals. Stock
// components (asset, liability, equity) aggregate as running balances
// through the window end; a balance is cumulative from account inception,
// so the window start is deliberately ignored for them. Flow components
// (income, expense) sum only transactions inside the window.
type Aggregator struct {
	Balances BalanceReader
}

func NewAggregator(balances BalanceReader) *Aggregator {
	return &Aggregator{Balances: balances}
}

// SideTotal computes Σ sign·aggregate(subcategory) over the components of
// one side. A component whose subcategory has no matching transactions
// contributes zero.
func (a *Aggregator) SideTotal(
	ctx context.Context,
	userID ulid.ULID,
	components []*ratio.Component,
	side ratio.Side,
	window Window,
	windowTxs []*transaction.Transaction,
) (decimal.Decimal, error) {
	total := decimal.Zero

	for _, comp := range components {
		if comp.Side != side {
			continue
		}

		var subtotal decimal.Decimal
		var err error

		switch hierarchy.NatureOf(comp.AccountTypeName) {
		case hierarchy.NatureStock:
			subtotal, err = a.Balances.BalanceAsOf(ctx, userID, comp.SubcategoryId, window.End)
			if err != nil {
				return decimal.Zero, err
			}
		default:
			subtotal = sumInWindow(windowTxs, comp.SubcategoryId, window)
		}

		total = total.Add(subtotal.Mul(decimal.NewFromInt(int64(comp.Sign))))
	}

	return total, nil
}

// SubcategoryAggregate aggregates a single subcategory by nature, with the
// same stock/flow semantics SideTotal applies per component. The breakdown
// projection reuses it; ratio math never consumes breakdown output.
func (a *Aggregator) SubcategoryAggregate(
	ctx context.Context,
	userID, subcategoryID ulid.ULID,
	nature hierarchy.Nature,
	window Window,
	windowTxs []*transaction.Transaction,
) (decimal.Decimal, error) {
	if nature == hierarchy.NatureStock {
		return a.Balances.BalanceAsOf(ctx, userID, subcategoryID, window.End)
	}
	return sumInWindow(windowTxs, subcategoryID, window), nil
}

func sumInWindow(txs []*transaction.Transaction, subcategoryID ulid.ULID, window Window) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		if tx.SubcategoryId != subcategoryID {
			continue
		}
		if !window.Contains(tx.Date) {
			continue
		}
		total = total.Add(tx.Amount)
	}
	return total
}
