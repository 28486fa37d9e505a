package hierarchy

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Account type names as seeded. Code is immutable and referenced by the
// aggregation engine to pick the aggregation mode.
const (
	AccountTypeAsset     = "Aset"
	AccountTypeLiability = "Liabilitas"
	AccountTypeEquity    = "Ekuitas"
	AccountTypeIncome    = "Pemasukan"
	AccountTypeExpense   = "Pengeluaran"
)

// Nature tells how transactions under an account type aggregate: stock
// accounts as running balances up to a cutoff date, flow accounts as sums
// over the evaluation window.
type Nature string

const (
	NatureStock Nature = "STOCK"
	NatureFlow  Nature = "FLOW"
)

// NatureOf maps an account type name to its aggregation nature. Unknown
// names default to flow, which only ever narrows the data considered.
func NatureOf(accountTypeName string) Nature {
	switch accountTypeName {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity:
		return NatureStock
	default:
		return NatureFlow
	}
}

type AccountType struct {
	Id        ulid.ULID  `json:"id"`
	Name      string     `json:"name"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
	DeletedAt *time.Time `json:"-"`

	Categories []*Category `json:"categories,omitempty"`
}

type Category struct {
	Id            ulid.ULID  `json:"id"`
	AccountTypeId ulid.ULID  `json:"accountTypeId"`
	Name          string     `json:"name"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	DeletedAt     *time.Time `json:"-"`

	Subcategories []*Subcategory `json:"subcategories,omitempty"`
}

type Subcategory struct {
	Id         ulid.ULID  `json:"id"`
	CategoryId ulid.ULID  `json:"categoryId"`
	Name       string     `json:"name"`
	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  time.Time  `json:"updatedAt"`
	DeletedAt  *time.Time `json:"-"`
}

// SubcategoryPath is a subcategory resolved with its full ancestry, as the
// aggregation engine consumes it.
type SubcategoryPath struct {
	SubcategoryId   ulid.ULID `json:"subcategoryId"`
	SubcategoryName string    `json:"subcategoryName"`
	CategoryName    string    `json:"categoryName"`
	AccountTypeName string    `json:"accountTypeName"`
}

func (p SubcategoryPath) Nature() Nature {
	return NatureOf(p.AccountTypeName)
}
