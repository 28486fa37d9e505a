package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Transaction is one signed ledger entry owned by a single user and linked
// to exactly one subcategory.
type Transaction struct {
	Id            ulid.ULID       `json:"id"`
	UserId        ulid.ULID       `json:"userId"`
	SubcategoryId ulid.ULID       `json:"subcategoryId"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	IsBookmarked  bool            `json:"isBookmarked"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
	DeletedAt     *time.Time      `json:"-"`

	// Denormalized hierarchy chain, populated by joined reads.
	SubcategoryName string `json:"subcategoryName,omitempty"`
	CategoryName    string `json:"categoryName,omitempty"`
	AccountTypeName string `json:"accountTypeName,omitempty"`
}

// Filters narrows listing queries. Nil fields are ignored.
type Filters struct {
	SubcategoryId *ulid.ULID
	DateFrom      *time.Time
	DateTo        *time.Time
	Bookmarked    *bool
	Search        *string
}
