package ratio

import (
	"time"

	"github.com/oklog/ulid/v2"
)

// Stable ratio codes. Codes are immutable display/lookup labels; behavior
// differences hang off Policy, not off the code string.
const (
	CodeLiquidity               = "LIQUIDITY_RATIO"
	CodeSaving                  = "SAVING_RATIO"
	CodeDebtService             = "DEBT_SERVICE_RATIO"
	CodeDebtToAsset             = "DEBT_TO_ASSET_RATIO"
	CodeCurrentAssetToNetWorth  = "CURRENT_ASSET_TO_NET_WORTH_RATIO"
	CodeInvestmentToNetWorth    = "INVESTMENT_TO_NET_WORTH_RATIO"
	CodeSolvency                = "SOLVENCY_RATIO"
)

// Policy is the closed set of calculation/classification variants. It is
// stored on each ratio record and switched exhaustively by the calculator
// and the classifier.
type Policy string

const (
	// PolicyStandard divides plainly and judges against the configured
	// bounds with their inclusivity flags.
	PolicyStandard Policy = "STANDARD"

	// PolicyLiquidity handles the zero-denominator case specially (0/0 is
	// neutral zero, n/0 with n > 0 is unbounded liquidity) and classifies
	// against the lower bound inclusively.
	PolicyLiquidity Policy = "LIQUIDITY_ZERO_DENOMINATOR"

	// PolicySolvency requires a strictly positive margin over the lower
	// bound; zero net worth is not solvent.
	PolicySolvency Policy = "SOLVENCY_STRICT_POSITIVE"
)

type Side string

const (
	SideNumerator   Side = "NUMERATOR"
	SideDenominator Side = "DENOMINATOR"
)

type Ratio struct {
	Id                    ulid.ULID  `json:"id"`
	Code                  string     `json:"code"`
	Title                 string     `json:"title"`
	Multiplier            float64    `json:"multiplier"`
	LowerBound            *float64   `json:"lowerBound"`
	UpperBound            *float64   `json:"upperBound"`
	IsLowerBoundInclusive bool       `json:"isLowerBoundInclusive"`
	IsUpperBoundInclusive bool       `json:"isUpperBoundInclusive"`
	IdealText             *string    `json:"idealText"`
	Policy                Policy     `json:"policy"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
	DeletedAt             *time.Time `json:"-"`

	Components []*Component `json:"components,omitempty"`
}

// Component is one signed subcategory contribution to a ratio side. The
// formula is Σ(numerator) sign·aggregate ÷ Σ(denominator) sign·aggregate,
// times the multiplier.
type Component struct {
	Id            ulid.ULID  `json:"id"`
	RatioId       ulid.ULID  `json:"ratioId"`
	SubcategoryId ulid.ULID  `json:"subcategoryId"`
	Side          Side       `json:"side"`
	Sign          int        `json:"sign"`
	DeletedAt     *time.Time `json:"-"`

	// Denormalized hierarchy chain for aggregation-mode selection.
	SubcategoryName string `json:"subcategoryName,omitempty"`
	CategoryName    string `json:"categoryName,omitempty"`
	AccountTypeName string `json:"accountTypeName,omitempty"`
}

// ActiveComponents filters to components whose subcategory chain survived
// soft deletion, split is done by side at aggregation time.
func (r *Ratio) ActiveComponents() []*Component {
	out := make([]*Component, 0, len(r.Components))
	for _, c := range r.Components {
		if c.DeletedAt == nil && c.SubcategoryName != "" {
			out = append(out, c)
		}
	}
	return out
}
