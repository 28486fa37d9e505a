package evaluation

import (
	"context"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"
)

// Breakdown concept names shown on the detail view.
const (
	ConceptLiquidAssets    = "Aset Likuid"
	ConceptNonLiquidAssets = "Aset Non-Likuid"
	ConceptInvestedAssets  = "Aset Diinvestasikan"
	ConceptTotalAssets     = "Total Aset"
	ConceptLiabilities     = "Liabilitas"
	ConceptNetWorth        = "Kekayaan Bersih"
	ConceptIncome          = "Pemasukan"
	ConceptExpense         = "Pengeluaran"
	ConceptSavings         = "Tabungan"
	ConceptDebtPayments    = "Pembayaran Utang"
	ConceptDeductions      = "Potongan"
	ConceptNetIncome       = "Pemasukan Bersih"
)

type conceptMember struct {
	SubcategoryName string
	Sign            int
}

type conceptDefinition struct {
	Name    string
	Members []conceptMember
}

func members(sign int, names ...string) []conceptMember {
	out := make([]conceptMember, 0, len(names))
	for _, name := range names {
		out = append(out, conceptMember{SubcategoryName: name, Sign: sign})
	}
	return out
}

var (
	liquidAssetMembers = members(1,
		hierarchy.SubUangTunai, hierarchy.SubRekeningBank, hierarchy.SubEWallet)
	investedAssetMembers = members(1,
		hierarchy.SubSaham, hierarchy.SubReksaDana, hierarchy.SubObligasi, hierarchy.SubDeposito)
	fixedAssetMembers = members(1,
		hierarchy.SubProperti, hierarchy.SubKendaraan)
	liabilityMembers = members(1,
		hierarchy.SubUtangKartuKredit, hierarchy.SubPinjamanOnline,
		hierarchy.SubKPR, hierarchy.SubKreditKendaraan)
	incomeMembers = members(1,
		hierarchy.SubGaji, hierarchy.SubBonus,
		hierarchy.SubPendapatanUsaha, hierarchy.SubPendapatanInvestasi)
	expenseMembers = members(1,
		hierarchy.SubMakanan, hierarchy.SubTransportasi, hierarchy.SubTempatTinggal,
		hierarchy.SubUtilitas, hierarchy.SubHiburan, hierarchy.SubBelanja,
		hierarchy.SubCicilanUtang, hierarchy.SubPremiAsuransi, hierarchy.SubPajak,
		hierarchy.SubSetoranTabungan, hierarchy.SubSetoranInvestasi)
	deductionMembers = members(1,
		hierarchy.SubPajak, hierarchy.SubPremiAsuransi)
)

func concat(groups ...[]conceptMember) []conceptMember {
	var out []conceptMember
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func negate(ms []conceptMember) []conceptMember {
	out := make([]conceptMember, 0, len(ms))
	for _, m := range ms {
		out = append(out, conceptMember{SubcategoryName: m.SubcategoryName, Sign: -m.Sign})
	}
	return out
}

// conceptTable is the fixed subcategory-name → concept membership map. A
// subcategory may feed several concepts (an invested asset also counts as a
// non-liquid asset); this double counting is intentional and display-only —
// the ratio pipeline never reads these sums.
var conceptTable = []conceptDefinition{
	{Name: ConceptLiquidAssets, Members: liquidAssetMembers},
	{Name: ConceptNonLiquidAssets, Members: concat(investedAssetMembers, fixedAssetMembers)},
	{Name: ConceptInvestedAssets, Members: investedAssetMembers},
	{Name: ConceptTotalAssets, Members: concat(liquidAssetMembers, investedAssetMembers, fixedAssetMembers)},
	{Name: ConceptLiabilities, Members: liabilityMembers},
	{Name: ConceptNetWorth, Members: concat(
		liquidAssetMembers, investedAssetMembers, fixedAssetMembers,
		negate(liabilityMembers))},
	{Name: ConceptIncome, Members: incomeMembers},
	{Name: ConceptExpense, Members: expenseMembers},
	{Name: ConceptSavings, Members: members(1, hierarchy.SubSetoranTabungan, hierarchy.SubSetoranInvestasi)},
	{Name: ConceptDebtPayments, Members: members(1, hierarchy.SubCicilanUtang)},
	{Name: ConceptDeductions, Members: deductionMembers},
	{Name: ConceptNetIncome, Members: concat(incomeMembers, negate(deductionMembers))},
}

// natureByName maps every seeded subcategory name to its account type
// nature, derived once from the default tree.
var natureByName = func() map[string]hierarchy.Nature {
	out := make(map[string]hierarchy.Nature)
	for _, at := range hierarchy.DefaultTree {
		for _, cat := range at.Categories {
			for _, sub := range cat.Subcategories {
				out[sub.Name] = hierarchy.NatureOf(at.Name)
			}
		}
	}
	return out
}()

// ConceptSums computes the named conceptual sums over the snapshot's
// transaction window, using the same stock/flow semantics as the side
// aggregation: balances through the window end for stock subcategories,
// in-window sums for flow subcategories.
func (a *Aggregator) ConceptSums(
	ctx context.Context,
	userID ulid.ULID,
	window Window,
	windowTxs []*transaction.Transaction,
) ([]BreakdownComponent, error) {
	aggregates := make(map[string]decimal.Decimal)

	for _, def := range conceptTable {
		for _, m := range def.Members {
			if _, done := aggregates[m.SubcategoryName]; done {
				continue
			}

			nature, known := natureByName[m.SubcategoryName]
			if !known {
				nature = hierarchy.NatureFlow
			}

			agg, err := a.SubcategoryAggregate(
				ctx, userID, hierarchy.SubcategoryID(m.SubcategoryName), nature, window, windowTxs)
			if err != nil {
				return nil, err
			}
			aggregates[m.SubcategoryName] = agg
		}
	}

	out := make([]BreakdownComponent, 0, len(conceptTable))
	for _, def := range conceptTable {
		total := decimal.Zero
		for _, m := range def.Members {
			total = total.Add(aggregates[m.SubcategoryName].Mul(decimal.NewFromInt(int64(m.Sign))))
		}
		out = append(out, BreakdownComponent{Name: def.Name, Value: total.InexactFloat64()})
	}

	return out, nil
}
