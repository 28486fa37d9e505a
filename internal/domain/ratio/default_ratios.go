package ratio

import (
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"

	"github.com/oklog/ulid/v2"
)

type DefaultComponent struct {
	SubcategoryName string
	Side            Side
	Sign            int
}

type DefaultRatio struct {
	Code                  string
	Title                 string
	Multiplier            float64
	LowerBound            *float64
	UpperBound            *float64
	IsLowerBoundInclusive bool
	IsUpperBoundInclusive bool
	IdealText             *string
	Policy                Policy
	Components            []DefaultComponent
}

var (
	liquidAssetNames = []string{
		hierarchy.SubUangTunai,
		hierarchy.SubRekeningBank,
		hierarchy.SubEWallet,
	}
	investedAssetNames = []string{
		hierarchy.SubSaham,
		hierarchy.SubReksaDana,
		hierarchy.SubObligasi,
		hierarchy.SubDeposito,
	}
	fixedAssetNames = []string{
		hierarchy.SubProperti,
		hierarchy.SubKendaraan,
	}
	liabilityNames = []string{
		hierarchy.SubUtangKartuKredit,
		hierarchy.SubPinjamanOnline,
		hierarchy.SubKPR,
		hierarchy.SubKreditKendaraan,
	}
	incomeNames = []string{
		hierarchy.SubGaji,
		hierarchy.SubBonus,
		hierarchy.SubPendapatanUsaha,
		hierarchy.SubPendapatanInvestasi,
	}
	expenseNames = []string{
		hierarchy.SubMakanan,
		hierarchy.SubTransportasi,
		hierarchy.SubTempatTinggal,
		hierarchy.SubUtilitas,
		hierarchy.SubHiburan,
		hierarchy.SubBelanja,
		hierarchy.SubCicilanUtang,
		hierarchy.SubPremiAsuransi,
		hierarchy.SubPajak,
		hierarchy.SubSetoranTabungan,
		hierarchy.SubSetoranInvestasi,
	}
	savingNames = []string{
		hierarchy.SubSetoranTabungan,
		hierarchy.SubSetoranInvestasi,
	}
)

func allAssetNames() []string {
	out := make([]string, 0, len(liquidAssetNames)+len(investedAssetNames)+len(fixedAssetNames))
	out = append(out, liquidAssetNames...)
	out = append(out, investedAssetNames...)
	out = append(out, fixedAssetNames...)
	return out
}

func components(side Side, sign int, names ...string) []DefaultComponent {
	out := make([]DefaultComponent, 0, len(names))
	for _, name := range names {
		out = append(out, DefaultComponent{SubcategoryName: name, Side: side, Sign: sign})
	}
	return out
}

func join(groups ...[]DefaultComponent) []DefaultComponent {
	var out []DefaultComponent
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

func bound(v float64) *float64 {
	return &v
}

// DefaultRatios is the seeded catalog. Net-worth denominators subtract
// liabilities from assets via sign -1 components.
var DefaultRatios = []DefaultRatio{
	{
		Code:                  CodeLiquidity,
		Title:                 "Rasio Likuiditas",
		Multiplier:            1,
		LowerBound:            bound(3),
		IsLowerBoundInclusive: true,
		IsUpperBoundInclusive: true,
		Policy:                PolicyLiquidity,
		Components: join(
			components(SideNumerator, 1, liquidAssetNames...),
			components(SideDenominator, 1, expenseNames...),
		),
	},
	{
		Code:                  CodeSaving,
		Title:                 "Rasio Tabungan",
		Multiplier:            100,
		LowerBound:            bound(10),
		IsLowerBoundInclusive: true,
		IsUpperBoundInclusive: true,
		Policy:                PolicyStandard,
		Components: join(
			components(SideNumerator, 1, savingNames...),
			components(SideDenominator, 1, incomeNames...),
		),
	},
	{
		Code:                  CodeDebtService,
		Title:                 "Rasio Cicilan Utang",
		Multiplier:            100,
		UpperBound:            bound(35),
		IsLowerBoundInclusive: true,
		IsUpperBoundInclusive: true,
		Policy:                PolicyStandard,
		Components: join(
			components(SideNumerator, 1, hierarchy.SubCicilanUtang),
			components(SideDenominator, 1, incomeNames...),
		),
	},
	{
		Code:                  CodeDebtToAsset,
		Title:                 "Rasio Utang terhadap Aset",
		Multiplier:            100,
		UpperBound:            bound(50),
		IsLowerBoundInclusive: true,
		IsUpperBoundInclusive: true,
		Policy:                PolicyStandard,
		Components: join(
			components(SideNumerator, 1, liabilityNames...),
			components(SideDenominator, 1, allAssetNames()...),
		),
	},
	{
		Code:                  CodeCurrentAssetToNetWorth,
		Title:                 "Rasio Aset Lancar terhadap Kekayaan Bersih",
		Multiplier:            100,
		LowerBound:            bound(15),
		IsLowerBoundInclusive: true,
		IsUpperBoundInclusive: true,
		Policy:                PolicyStandard,
		Components: join(
			components(SideNumerator, 1, liquidAssetNames...),
			components(SideDenominator, 1, allAssetNames()...),
			components(SideDenominator, -1, liabilityNames...),
		),
	},
	{
		Code:                  CodeInvestmentToNetWorth,
		Title:                 "Rasio Aset Investasi terhadap Kekayaan Bersih",
		Multiplier:            100,
		LowerBound:            bound(50),
		IsLowerBoundInclusive: true,
		IsUpperBoundInclusive: true,
		Policy:                PolicyStandard,
		Components: join(
			components(SideNumerator, 1, investedAssetNames...),
			components(SideDenominator, 1, allAssetNames()...),
			components(SideDenominator, -1, liabilityNames...),
		),
	},
	{
		Code:                  CodeSolvency,
		Title:                 "Rasio Solvabilitas",
		Multiplier:            100,
		LowerBound:            bound(0),
		IsLowerBoundInclusive: false,
		IsUpperBoundInclusive: true,
		Policy:                PolicySolvency,
		Components: join(
			components(SideNumerator, 1, allAssetNames()...),
			components(SideNumerator, -1, liabilityNames...),
			components(SideDenominator, 1, allAssetNames()...),
		),
	},
}

// RatioID returns the deterministic seed id for a ratio code.
func RatioID(code string) ulid.ULID {
	return hierarchy.GenerateDeterministicID("ratio", code)
}

// ComponentID returns the deterministic seed id for one component row.
func ComponentID(code, subcategoryName string, side Side) ulid.ULID {
	return hierarchy.GenerateDeterministicID("ratio_component", code+"/"+subcategoryName+"/"+string(side))
}
