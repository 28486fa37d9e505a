package hierarchy

import (
	"crypto/sha256"
	"time"

	"github.com/oklog/ulid/v2"
)

// Seed subcategory names, shared with the ratio catalog seed and the
// breakdown concept table. Renaming one breaks ratio definitions.
const (
	SubUangTunai           = "Uang Tunai"
	SubRekeningBank        = "Rekening Bank"
	SubEWallet             = "E-Wallet"
	SubSaham               = "Saham"
	SubReksaDana           = "Reksa Dana"
	SubObligasi            = "Obligasi"
	SubDeposito            = "Deposito"
	SubProperti            = "Properti"
	SubKendaraan           = "Kendaraan"
	SubUtangKartuKredit    = "Utang Kartu Kredit"
	SubPinjamanOnline      = "Pinjaman Online"
	SubKPR                 = "KPR"
	SubKreditKendaraan     = "Kredit Kendaraan"
	SubGaji                = "Gaji"
	SubBonus               = "Bonus"
	SubPendapatanUsaha     = "Pendapatan Usaha"
	SubPendapatanInvestasi = "Pendapatan Investasi"
	SubMakanan             = "Makanan"
	SubTransportasi        = "Transportasi"
	SubTempatTinggal       = "Tempat Tinggal"
	SubUtilitas            = "Utilitas"
	SubHiburan             = "Hiburan"
	SubBelanja             = "Belanja"
	SubCicilanUtang        = "Cicilan Utang"
	SubPremiAsuransi       = "Premi Asuransi"
	SubPajak               = "Pajak"
	SubSetoranTabungan     = "Setoran Tabungan"
	SubSetoranInvestasi    = "Setoran Investasi"
	SubModalAwal           = "Modal Awal"
)

type DefaultSubcategory struct {
	Name string
}

type DefaultCategory struct {
	Name          string
	Subcategories []DefaultSubcategory
}

type DefaultAccountType struct {
	Name       string
	Categories []DefaultCategory
}

// DefaultTree is the account type → category → subcategory tree seeded at
// migration time.
var DefaultTree = []DefaultAccountType{
	{
		Name: AccountTypeAsset,
		Categories: []DefaultCategory{
			{
				Name: "Kas",
				Subcategories: []DefaultSubcategory{
					{Name: SubUangTunai},
					{Name: SubRekeningBank},
					{Name: SubEWallet},
				},
			},
			{
				Name: "Investasi",
				Subcategories: []DefaultSubcategory{
					{Name: SubSaham},
					{Name: SubReksaDana},
					{Name: SubObligasi},
					{Name: SubDeposito},
				},
			},
			{
				Name: "Aset Tetap",
				Subcategories: []DefaultSubcategory{
					{Name: SubProperti},
					{Name: SubKendaraan},
				},
			},
		},
	},
	{
		Name: AccountTypeLiability,
		Categories: []DefaultCategory{
			{
				Name: "Utang Jangka Pendek",
				Subcategories: []DefaultSubcategory{
					{Name: SubUtangKartuKredit},
					{Name: SubPinjamanOnline},
				},
			},
			{
				Name: "Utang Jangka Panjang",
				Subcategories: []DefaultSubcategory{
					{Name: SubKPR},
					{Name: SubKreditKendaraan},
				},
			},
		},
	},
	{
		Name: AccountTypeIncome,
		Categories: []DefaultCategory{
			{
				Name: "Pendapatan",
				Subcategories: []DefaultSubcategory{
					{Name: SubGaji},
					{Name: SubBonus},
					{Name: SubPendapatanUsaha},
					{Name: SubPendapatanInvestasi},
				},
			},
		},
	},
	{
		Name: AccountTypeExpense,
		Categories: []DefaultCategory{
			{
				Name: "Kebutuhan",
				Subcategories: []DefaultSubcategory{
					{Name: SubMakanan},
					{Name: SubTransportasi},
					{Name: SubTempatTinggal},
					{Name: SubUtilitas},
				},
			},
			{
				Name: "Gaya Hidup",
				Subcategories: []DefaultSubcategory{
					{Name: SubHiburan},
					{Name: SubBelanja},
				},
			},
			{
				Name: "Kewajiban Finansial",
				Subcategories: []DefaultSubcategory{
					{Name: SubCicilanUtang},
					{Name: SubPremiAsuransi},
					{Name: SubPajak},
				},
			},
			{
				Name: "Tabungan & Investasi",
				Subcategories: []DefaultSubcategory{
					{Name: SubSetoranTabungan},
					{Name: SubSetoranInvestasi},
				},
			},
		},
	},
	{
		Name: AccountTypeEquity,
		Categories: []DefaultCategory{
			{
				Name: "Modal",
				Subcategories: []DefaultSubcategory{
					{Name: SubModalAwal},
				},
			},
		},
	},
}

// GenerateDeterministicID derives a stable ULID for seed rows so repeated
// migrations upsert instead of duplicating.
func GenerateDeterministicID(kind, name string) ulid.ULID {
	hash := sha256.Sum256([]byte("seed:" + kind + ":" + name))

	timestamp := ulid.Timestamp(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))

	entropy := [10]byte{}
	copy(entropy[:], hash[:10])

	reader := &deterministicReader{data: entropy[:]}
	return ulid.MustNew(timestamp, reader)
}

type deterministicReader struct {
	data []byte
	pos  int
}

func (r *deterministicReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	n := copy(p, r.data[r.pos:])
	r.pos += n

	if r.pos >= len(r.data) {
		r.pos = 0
	}

	return n, nil
}

// AccountTypeID returns the deterministic seed id for an account type name.
func AccountTypeID(name string) ulid.ULID {
	return GenerateDeterministicID("account_type", name)
}

// CategoryID returns the deterministic seed id for a category name scoped to
// its account type.
func CategoryID(accountTypeName, name string) ulid.ULID {
	return GenerateDeterministicID("category", accountTypeName+"/"+name)
}

// SubcategoryID returns the deterministic seed id for a subcategory name.
// Subcategory names are unique across the default tree.
func SubcategoryID(name string) ulid.ULID {
	return GenerateDeterministicID("subcategory", name)
}
