package hierarchy_test

import (
	"testing"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
)

func TestNatureOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		accountType string
		want        hierarchy.Nature
	}{
		{hierarchy.AccountTypeAsset, hierarchy.NatureStock},
		{hierarchy.AccountTypeLiability, hierarchy.NatureStock},
		{hierarchy.AccountTypeEquity, hierarchy.NatureStock},
		{hierarchy.AccountTypeIncome, hierarchy.NatureFlow},
		{hierarchy.AccountTypeExpense, hierarchy.NatureFlow},
		{"Tidak Dikenal", hierarchy.NatureFlow},
	}

	for _, tt := range tests {
		if got := hierarchy.NatureOf(tt.accountType); got != tt.want {
			t.Errorf("NatureOf(%q) = %s, want %s", tt.accountType, got, tt.want)
		}
	}
}

func TestDefaultTreeSubcategoryNamesUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for _, at := range hierarchy.DefaultTree {
		for _, cat := range at.Categories {
			for _, sub := range cat.Subcategories {
				if prev, dup := seen[sub.Name]; dup {
					t.Errorf("subcategory %q appears under both %q and %q", sub.Name, prev, cat.Name)
				}
				seen[sub.Name] = cat.Name
			}
		}
	}

	if len(seen) == 0 {
		t.Fatal("default tree is empty")
	}
}

func TestGenerateDeterministicIDStable(t *testing.T) {
	t.Parallel()

	a := hierarchy.SubcategoryID("Uang Tunai")
	b := hierarchy.SubcategoryID("Uang Tunai")
	if a != b {
		t.Fatalf("seed ids must be stable across calls, got %s and %s", a, b)
	}

	if hierarchy.SubcategoryID("Uang Tunai") == hierarchy.SubcategoryID("Rekening Bank") {
		t.Fatal("different names must map to different ids")
	}

	if hierarchy.AccountTypeID("Aset") == hierarchy.SubcategoryID("Aset") {
		t.Fatal("ids must be namespaced by kind")
	}
}

func TestSubcategoryPathNature(t *testing.T) {
	t.Parallel()

	stock := hierarchy.SubcategoryPath{AccountTypeName: hierarchy.AccountTypeAsset}
	if stock.Nature() != hierarchy.NatureStock {
		t.Fatal("asset path should aggregate as stock")
	}

	flow := hierarchy.SubcategoryPath{AccountTypeName: hierarchy.AccountTypeExpense}
	if flow.Nature() != hierarchy.NatureFlow {
		t.Fatal("expense path should aggregate as flow")
	}
}
