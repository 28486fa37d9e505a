package ratio_test

import (
	"testing"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
)

func seededSubcategoryNames() map[string]bool {
	names := make(map[string]bool)
	for _, at := range hierarchy.DefaultTree {
		for _, cat := range at.Categories {
			for _, sub := range cat.Subcategories {
				names[sub.Name] = true
			}
		}
	}
	return names
}

func TestDefaultRatiosReferenceSeededSubcategories(t *testing.T) {
	t.Parallel()

	names := seededSubcategoryNames()

	for _, def := range ratio.DefaultRatios {
		for _, c := range def.Components {
			if !names[c.SubcategoryName] {
				t.Errorf("%s references unknown subcategory %q", def.Code, c.SubcategoryName)
			}
			if c.Sign != 1 && c.Sign != -1 {
				t.Errorf("%s component %q has sign %d", def.Code, c.SubcategoryName, c.Sign)
			}
		}
	}
}

func TestDefaultRatiosHaveBothSides(t *testing.T) {
	t.Parallel()

	for _, def := range ratio.DefaultRatios {
		var numerators, denominators int
		for _, c := range def.Components {
			switch c.Side {
			case ratio.SideNumerator:
				numerators++
			case ratio.SideDenominator:
				denominators++
			default:
				t.Errorf("%s component %q has side %q", def.Code, c.SubcategoryName, c.Side)
			}
		}
		if numerators == 0 {
			t.Errorf("%s has no numerator components", def.Code)
		}
		if denominators == 0 {
			t.Errorf("%s has no denominator components", def.Code)
		}
	}
}

func TestDefaultRatiosCodesUniqueAndPoliciesKnown(t *testing.T) {
	t.Parallel()

	known := map[ratio.Policy]bool{
		ratio.PolicyStandard:  true,
		ratio.PolicyLiquidity: true,
		ratio.PolicySolvency:  true,
	}

	codes := make(map[string]bool)
	for _, def := range ratio.DefaultRatios {
		if codes[def.Code] {
			t.Errorf("duplicate ratio code %s", def.Code)
		}
		codes[def.Code] = true

		if !known[def.Policy] {
			t.Errorf("%s has unknown policy %q", def.Code, def.Policy)
		}
	}

	if !codes[ratio.CodeLiquidity] || !codes[ratio.CodeSolvency] {
		t.Error("liquidity and solvency must both be seeded")
	}
}

func TestDefaultRatioComponentIDsUnique(t *testing.T) {
	t.Parallel()

	seen := make(map[string]string)
	for _, def := range ratio.DefaultRatios {
		for _, c := range def.Components {
			id := ratio.ComponentID(def.Code, c.SubcategoryName, c.Side).String()
			if prev, dup := seen[id]; dup {
				t.Errorf("component id collision between %s and %s/%s/%s", prev, def.Code, c.SubcategoryName, c.Side)
			}
			seen[id] = def.Code + "/" + c.SubcategoryName + "/" + string(c.Side)
		}
	}
}

func TestRatioIDDeterministic(t *testing.T) {
	t.Parallel()

	a := ratio.RatioID(ratio.CodeLiquidity)
	b := ratio.RatioID(ratio.CodeLiquidity)
	if a != b {
		t.Fatalf("seed ids must be stable, got %s and %s", a, b)
	}
	if a == ratio.RatioID(ratio.CodeSaving) {
		t.Fatal("different codes must map to different ids")
	}
}
