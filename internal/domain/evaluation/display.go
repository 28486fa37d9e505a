package evaluation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
)

const idealRangeUndefined = "Belum ditentukan"

// IdealRangeDisplay renders the human-readable ideal range for a ratio.
// A stored idealText wins unless it is a generic placeholder; otherwise the
// text is synthesized from the bounds and a per-code unit suffix.
func IdealRangeDisplay(r *ratio.Ratio) *string {
	if r.IdealText != nil {
		text := strings.TrimSpace(*r.IdealText)
		if text != "" && !isPlaceholder(text) {
			return &text
		}
	}

	if r.Code == ratio.CodeSolvency {
		dash := "-"
		return &dash
	}

	unit := ""
	switch {
	case r.Code == ratio.CodeLiquidity:
		unit = " Bulan"
	case r.Multiplier == 100:
		unit = "%"
	}

	var text string
	switch {
	case r.LowerBound != nil && r.UpperBound != nil:
		text = fmt.Sprintf("%s%s – %s%s", formatBound(*r.LowerBound), unit, formatBound(*r.UpperBound), unit)
	case r.LowerBound != nil:
		text = fmt.Sprintf("≥ %s%s", formatBound(*r.LowerBound), unit)
	case r.UpperBound != nil:
		text = fmt.Sprintf("≤ %s%s", formatBound(*r.UpperBound), unit)
	default:
		text = idealRangeUndefined
	}

	return &text
}

func isPlaceholder(text string) bool {
	switch strings.ToLower(text) {
	case "-", "n/a", "tbd", strings.ToLower(idealRangeUndefined):
		return true
	}
	return false
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
