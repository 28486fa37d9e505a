package contracts

import (
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
)

type RatioListResponse struct {
	Ratios []*ratio.Ratio `json:"ratios"`
}

type RatioSingleResponse struct {
	Ratio *ratio.Ratio `json:"ratio"`
}
