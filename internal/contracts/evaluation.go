package contracts

import (
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/evaluation"
)

type EvaluationCalculateRequest struct {
	UserID    string `json:"userId" binding:"required"`
	StartDate string `json:"startDate" binding:"required"`
	EndDate   string `json:"endDate" binding:"required"`
}

type EvaluationCalculateResponse struct {
	Message string                          `json:"message"`
	Results []*evaluation.SingleRatioResult `json:"results"`
}

type EvaluationDetailResponse struct {
	Detail *evaluation.Detail `json:"detail"`
}
