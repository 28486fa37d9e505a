package routes

import (
	"net/http"

	"github.com/arindama-pkmk/ta-server-sub000/internal/contracts"
	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/gin-gonic/gin"
)

// CalculateEvaluations godoc
// @Summary Hitung semua rasio keuangan untuk satu periode
// @Tags evaluations
// @Accept json
// @Produce json
// @Param request body contracts.EvaluationCalculateRequest true "Periode evaluasi"
// @Success 200 {object} contracts.EvaluationCalculateResponse
// @Router /evaluations/calculate [post]
func (h *Handler) CalculateEvaluations(c *gin.Context) {
	var body contracts.EvaluationCalculateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := pkg.ParseULID(body.UserID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("userId", "identitas pengguna tidak valid"))
		return
	}

	startDate, err := parseDate(body.StartDate, "startDate")
	if err != nil {
		h.respondError(c, err)
		return
	}

	endDate, err := parseDate(body.EndDate, "endDate")
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	results, err := h.EvaluationService.CalculateAndStore(ctx, userID, startDate, endDate)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EvaluationCalculateResponse{
		Message: "Perhitungan rasio selesai",
		Results: results,
	})
}

// GetEvaluationHistory godoc
// @Summary Riwayat hasil perhitungan rasio
// @Tags evaluations
// @Produce json
// @Param userId query string true "ID pengguna"
// @Param from query string false "Tanggal awal (YYYY-MM-DD)"
// @Param to query string false "Tanggal akhir (YYYY-MM-DD)"
// @Success 200 {object} pkg.PaginatedResponse[evaluation.Result]
// @Router /evaluations [get]
func (h *Handler) GetEvaluationHistory(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	from, err := parseOptionalDate(c, "from", "from")
	if err != nil {
		h.respondError(c, err)
		return
	}

	to, err := parseOptionalDate(c, "to", "to")
	if err != nil {
		h.respondError(c, err)
		return
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	results, total, err := h.EvaluationService.History(ctx, userID, from, to, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(results, pagination.Page, pagination.Limit, total))
}

// GetEvaluationDetail godoc
// @Summary Detail satu hasil perhitungan beserta rinciannya
// @Tags evaluations
// @Produce json
// @Param id path string true "ID hasil perhitungan"
// @Param userId query string true "ID pengguna"
// @Success 200 {object} contracts.EvaluationDetailResponse
// @Router /evaluations/{id} [get]
func (h *Handler) GetEvaluationDetail(c *gin.Context) {
	evaluationID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "format id tidak valid"))
		return
	}

	userID, err := h.getUserID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	detail, err := h.EvaluationService.GetDetail(ctx, evaluationID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.EvaluationDetailResponse{Detail: detail})
}
