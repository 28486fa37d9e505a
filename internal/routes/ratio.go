package routes

import (
	"net/http"

	"github.com/arindama-pkmk/ta-server-sub000/internal/contracts"
	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/gin-gonic/gin"
)

// ListRatios godoc
// @Summary Daftar definisi rasio aktif
// @Tags ratios
// @Produce json
// @Success 200 {object} contracts.RatioListResponse
// @Router /ratios [get]
func (h *Handler) ListRatios(c *gin.Context) {
	ctx := c.Request.Context()
	ratios, err := h.RatioService.ListActive(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RatioListResponse{Ratios: ratios})
}

// GetRatio godoc
// @Summary Ambil satu definisi rasio
// @Tags ratios
// @Produce json
// @Param id path string true "ID rasio"
// @Success 200 {object} contracts.RatioSingleResponse
// @Router /ratios/{id} [get]
func (h *Handler) GetRatio(c *gin.Context) {
	ratioID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "format id tidak valid"))
		return
	}

	ctx := c.Request.Context()
	r, err := h.RatioService.GetByID(ctx, ratioID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.RatioSingleResponse{Ratio: r})
}
