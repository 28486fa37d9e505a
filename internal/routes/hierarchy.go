package routes

import (
	"net/http"

	"github.com/arindama-pkmk/ta-server-sub000/internal/contracts"

	"github.com/gin-gonic/gin"
)

// GetHierarchy godoc
// @Summary Pohon tipe akun, kategori, dan subkategori
// @Tags hierarchy
// @Produce json
// @Success 200 {object} contracts.HierarchyTreeResponse
// @Router /hierarchy [get]
func (h *Handler) GetHierarchy(c *gin.Context) {
	ctx := c.Request.Context()
	tree, err := h.HierarchyService.GetTree(ctx)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.HierarchyTreeResponse{AccountTypes: tree})
}
