package routes

import (
	"net/http"

	"github.com/arindama-pkmk/ta-server-sub000/internal/contracts"

	"github.com/gin-gonic/gin"
)

// DeleteUser godoc
// @Summary Hapus pengguna beserta transaksi dan hasil perhitungannya
// @Tags users
// @Produce json
// @Param userId query string true "ID pengguna"
// @Success 200 {object} contracts.MessageResponse
// @Router /users/me [delete]
func (h *Handler) DeleteUser(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ctx := c.Request.Context()
	if err := h.UserService.DeleteUser(ctx, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Pengguna berhasil dihapus"})
}
