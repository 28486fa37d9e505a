package routes

import (
	"net/http"

	"github.com/arindama-pkmk/ta-server-sub000/internal/contracts"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// CreateTransaction godoc
// @Summary Catat satu transaksi
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body contracts.TransactionCreateRequest true "Transaksi baru"
// @Success 201 {object} contracts.TransactionCreateResponse
// @Router /transactions [post]
func (h *Handler) CreateTransaction(c *gin.Context) {
	var body contracts.TransactionCreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	userID, err := pkg.ParseULID(body.UserID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("userId", "identitas pengguna tidak valid"))
		return
	}

	subcategoryID, err := pkg.ParseULID(body.SubcategoryID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("subcategoryId", "format id tidak valid"))
		return
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("amount", "jumlah harus berupa angka"))
		return
	}

	date, err := parseDate(body.Date, "date")
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := transaction.Transaction{
		UserId:        userID,
		SubcategoryId: subcategoryID,
		Amount:        amount,
		Date:          date,
		Description:   body.Description,
	}
	if body.IsBookmarked != nil {
		entity.IsBookmarked = *body.IsBookmarked
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.CreateTransaction(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contracts.TransactionCreateResponse{
		Message:     "Transaksi berhasil dicatat",
		Transaction: &entity,
	})
}

// GetTransactions godoc
// @Summary Daftar transaksi pengguna
// @Tags transactions
// @Produce json
// @Param userId query string true "ID pengguna"
// @Success 200 {object} pkg.PaginatedResponse[transaction.Transaction]
// @Router /transactions [get]
func (h *Handler) GetTransactions(c *gin.Context) {
	userID, err := h.getUserID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters := &transaction.Filters{}

	if raw := c.Query("subcategoryId"); raw != "" {
		parsed, err := pkg.ParseULID(raw)
		if err != nil {
			h.respondError(c, appErrors.NewValidationError("subcategoryId", "format id tidak valid"))
			return
		}
		filters.SubcategoryId = &parsed
	}

	filters.DateFrom, err = parseOptionalDate(c, "from", "from")
	if err != nil {
		h.respondError(c, err)
		return
	}

	filters.DateTo, err = parseOptionalDate(c, "to", "to")
	if err != nil {
		h.respondError(c, err)
		return
	}

	if raw := c.Query("bookmarked"); raw != "" {
		bookmarked := raw == "true"
		filters.Bookmarked = &bookmarked
	}

	if raw := c.Query("search"); raw != "" {
		filters.Search = &raw
	}

	pagination := h.parsePagination(c)

	ctx := c.Request.Context()
	transactions, total, err := h.TransactionService.GetAllTransactions(ctx, userID, filters, pagination)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pkg.NewPaginatedResponse(transactions, pagination.Page, pagination.Limit, total))
}

// GetTransaction godoc
// @Summary Ambil satu transaksi
// @Tags transactions
// @Produce json
// @Param id path string true "ID transaksi"
// @Param userId query string true "ID pengguna"
// @Success 200 {object} contracts.TransactionSingleResponse
// @Router /transactions/{id} [get]
func (h *Handler) GetTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	entity, err := h.TransactionService.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: entity})
}

// UpdateTransaction godoc
// @Summary Perbarui satu transaksi
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "ID transaksi"
// @Param userId query string true "ID pengguna"
// @Param request body contracts.TransactionUpdateRequest true "Perubahan transaksi"
// @Success 200 {object} contracts.TransactionSingleResponse
// @Router /transactions/{id} [patch]
func (h *Handler) UpdateTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("id", "format id tidak valid"))
		return
	}

	userID, err := h.getUserID(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	var body contracts.TransactionUpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		h.respondError(c, appErrors.ParseValidationErrors(err))
		return
	}

	subcategoryID, err := pkg.ParseULID(body.SubcategoryID)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("subcategoryId", "format id tidak valid"))
		return
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		h.respondError(c, appErrors.NewValidationError("amount", "jumlah harus berupa angka"))
		return
	}

	date, err := parseDate(body.Date, "date")
	if err != nil {
		h.respondError(c, err)
		return
	}

	entity := transaction.Transaction{
		Id:            transactionID,
		UserId:        userID,
		SubcategoryId: subcategoryID,
		Amount:        amount,
		Date:          date,
		Description:   body.Description,
	}
	if body.IsBookmarked != nil {
		entity.IsBookmarked = *body.IsBookmarked
	}

	ctx := c.Request.Context()
	if err := h.TransactionService.UpdateTransaction(ctx, &entity); err != nil {
		h.respondError(c, err)
		return
	}

	stored, err := h.TransactionService.GetTransactionByID(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: stored})
}

// DeleteTransaction godoc
// @Summary Hapus satu transaksi
// @Tags transactions
// @Produce json
// @Param id path string true "ID transaksi"
// @Param userId query string true "ID pengguna"
// @Success 200 {object} contracts.MessageResponse
// @Router /transactions/{id} [delete]
func (h *Handler) DeleteTransaction(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	if err := h.TransactionService.DeleteTransaction(ctx, transactionID, userID); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.MessageResponse{Message: "Transaksi berhasil dihapus"})
}

// ToggleTransactionBookmark godoc
// @Summary Tandai atau lepas penanda transaksi
// @Tags transactions
// @Produce json
// @Param id path string true "ID transaksi"
// @Param userId query string true "ID pengguna"
// @Success 200 {object} contracts.TransactionSingleResponse
// @Router /transactions/{id}/bookmark [post]
func (h *Handler) ToggleTransactionBookmark(c *gin.Context) {
	transactionID, err := pkg.ParseULID(c.Param("id"))
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
	stored, err := h.TransactionService.ToggleBookmark(ctx, transactionID, userID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contracts.TransactionSingleResponse{Transaction: stored})
}
