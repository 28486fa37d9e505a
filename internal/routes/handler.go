package routes

import (
	"time"

	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/evaluation"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/hierarchy"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/ratio"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/user"
	appErrors "github.com/arindama-pkmk/ta-server-sub000/internal/errors"
	"github.com/arindama-pkmk/ta-server-sub000/internal/logger"
	"github.com/arindama-pkmk/ta-server-sub000/internal/pkg"

	"github.com/gin-gonic/gin"
	"github.com/oklog/ulid/v2"
)

const dateLayout = "2006-01-02"

type Handler struct {
	UserService        *user.Service
	TransactionService *transaction.Service
	HierarchyService   *hierarchy.Service
	RatioService       *ratio.Service
	EvaluationService  *evaluation.Service
}

// getUserID reads the caller identity. Authentication happens upstream at
// the gateway; this service trusts the forwarded user id.
func (h *Handler) getUserID(c *gin.Context) (ulid.ULID, error) {
	userIDStr := c.GetHeader("X-User-Id")
	if userIDStr == "" {
		userIDStr = c.Query("userId")
	}

	userID, err := pkg.ParseULID(userIDStr)
	if err != nil {
		return ulid.ULID{}, appErrors.NewValidationError("userId", "identitas pengguna tidak valid")
	}
	return userID, nil
}

func (h *Handler) parsePagination(c *gin.Context) *pkg.PaginationParams {
	page := c.DefaultQuery("page", "1")
	limit := c.DefaultQuery("limit", "10")

	var pageNum, limitNum int
	if p, err := pkg.ParseInt(page); err == nil && p > 0 {
		pageNum = p
	} else {
		pageNum = 1
	}

	if l, err := pkg.ParseInt(limit); err == nil && l > 0 {
		limitNum = l
	} else {
		limitNum = 10
	}

	return &pkg.PaginationParams{
		Page:  pageNum,
		Limit: limitNum,
	}
}

func parseDate(value, field string) (time.Time, error) {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, appErrors.NewValidationError(field, "format tanggal harus YYYY-MM-DD")
	}
	return parsed, nil
}

func parseOptionalDate(c *gin.Context, query, field string) (*time.Time, error) {
	raw := c.Query(query)
	if raw == "" {
		return nil, nil
	}
	parsed, err := parseDate(raw, field)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}

func (h *Handler) respondError(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	event := logger.Error().Str("code", appErr.Code).Str("path", c.FullPath())
	if appErr.Err != nil {
		event = event.Err(appErr.Err)
	}
	event.Msg("request_error")
	payload := gin.H{
		"error":   appErr.Code,
		"message": appErr.Message,
	}
	if len(appErr.Details) > 0 {
		payload["details"] = appErr.Details
	}
	c.JSON(appErr.StatusCode, payload)
}
