package contracts

import (
	"github.com/arindama-pkmk/ta-server-sub000/internal/domain/transaction"
)

type TransactionCreateRequest struct {
	UserID        string `json:"userId" binding:"required"`
	SubcategoryID string `json:"subcategoryId" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Description   string `json:"description"`
	IsBookmarked  *bool  `json:"isBookmarked"`
}

type TransactionUpdateRequest struct {
	SubcategoryID string `json:"subcategoryId" binding:"required"`
	Amount        string `json:"amount" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Description   string `json:"description"`
	IsBookmarked  *bool  `json:"isBookmarked"`
}

type TransactionCreateResponse struct {
	Message     string                   `json:"message"`
	Transaction *transaction.Transaction `json:"transaction"`
}

type TransactionSingleResponse struct {
	Transaction *transaction.Transaction `json:"transaction"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
