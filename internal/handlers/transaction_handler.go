package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// TransactionHandler handles transaction CRUD and listing
type TransactionHandler struct {
	ledger services.LedgerServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(ledger services.LedgerServiceInterface) *TransactionHandler {
	return &TransactionHandler{ledger: ledger}
}

// List returns the user's transactions narrowed by the filter query params
// (from, to, types, categories, range).
func (h *TransactionHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	criteria, err := parseFilterCriteria(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	transactions, err := h.ledger.ListTransactions(userID, criteria)
	if err != nil {
		slog.Error("failed to list transactions", "error", err, "user_id", userID)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: transactions,
		Meta: map[string]int{"count": len(transactions)},
	})
}

// Create stores a new transaction with a server-assigned id
func (h *TransactionHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}

	tx, err := h.ledger.CreateTransaction(userID, models.Transaction{
		Amount:     req.Amount,
		Date:       req.Date,
		Type:       req.Type,
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
	})
	if err != nil {
		return h.sendWriteError(c, err, userID)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{Data: tx})
}

// Update replaces an existing transaction identified by the URL id
func (h *TransactionHandler) Update(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.TransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return SendError(c, apierrors.TransactionInvalidAmount)
	}

	tx, err := h.ledger.UpdateTransaction(userID, models.Transaction{
		ID:         c.Param("id"),
		Amount:     req.Amount,
		Date:       req.Date,
		Type:       req.Type,
		CategoryID: req.CategoryID,
		Notes:      req.Notes,
	})
	if err != nil {
		return h.sendWriteError(c, err, userID)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: tx})
}

// Delete removes a transaction by id
func (h *TransactionHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	if err := h.ledger.DeleteTransaction(userID, c.Param("id")); err != nil {
		return h.sendWriteError(c, err, userID)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *TransactionHandler) sendWriteError(c echo.Context, err error, userID string) error {
	switch {
	case errors.Is(err, services.ErrTransactionNotFound):
		return SendError(c, apierrors.TransactionNotFound)
	case errors.Is(err, models.ErrInvalidTransactionType):
		return SendError(c, apierrors.TransactionInvalidType)
	case errors.Is(err, models.ErrInvalidAmount):
		return SendError(c, apierrors.TransactionInvalidAmount)
	case errors.Is(err, models.ErrMissingCategory), errors.Is(err, models.ErrMissingDate):
		return SendError(c, apierrors.ValidationRequiredField, apierrors.WithDetails(err.Error()))
	default:
		slog.Error("transaction write failed", "error", err, "user_id", userID)
		return SendSystemError(c, err)
	}
}
