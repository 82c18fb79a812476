package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	apierrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// AnalyticsHandler serves the aggregation views over a user's transactions.
// All three endpoints accept the same filter query parameters as the
// transaction listing.
type AnalyticsHandler struct {
	ledger services.LedgerServiceInterface
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(ledger services.LedgerServiceInterface) *AnalyticsHandler {
	return &AnalyticsHandler{ledger: ledger}
}

// Summary returns income/expense totals and per-category breakdowns
func (h *AnalyticsHandler) Summary(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	criteria, err := parseFilterCriteria(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	summary, err := h.ledger.Summary(userID, criteria)
	if err != nil {
		slog.Error("summary aggregation failed", "error", err, "user_id", userID)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summary})
}

// Daily returns per-calendar-day income/expense buckets across the
// requested window. Without a lower bound the series is empty.
func (h *AnalyticsHandler) Daily(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	criteria, err := parseFilterCriteria(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	buckets, err := h.ledger.DailySeries(userID, criteria)
	if err != nil {
		slog.Error("daily series aggregation failed", "error", err, "user_id", userID)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: buckets,
		Meta: map[string]int{"count": len(buckets)},
	})
}

// Distribution returns per-category slices for one transaction type,
// sorted by descending value with zero-value categories omitted.
func (h *AnalyticsHandler) Distribution(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	criteria, err := parseFilterCriteria(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	transactionType := c.QueryParam("type")
	if transactionType == "" {
		transactionType = models.TransactionTypeExpense
	}

	slices, err := h.ledger.Distribution(userID, criteria, transactionType)
	if err != nil {
		if errors.Is(err, models.ErrInvalidTransactionType) {
			return SendError(c, apierrors.TransactionInvalidType)
		}
		slog.Error("distribution aggregation failed", "error", err, "user_id", userID)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: slices,
		Meta: map[string]int{"count": len(slices)},
	})
}
