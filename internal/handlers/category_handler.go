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
)

// CategoryHandler handles the user's category collection
type CategoryHandler struct {
	ledger services.LedgerServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(ledger services.LedgerServiceInterface) *CategoryHandler {
	return &CategoryHandler{ledger: ledger}
}

// List returns the user's categories, falling back to the default set when
// none have been saved yet.
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	categories, err := h.ledger.ListCategories(userID)
	if err != nil {
		slog.Error("failed to list categories", "error", err, "user_id", userID)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: categories,
		Meta: map[string]int{"count": len(categories)},
	})
}

// Replace swaps the user's category collection for the request body
func (h *CategoryHandler) Replace(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.ReplaceCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categories := make([]models.Category, 0, len(req.Categories))
	for _, cat := range req.Categories {
		categories = append(categories, models.Category{
			ID:   cat.ID,
			Name: cat.Name,
			Type: cat.Type,
			Icon: cat.Icon,
		})
	}

	if err := h.ledger.ReplaceCategories(userID, categories); err != nil {
		if errors.Is(err, services.ErrCategoryUnknownType) {
			return SendError(c, apierrors.CategoryInvalidType, apierrors.WithDetails(err.Error()))
		}
		slog.Error("failed to replace categories", "error", err, "user_id", userID)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data:    categories,
		Message: "categories updated",
	})
}
