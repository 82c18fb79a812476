package handlers

import (
	"log/slog"
	"net/http"

	"fintrack/internal/config"
	"fintrack/internal/dto"
	apierrors "fintrack/internal/errors"
	"fintrack/internal/services"

	"github.com/labstack/echo/v4"
)

// DevHandler handles development-only endpoints
type DevHandler struct {
	sampleData services.SampleDataServiceInterface
	cfg        *config.Config
}

// NewDevHandler creates a new development handler
func NewDevHandler(sampleData services.SampleDataServiceInterface, cfg *config.Config) *DevHandler {
	return &DevHandler{
		sampleData: sampleData,
		cfg:        cfg,
	}
}

// Seed populates the authenticated user's ledger with generated sample
// transactions. Refused outside development and testing environments.
func (h *DevHandler) Seed(c echo.Context) error {
	if h.cfg.IsProduction() {
		return SendError(c, apierrors.SystemForbiddenInEnv)
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apierrors.AuthMissingToken)
	}

	var req dto.SeedRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat)
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	transactions, err := h.sampleData.Seed(userID, req.Days, req.Count)
	if err != nil {
		slog.Error("sample data generation failed", "error", err, "user_id", userID)
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Message: "sample data generated",
		Meta:    map[string]int{"created": len(transactions)},
	})
}
