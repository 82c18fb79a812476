package handlers

import (
	"fmt"
	"strings"
	"time"

	"fintrack/internal/analytics"
	"fintrack/internal/models"

	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = fmt.Errorf("unauthorized")

const dateOnlyLayout = "2006-01-02"

// getUserIDFromContext extracts the authenticated user's identity string.
// Returns ErrUnauthorized if the auth middleware did not run.
func getUserIDFromContext(c echo.Context) (string, error) {
	userIDValue := c.Get("user_id")
	if userIDValue == nil {
		return "", ErrUnauthorized
	}

	userID, ok := userIDValue.(string)
	if !ok || userID == "" {
		return "", ErrUnauthorized
	}

	return userID, nil
}

// parseInstant accepts RFC 3339 timestamps or bare dates. Bare dates resolve
// to local midnight; the end-of-day widening for upper bounds happens inside
// the filter engine, not here.
func parseInstant(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(dateOnlyLayout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", value, err)
	}
	return t, nil
}

func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// parseFilterCriteria builds FilterCriteria from the shared query parameters
// (from, to, types, categories, range). A named relative range overrides the
// explicit bounds unless it is "custom".
func parseFilterCriteria(c echo.Context) (models.FilterCriteria, error) {
	criteria := models.FilterCriteria{
		Types:       splitList(c.QueryParam("types")),
		CategoryIDs: splitList(c.QueryParam("categories")),
	}

	if raw := c.QueryParam("from"); raw != "" {
		from, err := parseInstant(raw)
		if err != nil {
			return criteria, err
		}
		criteria.DateRange.From = &from
	}

	if raw := c.QueryParam("to"); raw != "" {
		to, err := parseInstant(raw)
		if err != nil {
			return criteria, err
		}
		criteria.DateRange.To = &to
	}

	if name := c.QueryParam("range"); name != "" {
		criteria.DateRange = analytics.ResolveRange(name, criteria.DateRange, time.Now())
	}

	return criteria, nil
}
