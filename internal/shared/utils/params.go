package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"relnotes/internal/shared/errors"
)

// ParseIDParam parses and validates a numeric ID from a URL path parameter.
// entityName is used in error messages (e.g., "release", "note").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(
			fmt.Sprintf("invalid %s ID %q, expected a positive integer", entityName, raw),
		)
	}

	return uint(id), nil
}

// ParseTimeQuery parses an optional RFC 3339 timestamp from a query
// parameter. A missing parameter yields (nil, nil); a present but
// malformed one is a validation error.
func ParseTimeQuery(c *gin.Context, key string) (*time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, errors.NewValidationError(
			fmt.Sprintf("invalid %s value %q, expected RFC 3339 timestamp", key, raw),
		)
	}

	return &t, nil
}

// ParseIntQuery parses an optional integer query parameter, returning
// defaultVal when absent or malformed.
func ParseIntQuery(c *gin.Context, key string, defaultVal int) int {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultVal
	}
	return v
}

// ParseBoolQuery parses an optional boolean query parameter, returning
// defaultVal when absent or malformed.
func ParseBoolQuery(c *gin.Context, key string, defaultVal bool) bool {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultVal
	}
	return v
}
