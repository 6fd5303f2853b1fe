package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/spec-kit/storefront-service/internal/auth"
	apperrors "github.com/spec-kit/storefront-service/pkg/util/errorutil"
)

const (
	defaultPageSize = 50
	maxPageSize     = 200
)

func parsePage(c *fiber.Ctx) (limit, offset int) {
	limit = parseIntQuery(c, "limit", defaultPageSize)
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset = parseIntQuery(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func parseIntQuery(c *fiber.Ctx, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return defaultVal
}

// actorID returns the authenticated admin's id, if any.
func actorID(c *fiber.Ctx) *string {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok {
		return nil
	}
	id := principal.ID
	return &id
}

// pathID returns the :id route parameter once it parses as a UUID.
func pathID(c *fiber.Ctx) (string, error) {
	raw := c.Params("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", apperrors.NewValidationError("validation failed", map[string]any{"id": "must be a valid UUID"})
	}
	return id.String(), nil
}
