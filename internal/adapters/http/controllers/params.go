package controllers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vendalog/erp/internal/core/domain"
	"github.com/vendalog/erp/internal/core/serviceerrors"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// ListResponse is the envelope for every paginated collection.
type ListResponse[T any] struct {
	Total int64 `json:"total"`
	Items []T   `json:"items"`
}

func parseID(c *gin.Context, name string) (domain.ID, error) {
	raw := c.Param(name)
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value <= 0 {
		return 0, serviceerrors.NewInvalidRequest("Invalid " + name)
	}
	return domain.ID(value), nil
}

func parsePagination(c *gin.Context) (limit, offset int, err error) {
	limit = defaultPageLimit
	if raw := c.Query("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return 0, 0, serviceerrors.NewInvalidRequest("Invalid limit")
		}
		if limit > maxPageLimit {
			limit = maxPageLimit
		}
	}
	if raw := c.Query("skip"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return 0, 0, serviceerrors.NewInvalidRequest("Invalid skip")
		}
	}
	return limit, offset, nil
}

func parseOptionalDate(c *gin.Context, name string) (*time.Time, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return nil, serviceerrors.NewInvalidRequest("Invalid " + name + ", expected RFC3339 or YYYY-MM-DD")
		}
	}
	return &parsed, nil
}
