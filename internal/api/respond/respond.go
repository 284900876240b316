// Package respond maps store errors onto HTTP responses and parses the
// query parameters shared by every list endpoint.
package respond

import (
	"errors"
	"net/http"
	"strconv"

	"catalog-app/internal/media"
	"catalog-app/internal/store"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
)

// Error writes exactly one taxonomy value per failure. Internal details are
// logged, never echoed.
func Error(c *gin.Context, err error) {
	var dup *store.DuplicateEntryError
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, store.ErrNoFieldsToUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
	case errors.Is(err, store.ErrForeignKeyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Referenced entity not found"})
	case errors.Is(err, store.ErrDeleteForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "Deletion not allowed"})
	case errors.Is(err, media.ErrInvalidFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image format"})
	case errors.As(err, &dup):
		c.JSON(http.StatusConflict, gin.H{"error": "Duplicate entry", "details": dup.Detail})
	default:
		log.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

// Pagination reads optional page/limit query parameters. Returning ok=false
// means a 400 was already written.
func Pagination(c *gin.Context) (opts store.ListOptions, ok bool) {
	opts.SortByName = c.Query("sort") == "name"
	page, okPage := positiveIntQuery(c, "page")
	if !okPage {
		return opts, false
	}
	limit, okLimit := positiveIntQuery(c, "limit")
	if !okLimit {
		return opts, false
	}
	opts.Page = page
	opts.Limit = limit
	return opts, true
}

func positiveIntQuery(c *gin.Context, name string) (*int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &n, true
}

// ID parses a numeric path parameter.
func ID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(n), true
}
