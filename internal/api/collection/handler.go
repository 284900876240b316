// Package collection exposes the authenticated user's owned games.
package collection

import (
	"net/http"

	"catalog-app/internal/api/respond"
	"catalog-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

func mustUserID(c *gin.Context) (uint, bool) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return 0, false
	}
	return userID, true
}

// GET /collection
func (h *Handler) List(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	opts, ok := respond.Pagination(c)
	if !ok {
		return
	}

	games, err := h.store.ListGames(c.Request.Context(), userID, opts)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GET /collection/count
func (h *Handler) Count(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	n, err := h.store.CountGames(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// POST /collection
func (h *Handler) Create(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	var req struct {
		PublicationID uint `json:"publication_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.store.CreateGame(c.Request.Context(), userID, req.PublicationID); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "added"})
}

// DELETE /collection/:publicationID
func (h *Handler) Delete(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	publicationID, ok := respond.ID(c, "publicationID")
	if !ok {
		return
	}

	if err := h.store.DeleteGame(c.Request.Context(), userID, publicationID); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "removed"})
}
