package genres

import (
	"net/http"

	"catalog-app/internal/api/respond"
	"catalog-app/internal/domain/catalog"
	"catalog-app/internal/store"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store *store.Store
}

func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// GET /genres
func (h *Handler) List(c *gin.Context) {
	opts, ok := respond.Pagination(c)
	if !ok {
		return
	}
	genres, err := h.store.ListGenres(c.Request.Context(), c.Query("name"), opts)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, genres)
}

// GET /genres/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	g, err := h.store.GetGenre(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, g)
}

// POST /admin/genres
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"name" binding:"required"`
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	g := catalog.Genre{Name: req.Name, Description: req.Description}
	if err := h.store.CreateGenre(c.Request.Context(), &g); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": g.ID})
}

// PUT /admin/genres/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.store.UpdateGenre(c.Request.Context(), id,
		store.Optional("name", req.Name),
		store.Optional("description", req.Description),
	)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows_affected": rows})
}

// DELETE /admin/genres/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteGenre(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
