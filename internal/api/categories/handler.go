package categories

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

// GET /categories
func (h *Handler) List(c *gin.Context) {
	opts, ok := respond.Pagination(c)
	if !ok {
		return
	}
	cats, err := h.store.ListCategories(c.Request.Context(), c.Query("name"), opts)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cats)
}

// GET /categories/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	cat, err := h.store.GetCategory(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, cat)
}

// POST /admin/categories
func (h *Handler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	cat := catalog.Category{Name: req.Name}
	if err := h.store.CreateCategory(c.Request.Context(), &cat); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": cat.ID})
}

// PUT /admin/categories/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	var req struct {
		Name *string `json:"name"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.store.UpdateCategory(c.Request.Context(), id, store.Optional("name", req.Name))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows_affected": rows})
}

// DELETE /admin/categories/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteCategory(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /admin/videogames/:id/categories/:categoryID
func (h *Handler) Assign(c *gin.Context) {
	videoGameID, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	categoryID, ok := respond.ID(c, "categoryID")
	if !ok {
		return
	}

	if err := h.store.AssignCategory(c.Request.Context(), videoGameID, categoryID); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "assigned"})
}

// DELETE /admin/videogames/:id/categories/:categoryID
func (h *Handler) Unassign(c *gin.Context) {
	videoGameID, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	categoryID, ok := respond.ID(c, "categoryID")
	if !ok {
		return
	}

	if err := h.store.UnassignCategory(c.Request.Context(), videoGameID, categoryID); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "unassigned"})
}
