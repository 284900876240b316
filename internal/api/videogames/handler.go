package videogames

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

type createRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Image       []byte `json:"image"` // base64 in JSON, optional
}

type updateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// GET /videogames
func (h *Handler) List(c *gin.Context) {
	opts, ok := respond.Pagination(c)
	if !ok {
		return
	}
	filter := store.VideoGameFilter{Name: c.Query("name")}

	games, err := h.store.ListVideoGames(c.Request.Context(), filter, opts)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, games)
}

// GET /videogames/count
func (h *Handler) Count(c *gin.Context) {
	n, err := h.store.CountVideoGames(c.Request.Context(), store.VideoGameFilter{Name: c.Query("name")})
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// GET /videogames/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	vg, err := h.store.GetVideoGame(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, vg)
}

// POST /admin/videogames
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	vg := catalog.VideoGame{Name: req.Name, Description: req.Description}
	if err := h.store.CreateVideoGame(c.Request.Context(), &vg, req.Image); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": vg.ID})
}

// PUT /admin/videogames/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.store.UpdateVideoGame(c.Request.Context(), id,
		store.Optional("name", req.Name),
		store.Optional("description", req.Description),
	)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows_affected": rows})
}

// DELETE /admin/videogames/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteVideoGame(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
