package publications

import (
	"net/http"
	"strconv"
	"time"

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
	VideoGameID  uint      `json:"video_game_id" binding:"required"`
	PlatformCode string    `json:"platform_code" binding:"required"`
	ReleaseDate  time.Time `json:"release_date" binding:"required"`
	ReleasePrice *float64  `json:"release_price"`
	StorePageURL *string   `json:"store_page_url"`
}

type updateRequest struct {
	ReleaseDate  *time.Time `json:"release_date"`
	ReleasePrice *float64   `json:"release_price"`
	StorePageURL *string    `json:"store_page_url"`
}

func filterFromQuery(c *gin.Context) (store.PublicationFilter, bool) {
	f := store.PublicationFilter{PlatformCode: c.Query("platform_code")}
	if raw := c.Query("video_game_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid video_game_id"})
			return f, false
		}
		id := uint(n)
		f.VideoGameID = &id
	}
	return f, true
}

// GET /publications
func (h *Handler) List(c *gin.Context) {
	opts, ok := respond.Pagination(c)
	if !ok {
		return
	}
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}

	pubs, err := h.store.ListPublications(c.Request.Context(), filter, opts)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pubs)
}

// GET /publications/count
func (h *Handler) Count(c *gin.Context) {
	filter, ok := filterFromQuery(c)
	if !ok {
		return
	}
	n, err := h.store.CountPublications(c.Request.Context(), filter)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// GET /publications/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	pub, err := h.store.GetPublication(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, pub)
}

// POST /admin/publications
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	pub := catalog.Publication{
		VideoGameID:  req.VideoGameID,
		PlatformCode: req.PlatformCode,
		ReleaseDate:  req.ReleaseDate,
		ReleasePrice: req.ReleasePrice,
		StorePageURL: req.StorePageURL,
	}
	if err := h.store.CreatePublication(c.Request.Context(), &pub); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": pub.ID})
}

// PUT /admin/publications/:id
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

	rows, err := h.store.UpdatePublication(c.Request.Context(), id,
		store.Optional("release_date", req.ReleaseDate),
		store.Optional("release_price", req.ReleasePrice),
		store.Optional("store_page_url", req.StorePageURL),
	)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows_affected": rows})
}

// DELETE /admin/publications/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeletePublication(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
