package platforms

import (
	"net/http"
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
	Code         string `json:"code" binding:"required"`
	Description  string `json:"description" binding:"required"`
	Abbreviation string `json:"abbreviation"`
	Image        []byte `json:"image" binding:"required"`
}

type updateRequest struct {
	Code         *string `json:"code"`
	Description  *string `json:"description"`
	Abbreviation *string `json:"abbreviation"`
	Image        []byte  `json:"image"`
}

type newVideoGameRequest struct {
	Name         string    `json:"name" binding:"required"`
	Description  string    `json:"description"`
	ReleaseDate  time.Time `json:"release_date" binding:"required"`
	ReleasePrice *float64  `json:"release_price"`
	StorePageURL *string   `json:"store_page_url"`
	Image        []byte    `json:"image" binding:"required"`
}

type createWithVideoGamesRequest struct {
	Code         string                `json:"code" binding:"required"`
	Description  string                `json:"description" binding:"required"`
	Abbreviation string                `json:"abbreviation"`
	Image        []byte                `json:"image" binding:"required"`
	VideoGames   []newVideoGameRequest `json:"video_games" binding:"required,min=1,dive"`
}

// GET /platforms
func (h *Handler) List(c *gin.Context) {
	opts, ok := respond.Pagination(c)
	if !ok {
		return
	}
	platforms, err := h.store.ListPlatforms(c.Request.Context(), opts)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, platforms)
}

// GET /platforms/count
func (h *Handler) Count(c *gin.Context) {
	n, err := h.store.CountPlatforms(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// GET /platforms/:code
func (h *Handler) Get(c *gin.Context) {
	p, err := h.store.GetPlatform(c.Request.Context(), c.Param("code"))
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// POST /admin/platforms
func (h *Handler) Create(c *gin.Context) {
	var req createRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := catalog.Platform{
		Code:         req.Code,
		Description:  req.Description,
		Abbreviation: req.Abbreviation,
	}
	if err := h.store.CreatePlatform(c.Request.Context(), &p, req.Image); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": p.Code})
}

// POST /admin/platforms/with-videogames
func (h *Handler) CreateWithVideoGames(c *gin.Context) {
	var req createWithVideoGamesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	p := catalog.Platform{
		Code:         req.Code,
		Description:  req.Description,
		Abbreviation: req.Abbreviation,
	}
	games := make([]store.NewVideoGame, len(req.VideoGames))
	for i, g := range req.VideoGames {
		games[i] = store.NewVideoGame{
			Name:         g.Name,
			Description:  g.Description,
			ReleaseDate:  g.ReleaseDate,
			ReleasePrice: g.ReleasePrice,
			StorePageURL: g.StorePageURL,
			Image:        g.Image,
		}
	}

	if err := h.store.CreatePlatformWithVideoGames(c.Request.Context(), &p, req.Image, games); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"code": p.Code, "video_games": len(games)})
}

// PUT /admin/platforms/:code
func (h *Handler) Update(c *gin.Context) {
	var req updateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := h.store.UpdatePlatform(c.Request.Context(), c.Param("code"), req.Image,
		store.Optional("code", req.Code),
		store.Optional("description", req.Description),
		store.Optional("abbreviation", req.Abbreviation),
	)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows_affected": rows})
}

// DELETE /admin/platforms/:code
func (h *Handler) Delete(c *gin.Context) {
	if err := h.store.DeletePlatform(c.Request.Context(), c.Param("code")); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
