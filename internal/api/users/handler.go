package users

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

type updateRequest struct {
	Username  *string `json:"username"`
	Email     *string `json:"email"`
	Firstname *string `json:"firstname"`
	Lastname  *string `json:"lastname"`
	IsAdmin   *bool   `json:"is_admin"`
}

// GET /me
func (h *Handler) Me(c *gin.Context) {
	userID := c.GetUint("user_id")
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	u, err := h.store.GetUser(c.Request.Context(), userID)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GET /admin/users
func (h *Handler) List(c *gin.Context) {
	opts, ok := respond.Pagination(c)
	if !ok {
		return
	}
	filter := store.UserFilter{Username: c.Query("username"), Email: c.Query("email")}

	list, err := h.store.ListUsers(c.Request.Context(), filter, opts)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GET /admin/users/count
func (h *Handler) Count(c *gin.Context) {
	n, err := h.store.CountUsers(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": n})
}

// GET /admin/users/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	u, err := h.store.GetUser(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// PUT /admin/users/:id
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

	rows, err := h.store.UpdateUser(c.Request.Context(), id,
		store.Optional("username", req.Username),
		store.Optional("email", req.Email),
		store.Optional("firstname", req.Firstname),
		store.Optional("lastname", req.Lastname),
		store.Optional("is_admin", req.IsAdmin),
	)
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "rows_affected": rows})
}

// DELETE /admin/users/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := respond.ID(c, "id")
	if !ok {
		return
	}
	if err := h.store.DeleteUser(c.Request.Context(), id); err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// POST /admin/images/reconcile
func (h *Handler) ReconcileImages(c *gin.Context) {
	report, err := h.store.ReconcileImages(c.Request.Context())
	if err != nil {
		respond.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
