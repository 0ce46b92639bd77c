package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soyedarif/ralph-s-crafts-server/models"
	"github.com/soyedarif/ralph-s-crafts-server/store"
)

// RegisterUser is idempotent by email: a repeated registration answers
// "user already exists" and leaves the stored record untouched.
func (h *Handler) RegisterUser(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		PhotoURL string `json:"photo_url"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	if _, err := h.store.FindUserByEmail(ctx, req.Email); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": "user already exists"})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.storeFailure(c, "find user", err)
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		PhotoURL: req.PhotoURL,
		Role:     models.RoleStudent,
	}
	if err := h.store.InsertUser(ctx, &user); err != nil {
		h.storeFailure(c, "insert user", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.store.ListUsers(c.Request.Context())
	if err != nil {
		h.storeFailure(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) ListInstructors(c *gin.Context) {
	users, err := h.store.ListUsersByRole(c.Request.Context(), models.RoleInstructor)
	if err != nil {
		h.storeFailure(c, "list instructors", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserRole answers "what can this caller do". The subject-match
// middleware has already pinned the :email param to the token's subject.
func (h *Handler) GetUserRole(c *gin.Context) {
	user, err := h.store.FindUserByEmail(c.Request.Context(), c.Param("email"))
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "user not found")
		return
	} else if err != nil {
		h.storeFailure(c, "find user", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": user.Role})
}

func (h *Handler) PromoteToAdmin(c *gin.Context) {
	h.promote(c, models.RoleAdmin)
}

func (h *Handler) PromoteToInstructor(c *gin.Context) {
	h.promote(c, models.RoleInstructor)
}

// promote overwrites the role field and nothing else. An unknown id is
// reported as zero rows matched, not an error.
func (h *Handler) promote(c *gin.Context, role string) {
	affected, err := h.store.UpdateUserRole(c.Request.Context(), c.Param("id"), role)
	if err != nil {
		h.storeFailure(c, "update role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"matchedCount": affected, "modifiedCount": affected})
}
