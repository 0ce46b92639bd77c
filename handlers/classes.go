package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soyedarif/ralph-s-crafts-server/middleware"
	"github.com/soyedarif/ralph-s-crafts-server/models"
	"github.com/soyedarif/ralph-s-crafts-server/store"
)

// SubmitClass creates a class in pending state. Whatever status or
// enrollment the payload claims is ignored.
func (h *Handler) SubmitClass(c *gin.Context) {
	var req struct {
		Name            string  `json:"name" binding:"required"`
		Image           string  `json:"image"`
		InstructorName  string  `json:"instructor_name" binding:"required"`
		InstructorEmail string  `json:"instructor_email" binding:"required,email"`
		Capacity        int     `json:"capacity" binding:"gte=0"`
		Price           float64 `json:"price" binding:"gte=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	class := models.Class{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		Capacity:        req.Capacity,
		Price:           req.Price,
		Enrolled:        0,
		Status:          models.ClassPending,
	}
	if err := h.store.InsertClass(c.Request.Context(), &class); err != nil {
		h.storeFailure(c, "insert class", err)
		return
	}

	c.JSON(http.StatusCreated, class)
}

// ListClasses serves the public approved catalog, or an instructor's own
// classes when ?email= is present. The scoped variant is subject-matched
// unless legacy routing is on.
func (h *Handler) ListClasses(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		classes, err := h.store.ListClassesByStatus(c.Request.Context(), models.ClassApproved)
		if err != nil {
			h.storeFailure(c, "list approved classes", err)
			return
		}
		c.JSON(http.StatusOK, classes)
		return
	}

	if !h.legacyOpen {
		caller := c.GetString(middleware.UserEmailKey)
		if caller == "" {
			fail(c, http.StatusUnauthorized, "unauthorized access")
			return
		}
		if caller != email {
			fail(c, http.StatusForbidden, "forbidden access")
			return
		}
	}

	classes, err := h.store.ListClassesByInstructor(c.Request.Context(), email)
	if err != nil {
		h.storeFailure(c, "list instructor classes", err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *Handler) ListAllClasses(c *gin.Context) {
	classes, err := h.store.ListClasses(c.Request.Context())
	if err != nil {
		h.storeFailure(c, "list classes", err)
		return
	}
	c.JSON(http.StatusOK, classes)
}

func (h *Handler) GetClass(c *gin.Context) {
	class, err := h.store.GetClass(c.Request.Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "class not found")
		return
	} else if err != nil {
		h.storeFailure(c, "get class", err)
		return
	}
	c.JSON(http.StatusOK, class)
}

func (h *Handler) ApproveClass(c *gin.Context) {
	h.moderate(c, models.ClassApproved)
}

func (h *Handler) DenyClass(c *gin.Context) {
	h.moderate(c, models.ClassDenied)
}

// moderate writes the status unconditionally, so repeating a decision is
// a no-op success rather than an error.
func (h *Handler) moderate(c *gin.Context, status string) {
	id := c.Param("id")
	affected, err := h.store.UpdateClassStatus(c.Request.Context(), id, status)
	if err != nil {
		h.storeFailure(c, "update class status", err)
		return
	}

	if affected > 0 {
		if class, err := h.store.GetClass(c.Request.Context(), id); err == nil {
			go h.notify.ClassModerated(*class, status, class.Feedback)
		}
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": affected, "modifiedCount": affected})
}

// AttachFeedback writes reviewer feedback in any state, matching the
// observed behavior of the original system.
func (h *Handler) AttachFeedback(c *gin.Context) {
	var req struct {
		Feedback string `json:"feedback" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id := c.Param("id")
	affected, err := h.store.UpdateClassFeedback(c.Request.Context(), id, req.Feedback)
	if err != nil {
		h.storeFailure(c, "update class feedback", err)
		return
	}

	if affected > 0 {
		if class, err := h.store.GetClass(c.Request.Context(), id); err == nil {
			go h.notify.ClassModerated(*class, class.Status, req.Feedback)
		}
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": affected, "modifiedCount": affected})
}
