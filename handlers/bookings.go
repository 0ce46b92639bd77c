package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/soyedarif/ralph-s-crafts-server/middleware"
	"github.com/soyedarif/ralph-s-crafts-server/models"
	"github.com/soyedarif/ralph-s-crafts-server/store"
)

// CreateBooking reserves seats for the authenticated student. Booking the
// same class twice is a soft conflict: the response carries a friendly
// message and the ledger keeps exactly one row. The unique constraint on
// (student_email, class_id) is the authority; the pre-check only makes
// the common case read nicer.
func (h *Handler) CreateBooking(c *gin.Context) {
	var req struct {
		ClassID      string `json:"class_id" binding:"required"`
		StudentEmail string `json:"student_email"`
		Seats        int    `json:"seats" binding:"required,gte=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	// The token subject, not the body, decides whose booking this is.
	caller := c.GetString(middleware.UserEmailKey)
	if req.StudentEmail != "" && req.StudentEmail != caller {
		fail(c, http.StatusForbidden, "forbidden access")
		return
	}

	ctx := c.Request.Context()
	class, err := h.store.GetClass(ctx, req.ClassID)
	if errors.Is(err, store.ErrNotFound) {
		fail(c, http.StatusNotFound, "class not found")
		return
	} else if err != nil {
		h.storeFailure(c, "get class", err)
		return
	}

	if _, err := h.store.FindBooking(ctx, caller, class.ID); err == nil {
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s course is already added!", class.Name)})
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		h.storeFailure(c, "find booking", err)
		return
	}

	booking := models.Booking{
		StudentEmail:   caller,
		ClassID:        class.ID,
		ClassName:      class.Name,
		InstructorName: class.InstructorName,
		Image:          class.Image,
		Seats:          req.Seats,
		Price:          class.Price,
	}
	err = h.store.InsertBooking(ctx, &booking)
	if errors.Is(err, store.ErrDuplicateBooking) {
		// Lost the race against a concurrent identical booking.
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("%s course is already added!", class.Name)})
		return
	} else if err != nil {
		h.storeFailure(c, "insert booking", err)
		return
	}

	c.JSON(http.StatusCreated, booking)
}

// ListBookings returns the caller's own reservations; the subject-match
// middleware refuses anyone else's email outright instead of returning a
// redacted empty list.
func (h *Handler) ListBookings(c *gin.Context) {
	bookings, err := h.store.ListBookingsByStudent(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.storeFailure(c, "list bookings", err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// DeleteBooking cancels a reservation. With legacy routing off, only the
// booking's owner or an admin may cancel it.
func (h *Handler) DeleteBooking(c *gin.Context) {
	id := c.Param("id")
	ctx := c.Request.Context()

	if !h.legacyOpen {
		booking, err := h.store.GetBooking(ctx, id)
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"deletedCount": 0})
			return
		} else if err != nil {
			h.storeFailure(c, "get booking", err)
			return
		}

		caller := c.GetString(middleware.UserEmailKey)
		if booking.StudentEmail != caller && !h.isAdmin(c, caller) {
			fail(c, http.StatusForbidden, "forbidden access")
			return
		}
	}

	affected, err := h.store.DeleteBooking(ctx, id)
	if err != nil {
		h.storeFailure(c, "delete booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": affected})
}

func (h *Handler) isAdmin(c *gin.Context, email string) bool {
	user, err := h.store.FindUserByEmail(c.Request.Context(), email)
	return err == nil && user.Role == models.RoleAdmin
}
