package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/soyedarif/ralph-s-crafts-server/middleware"
)

// NewRouter wires the full route table. With legacyOpen the mutation
// endpoints are registered exactly as the original deployment exposed
// them (no gate); otherwise they require admin or owner authority.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(h.logger), gin.Recovery())

	authed := middleware.AuthRequired(h.tokens)
	adminOnly := middleware.RequireAdmin(h.store)

	r.GET("/", h.Health)
	r.POST("/jwt", h.IssueToken)

	r.POST("/users", h.RegisterUser)
	r.GET("/users", authed, h.ListUsers)
	r.GET("/users/instructors", h.ListInstructors)
	r.GET("/users/:email", authed, middleware.RequireSubjectParam("email"), h.GetUserRole)

	r.POST("/classes", h.SubmitClass)
	r.GET("/classes", middleware.OptionalAuth(h.tokens), h.ListClasses)
	r.GET("/classes/:id", h.GetClass)
	r.GET("/all-classes", h.ListAllClasses)

	r.POST("/booked-classes", authed, h.CreateBooking)
	r.GET("/booked-classes/:email", authed, middleware.RequireSubjectParam("email"), h.ListBookings)

	if h.legacyOpen {
		r.PATCH("/users/admin/:id", h.PromoteToAdmin)
		r.PATCH("/users/instructor/:id", h.PromoteToInstructor)
		r.PATCH("/classes/approve/:id", h.ApproveClass)
		r.PATCH("/classes/denied/:id", h.DenyClass)
		r.PATCH("/classes/feedback/:id", h.AttachFeedback)
		r.DELETE("/booked-classes/:id", h.DeleteBooking)
	} else {
		r.PATCH("/users/admin/:id", authed, adminOnly, h.PromoteToAdmin)
		r.PATCH("/users/instructor/:id", authed, adminOnly, h.PromoteToInstructor)
		r.PATCH("/classes/approve/:id", authed, adminOnly, h.ApproveClass)
		r.PATCH("/classes/denied/:id", authed, adminOnly, h.DenyClass)
		r.PATCH("/classes/feedback/:id", authed, adminOnly, h.AttachFeedback)
		r.DELETE("/booked-classes/:id", authed, h.DeleteBooking)
	}

	return r
}
