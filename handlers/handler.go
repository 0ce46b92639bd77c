package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/soyedarif/ralph-s-crafts-server/auth"
	"github.com/soyedarif/ralph-s-crafts-server/services"
	"github.com/soyedarif/ralph-s-crafts-server/store"
)

// Handler carries the injected collaborators for every route.
type Handler struct {
	store      store.Store
	tokens     *auth.TokenService
	notify     *services.Notifier
	logger     *zap.Logger
	legacyOpen bool
}

func New(st store.Store, tokens *auth.TokenService, notify *services.Notifier, logger *zap.Logger, legacyOpen bool) *Handler {
	return &Handler{
		store:      st,
		tokens:     tokens,
		notify:     notify,
		logger:     logger,
		legacyOpen: legacyOpen,
	}
}

func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": true, "message": message})
}

// storeFailure hides store error detail behind an opaque 500.
func (h *Handler) storeFailure(c *gin.Context, op string, err error) {
	h.logger.Error("store failure", zap.String("op", op), zap.Error(err))
	fail(c, http.StatusInternalServerError, "something went wrong")
}

func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ralph is on the run")
}
