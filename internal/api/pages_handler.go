package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"careerfair/internal/api/middleware"
	"careerfair/internal/store"
)

// PageHandler serves the front page, the static about page and the login stub.
type PageHandler struct {
	store *store.Store
}

func NewPageHandler(s *store.Store) *PageHandler {
	return &PageHandler{store: s}
}

// Index lists a sample of registered candidate names.
func (h *PageHandler) Index(c *gin.Context) {
	names, err := h.store.SampleCandidateNames(c.Request.Context(), 20)
	if err != nil {
		middleware.LoggerFromContext(c).Error("index query failed", slog.Any("error", err))
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "Internal error. Please try again later.",
		})
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Names": names})
}

// Another serves the static informational page.
func (h *PageHandler) Another(c *gin.Context) {
	c.HTML(http.StatusOK, "another.html", nil)
}

// Login always fails: the portal has no account system.
func (h *PageHandler) Login(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
}
