package handler

import (
	"errors"
	"net/http"

	"rockguard/internal/service"
	"rockguard/internal/web"

	"github.com/gin-gonic/gin"
)

// PageHandler renders the two HTML views
type PageHandler struct {
	dashboard DashboardService
}

// NewPageHandler creates a new page handler
func NewPageHandler(svc DashboardService) *PageHandler {
	return &PageHandler{dashboard: svc}
}

// Landing handles GET / requests
func (h *PageHandler) Landing(c *gin.Context) {
	data := web.NewLandingData()
	data.Sent = c.Query("sent") == "1"
	c.HTML(http.StatusOK, web.PageLanding, data)
}

// System handles GET /system requests. Every load starts a fresh dashboard
// session; an unknown ?mine= falls back to the default selection.
func (h *PageHandler) System(c *gin.Context) {
	snap, err := h.dashboard.CreateSession(c.Request.Context(), c.Query("mine"))
	if errors.Is(err, service.ErrInvalid) {
		c.Redirect(http.StatusFound, "/system")
		return
	}
	if err != nil {
		writeError(c, err)
		return
	}
	c.HTML(http.StatusOK, web.PageSystem, web.NewSystemData(*snap))
}
