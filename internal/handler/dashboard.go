package handler

import (
	"context"
	"net/http"

	"rockguard/internal/charts"
	"rockguard/internal/dashboard"
	"rockguard/internal/models"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the dashboard JSON API
type DashboardHandler struct {
	service DashboardService
}

// DashboardService interface for dependency injection
type DashboardService interface {
	Mines(context.Context) []models.Mine
	HeatLayer(context.Context, string) (*models.HeatLayer, error)
	CreateSession(context.Context, string) (*dashboard.Snapshot, error)
	Snapshot(context.Context, string) (*dashboard.Snapshot, error)
	Select(context.Context, string, string) (*dashboard.MapUpdate, error)
	Unmount(context.Context, string) error
	Panel(context.Context, string) (*charts.Panel, error)
}

// SelectRequest is the body of POST /api/sessions/{id}/select
type SelectRequest struct {
	Mine string `json:"mine" form:"mine"`
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// ListMines handles GET /api/mines requests
//
//	@Summary	List monitored mines
//	@Tags		mines
//	@Produce	json
//	@Success	200	{array}	models.Mine
//	@Router		/api/mines [get]
func (h *DashboardHandler) ListMines(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Mines(c.Request.Context()))
}

// MineHeat handles GET /api/mines/{name}/heat requests
//
//	@Summary	Heat overlay of a mine
//	@Tags		mines
//	@Produce	json
//	@Param		name	path		string	true	"Mine name"
//	@Success	200		{object}	models.HeatLayer
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/mines/{name}/heat [get]
func (h *DashboardHandler) MineHeat(c *gin.Context) {
	layer, err := h.service.HeatLayer(c.Request.Context(), c.Param("name"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, layer)
}

// CreateSession handles POST /api/sessions requests
//
//	@Summary	Start a dashboard session
//	@Tags		sessions
//	@Produce	json
//	@Param		mine	query		string	false	"Preselected mine"
//	@Success	201		{object}	dashboard.Snapshot
//	@Failure	400		{object}	ErrorResponse
//	@Failure	503		{object}	ErrorResponse
//	@Router		/api/sessions [post]
func (h *DashboardHandler) CreateSession(c *gin.Context) {
	snap, err := h.service.CreateSession(c.Request.Context(), c.Query("mine"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, snap)
}

// GetSession handles GET /api/sessions/{id} requests
//
//	@Summary	Dashboard snapshot
//	@Tags		sessions
//	@Produce	json
//	@Param		id	path		string	true	"Session id"
//	@Success	200	{object}	dashboard.Snapshot
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/sessions/{id} [get]
func (h *DashboardHandler) GetSession(c *gin.Context) {
	snap, err := h.service.Snapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// SelectMine handles POST /api/sessions/{id}/select requests
//
//	@Summary	Select a mine
//	@Tags		sessions
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string			true	"Session id"
//	@Param		body	body		SelectRequest	true	"Mine to select"
//	@Success	200		{object}	dashboard.MapUpdate
//	@Failure	400		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/sessions/{id}/select [post]
func (h *DashboardHandler) SelectMine(c *gin.Context) {
	var req SelectRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed request body"})
		return
	}

	update, err := h.service.Select(c.Request.Context(), c.Param("id"), req.Mine)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, update)
}

// UnmountSession handles POST /api/sessions/{id}/unmount requests
//
//	@Summary	Release a dashboard's map
//	@Tags		sessions
//	@Param		id	path	string	true	"Session id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/sessions/{id}/unmount [post]
func (h *DashboardHandler) UnmountSession(c *gin.Context) {
	if err := h.service.Unmount(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ChartPanel handles GET /api/charts/{panel} requests
//
//	@Summary	Chart panel data
//	@Tags		charts
//	@Produce	json
//	@Param		panel	path		string	true	"structural, environmental or weekly-risk"
//	@Success	200		{object}	charts.Panel
//	@Failure	404		{object}	ErrorResponse
//	@Router		/api/charts/{panel} [get]
func (h *DashboardHandler) ChartPanel(c *gin.Context) {
	panel, err := h.service.Panel(c.Request.Context(), c.Param("panel"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, panel)
}

// ChartSVG handles GET /api/charts/{panel}/svg requests
//
//	@Summary	Chart panel rendered as SVG
//	@Tags		charts
//	@Produce	image/svg+xml
//	@Param		panel	path	string	true	"structural, environmental or weekly-risk"
//	@Param		width	query	int		false	"Width in pixels"	default(600)
//	@Success	200
//	@Failure	404	{object}	ErrorResponse
//	@Router		/api/charts/{panel}/svg [get]
func (h *DashboardHandler) ChartSVG(c *gin.Context) {
	panel, err := h.service.Panel(c.Request.Context(), c.Param("panel"))
	if err != nil {
		writeError(c, err)
		return
	}

	var q struct {
		Width int `form:"width"`
	}
	if err := c.ShouldBindQuery(&q); err != nil || q.Width < 100 || q.Width > 2400 {
		q.Width = 600
	}
	c.Data(http.StatusOK, "image/svg+xml; charset=utf-8", []byte(charts.RenderSVG(*panel, q.Width, panel.Height)))
}
