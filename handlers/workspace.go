package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"coworking/models"
	"coworking/services/workspace"

	"github.com/gin-gonic/gin"
)

type WorkspaceHandler struct {
	WorkspaceService workspace.WorkspaceService
}

func NewWorkspaceHandler(svc workspace.WorkspaceService) *WorkspaceHandler {
	return &WorkspaceHandler{WorkspaceService: svc}
}

// parseWorkspaceFilter reads ?type=&features=a,b&priceMin=&priceMax=&capacityMin=&capacityMax=&sort=.
func parseWorkspaceFilter(c *gin.Context) (models.WorkspaceFilter, error) {
	f := models.WorkspaceFilter{
		Type: c.Query("type"),
		Sort: c.Query("sort"),
	}
	if raw := c.Query("features"); raw != "" {
		for _, feat := range strings.Split(raw, ",") {
			if feat = strings.TrimSpace(feat); feat != "" {
				f.Features = append(f.Features, feat)
			}
		}
	}

	for key, dst := range map[string]**float64{"priceMin": &f.PriceMin, "priceMax": &f.PriceMax} {
		if raw := c.Query(key); raw != "" {
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return f, fmt.Errorf("%s must be a number", key)
			}
			*dst = &v
		}
	}
	for key, dst := range map[string]**int{"capacityMin": &f.CapacityMin, "capacityMax": &f.CapacityMax} {
		if raw := c.Query(key); raw != "" {
			v, err := strconv.Atoi(raw)
			if err != nil {
				return f, fmt.Errorf("%s must be an integer", key)
			}
			*dst = &v
		}
	}
	return f, nil
}

// ListWorkspacesHandler handles GET /api/workspaces.
func (h *WorkspaceHandler) ListWorkspacesHandler(c *gin.Context) {
	h.list(c, true)
}

// AdminListWorkspacesHandler handles GET /api/admin/workspaces, inactive included.
func (h *WorkspaceHandler) AdminListWorkspacesHandler(c *gin.Context) {
	h.list(c, false)
}

func (h *WorkspaceHandler) list(c *gin.Context, activeOnly bool) {
	filter, err := parseWorkspaceFilter(c)
	if err != nil {
		badRequest(c, err)
		return
	}
	filter.ActiveOnly = activeOnly

	list, err := h.WorkspaceService.ListWorkspaces(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	if list == nil {
		list = []models.Workspace{}
	}
	c.JSON(http.StatusOK, list)
}

// GetWorkspaceHandler handles GET /api/workspaces/:id.
func (h *WorkspaceHandler) GetWorkspaceHandler(c *gin.Context) {
	ws, err := h.WorkspaceService.GetWorkspace(c.Request.Context(), c.Param("id"), false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ws)
}

// CreateWorkspaceHandler handles POST /api/admin/workspaces.
func (h *WorkspaceHandler) CreateWorkspaceHandler(c *gin.Context) {
	var input models.WorkspaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	ws, err := h.WorkspaceService.CreateWorkspace(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ws)
}

// UpdateWorkspaceHandler handles PUT /api/admin/workspaces/:id.
func (h *WorkspaceHandler) UpdateWorkspaceHandler(c *gin.Context) {
	var input models.WorkspaceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	ws, err := h.WorkspaceService.UpdateWorkspace(c.Request.Context(), c.Param("id"), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ws)
}

// ToggleWorkspaceHandler handles PATCH /api/admin/workspaces/:id/toggle.
func (h *WorkspaceHandler) ToggleWorkspaceHandler(c *gin.Context) {
	ws, err := h.WorkspaceService.ToggleWorkspace(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ws)
}
