package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"

	"scopeworks/internal/model"
	"scopeworks/internal/service"
	"scopeworks/internal/wbs"
)

type WBSHandler struct {
	planService *service.PlanService
}

func NewWBSHandler(planService *service.PlanService) *WBSHandler {
	return &WBSHandler{
		planService: planService,
	}
}

// Generate handles POST /wbs
func (h *WBSHandler) Generate(c *gin.Context) {
	var req struct {
		ProjectName string               `json:"project_name" binding:"required"`
		Matches     []model.ServiceMatch `json:"matches" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	w, err := h.planService.Generate(c.Request.Context(), userID, req.Matches, req.ProjectName)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate wbs"})
		return
	}

	c.JSON(http.StatusOK, w)
}

// List handles GET /wbs
func (h *WBSHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	summaries, err := h.planService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list wbs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"wbs": summaries})
}

// Get handles GET /wbs/:id
func (h *WBSHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	w, err := h.planService.Get(c.Request.Context(), c.Param("id"), userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "wbs not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load wbs"})
		return
	}

	c.JSON(http.StatusOK, w)
}

// Export handles GET /wbs/:id/export?format=json|csv
func (h *WBSHandler) Export(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	format := c.DefaultQuery("format", wbs.FormatJSON)
	if format != wbs.FormatJSON && format != wbs.FormatCSV {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format"})
		return
	}

	data, err := h.planService.Export(c.Request.Context(), c.Param("id"), userID, format)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "wbs not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to export wbs"})
		return
	}

	switch format {
	case wbs.FormatCSV:
		c.Header("Content-Disposition", `attachment; filename="wbs.csv"`)
		c.Data(http.StatusOK, "text/csv", data)
	default:
		c.Data(http.StatusOK, "application/json", data)
	}
}
