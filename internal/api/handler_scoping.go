package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"scopeworks/internal/service"
	"scopeworks/internal/transcript"
	"scopeworks/pkg/logger"
)

type ScopingHandler struct {
	scopingService *service.ScopingService
	transcripts    transcript.Provider
	logger         *zap.Logger
}

func NewScopingHandler(scopingService *service.ScopingService, transcripts transcript.Provider, log *zap.Logger) *ScopingHandler {
	return &ScopingHandler{
		scopingService: scopingService,
		transcripts:    transcripts,
		logger:         log,
	}
}

// resolveText returns the request text, fetching a call transcript when a
// call id is given instead.
func (h *ScopingHandler) resolveText(c *gin.Context, text, callID string) (string, bool) {
	if text != "" {
		return text, true
	}
	if callID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text or call_id required"})
		return "", false
	}
	if h.transcripts == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript provider not configured"})
		return "", false
	}

	fetched, err := h.transcripts.Transcript(c.Request.Context(), callID)
	if err != nil {
		logger.WithTrace(c.Request.Context(), h.logger).Warn("transcript fetch failed",
			zap.String("call_id", callID),
			zap.Error(err),
		)
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch transcript"})
		return "", false
	}
	return fetched, true
}

// Analyze handles POST /scope/analyze
func (h *ScopingHandler) Analyze(c *gin.Context) {
	var req struct {
		SessionID    string   `json:"session_id"`
		Text         string   `json:"text"`
		CallID       string   `json:"call_id"`
		Requirements []string `json:"requirements"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	text, ok := h.resolveText(c, req.Text, req.CallID)
	if !ok {
		return
	}

	userID, _ := currentUserID(c)
	result := h.scopingService.Analyze(c.Request.Context(), req.SessionID, userID, text, req.Requirements)

	c.JSON(http.StatusOK, result)
}

// Questions handles POST /scope/questions
func (h *ScopingHandler) Questions(c *gin.Context) {
	var req struct {
		SessionID string `json:"session_id"`
		Text      string `json:"text" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	set, err := h.scopingService.Questions(c.Request.Context(), req.SessionID, req.Text)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate questions"})
		return
	}

	c.JSON(http.StatusOK, set)
}

// Match handles POST /scope/match
func (h *ScopingHandler) Match(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		CallID string `json:"call_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	text, ok := h.resolveText(c, req.Text, req.CallID)
	if !ok {
		return
	}

	matches := h.scopingService.Match(c.Request.Context(), text, nil)
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// MatchLive handles POST /scope/match/live
func (h *ScopingHandler) MatchLive(c *gin.Context) {
	var req struct {
		Text   string `json:"text"`
		CallID string `json:"call_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	text, ok := h.resolveText(c, req.Text, req.CallID)
	if !ok {
		return
	}

	matches := h.scopingService.MatchLive(c.Request.Context(), text, nil)
	c.JSON(http.StatusOK, gin.H{"matches": matches})
}

// Summary handles POST /scope/summary
func (h *ScopingHandler) Summary(c *gin.Context) {
	var req struct {
		SessionID    string   `json:"session_id"`
		ProjectName  string   `json:"project_name"`
		Text         string   `json:"text" binding:"required"`
		Requirements []string `json:"requirements"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, _ := currentUserID(c)
	analysis := h.scopingService.Analyze(c.Request.Context(), req.SessionID, userID, req.Text, req.Requirements)

	summary, err := h.scopingService.Summary(c.Request.Context(), req.ProjectName, analysis)
	if err != nil {
		logger.WithTrace(c.Request.Context(), h.logger).Warn("summary generation failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to generate summary"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary":  summary,
		"analysis": analysis,
	})
}

// RefreshCatalog handles POST /admin/catalog/refresh
func (h *ScopingHandler) RefreshCatalog(c *gin.Context) {
	if err := h.scopingService.RefreshCatalog(c.Request.Context()); err != nil {
		logger.WithTrace(c.Request.Context(), h.logger).Error("catalog refresh failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to refresh catalog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}
