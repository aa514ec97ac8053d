package handlers

import (
	"strconv"

	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/common/middleware"
	"github.com/architect/learnpath/internal/learnpath/models"
	"github.com/architect/learnpath/internal/learnpath/services"
	"github.com/gin-gonic/gin"
)

// RecommendationHandler serves the recommendation endpoints.
type RecommendationHandler struct {
	engine *services.RecommendationEngine
}

func NewRecommendationHandler(engine *services.RecommendationEngine) *RecommendationHandler {
	return &RecommendationHandler{engine: engine}
}

// GetRecommendations returns the user's active set, best first.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	recs, err := h.engine.ActiveRecommendations(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	out := make([]*models.RecommendationResponse, len(recs))
	for i, r := range recs {
		out[i] = &models.RecommendationResponse{
			ID:          r.ID,
			Type:        r.Type,
			ContentID:   r.ContentID,
			Title:       r.Title,
			Description: r.Description,
			ActionURL:   r.ActionURL,
			Source:      r.Source,
			Priority:    r.Priority,
			CreatedAt:   r.CreatedAt,
		}
	}

	c.JSON(200, out)
}

// Generate triggers the dashboard fallback generation, which derives
// weak topics from recent answer history instead of a fresh
// assessment.
func (h *RecommendationHandler) Generate(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	if err := h.engine.GenerateDaily(userID); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "success", "message": "Recommendations generated"})
}

// Complete marks one recommendation as done.
func (h *RecommendationHandler) Complete(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	recID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid recommendation id"))
		return
	}

	if err := h.engine.CompleteRecommendation(userID, uint(recID)); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"id": recID, "is_completed": true})
}
