package handlers

import (
	"strconv"

	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/common/middleware"
	"github.com/architect/learnpath/internal/learnpath/models"
	"github.com/architect/learnpath/internal/learnpath/services"
	"github.com/gin-gonic/gin"
)

// RoadmapHandler serves the topic and subtopic endpoints.
type RoadmapHandler struct {
	svc *services.RoadmapService
}

func NewRoadmapHandler(svc *services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{svc: svc}
}

// ListTopics returns the roadmap topics. Authenticated requests get
// their mastery rollups overlaid; anonymous requests get zeros.
func (h *RoadmapHandler) ListTopics(c *gin.Context) {
	userID, _ := optionalUserID(c)

	topics, err := h.svc.ListTopics(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"topics": topics, "total": len(topics)})
}

// ListSubtopics returns a topic's subtopics with completion overlay.
func (h *RoadmapHandler) ListSubtopics(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("topic_id"), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid topic id"))
		return
	}

	userID, _ := optionalUserID(c)

	resp, err := h.svc.ListSubtopics(userID, uint(topicID))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, resp)
}

// ToggleSubtopic flips a subtopic's completion state for the user and
// regenerates recommendations from the new progress.
func (h *RoadmapHandler) ToggleSubtopic(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	subtopicID, err := strconv.ParseUint(c.Param("subtopic_id"), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid subtopic id"))
		return
	}

	var req models.ToggleSubtopicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("completed flag is required"))
		return
	}

	resp, err := h.svc.ToggleSubtopic(userID, uint(subtopicID), *req.Completed)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, resp)
}

// GetUserProgress returns the user's roadmap completion overview.
func (h *RoadmapHandler) GetUserProgress(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	overview, err := h.svc.UserProgressOverview(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, overview)
}

// optionalUserID resolves the user when auth context is present,
// returning 0 for anonymous requests.
func optionalUserID(c *gin.Context) (uint, bool) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}
	userID, err := strconv.ParseUint(raw.(string), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(userID), true
}
