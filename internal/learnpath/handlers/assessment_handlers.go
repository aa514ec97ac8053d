package handlers

import (
	"strconv"
	"strings"

	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/common/middleware"
	"github.com/architect/learnpath/internal/learnpath/catalog"
	"github.com/architect/learnpath/internal/learnpath/models"
	"github.com/architect/learnpath/internal/learnpath/services"
	"github.com/gin-gonic/gin"
)

// AssessmentHandler serves the quiz endpoints.
type AssessmentHandler struct {
	svc *services.AssessmentService
}

func NewAssessmentHandler(svc *services.AssessmentService) *AssessmentHandler {
	return &AssessmentHandler{svc: svc}
}

// questionView is a pool question as served to clients. The correct
// answer index never leaves the server.
type questionView struct {
	ID         uint     `json:"id"`
	TopicID    uint     `json:"topic_id"`
	Topic      string   `json:"topic"`
	Text       string   `json:"text"`
	Options    []string `json:"options"`
	Difficulty string   `json:"difficulty"`
}

func toQuestionViews(questions []catalog.Question) []questionView {
	views := make([]questionView, len(questions))
	for i, q := range questions {
		views[i] = questionView{
			ID:         q.ID,
			TopicID:    q.TopicID,
			Topic:      q.Topic,
			Text:       q.Text,
			Options:    q.Options,
			Difficulty: q.Difficulty,
		}
	}
	return views
}

// GetDiagnostic returns the diagnostic pool, optionally filtered by a
// comma-separated topic_ids query parameter.
func (h *AssessmentHandler) GetDiagnostic(c *gin.Context) {
	questions := catalog.Questions()

	if topicIDs := c.Query("topic_ids"); topicIDs != "" {
		wanted := make(map[uint]bool)
		for _, part := range strings.Split(topicIDs, ",") {
			id, err := strconv.ParseUint(strings.TrimSpace(part), 10, 32)
			if err != nil {
				middleware.JSONErrorResponse(c, errors.BadRequest("invalid topic_ids parameter"))
				return
			}
			wanted[uint(id)] = true
		}
		var filtered []catalog.Question
		for _, q := range questions {
			if wanted[q.TopicID] {
				filtered = append(filtered, q)
			}
		}
		questions = filtered
	}

	c.JSON(200, gin.H{
		"questions": toQuestionViews(questions),
		"total":     len(questions),
		"can_skip":  true,
	})
}

// GetTopicQuestions returns the pool questions for one topic.
func (h *AssessmentHandler) GetTopicQuestions(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("topic_id"), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid topic id"))
		return
	}

	questions := catalog.QuestionsForTopic(uint(topicID))
	c.JSON(200, gin.H{
		"questions": toQuestionViews(questions),
		"total":     len(questions),
		"can_skip":  true,
	})
}

// SubmitAssessment scores a submission for the authenticated user.
func (h *AssessmentHandler) SubmitAssessment(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	var req models.SubmitAssessmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid submission payload"))
		return
	}

	result, err := h.svc.SubmitAssessment(userID, req)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, result)
}

// GetHistory lists the user's attempts, summary fields only.
func (h *AssessmentHandler) GetHistory(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	history, err := h.svc.AttemptHistory(userID)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"attempts": history, "total": len(history)})
}

// GetAttemptDetail returns one attempt with its full report.
func (h *AssessmentHandler) GetAttemptDetail(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	attemptID, err := strconv.ParseUint(c.Param("attempt_id"), 10, 32)
	if err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid attempt id"))
		return
	}

	detail, err := h.svc.AttemptDetail(userID, uint(attemptID))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, detail)
}

// currentUserID resolves the authenticated user from the context set
// by the auth middleware.
func currentUserID(c *gin.Context) (uint, error) {
	raw, exists := c.Get("user_id")
	if !exists {
		return 0, errors.Unauthorized("missing authentication")
	}

	userID, err := strconv.ParseUint(raw.(string), 10, 32)
	if err != nil {
		return 0, errors.Unauthorized("invalid user identity")
	}

	return uint(userID), nil
}
