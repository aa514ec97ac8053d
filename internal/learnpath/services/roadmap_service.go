package services

import (
	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/learnpath/catalog"
	"github.com/architect/learnpath/internal/learnpath/models"
	"github.com/architect/learnpath/internal/learnpath/repository"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RoadmapService tracks subtopic completion and serves the roadmap
// views. Toggling a subtopic feeds the recommendation engine's
// progress entry point.
type RoadmapService struct {
	subtopics *repository.SubtopicProgressRepository
	progress  *repository.ProgressRepository
	engine    *RecommendationEngine
	log       *zap.Logger
}

func NewRoadmapService(db *gorm.DB, engine *RecommendationEngine, log *zap.Logger) *RoadmapService {
	return &RoadmapService{
		subtopics: repository.NewSubtopicProgressRepository(db),
		progress:  repository.NewProgressRepository(db),
		engine:    engine,
		log:       log,
	}
}

// SubtopicView is a catalog subtopic with the user's completion state.
type SubtopicView struct {
	catalog.Subtopic
	Completed bool `json:"completed"`
}

// SubtopicListResponse is the roadmap view of one topic.
type SubtopicListResponse struct {
	TopicID   uint           `json:"topic_id"`
	Subtopics []SubtopicView `json:"subtopics"`
	Total     int            `json:"total"`
	Completed int            `json:"completed"`
	Progress  float64        `json:"progress"`
}

// TopicView is a catalog topic with the user's mastery rollup.
type TopicView struct {
	catalog.Topic
	MasteryScore float64 `json:"mastery_score"`
	Attempts     int     `json:"attempts"`
}

// ListSubtopics returns a topic's subtopics with completion overlay.
// userID 0 means anonymous: everything reads as not completed.
func (s *RoadmapService) ListSubtopics(userID, topicID uint) (*SubtopicListResponse, error) {
	subtopicList := catalog.SubtopicsForTopic(topicID)

	completedIDs := map[uint]bool{}
	if userID != 0 && len(subtopicList) > 0 {
		ids := make([]uint, len(subtopicList))
		for i, st := range subtopicList {
			ids[i] = st.ID
		}
		var err error
		completedIDs, err = s.subtopics.CompletedIDs(userID, ids)
		if err != nil {
			return nil, err
		}
	}

	resp := &SubtopicListResponse{
		TopicID:   topicID,
		Subtopics: make([]SubtopicView, len(subtopicList)),
		Total:     len(subtopicList),
	}
	for i, st := range subtopicList {
		done := completedIDs[st.ID]
		resp.Subtopics[i] = SubtopicView{Subtopic: st, Completed: done}
		if done {
			resp.Completed++
		}
	}
	if resp.Total > 0 {
		resp.Progress = float64(resp.Completed) / float64(resp.Total)
	}
	return resp, nil
}

// ToggleSubtopic updates one subtopic's completion state, recomputes
// the topic's progress and hands both to the recommendation engine.
// Engine failure is logged, never surfaced: the toggle itself is the
// primary effect.
func (s *RoadmapService) ToggleSubtopic(userID, subtopicID uint, completed bool) (*models.ToggleSubtopicResponse, error) {
	_, topicID, ok := catalog.FindSubtopic(subtopicID)
	if !ok {
		return nil, errors.NotFound("subtopic")
	}

	if err := s.subtopics.Upsert(userID, subtopicID, completed); err != nil {
		return nil, err
	}

	subtopicList := catalog.SubtopicsForTopic(topicID)
	ids := make([]uint, len(subtopicList))
	for i, st := range subtopicList {
		ids[i] = st.ID
	}
	completedIDs, err := s.subtopics.CompletedIDs(userID, ids)
	if err != nil {
		return nil, err
	}

	progress := models.TopicProgress{Total: len(subtopicList), Completed: len(completedIDs)}

	if err := s.engine.GenerateFromProgress(userID, topicID, subtopicID, completed, progress); err != nil {
		s.log.Error("recommendation generation failed after subtopic toggle",
			zap.Uint("user_id", userID),
			zap.Uint("subtopic_id", subtopicID),
			zap.Error(err))
	}

	message := "Subtopic marked as incomplete"
	if completed {
		message = "Subtopic marked as complete"
	}

	return &models.ToggleSubtopicResponse{
		SubtopicID:     subtopicID,
		Completed:      completed,
		Message:        message,
		TopicID:        topicID,
		TopicCompleted: progress.Total > 0 && progress.Completed == progress.Total,
		TopicProgress:  progress,
	}, nil
}

// UserProgressOverview returns completed subtopic ids grouped by
// topic plus per-topic progress fractions.
func (s *RoadmapService) UserProgressOverview(userID uint) (map[string]interface{}, error) {
	completedIDs, err := s.subtopics.AllCompleted(userID)
	if err != nil {
		return nil, err
	}

	completedSet := make(map[uint]bool, len(completedIDs))
	for _, id := range completedIDs {
		completedSet[id] = true
	}

	completedByTopic := make(map[uint][]uint)
	topicProgress := make(map[uint]map[string]interface{})
	for _, t := range catalog.Topics() {
		subtopicList := catalog.SubtopicsForTopic(t.ID)
		var done []uint
		for _, st := range subtopicList {
			if completedSet[st.ID] {
				done = append(done, st.ID)
			}
		}
		if len(done) > 0 {
			completedByTopic[t.ID] = done
		}
		progress := 0.0
		if len(subtopicList) > 0 {
			progress = float64(len(done)) / float64(len(subtopicList))
		}
		topicProgress[t.ID] = map[string]interface{}{
			"completed": len(done),
			"total":     len(subtopicList),
			"progress":  progress,
		}
	}

	return map[string]interface{}{
		"completed_subtopic_ids": completedIDs,
		"completed_by_topic":     completedByTopic,
		"topic_progress":         topicProgress,
	}, nil
}

// ListTopics returns the roadmap topics with the user's mastery
// rollups. userID 0 means anonymous: rollups read as zero.
func (s *RoadmapService) ListTopics(userID uint) ([]TopicView, error) {
	rollups := map[uint]*models.UserProgress{}
	if userID != 0 {
		var err error
		rollups, err = s.progress.ByUser(userID)
		if err != nil {
			return nil, err
		}
	}

	topics := catalog.Topics()
	views := make([]TopicView, len(topics))
	for i, t := range topics {
		views[i] = TopicView{Topic: t}
		if p, ok := rollups[t.ID]; ok {
			views[i].MasteryScore = p.MasteryScore
			views[i].Attempts = p.Attempts
		}
	}
	return views, nil
}
