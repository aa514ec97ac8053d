package repository

import (
	"time"

	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/learnpath/models"
	"gorm.io/gorm"
)

// SubtopicProgressRepository tracks roadmap subtopic completion.
type SubtopicProgressRepository struct {
	db *gorm.DB
}

func NewSubtopicProgressRepository(db *gorm.DB) *SubtopicProgressRepository {
	return &SubtopicProgressRepository{db: db}
}

// Upsert records the completion state of one subtopic for a user.
func (r *SubtopicProgressRepository) Upsert(userID, subtopicID uint, completed bool) error {
	var progress models.SubtopicProgress
	result := r.db.
		Where("user_id = ? AND subtopic_id = ?", userID, subtopicID).
		First(&progress)

	now := time.Now()
	var completedAt *time.Time
	if completed {
		completedAt = &now
	}

	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			return errors.Internal("failed to fetch subtopic progress", result.Error.Error())
		}
		progress = models.SubtopicProgress{
			UserID:      userID,
			SubtopicID:  subtopicID,
			Completed:   completed,
			CompletedAt: completedAt,
		}
		if err := r.db.Create(&progress).Error; err != nil {
			return errors.Internal("failed to save subtopic progress", err.Error())
		}
		return nil
	}

	progress.Completed = completed
	progress.CompletedAt = completedAt
	if err := r.db.Save(&progress).Error; err != nil {
		return errors.Internal("failed to update subtopic progress", err.Error())
	}
	return nil
}

// CompletedIDs returns which of the given subtopics the user has
// completed.
func (r *SubtopicProgressRepository) CompletedIDs(userID uint, subtopicIDs []uint) (map[uint]bool, error) {
	var rows []*models.SubtopicProgress

	result := r.db.
		Where("user_id = ? AND subtopic_id IN ? AND completed = ?", userID, subtopicIDs, true).
		Find(&rows)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch subtopic progress", result.Error.Error())
	}

	completed := make(map[uint]bool, len(rows))
	for _, row := range rows {
		completed[row.SubtopicID] = true
	}
	return completed, nil
}

// AllCompleted returns every completed subtopic id for the user.
func (r *SubtopicProgressRepository) AllCompleted(userID uint) ([]uint, error) {
	var ids []uint

	result := r.db.
		Model(&models.SubtopicProgress{}).
		Where("user_id = ? AND completed = ?", userID, true).
		Pluck("subtopic_id", &ids)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch completed subtopics", result.Error.Error())
	}

	return ids, nil
}

// ProgressRepository maintains the per-topic mastery rollup.
type ProgressRepository struct {
	db *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

// UpsertTopicMastery refreshes a user's mastery rollup for one topic
// and bumps the attempt counter.
func (r *ProgressRepository) UpsertTopicMastery(userID, topicID uint, mastery float64) error {
	now := time.Now()

	var progress models.UserProgress
	result := r.db.
		Where("user_id = ? AND topic_id = ?", userID, topicID).
		First(&progress)

	if result.Error != nil {
		if result.Error != gorm.ErrRecordNotFound {
			return errors.Internal("failed to fetch user progress", result.Error.Error())
		}
		progress = models.UserProgress{
			UserID:       userID,
			TopicID:      topicID,
			MasteryScore: mastery,
			Attempts:     1,
			LastAttempt:  &now,
		}
		if err := r.db.Create(&progress).Error; err != nil {
			return errors.Internal("failed to save user progress", err.Error())
		}
		return nil
	}

	progress.MasteryScore = mastery
	progress.Attempts++
	progress.LastAttempt = &now
	if err := r.db.Save(&progress).Error; err != nil {
		return errors.Internal("failed to update user progress", err.Error())
	}
	return nil
}

// ByUser returns all topic rollups for a user keyed by topic id.
func (r *ProgressRepository) ByUser(userID uint) (map[uint]*models.UserProgress, error) {
	var rows []*models.UserProgress

	result := r.db.Where("user_id = ?", userID).Find(&rows)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch user progress", result.Error.Error())
	}

	byTopic := make(map[uint]*models.UserProgress, len(rows))
	for _, row := range rows {
		byTopic[row.TopicID] = row
	}
	return byTopic, nil
}
