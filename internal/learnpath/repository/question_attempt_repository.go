package repository

import (
	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/learnpath/models"
	"gorm.io/gorm"
)

// QuestionAttemptRepository persists per-question answer history.
type QuestionAttemptRepository struct {
	db *gorm.DB
}

func NewQuestionAttemptRepository(db *gorm.DB) *QuestionAttemptRepository {
	return &QuestionAttemptRepository{db: db}
}

// CreateBatch appends answer records for one submission.
func (r *QuestionAttemptRepository) CreateBatch(attempts []*models.QuestionAttempt) error {
	if len(attempts) == 0 {
		return nil
	}
	result := r.db.Create(attempts)
	if result.Error != nil {
		return errors.Internal("failed to save question attempts", result.Error.Error())
	}
	return nil
}

// CorrectQuestionIDs returns the distinct question ids the user has
// ever answered correctly, across all attempts.
func (r *QuestionAttemptRepository) CorrectQuestionIDs(userID uint) ([]uint, error) {
	var ids []uint

	result := r.db.
		Model(&models.QuestionAttempt{}).
		Where("user_id = ? AND is_correct = ?", userID, true).
		Distinct().
		Pluck("question_id", &ids)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch answered questions", result.Error.Error())
	}

	return ids, nil
}

// RecentIncorrect returns the user's most recent incorrect answers.
func (r *QuestionAttemptRepository) RecentIncorrect(userID uint, limit int) ([]*models.QuestionAttempt, error) {
	var attempts []*models.QuestionAttempt

	result := r.db.
		Where("user_id = ? AND is_correct = ?", userID, false).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch incorrect answers", result.Error.Error())
	}

	return attempts, nil
}
