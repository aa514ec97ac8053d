package repository

import (
	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/learnpath/models"
	"gorm.io/gorm"
)

// AttemptRepository persists quiz attempts. Attempts are append-only:
// there is no update or delete path.
type AttemptRepository struct {
	db *gorm.DB
}

func NewAttemptRepository(db *gorm.DB) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// Create appends one attempt and returns its assigned id.
func (r *AttemptRepository) Create(attempt *models.QuizAttempt) (uint, error) {
	result := r.db.Create(attempt)
	if result.Error != nil {
		return 0, errors.Internal("failed to save quiz attempt", result.Error.Error())
	}
	return attempt.ID, nil
}

// ListByUser retrieves a user's attempts, newest first.
func (r *AttemptRepository) ListByUser(userID uint, limit int) ([]*models.QuizAttempt, error) {
	var attempts []*models.QuizAttempt

	result := r.db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&attempts)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch quiz attempts", result.Error.Error())
	}

	return attempts, nil
}

// GetByID retrieves one attempt scoped to its owner.
func (r *AttemptRepository) GetByID(userID, attemptID uint) (*models.QuizAttempt, error) {
	var attempt models.QuizAttempt
	result := r.db.
		Where("user_id = ?", userID).
		First(&attempt, attemptID)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, errors.Internal("failed to fetch quiz attempt", result.Error.Error())
	}

	return &attempt, nil
}

// RecentByUser retrieves the user's n most recent attempts.
func (r *AttemptRepository) RecentByUser(userID uint, n int) ([]*models.QuizAttempt, error) {
	return r.ListByUser(userID, n)
}
