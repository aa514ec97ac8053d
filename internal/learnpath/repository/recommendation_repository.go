package repository

import (
	"github.com/architect/learnpath/internal/common/errors"
	"github.com/architect/learnpath/internal/learnpath/models"
	"gorm.io/gorm"
)

// RecommendationRepository owns the per-user recommendation set.
type RecommendationRepository struct {
	db *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// ReplaceForUser atomically swaps the user's recommendation set:
// every existing row for the user is deleted and the fresh set is
// inserted inside one transaction, so concurrent runs can never
// interleave a clear from one run with inserts from another.
func (r *RecommendationRepository) ReplaceForUser(userID uint, recs []*models.Recommendation) error {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&models.Recommendation{}).Error; err != nil {
			return err
		}
		if len(recs) == 0 {
			return nil
		}
		return tx.Create(recs).Error
	})

	if err != nil {
		return errors.Internal("failed to replace recommendations", err.Error())
	}
	return nil
}

// ActiveForUser retrieves the user's active set, priority descending
// with insertion order as the stable tie-break.
func (r *RecommendationRepository) ActiveForUser(userID uint, limit int) ([]*models.Recommendation, error) {
	var recs []*models.Recommendation

	result := r.db.
		Where("user_id = ? AND is_completed = ?", userID, false).
		Order("priority DESC, id ASC").
		Limit(limit).
		Find(&recs)

	if result.Error != nil {
		return nil, errors.Internal("failed to fetch recommendations", result.Error.Error())
	}

	return recs, nil
}

// Complete marks one recommendation done, scoped to its owner.
func (r *RecommendationRepository) Complete(userID, recID uint) error {
	result := r.db.
		Model(&models.Recommendation{}).
		Where("id = ? AND user_id = ?", recID, userID).
		Update("is_completed", true)

	if result.Error != nil {
		return errors.Internal("failed to complete recommendation", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("recommendation")
	}
	return nil
}
