package services

import (
	"github.com/mwangiben/skill_share/models"
	"gorm.io/gorm"
)

type ratingAggregate struct {
	Avg   float64
	Count int64
}

// RecomputeSkillRating refreshes Skill.rating and Skill.total_reviews as the
// mean and count over all review rows for the skill. A single aggregate
// query inside the caller's transaction keeps concurrent review writes from
// publishing a stale average.
func RecomputeSkillRating(tx *gorm.DB, skillID uint) error {
	var agg ratingAggregate
	if err := tx.Model(&models.Review{}).
		Where("skill_id = ?", skillID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&agg).Error; err != nil {
		return err
	}

	return tx.Model(&models.Skill{}).Where("id = ?", skillID).
		Updates(map[string]interface{}{
			"rating":        agg.Avg,
			"total_reviews": agg.Count,
		}).Error
}

// RecomputeUserRating does the same over reviews received by the user.
func RecomputeUserRating(tx *gorm.DB, userID uint) error {
	var agg ratingAggregate
	if err := tx.Model(&models.Review{}).
		Where("reviewee_id = ?", userID).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Scan(&agg).Error; err != nil {
		return err
	}

	return tx.Model(&models.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"rating":        agg.Avg,
			"total_reviews": agg.Count,
		}).Error
}
