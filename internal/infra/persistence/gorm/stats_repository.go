package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
)

// GormStatsRepository is the GORM implementation of StatsRepository.
type GormStatsRepository struct {
	db *gorm.DB
}

func NewGormStatsRepository(db *gorm.DB) *GormStatsRepository {
	if db == nil {
		panic("database connection cannot be nil for GormStatsRepository")
	}
	return &GormStatsRepository{db: db}
}

func (r *GormStatsRepository) Create(ctx context.Context, record *domain.UserStats) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		return fmt.Errorf("gorm: create completion record (user: %d, question: %d): %w",
			record.UserID, record.FinishedQuestionID, err)
	}
	return nil
}

func (r *GormStatsRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&domain.UserStats{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("gorm: count completions for user %d: %w", userID, err)
	}
	return count, nil
}
