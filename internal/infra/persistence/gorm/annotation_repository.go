package gormpersistence

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
)

// GormAnnotationRepository is the GORM implementation of
// AnnotationRepository.
type GormAnnotationRepository struct {
	db *gorm.DB
}

func NewGormAnnotationRepository(db *gorm.DB) *GormAnnotationRepository {
	if db == nil {
		panic("database connection cannot be nil for GormAnnotationRepository")
	}
	return &GormAnnotationRepository{db: db}
}

func (r *GormAnnotationRepository) Create(ctx context.Context, annotation *domain.Annotation) error {
	if err := r.db.WithContext(ctx).Create(annotation).Error; err != nil {
		return fmt.Errorf("gorm: create annotation (user: %d, question: %d): %w",
			annotation.UserID, annotation.QuestionID, err)
	}
	return nil
}

func (r *GormAnnotationRepository) FindByQuestion(ctx context.Context, questionID uint) ([]domain.Annotation, error) {
	var annotations []domain.Annotation
	err := r.db.WithContext(ctx).
		Where("question_id = ?", questionID).
		Order("timestamp ASC").
		Find(&annotations).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list annotations for question %d: %w", questionID, err)
	}
	return annotations, nil
}

func (r *GormAnnotationRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Annotation, error) {
	var annotations []domain.Annotation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp ASC").
		Find(&annotations).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list annotations for user %d: %w", userID, err)
	}
	return annotations, nil
}
