package gormpersistence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository"
)

// GormQuestionRepository is the GORM implementation of QuestionRepository.
type GormQuestionRepository struct {
	db *gorm.DB
}

func NewGormQuestionRepository(db *gorm.DB) *GormQuestionRepository {
	if db == nil {
		panic("database connection cannot be nil for GormQuestionRepository")
	}
	return &GormQuestionRepository{db: db}
}

func (r *GormQuestionRepository) FindAll(ctx context.Context) ([]domain.Question, error) {
	var questions []domain.Question
	err := r.db.WithContext(ctx).
		Preload("Answer").
		Order("id ASC").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("gorm: list questions: %w", err)
	}
	return questions, nil
}

func (r *GormQuestionRepository) FindByID(ctx context.Context, id uint) (*domain.Question, error) {
	var question domain.Question
	err := r.db.WithContext(ctx).
		Preload("Answer").
		First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrQuestionNotFound
		}
		return nil, fmt.Errorf("gorm: find question by id %d: %w", id, err)
	}
	return &question, nil
}
