package repository

import (
	"context"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
)

// QuestionRepository serves the shared, read-only question content.
type QuestionRepository interface {
	// FindAll returns every question ordered by id, answers preloaded.
	FindAll(ctx context.Context) ([]domain.Question, error)

	// FindByID returns the question with its answer preloaded, or
	// ErrQuestionNotFound.
	FindByID(ctx context.Context, id uint) (*domain.Question, error)
}
