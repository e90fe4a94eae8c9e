package repository

import (
	"context"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
)

// AnnotationRepository stores user notes on questions.
type AnnotationRepository interface {
	Create(ctx context.Context, annotation *domain.Annotation) error

	// FindByQuestion lists annotations on a question, oldest first.
	FindByQuestion(ctx context.Context, questionID uint) ([]domain.Annotation, error)

	// FindByUser lists a user's annotations, oldest first.
	FindByUser(ctx context.Context, userID uint) ([]domain.Annotation, error)
}
