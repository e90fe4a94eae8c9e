package service

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository"
)

// QuestionService serves the read-only question content.
type QuestionService struct {
	questionRepo repository.QuestionRepository
}

func NewQuestionService(questionRepo repository.QuestionRepository) *QuestionService {
	if questionRepo == nil {
		panic("QuestionRepository cannot be nil for QuestionService")
	}
	return &QuestionService{questionRepo: questionRepo}
}

// List returns all questions ordered by id. The working set is small
// enough that there is no pagination.
func (s *QuestionService) List(ctx context.Context) ([]domain.Question, error) {
	questions, err := s.questionRepo.FindAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("Failed to list questions")
		return nil, ErrInternalServer
	}
	return questions, nil
}

// Get returns a single question or ErrQuestionNotFound.
func (s *QuestionService) Get(ctx context.Context, id uint) (*domain.Question, error) {
	question, err := s.questionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, ErrQuestionNotFound
		}
		logrus.WithError(err).WithField("question_id", id).Error("Failed to load question")
		return nil, ErrInternalServer
	}
	return question, nil
}
