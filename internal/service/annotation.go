package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository"
)

// AnnotationService manages user notes on questions. There is no update
// or delete: annotations are write-once.
type AnnotationService struct {
	annotationRepo repository.AnnotationRepository
	userRepo       repository.UserRepository
	questionRepo   repository.QuestionRepository
}

func NewAnnotationService(
	annotationRepo repository.AnnotationRepository,
	userRepo repository.UserRepository,
	questionRepo repository.QuestionRepository,
) *AnnotationService {
	if annotationRepo == nil || userRepo == nil || questionRepo == nil {
		panic("repositories cannot be nil for AnnotationService")
	}
	return &AnnotationService{
		annotationRepo: annotationRepo,
		userRepo:       userRepo,
		questionRepo:   questionRepo,
	}
}

// Add creates an annotation. Both the user and the question must exist.
func (s *AnnotationService) Add(ctx context.Context, userID, questionID uint, text string) (*domain.Annotation, error) {
	logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "question_id": questionID})

	if text == "" {
		return nil, ErrInvalidInput
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		logCtx.WithError(err).Error("Failed to resolve annotation user")
		return nil, ErrInternalServer
	}
	if _, err := s.questionRepo.FindByID(ctx, questionID); err != nil {
		if errors.Is(err, repository.ErrQuestionNotFound) {
			return nil, ErrQuestionNotFound
		}
		logCtx.WithError(err).Error("Failed to resolve annotation question")
		return nil, ErrInternalServer
	}

	annotation := &domain.Annotation{
		UserID:     userID,
		QuestionID: questionID,
		Timestamp:  time.Now().UTC(),
		Content:    text,
	}
	if err := s.annotationRepo.Create(ctx, annotation); err != nil {
		logCtx.WithError(err).Error("Failed to create annotation")
		return nil, ErrInternalServer
	}

	logCtx.WithField("annotation_id", annotation.ID).Info("Annotation created")
	return annotation, nil
}

// ForQuestion lists annotations on a question, oldest first.
func (s *AnnotationService) ForQuestion(ctx context.Context, questionID uint) ([]domain.Annotation, error) {
	annotations, err := s.annotationRepo.FindByQuestion(ctx, questionID)
	if err != nil {
		logrus.WithError(err).WithField("question_id", questionID).Error("Failed to list annotations")
		return nil, ErrInternalServer
	}
	return annotations, nil
}

// ForUser lists a user's annotations, oldest first.
func (s *AnnotationService) ForUser(ctx context.Context, userID uint) ([]domain.Annotation, error) {
	annotations, err := s.annotationRepo.FindByUser(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to list annotations")
		return nil, ErrInternalServer
	}
	return annotations, nil
}
