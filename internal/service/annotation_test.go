package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository/mocks"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/service"
)

func newAnnotationService() (*service.AnnotationService, *mocks.AnnotationRepository, *mocks.UserRepository, *mocks.QuestionRepository) {
	annotationRepo := new(mocks.AnnotationRepository)
	userRepo := new(mocks.UserRepository)
	questionRepo := new(mocks.QuestionRepository)
	return service.NewAnnotationService(annotationRepo, userRepo, questionRepo), annotationRepo, userRepo, questionRepo
}

func TestAnnotationService_Add_Success(t *testing.T) {
	// Arrange
	svc, annotationRepo, userRepo, questionRepo := newAnnotationService()
	ctx := context.Background()
	before := time.Now().UTC()

	userRepo.On("FindByID", ctx, uint(1)).
		Return(&domain.User{ID: 1, Username: "alice"}, nil).Once()
	questionRepo.On("FindByID", ctx, uint(1)).
		Return(&domain.Question{ID: 1}, nil).Once()
	annotationRepo.On("Create", ctx, mock.MatchedBy(func(a *domain.Annotation) bool {
		return a.UserID == 1 && a.QuestionID == 1 && a.Content == "good question" && !a.Timestamp.Before(before)
	})).
		Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Annotation).ID = 42
		}).
		Return(nil).Once()

	// Act
	annotation, err := svc.Add(ctx, 1, 1, "good question")

	// Assert
	require.NoError(t, err)
	require.NotNil(t, annotation)
	assert.Equal(t, uint(42), annotation.ID)
	assert.Equal(t, "good question", annotation.Content)
	assert.False(t, annotation.Timestamp.Before(before))

	annotationRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	questionRepo.AssertExpectations(t)
}

func TestAnnotationService_Add_UserMissing(t *testing.T) {
	svc, annotationRepo, userRepo, _ := newAnnotationService()
	ctx := context.Background()

	userRepo.On("FindByID", ctx, uint(99)).
		Return(nil, repository.ErrUserNotFound).Once()

	_, err := svc.Add(ctx, 99, 1, "note")

	assert.ErrorIs(t, err, service.ErrUserNotFound)
	annotationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAnnotationService_Add_QuestionMissing(t *testing.T) {
	svc, annotationRepo, userRepo, questionRepo := newAnnotationService()
	ctx := context.Background()

	userRepo.On("FindByID", ctx, uint(1)).
		Return(&domain.User{ID: 1}, nil).Once()
	questionRepo.On("FindByID", ctx, uint(404)).
		Return(nil, repository.ErrQuestionNotFound).Once()

	_, err := svc.Add(ctx, 1, 404, "note")

	assert.ErrorIs(t, err, service.ErrQuestionNotFound)
	annotationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAnnotationService_Add_EmptyText(t *testing.T) {
	svc, annotationRepo, userRepo, _ := newAnnotationService()

	_, err := svc.Add(context.Background(), 1, 1, "")

	assert.ErrorIs(t, err, service.ErrInvalidInput)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	annotationRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAnnotationService_ForQuestion(t *testing.T) {
	svc, annotationRepo, _, _ := newAnnotationService()
	ctx := context.Background()
	stored := []domain.Annotation{
		{ID: 42, UserID: 1, QuestionID: 1, Content: "good question", Timestamp: time.Now().UTC()},
	}

	annotationRepo.On("FindByQuestion", ctx, uint(1)).Return(stored, nil).Once()

	annotations, err := svc.ForQuestion(ctx, 1)

	require.NoError(t, err)
	require.Len(t, annotations, 1)
	assert.Equal(t, "good question", annotations[0].Content)
	annotationRepo.AssertExpectations(t)
}

func TestAnnotationService_ForUser(t *testing.T) {
	svc, annotationRepo, _, _ := newAnnotationService()
	ctx := context.Background()

	annotationRepo.On("FindByUser", ctx, uint(3)).
		Return([]domain.Annotation{{ID: 1, UserID: 3, QuestionID: 2, Content: "revisit"}}, nil).Once()

	annotations, err := svc.ForUser(ctx, 3)

	require.NoError(t, err)
	require.Len(t, annotations, 1)
	assert.Equal(t, uint(3), annotations[0].UserID)
	annotationRepo.AssertExpectations(t)
}
