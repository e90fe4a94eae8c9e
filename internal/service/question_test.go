package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository/mocks"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/service"
)

func TestQuestionService_List(t *testing.T) {
	questionRepo := new(mocks.QuestionRepository)
	svc := service.NewQuestionService(questionRepo)
	ctx := context.Background()

	stored := []domain.Question{
		{ID: 1, Content: domain.ContentColumn{Content: domain.MarkdownContent{Source: "What is overfitting?"}}},
		{ID: 2, Content: domain.ContentColumn{Content: domain.MarkdownContent{Source: "Explain p-values."}}},
	}
	questionRepo.On("FindAll", ctx).Return(stored, nil).Once()

	questions, err := svc.List(ctx)

	require.NoError(t, err)
	require.Len(t, questions, 2)
	assert.Equal(t, uint(1), questions[0].ID)
	assert.Equal(t, uint(2), questions[1].ID)
	questionRepo.AssertExpectations(t)
}

func TestQuestionService_Get_NotFound(t *testing.T) {
	questionRepo := new(mocks.QuestionRepository)
	svc := service.NewQuestionService(questionRepo)
	ctx := context.Background()

	questionRepo.On("FindByID", ctx, uint(999)).
		Return(nil, repository.ErrQuestionNotFound).Once()

	_, err := svc.Get(ctx, 999)

	assert.ErrorIs(t, err, service.ErrQuestionNotFound)
	questionRepo.AssertExpectations(t)
}
