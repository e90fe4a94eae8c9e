// Package mocks provides testify mocks for the repository interfaces.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
)

// UserRepository mocks repository.UserRepository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	args := m.Called(ctx, id)
	var user *domain.User
	if v := args.Get(0); v != nil {
		user = v.(*domain.User)
	}
	return user, args.Error(1)
}

func (m *UserRepository) Save(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepository) UpdateLastSeen(ctx context.Context, userID uint, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

// QuestionRepository mocks repository.QuestionRepository.
type QuestionRepository struct {
	mock.Mock
}

func (m *QuestionRepository) FindAll(ctx context.Context) ([]domain.Question, error) {
	args := m.Called(ctx)
	var questions []domain.Question
	if v := args.Get(0); v != nil {
		questions = v.([]domain.Question)
	}
	return questions, args.Error(1)
}

func (m *QuestionRepository) FindByID(ctx context.Context, id uint) (*domain.Question, error) {
	args := m.Called(ctx, id)
	var question *domain.Question
	if v := args.Get(0); v != nil {
		question = v.(*domain.Question)
	}
	return question, args.Error(1)
}

// AnnotationRepository mocks repository.AnnotationRepository.
type AnnotationRepository struct {
	mock.Mock
}

func (m *AnnotationRepository) Create(ctx context.Context, annotation *domain.Annotation) error {
	args := m.Called(ctx, annotation)
	return args.Error(0)
}

func (m *AnnotationRepository) FindByQuestion(ctx context.Context, questionID uint) ([]domain.Annotation, error) {
	args := m.Called(ctx, questionID)
	var annotations []domain.Annotation
	if v := args.Get(0); v != nil {
		annotations = v.([]domain.Annotation)
	}
	return annotations, args.Error(1)
}

func (m *AnnotationRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Annotation, error) {
	args := m.Called(ctx, userID)
	var annotations []domain.Annotation
	if v := args.Get(0); v != nil {
		annotations = v.([]domain.Annotation)
	}
	return annotations, args.Error(1)
}

// StatsRepository mocks repository.StatsRepository.
type StatsRepository struct {
	mock.Mock
}

func (m *StatsRepository) Create(ctx context.Context, record *domain.UserStats) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *StatsRepository) CountByUser(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}
