package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository"
)

// ProgressService tracks question completions. Marking the same
// question twice records two rows; the count is a raw row count.
type ProgressService struct {
	statsRepo repository.StatsRepository
}

func NewProgressService(statsRepo repository.StatsRepository) *ProgressService {
	if statsRepo == nil {
		panic("StatsRepository cannot be nil for ProgressService")
	}
	return &ProgressService{statsRepo: statsRepo}
}

// MarkFinished appends a completion record for the question.
func (s *ProgressService) MarkFinished(ctx context.Context, userID, questionID uint) error {
	record := &domain.UserStats{
		UserID:             userID,
		FinishedQuestionID: questionID,
	}
	if err := s.statsRepo.Create(ctx, record); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":     userID,
			"question_id": questionID,
		}).Error("Failed to record completion")
		return ErrInternalServer
	}
	return nil
}

// CountFinished returns the number of completion records the user owns.
func (s *ProgressService) CountFinished(ctx context.Context, userID uint) (int64, error) {
	count, err := s.statsRepo.CountByUser(ctx, userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to count completions")
		return 0, ErrInternalServer
	}
	return count, nil
}
