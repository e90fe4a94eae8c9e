package repository

import (
	"context"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
)

// StatsRepository records question completions. Inserts are
// unconditional; the same (user, question) pair may appear repeatedly.
type StatsRepository interface {
	Create(ctx context.Context, record *domain.UserStats) error

	// CountByUser counts completion rows owned by the user.
	CountByUser(ctx context.Context, userID uint) (int64, error)
}
