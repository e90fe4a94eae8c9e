package setup

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
)

// MigrateDB brings the schema up to date. user_stats deliberately has no
// unique constraint on (user_id, finished_question_id): completions are
// an append-only log.
func MigrateDB(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("cannot migrate database with nil DB connection")
	}

	err := db.AutoMigrate(
		&domain.User{},
		&domain.Question{},
		&domain.Answer{},
		&domain.Annotation{},
		&domain.UserStats{},
	)
	if err != nil {
		return fmt.Errorf("auto-migrate tables: %w", err)
	}
	return nil
}
