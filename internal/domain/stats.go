package domain

// UserStats records that a user finished a question. The table is an
// append-only log: repeating a question inserts another row, and counts
// are row counts rather than distinct-question counts.
type UserStats struct {
	ID                 uint `gorm:"primaryKey"`
	UserID             uint `gorm:"index:idx_stats_user;not null"`
	FinishedQuestionID uint `gorm:"not null"`
}

// TableName keeps the historical table name.
func (UserStats) TableName() string {
	return "user_stats"
}
