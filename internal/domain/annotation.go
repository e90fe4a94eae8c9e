package domain

import "time"

// Annotation is a free-text note a user attaches to a question. Both
// foreign keys are required; an annotation always resolves to an
// existing user and question.
type Annotation struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     uint      `gorm:"index:idx_annotation_user;not null"`
	QuestionID uint      `gorm:"index:idx_annotation_question;not null"`
	Timestamp  time.Time `gorm:"index:idx_annotation_timestamp"`
	Content    string    `gorm:"type:text"`
}
