package domain

import (
	"regexp"
	"strings"
)

// DefaultShortTextLength is the rune limit used for question and answer
// previews.
const DefaultShortTextLength = 200

// NoAnswerText is returned wherever an answer rendering is requested
// for a question that has none.
const NoAnswerText = "No answer available"

const ellipsisMarker = "......"

// Question is a single interview question. Content is immutable after
// import; Source names where the question came from.
type Question struct {
	ID      uint          `gorm:"primaryKey"`
	Content ContentColumn `gorm:"type:text;not null"`
	Source  string        `gorm:"type:varchar(191);default:''"`

	Answer      *Answer      `gorm:"foreignKey:QuestionID"`
	Annotations []Annotation `gorm:"foreignKey:QuestionID"`
}

// Answer belongs to exactly one question.
type Answer struct {
	ID         uint          `gorm:"primaryKey"`
	QuestionID uint          `gorm:"index:idx_answer_question;not null"`
	Content    ContentColumn `gorm:"type:text;not null"`
}

// HTML renders the question body as markup.
func (q *Question) HTML() string {
	if q.Content.Content == nil {
		return ""
	}
	return q.Content.HTML()
}

// Text renders the question body as plain text with whitespace runs
// collapsed to single spaces and the ends trimmed.
func (q *Question) Text() string {
	if q.Content.Content == nil {
		return ""
	}
	return collapseSpace(q.Content.Text())
}

// ShortQuestion returns the plain-text question truncated to maxLength
// runes, with a trailing marker when truncation happened. maxLength <= 0
// falls back to DefaultShortTextLength.
func (q *Question) ShortQuestion(maxLength int) string {
	return shorten(q.Text(), maxLength)
}

// AnswerHTML renders the answer as markup, or NoAnswerText when the
// question has no answer.
func (q *Question) AnswerHTML() string {
	if q.Answer == nil || q.Answer.Content.Content == nil {
		return NoAnswerText
	}
	return q.Answer.Content.HTML()
}

// AnswerText renders the answer as collapsed plain text, or
// NoAnswerText when the question has no answer.
func (q *Question) AnswerText() string {
	if q.Answer == nil || q.Answer.Content.Content == nil {
		return NoAnswerText
	}
	return collapseSpace(q.Answer.Content.Text())
}

// ShortAnswer returns the truncated plain-text answer, see ShortQuestion.
func (q *Question) ShortAnswer(maxLength int) string {
	return shorten(q.AnswerText(), maxLength)
}

// \p{Z} pulls in the Unicode space separators (NBSP and friends) that
// Go's \s alone does not cover.
var spaceRun = regexp.MustCompile(`[\s\p{Z}]+`)

func collapseSpace(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

func shorten(s string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultShortTextLength
	}
	runes := []rune(s)
	if len(runes) <= maxLength {
		return s
	}
	return string(runes[:maxLength]) + ellipsisMarker
}
