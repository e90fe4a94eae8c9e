package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/service"
)

// QuestionHandler serves the question browsing pages.
type QuestionHandler struct {
	questionService   *service.QuestionService
	annotationService *service.AnnotationService
}

func NewQuestionHandler(questionService *service.QuestionService, annotationService *service.AnnotationService) *QuestionHandler {
	return &QuestionHandler{
		questionService:   questionService,
		annotationService: annotationService,
	}
}

// QuestionPreview is a list entry with truncated renderings.
type QuestionPreview struct {
	ID       uint   `json:"id"`
	Source   string `json:"source"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// List shows every question with short question and answer previews.
func (h *QuestionHandler) List(c *gin.Context) {
	questions, err := h.questionService.List(c.Request.Context())
	if err != nil {
		logrus.WithError(err).Error("Handler.List: failed to list questions")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to load questions")
		return
	}

	previews := make([]QuestionPreview, 0, len(questions))
	for i := range questions {
		q := &questions[i]
		previews = append(previews, QuestionPreview{
			ID:       q.ID,
			Source:   q.Source,
			Question: q.ShortQuestion(domain.DefaultShortTextLength),
			Answer:   q.ShortAnswer(domain.DefaultShortTextLength),
		})
	}
	SuccessResponse(c, http.StatusOK, gin.H{"questions": previews})
}

// AnnotationView is the annotation shape sent to clients.
type AnnotationView struct {
	ID        uint      `json:"id"`
	UserID    uint      `json:"user_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// QuestionDetail carries the full renderings plus annotations.
type QuestionDetail struct {
	ID           uint             `json:"id"`
	Source       string           `json:"source"`
	QuestionHTML string           `json:"question_html"`
	QuestionText string           `json:"question_text"`
	AnswerHTML   string           `json:"answer_html"`
	AnswerText   string           `json:"answer_text"`
	Annotations  []AnnotationView `json:"annotations"`
}

// Show renders one question in full, with its annotations.
func (h *QuestionHandler) Show(c *gin.Context) {
	id, ok := questionIDParam(c)
	if !ok {
		return
	}

	question, err := h.questionService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrQuestionNotFound) {
			ErrorResponse(c, http.StatusNotFound, "Question not found")
		} else {
			logrus.WithError(err).WithField("question_id", id).Error("Handler.Show: failed to load question")
			ErrorResponse(c, http.StatusInternalServerError, "Failed to load question")
		}
		return
	}

	annotations, err := h.annotationService.ForQuestion(c.Request.Context(), id)
	if err != nil {
		logrus.WithError(err).WithField("question_id", id).Error("Handler.Show: failed to load annotations")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to load annotations")
		return
	}

	detail := QuestionDetail{
		ID:           question.ID,
		Source:       question.Source,
		QuestionHTML: question.HTML(),
		QuestionText: question.Text(),
		AnswerHTML:   question.AnswerHTML(),
		AnswerText:   question.AnswerText(),
		Annotations:  toAnnotationViews(annotations),
	}
	SuccessResponse(c, http.StatusOK, detail)
}

func toAnnotationViews(annotations []domain.Annotation) []AnnotationView {
	views := make([]AnnotationView, 0, len(annotations))
	for _, a := range annotations {
		views = append(views, AnnotationView{
			ID:        a.ID,
			UserID:    a.UserID,
			Text:      a.Content,
			Timestamp: a.Timestamp,
		})
	}
	return views
}

func questionIDParam(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		ErrorResponse(c, http.StatusBadRequest, "Invalid question id")
		return 0, false
	}
	return uint(id), true
}
