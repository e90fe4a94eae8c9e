package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/middleware"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/service"
)

// AnnotationHandler manages notes the signed-in user leaves on
// questions.
type AnnotationHandler struct {
	annotationService *service.AnnotationService
}

func NewAnnotationHandler(annotationService *service.AnnotationService) *AnnotationHandler {
	return &AnnotationHandler{annotationService: annotationService}
}

// CreateAnnotationRequest binds the note form.
type CreateAnnotationRequest struct {
	Text string `form:"text" json:"text" binding:"required"`
}

// Create attaches a note to the question for the authenticated user.
func (h *AnnotationHandler) Create(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	questionID, ok := questionIDParam(c)
	if !ok {
		return
	}

	var req CreateAnnotationRequest
	if err := c.ShouldBind(&req); err != nil {
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: text is required")
		return
	}

	annotation, err := h.annotationService.Add(c.Request.Context(), userID, questionID, req.Text)
	if err != nil {
		logCtx := logrus.WithFields(logrus.Fields{"user_id": userID, "question_id": questionID})
		switch {
		case errors.Is(err, service.ErrQuestionNotFound):
			ErrorResponse(c, http.StatusNotFound, "Question not found")
		case errors.Is(err, service.ErrUserNotFound):
			ErrorResponse(c, http.StatusNotFound, "User not found")
		case errors.Is(err, service.ErrInvalidInput):
			ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			logCtx.WithError(err).Error("Handler.Create: failed to create annotation")
			ErrorResponse(c, http.StatusInternalServerError, "Failed to create annotation")
		}
		return
	}

	SuccessResponse(c, http.StatusCreated, AnnotationView{
		ID:        annotation.ID,
		UserID:    annotation.UserID,
		Text:      annotation.Content,
		Timestamp: annotation.Timestamp,
	})
}

// ListMine shows the authenticated user's annotations across all
// questions.
func (h *AnnotationHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	annotations, err := h.annotationService.ForUser(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Handler.ListMine: failed to list annotations")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to load annotations")
		return
	}
	SuccessResponse(c, http.StatusOK, gin.H{"annotations": toAnnotationViews(annotations)})
}
