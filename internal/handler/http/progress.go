package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/middleware"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/service"
)

// ProgressHandler records question completions.
type ProgressHandler struct {
	progressService *service.ProgressService
}

func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// Finish marks the question finished for the authenticated user and
// returns the updated completion count. Repeating a question records
// another completion.
func (h *ProgressHandler) Finish(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		ErrorResponse(c, http.StatusUnauthorized, "Not authenticated")
		return
	}
	questionID, ok := questionIDParam(c)
	if !ok {
		return
	}

	if err := h.progressService.MarkFinished(c.Request.Context(), userID, questionID); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"user_id":     userID,
			"question_id": questionID,
		}).Error("Handler.Finish: failed to record completion")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to record completion")
		return
	}

	count, err := h.progressService.CountFinished(c.Request.Context(), userID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Handler.Finish: failed to count completions")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to count completions")
		return
	}

	SuccessResponse(c, http.StatusOK, gin.H{
		"message":            "Question marked as finished",
		"finished_questions": count,
	})
}
