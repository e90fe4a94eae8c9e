package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/service"
)

const avatarSize = 128

// ProfileHandler serves the user profile page.
type ProfileHandler struct {
	userService     *service.UserService
	progressService *service.ProgressService
}

func NewProfileHandler(userService *service.UserService, progressService *service.ProgressService) *ProfileHandler {
	return &ProfileHandler{
		userService:     userService,
		progressService: progressService,
	}
}

// ProfileView is the public shape of a user profile.
type ProfileView struct {
	Username          string    `json:"username"`
	LastSeen          time.Time `json:"last_seen"`
	FinishedQuestions int64     `json:"finished_questions"`
	AvatarURL         string    `json:"avatar_url"`
}

// Show renders a user's profile by username.
func (h *ProfileHandler) Show(c *gin.Context) {
	username := c.Param("username")

	user, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			ErrorResponse(c, http.StatusNotFound, "User not found")
		} else {
			logrus.WithError(err).WithField("username", username).Error("Handler.Show: failed to load user")
			ErrorResponse(c, http.StatusInternalServerError, "Failed to load user")
		}
		return
	}

	count, err := h.progressService.CountFinished(c.Request.Context(), user.ID)
	if err != nil {
		logrus.WithError(err).WithField("user_id", user.ID).Error("Handler.Show: failed to count completions")
		ErrorResponse(c, http.StatusInternalServerError, "Failed to load profile")
		return
	}

	SuccessResponse(c, http.StatusOK, ProfileView{
		Username:          user.Username,
		LastSeen:          user.LastSeen,
		FinishedQuestions: count,
		AvatarURL:         user.AvatarURL(avatarSize),
	})
}
