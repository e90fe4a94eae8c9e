package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/domain"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/repository/mocks"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/service"
)

func newProfileRouter(userRepo *mocks.UserRepository, statsRepo *mocks.StatsRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewProfileHandler(service.NewUserService(userRepo), service.NewProgressService(statsRepo))

	router := gin.New()
	router.GET("/users/:username", handler.Show)
	return router
}

func TestProfileHandler_Show(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	statsRepo := new(mocks.StatsRepository)
	lastSeen := time.Now().UTC().Truncate(time.Second)
	userRepo.On("FindByUsername", mock.Anything, "alice").
		Return(&domain.User{ID: 1, Username: "alice", LastSeen: lastSeen}, nil).Once()
	statsRepo.On("CountByUser", mock.Anything, uint(1)).Return(int64(3), nil).Once()
	router := newProfileRouter(userRepo, statsRepo)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/alice", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var profile ProfileView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profile))
	assert.Equal(t, "alice", profile.Username)
	assert.Equal(t, int64(3), profile.FinishedQuestions)
	assert.Contains(t, profile.AvatarURL, "gravatar.com/avatar/")
	assert.True(t, profile.LastSeen.Equal(lastSeen))
}

func TestProfileHandler_Show_UnknownUser(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("FindByUsername", mock.Anything, "ghost").
		Return(nil, repository.ErrUserNotFound).Once()
	router := newProfileRouter(userRepo, new(mocks.StatsRepository))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/users/ghost", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
}
