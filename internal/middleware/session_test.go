package middleware

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "session-test-secret"

func sessionToken(t *testing.T, userID uint, expiresIn time.Duration) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(expiresIn).Unix(),
		"iat":     time.Now().Unix(),
	})
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func newGatedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	gated := router.Group("/")
	gated.Use(SessionAuth(testSecret))
	gated.GET("/questions", func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id})
	})
	return router
}

func TestSessionAuth_NoCookie_RedirectsToLoginWithNext(t *testing.T) {
	router := newGatedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/questions?page=2", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	location := w.Header().Get("Location")
	assert.Equal(t, LoginPath+"?next="+url.QueryEscape("/questions?page=2"), location)
}

func TestSessionAuth_ValidCookie_PassesUserID(t *testing.T) {
	router := newGatedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionToken(t, 7, time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":7`)
}

func TestSessionAuth_ExpiredToken_Redirects(t *testing.T) {
	router := newGatedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionToken(t, 7, -time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Contains(t, w.Header().Get("Location"), LoginPath)
}

func TestSessionAuth_GarbageToken_Redirects(t *testing.T) {
	router := newGatedRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "not-a-token"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}

func TestSessionAuth_WrongSecret_Redirects(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	gated := router.Group("/")
	gated.Use(SessionAuth("a-different-secret"))
	gated.GET("/questions", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/questions", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: sessionToken(t, 7, time.Hour)})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
}
