package http

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/MaxwellLZH/data-science-interview-problems/internal/middleware"
	"github.com/MaxwellLZH/data-science-interview-problems/internal/service"
)

// DefaultLandingPage is where logins land when no usable next target
// was supplied.
const DefaultLandingPage = "/questions"

// AuthHandler drives the register/login/logout flow.
type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest binds the registration form.
type RegisterRequest struct {
	Username string `form:"username" json:"username" binding:"required,min=3,max=50"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
}

// Register creates the account and sends the new user to the login page.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Register: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: username (3-50 chars) and password (6+ chars) required")
		return
	}

	newUser, err := h.authService.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logCtx := logrus.WithField("username", req.Username)
		switch {
		case errors.Is(err, service.ErrDuplicateUsername):
			logCtx.Warn("Handler.Register: username already taken")
			ErrorResponse(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrInvalidInput):
			ErrorResponse(c, http.StatusBadRequest, err.Error())
		default:
			logCtx.WithError(err).Error("Handler.Register: internal error during registration")
			ErrorResponse(c, http.StatusInternalServerError, "Registration failed due to server error")
		}
		return
	}

	logrus.WithField("user_id", newUser.ID).Info("Handler.Register: user registered successfully")
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// LoginRequest binds the login form. Next is the destination the user
// originally asked for.
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
	Next     string `form:"next" json:"next"`
}

// Login authenticates, sets the session cookie and redirects to the
// validated next target.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		logrus.WithError(err).Warn("Handler.Login: invalid input format")
		ErrorResponse(c, http.StatusBadRequest, "Invalid input: username and password required")
		return
	}

	_, token, err := h.authService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logCtx := logrus.WithField("username", req.Username)
		if errors.Is(err, service.ErrInvalidCredentials) {
			logCtx.Warn("Handler.Login: authentication failed")
			ErrorResponse(c, http.StatusUnauthorized, err.Error())
		} else {
			logCtx.WithError(err).Error("Handler.Login: internal error during login")
			ErrorResponse(c, http.StatusInternalServerError, "Login failed due to server error")
		}
		return
	}

	maxAge := int(h.authService.SessionExpiry().Seconds())
	c.SetCookie(middleware.SessionCookieName, token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, safeRedirectTarget(req.Next))
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, middleware.LoginPath)
}

// safeRedirectTarget only honors same-origin relative paths. Anything
// carrying a scheme or host falls back to the default landing page so a
// crafted next parameter cannot bounce the user off-site.
func safeRedirectTarget(next string) string {
	if next == "" {
		return DefaultLandingPage
	}
	if strings.HasPrefix(next, "//") || strings.HasPrefix(next, "/\\") {
		return DefaultLandingPage
	}
	u, err := url.Parse(next)
	if err != nil || u.Scheme != "" || u.Host != "" {
		return DefaultLandingPage
	}
	if !strings.HasPrefix(u.Path, "/") {
		return DefaultLandingPage
	}
	return next
}
