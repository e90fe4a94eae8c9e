// Package middleware holds the gin middlewares: the session gate, the
// Redis rate limiter and request-id tagging.
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/sirupsen/logrus"
)

// SessionCookieName is the cookie that carries the signed session token.
const SessionCookieName = "session"

// ContextUserIDKey is where the gate stores the authenticated user id.
const ContextUserIDKey = "user_id"

// LoginPath is where unauthenticated requests get redirected.
const LoginPath = "/login"

// SessionAuth gates every page behind authentication. Requests without
// a valid session cookie are redirected to the login page with the
// originally requested path preserved in the next parameter.
func SessionAuth(jwtSecret string) gin.HandlerFunc {
	if jwtSecret == "" {
		panic("JWT secret cannot be empty for SessionAuth middleware")
	}

	return func(c *gin.Context) {
		tokenStr, err := c.Cookie(SessionCookieName)
		if err != nil || tokenStr == "" {
			redirectToLogin(c)
			return
		}

		claims, err := validateToken(tokenStr, jwtSecret)
		if err != nil {
			logrus.WithError(err).Debug("SessionAuth: invalid session token")
			redirectToLogin(c)
			return
		}

		userIDClaim, ok := claims["user_id"]
		if !ok {
			logrus.Error("SessionAuth: 'user_id' claim missing in token")
			redirectToLogin(c)
			return
		}
		// JWT numbers decode as float64; convert carefully to uint.
		userIDFloat, ok := userIDClaim.(float64)
		if !ok || userIDFloat <= 0 || userIDFloat != float64(uint(userIDFloat)) {
			logrus.Errorf("SessionAuth: 'user_id' claim is not a valid positive integer: %v", userIDClaim)
			redirectToLogin(c)
			return
		}

		c.Set(ContextUserIDKey, uint(userIDFloat))
		c.Next()
	}
}

// UserID returns the authenticated user id set by SessionAuth.
func UserID(c *gin.Context) (uint, bool) {
	v, ok := c.Get(ContextUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

func redirectToLogin(c *gin.Context) {
	target := LoginPath
	if p := c.Request.URL.Path; p != "" && p != LoginPath {
		target = LoginPath + "?next=" + url.QueryEscape(c.Request.URL.RequestURI())
	}
	c.Redirect(http.StatusFound, target)
	c.Abort()
}

func validateToken(tokenStr string, secret string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token or claims type")
}
