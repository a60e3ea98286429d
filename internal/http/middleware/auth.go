package middleware

import (
	"net/http"
	"strings"

	"transportpro/internal/domain"
	"transportpro/internal/services"

	"github.com/gin-gonic/gin"
)

const (
	requestContextKey = "request_context"
	sessionKey        = "session"
)

// Auth requires a valid bearer token and stores the session plus a
// domain.RequestContext describing the caller.
func Auth(auth services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortJSON(c, http.StatusUnauthorized, "missing bearer token")
			return
		}

		svc := auth
		svc.RequestID = GetRequestID(c)
		sess, err := svc.Verify(token)
		if err != nil {
			abortJSON(c, http.StatusUnauthorized, err.Error())
			return
		}

		c.Set(sessionKey, sess)
		c.Set(requestContextKey, domain.RequestContext{
			UserID:   sess.User.ID,
			Username: sess.User.Username,
			Role:     string(sess.User.Role),
		})
		c.Next()
	}
}

// GetRequestContext returns the caller identity stored by Auth.
func GetRequestContext(c *gin.Context) (domain.RequestContext, bool) {
	v, ok := c.Get(requestContextKey)
	if !ok {
		return domain.RequestContext{}, false
	}
	rc, ok := v.(domain.RequestContext)
	return rc, ok
}

// CurrentSession returns the session stored by Auth.
func CurrentSession(c *gin.Context) (services.Session, bool) {
	v, ok := c.Get(sessionKey)
	if !ok {
		return services.Session{}, false
	}
	sess, ok := v.(services.Session)
	return sess, ok
}

func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if len(header) < 7 || !strings.EqualFold(header[:7], "bearer ") {
		return "", false
	}
	token := strings.TrimSpace(header[7:])
	return token, token != ""
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{
		"error":      msg,
		"code":       "unauthorized",
		"request_id": GetRequestID(c),
	})
}
