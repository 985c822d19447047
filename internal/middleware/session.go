package middleware

import (
	"net/http"
	"strings"

	"talentlink/internal/session"
	"talentlink/pkg/apperrors"
	"talentlink/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the gateway session from the Authorization
// header (Bearer <session id>) or the X-Session-ID header. An absent or
// expired session means "no active session", not a server fault.
func SessionMiddleware(store session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessionID(c)
		if id == "" {
			abortWith(c, apperrors.New(apperrors.CodeNoSession, "auth",
				"No active session", http.StatusUnauthorized))
			return
		}

		sess, err := store.Get(c.Request.Context(), id)
		if err != nil {
			if apperrors.Is(err, session.ErrNoSession) {
				abortWith(c, apperrors.New(apperrors.CodeSessionExpired, "auth",
					"Session expired or not found", http.StatusUnauthorized))
				return
			}
			abortWith(c, apperrors.InternalError(err))
			return
		}

		c.Set(string(contextkeys.SessionContextKey), sess)
		c.Next()
	}
}

// RequireRole guards a workspace group by session role.
func RequireRole(role session.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, ok := c.Get(string(contextkeys.SessionContextKey))
		if !ok {
			abortWith(c, apperrors.New(apperrors.CodeNoSession, "auth",
				"No active session", http.StatusUnauthorized))
			return
		}
		sess := val.(*session.Session)
		if sess.Role != role {
			abortWith(c, apperrors.New(apperrors.CodeForbidden, "auth",
				"This workspace belongs to the other role", http.StatusForbidden))
			return
		}
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return c.GetHeader("X-Session-ID")
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorResponse{Error: err})
}
