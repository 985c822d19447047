package handlers

import (
	"talentlink/internal/session"
	"talentlink/internal/validator"
	"talentlink/pkg/apperrors"
	"talentlink/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

// BaseHandler carries the pieces every feature handler needs.
type BaseHandler struct {
	validator *validator.Validator
}

func NewBaseHandler(v *validator.Validator) *BaseHandler {
	return &BaseHandler{
		validator: v,
	}
}

// Session extracts the session placed by the middleware. Routes that reach
// a handler without it are a wiring bug, reported as a plain 401.
func (h *BaseHandler) Session(c *gin.Context) (*session.Session, bool) {
	val, ok := c.Get(string(contextkeys.SessionContextKey))
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("No active session"))
		return nil, false
	}
	sess, ok := val.(*session.Session)
	if !ok {
		apperrors.HandleError(c, apperrors.NewUnauthorizedError("No active session"))
		return nil, false
	}
	return sess, true
}

// BindJSON binds the body and reports binding failures in the standard
// error envelope.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleValidationError(c, err)
		return false
	}
	return true
}

// HandleServiceError renders a service error.
func (h *BaseHandler) HandleServiceError(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}
