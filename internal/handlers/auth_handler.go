package handlers

import (
	"net/http"

	"talentlink/internal/services"
	"talentlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService       services.AuthService
	clientDashboard   services.ClientDashboardService
	freelancerDashbrd services.FreelancerDashboardService
}

func NewAuthHandler(
	base *BaseHandler,
	authService services.AuthService,
	clientDashboard services.ClientDashboardService,
	freelancerDashboard services.FreelancerDashboardService,
) *AuthHandler {
	return &AuthHandler{
		BaseHandler:       base,
		authService:       authService,
		clientDashboard:   clientDashboard,
		freelancerDashbrd: freelancerDashboard,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup, sessionRequired gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
		auth.POST("/logout", sessionRequired, h.Logout)
	}
}

// Login runs the credential exchange and answers with the workspace the
// identity routes to.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Logout clears the session and tears down both workspace view-models.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(c.Request.Context(), sess.ID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	h.clientDashboard.Teardown(sess.ID)
	h.freelancerDashbrd.Teardown(sess.ID)
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}
