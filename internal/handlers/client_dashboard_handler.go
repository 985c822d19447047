package handlers

import (
	"net/http"
	"strconv"

	"talentlink/internal/services"
	"talentlink/internal/services/dto"
	"talentlink/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ClientDashboardHandler struct {
	*BaseHandler
	dashboard services.ClientDashboardService
}

func NewClientDashboardHandler(base *BaseHandler, dashboard services.ClientDashboardService) *ClientDashboardHandler {
	return &ClientDashboardHandler{
		BaseHandler: base,
		dashboard:   dashboard,
	}
}

func (h *ClientDashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	client := r.Group("/client")
	{
		client.GET("/dashboard", h.Dashboard)
		client.POST("/projects", h.SaveProject)
		client.POST("/projects/:projectId/edit", h.EditProject)
		client.DELETE("/projects/:projectId", h.DeleteProject)
		client.POST("/proposals/:proposalId/decision", h.DecideProposal)
		client.POST("/proposals/:proposalId/contract-retry", h.RetryContract)
		client.POST("/contracts/:contractId/complete", h.CompleteContract)
		client.POST("/reviews", h.SubmitReview)
		client.PUT("/profile", h.UpdateProfile)
	}
}

// Dashboard is the fetch-on-mount snapshot.
func (h *ClientDashboardHandler) Dashboard(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	snapshot, err := h.dashboard.Load(c.Request.Context(), sess)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *ClientDashboardHandler) SaveProject(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	var draft dto.ProjectDraft
	if !h.BindJSON(c, &draft) {
		return
	}

	snapshot, err := h.dashboard.SaveProject(c.Request.Context(), sess, &draft)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

func (h *ClientDashboardHandler) EditProject(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c, "projectId")
	if !ok {
		return
	}

	draft, err := h.dashboard.EditProject(sess, projectID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, draft)
}

func (h *ClientDashboardHandler) DeleteProject(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	projectID, ok := h.pathID(c, "projectId")
	if !ok {
		return
	}

	if err := h.dashboard.DeleteProject(c.Request.Context(), sess, projectID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ClientDashboardHandler) DecideProposal(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	proposalID, ok := h.pathID(c, "proposalId")
	if !ok {
		return
	}

	var decision dto.ProposalDecision
	if !h.BindJSON(c, &decision) {
		return
	}

	if err := h.dashboard.DecideProposal(c.Request.Context(), sess, proposalID, decision.Status); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposal": proposalID, "status": decision.Status})
}

func (h *ClientDashboardHandler) RetryContract(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	proposalID, ok := h.pathID(c, "proposalId")
	if !ok {
		return
	}

	if err := h.dashboard.RetryContract(c.Request.Context(), sess, proposalID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"proposal": proposalID, "contract": "created"})
}

func (h *ClientDashboardHandler) CompleteContract(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}
	contractID, ok := h.pathID(c, "contractId")
	if !ok {
		return
	}

	if err := h.dashboard.CompleteContract(c.Request.Context(), sess, contractID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"contract": contractID, "status": "completed"})
}

func (h *ClientDashboardHandler) SubmitReview(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	var draft dto.ReviewDraft
	if !h.BindJSON(c, &draft) {
		return
	}

	review, err := h.dashboard.SubmitReview(c.Request.Context(), sess, &draft)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

func (h *ClientDashboardHandler) UpdateProfile(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	var draft dto.ProfileDraft
	if !h.BindJSON(c, &draft) {
		return
	}

	profile, err := h.dashboard.UpdateProfile(c.Request.Context(), sess, &draft)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *BaseHandler) pathID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid "+name))
		return 0, false
	}
	return id, true
}
