package handlers

import (
	"net/http"

	"talentlink/internal/services"
	"talentlink/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type FreelancerDashboardHandler struct {
	*BaseHandler
	dashboard services.FreelancerDashboardService
}

func NewFreelancerDashboardHandler(base *BaseHandler, dashboard services.FreelancerDashboardService) *FreelancerDashboardHandler {
	return &FreelancerDashboardHandler{
		BaseHandler: base,
		dashboard:   dashboard,
	}
}

func (h *FreelancerDashboardHandler) RegisterRoutes(r *gin.RouterGroup) {
	freelancer := r.Group("/freelancer")
	{
		freelancer.GET("/dashboard", h.Dashboard)
		freelancer.POST("/projects/filter", h.FilterProjects)
		freelancer.POST("/projects/filter/reset", h.ResetFilter)
		freelancer.POST("/proposals", h.SubmitProposal)
		freelancer.PUT("/profile", h.UpdateProfile)
	}
}

func (h *FreelancerDashboardHandler) Dashboard(c *gin.Context) {
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

// FilterProjects narrows the already-fetched list; no upstream call.
func (h *FreelancerDashboardHandler) FilterProjects(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	var filter dto.ProjectFilter
	if !h.BindJSON(c, &filter) {
		return
	}

	projects := h.dashboard.FilterProjects(sess, &filter)
	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}

func (h *FreelancerDashboardHandler) ResetFilter(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	projects := h.dashboard.ResetFilter(sess)
	c.JSON(http.StatusOK, gin.H{"projects": projects, "count": len(projects)})
}

func (h *FreelancerDashboardHandler) SubmitProposal(c *gin.Context) {
	sess, ok := h.Session(c)
	if !ok {
		return
	}

	var draft dto.ProposalDraft
	if !h.BindJSON(c, &draft) {
		return
	}

	proposal, err := h.dashboard.SubmitProposal(c.Request.Context(), sess, &draft)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, proposal)
}

func (h *FreelancerDashboardHandler) UpdateProfile(c *gin.Context) {
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
