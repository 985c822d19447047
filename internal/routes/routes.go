package routes

import (
	"talentlink/internal/handlers"
	"talentlink/internal/middleware"
	"talentlink/internal/session"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the dashboard API. The two workspaces are guarded by
// role so a client login can never land in the freelancer workspace.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, store session.Store) {
	sessionRequired := middleware.SessionMiddleware(store)

	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, sessionRequired)

		client := api.Group("", sessionRequired, middleware.RequireRole(session.RoleClient))
		appHandlers.ClientDashboardHandler.RegisterRoutes(client)

		freelancer := api.Group("", sessionRequired, middleware.RequireRole(session.RoleFreelancer))
		appHandlers.FreelancerDashboardHandler.RegisterRoutes(freelancer)

		notifications := api.Group("", sessionRequired)
		appHandlers.NotificationHandler.RegisterRoutes(notifications)
	}
}
