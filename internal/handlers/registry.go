package handlers

// AppHandlers bundles every feature handler for route registration.
type AppHandlers struct {
	AuthHandler                *AuthHandler
	ClientDashboardHandler     *ClientDashboardHandler
	FreelancerDashboardHandler *FreelancerDashboardHandler
	NotificationHandler        *NotificationHandler
}
