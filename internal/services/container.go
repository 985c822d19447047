package services

// ServiceContainer bundles the services for handler wiring.
type ServiceContainer struct {
	AuthService                AuthService
	ClientDashboardService     ClientDashboardService
	FreelancerDashboardService FreelancerDashboardService
	NotificationService        NotificationService
}
