package httpserver

import (
	"github.com/chefpantry/chefpantry/internal/core/domain/user"
)

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	s.echo.POST("/contact", s.submitContact, s.middleware.RateLimit.Contact())

	api := s.echo.Group("/api/v1")

	auth := api.Group("/auth", s.middleware.RateLimit.Auth())
	auth.POST("/register", s.register)
	auth.POST("/login", s.login)
	auth.POST("/refresh", s.refreshToken)

	// Public marketplace reads.
	public := api.Group("", s.middleware.RateLimit.General())
	public.GET("/chefs", s.searchChefs)
	public.GET("/chefs/:id", s.getChefProfile)
	public.GET("/gigs", s.listGigs)
	public.GET("/gigs/:id", s.getGig)
	public.GET("/companies/:id", s.getCompany)
	public.GET("/users/:id/reviews", s.listReviews)
	public.GET("/users/:id/reviews/summary", s.reviewSummary)

	protected := api.Group("", s.middleware.JWT.RequireJWT(), s.middleware.RateLimit.General())

	protected.POST("/auth/logout", s.logout, s.middleware.RateLimit.Auth())

	protected.GET("/users/me", s.getOwnUser)
	protected.PUT("/users/me", s.updateOwnUser, s.middleware.RateLimit.Profile())
	protected.POST("/users/me/password", s.changePassword, s.middleware.RateLimit.Profile())
	protected.DELETE("/users/me", s.deactivateOwnUser)

	chefOnly := s.middleware.Role.RequireRole(user.RoleChef)
	businessOnly := s.middleware.Role.RequireRole(user.RoleBusiness)

	protected.PUT("/chefs/me", s.upsertChefProfile, chefOnly, s.middleware.RateLimit.Profile())
	protected.PATCH("/chefs/me/availability", s.setChefAvailability, chefOnly, s.middleware.RateLimit.Profile())

	protected.POST("/payouts/onboarding", s.startPayoutOnboarding, chefOnly)
	protected.GET("/payouts/status", s.payoutStatus, chefOnly)

	protected.POST("/companies", s.createCompany, businessOnly, s.middleware.RateLimit.Profile())
	protected.PUT("/companies/:id", s.updateCompany, businessOnly, s.middleware.RateLimit.Profile())
	protected.GET("/companies/:id/members", s.listCompanyMembers, businessOnly)
	protected.POST("/companies/:id/invites", s.inviteCompanyMember, businessOnly, s.middleware.RateLimit.Profile())
	protected.DELETE("/companies/:id/members/:user_id", s.removeCompanyMember, businessOnly)
	protected.POST("/invites/accept", s.acceptCompanyInvite, businessOnly)

	protected.POST("/gigs", s.postGig, businessOnly, s.middleware.RateLimit.Profile())
	protected.PUT("/gigs/:id", s.updateGig, businessOnly, s.middleware.RateLimit.Profile())
	protected.POST("/gigs/:id/cancel", s.cancelGig, businessOnly)
	protected.POST("/gigs/:id/complete", s.completeGig, businessOnly)
	protected.GET("/gigs/:id/applications", s.listGigApplications, businessOnly)

	protected.POST("/gigs/:id/applications", s.applyToGig, chefOnly, s.middleware.RateLimit.Profile())
	protected.GET("/applications", s.listOwnApplications, chefOnly)
	protected.POST("/applications/:id/withdraw", s.withdrawApplication, chefOnly)
	protected.POST("/applications/:id/accept", s.acceptApplication, businessOnly)
	protected.POST("/applications/:id/decline", s.declineApplication, businessOnly)

	protected.POST("/invoices", s.createInvoice, chefOnly, s.middleware.RateLimit.Profile())
	protected.PUT("/invoices/:id", s.updateInvoice, chefOnly, s.middleware.RateLimit.Profile())
	protected.POST("/invoices/:id/send", s.sendInvoice, chefOnly)
	protected.POST("/invoices/:id/void", s.voidInvoice, chefOnly)
	protected.POST("/invoices/:id/pay", s.markInvoicePaid, businessOnly)
	protected.GET("/invoices/:id", s.getInvoice)
	protected.GET("/invoices", s.listOwnInvoices, chefOnly)
	protected.GET("/companies/:id/invoices", s.listCompanyInvoices, businessOnly)

	protected.POST("/reviews", s.createReview, s.middleware.RateLimit.Profile())

	protected.GET("/notifications", s.listNotifications)
	protected.GET("/notifications/unread-count", s.unreadNotificationCount)
	protected.POST("/notifications/:id/read", s.markNotificationRead)
	protected.POST("/notifications/read-all", s.markAllNotificationsRead)
}
