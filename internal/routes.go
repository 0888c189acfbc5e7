package internal

import (
	"net/http"

	"wsd/internal/controllers"
	"wsd/internal/providers"
	"wsd/internal/services"
)

// InitRoutes registers the API surface. Everything except login requires a
// bearer token.
func InitRoutes(authController *controllers.AuthController, submissionController *controllers.SubmissionController, analyticsController *controllers.AnalyticsController, authService services.AuthServiceInterface) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	auth := func(h http.HandlerFunc) http.Handler {
		return providers.AuthMiddleware(authService, h)
	}

	routers.Post("/api/auth/login", http.HandlerFunc(authController.Login))
	routers.Get("/api/auth/profile", auth(authController.Profile))

	routers.Get("/api/submissions", auth(submissionController.List))
	routers.Post("/api/submissions", auth(submissionController.Create))
	routers.Get("/api/scripts", auth(submissionController.ListScripts))
	routers.Post("/api/scripts", auth(submissionController.CreateScript))

	routers.Get("/api/analytics/overview", auth(analyticsController.Overview))
	routers.Get("/api/analytics/writer/top-content", auth(analyticsController.TopContent))
	routers.Get("/api/analytics/writer/latest-content", auth(analyticsController.LatestContent))
	routers.Get("/api/writer/videos", auth(analyticsController.ListVideos))
	routers.Get("/api/video/{id}", auth(analyticsController.VideoDetail))

	return routers
}
