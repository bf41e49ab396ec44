package Routes

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/nikisathe/Doctor-appointment-booking/Controllers"
	"github.com/nikisathe/Doctor-appointment-booking/Middleware"
	"github.com/nikisathe/Doctor-appointment-booking/SSE"
	"github.com/nikisathe/Doctor-appointment-booking/Utils"
)

func ConfigRoutes(router *gin.Engine) {
	// Gzip Compression
	router.Use(gzip.Gzip(gzip.BestSpeed))

	limiter := Middleware.NewRateLimiter(
		Utils.AppConfig.LoginRateRPS, Utils.AppConfig.LoginRateBurst)

	// Public routes
	public := router.Group("/api")
	{
		public.POST("/login", limiter.Limit(), Controllers.Login)
		public.POST("/register", limiter.Limit(), Controllers.Register)
		public.GET("/doctors", Controllers.GetDoctors)
		public.GET("/doctors/:id", Controllers.GetDoctor)
		public.GET("/doctors/:id/reviews", Controllers.DoctorReviews)
	}

	// Authorized routes
	authorized := router.Group("/api/protected")
	authorized.Use(Middleware.JwtAuthMiddleware())
	{
		// User-related routes
		authorized.GET("/user", Controllers.CurrentUser)
		authorized.POST("/Logout", Controllers.Logout)

		// Appointment-related routes
		authorized.POST("/BookAppointment", Controllers.BookAppointment)
		authorized.GET("/FetchMyAppointments", Controllers.FetchMyAppointments)
		authorized.POST("/CancelAppointment", Controllers.CancelAppointment)

		// Review-related routes
		authorized.POST("/AddReview", Controllers.AddReview)

		// Export-related routes
		authorized.POST("/ExportAppointmentsExcel", Controllers.ExportAppointmentsExcel)

		// SSE (Server-Sent Events) route
		authorized.GET("/RequestSSE", SSE.RequestSSE)
	}
}
