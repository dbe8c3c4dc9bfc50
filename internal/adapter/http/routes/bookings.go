package routes

import (
	"ckforest/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathBookings = "/bookings"
	PathPackages = "/packages"
	PathQuotes   = "/quotes"
	PathSettings = "/settings"
)

func addBookingRoutes(
	rg *gin.RouterGroup,
	bookingHandler *handlers.BookingHandler,
	quoteHandler *handlers.QuoteHandler,
	packageHandler *handlers.PackageHandler,
	settingsHandler *handlers.SettingsHandler,
) {
	bookings := rg.Group(PathBookings)
	{
		// The POST runs the full submission gate server-side.
		bookings.POST("", bookingHandler.SubmitBooking)
		bookings.GET("", bookingHandler.ListBookingsByEmail)
	}

	packages := rg.Group(PathPackages)
	{
		packages.GET("", packageHandler.ListPackages)
		packages.GET("/:package_id", packageHandler.GetPackage)
	}

	rg.POST(PathQuotes, quoteHandler.CreateQuote)
	rg.GET(PathSettings, settingsHandler.GetSettings)
}

func addAdminRoutes(
	rg *gin.RouterGroup,
	bookingHandler *handlers.BookingHandler,
	packageHandler *handlers.PackageHandler,
	settingsHandler *handlers.SettingsHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	bookings := rg.Group(PathBookings)
	{
		bookings.GET("", bookingHandler.ListAllBookings)
		bookings.PATCH("/:booking_id/status", bookingHandler.UpdateBookingStatus)
	}

	packages := rg.Group(PathPackages)
	{
		packages.POST("", packageHandler.UpsertPackage)
		packages.DELETE("/:package_id", packageHandler.DeletePackage)
	}

	rg.PUT(PathSettings, settingsHandler.UpdateSettings)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", dashboardHandler.GetStats)
		dashboard.GET("/trends", dashboardHandler.GetTrends)
	}
}
