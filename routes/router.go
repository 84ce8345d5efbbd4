package routes // Router setup layer.

import (
	"net/http"

	"CeibaCheckIn/handlers"
	"CeibaCheckIn/middlewares"
	"CeibaCheckIn/services"
	"CeibaCheckIn/utils/redislog"

	"github.com/gin-gonic/gin" // Gin router.
)

// Deps is everything the routes need, built in main.
type Deps struct {
	Guests    services.GuestService
	CheckIn   services.CheckInService
	Auth      services.AuthService
	Log       *redislog.Logger // may be nil
	JWTSecret string
	SeedCSV   string // served as /guests.csv
}

// Setup attaches middlewares and registers all endpoints.
func Setup(r *gin.Engine, d Deps) {
	r.Use(middlewares.RequestLogger(d.Log), middlewares.Recovery(d.Log)) // Access log + panic recovery.

	// Wrong method on a known path is 405 in the check-in envelope, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"ok": false, "error": "method not allowed"})
	})
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	sys := handlers.NewSystemHandler(d.Log)
	r.GET("/health", sys.Health)
	if d.SeedCSV != "" {
		r.StaticFile("/guests.csv", d.SeedCSV) // bundled list, same path the UI fetched
	}

	// Public check-in submission (sync endpoint).
	r.POST("/api/checkin", handlers.NewCheckInHandler(d.CheckIn).Submit)

	// Group staff API under /api/v1 for versioning.
	api := r.Group("/api/v1")
	api.POST("/auth/login", handlers.NewAuthHandler(d.Auth).Login)

	// Protected group (requires valid Authorization: Bearer <token>).
	protected := api.Group("/")
	protected.Use(middlewares.Auth(d.JWTSecret))

	gh := handlers.NewGuestHandler(d.Guests)
	protected.GET("/guests", gh.List)
	protected.POST("/guests", gh.Upsert)
	protected.GET("/guests/:name", gh.Get)
	protected.PUT("/guests/:name/attendance", gh.SetAttendance)
	protected.DELETE("/guests/:name", gh.Remove)
	protected.POST("/import", gh.Import)
	protected.GET("/export", gh.Export)
	protected.GET("/logs", sys.Logs)
}
