package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/middleware"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Auth        *controllers.AuthController
	Dashboard   *controllers.DashboardController
	Rooms       *controllers.RoomController
	Students    *controllers.StudentController
	Allocations *controllers.AllocationController
	Payments    *controllers.PaymentController
	Users       *controllers.UserController
	Issues      *controllers.IssueController
	Portal      *controllers.PortalController
	Reports     *controllers.ReportController
	Exports     *controllers.ExportController
	Uploads     *controllers.UploadController
	Settings    *controllers.SettingController
}

func SetupRouter(cfg config.Config, ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.BodyLimit(cfg.MaxUploadBytes))

	store := cookie.NewStore([]byte(cfg.SecretKey))
	store.Options(sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   7 * 24 * 60 * 60,
	})
	r.Use(sessions.Sessions("hms_session", store))

	origins := cfg.CorsOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("templates/*.tmpl")

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/login", ctl.Auth.ShowLogin)
	r.POST("/login", ctl.Auth.Login)
	r.GET("/register", ctl.Auth.ShowRegister)
	r.POST("/register", ctl.Auth.Register)

	authed := r.Group("", middleware.LoginRequired())
	{
		authed.GET("/logout", ctl.Auth.Logout)
		authed.GET("/", ctl.Dashboard.Index)

		// Role-branching: the issue controller dispatches to its admin
		// or student variant itself.
		authed.GET("/issues", ctl.Issues.Index)
		authed.POST("/issues", ctl.Issues.Mutate)

		authed.GET("/api/report/occupancy", ctl.Reports.Occupancy)
		authed.GET("/api/report/income", ctl.Reports.Income)

		authed.GET("/uploads/:name", ctl.Uploads.Serve)
	}

	admin := r.Group("", middleware.AdminRequired())
	{
		admin.GET("/rooms", ctl.Rooms.Index)
		admin.POST("/rooms", ctl.Rooms.Mutate)

		admin.GET("/students", ctl.Students.Index)
		admin.POST("/students", ctl.Students.Mutate)

		admin.GET("/allocations", ctl.Allocations.Index)
		admin.POST("/allocations", ctl.Allocations.Mutate)

		admin.GET("/payments", ctl.Payments.Index)
		admin.POST("/payments", ctl.Payments.Create)

		admin.GET("/users", ctl.Users.Index)
		admin.POST("/users", ctl.Users.Create)

		admin.GET("/settings", ctl.Settings.Index)
		admin.POST("/settings", ctl.Settings.Update)

		admin.GET("/export/students.csv", ctl.Exports.StudentsCSV)
		admin.GET("/export/payments.csv", ctl.Exports.PaymentsCSV)
	}

	portal := r.Group("/portal", middleware.StudentRequired())
	{
		portal.GET("", ctl.Portal.Home)
		portal.GET("/rooms", ctl.Portal.RoomsPage)
		portal.GET("/payments", ctl.Portal.PaymentsPage)
		portal.POST("/payments", ctl.Portal.SubmitPayment)
		portal.GET("/profile", ctl.Portal.ProfilePage)
		portal.POST("/profile", ctl.Portal.UpdateProfile)
	}

	return r
}
