package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/tpcell/launchpad/internal/app/controllers"
	"github.com/tpcell/launchpad/internal/app/models"
	"github.com/tpcell/launchpad/internal/middleware"
)

// Controllers bundles every controller the router mounts
type Controllers struct {
	Auth         *controllers.AuthController
	User         *controllers.UserController
	Skill        *controllers.SkillController
	Project      *controllers.ProjectController
	Resume       *controllers.ResumeController
	Internship   *controllers.InternshipController
	JobPost      *controllers.JobPostController
	Application  *controllers.ApplicationController
	Notification *controllers.NotificationController
	Analytics    *controllers.AnalyticsController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c *Controllers, authMiddleware *middleware.AuthMiddleware) {
	// --- Public routes ---
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/login", c.Auth.Login)
	router.POST("/register", c.Auth.Register)

	// Job board reads are public
	router.GET("/tpc-job-post-list", c.JobPost.List)
	router.GET("/tpc-job-post-detail/:id", c.JobPost.Get)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.POST("/logout", c.Auth.Logout)

		// Profile
		authenticated.GET("/get-user-detail/:id", c.User.GetUserDetail)
		authenticated.PUT("/update-profile", c.User.UpdateProfile)
		authenticated.PATCH("/update-profile", c.User.UpdateProfile)

		// Student features
		authenticated.GET("/student-skills", c.Skill.List)
		authenticated.POST("/student-skills", c.Skill.Create)

		authenticated.GET("/student-projects", c.Project.List)
		authenticated.POST("/student-projects", c.Project.Create)
		authenticated.DELETE("/student-projects/:id", c.Project.Delete)

		authenticated.GET("/student-resume", c.Resume.List)
		authenticated.POST("/student-resume", c.Resume.Upload)
		authenticated.GET("/student-resume/:id", c.Resume.Get)
		authenticated.PATCH("/student-resume/:id", c.Resume.Update)
		authenticated.DELETE("/student-resume/:id", c.Resume.Delete)

		authenticated.GET("/student-internships", c.Internship.List)
		authenticated.POST("/student-internships", c.Internship.Create)
		authenticated.GET("/student-internships/:id", c.Internship.Get)
		authenticated.PUT("/student-internships/:id", c.Internship.Update)
		authenticated.PATCH("/student-internships/:id", c.Internship.Approve)
		authenticated.DELETE("/student-internships/:id", c.Internship.Delete)

		// Placement surface
		authenticated.GET("/tpc-job-application-list", c.Application.List)
		authenticated.POST("/tpc-job-application-create", c.Application.Create)

		authenticated.GET("/tpc-notification-list", c.Notification.List)
		authenticated.GET("/tpc-notification-detail/:id", c.Notification.Get)

		// Staff-only routes
		staff := authenticated.Group("")
		staff.Use(authMiddleware.RoleRequired(models.RoleStaff))
		{
			staff.GET("/get-studentlist", c.User.GetStudentList)

			staff.POST("/tpc-job-post-create", c.JobPost.Create)
			staff.PUT("/tpc-job-post-update/:id", c.JobPost.Update)
			staff.DELETE("/tpc-job-post-delete/:id", c.JobPost.Delete)

			staff.POST("/tpc-notification-create", c.Notification.Create)
			staff.PUT("/tpc-notification-update/:id", c.Notification.Update)
			staff.DELETE("/tpc-notification-delete/:id", c.Notification.Delete)

			staff.GET("/tpc-analytics", c.Analytics.GetDashboard)
		}
	}
}
