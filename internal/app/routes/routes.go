package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/usc-bienestar/backend/internal/app/controllers"
	"github.com/usc-bienestar/backend/internal/app/models/dto"
	"github.com/usc-bienestar/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	careerController *controllers.CareerController,
	courseController *controllers.CourseController,
	sessionController *controllers.SessionController,
	enrollmentController *controllers.EnrollmentController,
	reportController *controllers.ReportController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// API version group
	v1 := router.Group("/api/v1")

	// --- Public routes ---
	v1.POST("/users", authController.Register)
	v1.POST("/users/:identifier/student", userController.RegisterStudent)

	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	careers := v1.Group("/careers")
	{
		careers.GET("", careerController.List)
	}

	courses := v1.Group("/courses")
	{
		courses.GET("", courseController.List)
		courses.GET("/:id/sessions", courseController.ListSessions)
	}

	// Enrollment toggle is keyed by session and course so mismatched
	// pairs are rejected
	v1.POST("/sessions/:id/courses/:courseId/enrollment", enrollmentController.Toggle)

	// --- Administrative routes ---
	admin := v1.Group("")
	admin.Use(authMiddleware.JWTAuth(), authMiddleware.AdministrativeRequired())
	{
		admin.POST("/users/:identifier/role", userController.ToggleRole)

		admin.POST("/courses", courseController.Create)
		admin.PUT("/courses/:id", courseController.Update)
		admin.DELETE("/courses/:id", courseController.Delete)

		admin.POST("/sessions", sessionController.Create)
		admin.DELETE("/sessions/:id", sessionController.Delete)

		admin.GET("/reports/:identifier", reportController.Get)
		admin.GET("/reports/:identifier/export", reportController.Export)
	}

	// Health check endpoint (public)
	v1.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.APIResponse{
			Data: gin.H{"status": "ok"},
		})
	})
}
