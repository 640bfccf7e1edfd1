package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/studyhub/backend/internal/app/controllers"
	"github.com/studyhub/backend/internal/app/models"
	"github.com/studyhub/backend/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	resultController *controllers.ResultController,
	futureTestController *controllers.FutureTestController,
	evaluationController *controllers.EvaluationController,
	chatController *controllers.ChatController,
	directoryController *controllers.DirectoryController,
	resourceController *controllers.ResourceController,
	pageController *controllers.PageController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Browser pages ---
	router.GET("/", pageController.Index)
	router.GET("/student/dashboard",
		authMiddleware.RequirePage(models.RoleStudent),
		pageController.Dashboard(models.RoleStudent))
	router.GET("/instructor/dashboard",
		authMiddleware.RequirePage(models.RoleInstructor),
		pageController.Dashboard(models.RoleInstructor))
	router.NoRoute(pageController.NotFound)

	api := router.Group("/api")

	// --- Public auth routes ---
	student := api.Group("/student")
	{
		student.POST("/login", authController.Login(models.RoleStudent))
		student.POST("/register", authController.Register(models.RoleStudent))
		student.POST("/logout", authController.Logout(models.RoleStudent))
	}

	instructor := api.Group("/instructor")
	{
		instructor.POST("/login", authController.Login(models.RoleInstructor))
		instructor.POST("/register", authController.Register(models.RoleInstructor))
		instructor.POST("/logout", authController.Logout(models.RoleInstructor))
	}

	// --- Student-only routes ---
	studentAuth := api.Group("")
	studentAuth.Use(authMiddleware.RequireRole(models.RoleStudent))
	{
		studentAuth.GET("/student/info", directoryController.StudentInfo)
		studentAuth.GET("/student/results", resultController.ListMine)
		studentAuth.GET("/student/future-tests", futureTestController.ListAll)
		studentAuth.GET("/instructors", directoryController.ListInstructors)
		studentAuth.POST("/evaluation", evaluationController.Submit)
		studentAuth.GET("/coding-resources/:resourceType", resourceController.DownloadByType)
		studentAuth.GET("/coding-resources/download/:fileId", resourceController.DownloadByID)
	}

	// --- Instructor-only routes ---
	instructorAuth := api.Group("")
	instructorAuth.Use(authMiddleware.RequireRole(models.RoleInstructor))
	{
		instructorAuth.GET("/students/search", directoryController.SearchStudents)

		results := instructorAuth.Group("/results")
		{
			results.POST("", resultController.Create)
			results.GET("", resultController.ListAll)
			results.GET("/filter", resultController.Filter)
			results.PUT("/:id", resultController.Update)
			results.DELETE("/:id", resultController.Delete)
		}

		tests := instructorAuth.Group("/instructor/future-tests")
		{
			tests.GET("", futureTestController.ListMine)
			tests.POST("", futureTestController.Create)
			tests.PUT("/:id", futureTestController.Update)
			tests.DELETE("/:id", futureTestController.Delete)
		}

		instructorAuth.GET("/instructor/evaluations", evaluationController.ListMine)
	}

	// --- Shared routes (either role) ---
	chat := api.Group("/chat")
	chat.Use(authMiddleware.RequireRole(models.RoleStudent, models.RoleInstructor))
	{
		chat.POST("/send", chatController.Send)
		chat.GET("/history", chatController.History)
	}
}
