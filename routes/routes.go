package routes

import (
	"net/http"
	"os"

	"github.com/vReis72/nutri-vita-plan-sub000/controllers"
	"github.com/vReis72/nutri-vita-plan-sub000/middlewares"
	"github.com/vReis72/nutri-vita-plan-sub000/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{os.Getenv("DASHBOARD_URL"), "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
		auth.GET("/invitations/verify", controllers.VerifyInvitation)
		auth.POST("/refresh", middlewares.SessionMiddleware(), controllers.Refresh)
	}

	api := r.Group("/api")
	api.Use(middlewares.SessionMiddleware())

	// Any resolved role
	shared := api.Group("")
	shared.Use(middlewares.RequireRoles())
	{
		shared.GET("/me", controllers.Me)
		shared.PUT("/me", controllers.UpdateMe)
		shared.GET("/notifications", controllers.ListNotifications)
		shared.PUT("/notifications/:id/read", controllers.MarkNotificationRead)
		shared.POST("/calculator/bmi", controllers.CalculateBMI)
		shared.POST("/calculator/energy", controllers.CalculateEnergy)
	}

	// Nutritionist workspace
	nutritionist := api.Group("")
	nutritionist.Use(middlewares.RequireRoles(models.RoleNutritionist))
	{
		nutritionist.POST("/patients", controllers.CreatePatient)
		nutritionist.GET("/patients", controllers.ListPatients)
	}

	// Sub-resources of one patient re-check ownership per request
	patientScoped := api.Group("/patients/:id")
	patientScoped.Use(
		middlewares.RequireRoles(models.RoleNutritionist, models.RoleAdmin),
		middlewares.RequirePatientOwnership(),
	)
	{
		patientScoped.GET("", controllers.GetPatient)
		patientScoped.PUT("", controllers.UpdatePatient)
		patientScoped.DELETE("", controllers.DeletePatient)
		patientScoped.POST("/transfer", controllers.TransferPatient)
		patientScoped.GET("/export", controllers.ExportPatientAssessments)
		patientScoped.POST("/assessments", controllers.CreateAssessment)
		patientScoped.GET("/assessments", controllers.ListAssessments)
		patientScoped.POST("/diet-plans", controllers.CreateDietPlan)
		patientScoped.GET("/diet-plans", controllers.ListDietPlans)
		patientScoped.PUT("/diet-plans/:planId", controllers.UpdateDietPlan)
		patientScoped.DELETE("/diet-plans/:planId", controllers.DeleteDietPlan)
	}

	// Food catalog
	foods := api.Group("/foods")
	foods.Use(middlewares.RequireRoles(models.RoleNutritionist, models.RoleAdmin))
	{
		foods.POST("", controllers.CreateFood)
		foods.GET("", controllers.SearchFoods)
		foods.GET("/:id", controllers.GetFood)
		foods.PUT("/:id", controllers.UpdateFood)
		foods.DELETE("/:id", controllers.DeleteFood)
	}

	// Invitations
	invitations := api.Group("/invitations")
	invitations.Use(middlewares.RequireRoles(models.RoleNutritionist, models.RoleAdmin))
	{
		invitations.POST("", controllers.CreateInvitation)
		invitations.GET("", controllers.ListInvitations)
	}

	// Patient self-service
	patient := api.Group("/patient")
	patient.Use(middlewares.RequireRoles(models.RolePatient))
	{
		patient.GET("/progress", controllers.MyProgress)
		patient.GET("/assessments", controllers.MyAssessments)
		patient.GET("/diet-plans", controllers.MyDietPlans)
		patient.GET("/profile", controllers.MyPatientProfile)
	}

	// Admin
	admin := api.Group("/admin")
	admin.Use(middlewares.RequireRoles(models.RoleAdmin))
	{
		admin.GET("/nutritionists", controllers.AdminListNutritionists)
		admin.GET("/nutritionists/:id", controllers.AdminGetNutritionist)
		admin.PUT("/nutritionists/:id", controllers.AdminUpdateNutritionist)
		admin.DELETE("/nutritionists/:id", controllers.AdminDeleteNutritionist)
		admin.GET("/patients", controllers.AdminListPatients)
		admin.POST("/patients", controllers.AdminCreatePatient)
		admin.DELETE("/patients/:id", controllers.AdminDeletePatient)
	}

	// Unmatched routes answer not-found, no redirect side effect.
	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return r
}
