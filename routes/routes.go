package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/antoniofmoraes/nutri-plan/config"
	"github.com/antoniofmoraes/nutri-plan/controllers"
	"github.com/antoniofmoraes/nutri-plan/logger"
	"github.com/antoniofmoraes/nutri-plan/middlewares"
	"github.com/antoniofmoraes/nutri-plan/services"
)

// SetupRouter wires every service, controller and middleware once at startup
// and returns the configured engine.
func SetupRouter(cfg config.Config, db *gorm.DB, log *logger.Logger) *gin.Engine {
	secret := []byte(cfg.JWTSecret)
	tokenTTL := time.Duration(cfg.JWTExpires) * time.Hour

	authSvc := services.NewAuthService(db, log, secret, tokenTTL)
	userSvc := services.NewUserService(db, log)
	foodSvc := services.NewFoodService(db, log)
	planSvc := services.NewMealPlanService(db, log)
	mealSvc := services.NewMealService(db, log)
	mealFoodSvc := services.NewMealFoodService(db, log)

	authCtl := controllers.NewAuthController(authSvc)
	userCtl := controllers.NewUserController(userSvc)
	foodCtl := controllers.NewFoodController(foodSvc)
	planCtl := controllers.NewMealPlanController(planSvc)
	mealCtl := controllers.NewMealController(mealSvc)
	mealFoodCtl := controllers.NewMealFoodController(mealFoodSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))

	corsCfg := cors.DefaultConfig()
	if cfg.CORSOrigin == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = []string{cfg.CORSOrigin}
		corsCfg.AllowCredentials = true
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization")
	r.Use(cors.New(corsCfg))

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "NutriPlan API",
			"version":   "1.0.0",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	authRequired := middlewares.AuthMiddleware(secret)

	auth := api.Group("/auth")
	{
		auth.POST("/register", authCtl.Register)
		auth.POST("/login", authCtl.Login)
		auth.GET("/me", authRequired, authCtl.Me)
		auth.POST("/logout", authRequired, authCtl.Logout)
	}

	users := api.Group("/users", authRequired)
	{
		users.GET("/me", userCtl.Get)
		users.PATCH("/me", userCtl.Update)
		users.DELETE("/me", userCtl.Delete)
	}

	foods := api.Group("/foods", authRequired)
	{
		foods.GET("", foodCtl.List)
		foods.GET("/:id", foodCtl.Get)
		foods.POST("", foodCtl.Create)
		foods.PATCH("/:id", foodCtl.Update)
		foods.DELETE("/:id", foodCtl.Delete)
	}

	plans := api.Group("/meal-plans", authRequired)
	{
		plans.GET("", planCtl.List)
		plans.POST("", planCtl.Create)
		plans.GET("/:planId", planCtl.Get)
		plans.PATCH("/:planId", planCtl.Update)
		plans.DELETE("/:planId", planCtl.Delete)
		plans.GET("/:planId/macros", planCtl.Macros)

		plans.GET("/:planId/days/:day/meals", mealCtl.ListForDay)
		plans.POST("/:planId/days/:day/meals", mealCtl.Create)
		plans.PATCH("/:planId/days/:day/meals/:mealId", mealCtl.Update)
		plans.DELETE("/:planId/days/:day/meals/:mealId", mealCtl.Delete)
	}

	meals := api.Group("/meals", authRequired)
	{
		meals.GET("/:mealId/foods", mealFoodCtl.List)
		meals.POST("/:mealId/foods", mealFoodCtl.Add)
		meals.PATCH("/:mealId/foods/:foodId", mealFoodCtl.UpdateQuantity)
		meals.DELETE("/:mealId/foods/:foodId", mealFoodCtl.Remove)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Rota não encontrada"})
	})

	return r
}
