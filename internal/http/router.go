package api

import (
	"log"
	stdhttp "net/http"

	intconfig "transportpro/internal/config"
	"transportpro/internal/domain/models"
	h "transportpro/internal/http/handlers"
	"transportpro/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(env intconfig.Env, a *h.API) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery(), middleware.CORS(env.CORSOrigins), middleware.Metrics())

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	{
		api.GET("/health", a.Health)
		api.GET("/routes", h.Routes)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", a.Login)
		auth.POST("/logout", middleware.Auth(a.Auth), a.Logout)
		auth.GET("/me", middleware.Auth(a.Auth), a.Me)

		secured := api.Group("")
		secured.Use(middleware.Auth(a.Auth))

		// Trips
		trips := secured.Group("/trips")
		trips.GET("", a.ListTrips)
		trips.GET("/fleet", a.Fleet)
		trips.GET("/:id", a.GetTrip)
		trips.POST("", a.CreateTrip)
		trips.PUT("/:id", a.UpdateTrip)
		trips.DELETE("/:id", a.DeleteTrip)

		// Truck inventory
		trucks := secured.Group("/trucks")
		trucks.GET("", a.ListTrucks)
		trucks.GET("/models", a.TruckModels)
		trucks.GET("/:id", a.GetTruck)
		trucks.POST("", a.CreateTruck)
		trucks.PUT("/:id", a.UpdateTruck)
		trucks.POST("/:id/sell", a.SellTruck)
		trucks.PUT("/:id/sale", a.CorrectSale)
		trucks.DELETE("/:id", a.DeleteTruck)

		// Reports
		reports := secured.Group("/reports")
		reports.GET("/transport", a.TransportReport)
		reports.GET("/inventory", a.InventoryReport)
		reports.GET("/dashboard", a.Dashboard)
		reports.GET("/transport/export.csv", a.ExportTransportCSV)
		reports.GET("/inventory/export.csv", a.ExportInventoryCSV)
		reports.GET("/transport/export.pdf", a.ExportTransportPDF)
		reports.GET("/inventory/export.pdf", a.ExportInventoryPDF)

		// Users (admin only)
		users := secured.Group("/users")
		users.Use(middleware.RequireRoles(string(models.RoleAdmin)))
		users.GET("", a.ListUsers)
		users.GET("/:id", a.GetUser)
		users.POST("", a.CreateUser)
		users.PUT("/:id", a.UpdateUser)
		users.DELETE("/:id", a.DeleteUser)
		users.POST("/:id/toggle-status", a.ToggleUserStatus)
		users.PUT("/:id/status", a.SetUserStatus)
		users.POST("/:id/reset-password", a.ResetUserPassword)
	}

	h.SetRouter(r)
	return r
}
