package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/controllers"
	"fleet_office/internal/middleware"
)

func TripRoutes(r *gin.Engine, ctrl *controllers.TripController) {
	trip := r.Group("/trip")
	trip.Use(middleware.RequireAuth())
	{
		trip.POST("/create", ctrl.Create)
		trip.GET("/", ctrl.GetAll)
		trip.GET("/:id", ctrl.GetSingle)
		trip.PATCH("/:id", ctrl.UpdateSingle)
		trip.DELETE("/:id", ctrl.DeleteSingle)
	}
}
