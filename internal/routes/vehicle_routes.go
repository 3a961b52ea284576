package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/controllers"
	"fleet_office/internal/middleware"
)

func VehicleRoutes(r *gin.Engine, ctrl *controllers.VehicleController) {
	vehicle := r.Group("/vehicle")
	vehicle.Use(middleware.RequireAuth())
	{
		vehicle.POST("/create", ctrl.Create)
		vehicle.GET("/", ctrl.GetAll)
		vehicle.GET("/:id", ctrl.GetSingle)
		vehicle.PATCH("/:id", ctrl.UpdateSingle)
		vehicle.PATCH("/:id/inactive", ctrl.Inactive)
	}
}
