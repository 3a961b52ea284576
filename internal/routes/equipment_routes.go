package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/controllers"
	"fleet_office/internal/middleware"
)

func EquipmentRoutes(r *gin.Engine, ctrl *controllers.EquipmentController) {
	equipment := r.Group("/equipment")
	equipment.Use(middleware.RequireAuth())
	{
		equipment.POST("/create", ctrl.Create)
		equipment.GET("/", ctrl.GetAll)
		equipment.GET("/:id", ctrl.GetSingle)
		equipment.PATCH("/:id", ctrl.UpdateSingle)
	}
}
