package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/controllers"
	"fleet_office/internal/middleware"
)

func BrandRoutes(r *gin.Engine, ctrl *controllers.BrandController) {
	brand := r.Group("/brand")
	brand.Use(middleware.RequireAuth())
	{
		brand.POST("/create", ctrl.Create)
		brand.GET("/", ctrl.GetAll)
		brand.GET("/:id", ctrl.GetSingle)
		brand.PATCH("/:id", ctrl.UpdateSingle)
	}
}
