package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/controllers"
	"fleet_office/internal/middleware"
)

func EmailRoutes(r *gin.Engine, ctrl *controllers.EmailController) {
	email := r.Group("/email")
	email.Use(middleware.RequireAuth())
	{
		email.POST("/create", ctrl.Create)
		email.GET("/", ctrl.GetAll)
		email.GET("/:id", ctrl.GetSingle)
	}
}
