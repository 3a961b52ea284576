package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/controllers"
	"fleet_office/internal/middleware"
)

// RecordsRoutes registers the financial record endpoints.
func RecordsRoutes(r *gin.Engine, ctrl *controllers.RecordsController) {
	expense := r.Group("/expense")
	expense.Use(middleware.RequireAuth())
	{
		expense.POST("/create", ctrl.CreateExpense)
		expense.GET("/", ctrl.GetAllExpenses)
	}

	fuel := r.Group("/fuel")
	fuel.Use(middleware.RequireAuth())
	{
		fuel.POST("/create", ctrl.CreateFuel)
		fuel.GET("/", ctrl.GetAllFuels)
	}

	maintenance := r.Group("/maintenance")
	maintenance.Use(middleware.RequireAuth())
	{
		maintenance.POST("/create", ctrl.CreateMaintenance)
	}

	paperWork := r.Group("/paper-work")
	paperWork.Use(middleware.RequireAuth())
	{
		paperWork.POST("/create", ctrl.CreatePaperWork)
	}

	accident := r.Group("/accident-history")
	accident.Use(middleware.RequireAuth())
	{
		accident.POST("/create", ctrl.CreateAccidentHistory)
	}

	equipmentIn := r.Group("/equipment-in")
	equipmentIn.Use(middleware.RequireAuth())
	{
		equipmentIn.POST("/create", ctrl.CreateEquipmentIn)
	}

	equipmentUse := r.Group("/equipment-use")
	equipmentUse.Use(middleware.RequireAuth())
	{
		equipmentUse.POST("/create", ctrl.CreateEquipmentUse)
	}
}
