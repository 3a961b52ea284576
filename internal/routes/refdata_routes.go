package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/controllers"
	"fleet_office/internal/middleware"
	"fleet_office/internal/models"
)

// RefDataRoutes registers the reference tables. Creation is restricted to
// administrative roles.
func RefDataRoutes(r *gin.Engine, ctrl *controllers.RefDataController) {
	adminOnly := middleware.RequireAuthWithRole(models.RoleSuperAdmin, models.RoleAdmin)

	uom := r.Group("/uom")
	uom.Use(middleware.RequireAuth())
	{
		uom.POST("/create", adminOnly, ctrl.CreateUom)
		uom.GET("/", ctrl.GetAllUoms)
	}

	accountType := r.Group("/account-type")
	accountType.Use(middleware.RequireAuth())
	{
		accountType.POST("/create", adminOnly, ctrl.CreateAccountType)
		accountType.GET("/", ctrl.GetAllAccountTypes)
	}

	accountHead := r.Group("/account-head")
	accountHead.Use(middleware.RequireAuth())
	{
		accountHead.POST("/create", adminOnly, ctrl.CreateAccountHead)
		accountHead.GET("/", ctrl.GetAllAccountHeads)
	}

	expenseHead := r.Group("/expense-head")
	expenseHead.Use(middleware.RequireAuth())
	{
		expenseHead.POST("/create", adminOnly, ctrl.CreateExpenseHead)
		expenseHead.GET("/", ctrl.GetAllExpenseHeads)
	}
}
