package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/controllers"
	"fleet_office/internal/middleware"
)

// ReportRoutes registers the read-only report endpoints.
func ReportRoutes(r *gin.Engine, ctrl *controllers.ReportController) {
	report := r.Group("/report")
	report.Use(middleware.RequireAuth())
	{
		report.GET("/balance-sheet", ctrl.BalanceSheet)
		report.GET("/fuel-status", ctrl.FuelStatus)
		report.GET("/stock-status", ctrl.StockStatus)
		report.GET("/vehicle-summary", ctrl.VehicleSummary)
		report.GET("/trip-summary", ctrl.TripSummary)
		report.GET("/trip-monthly", ctrl.TripMonthlySummary)
		report.GET("/fuel-monthly", ctrl.FuelMonthlySummary)
	}
}
