package controllers

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/response"
	"fleet_office/internal/services"
)

// ReportController exposes the seven read-only report endpoints.
type ReportController struct {
	service *services.ReportService
}

func NewReportController(service *services.ReportService) *ReportController {
	return &ReportController{service: service}
}

func (ctrl *ReportController) BalanceSheet(c *gin.Context) {
	heads, err := ctrl.service.BalanceSheet()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Balance sheet retrieved successfully", heads)
}

func (ctrl *ReportController) FuelStatus(c *gin.Context) {
	vehicles, err := ctrl.service.FuelStatus()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Fuel status retrieved successfully", vehicles)
}

func (ctrl *ReportController) StockStatus(c *gin.Context) {
	var filters services.StockStatusFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid stock status query: "+err.Error())
		return
	}

	rows, pages, total, err := ctrl.service.StockStatus(filters, paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Stock status retrieved successfully", response.NewMeta(pages, total), rows)
}

func (ctrl *ReportController) VehicleSummary(c *gin.Context) {
	var filters services.VehicleSummaryFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		response.BadRequest(c, "Invalid summary query: "+err.Error())
		return
	}

	vehicles, pages, total, err := ctrl.service.VehicleSummary(filters, paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Vehicle summary retrieved successfully", response.NewMeta(pages, total), vehicles)
}

func (ctrl *ReportController) TripSummary(c *gin.Context) {
	summary, err := ctrl.service.GetTripSummary()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Trip summary retrieved successfully", summary)
}

func (ctrl *ReportController) TripMonthlySummary(c *gin.Context) {
	rows, err := ctrl.service.TripSummaryGroupByMonthYear()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Trip monthly summary retrieved successfully", rows)
}

func (ctrl *ReportController) FuelMonthlySummary(c *gin.Context) {
	rows, err := ctrl.service.FuelSummaryGroupByMonthYear()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Fuel monthly summary retrieved successfully", rows)
}
