package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fleet_office/internal/models"
	"fleet_office/internal/response"
	"fleet_office/internal/services"
)

type VehicleController struct {
	service *services.VehicleService
}

func NewVehicleController(service *services.VehicleService) *VehicleController {
	return &VehicleController{service: service}
}

type createVehicleInput struct {
	RegNo         string          `json:"reg_no" binding:"required"`
	VehicleModel  string          `json:"vehicle_model"`
	BrandID       uint            `json:"brand_id"`
	VehicleValue  decimal.Decimal `json:"vehicle_value"`
	AccountHeadID uint            `json:"account_head_id"`
}

type updateVehicleInput struct {
	RegNo         *string          `json:"reg_no"`
	VehicleModel  *string          `json:"vehicle_model"`
	BrandID       *uint            `json:"brand_id"`
	VehicleValue  *decimal.Decimal `json:"vehicle_value"`
	AccountHeadID *uint            `json:"account_head_id"`
	IsActive      *bool            `json:"is_active"`
}

// patch maps only the fields the client actually sent, so a partial
// update never zeroes the rest.
func (in updateVehicleInput) patch() map[string]any {
	patch := make(map[string]any)
	if in.RegNo != nil {
		patch["reg_no"] = *in.RegNo
	}
	if in.VehicleModel != nil {
		patch["vehicle_model"] = *in.VehicleModel
	}
	if in.BrandID != nil {
		patch["brand_id"] = *in.BrandID
	}
	if in.VehicleValue != nil {
		patch["vehicle_value"] = *in.VehicleValue
	}
	if in.AccountHeadID != nil {
		patch["account_head_id"] = *in.AccountHeadID
	}
	if in.IsActive != nil {
		patch["is_active"] = *in.IsActive
	}
	return patch
}

func (ctrl *VehicleController) Create(c *gin.Context) {
	var input createVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid vehicle input: "+err.Error())
		return
	}

	vehicle := models.Vehicle{
		RegNo:         input.RegNo,
		VehicleModel:  input.VehicleModel,
		BrandID:       input.BrandID,
		VehicleValue:  input.VehicleValue,
		AccountHeadID: input.AccountHeadID,
		IsActive:      true,
	}

	if err := ctrl.service.Create(&vehicle); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Vehicle created successfully", vehicle)
}

func (ctrl *VehicleController) GetAll(c *gin.Context) {
	vehicles, pages, total, err := ctrl.service.GetAll(filterParams(c), paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Vehicles retrieved successfully", response.NewMeta(pages, total), vehicles)
}

func (ctrl *VehicleController) GetSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	// Absence is passed through as null data, not an error.
	vehicle, err := ctrl.service.GetSingle(id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Vehicle retrieved successfully", vehicle)
}

func (ctrl *VehicleController) UpdateSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateVehicleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid update: "+err.Error())
		return
	}

	vehicle, err := ctrl.service.UpdateSingle(id, input.patch())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Vehicle updated successfully", vehicle)
}

func (ctrl *VehicleController) Inactive(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	vehicle, err := ctrl.service.Inactive(id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Vehicle inactivated successfully", vehicle)
}
