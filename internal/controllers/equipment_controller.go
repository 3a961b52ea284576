package controllers

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/models"
	"fleet_office/internal/response"
	"fleet_office/internal/services"
)

type EquipmentController struct {
	service *services.EquipmentService
}

func NewEquipmentController(service *services.EquipmentService) *EquipmentController {
	return &EquipmentController{service: service}
}

type createEquipmentInput struct {
	Label string `json:"label" binding:"required"`
	UomID uint   `json:"uom_id" binding:"required"`
}

type updateEquipmentInput struct {
	Label *string `json:"label"`
	UomID *uint   `json:"uom_id"`
}

func (in updateEquipmentInput) patch() map[string]any {
	patch := make(map[string]any)
	if in.Label != nil {
		patch["label"] = *in.Label
	}
	if in.UomID != nil {
		patch["uom_id"] = *in.UomID
	}
	return patch
}

func (ctrl *EquipmentController) Create(c *gin.Context) {
	var input createEquipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid equipment input: "+err.Error())
		return
	}

	equipment := models.Equipment{
		Label: input.Label,
		UomID: input.UomID,
	}

	if err := ctrl.service.Create(&equipment); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Equipment created successfully", equipment)
}

func (ctrl *EquipmentController) GetAll(c *gin.Context) {
	equipment, pages, total, err := ctrl.service.GetAll(filterParams(c), paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Equipment retrieved successfully", response.NewMeta(pages, total), equipment)
}

func (ctrl *EquipmentController) GetSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	equipment, err := ctrl.service.GetSingle(id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Equipment retrieved successfully", equipment)
}

func (ctrl *EquipmentController) UpdateSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateEquipmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid update: "+err.Error())
		return
	}

	equipment, err := ctrl.service.UpdateSingle(id, input.patch())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Equipment updated successfully", equipment)
}
