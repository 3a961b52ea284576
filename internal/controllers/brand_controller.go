package controllers

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/models"
	"fleet_office/internal/response"
	"fleet_office/internal/services"
)

type BrandController struct {
	service *services.BrandService
}

func NewBrandController(service *services.BrandService) *BrandController {
	return &BrandController{service: service}
}

type createBrandInput struct {
	Label string `json:"label" binding:"required"`
}

type updateBrandInput struct {
	Label *string `json:"label"`
}

func (ctrl *BrandController) Create(c *gin.Context) {
	var input createBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid brand input: "+err.Error())
		return
	}

	brand := models.Brand{Label: input.Label}
	if err := ctrl.service.Create(&brand); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Brand added successfully", brand)
}

func (ctrl *BrandController) GetAll(c *gin.Context) {
	brands, pages, total, err := ctrl.service.GetAll(filterParams(c), paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Brands retrieved successfully", response.NewMeta(pages, total), brands)
}

func (ctrl *BrandController) GetSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	brand, err := ctrl.service.GetSingle(id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Brand retrieved successfully", brand)
}

func (ctrl *BrandController) UpdateSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateBrandInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid update: "+err.Error())
		return
	}

	patch := make(map[string]any)
	if input.Label != nil {
		patch["label"] = *input.Label
	}

	brand, err := ctrl.service.UpdateSingle(id, patch)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Brand updated successfully", brand)
}
