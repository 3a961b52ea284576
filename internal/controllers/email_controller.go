package controllers

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/models"
	"fleet_office/internal/response"
	"fleet_office/internal/services"
)

type EmailController struct {
	service *services.EmailService
}

func NewEmailController(service *services.EmailService) *EmailController {
	return &EmailController{service: service}
}

type createEmailInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Details string `json:"details" binding:"required"`
}

func (ctrl *EmailController) Create(c *gin.Context) {
	var input createEmailInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid email input: "+err.Error())
		return
	}

	email := models.EmailNotification{
		Name:    input.Name,
		Email:   input.Email,
		Details: input.Details,
	}

	if err := ctrl.service.Create(&email); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Email notification added successfully", email)
}

func (ctrl *EmailController) GetAll(c *gin.Context) {
	emails, pages, total, err := ctrl.service.GetAll(filterParams(c), paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Email notifications retrieved successfully", response.NewMeta(pages, total), emails)
}

func (ctrl *EmailController) GetSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	email, err := ctrl.service.GetSingle(id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Email notification retrieved successfully", email)
}
