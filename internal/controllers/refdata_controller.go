package controllers

import (
	"github.com/gin-gonic/gin"

	"fleet_office/internal/models"
	"fleet_office/internal/response"
	"fleet_office/internal/services"
)

// RefDataController exposes the reference tables: uoms, account types,
// account heads and expense heads.
type RefDataController struct {
	service *services.RefDataService
}

func NewRefDataController(service *services.RefDataService) *RefDataController {
	return &RefDataController{service: service}
}

type labelInput struct {
	Label string `json:"label" binding:"required"`
}

func (ctrl *RefDataController) CreateUom(c *gin.Context) {
	var input labelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid uom input: "+err.Error())
		return
	}

	uom := models.Uom{Label: input.Label}
	if err := ctrl.service.CreateUom(&uom); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Unit of measure added successfully", uom)
}

func (ctrl *RefDataController) GetAllUoms(c *gin.Context) {
	uoms, err := ctrl.service.GetAllUoms()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Units of measure retrieved successfully", uoms)
}

func (ctrl *RefDataController) CreateAccountType(c *gin.Context) {
	var input labelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid account type input: "+err.Error())
		return
	}

	at := models.AccountType{Label: input.Label}
	if err := ctrl.service.CreateAccountType(&at); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Account type added successfully", at)
}

func (ctrl *RefDataController) GetAllAccountTypes(c *gin.Context) {
	types, err := ctrl.service.GetAllAccountTypes()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Account types retrieved successfully", types)
}

type createAccountHeadInput struct {
	AccountTypeID uint   `json:"account_type_id" binding:"required"`
	Label         string `json:"label" binding:"required"`
}

func (ctrl *RefDataController) CreateAccountHead(c *gin.Context) {
	var input createAccountHeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid account head input: "+err.Error())
		return
	}

	head := models.AccountHead{
		AccountTypeID: input.AccountTypeID,
		Label:         input.Label,
	}

	if err := ctrl.service.CreateAccountHead(&head); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Account head added successfully", head)
}

func (ctrl *RefDataController) GetAllAccountHeads(c *gin.Context) {
	heads, err := ctrl.service.GetAllAccountHeads()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Account heads retrieved successfully", heads)
}

func (ctrl *RefDataController) CreateExpenseHead(c *gin.Context) {
	var input labelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid expense head input: "+err.Error())
		return
	}

	head := models.ExpenseHead{Label: input.Label}
	if err := ctrl.service.CreateExpenseHead(&head); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Expense head added successfully", head)
}

func (ctrl *RefDataController) GetAllExpenseHeads(c *gin.Context) {
	heads, err := ctrl.service.GetAllExpenseHeads()
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Expense heads retrieved successfully", heads)
}
