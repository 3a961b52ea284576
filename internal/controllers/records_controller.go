package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fleet_office/internal/models"
	"fleet_office/internal/response"
	"fleet_office/internal/services"
)

// RecordsController exposes create/list endpoints for the financial record
// entities the report aggregator reads back.
type RecordsController struct {
	service *services.RecordsService
}

func NewRecordsController(service *services.RecordsService) *RecordsController {
	return &RecordsController{service: service}
}

type createExpenseInput struct {
	VehicleID     uint            `json:"vehicle_id" binding:"required"`
	AccountHeadID uint            `json:"account_head_id"`
	ExpenseHeadID uint            `json:"expense_head_id" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	IsMisc        bool            `json:"is_misc"`
	Date          time.Time       `json:"date" binding:"required"`
}

func (ctrl *RecordsController) CreateExpense(c *gin.Context) {
	var input createExpenseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid expense input: "+err.Error())
		return
	}

	expense := models.Expense{
		VehicleID:     input.VehicleID,
		AccountHeadID: input.AccountHeadID,
		ExpenseHeadID: input.ExpenseHeadID,
		Amount:        input.Amount,
		IsMisc:        input.IsMisc,
		Date:          input.Date,
	}

	if err := ctrl.service.CreateExpense(&expense); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Expense created successfully", expense)
}

func (ctrl *RecordsController) GetAllExpenses(c *gin.Context) {
	expenses, pages, total, err := ctrl.service.GetAllExpenses(filterParams(c), paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Expenses retrieved successfully", response.NewMeta(pages, total), expenses)
}

type createFuelInput struct {
	VehicleID uint            `json:"vehicle_id" binding:"required"`
	Date      time.Time       `json:"date" binding:"required"`
	Quantity  float64         `json:"quantity" binding:"required"`
	Amount    decimal.Decimal `json:"amount"`
}

func (ctrl *RecordsController) CreateFuel(c *gin.Context) {
	var input createFuelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid fuel input: "+err.Error())
		return
	}

	fuel := models.Fuel{
		VehicleID: input.VehicleID,
		Date:      input.Date,
		Quantity:  input.Quantity,
		Amount:    input.Amount,
	}

	if err := ctrl.service.CreateFuel(&fuel); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Fuel record created successfully", fuel)
}

func (ctrl *RecordsController) GetAllFuels(c *gin.Context) {
	fuels, pages, total, err := ctrl.service.GetAllFuels(filterParams(c), paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Fuel records retrieved successfully", response.NewMeta(pages, total), fuels)
}

type createMaintenanceInput struct {
	VehicleID     uint            `json:"vehicle_id" binding:"required"`
	AccountHeadID uint            `json:"account_head_id"`
	Workshop      string          `json:"workshop"`
	ServiceCharge decimal.Decimal `json:"service_charge"`
	Date          time.Time       `json:"date" binding:"required"`
}

func (ctrl *RecordsController) CreateMaintenance(c *gin.Context) {
	var input createMaintenanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid maintenance input: "+err.Error())
		return
	}

	m := models.Maintenance{
		VehicleID:     input.VehicleID,
		AccountHeadID: input.AccountHeadID,
		Workshop:      input.Workshop,
		ServiceCharge: input.ServiceCharge,
		Date:          input.Date,
	}

	if err := ctrl.service.CreateMaintenance(&m); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Maintenance record created successfully", m)
}

type createPaperWorkInput struct {
	VehicleID     uint            `json:"vehicle_id" binding:"required"`
	AccountHeadID uint            `json:"account_head_id"`
	Title         string          `json:"title" binding:"required"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	Date          time.Time       `json:"date" binding:"required"`
}

func (ctrl *RecordsController) CreatePaperWork(c *gin.Context) {
	var input createPaperWorkInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid paper work input: "+err.Error())
		return
	}

	p := models.PaperWork{
		VehicleID:     input.VehicleID,
		AccountHeadID: input.AccountHeadID,
		Title:         input.Title,
		TotalAmount:   input.TotalAmount,
		Date:          input.Date,
	}

	if err := ctrl.service.CreatePaperWork(&p); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Paper work record created successfully", p)
}

type createAccidentHistoryInput struct {
	VehicleID     uint            `json:"vehicle_id" binding:"required"`
	AccountHeadID uint            `json:"account_head_id"`
	PaymentStatus string          `json:"payment_status" binding:"required,oneof=Paid Received"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date" binding:"required"`
}

func (ctrl *RecordsController) CreateAccidentHistory(c *gin.Context) {
	var input createAccidentHistoryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid accident history input: "+err.Error())
		return
	}

	a := models.AccidentHistory{
		VehicleID:     input.VehicleID,
		AccountHeadID: input.AccountHeadID,
		PaymentStatus: input.PaymentStatus,
		Amount:        input.Amount,
		Date:          input.Date,
	}

	if err := ctrl.service.CreateAccidentHistory(&a); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Accident history created successfully", a)
}

type createEquipmentInInput struct {
	EquipmentID uint            `json:"equipment_id" binding:"required"`
	Quantity    float64         `json:"quantity" binding:"required"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Date        time.Time       `json:"date" binding:"required"`
}

func (ctrl *RecordsController) CreateEquipmentIn(c *gin.Context) {
	var input createEquipmentInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid equipment-in input: "+err.Error())
		return
	}

	in := models.EquipmentIn{
		EquipmentID: input.EquipmentID,
		Quantity:    input.Quantity,
		UnitPrice:   input.UnitPrice,
		Date:        input.Date,
	}

	if err := ctrl.service.CreateEquipmentIn(&in); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Equipment-in record created successfully", in)
}

type createEquipmentUseInput struct {
	EquipmentID   uint            `json:"equipment_id" binding:"required"`
	VehicleID     uint            `json:"vehicle_id"`
	AccountHeadID uint            `json:"account_head_id"`
	Quantity      float64         `json:"quantity" binding:"required"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	InHouse       *bool           `json:"in_house"`
	Date          time.Time       `json:"date" binding:"required"`
}

func (ctrl *RecordsController) CreateEquipmentUse(c *gin.Context) {
	var input createEquipmentUseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid equipment-use input: "+err.Error())
		return
	}

	use := models.EquipmentUse{
		EquipmentID:   input.EquipmentID,
		VehicleID:     input.VehicleID,
		AccountHeadID: input.AccountHeadID,
		Quantity:      input.Quantity,
		TotalPrice:    input.TotalPrice,
		InHouse:       true,
		Date:          input.Date,
	}
	if input.InHouse != nil {
		use.InHouse = *input.InHouse
	}

	if err := ctrl.service.CreateEquipmentUse(&use); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Equipment-use record created successfully", use)
}
