package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"fleet_office/internal/models"
	"fleet_office/internal/response"
	"fleet_office/internal/services"
)

type TripController struct {
	service *services.TripService
}

func NewTripController(service *services.TripService) *TripController {
	return &TripController{service: service}
}

type createTripInput struct {
	VehicleID     uint            `json:"vehicle_id" binding:"required"`
	AccountHeadID uint            `json:"account_head_id"`
	From          string          `json:"from" binding:"required"`
	To            string          `json:"to" binding:"required"`
	Amount        decimal.Decimal `json:"amount"`
	StartDate     time.Time       `json:"start_date" binding:"required"`
	EndDate       *time.Time      `json:"end_date"`
}

type updateTripInput struct {
	AccountHeadID *uint            `json:"account_head_id"`
	From          *string          `json:"from"`
	To            *string          `json:"to"`
	Status        *string          `json:"status" binding:"omitempty,oneof=Pending Completed Cancelled"`
	Amount        *decimal.Decimal `json:"amount"`
	StartDate     *time.Time       `json:"start_date"`
	EndDate       *time.Time       `json:"end_date"`
}

func (in updateTripInput) patch() map[string]any {
	patch := make(map[string]any)
	if in.AccountHeadID != nil {
		patch["account_head_id"] = *in.AccountHeadID
	}
	if in.From != nil {
		patch["from"] = *in.From
	}
	if in.To != nil {
		patch["to"] = *in.To
	}
	if in.Status != nil {
		patch["status"] = *in.Status
	}
	if in.Amount != nil {
		patch["amount"] = *in.Amount
	}
	if in.StartDate != nil {
		patch["start_date"] = *in.StartDate
	}
	if in.EndDate != nil {
		patch["end_date"] = *in.EndDate
	}
	return patch
}

func (ctrl *TripController) Create(c *gin.Context) {
	var input createTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid trip input: "+err.Error())
		return
	}

	trip := models.Trip{
		VehicleID:     input.VehicleID,
		AccountHeadID: input.AccountHeadID,
		From:          input.From,
		To:            input.To,
		Status:        models.TripStatusPending,
		Amount:        input.Amount,
		StartDate:     input.StartDate,
		EndDate:       input.EndDate,
	}

	if err := ctrl.service.Create(&trip); err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Trip created successfully", trip)
}

func (ctrl *TripController) GetAll(c *gin.Context) {
	trips, pages, total, err := ctrl.service.GetAll(filterParams(c), paginationOptions(c))
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.List(c, "Trips retrieved successfully", response.NewMeta(pages, total), trips)
}

func (ctrl *TripController) GetSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := ctrl.service.GetSingle(id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Trip retrieved successfully", trip)
}

func (ctrl *TripController) UpdateSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input updateTripInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid update: "+err.Error())
		return
	}

	trip, err := ctrl.service.UpdateSingle(id, input.patch())
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Trip updated successfully", trip)
}

func (ctrl *TripController) DeleteSingle(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	trip, err := ctrl.service.DeleteSingle(id)
	if err != nil {
		response.Fail(c, err)
		return
	}

	response.OK(c, "Trip deleted successfully", trip)
}
