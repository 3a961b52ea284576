// internal/models/trip.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Trip statuses. Only completed trips count toward summary totals.
const (
	TripStatusPending   = "Pending"
	TripStatusCompleted = "Completed"
	TripStatusCancelled = "Cancelled"
)

type Trip struct {
	gorm.Model
	VehicleID     uint            `json:"vehicle_id" gorm:"index"`
	AccountHeadID uint            `json:"account_head_id"`
	From          string          `json:"from"`
	To            string          `json:"to"`
	Status        string          `json:"status" gorm:"default:Pending"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,4);default:0"`
	StartDate     time.Time       `json:"start_date"`
	EndDate       *time.Time      `json:"end_date,omitempty"`
}
