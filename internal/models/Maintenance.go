// internal/models/maintenance.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Maintenance struct {
	gorm.Model
	VehicleID     uint            `json:"vehicle_id" gorm:"index"`
	AccountHeadID uint            `json:"account_head_id"`
	Workshop      string          `json:"workshop"`
	ServiceCharge decimal.Decimal `json:"service_charge" gorm:"type:decimal(20,4);default:0"`
	Date          time.Time       `json:"date"`
}

// PaperWork covers registration, insurance and similar document costs.
type PaperWork struct {
	gorm.Model
	VehicleID     uint            `json:"vehicle_id" gorm:"index"`
	AccountHeadID uint            `json:"account_head_id"`
	Title         string          `json:"title"`
	TotalAmount   decimal.Decimal `json:"total_amount" gorm:"type:decimal(20,4);default:0"`
	Date          time.Time       `json:"date"`
}
