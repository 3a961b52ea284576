// internal/models/fuel.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Fuel struct {
	gorm.Model
	VehicleID uint            `json:"vehicle_id" gorm:"index"`
	Date      time.Time       `json:"date"`
	Quantity  float64         `json:"quantity"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(20,4);default:0"`
}
