// internal/models/vehicle.go
package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Vehicle struct {
	gorm.Model
	RegNo         string          `json:"reg_no" gorm:"index"`
	VehicleModel  string          `json:"vehicle_model"`
	BrandID       uint            `json:"brand_id"`
	Brand         *Brand          `gorm:"foreignKey:BrandID" json:"brand,omitempty"`
	VehicleValue  decimal.Decimal `json:"vehicle_value" gorm:"type:decimal(20,4);default:0"`
	IsActive      bool            `json:"is_active" gorm:"default:true"`
	AccountHeadID uint            `json:"account_head_id"`

	// Financial sub-collections hanging off a vehicle
	Trips         []Trip         `gorm:"foreignKey:VehicleID" json:"trips,omitempty"`
	Expenses      []Expense      `gorm:"foreignKey:VehicleID" json:"expenses,omitempty"`
	Maintenances  []Maintenance  `gorm:"foreignKey:VehicleID" json:"maintenances,omitempty"`
	PaperWorks    []PaperWork    `gorm:"foreignKey:VehicleID" json:"paper_works,omitempty"`
	EquipmentUses []EquipmentUse `gorm:"foreignKey:VehicleID" json:"equipment_uses,omitempty"`
	Fuels         []Fuel         `gorm:"foreignKey:VehicleID" json:"fuels,omitempty"`
}
