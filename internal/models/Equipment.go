// internal/models/equipment.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Uom is a unit of measure (litre, piece, kg).
type Uom struct {
	gorm.Model
	Label string `json:"label" gorm:"unique;not null"`
}

type Equipment struct {
	gorm.Model
	Label string `json:"label" gorm:"index"`
	UomID uint   `json:"uom_id"`
	Uom   *Uom   `gorm:"foreignKey:UomID" json:"uom,omitempty"`

	EquipmentIns  []EquipmentIn  `gorm:"foreignKey:EquipmentID" json:"equipment_ins,omitempty"`
	EquipmentUses []EquipmentUse `gorm:"foreignKey:EquipmentID" json:"equipment_uses,omitempty"`
}

// EquipmentIn is an incoming stock record.
type EquipmentIn struct {
	gorm.Model
	EquipmentID uint            `json:"equipment_id" gorm:"index"`
	Quantity    float64         `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price" gorm:"type:decimal(20,4);default:0"`
	Date        time.Time       `json:"date"`
}

// EquipmentUse records consumption. InHouse uses count against current
// stock; billed-out uses do not.
type EquipmentUse struct {
	gorm.Model
	EquipmentID   uint            `json:"equipment_id" gorm:"index"`
	VehicleID     uint            `json:"vehicle_id" gorm:"index"`
	AccountHeadID uint            `json:"account_head_id"`
	Quantity      float64         `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"total_price" gorm:"type:decimal(20,4);default:0"`
	InHouse       bool            `json:"in_house" gorm:"default:true"`
	Date          time.Time       `json:"date"`
}
