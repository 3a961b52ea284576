// internal/models/account.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type AccountType struct {
	gorm.Model
	Label string `json:"label" gorm:"unique;not null"`
}

// AccountHead is a financial category joining every cost/revenue
// sub-collection for balance-sheet reporting.
type AccountHead struct {
	gorm.Model
	AccountTypeID uint         `json:"account_type_id"`
	AccountType   *AccountType `gorm:"foreignKey:AccountTypeID" json:"account_type,omitempty"`
	Label         string       `json:"label"`

	Trips             []Trip            `gorm:"foreignKey:AccountHeadID" json:"trips,omitempty"`
	Expenses          []Expense         `gorm:"foreignKey:AccountHeadID" json:"expenses,omitempty"`
	Vehicles          []Vehicle         `gorm:"foreignKey:AccountHeadID" json:"vehicles,omitempty"`
	Maintenances      []Maintenance     `gorm:"foreignKey:AccountHeadID" json:"maintenances,omitempty"`
	EquipmentUses     []EquipmentUse    `gorm:"foreignKey:AccountHeadID" json:"equipment_uses,omitempty"`
	AccidentHistories []AccidentHistory `gorm:"foreignKey:AccountHeadID" json:"accident_histories,omitempty"`
	PaperWorks        []PaperWork       `gorm:"foreignKey:AccountHeadID" json:"paper_works,omitempty"`
}

type AccidentHistory struct {
	gorm.Model
	VehicleID     uint            `json:"vehicle_id" gorm:"index"`
	AccountHeadID uint            `json:"account_head_id"`
	PaymentStatus string          `json:"payment_status"` // "Paid" or "Received"
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,4);default:0"`
	Date          time.Time       `json:"date"`
}
