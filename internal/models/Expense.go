// internal/models/expense.go
package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// FuelExpenseLabel is the reserved ExpenseHead label the fuel-status report
// depends on. It must exist before that report can run.
const FuelExpenseLabel = "Fuel Expense"

// ExpenseHead is an expense category (e.g. "Fuel Expense", "Toll").
type ExpenseHead struct {
	gorm.Model
	Label    string    `json:"label" gorm:"unique;not null"`
	Expenses []Expense `gorm:"foreignKey:ExpenseHeadID" json:"expenses,omitempty"`
}

type Expense struct {
	gorm.Model
	VehicleID     uint            `json:"vehicle_id" gorm:"index"`
	AccountHeadID uint            `json:"account_head_id"`
	ExpenseHeadID uint            `json:"expense_head_id" gorm:"index"`
	Amount        decimal.Decimal `json:"amount" gorm:"type:decimal(20,4);default:0"`
	IsMisc        bool            `json:"is_misc" gorm:"default:false"`
	Date          time.Time       `json:"date"`
}
