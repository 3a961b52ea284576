package store

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

// ReportStore holds the report-specific reads, including the year/month
// grouping aggregates GORM's structured layer cannot express without
// EXTRACT. The SQL here is built from Select/Group/Order calls only; the
// service layer never sees a SQL string.
type ReportStore struct {
	db *gorm.DB
}

func NewReportStore(db *gorm.DB) *ReportStore {
	return &ReportStore{db: db}
}

// TripMonthlyRow is one year/month bucket of completed and pending trips.
type TripMonthlyRow struct {
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// FuelMonthlyRow is one year/month bucket of fuel fills.
type FuelMonthlyRow struct {
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TotalQuantity float64         `json:"total_quantity"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// TripTotals carries the completed-trip aggregate for the trip summary.
type TripTotals struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseTotals carries the non-misc expense aggregate. Count lets the
// caller tell "no rows" apart from a genuine zero sum.
type ExpenseTotals struct {
	Count  int64           `json:"count"`
	Amount decimal.Decimal `json:"amount"`
}

// AccountHeadsWithFinancials loads every account head with its type label
// and all six financial sub-collections. Summation is left to the caller.
func (s *ReportStore) AccountHeadsWithFinancials() ([]models.AccountHead, error) {
	var heads []models.AccountHead
	err := s.db.
		Preload("AccountType").
		Preload("Trips").
		Preload("Expenses").
		Preload("Vehicles").
		Preload("Maintenances").
		Preload("EquipmentUses").
		Preload("AccidentHistories").
		Preload("PaperWorks").
		Find(&heads).Error
	return heads, err
}

// FindExpenseHeadByLabel returns (nil, nil) when no head carries the label.
func (s *ReportStore) FindExpenseHeadByLabel(label string) (*models.ExpenseHead, error) {
	var head models.ExpenseHead
	if err := s.db.Where("label = ?", label).First(&head).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &head, nil
}

// VehiclesWithFuelExpenses returns every vehicle with its fuel records and
// only the expenses belonging to the given expense head.
func (s *ReportStore) VehiclesWithFuelExpenses(fuelHeadID uint) ([]models.Vehicle, error) {
	var vehicles []models.Vehicle
	err := s.db.
		Preload("Fuels").
		Preload("Expenses", "expense_head_id = ?", fuelHeadID).
		Find(&vehicles).Error
	return vehicles, err
}

// EquipmentWithMovements returns one equipment page with uom, incoming
// records and in-house uses preloaded, plus the unpaginated total.
func (s *ReportStore) EquipmentWithMovements(p query.Predicate, pages pagination.Pages) ([]models.Equipment, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.Equipment{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var equipment []models.Equipment
	err := applyPredicate(s.db.Model(&models.Equipment{}), p).
		Preload("Uom").
		Preload("EquipmentIns").
		Preload("EquipmentUses", "in_house = ?", true).
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&equipment).Error
	if err != nil {
		return nil, 0, err
	}

	return equipment, total, nil
}

// VehiclesWithActivity returns one vehicle page with the nested
// sub-collections range-filtered: trips on start_date, everything else on
// date.
func (s *ReportStore) VehiclesWithActivity(p query.Predicate, pages pagination.Pages, rng DateRange) ([]models.Vehicle, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.Vehicle{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tripScope := func(db *gorm.DB) *gorm.DB { return applyRange(db, "start_date", rng) }
	dateScope := func(db *gorm.DB) *gorm.DB { return applyRange(db, "date", rng) }

	var vehicles []models.Vehicle
	err := applyPredicate(s.db.Model(&models.Vehicle{}), p).
		Preload("Trips", tripScope).
		Preload("Expenses", dateScope).
		Preload("Maintenances", dateScope).
		Preload("PaperWorks", dateScope).
		Preload("EquipmentUses", dateScope).
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// CompletedTripTotals aggregates count and amount over completed trips.
func (s *ReportStore) CompletedTripTotals() (TripTotals, error) {
	var totals TripTotals
	err := s.db.Model(&models.Trip{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("status = ?", models.TripStatusCompleted).
		Scan(&totals).Error
	return totals, err
}

// NonMiscExpenseTotals aggregates count and amount over expenses not
// flagged miscellaneous.
func (s *ReportStore) NonMiscExpenseTotals() (ExpenseTotals, error) {
	var totals ExpenseTotals
	err := s.db.Model(&models.Expense{}).
		Select("COUNT(*) AS count, COALESCE(SUM(amount), 0) AS amount").
		Where("is_misc = ?", false).
		Scan(&totals).Error
	return totals, err
}

// TripMonthly groups all trips by calendar year and month of start_date,
// chronologically ascending. Table() bypasses the soft-delete scope, so
// deleted rows are excluded explicitly.
func (s *ReportStore) TripMonthly() ([]TripMonthlyRow, error) {
	var rows []TripMonthlyRow
	err := s.db.Table("trips").
		Select("EXTRACT(YEAR FROM start_date)::int AS year, EXTRACT(MONTH FROM start_date)::int AS month, COALESCE(SUM(amount), 0) AS total_amount").
		Where("deleted_at IS NULL").
		Group("EXTRACT(YEAR FROM start_date), EXTRACT(MONTH FROM start_date)").
		Order("year ASC, month ASC").
		Scan(&rows).Error
	return rows, err
}

// FuelMonthly groups all fuel records by calendar year and month of date.
func (s *ReportStore) FuelMonthly() ([]FuelMonthlyRow, error) {
	var rows []FuelMonthlyRow
	err := s.db.Table("fuels").
		Select("EXTRACT(YEAR FROM date)::int AS year, EXTRACT(MONTH FROM date)::int AS month, COALESCE(SUM(quantity), 0) AS total_quantity, COALESCE(SUM(amount), 0) AS total_amount").
		Where("deleted_at IS NULL").
		Group("EXTRACT(YEAR FROM date), EXTRACT(MONTH FROM date)").
		Order("year ASC, month ASC").
		Scan(&rows).Error
	return rows, err
}
