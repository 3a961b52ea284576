package services

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
	"fleet_office/internal/store"
)

// ReportStore is the read-only data-access seam of the report aggregator.
type ReportStore interface {
	AccountHeadsWithFinancials() ([]models.AccountHead, error)
	FindExpenseHeadByLabel(label string) (*models.ExpenseHead, error)
	VehiclesWithFuelExpenses(fuelHeadID uint) ([]models.Vehicle, error)
	EquipmentWithMovements(p query.Predicate, pages pagination.Pages) ([]models.Equipment, int64, error)
	VehiclesWithActivity(p query.Predicate, pages pagination.Pages, rng store.DateRange) ([]models.Vehicle, int64, error)
	CompletedTripTotals() (store.TripTotals, error)
	NonMiscExpenseTotals() (store.ExpenseTotals, error)
	TripMonthly() ([]store.TripMonthlyRow, error)
	FuelMonthly() ([]store.FuelMonthlyRow, error)
}

// StockStatusFilters narrows the stock report to one equipment id.
type StockStatusFilters struct {
	ID string `form:"id"`
}

// VehicleSummaryFilters narrows the summary report by vehicle and an
// inclusive date range (YYYY-MM-DD).
type VehicleSummaryFilters struct {
	VehicleID string `form:"vehicleId"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}

// StockStatusRow is one equipment annotated with its stock totals.
type StockStatusRow struct {
	models.Equipment
	TotalInQuantity   float64 `json:"total_in_quantity"`
	TotalUsedQuantity float64 `json:"total_used_quantity"`
}

// TripSummary is the flat trip/expense aggregate. Fields stay nil when no
// matching rows exist, so they are omitted from the payload.
type TripSummary struct {
	Count   *int64           `json:"count,omitempty"`
	Amount  *decimal.Decimal `json:"amount,omitempty"`
	Expense *decimal.Decimal `json:"expense,omitempty"`
}

const dateLayout = "2006-01-02"

type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// BalanceSheet returns every account head with its nested financial
// sub-collections. Summation is presentation-layer work; the contract
// here is correct nested selection.
func (s *ReportService) BalanceSheet() ([]models.AccountHead, error) {
	return s.store.AccountHeadsWithFinancials()
}

// FuelStatus requires the "Fuel Expense" head to exist; without it the
// account is considered unconfigured and no vehicle query is issued.
func (s *ReportService) FuelStatus() ([]models.Vehicle, error) {
	head, err := s.store.FindExpenseHeadByLabel(models.FuelExpenseLabel)
	if err != nil {
		return nil, err
	}
	if head == nil {
		return nil, apperror.Configuration("First setup your account")
	}

	return s.store.VehiclesWithFuelExpenses(head.ID)
}

// StockStatus returns one equipment page annotated with total incoming
// quantity and total in-house used quantity.
func (s *ReportService) StockStatus(filters StockStatusFilters, opts pagination.Options) ([]StockStatusRow, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)

	var predicate query.Predicate
	if filters.ID != "" {
		id, err := strconv.ParseUint(filters.ID, 10, 32)
		if err != nil {
			return nil, pages, 0, apperror.BadRequest("Invalid id, expected a number")
		}
		predicate.And = append(predicate.And, query.Condition{Field: "id", Value: uint(id)})
	}

	equipment, total, err := s.store.EquipmentWithMovements(predicate, pages)
	if err != nil {
		return nil, pages, 0, err
	}

	rows := make([]StockStatusRow, len(equipment))
	for i, e := range equipment {
		row := StockStatusRow{Equipment: e}
		for _, in := range e.EquipmentIns {
			row.TotalInQuantity += in.Quantity
		}
		for _, use := range e.EquipmentUses {
			row.TotalUsedQuantity += use.Quantity
		}
		rows[i] = row
	}

	return rows, pages, total, nil
}

// VehicleSummary returns one vehicle page with trips, expenses,
// maintenances, paper works and equipment uses filtered by the optional
// date range. Trips bound on start_date, everything else on date.
func (s *ReportService) VehicleSummary(filters VehicleSummaryFilters, opts pagination.Options) ([]models.Vehicle, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)

	var predicate query.Predicate
	if filters.VehicleID != "" {
		id, err := strconv.ParseUint(filters.VehicleID, 10, 32)
		if err != nil {
			return nil, pages, 0, apperror.BadRequest("Invalid vehicleId, expected a number")
		}
		predicate.And = append(predicate.And, query.Condition{Field: "id", Value: uint(id)})
	}

	rng, err := buildDayRange(filters.StartDate, filters.EndDate)
	if err != nil {
		return nil, pages, 0, err
	}

	vehicles, total, err := s.store.VehiclesWithActivity(predicate, pages, rng)
	if err != nil {
		return nil, pages, 0, err
	}
	return vehicles, pages, total, nil
}

// GetTripSummary aggregates completed-trip count and amount plus the
// non-misc expense total into one flat object.
func (s *ReportService) GetTripSummary() (TripSummary, error) {
	var summary TripSummary

	trips, err := s.store.CompletedTripTotals()
	if err != nil {
		return summary, err
	}
	if trips.Count > 0 {
		summary.Count = &trips.Count
		summary.Amount = &trips.Amount
	}

	expenses, err := s.store.NonMiscExpenseTotals()
	if err != nil {
		return summary, err
	}
	if expenses.Count > 0 {
		summary.Expense = &expenses.Amount
	}

	return summary, nil
}

// TripSummaryGroupByMonthYear groups all trips by calendar year and month
// of their start date, chronologically ascending.
func (s *ReportService) TripSummaryGroupByMonthYear() ([]store.TripMonthlyRow, error) {
	return s.store.TripMonthly()
}

// FuelSummaryGroupByMonthYear groups all fuel records by calendar year and
// month, summing quantity and amount.
func (s *ReportService) FuelSummaryGroupByMonthYear() ([]store.FuelMonthlyRow, error) {
	return s.store.FuelMonthly()
}

// buildDayRange widens YYYY-MM-DD bounds to full days: start at 00:00:00,
// end at 23:59:59, both inclusive.
func buildDayRange(startDate, endDate string) (store.DateRange, error) {
	var rng store.DateRange

	if startDate != "" {
		day, err := time.Parse(dateLayout, startDate)
		if err != nil {
			return rng, apperror.BadRequest("Invalid startDate, expected YYYY-MM-DD")
		}
		rng.Start = &day
	}

	if endDate != "" {
		day, err := time.Parse(dateLayout, endDate)
		if err != nil {
			return rng, apperror.BadRequest("Invalid endDate, expected YYYY-MM-DD")
		}
		end := day.Add(23*time.Hour + 59*time.Minute + 59*time.Second)
		rng.End = &end
	}

	return rng, nil
}
