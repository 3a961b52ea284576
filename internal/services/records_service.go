package services

import (
	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

// RecordsStore covers the financial record entities: written by the
// back office, read back mostly through the report aggregator.
type RecordsStore interface {
	CreateExpense(expense *models.Expense) error
	ListExpenses(p query.Predicate, pages pagination.Pages) ([]models.Expense, int64, error)
	CreateFuel(fuel *models.Fuel) error
	ListFuels(p query.Predicate, pages pagination.Pages) ([]models.Fuel, int64, error)
	CreateMaintenance(m *models.Maintenance) error
	CreatePaperWork(p *models.PaperWork) error
	CreateAccidentHistory(a *models.AccidentHistory) error
	CreateEquipmentIn(in *models.EquipmentIn) error
	CreateEquipmentUse(use *models.EquipmentUse) error
}

var expenseFilterSpec = query.Spec{
	Fields: []query.Field{
		{Name: "vehicle_id"},
		{Name: "expense_head_id"},
		{Name: "account_head_id"},
		{Name: "is_misc", Kind: query.KindEqualsBool},
	},
}

var fuelFilterSpec = query.Spec{
	Fields: []query.Field{
		{Name: "vehicle_id"},
	},
}

type RecordsService struct {
	store RecordsStore
}

func NewRecordsService(store RecordsStore) *RecordsService {
	return &RecordsService{store: store}
}

func (s *RecordsService) CreateExpense(expense *models.Expense) error {
	if err := s.store.CreateExpense(expense); err != nil {
		return apperror.BadRequest("Failed to create expense")
	}
	return nil
}

func (s *RecordsService) GetAllExpenses(filters map[string]string, opts pagination.Options) ([]models.Expense, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)
	predicate := query.Build(filters, expenseFilterSpec)

	expenses, total, err := s.store.ListExpenses(predicate, pages)
	if err != nil {
		return nil, pages, 0, err
	}
	return expenses, pages, total, nil
}

func (s *RecordsService) CreateFuel(fuel *models.Fuel) error {
	if err := s.store.CreateFuel(fuel); err != nil {
		return apperror.BadRequest("Failed to create fuel record")
	}
	return nil
}

func (s *RecordsService) GetAllFuels(filters map[string]string, opts pagination.Options) ([]models.Fuel, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)
	predicate := query.Build(filters, fuelFilterSpec)

	fuels, total, err := s.store.ListFuels(predicate, pages)
	if err != nil {
		return nil, pages, 0, err
	}
	return fuels, pages, total, nil
}

func (s *RecordsService) CreateMaintenance(m *models.Maintenance) error {
	if err := s.store.CreateMaintenance(m); err != nil {
		return apperror.BadRequest("Failed to create maintenance record")
	}
	return nil
}

func (s *RecordsService) CreatePaperWork(p *models.PaperWork) error {
	if err := s.store.CreatePaperWork(p); err != nil {
		return apperror.BadRequest("Failed to create paper work record")
	}
	return nil
}

func (s *RecordsService) CreateAccidentHistory(a *models.AccidentHistory) error {
	if err := s.store.CreateAccidentHistory(a); err != nil {
		return apperror.BadRequest("Failed to create accident history")
	}
	return nil
}

func (s *RecordsService) CreateEquipmentIn(in *models.EquipmentIn) error {
	if err := s.store.CreateEquipmentIn(in); err != nil {
		return apperror.BadRequest("Failed to create equipment-in record")
	}
	return nil
}

func (s *RecordsService) CreateEquipmentUse(use *models.EquipmentUse) error {
	if err := s.store.CreateEquipmentUse(use); err != nil {
		return apperror.BadRequest("Failed to create equipment-use record")
	}
	return nil
}
