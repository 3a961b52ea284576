package store

import (
	"gorm.io/gorm"

	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

// RecordsStore covers the financial record entities that are written once
// and mostly consumed by the report aggregator: expenses, fuels,
// maintenances, paper works, accident histories and equipment movements.
type RecordsStore struct {
	db *gorm.DB
}

func NewRecordsStore(db *gorm.DB) *RecordsStore {
	return &RecordsStore{db: db}
}

func (s *RecordsStore) CreateExpense(expense *models.Expense) error {
	return s.db.Create(expense).Error
}

func (s *RecordsStore) ListExpenses(p query.Predicate, pages pagination.Pages) ([]models.Expense, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.Expense{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []models.Expense
	err := applyPredicate(s.db.Model(&models.Expense{}), p).
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&expenses).Error
	if err != nil {
		return nil, 0, err
	}
	return expenses, total, nil
}

func (s *RecordsStore) CreateFuel(fuel *models.Fuel) error {
	return s.db.Create(fuel).Error
}

func (s *RecordsStore) ListFuels(p query.Predicate, pages pagination.Pages) ([]models.Fuel, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.Fuel{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var fuels []models.Fuel
	err := applyPredicate(s.db.Model(&models.Fuel{}), p).
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&fuels).Error
	if err != nil {
		return nil, 0, err
	}
	return fuels, total, nil
}

func (s *RecordsStore) CreateMaintenance(m *models.Maintenance) error {
	return s.db.Create(m).Error
}

func (s *RecordsStore) CreatePaperWork(p *models.PaperWork) error {
	return s.db.Create(p).Error
}

func (s *RecordsStore) CreateAccidentHistory(a *models.AccidentHistory) error {
	return s.db.Create(a).Error
}

func (s *RecordsStore) CreateEquipmentIn(in *models.EquipmentIn) error {
	return s.db.Create(in).Error
}

func (s *RecordsStore) CreateEquipmentUse(use *models.EquipmentUse) error {
	return s.db.Create(use).Error
}
