package services

import (
	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

type EquipmentStore interface {
	List(p query.Predicate, pages pagination.Pages) ([]models.Equipment, int64, error)
	FindByID(id uint) (*models.Equipment, error)
	Create(equipment *models.Equipment) error
	Update(id uint, patch map[string]any) (*models.Equipment, error)
}

var equipmentFilterSpec = query.Spec{
	Fields: []query.Field{
		{Name: "uom_id"},
	},
	Searchable: []string{"label"},
}

type EquipmentService struct {
	store EquipmentStore
}

func NewEquipmentService(store EquipmentStore) *EquipmentService {
	return &EquipmentService{store: store}
}

func (s *EquipmentService) Create(equipment *models.Equipment) error {
	if err := s.store.Create(equipment); err != nil {
		return apperror.BadRequest("Failed to create equipment")
	}
	return nil
}

func (s *EquipmentService) GetAll(filters map[string]string, opts pagination.Options) ([]models.Equipment, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)
	predicate := query.Build(filters, equipmentFilterSpec)

	equipment, total, err := s.store.List(predicate, pages)
	if err != nil {
		return nil, pages, 0, err
	}
	return equipment, pages, total, nil
}

// GetSingle passes absence through as nil.
func (s *EquipmentService) GetSingle(id uint) (*models.Equipment, error) {
	return s.store.FindByID(id)
}

func (s *EquipmentService) UpdateSingle(id uint, patch map[string]any) (*models.Equipment, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Equipment not found")
	}

	return s.store.Update(id, patch)
}
