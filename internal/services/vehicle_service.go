package services

import (
	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

// VehicleStore is the data-access seam the vehicle service depends on.
type VehicleStore interface {
	List(p query.Predicate, pages pagination.Pages) ([]models.Vehicle, int64, error)
	FindByID(id uint) (*models.Vehicle, error)
	Create(vehicle *models.Vehicle) error
	Update(id uint, patch map[string]any) (*models.Vehicle, error)
}

// vehicleFilterSpec enumerates the filterable and searchable vehicle
// fields. Request keys outside this list are ignored.
var vehicleFilterSpec = query.Spec{
	Fields: []query.Field{
		{Name: "reg_no"},
		{Name: "brand_id"},
		{Name: "account_head_id"},
		{Name: "is_active", Kind: query.KindEqualsBool},
	},
	Searchable: []string{"reg_no", "vehicle_model"},
}

type VehicleService struct {
	store VehicleStore
}

func NewVehicleService(store VehicleStore) *VehicleService {
	return &VehicleService{store: store}
}

func (s *VehicleService) Create(vehicle *models.Vehicle) error {
	if err := s.store.Create(vehicle); err != nil {
		return apperror.BadRequest("Failed to create vehicle")
	}
	return nil
}

func (s *VehicleService) GetAll(filters map[string]string, opts pagination.Options) ([]models.Vehicle, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)
	predicate := query.Build(filters, vehicleFilterSpec)

	vehicles, total, err := s.store.List(predicate, pages)
	if err != nil {
		return nil, pages, 0, err
	}
	return vehicles, pages, total, nil
}

// GetSingle passes absence through as nil. Callers that need a hard
// failure on a missing id use UpdateSingle/Inactive semantics instead.
func (s *VehicleService) GetSingle(id uint) (*models.Vehicle, error) {
	return s.store.FindByID(id)
}

// UpdateSingle checks existence first and fails with NotFound before any
// write is attempted.
func (s *VehicleService) UpdateSingle(id uint, patch map[string]any) (*models.Vehicle, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Vehicle not found")
	}

	return s.store.Update(id, patch)
}

// Inactive soft-deletes: the row stays in the store with is_active=false.
func (s *VehicleService) Inactive(id uint) (*models.Vehicle, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Vehicle not found")
	}

	return s.store.Update(id, map[string]any{"is_active": false})
}
