package store

import (
	"errors"

	"gorm.io/gorm"

	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

type VehicleStore struct {
	db *gorm.DB
}

func NewVehicleStore(db *gorm.DB) *VehicleStore {
	return &VehicleStore{db: db}
}

// List returns one page of vehicles plus the total count matching the same
// predicate.
func (s *VehicleStore) List(p query.Predicate, pages pagination.Pages) ([]models.Vehicle, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.Vehicle{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var vehicles []models.Vehicle
	err := applyPredicate(s.db.Model(&models.Vehicle{}), p).
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&vehicles).Error
	if err != nil {
		return nil, 0, err
	}

	return vehicles, total, nil
}

// FindByID returns (nil, nil) when no row exists; absence is not an error
// at this layer.
func (s *VehicleStore) FindByID(id uint) (*models.Vehicle, error) {
	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &vehicle, nil
}

func (s *VehicleStore) Create(vehicle *models.Vehicle) error {
	return s.db.Create(vehicle).Error
}

// Update patches the row and returns the fresh state.
func (s *VehicleStore) Update(id uint, patch map[string]any) (*models.Vehicle, error) {
	if err := s.db.Model(&models.Vehicle{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}

	var vehicle models.Vehicle
	if err := s.db.First(&vehicle, id).Error; err != nil {
		return nil, err
	}
	return &vehicle, nil
}
