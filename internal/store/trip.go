package store

import (
	"errors"

	"gorm.io/gorm"

	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

type TripStore struct {
	db *gorm.DB
}

func NewTripStore(db *gorm.DB) *TripStore {
	return &TripStore{db: db}
}

func (s *TripStore) List(p query.Predicate, pages pagination.Pages) ([]models.Trip, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.Trip{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var trips []models.Trip
	err := applyPredicate(s.db.Model(&models.Trip{}), p).
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&trips).Error
	if err != nil {
		return nil, 0, err
	}

	return trips, total, nil
}

func (s *TripStore) FindByID(id uint) (*models.Trip, error) {
	var trip models.Trip
	if err := s.db.First(&trip, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &trip, nil
}

func (s *TripStore) Create(trip *models.Trip) error {
	return s.db.Create(trip).Error
}

func (s *TripStore) Update(id uint, patch map[string]any) (*models.Trip, error) {
	if err := s.db.Model(&models.Trip{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}

	var trip models.Trip
	if err := s.db.First(&trip, id).Error; err != nil {
		return nil, err
	}
	return &trip, nil
}

// Delete removes the row for real. Unscoped bypasses the soft-delete
// scope gorm.Model would otherwise apply.
func (s *TripStore) Delete(id uint) error {
	return s.db.Unscoped().Delete(&models.Trip{}, id).Error
}
