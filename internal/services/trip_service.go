package services

import (
	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

type TripStore interface {
	List(p query.Predicate, pages pagination.Pages) ([]models.Trip, int64, error)
	FindByID(id uint) (*models.Trip, error)
	Create(trip *models.Trip) error
	Update(id uint, patch map[string]any) (*models.Trip, error)
	Delete(id uint) error
}

var tripFilterSpec = query.Spec{
	Fields: []query.Field{
		{Name: "vehicle_id"},
		{Name: "account_head_id"},
		{Name: "status"},
	},
	Searchable: []string{"from", "to"},
}

type TripService struct {
	store TripStore
}

func NewTripService(store TripStore) *TripService {
	return &TripService{store: store}
}

func (s *TripService) Create(trip *models.Trip) error {
	if err := s.store.Create(trip); err != nil {
		return apperror.BadRequest("Failed to create trip")
	}
	return nil
}

func (s *TripService) GetAll(filters map[string]string, opts pagination.Options) ([]models.Trip, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)
	predicate := query.Build(filters, tripFilterSpec)

	trips, total, err := s.store.List(predicate, pages)
	if err != nil {
		return nil, pages, 0, err
	}
	return trips, pages, total, nil
}

// GetSingle passes absence through as nil.
func (s *TripService) GetSingle(id uint) (*models.Trip, error) {
	return s.store.FindByID(id)
}

func (s *TripService) UpdateSingle(id uint, patch map[string]any) (*models.Trip, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Trip not found")
	}

	return s.store.Update(id, patch)
}

// DeleteSingle removes the trip row. Trips are the one entity the source
// system deletes for real rather than soft-deactivating.
func (s *TripService) DeleteSingle(id uint) (*models.Trip, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Trip not found")
	}

	if err := s.store.Delete(id); err != nil {
		return nil, err
	}
	return existing, nil
}
