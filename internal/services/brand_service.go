package services

import (
	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

type BrandStore interface {
	List(p query.Predicate, pages pagination.Pages) ([]models.Brand, int64, error)
	FindByID(id uint) (*models.Brand, error)
	Create(brand *models.Brand) error
	Update(id uint, patch map[string]any) (*models.Brand, error)
}

var brandFilterSpec = query.Spec{
	Searchable: []string{"label"},
}

type BrandService struct {
	store BrandStore
}

func NewBrandService(store BrandStore) *BrandService {
	return &BrandService{store: store}
}

func (s *BrandService) Create(brand *models.Brand) error {
	if err := s.store.Create(brand); err != nil {
		return apperror.BadRequest("Failed to create brand")
	}
	return nil
}

func (s *BrandService) GetAll(filters map[string]string, opts pagination.Options) ([]models.Brand, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)
	predicate := query.Build(filters, brandFilterSpec)

	brands, total, err := s.store.List(predicate, pages)
	if err != nil {
		return nil, pages, 0, err
	}
	return brands, pages, total, nil
}

// GetSingle passes absence through as nil.
func (s *BrandService) GetSingle(id uint) (*models.Brand, error) {
	return s.store.FindByID(id)
}

func (s *BrandService) UpdateSingle(id uint, patch map[string]any) (*models.Brand, error) {
	existing, err := s.store.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NotFound("Brand not found")
	}

	return s.store.Update(id, patch)
}
