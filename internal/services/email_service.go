package services

import (
	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

type EmailStore interface {
	List(p query.Predicate, pages pagination.Pages) ([]models.EmailNotification, int64, error)
	FindByID(id uint) (*models.EmailNotification, error)
	Create(email *models.EmailNotification) error
}

var emailFilterSpec = query.Spec{
	Searchable: []string{"name", "email"},
}

type EmailService struct {
	store EmailStore
}

func NewEmailService(store EmailStore) *EmailService {
	return &EmailService{store: store}
}

func (s *EmailService) Create(email *models.EmailNotification) error {
	if err := s.store.Create(email); err != nil {
		return apperror.BadRequest("Failed to create email notification")
	}
	return nil
}

func (s *EmailService) GetAll(filters map[string]string, opts pagination.Options) ([]models.EmailNotification, pagination.Pages, int64, error) {
	pages := pagination.Calculate(opts)
	predicate := query.Build(filters, emailFilterSpec)

	emails, total, err := s.store.List(predicate, pages)
	if err != nil {
		return nil, pages, 0, err
	}
	return emails, pages, total, nil
}

// GetSingle passes absence through as nil.
func (s *EmailService) GetSingle(id uint) (*models.EmailNotification, error) {
	return s.store.FindByID(id)
}
