package services

import (
	"fleet_office/internal/apperror"
	"fleet_office/internal/models"
)

// RefDataStore covers the reference tables: units of measure, account
// types and the two category heads.
type RefDataStore interface {
	CreateUom(uom *models.Uom) error
	ListUoms() ([]models.Uom, error)
	CreateAccountType(at *models.AccountType) error
	ListAccountTypes() ([]models.AccountType, error)
	CreateAccountHead(head *models.AccountHead) error
	ListAccountHeads() ([]models.AccountHead, error)
	CreateExpenseHead(head *models.ExpenseHead) error
	ListExpenseHeads() ([]models.ExpenseHead, error)
}

type RefDataService struct {
	store RefDataStore
}

func NewRefDataService(store RefDataStore) *RefDataService {
	return &RefDataService{store: store}
}

func (s *RefDataService) CreateUom(uom *models.Uom) error {
	if err := s.store.CreateUom(uom); err != nil {
		return apperror.BadRequest("Failed to create unit of measure")
	}
	return nil
}

func (s *RefDataService) GetAllUoms() ([]models.Uom, error) {
	return s.store.ListUoms()
}

func (s *RefDataService) CreateAccountType(at *models.AccountType) error {
	if err := s.store.CreateAccountType(at); err != nil {
		return apperror.BadRequest("Failed to create account type")
	}
	return nil
}

func (s *RefDataService) GetAllAccountTypes() ([]models.AccountType, error) {
	return s.store.ListAccountTypes()
}

func (s *RefDataService) CreateAccountHead(head *models.AccountHead) error {
	if err := s.store.CreateAccountHead(head); err != nil {
		return apperror.BadRequest("Failed to create account head")
	}
	return nil
}

func (s *RefDataService) GetAllAccountHeads() ([]models.AccountHead, error) {
	return s.store.ListAccountHeads()
}

func (s *RefDataService) CreateExpenseHead(head *models.ExpenseHead) error {
	if err := s.store.CreateExpenseHead(head); err != nil {
		return apperror.BadRequest("Failed to create expense head")
	}
	return nil
}

func (s *RefDataService) GetAllExpenseHeads() ([]models.ExpenseHead, error) {
	return s.store.ListExpenseHeads()
}
