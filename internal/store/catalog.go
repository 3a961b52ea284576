package store

import (
	"errors"

	"gorm.io/gorm"

	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

// BrandStore and EmailStore cover the two small CRUD entities; the
// reference tables (uom, account type/head, expense head) live in
// RefDataStore below.

type BrandStore struct {
	db *gorm.DB
}

func NewBrandStore(db *gorm.DB) *BrandStore {
	return &BrandStore{db: db}
}

func (s *BrandStore) List(p query.Predicate, pages pagination.Pages) ([]models.Brand, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.Brand{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var brands []models.Brand
	err := applyPredicate(s.db.Model(&models.Brand{}), p).
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&brands).Error
	if err != nil {
		return nil, 0, err
	}

	return brands, total, nil
}

func (s *BrandStore) FindByID(id uint) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &brand, nil
}

func (s *BrandStore) Create(brand *models.Brand) error {
	return s.db.Create(brand).Error
}

func (s *BrandStore) Update(id uint, patch map[string]any) (*models.Brand, error) {
	if err := s.db.Model(&models.Brand{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}

	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		return nil, err
	}
	return &brand, nil
}

type EmailStore struct {
	db *gorm.DB
}

func NewEmailStore(db *gorm.DB) *EmailStore {
	return &EmailStore{db: db}
}

func (s *EmailStore) List(p query.Predicate, pages pagination.Pages) ([]models.EmailNotification, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.EmailNotification{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var emails []models.EmailNotification
	err := applyPredicate(s.db.Model(&models.EmailNotification{}), p).
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&emails).Error
	if err != nil {
		return nil, 0, err
	}

	return emails, total, nil
}

func (s *EmailStore) FindByID(id uint) (*models.EmailNotification, error) {
	var email models.EmailNotification
	if err := s.db.First(&email, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &email, nil
}

func (s *EmailStore) Create(email *models.EmailNotification) error {
	return s.db.Create(email).Error
}

// RefDataStore handles the reference tables the financial records hang off.
type RefDataStore struct {
	db *gorm.DB
}

func NewRefDataStore(db *gorm.DB) *RefDataStore {
	return &RefDataStore{db: db}
}

func (s *RefDataStore) CreateUom(uom *models.Uom) error {
	return s.db.Create(uom).Error
}

func (s *RefDataStore) ListUoms() ([]models.Uom, error) {
	var uoms []models.Uom
	err := s.db.Order("label ASC").Find(&uoms).Error
	return uoms, err
}

func (s *RefDataStore) CreateAccountType(at *models.AccountType) error {
	return s.db.Create(at).Error
}

func (s *RefDataStore) ListAccountTypes() ([]models.AccountType, error) {
	var types []models.AccountType
	err := s.db.Order("label ASC").Find(&types).Error
	return types, err
}

func (s *RefDataStore) CreateAccountHead(head *models.AccountHead) error {
	return s.db.Create(head).Error
}

func (s *RefDataStore) ListAccountHeads() ([]models.AccountHead, error) {
	var heads []models.AccountHead
	err := s.db.Preload("AccountType").Order("label ASC").Find(&heads).Error
	return heads, err
}

func (s *RefDataStore) CreateExpenseHead(head *models.ExpenseHead) error {
	return s.db.Create(head).Error
}

func (s *RefDataStore) ListExpenseHeads() ([]models.ExpenseHead, error) {
	var heads []models.ExpenseHead
	err := s.db.Order("label ASC").Find(&heads).Error
	return heads, err
}
