package store

import (
	"errors"

	"gorm.io/gorm"

	"fleet_office/internal/models"
	"fleet_office/internal/pagination"
	"fleet_office/internal/query"
)

type EquipmentStore struct {
	db *gorm.DB
}

func NewEquipmentStore(db *gorm.DB) *EquipmentStore {
	return &EquipmentStore{db: db}
}

func (s *EquipmentStore) List(p query.Predicate, pages pagination.Pages) ([]models.Equipment, int64, error) {
	var total int64
	if err := applyPredicate(s.db.Model(&models.Equipment{}), p).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var equipment []models.Equipment
	err := applyPredicate(s.db.Model(&models.Equipment{}), p).
		Preload("Uom").
		Order(orderClause(pages)).
		Offset(pages.Skip).
		Limit(pages.Limit).
		Find(&equipment).Error
	if err != nil {
		return nil, 0, err
	}

	return equipment, total, nil
}

func (s *EquipmentStore) FindByID(id uint) (*models.Equipment, error) {
	var equipment models.Equipment
	if err := s.db.Preload("Uom").First(&equipment, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &equipment, nil
}

func (s *EquipmentStore) Create(equipment *models.Equipment) error {
	return s.db.Create(equipment).Error
}

func (s *EquipmentStore) Update(id uint, patch map[string]any) (*models.Equipment, error) {
	if err := s.db.Model(&models.Equipment{}).Where("id = ?", id).Updates(patch).Error; err != nil {
		return nil, err
	}

	var equipment models.Equipment
	if err := s.db.Preload("Uom").First(&equipment, id).Error; err != nil {
		return nil, err
	}
	return &equipment, nil
}
