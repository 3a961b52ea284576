// internal/models/brand.go
package models

import (
	"gorm.io/gorm"
)

type Brand struct {
	gorm.Model
	Label string `json:"label" gorm:"unique;not null"`
}

// EmailNotification is a stored notification record sent to the back office.
type EmailNotification struct {
	gorm.Model
	Name    string `json:"name"`
	Email   string `json:"email"`
	Details string `json:"details"`
}
