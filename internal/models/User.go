package models

import "gorm.io/gorm"

// Back-office roles.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleDriver     = "driver"
	RoleHelper     = "helper"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `json:"email" gorm:"unique"`
	Password string `json:"-"`
	Phone    string `json:"phone"`
	Role     string `json:"role"` // "super_admin", "admin", "driver", "helper"
}
