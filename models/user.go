package models

import (
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Roles a user can hold. Admin manages the catalog; cashiers write bills;
// viewers only read.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
	RoleViewer  = "viewer"
)

type User struct {
	Id       string `json:"id" gorm:"primaryKey"`
	Username string `json:"username" gorm:"unique;not null"`
	Password []byte `json:"-" gorm:"not null"`
	Role     string `json:"role" gorm:"size:20;not null;default:cashier"`
}

func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	// UUID version 4
	user.Id = uuid.NewString()
	return
}

func (user *User) SetPassword(password string) {
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte(password), 12)
	user.Password = hashedPassword
}

func (user *User) ComparePassword(password string) error {
	return bcrypt.CompareHashAndPassword(user.Password, []byte(password))
}
