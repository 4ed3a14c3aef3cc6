package models

import "time"

// Customer feeds the billing screen's autocomplete. Bills keep their own copy
// of name/phone, so editing a customer never rewrites history.
type Customer struct {
	Id        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;index"`
	Phone     string    `json:"phone" gorm:"index"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
