package models

import "time"

// Supplier is a leaf entity; ingredients point at it by id without ownership.
type Supplier struct {
	ID          string    `gorm:"primaryKey;size:32" json:"id"`
	Name        string    `gorm:"size:150;not null" json:"name"`
	ContactName string    `gorm:"size:150" json:"contact_name"`
	Phone       string    `gorm:"size:30;not null" json:"phone"`
	Email       string    `gorm:"size:150" json:"email"`
	Address     string    `gorm:"type:text" json:"address"`
	Notes       string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (s Supplier) EntityID() string { return s.ID }
