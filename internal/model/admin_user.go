package model

import "time"

// AdminUser is the single operator allowed to mutate content.
type AdminUser struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Name         string    `json:"name" gorm:"size:255;not null"`
	CreatedAt    time.Time `json:"-"`
}
