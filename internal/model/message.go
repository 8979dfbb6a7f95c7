package model

import "time"

// Message is a contact form submission.
type Message struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null" validate:"required,min=2,max=100"`
	Email     string    `json:"email" gorm:"size:255;not null" validate:"required,email,max=255"`
	Subject   string    `json:"subject" gorm:"size:200;not null" validate:"required,min=5,max=200"`
	Content   string    `json:"content" gorm:"type:text;not null" validate:"required,min=10,max=2000"`
	CreatedAt time.Time `json:"createdAt" gorm:"index"`
}
