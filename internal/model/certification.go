package model

// Certification is a diploma or certificate.
type Certification struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null" validate:"required"`
	Description string `json:"description" gorm:"type:text;not null" validate:"required"`
	Type        string `json:"type" gorm:"size:255;not null" validate:"required"`
	Institution string `json:"institution" gorm:"size:255;not null" validate:"required"`
	Year        int    `json:"year" gorm:"not null;index" validate:"required,yearrange"`
	Location    string `json:"location" gorm:"size:255;not null" validate:"required"`
	Image       string `json:"image,omitempty" gorm:"size:255"`
	Icon        string `json:"icon" gorm:"size:100"`
	Color       string `json:"color" gorm:"size:100;not null" validate:"required"`
	Verified    bool   `json:"verified" gorm:"default:false"`
}
