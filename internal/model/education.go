package model

import "time"

// Education status and type values.
const (
	EducationStatusInProgress = "En cours"
	EducationStatusValidated  = "Validé"

	EducationTypeCurrent   = "current"
	EducationTypeCompleted = "completed"
)

// Education is one period of study, possibly spanning several institutions.
type Education struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Period       string    `json:"period" gorm:"size:50;not null" validate:"required"`
	Title        string    `json:"title" gorm:"size:255;not null" validate:"required"`
	Institutions []string  `json:"institutions" gorm:"serializer:json;type:text" validate:"required,min=1,dive,required"`
	Location     string    `json:"location" gorm:"size:255;not null" validate:"required"`
	Status       string    `json:"status" gorm:"size:20;not null" validate:"required,oneof='En cours' 'Validé'"`
	Type         string    `json:"type" gorm:"size:20;not null" validate:"required,oneof=current completed"`
	Description  string    `json:"description" gorm:"type:text"`
	Highlights   []string  `json:"highlights" gorm:"serializer:json;type:text"`
	CreatedAt    time.Time `json:"createdAt" gorm:"index"`
}
