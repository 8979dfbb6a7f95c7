package model

// Project status values.
const (
	ProjectStatusInProgress = "En cours"
	ProjectStatusDone       = "Terminé"
	ProjectStatusPaused     = "En pause"
)

// Project is a portfolio project.
type Project struct {
	ID                  uint     `json:"id" gorm:"primaryKey"`
	Title               string   `json:"title" gorm:"size:255;not null" validate:"required"`
	Description         string   `json:"description" gorm:"type:text;not null" validate:"required"`
	Category            string   `json:"category" gorm:"size:50;not null;index" validate:"required,projectcategory"`
	Technologies        []string `json:"technologies" gorm:"serializer:json;type:text" validate:"dive,required"`
	Status              string   `json:"status" gorm:"size:20;not null" validate:"required,oneof='En cours' 'Terminé' 'En pause'"`
	Image               string   `json:"image,omitempty" gorm:"size:255"`
	Link                string   `json:"link,omitempty" gorm:"size:255" validate:"omitempty,url"`
	StartDate           string   `json:"startDate" gorm:"size:7;not null;index" validate:"required,yearmonth"`
	EndDate             string   `json:"endDate,omitempty" gorm:"size:7" validate:"omitempty,yearmonth"`
	Highlights          []string `json:"highlights" gorm:"serializer:json;type:text"`
	DetailedDescription string   `json:"detailedDescription,omitempty" gorm:"type:text"`
}

// ProjectCategory is a filter tab on the projects page. The list is static.
type ProjectCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
