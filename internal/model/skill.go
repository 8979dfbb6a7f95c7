package model

// SkillCategory groups skills on the public page.
type SkillCategory struct {
	ID      uint    `json:"id" gorm:"primaryKey"`
	Title   string  `json:"title" gorm:"size:255;not null" validate:"required"`
	Icon    string  `json:"icon" gorm:"size:100"`
	Color   string  `json:"color" gorm:"size:100;not null" validate:"required"`
	BgColor string  `json:"bgColor" gorm:"size:100;not null" validate:"required"`
	Skills  []Skill `json:"skills" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE" validate:"-"`
}

// Skill is a single competence with a level in percent.
type Skill struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	CategoryID  uint   `json:"categoryId" gorm:"not null;index" validate:"required,min=1"`
	Name        string `json:"name" gorm:"size:255;not null" validate:"required"`
	Level       *int   `json:"level" gorm:"not null" validate:"required,min=0,max=100"`
	Description string `json:"description" gorm:"type:text"`
}
