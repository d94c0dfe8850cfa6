package models

// Recipe belongs to at most one Tag. Ingredients and Instructions hold
// Markdown.
type Recipe struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	Name         string  `gorm:"size:255;not null;index" json:"name"`
	Servings     *int    `gorm:"index" json:"servings"`
	Calories     *int    `gorm:"index" json:"calories"`
	Protein      *int    `gorm:"index" json:"protein"`
	Ingredients  *string `gorm:"type:text" json:"ingredients"`
	Instructions *string `gorm:"type:text" json:"instructions"`
	TagID        *uint   `gorm:"index" json:"tag_id"`
	Tag          *Tag    `gorm:"foreignKey:TagID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"tag,omitempty"`
}
