package models

type Cuisine struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:255;not null;index" json:"name"`
}
