package models

// Review is a restaurant visit (or a place still to visit) tagged with at
// most one Cuisine.
type Review struct {
	ID        uint     `gorm:"primaryKey" json:"id"`
	Name      string   `gorm:"size:255;not null;index" json:"name"`
	Address   *string  `gorm:"size:255;index" json:"address"`
	Visited   bool     `gorm:"not null;default:false;index" json:"visited"`
	Rating    *int     `gorm:"index" json:"rating"`
	Notes     *string  `gorm:"type:text" json:"notes"`
	CuisineID *uint    `gorm:"index" json:"cuisine_id"`
	Cuisine   *Cuisine `gorm:"foreignKey:CuisineID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"cuisine,omitempty"`
}
