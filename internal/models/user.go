package models

// User is an account allowed to modify the catalog. Password holds the
// bcrypt hash and is never serialized.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"size:150;not null;uniqueIndex" json:"username"`
	Password string `gorm:"not null" json:"-"`
}
