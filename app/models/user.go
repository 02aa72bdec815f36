package models

// DefaultRole is assigned to every user created through the data layer.
const DefaultRole = "user"

// User is an application login. PasswordHash is produced by the caller.
type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"          json:"id"`
	Username     string `gorm:"size:255;not null;uniqueIndex"     json:"username"`
	PasswordHash string `gorm:"size:255;not null"                 json:"-"` // never serialised
	Role         string `gorm:"size:50;not null;default:user"     json:"role"`
}

func (User) TableName() string { return "users" }
