package models

import (
	"time"

	"gorm.io/gorm"

	"grocerypro-backend/utils"
)

// Role values stored on a user. The frontend compares roles
// case-insensitively, so lookups must do the same.
const (
	RoleAdmin = "admin"
	RoleShop  = "shop"
	RoleUser  = "user"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	LastName string `gorm:"size:100" json:"last_name"`
	Email    string `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Password string `gorm:"size:255;not null" json:"-"`
	Role     string `gorm:"size:20" json:"role"` // 'admin', 'shop' or 'user'
	Phone    string `gorm:"size:30" json:"phone"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ManagedShops []ShopManager `gorm:"foreignKey:UserID" json:"-"`
}

// Hash the password before the row is first written. Updates rehash in the
// controller instead, and only when a new password is supplied.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}

// FullName is how income transactions reference a paying customer:
// a plain "first last" string, not a foreign key.
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.Name
	}
	return u.Name + " " + u.LastName
}
