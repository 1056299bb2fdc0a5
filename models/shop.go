package models

import (
	"time"
)

type Shop struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	ShopName    string `gorm:"size:150;not null" json:"shop_name"`
	Description string `gorm:"size:500" json:"description"`
	Address     string `gorm:"size:255" json:"address"`
	Phone       string `gorm:"size:30" json:"phone"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Managers           []ShopManager       `gorm:"foreignKey:ShopID" json:"managers,omitempty"`
	Expenses           []Expense           `gorm:"foreignKey:ShopID" json:"-"`
	IncomeTransactions []IncomeTransaction `gorm:"foreignKey:ShopID" json:"-"`
}

// ShopManager links a user to a shop they manage. A join table replaces the
// integer-array column the old schema used: the composite unique index rules
// out duplicate assignments and the read-modify-write races that came with
// mutating an array in place.
type ShopManager struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ShopID    uint      `gorm:"index;uniqueIndex:idx_shop_user;not null" json:"shop_id"`
	UserID    uint      `gorm:"index;uniqueIndex:idx_shop_user;not null" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
