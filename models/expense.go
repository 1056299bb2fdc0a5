package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is an outgoing cost recorded against a shop.
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	ShopID      uint            `gorm:"index;not null" json:"shop_id"`
	Amount      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	ExpenseDate time.Time       `gorm:"index;not null" json:"expense_date"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
