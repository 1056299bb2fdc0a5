package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// IncomeTransaction is a customer payment recorded against a shop.
// CustomerName is free text; matching it to a user account is a display-time
// concern and deliberately not modeled as a foreign key.
type IncomeTransaction struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	ShopID          uint            `gorm:"index;not null" json:"shop_id"`
	CustomerName    string          `gorm:"size:200;not null" json:"customer_name"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	TransactionDate time.Time       `gorm:"index;not null" json:"transaction_date"`

	Deleted   bool      `gorm:"not null;default:false" json:"deleted"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
