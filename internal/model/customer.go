package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Customer represents a registered account, admin or regular.
// Accounts are never deleted; disabling is in-place via Enabled.
type Customer struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	FirstName     string    `json:"first_name" gorm:"size:255"`
	LastName      string    `json:"last_name" gorm:"size:255"`
	Login         string    `json:"login" gorm:"uniqueIndex;size:255;not null"`
	Email         string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash  string    `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Enabled       bool      `json:"enabled" gorm:"default:true"`
	IsAdmin       bool      `json:"is_admin" gorm:"default:false"`
	AccountNumber string    `json:"account_number" gorm:"size:32"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// AfterCreate derives the sequential account number from the assigned ID.
func (c *Customer) AfterCreate(tx *gorm.DB) error {
	c.AccountNumber = fmt.Sprintf("ACC-%08d", c.ID)
	return tx.Model(c).UpdateColumn("account_number", c.AccountNumber).Error
}

// FullName joins the name fields for token claims.
func (c *Customer) FullName() string {
	if c.FirstName == "" {
		return c.LastName
	}
	if c.LastName == "" {
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}
