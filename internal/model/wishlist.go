package model

import "time"

// Wishlist holds the ordered set of houses favorited by one customer.
// The unique index on CustomerID enforces one wishlist per account; lazy
// creation relies on it instead of a check-then-insert.
type Wishlist struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CustomerID uint      `json:"customer_id" gorm:"uniqueIndex;not null"`
	HouseIDs   []uint    `json:"house_ids" gorm:"serializer:json"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Contains reports membership of a house in the wishlist.
func (w *Wishlist) Contains(houseID uint) bool {
	for _, id := range w.HouseIDs {
		if id == houseID {
			return true
		}
	}
	return false
}
