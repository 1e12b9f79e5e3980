package model

import "time"

// Entry carries the columns shared by every orderable content type.
// The `order` wire field lives in sort_order because ORDER is reserved in SQL.
type Entry struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	IsActive  bool      `json:"isActive" gorm:"not null;index"`
	Order     int       `json:"order" gorm:"column:sort_order;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

// ItemID returns the primary key.
func (e Entry) ItemID() uint {
	return e.ID
}

// Position returns the stored display order.
func (e Entry) Position() int {
	return e.Order
}

// Visible reports whether the row is shown on the public site.
func (e Entry) Visible() bool {
	return e.IsActive
}
