package entity

import "time"

// CartSnapshot is a key-value row persisting a serialized cart across
// sessions. Written optimistically on every cart mutation with
// last-writer-wins semantics.
type CartSnapshot struct {
	Key       string    `gorm:"primaryKey;size:255"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for CartSnapshot
func (CartSnapshot) TableName() string {
	return "cart_snapshots"
}
