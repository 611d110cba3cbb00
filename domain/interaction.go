package domain

import (
	"time"
)

const (
	InteractionView     = "view"
	InteractionCartAdd  = "cart_add"
	InteractionLike     = "like"
	InteractionPurchase = "purchase"
)

// Interaction is one recorded user action against a product. The log is
// append-only: repeat views accumulate as separate rows, there is no
// uniqueness constraint.
type Interaction struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          uint      `gorm:"column:user_id;not null;index" json:"user_id"`
	ProductID       uint64    `gorm:"column:product_id;not null;index" json:"product_id"`
	InteractionType string    `gorm:"column:interaction_type;not null" json:"interaction_type"`
	Rating          int       `gorm:"column:rating;default:0" json:"rating,omitempty"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (Interaction) TableName() string {
	return "interactions"
}

func ValidInteractionType(t string) bool {
	switch t {
	case InteractionView, InteractionCartAdd, InteractionLike, InteractionPurchase:
		return true
	}
	return false
}
