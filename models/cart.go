package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem references exactly one of a product or a pet, never both.
// PriceCents is frozen when the item is added and is never re-derived from
// the catalog afterwards.
type CartItem struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID  *uuid.UUID `gorm:"type:uuid" json:"product_id,omitempty"`
	PetID      *uuid.UUID `gorm:"type:uuid" json:"pet_id,omitempty"`
	Quantity   int        `gorm:"not null" json:"quantity"`
	PriceCents int64      `gorm:"not null" json:"price_cents"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
