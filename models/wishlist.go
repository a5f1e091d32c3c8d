package models

import (
	"time"

	"github.com/google/uuid"
)

type WishlistItem struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID *uuid.UUID `gorm:"type:uuid" json:"product_id,omitempty"`
	PetID     *uuid.UUID `gorm:"type:uuid" json:"pet_id,omitempty"`
	AddedAt   time.Time  `gorm:"autoCreateTime" json:"added_at"`
}
