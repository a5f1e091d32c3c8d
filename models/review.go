package models

import (
	"time"

	"github.com/google/uuid"
)

// Review references exactly one of a product or a pet. A user may review a
// given item at most once.
type Review struct {
	ID        uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID    uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	ProductID *uuid.UUID `gorm:"type:uuid;index" json:"product_id,omitempty"`
	PetID     *uuid.UUID `gorm:"type:uuid;index" json:"pet_id,omitempty"`
	Rating    int        `gorm:"not null" json:"rating"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `gorm:"autoCreateTime" json:"created_at"`
}
