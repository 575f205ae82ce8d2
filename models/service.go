package models

import (
	"time"

	"github.com/google/uuid"
)

type Service struct {
	ID            uuid.UUID `json:"id"`
	SubcategoryID uuid.UUID `json:"subcategory_id"`
	VendorID      uuid.UUID `json:"vendor_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description,omitempty"`
	ImageURL      string    `json:"image_url,omitempty"`
	Duration      int       `json:"duration"`
	StartingPrice float64   `json:"starting_price"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
