package models

import (
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	ID                  uuid.UUID `json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	ServiceID           uuid.UUID `json:"service_id"`
	VendorID            uuid.UUID `json:"vendor_id"`
	ScheduledDate       string    `json:"scheduled_date"`
	ScheduledTime       string    `json:"scheduled_time"`
	Duration            int       `json:"duration"`
	Price               float64   `json:"price"`
	Address             string    `json:"address"`
	City                string    `json:"city"`
	State               string    `json:"state"`
	ZipCode             string    `json:"zip_code"`
	SpecialInstructions string    `json:"special_instructions,omitempty"`
	Status              string    `json:"status"`
	CreatedAt           time.Time `json:"created_at"`
}
