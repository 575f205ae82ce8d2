package models

import (
	"time"

	"github.com/google/uuid"
)

type Cart struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CartItem struct {
	ID            uuid.UUID `json:"id"`
	CartID        uuid.UUID `json:"cart_id"`
	ServiceID     uuid.UUID `json:"service_id"`
	Price         float64   `json:"price"`
	Quantity      int       `json:"quantity"`
	ScheduledDate *string   `json:"scheduled_date,omitempty"`
	ScheduledTime *string   `json:"scheduled_time,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// CartItemService is the slice of a service row a cart item carries
// through checkout and cart listings.
type CartItemService struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	VendorID      uuid.UUID `json:"vendor_id"`
	Duration      int       `json:"duration"`
	StartingPrice float64   `json:"starting_price"`
}

// CartItemWithService joins a cart item to its referenced service.
// Service is nil when the service row no longer exists.
type CartItemWithService struct {
	CartItem
	Service *CartItemService `json:"service,omitempty"`
}
