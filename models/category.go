package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID            uuid.UUID     `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description,omitempty"`
	Icon          string        `json:"icon,omitempty"`
	ImageURL      string        `json:"image_url,omitempty"`
	Slug          string        `json:"slug"`
	DisplayOrder  int           `json:"display_order"`
	IsActive      bool          `json:"is_active"`
	ServiceCount  int           `json:"service_count"`
	Subcategories []Subcategory `json:"subcategories,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
}

type Subcategory struct {
	ID           uuid.UUID `json:"id"`
	CategoryID   uuid.UUID `json:"category_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Icon         string    `json:"icon,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Slug         string    `json:"slug"`
	DisplayOrder int       `json:"display_order"`
	IsActive     bool      `json:"is_active"`
	ServiceCount int       `json:"service_count"`
}
