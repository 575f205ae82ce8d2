package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"homepro/models"

	"github.com/google/uuid"
)

var (
	ErrAddressRequired = errors.New("address information is required")
	ErrCartNotFound    = errors.New("cart not found")
	ErrEmptyCart       = errors.New("your cart is empty")
)

// CartReader is the slice of cart persistence checkout needs.
type CartReader interface {
	CartIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error)
	ItemsWithService(ctx context.Context, cartID uuid.UUID) ([]models.CartItemWithService, error)
	ClearItems(ctx context.Context, cartID uuid.UUID) error
}

type BookingWriter interface {
	Insert(ctx context.Context, b *models.Booking) error
}

type NotificationWriter interface {
	Insert(ctx context.Context, n *models.Notification) error
}

// CheckoutService converts a user's cart items into bookings.
//
// Each item is attempted independently: a failed item is recorded in
// the errors list and never aborts the rest. The cart is cleared, and a
// single confirmation notification written, only when at least one
// booking landed. Clearing and notifying are best-effort; their
// failures are logged and do not change the reported outcome.
type CheckoutService struct {
	carts         CartReader
	bookings      BookingWriter
	notifications NotificationWriter
}

func NewCheckoutService(carts CartReader, bookings BookingWriter, notifications NotificationWriter) *CheckoutService {
	return &CheckoutService{
		carts:         carts,
		bookings:      bookings,
		notifications: notifications,
	}
}

func (s *CheckoutService) Checkout(ctx context.Context, userID uuid.UUID, req models.CheckoutRequest) (*models.CheckoutResult, error) {
	if strings.TrimSpace(req.Address) == "" ||
		strings.TrimSpace(req.City) == "" ||
		strings.TrimSpace(req.State) == "" ||
		strings.TrimSpace(req.ZipCode) == "" {
		return nil, ErrAddressRequired
	}

	cartID, err := s.carts.CartIDByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("fetching cart: %w", err)
	}

	items, err := s.carts.ItemsWithService(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("fetching cart items: %w", err)
	}

	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	bookings := []models.Booking{}
	bookingErrors := []string{}

	for _, item := range items {
		if item.Service == nil {
			bookingErrors = append(bookingErrors,
				fmt.Sprintf("Service not found for cart item %s", item.ID))
			continue
		}

		booking := models.Booking{
			UserID:              userID,
			ServiceID:           item.ServiceID,
			VendorID:            item.Service.VendorID,
			ScheduledDate:       scheduledDateOrToday(item.ScheduledDate),
			ScheduledTime:       scheduledTimeOrDefault(item.ScheduledTime),
			Duration:            durationOrDefault(item.Service.Duration),
			Price:               priceOrStartingPrice(item.Price, item.Service.StartingPrice),
			Address:             req.Address,
			City:                req.City,
			State:               req.State,
			ZipCode:             req.ZipCode,
			SpecialInstructions: req.SpecialInstructions,
			Status:              "pending",
		}

		if err := s.bookings.Insert(ctx, &booking); err != nil {
			bookingErrors = append(bookingErrors,
				fmt.Sprintf("Failed to create booking for %s: %s", item.Service.Name, err))
			continue
		}

		bookings = append(bookings, booking)
	}

	if len(bookings) > 0 {
		// Full clear on any success, including items that failed to
		// convert. Matches the storefront this replaced; see DESIGN.md.
		if err := s.carts.ClearItems(ctx, cartID); err != nil {
			log.Printf("Error clearing cart %s after checkout: %v", cartID, err)
		}

		firstBookingID := bookings[0].ID
		notification := models.Notification{
			UserID:    userID,
			Title:     "Booking Confirmation",
			Message:   confirmationMessage(len(bookings)),
			Type:      "booking_confirmation",
			RelatedID: &firstBookingID,
			IsRead:    false,
		}
		if err := s.notifications.Insert(ctx, &notification); err != nil {
			log.Printf("Error creating checkout notification for user %s: %v", userID, err)
		}
	}

	return &models.CheckoutResult{
		Success:  len(bookings) > 0,
		Bookings: bookings,
		Errors:   bookingErrors,
	}, nil
}

func scheduledDateOrToday(date *string) string {
	if date != nil && *date != "" {
		return *date
	}
	return time.Now().Format("2006-01-02")
}

func scheduledTimeOrDefault(t *string) string {
	if t != nil && *t != "" {
		return *t
	}
	return "09:00:00"
}

func durationOrDefault(duration int) int {
	if duration > 0 {
		return duration
	}
	return 60
}

func priceOrStartingPrice(price, startingPrice float64) float64 {
	if price > 0 {
		return price
	}
	return startingPrice
}

func confirmationMessage(count int) string {
	if count > 1 {
		return "Your bookings have been confirmed. Check your dashboard for details."
	}
	return "Your booking has been confirmed. Check your dashboard for details."
}
