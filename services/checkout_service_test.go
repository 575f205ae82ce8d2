package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"homepro/models"

	"github.com/google/uuid"
)

type fakeCartStore struct {
	cartID   uuid.UUID
	hasCart  bool
	items    []models.CartItemWithService
	clearErr error
	cleared  bool
	listErr  error
}

func (f *fakeCartStore) CartIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	if !f.hasCart {
		return uuid.Nil, models.ErrNotFound
	}
	return f.cartID, nil
}

func (f *fakeCartStore) ItemsWithService(ctx context.Context, cartID uuid.UUID) ([]models.CartItemWithService, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.items, nil
}

func (f *fakeCartStore) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.cleared = true
	f.items = nil
	return nil
}

type fakeBookingStore struct {
	inserted []models.Booking
	failFor  map[uuid.UUID]error // keyed by service id
}

func (f *fakeBookingStore) Insert(ctx context.Context, b *models.Booking) error {
	if err, ok := f.failFor[b.ServiceID]; ok {
		return err
	}
	b.ID = uuid.New()
	b.CreatedAt = time.Now()
	f.inserted = append(f.inserted, *b)
	return nil
}

type fakeNotificationStore struct {
	inserted []models.Notification
	err      error
}

func (f *fakeNotificationStore) Insert(ctx context.Context, n *models.Notification) error {
	if f.err != nil {
		return f.err
	}
	n.ID = uuid.New()
	f.inserted = append(f.inserted, *n)
	return nil
}

func validRequest() models.CheckoutRequest {
	return models.CheckoutRequest{
		Address: "123 Main St",
		City:    "Springfield",
		State:   "CA",
		ZipCode: "90210",
	}
}

func newItem(svc *models.CartItemService, price float64, date, timeOfDay *string) models.CartItemWithService {
	item := models.CartItemWithService{
		CartItem: models.CartItem{
			ID:            uuid.New(),
			CartID:        uuid.New(),
			Price:         price,
			Quantity:      1,
			ScheduledDate: date,
			ScheduledTime: timeOfDay,
		},
		Service: svc,
	}
	if svc != nil {
		item.ServiceID = svc.ID
	} else {
		item.ServiceID = uuid.New()
	}
	return item
}

func strPtr(s string) *string { return &s }

func fixture(items ...models.CartItemWithService) (*CheckoutService, *fakeCartStore, *fakeBookingStore, *fakeNotificationStore) {
	carts := &fakeCartStore{cartID: uuid.New(), hasCart: true, items: items}
	bookings := &fakeBookingStore{}
	notifications := &fakeNotificationStore{}
	return NewCheckoutService(carts, bookings, notifications), carts, bookings, notifications
}

func TestCheckoutAllItemsConvert(t *testing.T) {
	svc1 := &models.CartItemService{ID: uuid.New(), Name: "Deep Cleaning", VendorID: uuid.New(), Duration: 120, StartingPrice: 89}
	svc2 := &models.CartItemService{ID: uuid.New(), Name: "Pipe Repair", VendorID: uuid.New(), Duration: 90, StartingPrice: 120}

	checkout, carts, bookings, notifications := fixture(
		newItem(svc1, 95, strPtr("2026-09-12"), strPtr("10:30:00")),
		newItem(svc2, 130, strPtr("2026-09-13"), strPtr("14:00:00")),
	)

	result, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("expected success")
	}
	if len(result.Bookings) != 2 {
		t.Fatalf("expected 2 bookings, got %d", len(result.Bookings))
	}
	if len(result.Errors) != 0 {
		t.Errorf("expected no errors, got %v", result.Errors)
	}
	if !carts.cleared {
		t.Error("expected cart to be cleared")
	}
	if len(carts.items) != 0 {
		t.Errorf("expected empty cart, %d items remain", len(carts.items))
	}
	if len(bookings.inserted) != 2 {
		t.Errorf("expected 2 inserted bookings, got %d", len(bookings.inserted))
	}
	if len(notifications.inserted) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifications.inserted))
	}

	notification := notifications.inserted[0]
	if notification.Title != "Booking Confirmation" {
		t.Errorf("wrong notification title: %q", notification.Title)
	}
	if notification.Type != "booking_confirmation" {
		t.Errorf("wrong notification type: %q", notification.Type)
	}
	if notification.Message != "Your bookings have been confirmed. Check your dashboard for details." {
		t.Errorf("wrong plural message: %q", notification.Message)
	}
	if notification.RelatedID == nil || *notification.RelatedID != result.Bookings[0].ID {
		t.Error("notification should reference the first created booking")
	}
}

func TestCheckoutSingularNotificationMessage(t *testing.T) {
	svc := &models.CartItemService{ID: uuid.New(), Name: "Lawn Care", VendorID: uuid.New(), Duration: 60, StartingPrice: 50}
	checkout, _, _, notifications := fixture(newItem(svc, 50, nil, nil))

	result, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(result.Bookings))
	}

	want := "Your booking has been confirmed. Check your dashboard for details."
	if notifications.inserted[0].Message != want {
		t.Errorf("message = %q, want %q", notifications.inserted[0].Message, want)
	}
}

func TestCheckoutDefaults(t *testing.T) {
	svc := &models.CartItemService{ID: uuid.New(), Name: "Window Washing", VendorID: uuid.New(), Duration: 0, StartingPrice: 75}
	checkout, _, bookings, _ := fixture(newItem(svc, 0, nil, nil))

	result, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(result.Bookings))
	}

	b := bookings.inserted[0]
	if b.ScheduledTime != "09:00:00" {
		t.Errorf("default scheduled time = %q, want 09:00:00", b.ScheduledTime)
	}
	if b.ScheduledDate != time.Now().Format("2006-01-02") {
		t.Errorf("default scheduled date = %q, want today", b.ScheduledDate)
	}
	if b.Duration != 60 {
		t.Errorf("default duration = %d, want 60", b.Duration)
	}
	if b.Price != 75 {
		t.Errorf("price = %v, want starting price fallback 75", b.Price)
	}
	if b.Status != "pending" {
		t.Errorf("status = %q, want pending", b.Status)
	}
}

func TestCheckoutMissingAddressField(t *testing.T) {
	svc := &models.CartItemService{ID: uuid.New(), Name: "Lawn Care", VendorID: uuid.New(), Duration: 60, StartingPrice: 50}
	checkout, carts, bookings, notifications := fixture(newItem(svc, 50, nil, nil))

	for _, req := range []models.CheckoutRequest{
		{City: "Springfield", State: "CA", ZipCode: "90210"},
		{Address: "123 Main St", State: "CA", ZipCode: "90210"},
		{Address: "123 Main St", City: "Springfield", ZipCode: "90210"},
		{Address: "123 Main St", City: "Springfield", State: "CA"},
		{Address: "   ", City: "Springfield", State: "CA", ZipCode: "90210"},
	} {
		_, err := checkout.Checkout(context.Background(), uuid.New(), req)
		if !errors.Is(err, ErrAddressRequired) {
			t.Errorf("req %+v: expected ErrAddressRequired, got %v", req, err)
		}
	}

	if len(bookings.inserted) != 0 || len(notifications.inserted) != 0 || carts.cleared {
		t.Error("validation failure must not write anything")
	}
}

func TestCheckoutNoCartRow(t *testing.T) {
	bookings := &fakeBookingStore{}
	checkout := NewCheckoutService(&fakeCartStore{hasCart: false}, bookings, &fakeNotificationStore{})

	_, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if !errors.Is(err, ErrCartNotFound) {
		t.Fatalf("expected ErrCartNotFound, got %v", err)
	}
	if len(bookings.inserted) != 0 {
		t.Error("no bookings expected")
	}
}

func TestCheckoutEmptyCart(t *testing.T) {
	checkout, _, bookings, notifications := fixture()

	_, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if len(bookings.inserted) != 0 || len(notifications.inserted) != 0 {
		t.Error("empty cart must not write anything")
	}
}

func TestCheckoutPartialSuccess(t *testing.T) {
	// Item A resolves and converts with defaults; item B's service row
	// is gone. The failed item is still wiped from the cart.
	svcA := &models.CartItemService{ID: uuid.New(), Name: "Deep Cleaning", VendorID: uuid.New(), Duration: 120, StartingPrice: 89}
	itemA := newItem(svcA, 50, nil, nil)
	itemB := newItem(nil, 60, nil, nil)

	checkout, carts, bookings, _ := fixture(itemA, itemB)

	result, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success {
		t.Error("partial conversion should still be a success")
	}
	if len(result.Bookings) != 1 {
		t.Fatalf("expected 1 booking, got %d", len(result.Bookings))
	}
	if result.Bookings[0].ScheduledTime != "09:00:00" {
		t.Errorf("scheduled time = %q, want default", result.Bookings[0].ScheduledTime)
	}
	if len(result.Errors) != 1 {
		t.Fatalf("expected 1 error, got %d", len(result.Errors))
	}
	if !strings.Contains(result.Errors[0], itemB.ID.String()) {
		t.Errorf("error should reference the failed cart item id: %q", result.Errors[0])
	}
	if !carts.cleared || len(carts.items) != 0 {
		t.Error("cart must be fully cleared, including the failed item")
	}
	if len(bookings.inserted) != 1 {
		t.Errorf("expected 1 inserted booking, got %d", len(bookings.inserted))
	}
}

func TestCheckoutAllItemsFail(t *testing.T) {
	svc1 := &models.CartItemService{ID: uuid.New(), Name: "Deep Cleaning", VendorID: uuid.New(), Duration: 60, StartingPrice: 89}
	svc2 := &models.CartItemService{ID: uuid.New(), Name: "Pipe Repair", VendorID: uuid.New(), Duration: 60, StartingPrice: 120}

	carts := &fakeCartStore{cartID: uuid.New(), hasCart: true, items: []models.CartItemWithService{
		newItem(svc1, 50, nil, nil),
		newItem(svc2, 60, nil, nil),
	}}
	bookings := &fakeBookingStore{failFor: map[uuid.UUID]error{
		svc1.ID: errors.New("insert failed"),
		svc2.ID: errors.New("insert failed"),
	}}
	notifications := &fakeNotificationStore{}
	checkout := NewCheckoutService(carts, bookings, notifications)

	result, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Success {
		t.Error("no conversions means no success")
	}
	if len(result.Bookings) != 0 {
		t.Errorf("expected 0 bookings, got %d", len(result.Bookings))
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d", len(result.Errors))
	}
	if carts.cleared {
		t.Error("cart must not be cleared when nothing converted")
	}
	if len(notifications.inserted) != 0 {
		t.Error("no notification expected when nothing converted")
	}
	if !strings.Contains(result.Errors[0], "Deep Cleaning") {
		t.Errorf("insert error should name the service: %q", result.Errors[0])
	}
}

func TestCheckoutInsertFailureDoesNotAbortRemaining(t *testing.T) {
	svcFail := &models.CartItemService{ID: uuid.New(), Name: "Deep Cleaning", VendorID: uuid.New(), Duration: 60, StartingPrice: 89}
	svcOK := &models.CartItemService{ID: uuid.New(), Name: "Pipe Repair", VendorID: uuid.New(), Duration: 60, StartingPrice: 120}

	carts := &fakeCartStore{cartID: uuid.New(), hasCart: true, items: []models.CartItemWithService{
		newItem(svcFail, 50, nil, nil),
		newItem(svcOK, 60, nil, nil),
	}}
	bookings := &fakeBookingStore{failFor: map[uuid.UUID]error{svcFail.ID: errors.New("duplicate key")}}
	notifications := &fakeNotificationStore{}
	checkout := NewCheckoutService(carts, bookings, notifications)

	result, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !result.Success || len(result.Bookings) != 1 || len(result.Errors) != 1 {
		t.Fatalf("got success=%v bookings=%d errors=%d", result.Success, len(result.Bookings), len(result.Errors))
	}
	if notifications.inserted[0].RelatedID == nil || *notifications.inserted[0].RelatedID != result.Bookings[0].ID {
		t.Error("notification must reference the first booking that landed")
	}
}

func TestCheckoutSecondCallAbortsOnEmptyCart(t *testing.T) {
	svc := &models.CartItemService{ID: uuid.New(), Name: "Lawn Care", VendorID: uuid.New(), Duration: 60, StartingPrice: 50}
	checkout, _, bookings, _ := fixture(newItem(svc, 50, nil, nil))

	if _, err := checkout.Checkout(context.Background(), uuid.New(), validRequest()); err != nil {
		t.Fatalf("first checkout failed: %v", err)
	}

	_, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("second checkout should hit the empty cart, got %v", err)
	}
	if len(bookings.inserted) != 1 {
		t.Errorf("no duplicate bookings allowed, got %d", len(bookings.inserted))
	}
}

func TestCheckoutSecondaryFailuresAreSwallowed(t *testing.T) {
	svc := &models.CartItemService{ID: uuid.New(), Name: "Lawn Care", VendorID: uuid.New(), Duration: 60, StartingPrice: 50}

	carts := &fakeCartStore{
		cartID:   uuid.New(),
		hasCart:  true,
		items:    []models.CartItemWithService{newItem(svc, 50, nil, nil)},
		clearErr: errors.New("deadlock detected"),
	}
	notifications := &fakeNotificationStore{err: errors.New("connection reset")}
	checkout := NewCheckoutService(carts, &fakeBookingStore{}, notifications)

	result, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.Success {
		t.Error("cart-clear and notification failures must not flip the outcome")
	}
	if len(result.Errors) != 0 {
		t.Errorf("secondary failures are not surfaced to the caller: %v", result.Errors)
	}
}

func TestCheckoutItemOrderPreserved(t *testing.T) {
	var items []models.CartItemWithService
	var names []string
	for i := 0; i < 5; i++ {
		name := fmt.Sprintf("Service %d", i)
		names = append(names, name)
		items = append(items, newItem(&models.CartItemService{
			ID: uuid.New(), Name: name, VendorID: uuid.New(), Duration: 60, StartingPrice: 10,
		}, 10, nil, nil))
	}

	checkout, _, bookings, notifications := fixture(items...)

	result, err := checkout.Checkout(context.Background(), uuid.New(), validRequest())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, b := range bookings.inserted {
		if b.ServiceID != items[i].ServiceID {
			t.Errorf("booking %d made for %s out of order", i, names[i])
		}
	}
	if *notifications.inserted[0].RelatedID != result.Bookings[0].ID {
		t.Error("related id must come from iteration order, not insertion timing")
	}
}

func TestConfirmationMessage(t *testing.T) {
	if got := confirmationMessage(1); got != "Your booking has been confirmed. Check your dashboard for details." {
		t.Errorf("singular message = %q", got)
	}
	if got := confirmationMessage(2); got != "Your bookings have been confirmed. Check your dashboard for details." {
		t.Errorf("plural message = %q", got)
	}
}
