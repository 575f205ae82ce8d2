package repositories

import (
	"context"
	"errors"
	"time"

	"homepro/config"
	"homepro/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

// CartIDByUser returns the id of the user's cart without creating one.
// Returns models.ErrNotFound when the user has no cart row.
func (r *CartRepository) CartIDByUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	var cartID uuid.UUID
	err := config.DB.QueryRow(ctx,
		"SELECT id FROM carts WHERE user_id = $1", userID).Scan(&cartID)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, models.ErrNotFound
	}
	if err != nil {
		return uuid.Nil, err
	}
	return cartID, nil
}

// GetOrCreateCart lazily creates the user's cart on first access.
func (r *CartRepository) GetOrCreateCart(ctx context.Context, userID uuid.UUID) (*models.Cart, error) {
	cart := &models.Cart{UserID: userID}
	err := config.DB.QueryRow(ctx,
		"SELECT id, created_at FROM carts WHERE user_id = $1", userID).
		Scan(&cart.ID, &cart.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		err = config.DB.QueryRow(ctx,
			"INSERT INTO carts (user_id) VALUES ($1) RETURNING id, created_at", userID).
			Scan(&cart.ID, &cart.CreatedAt)
	}
	if err != nil {
		return nil, err
	}
	return cart, nil
}

// ItemsWithService lists the cart's items, each joined with its service.
// The join is LEFT so items whose service row disappeared still come
// back, with a nil Service.
func (r *CartRepository) ItemsWithService(ctx context.Context, cartID uuid.UUID) ([]models.CartItemWithService, error) {
	query := `
		SELECT
			ci.id, ci.cart_id, ci.service_id, ci.price, ci.quantity,
			to_char(ci.scheduled_date, 'YYYY-MM-DD'),
			to_char(ci.scheduled_time, 'HH24:MI:SS'),
			ci.created_at, ci.updated_at,
			s.id, s.name, s.vendor_id, s.duration, s.starting_price
		FROM cart_items ci
		LEFT JOIN services s ON ci.service_id = s.id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at
	`

	rows, err := config.DB.Query(ctx, query, cartID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.CartItemWithService{}
	for rows.Next() {
		var item models.CartItemWithService
		var svcID *uuid.UUID
		var svcName *string
		var svcVendorID *uuid.UUID
		var svcDuration *int
		var svcPrice *float64

		err := rows.Scan(
			&item.ID, &item.CartID, &item.ServiceID, &item.Price, &item.Quantity,
			&item.ScheduledDate, &item.ScheduledTime,
			&item.CreatedAt, &item.UpdatedAt,
			&svcID, &svcName, &svcVendorID, &svcDuration, &svcPrice,
		)
		if err != nil {
			return nil, err
		}

		if svcID != nil {
			item.Service = &models.CartItemService{
				ID:            *svcID,
				Name:          *svcName,
				VendorID:      *svcVendorID,
				Duration:      *svcDuration,
				StartingPrice: *svcPrice,
			}
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

// ClearItems deletes every item belonging to the cart.
func (r *CartRepository) ClearItems(ctx context.Context, cartID uuid.UUID) error {
	_, err := config.DB.Exec(ctx, "DELETE FROM cart_items WHERE cart_id = $1", cartID)
	return err
}

func (r *CartRepository) FindItemByService(ctx context.Context, cartID, serviceID uuid.UUID) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := config.DB.QueryRow(ctx, `
		SELECT id, cart_id, service_id, price, quantity,
		       to_char(scheduled_date, 'YYYY-MM-DD'),
		       to_char(scheduled_time, 'HH24:MI:SS'),
		       created_at, updated_at
		FROM cart_items WHERE cart_id = $1 AND service_id = $2`,
		cartID, serviceID).Scan(
		&item.ID, &item.CartID, &item.ServiceID, &item.Price, &item.Quantity,
		&item.ScheduledDate, &item.ScheduledTime, &item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CartRepository) FindItem(ctx context.Context, itemID, cartID uuid.UUID) (*models.CartItem, error) {
	item := &models.CartItem{}
	err := config.DB.QueryRow(ctx, `
		SELECT id, cart_id, service_id, price, quantity,
		       to_char(scheduled_date, 'YYYY-MM-DD'),
		       to_char(scheduled_time, 'HH24:MI:SS'),
		       created_at, updated_at
		FROM cart_items WHERE id = $1 AND cart_id = $2`,
		itemID, cartID).Scan(
		&item.ID, &item.CartID, &item.ServiceID, &item.Price, &item.Quantity,
		&item.ScheduledDate, &item.ScheduledTime, &item.CreatedAt, &item.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *CartRepository) InsertItem(ctx context.Context, item *models.CartItem) error {
	now := time.Now()
	return config.DB.QueryRow(ctx, `
		INSERT INTO cart_items (cart_id, service_id, price, quantity, scheduled_date, scheduled_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
		RETURNING id, created_at, updated_at`,
		item.CartID, item.ServiceID, item.Price, item.Quantity,
		item.ScheduledDate, item.ScheduledTime, now).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
}

func (r *CartRepository) UpdateItem(ctx context.Context, item *models.CartItem) error {
	_, err := config.DB.Exec(ctx, `
		UPDATE cart_items
		SET quantity = $1, scheduled_date = $2, scheduled_time = $3, updated_at = $4
		WHERE id = $5`,
		item.Quantity, item.ScheduledDate, item.ScheduledTime, time.Now(), item.ID)
	return err
}

func (r *CartRepository) DeleteItem(ctx context.Context, itemID uuid.UUID) error {
	_, err := config.DB.Exec(ctx, "DELETE FROM cart_items WHERE id = $1", itemID)
	return err
}
