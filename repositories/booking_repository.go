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

type BookingRepository struct{}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Insert(ctx context.Context, b *models.Booking) error {
	return config.DB.QueryRow(ctx, `
		INSERT INTO bookings
			(user_id, service_id, vendor_id, scheduled_date, scheduled_time,
			 duration, price, address, city, state, zip_code,
			 special_instructions, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		RETURNING id, created_at`,
		b.UserID, b.ServiceID, b.VendorID, b.ScheduledDate, b.ScheduledTime,
		b.Duration, b.Price, b.Address, b.City, b.State, b.ZipCode,
		b.SpecialInstructions, b.Status, time.Now()).
		Scan(&b.ID, &b.CreatedAt)
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	b := &models.Booking{}
	err := config.DB.QueryRow(ctx, `
		SELECT id, user_id, service_id, vendor_id,
		       to_char(scheduled_date, 'YYYY-MM-DD'),
		       to_char(scheduled_time, 'HH24:MI:SS'),
		       duration, price, address, city, state, zip_code,
		       COALESCE(special_instructions, ''), status, created_at
		FROM bookings WHERE id = $1`, id).Scan(
		&b.ID, &b.UserID, &b.ServiceID, &b.VendorID,
		&b.ScheduledDate, &b.ScheduledTime,
		&b.Duration, &b.Price, &b.Address, &b.City, &b.State, &b.ZipCode,
		&b.SpecialInstructions, &b.Status, &b.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.Booking, int, error) {
	var total int
	err := config.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM bookings WHERE user_id = $1", userID).Scan(&total)
	if err != nil {
		return nil, 0, err
	}

	rows, err := config.DB.Query(ctx, `
		SELECT id, user_id, service_id, vendor_id,
		       to_char(scheduled_date, 'YYYY-MM-DD'),
		       to_char(scheduled_time, 'HH24:MI:SS'),
		       duration, price, address, city, state, zip_code,
		       COALESCE(special_instructions, ''), status, created_at
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	return bookings, total, err
}

func (r *BookingRepository) ListAll(ctx context.Context, status string, limit, offset int) ([]models.Booking, int, error) {
	var total int
	countQuery := "SELECT COUNT(*) FROM bookings"
	countArgs := []interface{}{}
	if status != "" && status != "All" {
		countQuery += " WHERE status = $1"
		countArgs = append(countArgs, status)
	}
	if err := config.DB.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, user_id, service_id, vendor_id,
		       to_char(scheduled_date, 'YYYY-MM-DD'),
		       to_char(scheduled_time, 'HH24:MI:SS'),
		       duration, price, address, city, state, zip_code,
		       COALESCE(special_instructions, ''), status, created_at
		FROM bookings`
	args := []interface{}{}
	if status != "" && status != "All" {
		query += " WHERE status = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3"
		args = append(args, status, limit, offset)
	} else {
		query += " ORDER BY created_at DESC LIMIT $1 OFFSET $2"
		args = append(args, limit, offset)
	}

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	bookings, err := scanBookings(rows)
	return bookings, total, err
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	tag, err := config.DB.Exec(ctx,
		"UPDATE bookings SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func scanBookings(rows pgx.Rows) ([]models.Booking, error) {
	bookings := []models.Booking{}
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(
			&b.ID, &b.UserID, &b.ServiceID, &b.VendorID,
			&b.ScheduledDate, &b.ScheduledTime,
			&b.Duration, &b.Price, &b.Address, &b.City, &b.State, &b.ZipCode,
			&b.SpecialInstructions, &b.Status, &b.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
