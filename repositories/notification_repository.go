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

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Insert(ctx context.Context, n *models.Notification) error {
	return config.DB.QueryRow(ctx, `
		INSERT INTO notifications (user_id, title, message, type, related_id, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		n.UserID, n.Title, n.Message, n.Type, n.RelatedID, n.IsRead, time.Now()).
		Scan(&n.ID, &n.CreatedAt)
}

// ListByUser returns a page of the user's notifications, newest first,
// along with the filtered total and the unread count.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int, unreadOnly bool) ([]models.Notification, int, int, error) {
	countQuery := "SELECT COUNT(*) FROM notifications WHERE user_id = $1"
	if unreadOnly {
		countQuery += " AND is_read = false"
	}

	var total int
	if err := config.DB.QueryRow(ctx, countQuery, userID).Scan(&total); err != nil {
		return nil, 0, 0, err
	}

	var unreadCount int
	err := config.DB.QueryRow(ctx,
		"SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = false",
		userID).Scan(&unreadCount)
	if err != nil {
		return nil, 0, 0, err
	}

	query := `
		SELECT id, user_id, title, message, type, related_id, is_read, created_at
		FROM notifications
		WHERE user_id = $1`
	if unreadOnly {
		query += " AND is_read = false"
	}
	query += " ORDER BY created_at DESC LIMIT $2 OFFSET $3"

	rows, err := config.DB.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, 0, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type,
			&n.RelatedID, &n.IsRead, &n.CreatedAt)
		if err != nil {
			return nil, 0, 0, err
		}
		notifications = append(notifications, n)
	}

	return notifications, total, unreadCount, rows.Err()
}

// MarkRead flips is_read on a notification owned by the user.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID uuid.UUID, isRead bool) (*models.Notification, error) {
	n := &models.Notification{}
	err := config.DB.QueryRow(ctx, `
		UPDATE notifications SET is_read = $1
		WHERE id = $2 AND user_id = $3
		RETURNING id, user_id, title, message, type, related_id, is_read, created_at`,
		isRead, id, userID).Scan(
		&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type,
		&n.RelatedID, &n.IsRead, &n.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return n, nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) error {
	_, err := config.DB.Exec(ctx,
		"UPDATE notifications SET is_read = true WHERE user_id = $1 AND is_read = false",
		userID)
	return err
}
