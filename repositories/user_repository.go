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

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (email, password, role, full_name, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $6)
		RETURNING id, created_at, updated_at
	`
	err := config.DB.QueryRow(
		context.Background(),
		query,
		user.Email,
		user.Password,
		user.Role,
		user.FullName,
		user.Phone,
		time.Now(),
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	return err
}

func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := `SELECT id, email, password, role, full_name, COALESCE(phone, ''), created_at, updated_at
	          FROM users WHERE email = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.FullName,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(id uuid.UUID) (*models.User, error) {
	query := `SELECT id, email, password, role, full_name, COALESCE(phone, ''), created_at, updated_at
	          FROM users WHERE id = $1`

	user := &models.User{}
	err := config.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Email,
		&user.Password,
		&user.Role,
		&user.FullName,
		&user.Phone,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindAll(page, limit int) ([]models.User, int, error) {
	var total int
	if err := config.DB.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM users").Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	rows, err := config.DB.Query(context.Background(), `
		SELECT id, email, role, full_name, COALESCE(phone, ''), created_at, updated_at
		FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		err := rows.Scan(&u.ID, &u.Email, &u.Role, &u.FullName, &u.Phone,
			&u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		users = append(users, u)
	}

	return users, total, rows.Err()
}

func (r *UserRepository) UpdateProfile(userID uuid.UUID, fullName, phone string) error {
	_, err := config.DB.Exec(context.Background(),
		"UPDATE users SET full_name = $1, phone = $2, updated_at = $3 WHERE id = $4",
		fullName, phone, time.Now(), userID)
	return err
}

func (r *UserRepository) UpdatePassword(userID uuid.UUID, hashedPassword string) error {
	_, err := config.DB.Exec(context.Background(),
		"UPDATE users SET password = $1, updated_at = $2 WHERE id = $3",
		hashedPassword, time.Now(), userID)
	return err
}

func (r *UserRepository) UpdatePasswordByEmail(email, hashedPassword string) error {
	tag, err := config.DB.Exec(context.Background(),
		"UPDATE users SET password = $1, updated_at = $2 WHERE email = $3",
		hashedPassword, time.Now(), email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
