package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"homepro/config"
	"homepro/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

// ListCategories returns active categories ordered by display_order,
// each with its active subcategories nested.
func (r *CatalogRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT id, name, COALESCE(description, ''), COALESCE(icon, ''),
		       COALESCE(image_url, ''), slug, display_order, is_active,
		       service_count, created_at
		FROM categories
		WHERE is_active = true
		ORDER BY display_order`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	index := map[uuid.UUID]int{}
	for rows.Next() {
		var cat models.Category
		err := rows.Scan(&cat.ID, &cat.Name, &cat.Description, &cat.Icon,
			&cat.ImageURL, &cat.Slug, &cat.DisplayOrder, &cat.IsActive,
			&cat.ServiceCount, &cat.CreatedAt)
		if err != nil {
			return nil, err
		}
		cat.Subcategories = []models.Subcategory{}
		index[cat.ID] = len(categories)
		categories = append(categories, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	rows.Close()

	subRows, err := config.DB.Query(ctx, `
		SELECT id, category_id, name, COALESCE(description, ''), COALESCE(icon, ''),
		       COALESCE(image_url, ''), slug, display_order, is_active, service_count
		FROM subcategories
		WHERE is_active = true
		ORDER BY display_order`)
	if err != nil {
		return nil, err
	}
	defer subRows.Close()

	for subRows.Next() {
		var sub models.Subcategory
		err := subRows.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.Description,
			&sub.Icon, &sub.ImageURL, &sub.Slug, &sub.DisplayOrder,
			&sub.IsActive, &sub.ServiceCount)
		if err != nil {
			return nil, err
		}
		if i, ok := index[sub.CategoryID]; ok {
			categories[i].Subcategories = append(categories[i].Subcategories, sub)
		}
	}

	return categories, subRows.Err()
}

func (r *CatalogRepository) ListSubcategoriesByCategorySlug(ctx context.Context, categorySlug string) ([]models.Subcategory, error) {
	rows, err := config.DB.Query(ctx, `
		SELECT sc.id, sc.category_id, sc.name, COALESCE(sc.description, ''),
		       COALESCE(sc.icon, ''), COALESCE(sc.image_url, ''), sc.slug,
		       sc.display_order, sc.is_active, sc.service_count
		FROM subcategories sc
		JOIN categories c ON sc.category_id = c.id
		WHERE sc.is_active = true AND c.slug = $1
		ORDER BY sc.display_order`, categorySlug)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subcategories := []models.Subcategory{}
	for rows.Next() {
		var sub models.Subcategory
		err := rows.Scan(&sub.ID, &sub.CategoryID, &sub.Name, &sub.Description,
			&sub.Icon, &sub.ImageURL, &sub.Slug, &sub.DisplayOrder,
			&sub.IsActive, &sub.ServiceCount)
		if err != nil {
			return nil, err
		}
		subcategories = append(subcategories, sub)
	}

	return subcategories, rows.Err()
}

// ListServices filters active services by category slug and/or
// subcategory slug.
func (r *CatalogRepository) ListServices(ctx context.Context, categorySlug, subcategorySlug string, limit, offset int) ([]models.Service, int, error) {
	where := []string{"s.is_active = true"}
	args := []interface{}{}
	argIndex := 1

	joins := ""
	if categorySlug != "" {
		joins = `
			JOIN subcategories sc ON s.subcategory_id = sc.id
			JOIN categories c ON sc.category_id = c.id`
		where = append(where, fmt.Sprintf("c.slug = $%d", argIndex))
		args = append(args, categorySlug)
		argIndex++
		if subcategorySlug != "" {
			where = append(where, fmt.Sprintf("sc.slug = $%d", argIndex))
			args = append(args, subcategorySlug)
			argIndex++
		}
	} else if subcategorySlug != "" {
		joins = " JOIN subcategories sc ON s.subcategory_id = sc.id"
		where = append(where, fmt.Sprintf("sc.slug = $%d", argIndex))
		args = append(args, subcategorySlug)
		argIndex++
	}

	whereClause := " WHERE " + strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM services s" + joins + whereClause
	if err := config.DB.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT s.id, s.subcategory_id, s.vendor_id, s.name,
		       COALESCE(s.description, ''), COALESCE(s.image_url, ''),
		       s.duration, s.starting_price, s.is_active, s.created_at, s.updated_at
		FROM services s` + joins + whereClause +
		fmt.Sprintf(" ORDER BY s.name LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := config.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var s models.Service
		err := rows.Scan(&s.ID, &s.SubcategoryID, &s.VendorID, &s.Name,
			&s.Description, &s.ImageURL, &s.Duration, &s.StartingPrice,
			&s.IsActive, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, 0, err
		}
		services = append(services, s)
	}

	return services, total, rows.Err()
}

func (r *CatalogRepository) FindServiceByID(ctx context.Context, id uuid.UUID) (*models.Service, error) {
	s := &models.Service{}
	err := config.DB.QueryRow(ctx, `
		SELECT id, subcategory_id, vendor_id, name, COALESCE(description, ''),
		       COALESCE(image_url, ''), duration, starting_price, is_active,
		       created_at, updated_at
		FROM services WHERE id = $1`, id).Scan(
		&s.ID, &s.SubcategoryID, &s.VendorID, &s.Name, &s.Description,
		&s.ImageURL, &s.Duration, &s.StartingPrice, &s.IsActive,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *CatalogRepository) CreateCategory(ctx context.Context, cat *models.Category) error {
	return config.DB.QueryRow(ctx, `
		INSERT INTO categories (name, description, icon, image_url, slug, display_order, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at`,
		cat.Name, cat.Description, cat.Icon, cat.ImageURL, cat.Slug,
		cat.DisplayOrder, cat.IsActive, time.Now()).
		Scan(&cat.ID, &cat.CreatedAt)
}

func (r *CatalogRepository) UpdateCategory(ctx context.Context, cat *models.Category) error {
	tag, err := config.DB.Exec(ctx, `
		UPDATE categories
		SET name = $1, description = $2, icon = $3, image_url = $4,
		    slug = $5, display_order = $6, is_active = $7
		WHERE id = $8`,
		cat.Name, cat.Description, cat.Icon, cat.ImageURL, cat.Slug,
		cat.DisplayOrder, cat.IsActive, cat.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	tag, err := config.DB.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) CreateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	return config.DB.QueryRow(ctx, `
		INSERT INTO subcategories (category_id, name, description, icon, image_url, slug, display_order, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		sub.CategoryID, sub.Name, sub.Description, sub.Icon, sub.ImageURL,
		sub.Slug, sub.DisplayOrder, sub.IsActive).
		Scan(&sub.ID)
}

func (r *CatalogRepository) UpdateSubcategory(ctx context.Context, sub *models.Subcategory) error {
	tag, err := config.DB.Exec(ctx, `
		UPDATE subcategories
		SET category_id = $1, name = $2, description = $3, icon = $4,
		    image_url = $5, slug = $6, display_order = $7, is_active = $8
		WHERE id = $9`,
		sub.CategoryID, sub.Name, sub.Description, sub.Icon, sub.ImageURL,
		sub.Slug, sub.DisplayOrder, sub.IsActive, sub.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	tag, err := config.DB.Exec(ctx, "DELETE FROM subcategories WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) CreateService(ctx context.Context, s *models.Service) error {
	now := time.Now()
	return config.DB.QueryRow(ctx, `
		INSERT INTO services (subcategory_id, vendor_id, name, description, image_url, duration, starting_price, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		RETURNING id, created_at, updated_at`,
		s.SubcategoryID, s.VendorID, s.Name, s.Description, s.ImageURL,
		s.Duration, s.StartingPrice, s.IsActive, now).
		Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *CatalogRepository) UpdateService(ctx context.Context, s *models.Service) error {
	tag, err := config.DB.Exec(ctx, `
		UPDATE services
		SET name = $1, description = $2, image_url = $3, duration = $4,
		    starting_price = $5, is_active = $6, updated_at = $7
		WHERE id = $8`,
		s.Name, s.Description, s.ImageURL, s.Duration, s.StartingPrice,
		s.IsActive, time.Now(), s.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) DeleteService(ctx context.Context, id uuid.UUID) error {
	tag, err := config.DB.Exec(ctx, "DELETE FROM services WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
