package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CategoryRepo реализует репозиторий категорий поверх PostgreSQL.
type CategoryRepo struct {
	pool *pgxpool.Pool
	conv converter.CategoryConverter
}

func NewCategoryRepo(pool *pgxpool.Pool, conv converter.CategoryConverter) *CategoryRepo {
	return &CategoryRepo{pool: pool, conv: conv}
}

const categoryColumns = "id, name, icon, color, image, created_at, updated_at"

func (c *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		ORDER BY name;
	`

	rows, err := c.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.CategoryModel, 0)
	for rows.Next() {
		var model converter.CategoryModel
		if err := scanCategory(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := c.conv.ToArrEntity(models)
	if result == nil {
		result = make([]domain.Category, 0)
	}

	return result, nil
}

func (c *CategoryRepo) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	query := `
		SELECT ` + categoryColumns + `
		FROM categories
		WHERE id = $1;
	`

	var model converter.CategoryModel
	if err := scanCategory(c.pool.QueryRow(ctx, query, id), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCategoryNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Create(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		INSERT INTO categories (name, icon, color, image)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + categoryColumns + `;
	`

	var model converter.CategoryModel
	row := c.pool.QueryRow(ctx, query, category.Name, category.Icon, category.Color, category.Image)
	if err := scanCategory(row, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

// Update полностью заменяет поля категории.
func (c *CategoryRepo) Update(ctx context.Context, category *domain.Category) (*domain.Category, error) {
	query := `
		UPDATE categories
		SET name = $2, icon = $3, color = $4, image = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + categoryColumns + `;
	`

	var model converter.CategoryModel
	row := c.pool.QueryRow(ctx, query, category.ID, category.Name, category.Icon, category.Color, category.Image)
	if err := scanCategory(row, &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrCategoryNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToEntity(&model), nil
}

func (c *CategoryRepo) Delete(ctx context.Context, id int64) error {
	result, err := c.pool.Exec(ctx, `DELETE FROM categories WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrCategoryNotFound
	}

	return nil
}

func (c *CategoryRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := c.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1);`, id).Scan(&exists)
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return exists, nil
}

func scanCategory(row pgx.Row, model *converter.CategoryModel) error {
	return row.Scan(
		&model.ID, &model.Name, &model.Icon, &model.Color, &model.Image,
		&model.CreatedAt, &model.UpdatedAt,
	)
}
