package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий товаров поверх PostgreSQL.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = "id, name, description, brand, image, images, price, category_id, stock, rating, num_reviews, is_featured, created_at, updated_at"

// List возвращает товары, опционально отфильтрованные по категориям.
func (p *ProductRepo) List(ctx context.Context, categoryIDs []int64) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE cardinality($1::bigint[]) = 0 OR category_id = ANY($1)
		ORDER BY name;
	`

	if categoryIDs == nil {
		categoryIDs = []int64{}
	}

	rows, err := p.pool.Query(ctx, query, categoryIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.collect(rows)
}

func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1;
	`

	var model converter.ProductModel
	if err := scanProduct(p.pool.QueryRow(ctx, query, id), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		INSERT INTO products (name, description, brand, image, images, price, category_id, stock, rating, num_reviews, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + productColumns + `;
	`

	model := p.conv.ToModel(product)
	if model.Images == nil {
		model.Images = []string{}
	}

	var created converter.ProductModel
	row := p.pool.QueryRow(ctx, query,
		model.Name, model.Description, model.Brand, model.Image, model.Images,
		model.Price, model.CategoryID, model.Stock, model.Rating, model.NumReviews, model.IsFeatured,
	)
	if err := scanProduct(row, &created); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&created), nil
}

// Update полностью заменяет поля товара (галерея не затрагивается).
func (p *ProductRepo) Update(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	query := `
		UPDATE products
		SET name = $2, description = $3, brand = $4, image = $5, price = $6,
			category_id = $7, stock = $8, rating = $9, num_reviews = $10,
			is_featured = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`

	var model converter.ProductModel
	row := p.pool.QueryRow(ctx, query,
		product.ID, product.Name, product.Description, product.Brand, product.Image,
		product.Price, product.CategoryID, product.Stock, product.Rating,
		product.NumReviews, product.IsFeatured,
	)
	if err := scanProduct(row, &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

func (p *ProductRepo) Delete(ctx context.Context, id int64) error {
	result, err := p.pool.Exec(ctx, `DELETE FROM products WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrProductNotFound
	}

	return nil
}

func (p *ProductRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM products;`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func (p *ProductRepo) Featured(ctx context.Context, limit int) ([]domain.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE is_featured
		ORDER BY created_at DESC
		LIMIT $1;
	`

	rows, err := p.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return p.collect(rows)
}

// SetGallery заменяет галерею товара новым набором ключей.
func (p *ProductRepo) SetGallery(ctx context.Context, id int64, images []string) (*domain.Product, error) {
	query := `
		UPDATE products
		SET images = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`

	if images == nil {
		images = []string{}
	}

	var model converter.ProductModel
	if err := scanProduct(p.pool.QueryRow(ctx, query, id, images), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrProductNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(&model), nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам, включая название категории.
func (p *ProductRepo) GetProductsInfo(ctx context.Context, ids []int64) ([]usecase.ProductInfo, error) {
	query := `
		SELECT pr.id, pr.name, pr.price, cat.name
		FROM products pr
		JOIN categories cat ON pr.category_id = cat.id
		WHERE pr.id = ANY($1);
	`

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make([]usecase.ProductInfo, 0)
	for rows.Next() {
		var product usecase.ProductInfo
		if err := rows.Scan(&product.ID, &product.Name, &product.Price, &product.CategoryName); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result = append(result, product)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func (p *ProductRepo) collect(rows pgx.Rows) ([]domain.Product, error) {
	models := make([]*converter.ProductModel, 0)
	for rows.Next() {
		var model converter.ProductModel
		if err := scanProduct(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := p.conv.ToArrEntity(models)
	if result == nil {
		result = make([]domain.Product, 0)
	}

	return result, nil
}

func scanProduct(row pgx.Row, model *converter.ProductModel) error {
	return row.Scan(
		&model.ID, &model.Name, &model.Description, &model.Brand, &model.Image,
		&model.Images, &model.Price, &model.CategoryID, &model.Stock,
		&model.Rating, &model.NumReviews, &model.IsFeatured,
		&model.CreatedAt, &model.UpdatedAt,
	)
}
