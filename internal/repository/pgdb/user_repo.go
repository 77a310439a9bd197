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

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{pool: pool, conv: conv}
}

const userColumns = "id, name, email, password_hash, phone, is_admin, street, apartment, zip, city, country, created_at"

func (u *UserRepo) List(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		ORDER BY id;
	`

	rows, err := u.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	models := make([]*converter.UserModel, 0)
	for rows.Next() {
		var model converter.UserModel
		if err := scanUser(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := u.conv.ToArrEntity(models)
	if result == nil {
		result = make([]domain.User, 0)
	}

	return result, nil
}

func (u *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1;
	`

	var model converter.UserModel
	if err := scanUser(u.pool.QueryRow(ctx, query, id), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1;
	`

	var model converter.UserModel
	if err := scanUser(u.pool.QueryRow(ctx, query, email), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (name, email, password_hash, phone, is_admin, street, apartment, zip, city, country)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + userColumns + `;
	`

	var model converter.UserModel
	row := u.pool.QueryRow(ctx, query,
		user.Name, user.Email, user.PasswordHash, user.Phone, user.IsAdmin,
		user.Street, user.Apartment, user.Zip, user.City, user.Country,
	)
	if err := scanUser(row, &model); err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrDuplicateEmail
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(&model), nil
}

func (u *UserRepo) Delete(ctx context.Context, id int64) error {
	result, err := u.pool.Exec(ctx, `DELETE FROM users WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrUserNotFound
	}

	return nil
}

func (u *UserRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := u.pool.QueryRow(ctx, `SELECT COUNT(*) FROM users;`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

func scanUser(row pgx.Row, model *converter.UserModel) error {
	return row.Scan(
		&model.ID, &model.Name, &model.Email, &model.PasswordHash, &model.Phone,
		&model.IsAdmin, &model.Street, &model.Apartment, &model.Zip,
		&model.City, &model.Country, &model.CreatedAt,
	)
}
