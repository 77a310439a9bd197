package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/DRSN-tech/eshop-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// OrderRepo реализует репозиторий заказов поверх PostgreSQL.
type OrderRepo struct {
	pool *pgxpool.Pool
	conv converter.OrderConverter
}

func NewOrderRepo(pool *pgxpool.Pool, conv converter.OrderConverter) *OrderRepo {
	return &OrderRepo{pool: pool, conv: conv}
}

const orderColumns = "id, user_id, shipping_address1, shipping_address2, city, zip, country, phone, status, total_price, created_at, updated_at"

// List возвращает заказы, новые первыми, с раскрытыми позициями.
func (o *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		ORDER BY created_at DESC;
	`

	rows, err := o.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return o.collectWithItems(ctx, rows)
}

func (o *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1;
	`

	var model converter.OrderModel
	if err := scanOrder(o.pool.QueryRow(ctx, query, id), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrOrderNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	order := o.conv.ToEntity(&model)

	items, err := o.loadItems(ctx, []int64{id})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	order.Items = items[id]
	if order.Items == nil {
		order.Items = make([]domain.OrderItem, 0)
	}

	return order, nil
}

// Create вставляет заказ и его позиции в рамках транзакции из контекста.
func (o *OrderRepo) Create(ctx context.Context, order *domain.Order) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO orders (user_id, shipping_address1, shipping_address2, city, zip, country, phone, status, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING ` + orderColumns + `;
	`

	var model converter.OrderModel
	row := tx.QueryRow(ctx, query,
		order.UserID, order.ShippingAddress1, order.ShippingAddress2,
		order.City, order.Zip, order.Country, order.Phone,
		order.Status, order.TotalPrice,
	)
	if err := scanOrder(row, &model); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	created := o.conv.ToEntity(&model)
	created.Items = make([]domain.OrderItem, 0, len(order.Items))

	itemQuery := `
		INSERT INTO order_items (order_id, product_id, quantity)
		VALUES ($1, $2, $3)
		RETURNING id, order_id, product_id, quantity;
	`

	for _, item := range order.Items {
		var itemModel converter.OrderItemModel
		err := tx.QueryRow(ctx, itemQuery, created.ID, item.ProductID, item.Quantity).
			Scan(&itemModel.ID, &itemModel.OrderID, &itemModel.ProductID, &itemModel.Quantity)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		created.Items = append(created.Items, o.conv.ToItemEntity(&itemModel))
	}

	return created, nil
}

// UpdateStatus меняет статус заказа в рамках транзакции из контекста.
func (o *OrderRepo) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.Order, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING ` + orderColumns + `;
	`

	var model converter.OrderModel
	if err := scanOrder(tx.QueryRow(ctx, query, id, status), &model); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrOrderNotFound
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return o.conv.ToEntity(&model), nil
}

func (o *OrderRepo) Delete(ctx context.Context, id int64) error {
	result, err := o.pool.Exec(ctx, `DELETE FROM orders WHERE id = $1;`, id)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.ErrOrderNotFound
	}

	return nil
}

// DeleteItems удаляет позиции заказа отдельной операцией, вне транзакции.
func (o *OrderRepo) DeleteItems(ctx context.Context, orderID int64) error {
	if _, err := o.pool.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1;`, orderID); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (o *OrderRepo) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := o.pool.QueryRow(ctx, `SELECT COUNT(*) FROM orders;`).Scan(&count); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return count, nil
}

// TotalSales возвращает сумму всех заказов в копейках.
func (o *OrderRepo) TotalSales(ctx context.Context) (int64, error) {
	var total int64
	if err := o.pool.QueryRow(ctx, `SELECT COALESCE(SUM(total_price), 0) FROM orders;`).Scan(&total); err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return total, nil
}

func (o *OrderRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Order, error) {
	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE user_id = $1
		ORDER BY created_at DESC;
	`

	rows, err := o.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	return o.collectWithItems(ctx, rows)
}

func (o *OrderRepo) collectWithItems(ctx context.Context, rows pgx.Rows) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	ids := make([]int64, 0)
	for rows.Next() {
		var model converter.OrderModel
		if err := scanOrder(rows, &model); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		orders = append(orders, *o.conv.ToEntity(&model))
		ids = append(ids, model.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := o.loadItems(ctx, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
		if orders[i].Items == nil {
			orders[i].Items = make([]domain.OrderItem, 0)
		}
	}

	return orders, nil
}

func (o *OrderRepo) loadItems(ctx context.Context, orderIDs []int64) (map[int64][]domain.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, quantity
		FROM order_items
		WHERE order_id = ANY($1)
		ORDER BY id;
	`

	rows, err := o.pool.Query(ctx, query, orderIDs)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	result := make(map[int64][]domain.OrderItem, len(orderIDs))
	for rows.Next() {
		var model converter.OrderItemModel
		if err := rows.Scan(&model.ID, &model.OrderID, &model.ProductID, &model.Quantity); err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}

		result[model.OrderID] = append(result[model.OrderID], o.conv.ToItemEntity(&model))
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return result, nil
}

func scanOrder(row pgx.Row, model *converter.OrderModel) error {
	return row.Scan(
		&model.ID, &model.UserID, &model.ShippingAddress1, &model.ShippingAddress2,
		&model.City, &model.Zip, &model.Country, &model.Phone,
		&model.Status, &model.TotalPrice, &model.CreatedAt, &model.UpdatedAt,
	)
}
