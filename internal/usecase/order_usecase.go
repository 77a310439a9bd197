package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderUseCase реализует бизнес-логику заказов.
type OrderUseCase struct {
	orderRepo    OrderRepository
	outboxRepo   OutboxRepository
	productsInfo ProductInfoProvider
	userRepo     UserRepository
	dbPool       transaction.Transactional
	logger       logger.Logger
}

func NewOrderUC(
	orderRepo OrderRepository,
	outboxRepo OutboxRepository,
	productsInfo ProductInfoProvider,
	userRepo UserRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:    orderRepo,
		outboxRepo:   outboxRepo,
		productsInfo: productsInfo,
		userRepo:     userRepo,
		dbPool:       dbPool,
		logger:       logger,
	}
}

// orderEventPayload — JSON-тело события заказа для Kafka.
type orderEventPayload struct {
	EventID    string `json:"event_id"`
	EventType  string `json:"event_type"`
	OrderID    int64  `json:"order_id"`
	UserID     int64  `json:"user_id"`
	Status     string `json:"status"`
	TotalPrice int64  `json:"total_price"`
	OccurredAt int64  `json:"occurred_at"`
}

func (o *OrderUseCase) ListOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderUseCase.ListOrders"

	orders, err := o.orderRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

func (o *OrderUseCase) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	const op = "OrderUseCase.GetOrder"

	order, err := o.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return order, nil
}

// PlaceOrder оформляет заказ: сумма считается из цен товаров на момент
// создания, запись заказа и outbox-событие фиксируются одной транзакцией.
func (o *OrderUseCase) PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error) {
	const op = "OrderUseCase.PlaceOrder"

	if err := o.validateOrder(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err := o.userRepo.GetByID(ctx, req.UserID); err != nil {
		return nil, e.Wrap(op, err)
	}

	ids := make([]int64, 0, len(req.Items))
	for _, item := range req.Items {
		ids = append(ids, item.ProductID)
	}

	infoRes, err := o.productsInfo.GetProductsInfo(ctx, NewGetProductsReq(ids))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if len(infoRes.NotFoundProducts) > 0 {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	priceByID := make(map[int64]int64, len(infoRes.Products))
	for _, info := range infoRes.Products {
		priceByID[info.ID] = info.Price
	}

	items := make([]domain.OrderItem, 0, len(req.Items))
	var totalPrice int64
	for _, item := range req.Items {
		totalPrice += priceByID[item.ProductID] * int64(item.Quantity)
		items = append(items, domain.NewOrderItem(item.ProductID, item.Quantity))
	}

	order := domain.NewOrder(
		req.UserID,
		items,
		req.ShippingAddress1,
		req.ShippingAddress2,
		req.City,
		req.Zip,
		req.Country,
		req.Phone,
	)
	order.TotalPrice = totalPrice

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := o.orderRepo.Create(ctx, order)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.createEvent(ctx, OrderCreated, created); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// UpdateOrderStatus меняет только статус заказа и пишет outbox-событие
// в той же транзакции.
func (o *OrderUseCase) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	const op = "OrderUseCase.UpdateOrderStatus"

	orderStatus := domain.OrderStatus(status)
	if !orderStatus.Valid() {
		return nil, e.Wrap(op, e.ErrInvalidOrderStatus)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, o.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := o.orderRepo.UpdateStatus(ctx, id, orderStatus)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if _, err = o.createEvent(ctx, OrderStatusChanged, updated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// DeleteOrder удаляет заказ и пытается зачистить его позиции.
// Зачистка нетранзакционна: ее сбой логируется, но удаление считается успешным.
func (o *OrderUseCase) DeleteOrder(ctx context.Context, id int64) error {
	const op = "OrderUseCase.DeleteOrder"

	if err := o.orderRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := o.orderRepo.DeleteItems(ctx, id); err != nil {
		o.logger.Warnf("Failed to clean up order items. order_id: %d, error: %v", id, e.Wrap(op, err))
	}

	return nil
}

func (o *OrderUseCase) CountOrders(ctx context.Context) (int64, error) {
	const op = "OrderUseCase.CountOrders"

	count, err := o.orderRepo.Count(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return count, nil
}

func (o *OrderUseCase) TotalSales(ctx context.Context) (int64, error) {
	const op = "OrderUseCase.TotalSales"

	total, err := o.orderRepo.TotalSales(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return total, nil
}

func (o *OrderUseCase) UserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	const op = "OrderUseCase.UserOrders"

	orders, err := o.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return orders, nil
}

// createEvent кладет событие заказа в outbox внутри текущей транзакции.
func (o *OrderUseCase) createEvent(ctx context.Context, eventType OutboxEventType, order *domain.Order) (*OutboxEvent, error) {
	eventID := uuid.NewString()

	payload, err := json.Marshal(orderEventPayload{
		EventID:    eventID,
		EventType:  string(eventType),
		OrderID:    order.ID,
		UserID:     order.UserID,
		Status:     string(order.Status),
		TotalPrice: order.TotalPrice,
		OccurredAt: time.Now().UnixNano(),
	})
	if err != nil {
		return nil, err
	}

	return o.outboxRepo.Create(ctx, &OutboxEvent{
		EventID:   eventID,
		EventType: eventType,
		OrderID:   order.ID,
		Payload:   payload,
		Status:    Pending,
		CreatedAt: time.Now(),
	})
}

// validateOrder проверяет позиции заказа до обращения к хранилищу.
func (o *OrderUseCase) validateOrder(req *PlaceOrderReq) error {
	if len(req.Items) == 0 {
		return e.ErrOrderWithoutItems
	}

	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return e.ErrQuantityMustBePositive
		}
	}

	return nil
}
