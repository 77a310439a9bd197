package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderUC(
	orderRepo *fakeOrderRepo,
	outboxRepo *fakeOutboxRepo,
	infos map[int64]usecase.ProductInfo,
	userRepo *fakeUserRepo,
) *usecase.OrderUseCase {
	return usecase.NewOrderUC(
		orderRepo,
		outboxRepo,
		&fakeInfoProvider{infos: infos},
		userRepo,
		newFakeTxDB(),
		nopLogger{},
	)
}

func testUser(id int64) *domain.User {
	u := domain.NewUser("Customer", "customer@example.com", "hash", "", false, "", "", "", "", "")
	u.ID = id
	return u
}

func TestPlaceOrder_TotalPriceFromCurrentPrices(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	outboxRepo := &fakeOutboxRepo{}
	infos := map[int64]usecase.ProductInfo{
		1: usecase.NewProductInfo(1, "TV", "Electronics", 59999),
		2: usecase.NewProductInfo(2, "Phone", "Electronics", 29999),
	}

	uc := newOrderUC(orderRepo, outboxRepo, infos, newFakeUserRepo(testUser(10)))

	order, err := uc.PlaceOrder(context.Background(), &usecase.PlaceOrderReq{
		UserID: 10,
		Items: []usecase.OrderItemReq{
			{ProductID: 1, Quantity: 2},
			{ProductID: 2, Quantity: 3},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(2*59999+3*29999), order.TotalPrice)
	assert.Equal(t, domain.StatusPending, order.Status)
	require.Len(t, order.Items, 2)
}

func TestPlaceOrder_WritesOutboxEvent(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	outboxRepo := &fakeOutboxRepo{}
	infos := map[int64]usecase.ProductInfo{
		1: usecase.NewProductInfo(1, "TV", "Electronics", 100),
	}

	uc := newOrderUC(orderRepo, outboxRepo, infos, newFakeUserRepo(testUser(10)))

	order, err := uc.PlaceOrder(context.Background(), &usecase.PlaceOrderReq{
		UserID: 10,
		Items:  []usecase.OrderItemReq{{ProductID: 1, Quantity: 1}},
	})

	require.NoError(t, err)
	require.Len(t, outboxRepo.events, 1)

	event := outboxRepo.events[0]
	assert.Equal(t, usecase.OrderCreated, event.EventType)
	assert.Equal(t, order.ID, event.OrderID)
	assert.Equal(t, usecase.Pending, event.Status)
	assert.NotEmpty(t, event.EventID)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(event.Payload, &payload))
	assert.Equal(t, string(usecase.OrderCreated), payload["event_type"])
}

func TestPlaceOrder_UnknownProduct(t *testing.T) {
	uc := newOrderUC(newFakeOrderRepo(), &fakeOutboxRepo{}, nil, newFakeUserRepo(testUser(10)))

	_, err := uc.PlaceOrder(context.Background(), &usecase.PlaceOrderReq{
		UserID: 10,
		Items:  []usecase.OrderItemReq{{ProductID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestPlaceOrder_UnknownUser(t *testing.T) {
	uc := newOrderUC(newFakeOrderRepo(), &fakeOutboxRepo{}, nil, newFakeUserRepo())

	_, err := uc.PlaceOrder(context.Background(), &usecase.PlaceOrderReq{
		UserID: 10,
		Items:  []usecase.OrderItemReq{{ProductID: 1, Quantity: 1}},
	})

	assert.ErrorIs(t, err, e.ErrUserNotFound)
}

func TestPlaceOrder_Validation(t *testing.T) {
	uc := newOrderUC(newFakeOrderRepo(), &fakeOutboxRepo{}, nil, newFakeUserRepo(testUser(10)))

	_, err := uc.PlaceOrder(context.Background(), &usecase.PlaceOrderReq{UserID: 10})
	assert.ErrorIs(t, err, e.ErrOrderWithoutItems)

	_, err = uc.PlaceOrder(context.Background(), &usecase.PlaceOrderReq{
		UserID: 10,
		Items:  []usecase.OrderItemReq{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, e.ErrQuantityMustBePositive)
}

func TestUpdateOrderStatus_InvalidStatus(t *testing.T) {
	uc := newOrderUC(newFakeOrderRepo(), &fakeOutboxRepo{}, nil, newFakeUserRepo())

	_, err := uc.UpdateOrderStatus(context.Background(), 1, "teleported")

	assert.ErrorIs(t, err, e.ErrInvalidOrderStatus)
}

func TestUpdateOrderStatus_WritesOutboxEvent(t *testing.T) {
	order := domain.NewOrder(10, nil, "", "", "", "", "", "")
	order.ID = 5

	outboxRepo := &fakeOutboxRepo{}
	uc := newOrderUC(newFakeOrderRepo(order), outboxRepo, nil, newFakeUserRepo())

	updated, err := uc.UpdateOrderStatus(context.Background(), 5, "shipped")

	require.NoError(t, err)
	assert.Equal(t, domain.StatusShipped, updated.Status)
	require.Len(t, outboxRepo.events, 1)
	assert.Equal(t, usecase.OrderStatusChanged, outboxRepo.events[0].EventType)
}

func TestDeleteOrder_ItemCleanupIsBestEffort(t *testing.T) {
	order := domain.NewOrder(10, nil, "", "", "", "", "", "")
	order.ID = 5

	orderRepo := newFakeOrderRepo(order)
	orderRepo.deleteItemErr = errors.New("items table unavailable")

	uc := newOrderUC(orderRepo, &fakeOutboxRepo{}, nil, newFakeUserRepo())

	err := uc.DeleteOrder(context.Background(), 5)

	assert.NoError(t, err, "item cleanup failure must not fail the delete")
	_, err = orderRepo.GetByID(context.Background(), 5)
	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestDeleteOrder_Unknown(t *testing.T) {
	uc := newOrderUC(newFakeOrderRepo(), &fakeOutboxRepo{}, nil, newFakeUserRepo())

	err := uc.DeleteOrder(context.Background(), 404)

	assert.ErrorIs(t, err, e.ErrOrderNotFound)
}

func TestTotalSales_SumsAllOrders(t *testing.T) {
	first := domain.NewOrder(1, nil, "", "", "", "", "", "")
	first.ID = 1
	first.TotalPrice = 100

	second := domain.NewOrder(2, nil, "", "", "", "", "", "")
	second.ID = 2
	second.TotalPrice = 250

	uc := newOrderUC(newFakeOrderRepo(first, second), &fakeOutboxRepo{}, nil, newFakeUserRepo())

	total, err := uc.TotalSales(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(350), total)
}
