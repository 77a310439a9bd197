package http

import (
	"net/http"

	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
)

type OrderHandler struct {
	orderUsecase usecase.OrderUC
	logger       logger.Logger
}

func NewOrderHandler(orderUsecase usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUsecase: orderUsecase, logger: logger}
}

// listOrders
//
//	@Summary		Список заказов
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		OrderResponse
//	@Failure		401	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders [get]
func (h *OrderHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orderUsecase.ListOrders(r.Context())
	if err != nil {
		h.logger.Warnf("list orders: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponses(orders))
}

// getOrder
//
//	@Summary		Заказ по идентификатору
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор заказа"
//	@Success		200	{object}	OrderResponse
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/{id} [get]
func (h *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.GetOrder(r.Context(), id)
	if err != nil {
		h.logger.Warnf("get order %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// placeOrder
//
//	@Summary		Оформление заказа
//	@Description	Создает заказ; итоговая сумма считается из актуальных цен товаров
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			order	body		OrderRequest	true	"Заказ"
//	@Success		201		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders [post]
func (h *OrderHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	var req OrderRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	items := make([]usecase.OrderItemReq, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemReq{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orderUsecase.PlaceOrder(r.Context(), &usecase.PlaceOrderReq{
		UserID:           req.UserID,
		Items:            items,
		ShippingAddress1: req.ShippingAddress1,
		ShippingAddress2: req.ShippingAddress2,
		City:             req.City,
		Zip:              req.Zip,
		Country:          req.Country,
		Phone:            req.Phone,
	})
	if err != nil {
		h.logger.Warnf("place order: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toOrderResponse(order))
}

// updateOrderStatus
//
//	@Summary		Смена статуса заказа
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int					true	"Идентификатор заказа"
//	@Param			status	body		OrderStatusRequest	true	"Новый статус"
//	@Success		200		{object}	OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/{id} [put]
func (h *OrderHandler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req OrderStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	order, err := h.orderUsecase.UpdateOrderStatus(r.Context(), id, req.Status)
	if err != nil {
		h.logger.Warnf("update order %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponse(order))
}

// deleteOrder
//
//	@Summary		Удаление заказа
//	@Description	Удаляет заказ; позиции заказа вычищаются по возможности
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор заказа"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/{id} [delete]
func (h *OrderHandler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.orderUsecase.DeleteOrder(r.Context(), id); err != nil {
		h.logger.Warnf("delete order %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

// countOrders
//
//	@Summary		Количество заказов
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	CountResponse
//	@Security		BearerAuth
//	@Router			/orders/get/count [get]
func (h *OrderHandler) countOrders(w http.ResponseWriter, r *http.Request) {
	count, err := h.orderUsecase.CountOrders(r.Context())
	if err != nil {
		h.logger.Warnf("count orders: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CountResponse{Count: count})
}

// totalSales
//
//	@Summary		Суммарная выручка
//	@Tags			orders
//	@Produce		json
//	@Success		200	{object}	TotalSalesResponse
//	@Security		BearerAuth
//	@Router			/orders/get/totalsales [get]
func (h *OrderHandler) totalSales(w http.ResponseWriter, r *http.Request) {
	total, err := h.orderUsecase.TotalSales(r.Context())
	if err != nil {
		h.logger.Warnf("total sales: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &TotalSalesResponse{TotalSales: centsToPrice(total)})
}

// userOrders
//
//	@Summary		Заказы пользователя
//	@Tags			orders
//	@Produce		json
//	@Param			userid	path		int	true	"Идентификатор пользователя"
//	@Success		200		{array}		OrderResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/orders/get/userorders/{userid} [get]
func (h *OrderHandler) userOrders(w http.ResponseWriter, r *http.Request) {
	userID, err := parseID(r, "userid")
	if err != nil {
		WriteError(w, err)
		return
	}

	orders, err := h.orderUsecase.UserOrders(r.Context(), userID)
	if err != nil {
		h.logger.Warnf("user orders %d: %s", userID, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toOrderResponses(orders))
}
