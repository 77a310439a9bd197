package domain

import "time"

// OrderStatus — статус заказа из фиксированного набора значений.
type OrderStatus string

const (
	StatusPending    OrderStatus = "pending"
	StatusProcessing OrderStatus = "processing"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// Valid сообщает, входит ли статус в допустимый набор.
func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Order описывает заказ пользователя.
// TotalPrice вычисляется при создании из позиций и цен товаров на тот момент.
type Order struct {
	ID               int64
	UserID           int64
	Items            []OrderItem
	ShippingAddress1 string
	ShippingAddress2 string
	City             string
	Zip              string
	Country          string
	Phone            string
	Status           OrderStatus
	TotalPrice       int64 // в копейках
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// OrderItem — позиция заказа.
type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int32
}

func NewOrder(userID int64, items []OrderItem, address1, address2, city, zip, country, phone string) *Order {
	return &Order{
		UserID:           userID,
		Items:            items,
		ShippingAddress1: address1,
		ShippingAddress2: address2,
		City:             city,
		Zip:              zip,
		Country:          country,
		Phone:            phone,
		Status:           StatusPending,
	}
}

func NewOrderItem(productID int64, quantity int32) OrderItem {
	return OrderItem{
		ProductID: productID,
		Quantity:  quantity,
	}
}
