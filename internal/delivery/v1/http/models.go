package http

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
)

// CategoryRequest — тело запроса на создание либо полную замену категории.
type CategoryRequest struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
	Image string `json:"image"`
}

// CategoryResponse — категория в представлении API.
type CategoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
	Image string `json:"image,omitempty"`
}

// ProductRequest — тело запроса на создание либо полную замену товара.
// Цена передается строкой либо числом вида "599.99".
type ProductRequest struct {
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Brand       string      `json:"brand"`
	Image       string      `json:"image"`
	Price       json.Number `json:"price"`
	CategoryID  int64       `json:"category_id"`
	Stock       int32       `json:"stock"`
	Rating      float64     `json:"rating"`
	NumReviews  int32       `json:"num_reviews"`
	IsFeatured  bool        `json:"is_featured"`
}

// ProductResponse — товар в представлении API. Цена отдается строкой "599.99".
type ProductResponse struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Brand       string     `json:"brand,omitempty"`
	Image       string     `json:"image,omitempty"`
	Images      []string   `json:"images,omitempty"`
	Price       string     `json:"price"`
	CategoryID  int64      `json:"category_id"`
	Stock       int32      `json:"stock"`
	Rating      float64    `json:"rating"`
	NumReviews  int32      `json:"num_reviews"`
	IsFeatured  bool       `json:"is_featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

// UserRequest — тело запроса на создание пользователя.
type UserRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
	IsAdmin   bool   `json:"is_admin"`
	Street    string `json:"street"`
	Apartment string `json:"apartment"`
	Zip       string `json:"zip"`
	City      string `json:"city"`
	Country   string `json:"country"`
}

// UserResponse — пользователь в представлении API. Хэш пароля наружу не отдается.
type UserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone,omitempty"`
	IsAdmin   bool      `json:"is_admin"`
	Street    string    `json:"street,omitempty"`
	Apartment string    `json:"apartment,omitempty"`
	Zip       string    `json:"zip,omitempty"`
	City      string    `json:"city,omitempty"`
	Country   string    `json:"country,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest — тело запроса на вход.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse — результат входа.
type LoginResponse struct {
	UserID int64  `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// OrderItemRequest — позиция в запросе на оформление заказа.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// OrderRequest — тело запроса на оформление заказа.
type OrderRequest struct {
	UserID           int64              `json:"user_id"`
	Items            []OrderItemRequest `json:"items"`
	ShippingAddress1 string             `json:"shipping_address1"`
	ShippingAddress2 string             `json:"shipping_address2"`
	City             string             `json:"city"`
	Zip              string             `json:"zip"`
	Country          string             `json:"country"`
	Phone            string             `json:"phone"`
}

// OrderStatusRequest — тело запроса на смену статуса заказа.
type OrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderItemResponse — позиция заказа в представлении API.
type OrderItemResponse struct {
	ID        int64 `json:"id"`
	ProductID int64 `json:"product_id"`
	Quantity  int32 `json:"quantity"`
}

// OrderResponse — заказ в представлении API.
type OrderResponse struct {
	ID               int64               `json:"id"`
	UserID           int64               `json:"user_id"`
	Items            []OrderItemResponse `json:"items"`
	ShippingAddress1 string              `json:"shipping_address1,omitempty"`
	ShippingAddress2 string              `json:"shipping_address2,omitempty"`
	City             string              `json:"city,omitempty"`
	Zip              string              `json:"zip,omitempty"`
	Country          string              `json:"country,omitempty"`
	Phone            string              `json:"phone,omitempty"`
	Status           string              `json:"status"`
	TotalPrice       string              `json:"total_price"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        *time.Time          `json:"updated_at,omitempty"`
}

// CountResponse — ответ счетных эндпоинтов.
type CountResponse struct {
	Count int64 `json:"count"`
}

// TotalSalesResponse — суммарная выручка по всем заказам, строкой "599.99".
type TotalSalesResponse struct {
	TotalSales string `json:"total_sales"`
}

func toCategoryResponse(c *domain.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:    c.ID,
		Name:  c.Name,
		Icon:  c.Icon,
		Color: c.Color,
		Image: c.Image,
	}
}

func toCategoryResponses(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		res = append(res, *toCategoryResponse(&categories[i]))
	}
	return res
}

func toProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Image:       p.Image,
		Images:      p.Images,
		Price:       centsToPrice(p.Price),
		CategoryID:  p.CategoryID,
		Stock:       p.Stock,
		Rating:      p.Rating,
		NumReviews:  p.NumReviews,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(products []domain.Product) []ProductResponse {
	res := make([]ProductResponse, 0, len(products))
	for i := range products {
		res = append(res, *toProductResponse(&products[i]))
	}
	return res
}

func toUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		IsAdmin:   u.IsAdmin,
		Street:    u.Street,
		Apartment: u.Apartment,
		Zip:       u.Zip,
		City:      u.City,
		Country:   u.Country,
		CreatedAt: u.CreatedAt,
	}
}

func toUserResponses(users []domain.User) []UserResponse {
	res := make([]UserResponse, 0, len(users))
	for i := range users {
		res = append(res, *toUserResponse(&users[i]))
	}
	return res
}

func toOrderResponse(o *domain.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	return &OrderResponse{
		ID:               o.ID,
		UserID:           o.UserID,
		Items:            items,
		ShippingAddress1: o.ShippingAddress1,
		ShippingAddress2: o.ShippingAddress2,
		City:             o.City,
		Zip:              o.Zip,
		Country:          o.Country,
		Phone:            o.Phone,
		Status:           string(o.Status),
		TotalPrice:       centsToPrice(o.TotalPrice),
		CreatedAt:        o.CreatedAt,
		UpdatedAt:        o.UpdatedAt,
	}
}

func toOrderResponses(orders []domain.Order) []OrderResponse {
	res := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		res = append(res, *toOrderResponse(&orders[i]))
	}
	return res
}
