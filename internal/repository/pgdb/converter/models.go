package converter

import (
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
)

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	Icon      string     `db:"icon"`
	Color     string     `db:"color"`
	Image     string     `db:"image"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description string     `db:"description"`
	Brand       string     `db:"brand"`
	Image       string     `db:"image"`
	Images      []string   `db:"images"`
	Price       int64      `db:"price"`
	CategoryID  int64      `db:"category_id"`
	Stock       int32      `db:"stock"`
	Rating      float64    `db:"rating"`
	NumReviews  int32      `db:"num_reviews"`
	IsFeatured  bool       `db:"is_featured"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// UserModel представляет запись таблицы users в PostgreSQL.
type UserModel struct {
	ID           int64     `db:"id"`
	Name         string    `db:"name"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Phone        string    `db:"phone"`
	IsAdmin      bool      `db:"is_admin"`
	Street       string    `db:"street"`
	Apartment    string    `db:"apartment"`
	Zip          string    `db:"zip"`
	City         string    `db:"city"`
	Country      string    `db:"country"`
	CreatedAt    time.Time `db:"created_at"`
}

// OrderModel представляет запись таблицы orders в PostgreSQL.
type OrderModel struct {
	ID               int64              `db:"id"`
	UserID           int64              `db:"user_id"`
	ShippingAddress1 string             `db:"shipping_address1"`
	ShippingAddress2 string             `db:"shipping_address2"`
	City             string             `db:"city"`
	Zip              string             `db:"zip"`
	Country          string             `db:"country"`
	Phone            string             `db:"phone"`
	Status           domain.OrderStatus `db:"status"`
	TotalPrice       int64              `db:"total_price"`
	CreatedAt        time.Time          `db:"created_at"`
	UpdatedAt        *time.Time         `db:"updated_at"`
}

// OrderItemModel представляет запись таблицы order_items в PostgreSQL.
type OrderItemModel struct {
	ID        int64 `db:"id"`
	OrderID   int64 `db:"order_id"`
	ProductID int64 `db:"product_id"`
	Quantity  int32 `db:"quantity"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64                   `db:"id"`
	EventID     string                  `db:"event_id"`
	EventType   usecase.OutboxEventType `db:"event_type"`
	OrderID     int64                   `db:"order_id"`
	Payload     []byte                  `db:"payload"`
	Status      usecase.OutboxStatus    `db:"status"`
	CreatedAt   time.Time               `db:"created_at"`
	ProcessedAt *time.Time              `db:"processed_at"`
}
