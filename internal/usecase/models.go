package usecase

import "time"

// CATALOG USECASE

// CategoryReq — запрос на создание либо полную замену категории.
type CategoryReq struct {
	Name  string
	Icon  string
	Color string
	Image string
}

// ProductReq — запрос на создание либо полную замену товара.
type ProductReq struct {
	Name        string
	Description string
	Brand       string
	Image       string
	Price       int64
	CategoryID  int64
	Stock       int32
	Rating      float64
	NumReviews  int32
	IsFeatured  bool
}

// ListProductsReq — параметры выборки каталога.
type ListProductsReq struct {
	CategoryIDs []int64
}

// ProductImage представляет изображение, загруженное через multipart/form-data.
type ProductImage struct {
	Data     []byte // байты изображения
	MimeType string // Content-Type из multipart (image/jpeg)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// UploadGalleryReq — запрос на загрузку галереи товара.
type UploadGalleryReq struct {
	ProductID int64
	Images    []ProductImage
}

// GetProductsReq запрос информации о товарах по их идентификаторам.
type GetProductsReq struct {
	IDs []int64
}

// GetProductsRes — ответ с данными запрошенных товаров.
type GetProductsRes struct {
	Products         []ProductInfo
	NotFoundProducts []int64
}

// ProductInfo — DTO с информацией о товаре для внешнего использования.
type ProductInfo struct {
	ID           int64
	Name         string
	CategoryName string
	Price        int64
}

// ORDER USECASE

// OrderItemReq — позиция в запросе на оформление заказа.
type OrderItemReq struct {
	ProductID int64
	Quantity  int32
}

// PlaceOrderReq — запрос на оформление заказа.
type PlaceOrderReq struct {
	UserID           int64
	Items            []OrderItemReq
	ShippingAddress1 string
	ShippingAddress2 string
	City             string
	Zip              string
	Country          string
	Phone            string
}

// USER USECASE

// CreateUserReq — запрос на создание пользователя.
// IsAdmin учитывается только при административном создании.
type CreateUserReq struct {
	Name      string
	Email     string
	Password  string
	Phone     string
	IsAdmin   bool
	Street    string
	Apartment string
	Zip       string
	City      string
	Country   string
}

// LoginReq — запрос на вход по учетным данным.
type LoginReq struct {
	Email    string
	Password string
}

// LoginRes — результат входа: подписанный токен.
type LoginRes struct {
	UserID int64
	Email  string
	Token  string
}

// OUTBOX

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

type OutboxEventType string

const (
	OrderCreated       OutboxEventType = "order.created"
	OrderStatusChanged OutboxEventType = "order.status_changed"
)

// OutboxEvent — событие заказа, ожидающее публикации в Kafka.
type OutboxEvent struct {
	ID          int64
	EventID     string
	EventType   OutboxEventType
	OrderID     int64
	Payload     []byte
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

// INFRASTRUCTURE

type WriteRawMessageReq struct {
	OrderID int64
	Payload []byte
}

// UploadImagesReq — запрос на загрузку изображений товара.
type UploadImagesReq struct {
	ProductID int64
	Images    []ProductImage
}

// UploadImagesRes — результат загрузки изображений (ключи в MinIO).
type UploadImagesRes struct {
	ImagesKeys []string
}

// MAPPERS

func NewProductInfo(id int64, name string, category string, price int64) ProductInfo {
	return ProductInfo{
		ID:           id,
		Name:         name,
		CategoryName: category,
		Price:        price,
	}
}

func NewProductImage(data []byte, mimeType string, size int64, name string) *ProductImage {
	return &ProductImage{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewGetProductsReq(ids []int64) *GetProductsReq {
	return &GetProductsReq{ids}
}

func NewGetProductsRes(products []ProductInfo, notFoundProducts []int64) *GetProductsRes {
	return &GetProductsRes{
		Products:         products,
		NotFoundProducts: notFoundProducts,
	}
}

func NewUploadImagesReq(productID int64, images []ProductImage) *UploadImagesReq {
	return &UploadImagesReq{
		ProductID: productID,
		Images:    images,
	}
}

func NewUploadImagesRes(imagesKeys []string) *UploadImagesRes {
	return &UploadImagesRes{
		ImagesKeys: imagesKeys,
	}
}

func NewWriteRawMessageReq(orderID int64, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		OrderID: orderID,
		Payload: payload,
	}
}
