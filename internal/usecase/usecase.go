package usecase

import (
	"context"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
)

type CatalogUC interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	GetCategory(ctx context.Context, id int64) (*domain.Category, error)
	CreateCategory(ctx context.Context, req *CategoryReq) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id int64, req *CategoryReq) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, req *ProductReq) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, req *ProductReq) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
	CountProducts(ctx context.Context) (int64, error)
	FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error)
	UploadGalleryImages(ctx context.Context, req *UploadGalleryReq) (*domain.Product, error)
	GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error)
}

type OrderUC interface {
	ListOrders(ctx context.Context) ([]domain.Order, error)
	GetOrder(ctx context.Context, id int64) (*domain.Order, error)
	PlaceOrder(ctx context.Context, req *PlaceOrderReq) (*domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	CountOrders(ctx context.Context) (int64, error)
	TotalSales(ctx context.Context) (int64, error)
	UserOrders(ctx context.Context, userID int64) ([]domain.Order, error)
}

type UserUC interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	CreateUser(ctx context.Context, req *CreateUserReq) (*domain.User, error)
	Register(ctx context.Context, req *CreateUserReq) (*domain.User, error)
	Login(ctx context.Context, req *LoginReq) (*LoginRes, error)
	DeleteUser(ctx context.Context, id int64) error
	CountUsers(ctx context.Context) (int64, error)
}
