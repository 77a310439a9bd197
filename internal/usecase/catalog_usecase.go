package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
)

// CatalogUseCase реализует бизнес-логику каталога: категории и товары.
type CatalogUseCase struct {
	categoryRepo CategoryRepository
	productRepo  ProductRepository
	cacheRepo    CacheRepository
	imagesInfra  ImagesInfra
	logger       logger.Logger
}

func NewCatalogUC(
	categoryRepo CategoryRepository,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	imagesInfra ImagesInfra,
	logger logger.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
		cacheRepo:    cacheRepo,
		imagesInfra:  imagesInfra,
		logger:       logger,
	}
}

// CATEGORIES

func (c *CatalogUseCase) ListCategories(ctx context.Context) ([]domain.Category, error) {
	const op = "CatalogUseCase.ListCategories"

	categories, err := c.categoryRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}

func (c *CatalogUseCase) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	const op = "CatalogUseCase.GetCategory"

	category, err := c.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

func (c *CatalogUseCase) CreateCategory(ctx context.Context, req *CategoryReq) (*domain.Category, error) {
	const op = "CatalogUseCase.CreateCategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	category, err := c.categoryRepo.Create(ctx, domain.NewCategory(req.Name, req.Icon, req.Color, req.Image))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return category, nil
}

// UpdateCategory полностью заменяет поля категории значениями запроса.
func (c *CatalogUseCase) UpdateCategory(ctx context.Context, id int64, req *CategoryReq) (*domain.Category, error) {
	const op = "CatalogUseCase.UpdateCategory"

	if strings.TrimSpace(req.Name) == "" {
		return nil, e.Wrap(op, e.ErrNameRequired)
	}

	category := domain.NewCategory(req.Name, req.Icon, req.Color, req.Image)
	category.ID = id

	updated, err := c.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

func (c *CatalogUseCase) DeleteCategory(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteCategory"

	if err := c.categoryRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	return nil
}

// PRODUCTS

func (c *CatalogUseCase) ListProducts(ctx context.Context, req *ListProductsReq) ([]domain.Product, error) {
	const op = "CatalogUseCase.ListProducts"

	products, err := c.productRepo.List(ctx, req.CategoryIDs)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

func (c *CatalogUseCase) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := c.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// CreateProduct создает товар. Категория должна существовать,
// остаток и цена проверяются до обращения к хранилищу.
func (c *CatalogUseCase) CreateProduct(ctx context.Context, req *ProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.CreateProduct"

	if err := c.validateProduct(ctx, req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productRepo.Create(ctx, c.productFromReq(req))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// UpdateProduct полностью заменяет поля товара значениями запроса.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, id int64, req *ProductReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UpdateProduct"

	if err := c.validateProduct(ctx, req); err != nil {
		return nil, e.Wrap(op, err)
	}

	product := c.productFromReq(req)
	product.ID = id

	updated, err := c.productRepo.Update(ctx, product)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Устаревшие данные товара убираются из кэша
	if err := c.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return updated, nil
}

func (c *CatalogUseCase) DeleteProduct(ctx context.Context, id int64) error {
	const op = "CatalogUseCase.DeleteProduct"

	if err := c.productRepo.Delete(ctx, id); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cacheRepo.DeleteProducts(ctx, []int64{id}); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return nil
}

func (c *CatalogUseCase) CountProducts(ctx context.Context) (int64, error) {
	const op = "CatalogUseCase.CountProducts"

	count, err := c.productRepo.Count(ctx)
	if err != nil {
		return 0, e.Wrap(op, err)
	}

	return count, nil
}

func (c *CatalogUseCase) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	const op = "CatalogUseCase.FeaturedProducts"

	if limit <= 0 {
		return nil, e.Wrap(op, e.ErrStatusBadRequest)
	}

	products, err := c.productRepo.Featured(ctx, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// UploadGalleryImages загружает изображения галереи в MinIO и привязывает
// их ключи к товару. При ошибке сохранения загруженные объекты зачищаются.
func (c *CatalogUseCase) UploadGalleryImages(ctx context.Context, req *UploadGalleryReq) (*domain.Product, error) {
	const op = "CatalogUseCase.UploadGalleryImages"

	if len(req.Images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}

	if _, err := c.productRepo.GetByID(ctx, req.ProductID); err != nil {
		return nil, e.Wrap(op, err)
	}

	imagesRes, err := c.imagesInfra.UploadImages(ctx, NewUploadImagesReq(req.ProductID, req.Images))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	product, err := c.productRepo.SetGallery(ctx, req.ProductID, imagesRes.ImagesKeys)
	if err != nil {
		c.logger.Warnf(
			"Cleaning up orphaned gallery images. product_id: %d, error: %v",
			req.ProductID,
			e.Wrap(op, err),
		)
		c.imagesInfra.CleanupImages(imagesRes.ImagesKeys)

		return nil, e.Wrap(op, err)
	}

	if err := c.cacheRepo.DeleteProducts(ctx, []int64{req.ProductID}); err != nil {
		c.logger.Warnf("Failed to invalidate product cache: %v", e.Wrap(op, err))
	}

	return product, nil
}

// GetProductsInfo возвращает информацию о товарах по их идентификаторам.
// Сначала опрашивается кэш, промахи читаются из БД и фоном дозаписываются в кэш.
func (c *CatalogUseCase) GetProductsInfo(ctx context.Context, req *GetProductsReq) (*GetProductsRes, error) {
	const op = "CatalogUseCase.GetProductsInfo"

	if len(req.IDs) == 0 {
		return nil, e.Wrap(op, e.ErrProductNotFound)
	}

	cacheProductsMap, err := c.cacheRepo.GetProducts(ctx, req.IDs)
	var nonCacheable []int64
	if err != nil {
		nonCacheable = append(nonCacheable, req.IDs...)
	} else {
		for _, productID := range req.IDs {
			if _, ok := cacheProductsMap[productID]; !ok {
				nonCacheable = append(nonCacheable, productID)
			}
		}
	}

	var productsInfoFromDB []ProductInfo
	if len(nonCacheable) > 0 {
		productsInfoFromDB, err = c.productRepo.GetProductsInfo(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		// Фоновое добавление товаров в кэш
		go func() {
			bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
			defer cancel()

			if err := c.cacheRepo.SetProducts(bgCtx, productsInfoFromDB); err != nil {
				c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
			}
		}()
	}

	dbProductsMap := make(map[int64]ProductInfo, len(productsInfoFromDB))
	for _, productInfo := range productsInfoFromDB {
		dbProductsMap[productInfo.ID] = productInfo
	}

	result := make([]ProductInfo, 0, len(req.IDs))
	notFoundProducts := make([]int64, 0)
	for _, id := range req.IDs {
		if pr, ok := cacheProductsMap[id]; ok {
			result = append(result, pr)
		} else if pr, ok := dbProductsMap[id]; ok {
			result = append(result, pr)
		} else {
			notFoundProducts = append(notFoundProducts, id)
		}
	}

	return NewGetProductsRes(result, notFoundProducts), nil
}

// validateProduct проверяет корректность входных данных запроса на создание товара.
func (c *CatalogUseCase) validateProduct(ctx context.Context, req *ProductReq) error {
	if strings.TrimSpace(req.Name) == "" {
		return e.ErrNameRequired
	}

	if req.Price <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.Stock < domain.MinStock || req.Stock > domain.MaxStock {
		return e.ErrStockOutOfRange
	}

	exists, err := c.categoryRepo.Exists(ctx, req.CategoryID)
	if err != nil {
		return err
	}
	if !exists {
		return e.ErrCategoryNotFound
	}

	return nil
}

func (c *CatalogUseCase) productFromReq(req *ProductReq) *domain.Product {
	return domain.NewProduct(
		req.Name,
		req.Description,
		req.Brand,
		req.Image,
		req.Price,
		req.CategoryID,
		req.Stock,
		req.Rating,
		req.NumReviews,
		req.IsFeatured,
	)
}
