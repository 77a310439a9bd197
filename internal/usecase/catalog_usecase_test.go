package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogUC(
	categoryRepo *fakeCategoryRepo,
	productRepo *fakeProductRepo,
	cacheRepo *fakeCacheRepo,
) *usecase.CatalogUseCase {
	return usecase.NewCatalogUC(categoryRepo, productRepo, cacheRepo, &fakeImagesInfra{}, nopLogger{})
}

func TestListProducts_EmptyCatalog(t *testing.T) {
	uc := newCatalogUC(newFakeCategoryRepo(), newFakeProductRepo(), newFakeCacheRepo())

	products, err := uc.ListProducts(context.Background(), &usecase.ListProductsReq{})

	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestGetProduct_Unknown(t *testing.T) {
	uc := newCatalogUC(newFakeCategoryRepo(), newFakeProductRepo(), newFakeCacheRepo())

	_, err := uc.GetProduct(context.Background(), 42)

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestCreateProduct_UnknownCategoryRejected(t *testing.T) {
	productRepo := newFakeProductRepo()
	uc := newCatalogUC(newFakeCategoryRepo(), productRepo, newFakeCacheRepo())

	_, err := uc.CreateProduct(context.Background(), &usecase.ProductReq{
		Name:       "Smartphone",
		Price:      59999,
		CategoryID: 7,
		Stock:      10,
	})

	assert.ErrorIs(t, err, e.ErrCategoryNotFound)
	assert.Empty(t, productRepo.created, "product must be rejected before persistence")
}

func TestCreateProduct_Validation(t *testing.T) {
	category := domain.NewCategory("Electronics", "", "", "")
	category.ID = 1

	tests := []struct {
		name    string
		req     *usecase.ProductReq
		wantErr error
	}{
		{
			name:    "empty name",
			req:     &usecase.ProductReq{Name: "  ", Price: 100, CategoryID: 1, Stock: 1},
			wantErr: e.ErrNameRequired,
		},
		{
			name:    "zero price",
			req:     &usecase.ProductReq{Name: "TV", Price: 0, CategoryID: 1, Stock: 1},
			wantErr: e.ErrPriceMustBePositive,
		},
		{
			name:    "negative stock",
			req:     &usecase.ProductReq{Name: "TV", Price: 100, CategoryID: 1, Stock: -1},
			wantErr: e.ErrStockOutOfRange,
		},
		{
			name:    "stock above limit",
			req:     &usecase.ProductReq{Name: "TV", Price: 100, CategoryID: 1, Stock: 256},
			wantErr: e.ErrStockOutOfRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newCatalogUC(newFakeCategoryRepo(category), newFakeProductRepo(), newFakeCacheRepo())

			_, err := uc.CreateProduct(context.Background(), tt.req)

			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateProduct_StockBounds(t *testing.T) {
	category := domain.NewCategory("Electronics", "", "", "")
	category.ID = 1

	uc := newCatalogUC(newFakeCategoryRepo(category), newFakeProductRepo(), newFakeCacheRepo())

	for _, stock := range []int32{0, 255} {
		_, err := uc.CreateProduct(context.Background(), &usecase.ProductReq{
			Name:       "TV",
			Price:      100,
			CategoryID: 1,
			Stock:      stock,
		})
		assert.NoError(t, err, "stock %d is within bounds", stock)
	}
}

func TestUpdateProduct_InvalidatesCache(t *testing.T) {
	category := domain.NewCategory("Electronics", "", "", "")
	category.ID = 1

	product := domain.NewProduct("TV", "", "", "", 100, 1, 5, 0, 0, false)
	product.ID = 3

	cacheRepo := newFakeCacheRepo()
	uc := newCatalogUC(newFakeCategoryRepo(category), newFakeProductRepo(product), cacheRepo)

	_, err := uc.UpdateProduct(context.Background(), 3, &usecase.ProductReq{
		Name:       "TV 4K",
		Price:      200,
		CategoryID: 1,
		Stock:      5,
	})

	require.NoError(t, err)
	assert.Contains(t, cacheRepo.deleted, int64(3))
}

func TestGetProductsInfo_CacheMissFallsBackToDB(t *testing.T) {
	productRepo := newFakeProductRepo()
	productRepo.infos[1] = usecase.NewProductInfo(1, "TV", "Electronics", 59999)

	cacheRepo := newFakeCacheRepo()
	cacheRepo.products[2] = usecase.NewProductInfo(2, "Phone", "Electronics", 29999)

	uc := newCatalogUC(newFakeCategoryRepo(), productRepo, cacheRepo)

	res, err := uc.GetProductsInfo(context.Background(), usecase.NewGetProductsReq([]int64{1, 2, 3}))

	require.NoError(t, err)
	require.Len(t, res.Products, 2)
	assert.Equal(t, []int64{3}, res.NotFoundProducts)

	// Фоновая дозапись кэша
	assert.Eventually(t, func() bool {
		return len(cacheRepo.setCalls) > 0
	}, time.Second, 10*time.Millisecond)
}

func TestUploadGalleryImages_CleanupOnSaveFailure(t *testing.T) {
	infra := &fakeImagesInfra{}
	productRepo := newFakeProductRepo()
	uc := usecase.NewCatalogUC(newFakeCategoryRepo(), productRepo, newFakeCacheRepo(), infra, nopLogger{})

	_, err := uc.UploadGalleryImages(context.Background(), &usecase.UploadGalleryReq{
		ProductID: 99,
		Images:    []usecase.ProductImage{{Data: []byte{1}, MimeType: "image/png"}},
	})

	assert.ErrorIs(t, err, e.ErrProductNotFound)
	assert.Empty(t, infra.uploaded, "nothing must be uploaded for a missing product")
}
