package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/eshop-backend/internal/auth"
	"github.com/DRSN-tech/eshop-backend/internal/cfg"
	"github.com/DRSN-tech/eshop-backend/internal/domain"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeCatalogUC отдает заранее заданные ответы каталога.
type fakeCatalogUC struct {
	categories []domain.Category
	products   []domain.Product
	getErr     error
}

func (f *fakeCatalogUC) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

func (f *fakeCatalogUC) GetCategory(ctx context.Context, id int64) (*domain.Category, error) {
	for i := range f.categories {
		if f.categories[i].ID == id {
			return &f.categories[i], nil
		}
	}
	return nil, e.ErrCategoryNotFound
}

func (f *fakeCatalogUC) CreateCategory(ctx context.Context, req *usecase.CategoryReq) (*domain.Category, error) {
	c := domain.NewCategory(req.Name, req.Icon, req.Color, req.Image)
	c.ID = 1
	return c, nil
}

func (f *fakeCatalogUC) UpdateCategory(ctx context.Context, id int64, req *usecase.CategoryReq) (*domain.Category, error) {
	return nil, e.ErrCategoryNotFound
}

func (f *fakeCatalogUC) DeleteCategory(ctx context.Context, id int64) error {
	return e.ErrCategoryNotFound
}

func (f *fakeCatalogUC) ListProducts(ctx context.Context, req *usecase.ListProductsReq) ([]domain.Product, error) {
	return f.products, nil
}

func (f *fakeCatalogUC) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeCatalogUC) CreateProduct(ctx context.Context, req *usecase.ProductReq) (*domain.Product, error) {
	p := domain.NewProduct(req.Name, req.Description, req.Brand, req.Image, req.Price, req.CategoryID, req.Stock, req.Rating, req.NumReviews, req.IsFeatured)
	p.ID = 1
	return p, nil
}

func (f *fakeCatalogUC) UpdateProduct(ctx context.Context, id int64, req *usecase.ProductReq) (*domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (f *fakeCatalogUC) DeleteProduct(ctx context.Context, id int64) error { return nil }

func (f *fakeCatalogUC) CountProducts(ctx context.Context) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeCatalogUC) FeaturedProducts(ctx context.Context, limit int) ([]domain.Product, error) {
	return nil, nil
}

func (f *fakeCatalogUC) UploadGalleryImages(ctx context.Context, req *usecase.UploadGalleryReq) (*domain.Product, error) {
	return nil, e.ErrProductNotFound
}

func (f *fakeCatalogUC) GetProductsInfo(ctx context.Context, req *usecase.GetProductsReq) (*usecase.GetProductsRes, error) {
	return usecase.NewGetProductsRes(nil, req.IDs), nil
}

// fakeOrderUC покрывает только то, что нужно маршрутам в тестах.
type fakeOrderUC struct{}

func (fakeOrderUC) ListOrders(ctx context.Context) ([]domain.Order, error) { return nil, nil }
func (fakeOrderUC) GetOrder(ctx context.Context, id int64) (*domain.Order, error) {
	return nil, e.ErrOrderNotFound
}
func (fakeOrderUC) PlaceOrder(ctx context.Context, req *usecase.PlaceOrderReq) (*domain.Order, error) {
	return nil, e.ErrOrderWithoutItems
}
func (fakeOrderUC) UpdateOrderStatus(ctx context.Context, id int64, status string) (*domain.Order, error) {
	return nil, e.ErrInvalidOrderStatus
}
func (fakeOrderUC) DeleteOrder(ctx context.Context, id int64) error       { return nil }
func (fakeOrderUC) CountOrders(ctx context.Context) (int64, error)        { return 0, nil }
func (fakeOrderUC) TotalSales(ctx context.Context) (int64, error)         { return 0, nil }
func (fakeOrderUC) UserOrders(ctx context.Context, userID int64) ([]domain.Order, error) {
	return nil, nil
}

type fakeUserUC struct{}

func (fakeUserUC) ListUsers(ctx context.Context) ([]domain.User, error) { return nil, nil }
func (fakeUserUC) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	return nil, e.ErrUserNotFound
}
func (fakeUserUC) CreateUser(ctx context.Context, req *usecase.CreateUserReq) (*domain.User, error) {
	return nil, e.ErrMissingFields
}
func (fakeUserUC) Register(ctx context.Context, req *usecase.CreateUserReq) (*domain.User, error) {
	u := domain.NewUser(req.Name, req.Email, "hash", req.Phone, false, "", "", "", "", "")
	u.ID = 1
	return u, nil
}
func (fakeUserUC) Login(ctx context.Context, req *usecase.LoginReq) (*usecase.LoginRes, error) {
	return nil, e.ErrInvalidCredentials
}
func (fakeUserUC) DeleteUser(ctx context.Context, id int64) error  { return nil }
func (fakeUserUC) CountUsers(ctx context.Context) (int64, error)   { return 0, nil }

func setupRouter(t *testing.T, catalogUC usecase.CatalogUC) (*chi.Mux, *auth.JWTManager) {
	t.Helper()

	jwtManager := auth.NewJWTManager(&cfg.JWTCfg{
		Secret:   "test-secret",
		TokenTTL: time.Hour,
	})

	r := chi.NewRouter()
	router := NewRouter(r, nopLogger{})
	router.Init(catalogUC, fakeOrderUC{}, fakeUserUC{}, jwtManager, &cfg.APIConfig{Prefix: "/api/v1"})

	return r, jwtManager
}

func doRequest(r http.Handler, method, path, token string, body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPublicRoutes_NoTokenRequired(t *testing.T) {
	r, _ := setupRouter(t, &fakeCatalogUC{})

	tests := []struct {
		method string
		path   string
		body   []byte
		want   int
	}{
		{http.MethodGet, "/api/v1/products", nil, http.StatusOK},
		{http.MethodGet, "/api/v1/products/get/count", nil, http.StatusOK},
		{http.MethodGet, "/api/v1/categories", nil, http.StatusOK},
		{http.MethodPost, "/api/v1/users/register", []byte(`{"name":"A","email":"a@b.c","password":"x"}`), http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, "", tt.body)
			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestProtectedRoutes_MissingToken(t *testing.T) {
	r, _ := setupRouter(t, &fakeCatalogUC{})

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/users"},
		{http.MethodPost, "/api/v1/products"},
		{http.MethodDelete, "/api/v1/categories/1"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := doRequest(r, tt.method, tt.path, "", nil)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestProtectedRoutes_AdminTokenAccepted(t *testing.T) {
	r, jwtManager := setupRouter(t, &fakeCatalogUC{})

	token, err := jwtManager.Issue(1, true)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/v1/orders", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestProtectedRoutes_NonAdminTokenRevoked(t *testing.T) {
	r, jwtManager := setupRouter(t, &fakeCatalogUC{})

	token, err := jwtManager.Issue(2, false)
	require.NoError(t, err)

	w := doRequest(r, http.MethodGet, "/api/v1/orders", token, nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, e.ErrTokenRevoked.Error(), res.Message)
}

func TestProtectedRoutes_GarbageToken(t *testing.T) {
	r, _ := setupRouter(t, &fakeCatalogUC{})

	w := doRequest(r, http.MethodGet, "/api/v1/orders", "not-a-jwt", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProduct_NotFoundTranslatedTo404(t *testing.T) {
	r, _ := setupRouter(t, &fakeCatalogUC{})

	w := doRequest(r, http.MethodGet, "/api/v1/products/99", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, http.StatusNotFound, res.Code)
	assert.Equal(t, e.ErrProductNotFound.Error(), res.Message)
}

func TestGetProduct_InvalidID(t *testing.T) {
	r, _ := setupRouter(t, &fakeCatalogUC{})

	w := doRequest(r, http.MethodGet, "/api/v1/products/abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProduct_MalformedJSON(t *testing.T) {
	r, jwtManager := setupRouter(t, &fakeCatalogUC{})

	token, err := jwtManager.Issue(1, true)
	require.NoError(t, err)

	w := doRequest(r, http.MethodPost, "/api/v1/products", token, []byte("{not json"))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProduct_PriceParsedToCents(t *testing.T) {
	r, jwtManager := setupRouter(t, &fakeCatalogUC{})

	token, err := jwtManager.Issue(1, true)
	require.NoError(t, err)

	body := []byte(`{"name":"TV","price":"599.99","category_id":1,"stock":5}`)
	w := doRequest(r, http.MethodPost, "/api/v1/products", token, body)

	require.Equal(t, http.StatusCreated, w.Code)

	var res ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "599.99", res.Price)
}

func TestUploadGallery_MalformedMultipart(t *testing.T) {
	r, jwtManager := setupRouter(t, &fakeCatalogUC{})

	token, err := jwtManager.Issue(1, true)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/products/gallery-images/1",
		bytes.NewReader([]byte("garbage that is not a multipart body")))
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "multipart/form-data; boundary=xyz")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var res ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, http.StatusBadRequest, res.Code)
}

func TestLogin_BadCredentials(t *testing.T) {
	r, _ := setupRouter(t, &fakeCatalogUC{})

	body := []byte(`{"email":"a@b.c","password":"wrong"}`)
	w := doRequest(r, http.MethodPost, "/api/v1/users/login", "", body)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
