package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/e"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewProductHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUsecase: catalogUsecase, logger: logger}
}

func (h *ProductHandler) toProductReq(req *ProductRequest) (*usecase.ProductReq, error) {
	priceCents, err := parsePriceToCents(req.Price.String())
	if err != nil {
		return nil, err
	}

	return &usecase.ProductReq{
		Name:        req.Name,
		Description: req.Description,
		Brand:       req.Brand,
		Image:       req.Image,
		Price:       priceCents,
		CategoryID:  req.CategoryID,
		Stock:       req.Stock,
		Rating:      req.Rating,
		NumReviews:  req.NumReviews,
		IsFeatured:  req.IsFeatured,
	}, nil
}

// listProducts
//
//	@Summary		Список товаров
//	@Description	Возвращает товары каталога, опционально отфильтрованные по категориям
//	@Tags			products
//	@Produce		json
//	@Param			categories	query		string	false	"Идентификаторы категорий через запятую"
//	@Success		200			{array}		ProductResponse
//	@Failure		400			{object}	ErrorResponse
//	@Router			/products [get]
func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	categoryIDs, err := parseCategoryFilter(r.URL.Query().Get("categories"))
	if err != nil {
		WriteError(w, err)
		return
	}

	products, err := h.catalogUsecase.ListProducts(r.Context(), &usecase.ListProductsReq{CategoryIDs: categoryIDs})
	if err != nil {
		h.logger.Warnf("list products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

func parseCategoryFilter(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}

	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			return nil, e.Wrap(part, e.ErrInvalidID)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// getProduct
//
//	@Summary		Товар по идентификатору
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	ProductResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/products/{id} [get]
func (h *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.GetProduct(r.Context(), id)
	if err != nil {
		h.logger.Warnf("get product %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// createProduct
//
//	@Summary		Создание товара
//	@Description	Создает товар. Товар с несуществующей категорией отклоняется до записи.
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		ProductRequest	true	"Товар"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/products [post]
func (h *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	ucReq, err := h.toProductReq(&req)
	if err != nil {
		h.logger.Warnf("create product: %s", err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.CreateProduct(r.Context(), ucReq)
	if err != nil {
		h.logger.Warnf("create product: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toProductResponse(product))
}

// updateProduct
//
//	@Summary		Полная замена товара
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Идентификатор товара"
//	@Param			product	body		ProductRequest	true	"Новое содержимое"
//	@Success		200		{object}	ProductResponse
//	@Failure		404		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/products/{id} [put]
func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req ProductRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	ucReq, err := h.toProductReq(&req)
	if err != nil {
		h.logger.Warnf("update product %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.UpdateProduct(r.Context(), id, ucReq)
	if err != nil {
		h.logger.Warnf("update product %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}

// deleteProduct
//
//	@Summary		Удаление товара
//	@Tags			products
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор товара"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/products/{id} [delete]
func (h *ProductHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUsecase.DeleteProduct(r.Context(), id); err != nil {
		h.logger.Warnf("delete product %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}

// countProducts
//
//	@Summary		Количество товаров
//	@Tags			products
//	@Produce		json
//	@Success		200	{object}	CountResponse
//	@Router			/products/get/count [get]
func (h *ProductHandler) countProducts(w http.ResponseWriter, r *http.Request) {
	count, err := h.catalogUsecase.CountProducts(r.Context())
	if err != nil {
		h.logger.Warnf("count products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CountResponse{Count: count})
}

// featuredProducts
//
//	@Summary		Рекомендуемые товары
//	@Description	Возвращает не более count товаров с флагом is_featured
//	@Tags			products
//	@Produce		json
//	@Param			count	path		int	true	"Максимальное количество"
//	@Success		200		{array}		ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/products/get/featured/{count} [get]
func (h *ProductHandler) featuredProducts(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "count")
	count, err := strconv.Atoi(raw)
	if err != nil || count < 0 {
		WriteError(w, e.Wrap(raw, e.ErrInvalidID))
		return
	}

	products, err := h.catalogUsecase.FeaturedProducts(r.Context(), count)
	if err != nil {
		h.logger.Warnf("featured products: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponses(products))
}

// uploadGalleryImages
//
//	@Summary		Загрузка галереи товара
//	@Description	Принимает multipart/form-data с файлами в поле images и заменяет галерею товара
//	@Tags			products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id		path		int		true	"Идентификатор товара"
//	@Param			images	formData	file	true	"Изображения товара"
//	@Success		200		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/products/gallery-images/{id} [put]
func (h *ProductHandler) uploadGalleryImages(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	images, err := parseImages(r.MultipartForm.File["images"])
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.catalogUsecase.UploadGalleryImages(r.Context(), &usecase.UploadGalleryReq{
		ProductID: id,
		Images:    images,
	})
	if err != nil {
		h.logger.Warnf("upload gallery %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}
