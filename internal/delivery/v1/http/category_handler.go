package http

import (
	"net/http"

	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
)

type CategoryHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCategoryHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CategoryHandler {
	return &CategoryHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// listCategories
//
//	@Summary		Список категорий
//	@Description	Возвращает все категории каталога
//	@Tags			categories
//	@Produce		json
//	@Success		200	{array}		CategoryResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/categories [get]
func (h *CategoryHandler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.catalogUsecase.ListCategories(r.Context())
	if err != nil {
		h.logger.Warnf("list categories: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponses(categories))
}

// getCategory
//
//	@Summary		Категория по идентификатору
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор категории"
//	@Success		200	{object}	CategoryResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/categories/{id} [get]
func (h *CategoryHandler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.catalogUsecase.GetCategory(r.Context(), id)
	if err != nil {
		h.logger.Warnf("get category %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// createCategory
//
//	@Summary		Создание категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			category	body		CategoryRequest	true	"Категория"
//	@Success		201			{object}	CategoryResponse
//	@Failure		400			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/categories [post]
func (h *CategoryHandler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.catalogUsecase.CreateCategory(r.Context(), &usecase.CategoryReq{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
		Image: req.Image,
	})
	if err != nil {
		h.logger.Warnf("create category: %s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCategoryResponse(category))
}

// updateCategory
//
//	@Summary		Полная замена категории
//	@Tags			categories
//	@Accept			json
//	@Produce		json
//	@Param			id			path		int				true	"Идентификатор категории"
//	@Param			category	body		CategoryRequest	true	"Новое содержимое"
//	@Success		200			{object}	CategoryResponse
//	@Failure		404			{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/categories/{id} [put]
func (h *CategoryHandler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	var req CategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	category, err := h.catalogUsecase.UpdateCategory(r.Context(), id, &usecase.CategoryReq{
		Name:  req.Name,
		Icon:  req.Icon,
		Color: req.Color,
		Image: req.Image,
	})
	if err != nil {
		h.logger.Warnf("update category %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCategoryResponse(category))
}

// deleteCategory
//
//	@Summary		Удаление категории
//	@Tags			categories
//	@Produce		json
//	@Param			id	path		int	true	"Идентификатор категории"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	ErrorResponse
//	@Security		BearerAuth
//	@Router			/categories/{id} [delete]
func (h *CategoryHandler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := h.catalogUsecase.DeleteCategory(r.Context(), id); err != nil {
		h.logger.Warnf("delete category %d: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]interface{}{"deleted": true})
}
