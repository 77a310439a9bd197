package http

import (
	_ "github.com/DRSN-tech/eshop-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/eshop-backend/internal/cfg"
	"github.com/DRSN-tech/eshop-backend/internal/usecase"
	"github.com/DRSN-tech/eshop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(
	catalogUC usecase.CatalogUC,
	orderUC usecase.OrderUC,
	userUC usecase.UserUC,
	parser TokenParser,
	apiCfg *cfg.APIConfig,
) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // ссылка на JSON
	))

	authMiddleware := NewAuthMiddleware(parser, apiCfg.Prefix, r.logger)

	r.router.Route(apiCfg.Prefix, func(api chi.Router) {
		api.Use(authMiddleware.Handle)

		registerCategoryRoutes(api, NewCategoryHandler(catalogUC, r.logger))
		registerProductRoutes(api, NewProductHandler(catalogUC, r.logger))
		registerUserRoutes(api, NewUserHandler(userUC, r.logger))
		registerOrderRoutes(api, NewOrderHandler(orderUC, r.logger))
	})
}

func registerCategoryRoutes(router chi.Router, h *CategoryHandler) {
	router.Route("/categories", func(c chi.Router) {
		c.Get("/", h.listCategories)
		c.Post("/", h.createCategory)
		c.Get("/{id}", h.getCategory)
		c.Put("/{id}", h.updateCategory)
		c.Delete("/{id}", h.deleteCategory)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(p chi.Router) {
		p.Get("/", h.listProducts)
		p.Post("/", h.createProduct)
		p.Get("/get/count", h.countProducts)
		p.Get("/get/featured/{count}", h.featuredProducts)
		p.Put("/gallery-images/{id}", h.uploadGalleryImages)
		p.Get("/{id}", h.getProduct)
		p.Put("/{id}", h.updateProduct)
		p.Delete("/{id}", h.deleteProduct)
	})
}

func registerUserRoutes(router chi.Router, h *UserHandler) {
	router.Route("/users", func(u chi.Router) {
		u.Get("/", h.listUsers)
		u.Post("/", h.createUser)
		u.Post("/register", h.register)
		u.Post("/login", h.login)
		u.Get("/get/count", h.countUsers)
		u.Get("/{id}", h.getUser)
		u.Delete("/{id}", h.deleteUser)
	})
}

func registerOrderRoutes(router chi.Router, h *OrderHandler) {
	router.Route("/orders", func(o chi.Router) {
		o.Get("/", h.listOrders)
		o.Post("/", h.placeOrder)
		o.Get("/get/count", h.countOrders)
		o.Get("/get/totalsales", h.totalSales)
		o.Get("/get/userorders/{userid}", h.userOrders)
		o.Get("/{id}", h.getOrder)
		o.Put("/{id}", h.updateOrderStatus)
		o.Delete("/{id}", h.deleteOrder)
	})
}
