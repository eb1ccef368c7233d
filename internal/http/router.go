package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/handlers"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/middleware"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/http/sessioncookie"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/catalog"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/orders"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/sessions"
	"github.com/Ainkaran01/Thusha-Shop-sub001/internal/modules/users"
)

// Deps is everything the router wires into handlers.
type Deps struct {
	Catalog   *catalog.Service
	History   *orders.History
	Profiles  users.ProfileSource
	Sessions  *sessions.Registry
	Cookies   *sessioncookie.Codec
	Presenter *handlers.Presenter
	Auth      middleware.AuthCfg
}

func NewRouter(l *slog.Logger, d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(l))
	r.Use(middleware.ErrorHandler(l))
	r.Use(middleware.Recovery(l))

	r.GET("/healthz", handlers.Health)

	catalogH := handlers.NewCatalogHandler(d.Catalog, d.Profiles, d.Presenter, l)
	cartH := handlers.NewCartHandler(d.Catalog, d.Sessions, d.Presenter, l)
	checkoutH := handlers.NewCheckoutHandler(d.Sessions, d.Profiles, d.Presenter, l)
	ordersH := handlers.NewOrdersHandler(d.History, d.Sessions, d.Presenter, l)
	adminH := handlers.NewAdminHandler(d.Sessions, d.Presenter, l)

	api := r.Group("/api")
	api.Use(middleware.Auth(d.Auth))

	// Stateless
	api.GET("/products", catalogH.Products)
	api.GET("/products/:productID", catalogH.Product)
	api.GET("/lens-options", cartH.LensOptions)

	s := api.Group("")
	s.Use(middleware.Session(d.Cookies, d.Sessions))
	{
		s.GET("/catalog", catalogH.Get)
		s.PATCH("/catalog/filters", catalogH.PatchFilters)
		s.DELETE("/catalog/filters", catalogH.ClearFilters)

		s.GET("/cart", cartH.Get)
		s.POST("/cart/items", cartH.Add)
		s.PATCH("/cart/items/:productID", cartH.Update)
		s.DELETE("/cart/items/:productID", cartH.Remove)
		s.PUT("/cart/items/:productID/lens", cartH.SetLens)
		s.DELETE("/cart", cartH.Clear)

		s.GET("/checkout", checkoutH.Get)
		s.PUT("/checkout/billing", checkoutH.PutBilling)
		s.PUT("/checkout/delivery", checkoutH.PutDelivery)
		s.POST("/checkout/next", checkoutH.Next)
		s.POST("/checkout/prev", checkoutH.Prev)
		s.POST("/checkout/payment-success", middleware.RequireAuth(), checkoutH.PaymentSuccess)
		s.POST("/checkout/finish", checkoutH.Finish)

		s.GET("/notices", handlers.NoticesHandler{}.List)
	}

	mine := s.Group("/orders")
	mine.Use(middleware.RequireAuth())
	{
		mine.GET("", ordersH.List)
		mine.GET("/:number", ordersH.Detail)
		mine.GET("/:number/invoice", ordersH.Invoice)
		mine.POST("/:number/reorder", ordersH.Reorder)
		mine.POST("/:number/cancel", ordersH.Cancel)
	}

	admin := s.Group("/admin")
	admin.Use(middleware.RequireStaff())
	{
		admin.GET("/orders", adminH.List)
		admin.PATCH("/orders/:number/status", adminH.UpdateStatus)
		admin.GET("/orders/pending-count", adminH.PendingCount)
		admin.POST("/orders/assign-delivery", adminH.AssignDelivery)
		admin.GET("/delivery-persons", adminH.DeliveryPersons)
		admin.POST("/catalog/refresh", middleware.RequireVerified(), catalogH.Refresh)
	}

	return r
}
