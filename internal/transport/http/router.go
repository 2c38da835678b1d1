package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/naturespantry/shop/internal/handlers"
	"github.com/naturespantry/shop/internal/middleware"
	"github.com/naturespantry/shop/internal/service"
)

type Deps struct {
	StorefrontHandler *handlers.StorefrontHandler
	CartHandler       *handlers.CartHandler
	ContactHandler    *handlers.ContactHandler
	AuthHandler       *handlers.AuthHandler
	SearchHandler     *handlers.SearchHandler
	ProductHandler    *handlers.AdminProductHandler
	OrderHandler      *handlers.AdminOrderHandler
	UserHandler       *handlers.AdminUserHandler
	StatsHandler      *handlers.AdminStatsHandler
	TokenService      *service.TokenService
	ContactLimiter    *middleware.RateLimiter
	LoginLimiter      *middleware.RateLimiter
}

func Register(e *echo.Echo, d *Deps) {
	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	v1 := e.Group("/api/v1")

	products := v1.Group("/products")
	products.GET("", d.StorefrontHandler.ListProducts)
	products.GET("/featured", d.StorefrontHandler.FeaturedProducts)
	products.GET("/types", d.StorefrontHandler.ProductTypes)
	products.GET("/:id", d.StorefrontHandler.GetProduct)

	cart := v1.Group("/cart")
	cart.GET("", d.CartHandler.GetCart)
	cart.POST("/items", d.CartHandler.AddToCart)
	cart.PATCH("/items/:id", d.CartHandler.UpdateQuantity)
	cart.DELETE("/items/:id", d.CartHandler.RemoveItem)

	v1.POST("/contact", d.ContactHandler.Submit, d.ContactLimiter.Middleware)
	v1.GET("/search", d.SearchHandler.Search)

	v1.POST("/admin/register", d.AuthHandler.Register, d.LoginLimiter.Middleware)
	v1.POST("/admin/login", d.AuthHandler.Login, d.LoginLimiter.Middleware)
	v1.POST("/admin/logout", d.AuthHandler.LogOut)

	admin := v1.Group("/admin", d.TokenService.AutoRefreshMiddlewareAdmin)

	admin.GET("/stats", d.StatsHandler.Dashboard)

	admin.GET("/products", d.ProductHandler.List)
	admin.POST("/products", d.ProductHandler.Create)
	admin.PATCH("/products/:id", d.ProductHandler.Update)
	admin.DELETE("/products/:id", d.ProductHandler.Delete)

	admin.GET("/orders", d.OrderHandler.List)
	admin.GET("/orders/:id", d.OrderHandler.Get)
	admin.GET("/orders/:id/items", d.OrderHandler.Items)
	admin.PATCH("/orders/:id", d.OrderHandler.Update)

	admin.GET("/users", d.UserHandler.List)
	admin.GET("/users/roles", d.UserHandler.Roles)
	admin.PUT("/users/:id/role", d.UserHandler.SetRole)

	// Unknown routes fall through to a JSON not-found payload.
	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{
			"status":  "error",
			"message": "page not found",
		})
	})
}
