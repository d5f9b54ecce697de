package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/MK-1512/gadget-galaxy/controllers"
	"github.com/MK-1512/gadget-galaxy/middleware"
	"github.com/MK-1512/gadget-galaxy/services"
)

// Deps carries the constructed state managers into route registration.
type Deps struct {
	Cart     *services.CartService
	Wishlist *services.WishlistService
	Compare  *services.CompareService
	Auth     *services.AuthService
	Tokens   *services.TokenService
	Catalog  *services.CatalogService
	Filters  *services.FilterService
	Checkout *services.CheckoutService
}

// Register wires every storefront route onto the router.
func Register(r *gin.Engine, deps Deps) {
	productController := controllers.NewProductController(deps.Catalog, deps.Filters)
	cartController := controllers.NewCartController(deps.Cart)
	wishlistController := controllers.NewWishlistController(deps.Wishlist)
	compareController := controllers.NewCompareController(deps.Compare)
	authController := controllers.NewAuthController(deps.Auth, deps.Tokens)
	checkoutController := controllers.NewCheckoutController(deps.Checkout)

	products := r.Group("/products")
	{
		products.GET("/", productController.GetProducts)
		products.GET("/categories", productController.GetCategories)
		products.GET("/:id", productController.GetProduct)
	}
	r.GET("/filters", productController.GetFilters)
	r.PUT("/filters", productController.SaveFilters)

	cart := r.Group("/cart")
	{
		cart.GET("/", cartController.GetCart)
		cart.POST("/add", cartController.AddItem)
		cart.DELETE("/remove/:id", cartController.RemoveItem)
		cart.DELETE("/delete/:id", cartController.DeleteItem)
		cart.DELETE("/clear", cartController.ClearCart)
	}

	wishlist := r.Group("/wishlist")
	{
		wishlist.GET("/", wishlistController.GetWishlist)
		wishlist.POST("/toggle", wishlistController.ToggleItem)
		wishlist.DELETE("/remove/:id", wishlistController.RemoveItem)
		wishlist.DELETE("/clear", wishlistController.ClearWishlist)
	}

	compare := r.Group("/compare")
	{
		compare.GET("/", compareController.GetCompare)
		compare.POST("/toggle", compareController.ToggleItem)
		compare.DELETE("/remove/:id", compareController.RemoveItem)
		compare.DELETE("/clear", compareController.ClearCompare)
	}

	auth := r.Group("/auth")
	auth.Use(middleware.RateLimitMiddleware())
	{
		auth.POST("/signup", authController.Signup)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)
	}

	// Protected routes (require a session token)
	protected := r.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.Tokens, deps.Auth))
	{
		protected.GET("/account", authController.GetAccount)
		protected.PUT("/account/profile", authController.UpdateProfile)
		protected.POST("/checkout", checkoutController.PlaceOrder)
		protected.GET("/orders", checkoutController.ListOrders)
	}
}
