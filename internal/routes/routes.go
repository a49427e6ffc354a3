package routes

import (
	"github.com/baajeelectronics/baaje-golang/internal/auth"
	"github.com/baajeelectronics/baaje-golang/internal/handlers"
	"github.com/baajeelectronics/baaje-golang/internal/middleware"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware allows any origin, matching how the original storefront is
// deployed (the frontend is served from a separate host).
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		// Preflight requests get an empty 204 and go no further.
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers, policy auth.AdminPolicy) *gin.Engine {
	router := gin.Default()

	// CORS must run before anything else in the chain.
	router.Use(CORSMiddleware())

	api := router.Group("/api")
	{
		// --- Auth Routes (Public) ---
		api.POST("/auth/signup", h.Signup)
		api.POST("/auth/login", h.Login)
		api.POST("/admin/login", h.AdminLogin)

		// --- Public Catalog Routes ---
		api.GET("/products", h.GetProducts)
		api.GET("/products/:id", h.GetProduct)
		api.GET("/categories", h.GetCategories)
		api.GET("/banners", h.GetBanners)
		api.GET("/about", h.GetAbout)

		// --- Public Checkout ---
		api.POST("/orders", h.CreateOrder)

		// --- Protected Routes (Login Required) ---
		user := api.Group("/")
		user.Use(middleware.RequireUser(h.Tokens))
		{
			user.GET("/auth/me", h.Me)
			user.GET("/orders/user", h.GetUserOrders)
			user.GET("/favorites", h.GetFavorites)
			user.POST("/favorites/:product_id", h.AddFavorite)
			user.DELETE("/favorites/:product_id", h.RemoveFavorite)
		}

		// --- Admin-Only Routes ---
		admin := api.Group("/")
		admin.Use(middleware.RequireUser(h.Tokens))
		admin.Use(middleware.RequireAdmin(policy))
		{
			admin.POST("/products", h.CreateProduct)
			admin.PUT("/products/:id", h.UpdateProduct)
			admin.DELETE("/products/:id", h.DeleteProduct)

			admin.POST("/categories", h.CreateCategory)
			admin.PUT("/categories/:id", h.UpdateCategory)
			admin.DELETE("/categories/:id", h.DeleteCategory)

			admin.POST("/banners", h.CreateBanner)
			admin.PUT("/banners/:id", h.UpdateBanner)
			admin.DELETE("/banners/:id", h.DeleteBanner)

			admin.GET("/orders", h.GetOrders)

			admin.PUT("/about", h.UpdateAbout)
		}
	}

	return router
}
