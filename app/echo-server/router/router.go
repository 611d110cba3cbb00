package router

import (
	"crochetCorner/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)
	users.GET("/email-verification/:code", handler.VerifyEmail)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/me", handler.Me, authRequired)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.GET("/:id/features", handler.GetFeatures)

	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
	products.PUT("/:id/features", handler.ReplaceFeatures, authRequired, adminOnly)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler, authRequired echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("/:id/reviews", handler.GetReviewsByProduct)
	products.POST("/:id/reviews", handler.CreateReview, authRequired)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc, optionalAuth echo.MiddlewareFunc) {
	reco := api.Group("/recommendations")

	reco.GET("", handler.Recommend, authRequired)
	reco.POST("/interactions", handler.TrackInteraction, optionalAuth)
}
