package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"grocerypro-backend/config"
	"grocerypro-backend/controllers"
)

func SetupRouter(logger *zap.Logger) *gin.Engine {
	r := gin.New()

	r.Use(config.RequestID())
	r.Use(config.RequestLogger(logger))
	r.Use(config.Recovery(logger))

	// Wide-open CORS: the SPA is served from a separate origin
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:   []string{"Content-Length", "X-Request-ID"},
	}))

	r.GET("/health", controllers.Health)
	r.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")
	{
		users := api.Group("/users")
		{
			users.GET("", controllers.GetUsers)
			users.GET("/:id", controllers.GetUser)
			users.GET("/role/:role", controllers.GetUsersByRole)
			users.POST("", controllers.CreateUser)
			users.PUT("/:id", controllers.UpdateUser)
			users.DELETE("/:id", controllers.DeleteUser)
			users.POST("/login", controllers.Login)
		}

		shops := api.Group("/shops")
		{
			shops.GET("", controllers.GetShops)
			shops.GET("/:shopId", controllers.GetShop)
			shops.POST("", controllers.CreateShop)
			shops.PUT("/:shopId", controllers.UpdateShop)
			shops.DELETE("/:shopId", controllers.DeleteShop)

			shops.GET("/:shopId/managers", controllers.GetShopManagers)
			shops.POST("/:shopId/managers", controllers.AddShopManager)
			shops.DELETE("/:shopId/managers/:userId", controllers.RemoveShopManager)
		}

		expenses := api.Group("/expenses")
		{
			expenses.GET("", controllers.GetExpenses)
			expenses.GET("/shop/:shopId", controllers.GetExpensesByShop)
			expenses.GET("/:id", controllers.GetExpense)
			expenses.POST("", controllers.CreateExpense)
			expenses.PUT("/:id", controllers.UpdateExpense)
			expenses.DELETE("/:id", controllers.DeleteExpense)
		}

		incomes := api.Group("/income-transactions")
		{
			incomes.GET("", controllers.GetIncomeTransactions)
			incomes.GET("/shop/:shopId", controllers.GetIncomeTransactionsByShop)
			incomes.GET("/:id", controllers.GetIncomeTransaction)
			incomes.POST("", controllers.CreateIncomeTransaction)
			incomes.PUT("/:id", controllers.UpdateIncomeTransaction)
			incomes.DELETE("/:id", controllers.DeleteIncomeTransaction)
		}

		api.GET("/analytics/revenue", controllers.GetRevenueAnalytics)
	}

	return r
}
