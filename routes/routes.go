package routes

import (
	"caixa/config"
	"caixa/controllers"
	"caixa/middleware"
	"caixa/models"

	"github.com/gin-gonic/gin"
)

// InitializeRoutes wires the HTTP surface: public login and catalog reads,
// and the authenticated cashier group that drives the register.
func InitializeRoutes(router *gin.Engine, cfg *config.Config, register *models.Register) {
	auth := &controllers.AuthController{Cfg: cfg}
	catalog := &controllers.CatalogController{Catalog: cfg.Catalog}
	cashier := &controllers.CashierController{Register: register}
	report := &controllers.ReportController{Register: register}

	router.POST("/login", auth.Login)
	router.GET("/catalog/products", catalog.ListProducts)
	router.GET("/catalog/customers", catalog.ListCustomers)

	c := router.Group("/cashier")
	c.Use(middleware.AuthMiddleware("cashier"))
	{
		c.GET("/cart", cashier.GetCart)
		c.POST("/cart/items", cashier.AddItem)
		c.DELETE("/cart/items/:index", cashier.RemoveItem)
		c.DELETE("/cart", cashier.ClearCart)

		c.POST("/customer", cashier.CallCustomer)
		c.GET("/customer", cashier.GetCustomer)

		c.PUT("/payment", cashier.SetPayment)
		c.GET("/change", cashier.GetChange)

		c.POST("/finalize", cashier.Finalize)
		c.POST("/cancel", cashier.Cancel)

		c.GET("/report", report.SessionReport)
	}
}
