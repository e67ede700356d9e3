package http

import (
	"github.com/freightmart/freightmart/internal/adapter/config"
	"github.com/freightmart/freightmart/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	userHandler *UserHandler,
	goodsHandler *GoodsHandler,
	vehicleHandler *VehicleHandler,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	walletHandler *WalletHandler) (*Router, error) {

	router := gin.New()

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		user := api.Group("/user")
		{
			user.POST("/register", userHandler.RegisterUser)
			user.POST("/login", userHandler.LoginUser)
			user.GET("/me", authCheck(tokenService), userHandler.GetMe)
		}

		goods := api.Group("/goods")
		{
			goods.Use(authCheck(tokenService))
			goods.POST("", goodsHandler.CreateGoods)
			goods.GET("", goodsHandler.ListOpenGoods)
			goods.GET("/my", goodsHandler.ListMyGoods)
			goods.GET("/:id", goodsHandler.GetGoods)
			goods.POST("/:id/cancel", goodsHandler.CancelGoods)
		}

		vehicles := api.Group("/vehicles")
		{
			vehicles.Use(authCheck(tokenService))
			vehicles.POST("", vehicleHandler.CreateVehicle)
			vehicles.GET("/my", vehicleHandler.ListMyVehicles)
			vehicles.GET("/:id", vehicleHandler.GetVehicle)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(tokenService))
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("/my", orderHandler.ListMyOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/status", orderHandler.UpdateOrderStatus)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
			orders.POST("/:id/rate", orderHandler.RateOrder)
		}

		payments := api.Group("/payments")
		{
			// gateway callback comes in without a user token
			payments.POST("/:id/notify", paymentHandler.NotifyPayment)

			authed := payments.Group("")
			authed.Use(authCheck(tokenService))
			authed.POST("", paymentHandler.CreatePayment)
			authed.GET("/my", paymentHandler.ListMyPayments)
			authed.GET("/:id", paymentHandler.GetPayment)
			authed.POST("/:id/cancel", paymentHandler.CancelPayment)
		}

		wallet := api.Group("/wallet")
		{
			wallet.POST("/transactions/:number/settle", walletHandler.SettleTransaction)

			authed := wallet.Group("")
			authed.Use(authCheck(tokenService))
			authed.GET("", walletHandler.GetWallet)
			authed.POST("/deposit", walletHandler.Deposit)
			authed.POST("/withdraw", walletHandler.Withdraw)
			authed.GET("/transactions", walletHandler.ListTransactions)
			authed.GET("/statistics", walletHandler.Statistics)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
