package main

import (
	"context"
	"fmt"

	"github.com/freightmart/freightmart/internal/adapter/auth"
	"github.com/freightmart/freightmart/internal/adapter/config"
	"github.com/freightmart/freightmart/internal/adapter/gateway"
	"github.com/freightmart/freightmart/internal/adapter/handler/http"
	"github.com/freightmart/freightmart/internal/adapter/logger"
	"github.com/freightmart/freightmart/internal/adapter/notification"
	"github.com/freightmart/freightmart/internal/adapter/storage"
	"github.com/freightmart/freightmart/internal/adapter/storage/repository"
	"github.com/freightmart/freightmart/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repo creating error", zap.Error(err))
		return
	}
	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	gatewayClient, err := gateway.NewClient(conf.Gateway, log.Named("Gateway"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}

	notifier := notification.NewLogNotifier(log.Named("Notify"))

	svc, err := service.NewService(repo, tokenService, gatewayClient, notifier, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	userHandler, err := http.NewUserHandler(svc, log.Named("User handler"))
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	goodsHandler, err := http.NewGoodsHandler(svc, log.Named("Goods handler"))
	if err != nil {
		log.Error("goods handler creating error", zap.Error(err))
		return
	}
	vehicleHandler, err := http.NewVehicleHandler(svc, log.Named("Vehicle handler"))
	if err != nil {
		log.Error("vehicle handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(svc, log.Named("Order handler"))
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(svc, log.Named("Payment handler"))
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	walletHandler, err := http.NewWalletHandler(svc, log.Named("Wallet handler"))
	if err != nil {
		log.Error("wallet handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf.HTTP, tokenService,
		userHandler, goodsHandler, vehicleHandler, orderHandler, paymentHandler, walletHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
