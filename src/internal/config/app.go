package config

import (
	"storefront-service/src/internal/delivery/http"
	"storefront-service/src/internal/delivery/http/middleware"
	"storefront-service/src/internal/delivery/http/route"
	"storefront-service/src/internal/gateway/messaging"
	"storefront-service/src/internal/gateway/payment"
	"storefront-service/src/internal/gateway/presence"
	"storefront-service/src/internal/repository"
	"storefront-service/src/internal/usecase"
	"storefront-service/src/pkg/databases/mysql"
	kafkaPkgConfluent "storefront-service/src/pkg/kafka/confluent"
	"storefront-service/src/pkg/log"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/viper"
)

type BootstrapConfig struct {
	DB            mysql.DBInterface
	App           *fiber.App
	Log           log.Log
	Validate      *validator.Validate
	Config        *viper.Viper
	Producer      kafkaPkgConfluent.Producer
	Redis         redis.UniversalClient
	PaymentClient *payment.Client
	Presence      *presence.Subscriber
	AsynqClient   *asynq.Client
	Async         *asynq.ServeMux
}

func Bootstrap(config *BootstrapConfig) {
	// setup repositories
	walletRepository := repository.NewWalletRepository(config.DB)
	transactionRepository := repository.NewTransactionRepository(config.DB)
	posRepository := repository.NewPOSRepository(config.DB)
	productRepository := repository.NewProductRepository(config.DB)
	visitorRepository := repository.NewVisitorRepository(config.DB)

	// A nil producer means kafka is disabled; usecases skip publishing then.
	var ledgerProducer *messaging.LedgerProducer
	if config.Producer != nil {
		ledgerProducer = messaging.NewLedgerProducer(config.Producer, config.Log)
	}

	// setup use cases
	walletUseCase := usecase.NewWalletUseCase(
		config.Log,
		config.Validate,
		walletRepository,
		transactionRepository,
		config.Config,
		ledgerProducer,
	)

	posUseCase := usecase.NewPOSUseCase(
		config.Log,
		config.Validate,
		posRepository,
		productRepository,
		config.Config,
		ledgerProducer,
		config.AsynqClient,
	)

	paymentUseCase := usecase.NewPaymentUseCase(
		config.Log,
		config.Validate,
		config.PaymentClient,
		config.Config,
		config.Redis,
	)

	visitorUseCase := usecase.NewVisitorUseCase(
		config.Log,
		config.Validate,
		visitorRepository,
		config.Presence,
	)

	productUseCase := usecase.NewProductUseCase(
		config.Log,
		config.Validate,
		productRepository,
	)

	// setup controller
	walletController := http.NewWalletController(walletUseCase, config.Log)
	posController := http.NewPOSController(posUseCase, config.Log)
	paymentController := http.NewPaymentController(paymentUseCase, config.Log)
	visitorController := http.NewVisitorController(visitorUseCase, config.Log)
	productController := http.NewProductController(productUseCase, config.Log)

	// setup middleware
	authMiddleware := middleware.VerifyBearer(config.Config)
	if config.Async != nil {
		config.Async.HandleFunc(usecase.TaskTypeExpirePendingSale, posUseCase.ExpirePending)
	}

	routeConfig := route.RouteConfig{
		App:               config.App,
		WalletController:  walletController,
		POSController:     posController,
		PaymentController: paymentController,
		VisitorController: visitorController,
		ProductController: productController,
		AuthMiddleware:    authMiddleware,
	}
	routeConfig.Setup()
}
