package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	"numberzz/internal/adapter/api"
	"numberzz/internal/adapter/api/handler"
	apimiddleware "numberzz/internal/adapter/api/middleware"
	"numberzz/internal/adapter/api/router"
	"numberzz/internal/adapter/repository"
	domainrepo "numberzz/internal/domain/repository"
	"numberzz/internal/infrastructure/ratelimit"
	appsync "numberzz/internal/infrastructure/sync"
	"numberzz/internal/infrastructure/wallet"
	"numberzz/internal/infrastructure/websocket"
	"numberzz/internal/usecase"
	"numberzz/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	feed := appsync.NewFeed()

	var (
		itemRepo     domainrepo.ItemRepository
		contractRepo domainrepo.SaleContractRepository
		certRepo     domainrepo.CertificateRepository
		interestRepo domainrepo.InterestRepository
	)

	switch cfg.StoreBackend {
	case "firestore":
		var opts []option.ClientOption
		if path := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); path != "" {
			log.Printf("Using service account from file: %s", path)
			opts = append(opts, option.WithCredentialsFile(path))
		}

		firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
		if err != nil {
			log.Fatalf("Failed to create Firestore client: %v", err)
		}
		defer firestoreClient.Close()

		itemRepo = repository.NewFirestoreItemRepository(firestoreClient)
		contractRepo = repository.NewFirestoreSaleContractRepository(firestoreClient)
		certRepo = repository.NewFirestoreCertificateRepository(firestoreClient)
		interestRepo = repository.NewFirestoreInterestRepository(firestoreClient)

		// Firestore writes don't go through our process alone, so change
		// events come from snapshot listeners instead of the repositories.
		watcher := appsync.NewFirestoreWatcher(firestoreClient, feed)
		watcher.Start(ctx)

	case "memory":
		store := repository.NewMemoryStore(feed)
		itemRepo = repository.NewMemoryItemRepository(store)
		contractRepo = repository.NewMemorySaleContractRepository(store)
		certRepo = repository.NewMemoryCertificateRepository(store)
		interestRepo = repository.NewMemoryInterestRepository(store)

	default:
		log.Fatalf("Unknown store backend: %s", cfg.StoreBackend)
	}

	walletClient := wallet.NewSimClient(cfg.BaseChainID)
	walletClient.AddAccount(cfg.BankWallet, "1000")

	catalogUseCase := usecase.NewCatalogUseCase(itemRepo, int(cfg.CatalogMax))
	ledgerUseCase := usecase.NewLedgerUseCase(
		itemRepo,
		contractRepo,
		certRepo,
		interestRepo,
		walletClient,
		cfg.BankWallet,
		int(cfg.CatalogMax),
	)
	achievementUseCase := usecase.NewAchievementUseCase(itemRepo)
	walletUseCase := usecase.NewWalletUseCase(walletClient, cfg.BaseChainID)

	if err := catalogUseCase.Bootstrap(ctx); err != nil {
		log.Fatalf("Failed to seed catalogue: %v", err)
	}

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)
	defer wsManager.AttachFeed(feed)()

	handler.Setup(catalogUseCase, ledgerUseCase, achievementUseCase, walletUseCase)
	handler.SetupHealthHandler(cfg.StoreBackend)
	wsHandler := handler.NewWebSocketHandler(wsManager)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	limiter := ratelimit.NewRateLimiter()
	limiter.StartCleanupRoutine()

	walletMiddleware := apimiddleware.NewWalletMiddleware()
	rateLimitMiddleware := apimiddleware.NewRateLimitMiddleware(limiter)

	router.Setup(e, walletMiddleware, rateLimitMiddleware)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s (store=%s)", cfg.ServerPort, cfg.StoreBackend)
	if err := e.Start(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
