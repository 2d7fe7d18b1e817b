package main

import (
	"context"
	"log"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"cambiazo/internal/adapter/api"
	"cambiazo/internal/adapter/api/handler"
	apimiddleware "cambiazo/internal/adapter/api/middleware"
	"cambiazo/internal/adapter/api/router"
	"cambiazo/internal/adapter/repository"
	"cambiazo/internal/domain/service"
	"cambiazo/internal/infrastructure/firebase"
	"cambiazo/internal/infrastructure/ratelimit"
	"cambiazo/internal/infrastructure/storage"
	"cambiazo/internal/infrastructure/websocket"
	"cambiazo/internal/usecase"
	"cambiazo/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption

	serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON")
	if serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
	} else if serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH"); serviceAccountPath != "" {
		if _, err := os.Stat(serviceAccountPath); os.IsNotExist(err) {
			log.Fatalf("Service account file does not exist: %s", serviceAccountPath)
		}
		log.Printf("Using Firebase service account from file: %s", serviceAccountPath)
		opts = append(opts, option.WithCredentialsFile(serviceAccountPath))
	}

	firebaseApp, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: cfg.FirebaseProject}, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	fbAuth, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}
	authClient := firebase.NewAuthClient(fbAuth)

	firestoreClient, err := firestore.NewClient(ctx, cfg.FirebaseProject, opts...)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer firestoreClient.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, opts...)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	var textService service.TextService
	if cfg.GeminiAPIKey != "" {
		textService, err = service.NewGeminiTextService(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatalf("Failed to initialize text service: %v", err)
		}
	} else {
		log.Printf("GEMINI_API_KEY not set, smart search and description generation disabled")
	}

	productRepo := repository.NewFirestoreProductRepository(firestoreClient)
	jobRepo := repository.NewFirestoreJobRepository(firestoreClient)
	favoriteRepo := repository.NewFirestoreFavoriteRepository(firestoreClient)
	reviewRepo := repository.NewFirestoreReviewRepository(firestoreClient)
	chatRepo := repository.NewFirestoreChatRepository(firestoreClient)
	userRepo := repository.NewFirestoreUserRepository(firestoreClient)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	productUseCase := usecase.NewProductUseCase(productRepo, textService)
	jobUseCase := usecase.NewJobUseCase(jobRepo)
	favoriteUseCase := usecase.NewFavoriteUseCase(favoriteRepo, productRepo)
	reviewUseCase := usecase.NewReviewUseCase(reviewRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo, wsManager)
	userUseCase := usecase.NewUserUseCase(userRepo, storageClient)
	smartSearchUseCase := usecase.NewSmartSearchUseCase(textService, productUseCase)

	productUseCase.StartCatalogFeed(ctx)
	defer productUseCase.StopCatalogFeed()
	jobUseCase.StartBoardFeed(ctx)
	defer jobUseCase.StopBoardFeed()

	handler.Setup(productUseCase, jobUseCase, favoriteUseCase, reviewUseCase, chatUseCase, userUseCase, smartSearchUseCase)
	handler.SetupAuthHandler(authClient)
	handler.SetupHealthHandler()

	e := echo.New()

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(authClient)
	limiter := ratelimit.NewRateLimiter()

	wsHandler := handler.NewWebSocketHandler(wsManager, authClient, productUseCase, jobUseCase, favoriteUseCase, reviewUseCase, chatUseCase)

	router.Setup(e, authMiddleware, limiter)
	router.SetupWebSocketRouter(e, wsHandler)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
