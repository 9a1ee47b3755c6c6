package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"google.golang.org/api/option"

	fbapp "firebase.google.com/go/v4"

	"campusnotes/internal/adapter/api"
	"campusnotes/internal/adapter/api/handler"
	apimiddleware "campusnotes/internal/adapter/api/middleware"
	"campusnotes/internal/adapter/api/router"
	"campusnotes/internal/adapter/repository"
	"campusnotes/internal/infrastructure/database"
	"campusnotes/internal/infrastructure/firebase"
	"campusnotes/internal/infrastructure/storage"
	"campusnotes/internal/usecase"
	"campusnotes/pkg/config"
	"campusnotes/pkg/response"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var opts []option.ClientOption
	serviceAccountPath := os.Getenv("FIREBASE_SERVICE_ACCOUNT_PATH")

	// Prefer inline credentials (for production), fall back to a file
	// path (for local development).
	if serviceAccountJSON := os.Getenv("FIREBASE_SERVICE_ACCOUNT_JSON"); serviceAccountJSON != "" {
		log.Printf("Using Firebase service account from environment variable")
		opts = append(opts, option.WithCredentialsJSON([]byte(serviceAccountJSON)))
		serviceAccountPath = ""
	} else if serviceAccountPath != "" {
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

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase Auth: %v", err)
	}

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to metadata store: %v", err)
	}
	defer db.Close()

	storageClient, err := storage.NewCloudStorageClient(ctx, cfg.StorageBucket, serviceAccountPath)
	if err != nil {
		log.Fatalf("Failed to initialize Cloud Storage: %v", err)
	}
	defer storageClient.Close()

	uploadRepo := repository.NewPostgresNoteUploadRepository(db.Pool, cfg.PublicBucketPrefix)
	roleRepo := repository.NewPostgresRoleRepository(db.Pool)

	firebaseAuthClient := firebase.NewFirebaseAuthClient(authClient)

	downloadUseCase := usecase.NewDownloadUseCase(
		uploadRepo,
		roleRepo,
		firebaseAuthClient,
		storageClient,
		cfg.PublicBucketPrefix,
		time.Duration(cfg.SignedURLTTL)*time.Second,
	)

	handler.Setup(downloadUseCase)
	handler.SetupHealthHandler(db)
	handler.SetupDevTokenHandler(firebaseAuthClient, roleRepo)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(apimiddleware.RequestID())
	e.Use(apimiddleware.CORS())

	e.Validator = api.NewValidator()

	// Anything a handler did not map itself leaves as the generic error
	// shape, with no internal detail echoed to the caller.
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		if he, ok := err.(*echo.HTTPError); ok && he.Code != http.StatusInternalServerError {
			c.JSON(he.Code, map[string]string{"error": http.StatusText(he.Code)})
			return
		}
		response.Error(c, err)
	}

	router.Setup(e)
	router.SetupDevRouter(e, cfg.Environment)

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
