package main

import (
	"context"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"google.golang.org/api/option"

	auth "github.com/furia-fc/team-sync/pkg/auth"
	resend "github.com/furia-fc/team-sync/repos/resend"
	store "github.com/furia-fc/team-sync/repos/store"

	admin "github.com/furia-fc/team-sync/services/admin"
	archive "github.com/furia-fc/team-sync/services/archive"
	events "github.com/furia-fc/team-sync/services/events"
	results "github.com/furia-fc/team-sync/services/results"
	stats "github.com/furia-fc/team-sync/services/stats"
)

func main() {
	ctx := context.Background()

	_ = godotenv.Load()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("service", "team-sync").Logger()
	if os.Getenv("ENV") == "dev" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	credentialsJSON := os.Getenv("FIREBASE_CREDENTIALS_JSON")
	port := os.Getenv("PORT")
	allowOrigins := os.Getenv("CORS_HOSTS")
	hostURL := os.Getenv("HOST_URL")

	archiveInterval := 15 * time.Minute
	if v := os.Getenv("ARCHIVE_INTERVAL"); v != "" {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			logger.Fatal().Err(err).Msg("invalid ARCHIVE_INTERVAL")
		}
		archiveInterval = parsed
	}

	credentialsOption := option.WithCredentialsJSON([]byte(credentialsJSON))

	firestoreClient, err := firestore.NewClient(ctx, projectID, credentialsOption)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create Firestore client")
	}
	defer firestoreClient.Close()

	firebaseApp, err := firebase.NewApp(ctx, nil, credentialsOption)
	if err != nil {
		logger.Fatal().Err(err).Msg("error initializing app")
	}

	storeService := store.NewService(firestoreClient)
	resendService := resend.NewService(hostURL, logger)

	statsService := stats.NewStatsService(storeService, logger)
	archiveService := archive.NewArchiveService(storeService, statsService, logger)
	eventsService := events.NewEventsService(storeService, archiveService, logger)
	resultsService := results.NewResultsService(storeService, statsService, logger)
	adminService := admin.NewAdminService(storeService, resendService, logger)

	// Archival also runs on its own clock, so events age out even when
	// nobody is looking at the upcoming list.
	go archiveService.Run(ctx, archiveInterval)

	config := cors.DefaultConfig()
	config.AllowOrigins = strings.Split(allowOrigins, ",")
	config.AllowCredentials = true
	config.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Access-Control-Allow-Origin"}

	router := gin.Default()
	router.Use(cors.New(config))

	authed := auth.AuthMiddleware(firebaseApp, storeService)

	eventsRouter := router.Group("/events/v1")
	eventsRouter.Use(authed)

	resultsRouter := router.Group("/results/v1")
	resultsRouter.Use(authed)

	statsRouter := router.Group("/stats/v1")
	statsRouter.Use(authed)

	archiveRouter := router.Group("/archive/v1")
	archiveRouter.Use(authed, auth.RequireAdmin())

	adminRouter := router.Group("/admin/v1")
	adminRouter.Use(authed)

	events.NewHTTPHandler(events.HTTPOptions{
		Service: eventsService,
		Router:  eventsRouter,
		Writer:  auth.RequireWriter(),
		Admin:   auth.RequireAdmin(),
	})

	results.NewHTTPHandler(results.HTTPOptions{
		Service: resultsService,
		Router:  resultsRouter,
		Writer:  auth.RequireWriter(),
		Admin:   auth.RequireAdmin(),
	})

	stats.NewHTTPHandler(stats.HTTPOptions{
		Service: statsService,
		Router:  statsRouter,
		Admin:   auth.RequireAdmin(),
	})

	archive.NewHTTPHandler(archive.HTTPOptions{
		Service: archiveService,
		Router:  archiveRouter,
	})

	admin.NewHTTPHandler(admin.HTTPOptions{
		Service: adminService,
		Router:  adminRouter,
		Admin:   auth.RequireAdmin(),
	})

	logger.Info().Str("port", port).Msg("starting team-sync")
	if err := router.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
