package routes

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	_ "ckforest/docs" // This will be auto-generated
	"ckforest/internal/adapter/http/handlers"
	repository2 "ckforest/internal/adapter/persistence/repository"
	"ckforest/internal/infrastructure/database"
	"ckforest/internal/infrastructure/objectstore"
	"ckforest/internal/usecase"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	awsCfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}
	ddb := dynamodb.NewFromConfig(awsCfg)

	receiptStore, err := objectstore.NewS3ReceiptStore(awsCfg)
	if err != nil {
		log.Fatalf("failed to create receipt store: %v", err)
	}

	bookingRepo := repository2.NewBookingDynamoRepository(ddb)
	packageRepo := repository2.NewPackageDynamoRepository(ddb)
	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase()
	packageUseCase := usecase.NewPackageUseCase(packageRepo)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	dashboardUseCase := usecase.NewDashboardUseCase(bookingRepo)

	var submissionOpts []usecase.SubmissionOption
	if raw := os.Getenv("SUBMIT_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			log.Printf("ignoring invalid SUBMIT_TIMEOUT=%q: %v", raw, err)
		} else {
			submissionOpts = append(submissionOpts, usecase.WithSubmitTimeout(d))
		}
	}
	submissionUseCase := usecase.NewBookingSubmissionUseCase(bookingRepo, receiptStore, quoteUseCase, submissionOpts...)

	bookingHandler := handlers.NewBookingHandler(packageUseCase, submissionUseCase, bookingUseCase)
	quoteHandler := handlers.NewQuoteHandler(packageUseCase, quoteUseCase)
	packageHandler := handlers.NewPackageHandler(packageUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)

	// Public routes
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler, quoteHandler, packageHandler, settingsHandler)

	// Console routes
	admin := v1.Group("/admin")
	addAdminRoutes(admin, bookingHandler, packageHandler, settingsHandler, dashboardHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
