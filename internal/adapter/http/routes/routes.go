package routes

import (
	"log"
	"os"
	"strconv"

	_ "arquitetura_xpto/docs" // This will be auto-generated
	"arquitetura_xpto/internal/adapter/http/handlers"
	"arquitetura_xpto/internal/adapter/http/middleware"
	repository2 "arquitetura_xpto/internal/adapter/persistence/repository"
	"arquitetura_xpto/internal/infrastructure/database"
	"arquitetura_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

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
	ddb := database.ConnectDynamoDB()

	budgetRepo := repository2.NewBudgetDynamoRepository(ddb)
	briefingRepo := repository2.NewBriefingDynamoRepository(ddb)
	configRepo := repository2.NewEngineConfigDynamoRepository(ddb)
	sequenceRepo := repository2.NewSequenceDynamoRepository(ddb)

	briefingUseCase := usecase.NewBriefingUseCase(briefingRepo)
	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, briefingRepo, configRepo, sequenceRepo)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase, briefingUseCase)
	briefingHandler := handlers.NewBriefingHandler(briefingUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBudgetRoutes(v1, budgetHandler)
	addBriefingRoutes(v1, briefingHandler)
}

func setMiddlewares() {
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	router.Use(middleware.Logger(&logger))
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
