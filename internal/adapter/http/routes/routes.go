package routes

import (
	"log"
	"os"
	"strconv"
	"time"

	_ "mutawazi_proposals/docs" // swag-generated documentation
	"mutawazi_proposals/internal/adapter/http/handlers"
	"mutawazi_proposals/internal/adapter/persistence/repository"
	"mutawazi_proposals/internal/infrastructure/ai"
	"mutawazi_proposals/internal/infrastructure/catalog"
	"mutawazi_proposals/internal/infrastructure/database"
	"mutawazi_proposals/internal/usecase"
	"mutawazi_proposals/internal/usecase/interfaces"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const defaultPort = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	port := getenvDefault("PORT", strconv.Itoa(defaultPort))
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	services := catalog.Default()

	proposalRepo := newProposalRepository()
	overheadRepo := repository.NewOverheadMemoryRepository()

	var generator interfaces.ITextGenerator
	gemini, err := ai.NewGeminiGenerator(os.Getenv("GEMINI_API_KEY"))
	if err != nil {
		log.Printf("Price justification provider not configured: %v", err)
	} else {
		generator = gemini
	}

	cashFlowUseCase := usecase.NewCashFlowUseCase(services, overheadRepo)
	proposalUseCase := usecase.NewProposalUseCase(proposalRepo)
	metadataUseCase := usecase.NewMetadataUseCase(proposalRepo)
	overheadUseCase := usecase.NewOverheadUseCase(overheadRepo)
	justificationUseCase := usecase.NewJustificationUseCase(services, generator, justificationTimeout())

	cashFlowHandler := handlers.NewCashFlowHandler(cashFlowUseCase)
	proposalHandler := handlers.NewProposalHandler(proposalUseCase)
	metadataHandler := handlers.NewMetadataHandler(metadataUseCase)
	catalogHandler := handlers.NewCatalogHandler(services)
	overheadHandler := handlers.NewOverheadHandler(overheadUseCase)
	justificationHandler := handlers.NewJustificationHandler(justificationUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addProposalRoutes(v1, cashFlowHandler, proposalHandler, metadataHandler, catalogHandler, overheadHandler, justificationHandler)
}

// newProposalRepository picks the proposal store backend. Default is the
// in-process store; PROPOSAL_STORE=dynamodb switches to DynamoDB for
// deployments where quotations must survive restarts.
func newProposalRepository() interfaces.IProposalRepository {
	switch getenvDefault("PROPOSAL_STORE", "memory") {
	case "dynamodb":
		log.Printf("Proposal store backend: dynamodb")
		return repository.NewProposalDynamoRepository(database.ConnectDynamoDB())
	default:
		log.Printf("Proposal store backend: memory")
		return repository.NewProposalMemoryRepository()
	}
}

func justificationTimeout() time.Duration {
	seconds, err := strconv.Atoi(getenvDefault("GEMINI_TIMEOUT_SECONDS", "15"))
	if err != nil || seconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(seconds) * time.Second
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
	router.Use(cors.Default())
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
