package routes

import (
	"log"
	"os"
	"strconv"
	_ "workshop_flow/docs" // This will be auto-generated
	"workshop_flow/internal/adapter/events"
	"workshop_flow/internal/adapter/http/handlers"
	"workshop_flow/internal/adapter/persistence/memory"
	repository2 "workshop_flow/internal/adapter/persistence/repository"
	"workshop_flow/internal/infrastructure/database"
	"workshop_flow/internal/infrastructure/messaging"
	"workshop_flow/internal/usecase"
	"workshop_flow/internal/usecase/interfaces"

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
	jobs, orders := buildRepositories()
	sink := buildEventSink()

	engine := usecase.NewWorkflowEngine(jobs, orders, sink)
	workflowHandler := handlers.NewWorkflowHandler(engine)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, workflowHandler)
}

// buildRepositories picks the persistence backend. WORKFLOW_STORE=memory keeps
// everything in-process, anything else goes to DynamoDB.
func buildRepositories() (interfaces.IServiceJobRepository, interfaces.IPartsOrderRepository) {
	if os.Getenv("WORKFLOW_STORE") == "memory" {
		log.Printf("[workflow][routes] using in-memory store")
		return memory.NewJobRepository(), memory.NewOrderRepository()
	}

	ddb := database.ConnectDynamoDB()
	return repository2.NewServiceJobDynamoRepository(ddb), repository2.NewPartsOrderDynamoRepository(ddb)
}

// buildEventSink connects to RabbitMQ when RABBITMQ_URL is set, otherwise
// events stay in an in-process sink.
func buildEventSink() interfaces.IEventSink {
	url := os.Getenv("RABBITMQ_URL")
	if url == "" {
		log.Printf("[workflow][routes] RABBITMQ_URL not set, using in-memory event sink")
		return events.NewMemorySink()
	}

	client, err := messaging.Dial(url)
	if err != nil {
		log.Printf("[workflow][routes] RabbitMQ unavailable, falling back to in-memory sink: %v", err)
		return events.NewMemorySink()
	}
	if err := client.DeclareTopology(); err != nil {
		log.Printf("[workflow][routes] RabbitMQ topology declaration failed, falling back to in-memory sink: %v", err)
		client.Close()
		return events.NewMemorySink()
	}
	return events.NewRabbitMQSink(client)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
