package routes

import (
	"log"
	"strconv"

	_ "comunikapp/docs" // This will be auto-generated
	"comunikapp/internal/adapter/http/handlers"
	"comunikapp/internal/adapter/http/middleware"
	repository2 "comunikapp/internal/adapter/persistence/repository"
	"comunikapp/internal/infrastructure/database"
	"comunikapp/internal/usecase"

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
	ddb := database.ConnectDynamoDB()

	settingsRepo := repository2.NewSettingsDynamoRepository(ddb)
	materialRepo := repository2.NewMaterialDynamoRepository(ddb)
	machineRepo := repository2.NewMachineDynamoRepository(ddb)
	roleRepo := repository2.NewRoleDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, settingsRepo, materialRepo, machineRepo, roleRepo)
	settingsUseCase := usecase.NewSettingsUseCase(settingsRepo)
	materialUseCase := usecase.NewMaterialUseCase(materialRepo)
	machineUseCase := usecase.NewMachineUseCase(machineRepo)
	roleUseCase := usecase.NewRoleUseCase(roleRepo)
	clientUseCase := usecase.NewClientUseCase(clientRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	settingsHandler := handlers.NewSettingsHandler(settingsUseCase)
	materialHandler := handlers.NewMaterialHandler(materialUseCase)
	machineHandler := handlers.NewMachineHandler(machineUseCase)
	roleHandler := handlers.NewRoleHandler(roleUseCase)
	clientHandler := handlers.NewClientHandler(clientUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Toda rota de negócio é escopada por loja via X-Store-ID.
	store := v1.Group("", middleware.RequireStore())
	addQuoteRoutes(store, quoteHandler)
	addStoreRoutes(store, settingsHandler)
	addCatalogRoutes(store, materialHandler, machineHandler, roleHandler, clientHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
