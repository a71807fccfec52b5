package main

import (
	_ "comunikapp/docs"
	"comunikapp/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Comunikapp API
// @version         1.0
// @description     Multi-tenant quote engine for visual communication shops, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey StoreID
// @in header
// @name X-Store-ID
// @description Store (tenant) identifier; required on every business route.

func main() {
	routes.Run()
}
