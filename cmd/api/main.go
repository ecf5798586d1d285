package main

import (
	_ "github.com/hxxtsxxh/EcoShip/docs"
	"github.com/hxxtsxxh/EcoShip/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           EcoShip Quote API
// @version         1.0
// @description     Shipping quote engine with carbon footprint analysis, eco-efficiency scoring and a user shipment ledger backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
