package routes

import (
	"log"
	"net/http"
	"os"
	"strconv"

	_ "github.com/hxxtsxxh/EcoShip/docs" // swag-generated OpenAPI docs
	"github.com/hxxtsxxh/EcoShip/internal/adapter/http/handlers"
	"github.com/hxxtsxxh/EcoShip/internal/adapter/persistence/repository"
	"github.com/hxxtsxxh/EcoShip/internal/domain/quote"
	"github.com/hxxtsxxh/EcoShip/internal/infrastructure/database"
	"github.com/hxxtsxxh/EcoShip/internal/infrastructure/geocoding"
	"github.com/hxxtsxxh/EcoShip/internal/infrastructure/payments"
	"github.com/hxxtsxxh/EcoShip/internal/usecase"
	"github.com/hxxtsxxh/EcoShip/internal/usecase/interfaces"

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

	ledgerRepo := repository.NewShipmentLedgerDynamoRepository(ddb)
	paymentRepo := repository.NewShipmentPaymentDynamoRepository(ddb)

	catalog := quote.DefaultCatalog()
	engine := quote.NewEngine(catalog)
	geocoder := geocoding.NewGazetteer()

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(engine, geocoder)
	ledgerUseCase := usecase.NewLedgerUseCase(ledgerRepo, catalog)
	checkoutUseCase := usecase.NewCheckoutUseCase(paymentRepo, ledgerRepo, paymentGateway)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	shipmentHandler := handlers.NewShipmentHandler(ledgerUseCase)
	paymentHandler := handlers.NewPaymentHandler(checkoutUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addShippingRoutes(v1, quoteHandler, shipmentHandler, paymentHandler)
}

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
