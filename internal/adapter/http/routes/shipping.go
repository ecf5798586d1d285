package routes

import (
	"github.com/hxxtsxxh/EcoShip/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes    = "/quotes"
	PathServices  = "/services"
	PathShipments = "/shipments"
	PathUsers     = "/users"
	PathPayments  = "/payments"
)

func addShippingRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, shipmentHandler *handlers.ShipmentHandler, paymentHandler *handlers.PaymentHandler) {
	rg.POST(PathQuotes, quoteHandler.ComputeQuotes)
	rg.GET(PathServices, quoteHandler.ListServices)

	shipments := rg.Group(PathShipments)
	{
		shipments.POST("", shipmentHandler.RecordShipment)
		shipments.GET("/:id", shipmentHandler.GetShipment)
	}

	users := rg.Group(PathUsers)
	{
		users.GET("/:user_id/shipments", shipmentHandler.ListShipmentsByUser)
		users.GET("/:user_id/ledger", shipmentHandler.GetLedgerTotals)
	}

	payments := rg.Group(PathPayments)
	{
		payments.POST("/:shipment_id", paymentHandler.CreatePaymentByShipmentID)
		payments.GET("/:shipment_id", paymentHandler.GetPaymentByShipmentID)
	}
}
