package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/hxxtsxxh/EcoShip/internal/adapter/http/dto/request"
	response "github.com/hxxtsxxh/EcoShip/internal/adapter/http/dto/response"
	"github.com/hxxtsxxh/EcoShip/internal/domain/quote"
	"github.com/hxxtsxxh/EcoShip/internal/usecase"
	"github.com/hxxtsxxh/EcoShip/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for shipping quote computation.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// ComputeQuotes prices every catalog tier for one origin/destination/package
// and returns the scored, ranked batch with a best-value pick.
func (h *QuoteHandler) ComputeQuotes(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	res, err := h.usecase.ComputeQuotes(c.Request.Context(), payload.ToEntity())
	if err != nil {
		log.Printf("[quote][handler] compute failed err=%v", err)
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuoteResult(res))
}

// ListServices returns the service tier catalog.
func (h *QuoteHandler) ListServices(c *gin.Context) {
	tiers := h.usecase.ListServiceTiers()
	out := make([]response.ServiceTierResponse, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, response.FromServiceTier(t))
	}
	c.JSON(http.StatusOK, gin.H{"services": out})
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, quote.ErrInvalidPackage):
		return pkg.NewDomainErrorSimple("INVALID_PACKAGE", "Package weight must be positive and at most 68 kg", http.StatusBadRequest)
	case errors.Is(err, quote.ErrMissingCoordinates):
		return pkg.NewDomainErrorSimple("UNRESOLVED_LOCATION", "Location could not be resolved to coordinates", http.StatusUnprocessableEntity)
	case errors.Is(err, quote.ErrUnknownServiceTier):
		return pkg.NewDomainErrorSimple("UNKNOWN_SERVICE_TIER", "Unknown service tier", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
