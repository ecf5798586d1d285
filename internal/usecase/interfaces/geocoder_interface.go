package interfaces

import (
	"context"

	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

// IGeocoder resolves a Location to coordinates.
//
// Implementations must return quote.ErrMissingCoordinates (wrapped is fine)
// when the location cannot be resolved; the quote pipeline cannot proceed
// without a distance.
type IGeocoder interface {
	Resolve(ctx context.Context, loc entities.Location) (entities.GeoPoint, error)
}
