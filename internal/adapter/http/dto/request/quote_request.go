package request

import (
	"github.com/hxxtsxxh/EcoShip/internal/domain/entities"
)

type GeoPointRequest struct {
	Latitude  float64 `json:"latitude" binding:"min=-90,max=90"`
	Longitude float64 `json:"longitude" binding:"min=-180,max=180"`
}

// LocationRequest accepts either a gazetteer city name or inline coordinates.
type LocationRequest struct {
	City        string           `json:"city"`
	State       string           `json:"state"`
	PostalCode  string           `json:"postal_code"`
	CountryCode string           `json:"country_code"`
	Coordinates *GeoPointRequest `json:"coordinates"`
}

type DimensionsRequest struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

type PackageRequest struct {
	WeightKg   float64            `json:"weight_kg" binding:"required,gt=0"`
	Dimensions *DimensionsRequest `json:"dimensions"`
}

type QuoteRequest struct {
	Origin      LocationRequest `json:"origin" binding:"required"`
	Destination LocationRequest `json:"destination" binding:"required"`
	Package     PackageRequest  `json:"package" binding:"required"`
}

func (r QuoteRequest) ToEntity() entities.QuoteRequest {
	return entities.QuoteRequest{
		Origin:      r.Origin.toEntity(),
		Destination: r.Destination.toEntity(),
		Package:     r.Package.toEntity(),
	}
}

func (l LocationRequest) toEntity() entities.Location {
	loc := entities.Location{
		City:        l.City,
		State:       l.State,
		PostalCode:  l.PostalCode,
		CountryCode: l.CountryCode,
	}
	if l.Coordinates != nil {
		loc.Coordinates = &entities.GeoPoint{
			Latitude:  l.Coordinates.Latitude,
			Longitude: l.Coordinates.Longitude,
		}
	}
	return loc
}

func (p PackageRequest) toEntity() entities.PackageSpec {
	spec := entities.PackageSpec{WeightKg: p.WeightKg}
	if p.Dimensions != nil {
		spec.Dims = &entities.Dimensions{
			LengthCm: p.Dimensions.LengthCm,
			WidthCm:  p.Dimensions.WidthCm,
			HeightCm: p.Dimensions.HeightCm,
		}
	}
	return spec
}
