package entities

// GeoPoint is an immutable pair of coordinates in decimal degrees.
type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location describes an address at city granularity.
//
// Coordinates are optional on input: the geocoding resolver fills them in
// before any distance math runs. A Location without resolvable coordinates
// cannot be quoted.
type Location struct {
	City        string    `json:"city"`
	State       string    `json:"state"`
	PostalCode  string    `json:"postal_code"`
	CountryCode string    `json:"country_code"`
	Coordinates *GeoPoint `json:"coordinates,omitempty"`
}

// PackageSpec carries the package attributes that drive pricing and carbon
// math. WeightKg must be positive and at most the catalog maximum (68 kg).
type PackageSpec struct {
	WeightKg float64     `json:"weight_kg"`
	Dims     *Dimensions `json:"dimensions,omitempty"`
}

// Dimensions are declared package dimensions in centimeters.
type Dimensions struct {
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
}

// QuoteRequest is the input of one quote computation. It is scoped to a
// single call and never stored.
type QuoteRequest struct {
	Origin      Location    `json:"origin"`
	Destination Location    `json:"destination"`
	Package     PackageSpec `json:"package"`
}
