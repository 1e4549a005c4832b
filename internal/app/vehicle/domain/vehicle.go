package domain

import "fmt"

// Transmission is the closed set of gearbox types a listed vehicle can have.
type Transmission string

const (
	TransmissionManual        Transmission = "Manual"
	TransmissionAutomatic     Transmission = "Automatic"
	TransmissionCVT           Transmission = "CVT"
	TransmissionSemiAutomatic Transmission = "Semi-automatic"
)

var transmissions = []Transmission{
	TransmissionManual,
	TransmissionAutomatic,
	TransmissionCVT,
	TransmissionSemiAutomatic,
}

// Transmissions returns every supported transmission type.
func Transmissions() []Transmission {
	out := make([]Transmission, len(transmissions))
	copy(out, transmissions)
	return out
}

// ParseTransmission converts a wire value into a Transmission.
func ParseTransmission(s string) (Transmission, error) {
	for _, t := range transmissions {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTransmission, s)
}

// MinYear is the oldest model year accepted in listing criteria.
const MinYear = 1900

// VehicleSummary is the compact representation used in listings.
// Key is opaque, stable and never reused.
type VehicleSummary struct {
	Key          string        `json:"key"`
	Brand        string        `json:"brand"`
	Model        string        `json:"model"`
	Year         int           `json:"year"`
	Price        float64       `json:"price"`
	MainImageURL string        `json:"mainImageUrl"`
	Mileage      *int          `json:"mileage,omitempty"`
	Transmission *Transmission `json:"transmission,omitempty"`
}

// HasTransmission reports whether the summary carries a transmission value.
func (v VehicleSummary) HasTransmission() bool {
	return v.Transmission != nil && *v.Transmission != ""
}
