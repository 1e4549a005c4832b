package m_vehicle

import (
	"cloud.google.com/go/spanner"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// Data represents the database model for the vehicles table.
// Position preserves the catalog's natural order.
type Data struct {
	VehicleKey   string             `spanner:"vehicle_key"`
	Position     int64              `spanner:"position"`
	Brand        string             `spanner:"brand"`
	Model        string             `spanner:"model"`
	Year         int64              `spanner:"year"`
	Price        float64            `spanner:"price"`
	MainImageURL string             `spanner:"main_image_url"`
	Mileage      spanner.NullInt64  `spanner:"mileage"`
	Transmission spanner.NullString `spanner:"transmission"`
}

// FromSummary maps a summary at the given catalog position to a row.
func FromSummary(position int, v domain.VehicleSummary) *Data {
	d := &Data{
		VehicleKey:   v.Key,
		Position:     int64(position),
		Brand:        v.Brand,
		Model:        v.Model,
		Year:         int64(v.Year),
		Price:        v.Price,
		MainImageURL: v.MainImageURL,
	}
	if v.Mileage != nil {
		d.Mileage = spanner.NullInt64{Int64: int64(*v.Mileage), Valid: true}
	}
	if v.HasTransmission() {
		d.Transmission = spanner.NullString{StringVal: string(*v.Transmission), Valid: true}
	}
	return d
}

// ToSummary maps the row back to its domain representation.
func (d *Data) ToSummary() domain.VehicleSummary {
	v := domain.VehicleSummary{
		Key:          d.VehicleKey,
		Brand:        d.Brand,
		Model:        d.Model,
		Year:         int(d.Year),
		Price:        d.Price,
		MainImageURL: d.MainImageURL,
	}
	if d.Mileage.Valid {
		m := int(d.Mileage.Int64)
		v.Mileage = &m
	}
	if d.Transmission.Valid && d.Transmission.StringVal != "" {
		t := domain.Transmission(d.Transmission.StringVal)
		v.Transmission = &t
	}
	return v
}
