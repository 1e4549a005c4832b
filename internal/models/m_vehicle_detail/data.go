package m_vehicle_detail

import (
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/autocat-service/internal/app/vehicle/domain"
)

// Data represents the database model for the vehicle_details table.
// The full detail record is kept as a JSON document.
type Data struct {
	VehicleKey string           `spanner:"vehicle_key"`
	Payload    spanner.NullJSON `spanner:"payload"`
}

// FromDetail maps a detail record to a row.
func FromDetail(d domain.VehicleDetail) *Data {
	return &Data{
		VehicleKey: d.Key,
		Payload:    spanner.NullJSON{Value: d, Valid: true},
	}
}

// ToDetail decodes the payload. Spanner hands JSON columns back as generic
// values, so the document is re-encoded before decoding into the domain type.
func (d *Data) ToDetail() (domain.VehicleDetail, error) {
	var out domain.VehicleDetail
	if !d.Payload.Valid {
		return out, fmt.Errorf("detail %q has a null payload", d.VehicleKey)
	}

	raw, err := json.Marshal(d.Payload.Value)
	if err != nil {
		return out, fmt.Errorf("failed to encode detail payload: %w", err)
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode detail payload: %w", err)
	}
	out.Key = d.VehicleKey
	return out, nil
}
